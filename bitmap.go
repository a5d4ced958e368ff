package inputmodule

// Dimensions of the LED matrix.
const (
	Width   = 9
	Height  = 34
	NumLEDs = Width * Height

	// DrawSize is the payload size of a Draw command, one bit per LED.
	DrawSize = (NumLEDs + 7) / 8
)

// Bitmap is a black and white image of the LED matrix, indexed [x][y].
type Bitmap [Width][Height]bool

// Set switches the LED at x/y. Coordinates outside of the matrix are ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b[x][y] = on
}

// Get reports whether the LED at x/y is on.
func (b *Bitmap) Get(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b[x][y]
}

// PixelIndex returns the linear index of x/y, row major.
func PixelIndex(x, y int) int {
	return x + Width*y
}

// BitPosition returns the byte and the bit of the Draw payload that holds the
// LED with the linear index i.
func BitPosition(i int) (byteIndex int, bit uint) {
	return i / 8, uint(i % 8)
}

// Encode packs the bitmap into the Draw payload.
func (b *Bitmap) Encode() [DrawSize]byte {
	var payload [DrawSize]byte
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if !b[x][y] {
				continue
			}
			n, bit := BitPosition(PixelIndex(x, y))
			payload[n] |= 1 << bit
		}
	}
	return payload
}

// DecodeBitmap unpacks a Draw payload.
func DecodeBitmap(payload [DrawSize]byte) Bitmap {
	var b Bitmap
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			n, bit := BitPosition(PixelIndex(x, y))
			b[x][y] = payload[n]&(1<<bit) != 0
		}
	}
	return b
}

// Count returns the number of LEDs that are on.
func (b *Bitmap) Count() int {
	var n int
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b[x][y] {
				n++
			}
		}
	}
	return n
}

// LightLEDs returns the Draw payload that switches on the first n LEDs in
// index order. n is clamped to 0-NumLEDs.
func LightLEDs(n int) [DrawSize]byte {
	var payload [DrawSize]byte
	switch {
	case n < 0:
		n = 0
	case n > NumLEDs:
		n = NumLEDs
	}
	full := n / 8
	for i := 0; i < full; i++ {
		payload[i] = 0xFF
	}
	if rest := n % 8; rest > 0 {
		payload[full] = byte(1<<rest - 1)
	}
	return payload
}

// Equalizer renders one bar per column, growing from the middle of the
// matrix. Of a value v, v/2 LEDs are lit from row 17 on and the rest from
// row 16 backwards.
func Equalizer(vals [Width]uint8) (Bitmap, error) {
	var b Bitmap
	const middle = Height / 2
	for x, v := range vals {
		if int(v) > Height {
			return b, &ValueRangeError{What: "equalizer value", Value: int(v), Min: 0, Max: Height}
		}
		above := int(v) / 2
		below := int(v) - above
		for i := 0; i < above; i++ {
			b[x][middle+i] = true
		}
		for i := 0; i < below; i++ {
			b[x][middle-1-i] = true
		}
	}
	return b, nil
}
