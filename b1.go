package inputmodule

// Dimensions of the B1 e-paper style display.
const (
	B1Width  = 300
	B1Height = 400

	// B1ColumnSize is the number of bytes one column of the framebuffer takes.
	B1ColumnSize = B1Height / 8
)

// B1Bitmap is a black and white image of the B1 display. It is stored the way
// the firmware expects it: per column, bit y%8 of byte y/8, set means black.
type B1Bitmap [B1Width][B1ColumnSize]byte

// Set makes the pixel at x/y black or white. Coordinates outside of the display are ignored.
func (b *B1Bitmap) Set(x, y int, black bool) {
	if x < 0 || x >= B1Width || y < 0 || y >= B1Height {
		return
	}
	if black {
		b[x][y/8] |= 1 << uint(y%8)
	} else {
		b[x][y/8] &^= 1 << uint(y%8)
	}
}

// Black reports whether the pixel at x/y is black.
func (b *B1Bitmap) Black(x, y int) bool {
	if x < 0 || x >= B1Width || y < 0 || y >= B1Height {
		return false
	}
	return b[x][y/8]&(1<<uint(y%8)) != 0
}

// Column returns the packed column x.
func (b *B1Bitmap) Column(x int) [B1ColumnSize]byte {
	return b[x]
}

// Commands returns one SetPixelColumn per column followed by FlushFramebuffer.
func (b *B1Bitmap) Commands() []Command {
	cmds := make([]Command, 0, B1Width+1)
	for x := 0; x < B1Width; x++ {
		cmds = append(cmds, SetPixelColumn(x, b.Column(x)))
	}
	return append(cmds, FlushFramebuffer())
}

// Frames returns the encoded frames of Commands.
func (b *B1Bitmap) Frames() [][]byte {
	return frames(b.Commands())
}

// IsBlack is the threshold of the B1 display: darker than half brightness is black.
func IsBlack(r, g, b uint8) bool {
	return (float64(r)+float64(g)+float64(b))/3 < 255.0/2
}

// IsLit is the threshold of black and white images on the LED matrix:
// brighter than half brightness is on.
func IsLit(r, g, b uint8) bool {
	return (float64(r)+float64(g)+float64(b))/3 > 255.0/2
}
