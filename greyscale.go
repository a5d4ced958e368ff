package inputmodule

// Greyscale is an image of the LED matrix with one brightness per LED, indexed [x][y].
type Greyscale [Width][Height]uint8

func (g *Greyscale) Set(x, y int, brightness uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	g[x][y] = brightness
}

func (g *Greyscale) Get(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return g[x][y]
}

// Column returns the brightness values of column x, top to bottom.
func (g *Greyscale) Column(x int) [Height]byte {
	return g[x]
}

// Commands returns the commands that display the image: one StageGreyCol per
// column followed by DrawGreyColBuffer. The matrix only changes on the last one.
func (g *Greyscale) Commands() []Command {
	cmds := make([]Command, 0, Width+1)
	for x := 0; x < Width; x++ {
		cmds = append(cmds, StageGreyCol(x, g.Column(x)))
	}
	return append(cmds, DrawGreyColBuffer())
}

// Frames returns the encoded frames of Commands.
func (g *Greyscale) Frames() [][]byte {
	return frames(g.Commands())
}

func frames(cmds []Command) [][]byte {
	out := make([][]byte, len(cmds))
	for i, c := range cmds {
		out[i] = c.Bytes()
	}
	return out
}

// PixelToBrightness maps a colour to an LED brightness. Mid tones are
// stretched apart so that they are distinguishable on the matrix.
func PixelToBrightness(r, g, b uint8) uint8 {
	avg := (float64(r) + float64(g) + float64(b)) / 3
	switch {
	case avg > 200:
	case avg > 150:
		avg *= 0.8
	case avg > 100:
		avg *= 0.5
	case avg > 50:
	default:
		avg *= 2
	}
	if avg > 255 {
		return 255
	}
	return uint8(avg)
}

// Checkerboard returns a checkerboard with squares of n×n LEDs. n < 1 counts as 1.
func Checkerboard(n int) Greyscale {
	if n < 1 {
		n = 1
	}
	var g Greyscale
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if (x%(2*n) < n) != (y%(2*n) < n) {
				g[x][y] = 0xFF
			}
		}
	}
	return g
}

// EveryNthRow lights rows 0, n, 2n... n < 1 counts as 1.
func EveryNthRow(n int) Greyscale {
	if n < 1 {
		n = 1
	}
	var g Greyscale
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y += n {
			g[x][y] = 0xFF
		}
	}
	return g
}

// EveryNthCol lights columns 0, n, 2n... n < 1 counts as 1.
func EveryNthCol(n int) Greyscale {
	if n < 1 {
		n = 1
	}
	var g Greyscale
	for x := 0; x < Width; x += n {
		for y := 0; y < Height; y++ {
			g[x][y] = 0xFF
		}
	}
	return g
}

// AllBrightnesses gives every LED the brightness of its linear index.
// LEDs past index 255 stay off.
func AllBrightnesses() Greyscale {
	var g Greyscale
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if i := PixelIndex(x, y); i <= 255 {
				g[x][y] = uint8(i)
			}
		}
	}
	return g
}
