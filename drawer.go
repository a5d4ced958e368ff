package inputmodule

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
)

var (
	_ display.Drawer = (*MatrixDrawer)(nil)
	_ display.Drawer = (*B1Drawer)(nil)
)

// MatrixDrawer draws images in greyscale on an LED matrix.
// It keeps the last frame, so partial draws only change their rectangle.
type MatrixDrawer struct {
	m      *LEDMatrix
	buffer *image.Gray
}

func NewMatrixDrawer(m *LEDMatrix) *MatrixDrawer {
	return &MatrixDrawer{
		m:      m,
		buffer: image.NewGray(image.Rect(0, 0, Width, Height)),
	}
}

func (d *MatrixDrawer) String() string {
	return fmt.Sprintf("ledmatrix.Drawer{%s}", d.m)
}

func (d *MatrixDrawer) ColorModel() color.Model { return color.GrayModel }

func (d *MatrixDrawer) Bounds() image.Rectangle { return d.buffer.Rect }

// Draw draws src at sp into dst and sends the whole frame.
func (d *MatrixDrawer) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	dst = dst.Intersect(d.buffer.Rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.buffer, dst, src, sp, draw.Src)
	g, err := GreyscaleFromImage(d.buffer)
	if err != nil {
		return err
	}
	return d.m.DrawGreyscale(&g)
}

// Halt puts the matrix to sleep.
func (d *MatrixDrawer) Halt() error {
	return d.m.SetSleep(true)
}

// B1Drawer draws images in black and white on a B1 display.
type B1Drawer struct {
	d      *B1Display
	buffer *image.Gray
}

func NewB1Drawer(d *B1Display) *B1Drawer {
	buf := image.NewGray(image.Rect(0, 0, B1Width, B1Height))
	draw.Draw(buf, buf.Rect, image.White, image.Point{}, draw.Src)
	return &B1Drawer{d: d, buffer: buf}
}

func (d *B1Drawer) String() string {
	return fmt.Sprintf("b1display.Drawer{%s}", d.d)
}

func (d *B1Drawer) ColorModel() color.Model { return color.GrayModel }

func (d *B1Drawer) Bounds() image.Rectangle { return d.buffer.Rect }

func (d *B1Drawer) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	dst = dst.Intersect(d.buffer.Rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.buffer, dst, src, sp, draw.Src)
	b, err := B1FromImage(d.buffer)
	if err != nil {
		return err
	}
	return d.d.Draw(&b)
}

// Halt switches the display off.
func (d *B1Drawer) Halt() error {
	return d.d.DisplayOn(false)
}
