package inputmodule

import (
	"fmt"
	"image"
)

var _ Matrix = &Row{}

// Row combines LED matrices that sit side by side into one wide canvas.
// The order is from left to right. Drawing happens on the canvas with Set
// and is sent with Flush.
type Row struct {
	name    string
	devices []*LEDMatrix
	canvas  [][Height]uint8
}

// NewRow returns a row of the given matrices, leftmost first.
func NewRow(name string, devices ...*LEDMatrix) *Row {
	if name == "" {
		name = "ledmatrix row"
	}
	return &Row{
		name:    name,
		devices: devices,
		canvas:  make([][Height]uint8, Width*len(devices)),
	}
}

func (r *Row) String() string {
	return fmt.Sprintf("%s (%d devices)", r.name, len(r.devices))
}

// Devices returns the matrices of the row.
func (r *Row) Devices() []*LEDMatrix { return r.devices }

// Bounds is the size of the canvas.
func (r *Row) Bounds() image.Rectangle {
	return image.Rect(0, 0, len(r.canvas), Height)
}

// Set sets the brightness of a canvas pixel. Coordinates outside are ignored.
func (r *Row) Set(x, y int, brightness uint8) {
	if x < 0 || x >= len(r.canvas) || y < 0 || y >= Height {
		return
	}
	r.canvas[x][y] = brightness
}

func (r *Row) Get(x, y int) uint8 {
	if x < 0 || x >= len(r.canvas) || y < 0 || y >= Height {
		return 0
	}
	return r.canvas[x][y]
}

// Frame returns the part of the canvas shown by device i.
func (r *Row) Frame(i int) Greyscale {
	var g Greyscale
	for x := 0; x < Width; x++ {
		g[x] = r.canvas[i*Width+x]
	}
	return g
}

// Flush sends the canvas to the devices. All devices are tried, even if
// some of them fail.
func (r *Row) Flush() error {
	errs := Errors{Task: fmt.Sprintf("draw on %s", r.name)}
	for i, dev := range r.devices {
		g := r.Frame(i)
		errs.Add(dev.DrawGreyscale(&g))
	}
	return errs.Err()
}

// DrawImage copies img, which must be as big as the canvas, and flushes it.
func (r *Row) DrawImage(img image.Image) error {
	if err := checkSize(img, len(r.canvas), Height); err != nil {
		return err
	}
	min := img.Bounds().Min
	for x := range r.canvas {
		for y := 0; y < Height; y++ {
			r.canvas[x][y] = PixelToBrightness(rgb8(img.At(min.X+x, min.Y+y)))
		}
	}
	return r.Flush()
}

// Broadcast sends cmd to every device.
func (r *Row) Broadcast(cmd Command) error {
	errs := Errors{Task: fmt.Sprintf("send %s to %s", cmd.Opcode(), r.name)}
	for _, dev := range r.devices {
		errs.Add(dev.Send(cmd))
	}
	return errs.Err()
}

func (r *Row) SetBrightness(v uint8) error {
	return r.Broadcast(SetBrightness(v))
}

// SetAnimate starts or stops the firmware scrolling on every device.
func (r *Row) SetAnimate(animate bool) error {
	return r.Broadcast(SetAnimate(animate))
}

// DrawBitmap shows the same bitmap on every device.
func (r *Row) DrawBitmap(b *Bitmap) error {
	return r.Broadcast(Draw(b.Encode()))
}

// Close closes all devices.
func (r *Row) Close() error {
	errs := Errors{Task: fmt.Sprintf("close %s", r.name)}
	for _, dev := range r.devices {
		errs.Add(dev.Close())
	}
	return errs.Err()
}

// IsClosed only returns true if all devices are closed.
func (r *Row) IsClosed() bool {
	for _, dev := range r.devices {
		if !dev.IsClosed() {
			return false
		}
	}
	return true
}
