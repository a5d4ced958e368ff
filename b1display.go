package inputmodule

import "fmt"

// B1Display is the 300x400 black and white display module.
type B1Display struct {
	*Conn
}

func NewB1Display(c *Conn) *B1Display {
	return &B1Display{Conn: c}
}

// SetText shows ASCII text in the built in font.
func (d *B1Display) SetText(s string) error {
	if len(s) > 255 {
		return &ValueRangeError{What: "text length", Value: len(s), Min: 0, Max: 255}
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return fmt.Errorf("text %q is not ASCII", s)
		}
	}
	return d.Send(SetText(s))
}

func (d *B1Display) DisplayOn(on bool) error {
	return d.Send(DisplayOn(on))
}

func (d *B1Display) InvertScreen(invert bool) error {
	return d.Send(InvertScreen(invert))
}

func (d *B1Display) ScreenSaver(on bool) error {
	return d.Send(ScreenSaver(on))
}

// ClearRAM clears the framebuffer of the display.
func (d *B1Display) ClearRAM() error {
	return d.Send(ClearRam())
}

// Draw writes all columns of b and flushes them.
func (d *B1Display) Draw(b *B1Bitmap) error {
	f, err := d.BeginB1Frame()
	if err != nil {
		return err
	}
	defer f.Abort()
	if err := f.Draw(b); err != nil {
		return err
	}
	return f.Flush()
}

func (d *B1Display) SetPowerMode(m PowerMode) error {
	return d.Send(SetPowerMode(m))
}

func (d *B1Display) PowerMode() (PowerMode, error) {
	resp, err := d.Query(GetPowerMode())
	if err != nil {
		return 0, err
	}
	return DecodePowerMode(resp)
}

// SetFps changes the refresh rate. The bits of the other power mode are
// kept, and the display is switched to the power mode of the setting.
func (d *B1Display) SetFps(f FpsSetting) error {
	d.wire.Lock()
	defer d.wire.Unlock()

	resp, err := d.exchange(GetFps())
	if err != nil {
		return err
	}
	if err := need(resp, 1); err != nil {
		return err
	}
	if _, err := d.exchange(SetFps(f.Apply(resp[0]))); err != nil {
		return err
	}
	_, err = d.exchange(SetPowerMode(f.Power))
	return err
}

// Fps returns the current refresh rate in frames per second.
func (d *B1Display) Fps() (float64, error) {
	d.wire.Lock()
	defer d.wire.Unlock()

	resp, err := d.exchange(GetFps())
	if err != nil {
		return 0, err
	}
	if err := need(resp, 1); err != nil {
		return 0, err
	}
	fps := resp[0]

	resp, err = d.exchange(GetPowerMode())
	if err != nil {
		return 0, err
	}
	mode, err := DecodePowerMode(resp)
	if err != nil {
		return 0, err
	}
	return DecodeFps(fps, mode)
}
