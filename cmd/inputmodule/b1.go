package main

import (
	"fmt"

	"github.com/gomonome/inputmodule"
)

func b1(d *inputmodule.B1Display) error {
	switch cfg.ActiveCommand() {
	case b1TextCmd:
		return d.SetText(argB1Text.Get())
	case b1ImageCmd:
		img, err := loadImage(argB1Image.Get())
		if err != nil {
			return err
		}
		b, err := inputmodule.B1FromImage(inputmodule.Fit(img, inputmodule.B1Width, inputmodule.B1Height))
		if err != nil {
			return err
		}
		return d.Draw(&b)
	case b1DisplayCmd:
		return b1Settings(d)
	case fpsCmd:
		if !argFps.IsSet() {
			fps, err := d.Fps()
			if err != nil {
				return err
			}
			fmt.Printf("Current FPS: %g\n", fps)
			return nil
		}
		f, err := inputmodule.ParseFps(argFps.Get())
		if err != nil {
			return err
		}
		return d.SetFps(f)
	case powerCmd:
		if !argPower.IsSet() {
			m, err := d.PowerMode()
			if err != nil {
				return err
			}
			fmt.Printf("Current power mode: %s\n", m)
			return nil
		}
		m, err := inputmodule.ParsePowerMode(argPower.Get())
		if err != nil {
			return err
		}
		return d.SetPowerMode(m)
	}
	return fmt.Errorf("unknown command")
}

func b1Settings(d *inputmodule.B1Display) error {
	switches := []struct {
		arg interface {
			IsSet() bool
			Get() string
		}
		set func(bool) error
	}{
		{&argB1On, d.DisplayOn},
		{&argB1Invert, d.InvertScreen},
		{&argB1Saver, d.ScreenSaver},
	}
	for _, s := range switches {
		if !s.arg.IsSet() {
			continue
		}
		on, err := onOff(s.arg.Get())
		if err != nil {
			return err
		}
		if err := s.set(on); err != nil {
			return err
		}
	}
	if argB1ClearRAM.Get() {
		return d.ClearRAM()
	}
	return nil
}
