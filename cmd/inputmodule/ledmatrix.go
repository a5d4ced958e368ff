package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gomonome/inputmodule"
)

func ledMatrix(ctx context.Context, m *inputmodule.LEDMatrix) error {
	switch cfg.ActiveCommand() {
	case patternCmd:
		return pattern(m, argPattern.Get())
	case percentageCmd:
		return m.Percentage(int(argPercentage.Get()))
	case animateCmd:
		if !argAnimate.IsSet() {
			a, err := m.Animating()
			if err != nil {
				return err
			}
			fmt.Printf("Currently animating: %s\n", onOffString(a))
			return nil
		}
		on, err := onOff(argAnimate.Get())
		if err != nil {
			return err
		}
		return m.SetAnimate(on)
	case pwmCmd:
		if !argPwm.IsSet() {
			f, err := m.PwmFreq()
			if err != nil {
				return err
			}
			fmt.Printf("Current PWM frequency: %s\n", f)
			return nil
		}
		return m.SetPwmFreq(inputmodule.PwmFreq(argPwm.Get()))
	case imageCmd:
		return showImage(m)
	case stringCmd:
		return m.ShowString(argStrText.Get())
	case symbolsCmd:
		return m.ShowSymbols(splitList(argSymbols.Get())...)
	case eqCmd:
		vals, err := eqValues(argEqVal.Get())
		if err != nil {
			return err
		}
		return m.Equalizer(vals)
	case ledsCmd:
		return m.LightLEDs(int(argLeds.Get()))
	case gameCmd:
		g, err := inputmodule.ParseGame(argGame.Get())
		if err != nil {
			return err
		}
		if g != inputmodule.GameGameOfLife {
			return m.StartGame(g)
		}
		start, err := inputmodule.ParseLifeStart(argStart.Get())
		if err != nil {
			return err
		}
		return m.StartGameOfLife(start)
	case controlCmd:
		k, err := inputmodule.ParseControl(argKey.Get())
		if err != nil {
			return err
		}
		return m.GameControl(k)
	case panicCmd:
		return m.Panic()
	case blinkCmd:
		return inputmodule.Blink(ctx, m)
	case breatheCmd:
		return inputmodule.Breathe(ctx, m)
	case clockCmd:
		return inputmodule.Clock(ctx, m, nil)
	case countdownCmd:
		return inputmodule.Countdown(ctx, m, time.Duration(argSeconds.Get())*time.Second)
	case randomEqCmd:
		return inputmodule.RandomEqualizer(ctx, m, nil)
	case marqueeCmd:
		return inputmodule.Marquee(ctx, m, argMarquee.Get(), time.Duration(argMarqStep.Get())*time.Millisecond)
	}
	return fmt.Errorf("unknown command")
}

// pattern shows a firmware pattern or one of the greyscale test patterns.
func pattern(m *inputmodule.LEDMatrix, name string) error {
	var g inputmodule.Greyscale
	var n int
	switch {
	case name == "all-brightnesses":
		g = inputmodule.AllBrightnesses()
	case sscan(name, "checkerboard%d", &n):
		g = inputmodule.Checkerboard(n)
	case sscan(name, "rows%d", &n):
		g = inputmodule.EveryNthRow(n)
	case sscan(name, "cols%d", &n):
		g = inputmodule.EveryNthCol(n)
	default:
		p, err := inputmodule.ParsePattern(name)
		if err != nil {
			return err
		}
		return m.ShowPattern(p)
	}
	return m.DrawGreyscale(&g)
}

// sscan reports whether s is format with a single number, and nothing after it.
func sscan(s, format string, n *int) bool {
	if _, err := fmt.Sscanf(s, format, n); err != nil {
		return false
	}
	return fmt.Sprintf(format, *n) == s
}

func eqValues(s string) (vals [inputmodule.Width]uint8, err error) {
	items := splitList(s)
	if len(items) != inputmodule.Width {
		return vals, fmt.Errorf("need %d values, got %d", inputmodule.Width, len(items))
	}
	for i, item := range items {
		v, err := parseInt(item)
		if err != nil {
			return vals, err
		}
		if v < 0 || v > inputmodule.Height {
			return vals, &inputmodule.ValueRangeError{What: "equalizer value", Value: v, Min: 0, Max: inputmodule.Height}
		}
		vals[i] = uint8(v)
	}
	return vals, nil
}

func showImage(m *inputmodule.LEDMatrix) error {
	img, err := loadImage(argImageFile.Get())
	if err != nil {
		return err
	}
	img = inputmodule.Fit(img, inputmodule.Width, inputmodule.Height)

	if argImageGrey.Get() {
		g, err := inputmodule.GreyscaleFromImage(img)
		if err != nil {
			return err
		}
		return m.DrawGreyscale(&g)
	}

	b, err := inputmodule.BitmapFromImage(img)
	if err != nil {
		return err
	}
	return m.DrawBitmap(&b)
}
