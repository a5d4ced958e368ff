package inputmodule

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Matrix is something the animations can draw on, an LEDMatrix or a Row of them.
type Matrix interface {
	SetBrightness(uint8) error
	SetAnimate(bool) error
	DrawBitmap(*Bitmap) error
}

// All animations run until ctx is done or the device goes away and return
// nil in both cases. Other errors are returned.

type pacer struct {
	lim *rate.Limiter
}

func newPacer(every time.Duration) *pacer {
	return &pacer{lim: rate.NewLimiter(rate.Every(every), 1)}
}

func (p *pacer) every(d time.Duration) {
	p.lim.SetLimit(rate.Every(d))
}

// wait returns false once ctx is done.
func (p *pacer) wait(ctx context.Context) bool {
	return p.lim.Wait(ctx) == nil
}

// holdStill switches off the firmware scrolling, which would move the frames
// of an animation. It returns false if the animation must not start.
func holdStill(ctx context.Context, m Matrix, name string) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}
	if err := m.SetAnimate(false); err != nil {
		return false, stop(name, err)
	}
	return true, nil
}

// stop turns the error of a failed animation step into the return value of the animation.
func stop(name string, err error) error {
	if errors.Is(err, ErrTransportUnavailable) {
		zap.L().Info("animation stopped, device is gone", zap.String("animation", name), zap.Error(err))
		return nil
	}
	return err
}

// Blink switches the brightness between off and 200 every half second.
// The content of the matrix is kept.
func Blink(ctx context.Context, m Matrix) error {
	p := newPacer(500 * time.Millisecond)
	for {
		for _, b := range []uint8{0, 200} {
			if !p.wait(ctx) {
				return nil
			}
			if err := m.SetBrightness(b); err != nil {
				return stop("blink", err)
			}
		}
	}
}

type breathStep struct {
	from, step int
	every      time.Duration
}

// bright levels look alike, so they are passed quickly
var breathSteps = []breathStep{
	{250, -20, 30 * time.Millisecond},
	{50, -5, 60 * time.Millisecond},
	{0, 5, 60 * time.Millisecond},
	{50, 20, 30 * time.Millisecond},
}

// Breathe fades the brightness down and up again.
// The content of the matrix is kept.
func Breathe(ctx context.Context, m Matrix) error {
	p := newPacer(breathSteps[0].every)
	for {
		for _, s := range breathSteps {
			p.every(s.every)
			for i := 0; i < 10; i++ {
				if !p.wait(ctx) {
					return nil
				}
				if err := m.SetBrightness(uint8(s.from + i*s.step)); err != nil {
					return stop("breathe", err)
				}
			}
		}
	}
}

// Clock shows the time as HH:MM and updates it every second.
// now defaults to time.Now.
func Clock(ctx context.Context, m Matrix, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}
	if ok, err := holdStill(ctx, m, "clock"); !ok {
		return err
	}
	p := newPacer(time.Second)
	for p.wait(ctx) {
		b := RenderString(now().Format("15:04"))
		if err := m.DrawBitmap(&b); err != nil {
			return stop("clock", err)
		}
	}
	return nil
}

// Countdown lights the LEDs one after another, so that all are lit after d.
// Then it keeps breathing until ctx is done.
func Countdown(ctx context.Context, m Matrix, d time.Duration) error {
	if ok, err := holdStill(ctx, m, "countdown"); !ok {
		return err
	}
	start := time.Now()
	p := newPacer(10 * time.Millisecond)
	for {
		if !p.wait(ctx) {
			return nil
		}
		passed := time.Since(start)
		if passed >= d {
			break
		}
		b := DecodeBitmap(LightLEDs(int(float64(NumLEDs) * float64(passed) / float64(d))))
		if err := m.DrawBitmap(&b); err != nil {
			return stop("countdown", err)
		}
	}
	b := DecodeBitmap(LightLEDs(NumLEDs))
	if err := m.DrawBitmap(&b); err != nil {
		return stop("countdown", err)
	}
	return Breathe(ctx, m)
}

// RandomEqualizerValue returns a random bar height from 1 to 33.
// Low values are more likely.
func RandomEqualizerValue(r *rand.Rand) uint8 {
	// value v has weight (34-v)²
	const total = 33 * 34 * 67 / 6
	n := r.IntN(total)
	for v := 1; v < Height; v++ {
		w := (Height - v) * (Height - v)
		if n < w {
			return uint8(v)
		}
		n -= w
	}
	return Height - 1
}

// RandomEqualizer shows random equalizer bars five times a second.
// r defaults to a time seeded generator.
func RandomEqualizer(ctx context.Context, m Matrix, r *rand.Rand) error {
	if r == nil {
		r = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if ok, err := holdStill(ctx, m, "random equalizer"); !ok {
		return err
	}
	p := newPacer(200 * time.Millisecond)
	for p.wait(ctx) {
		var vals [Width]uint8
		for i := range vals {
			vals[i] = RandomEqualizerValue(r)
		}
		b, err := Equalizer(vals)
		if err != nil {
			return err
		}
		if err := m.DrawBitmap(&b); err != nil {
			return stop("random equalizer", err)
		}
	}
	return nil
}

// marqueeRows returns the rows of s rendered one glyph below the other, with
// an empty screen before and after.
func marqueeRows(s string) [][Width]bool {
	rows := make([][Width]bool, Height, Height*2+len(s)*glyphPitch)
	for _, r := range s {
		g := Letter(r)
		for py := 0; py < glyphPitch; py++ {
			var row [Width]bool
			if py < GlyphHeight {
				for px := 0; px < GlyphWidth; px++ {
					row[glyphOffsetX+px] = g[py][px]
				}
			}
			rows = append(rows, row)
		}
	}
	return append(rows, make([][Width]bool, Height)...)
}

// Marquee scrolls s upwards through the matrix, moving one row every step.
// It returns when the text has passed.
func Marquee(ctx context.Context, m Matrix, s string, step time.Duration) error {
	rows := marqueeRows(s)
	p := newPacer(step)
	for offset := 0; offset+Height <= len(rows); offset++ {
		if !p.wait(ctx) {
			return nil
		}
		var b Bitmap
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				b[x][y] = rows[offset+y][x]
			}
		}
		if err := m.DrawBitmap(&b); err != nil {
			return stop("marquee", err)
		}
	}
	return nil
}
