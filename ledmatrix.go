package inputmodule

import (
	"fmt"
	"math"
	"time"
)

// LEDMatrix is the 9x34 LED matrix module.
type LEDMatrix struct {
	*Conn
}

func NewLEDMatrix(c *Conn) *LEDMatrix {
	return &LEDMatrix{Conn: c}
}

// ShowPattern shows a pattern of the firmware. PatternPercentage needs a
// value, use Percentage for it.
func (m *LEDMatrix) ShowPattern(p Pattern) error {
	if p == PatternPercentage {
		return fmt.Errorf("pattern %s needs a value, use Percentage", p)
	}
	if int(p) >= len(patternNames) {
		return &UnrecognizedValueError{Kind: "pattern", Value: int(p)}
	}
	return m.Send(ShowPattern(p))
}

// Percentage fills p percent of the matrix.
func (m *LEDMatrix) Percentage(p int) error {
	if p < 0 || p > 100 {
		return &ValueRangeError{What: "percentage", Value: p, Min: 0, Max: 100}
	}
	return m.Send(Percentage(uint8(p)))
}

func (m *LEDMatrix) SetAnimate(animate bool) error {
	return m.Send(SetAnimate(animate))
}

func (m *LEDMatrix) Animating() (bool, error) {
	resp, err := m.Query(GetAnimate())
	if err != nil {
		return false, err
	}
	return DecodeBool(resp)
}

// DrawBitmap shows b in a single command.
func (m *LEDMatrix) DrawBitmap(b *Bitmap) error {
	return m.Send(Draw(b.Encode()))
}

// DrawGreyscale stages all columns of g and commits them.
func (m *LEDMatrix) DrawGreyscale(g *Greyscale) error {
	f, err := m.BeginGreyFrame()
	if err != nil {
		return err
	}
	defer f.Abort()
	if err := f.Stage(g); err != nil {
		return err
	}
	return f.Commit()
}

// LightLEDs switches on the first n LEDs and all others off.
func (m *LEDMatrix) LightLEDs(n int) error {
	return m.Send(Draw(LightLEDs(n)))
}

// ShowString shows up to five characters, one below the other.
func (m *LEDMatrix) ShowString(s string) error {
	b := RenderString(s)
	return m.DrawBitmap(&b)
}

// ShowSymbols shows up to five symbols or characters, see RenderSymbols.
func (m *LEDMatrix) ShowSymbols(items ...string) error {
	b := RenderSymbols(items...)
	return m.DrawBitmap(&b)
}

// Equalizer shows one bar per column, see Equalizer.
func (m *LEDMatrix) Equalizer(vals [Width]uint8) error {
	b, err := Equalizer(vals)
	if err != nil {
		return err
	}
	return m.DrawBitmap(&b)
}

func (m *LEDMatrix) SetPwmFreq(f PwmFreq) error {
	if _, err := f.Code(); err != nil {
		return err
	}
	return m.Send(SetPwmFreq(f))
}

func (m *LEDMatrix) PwmFreq() (PwmFreq, error) {
	resp, err := m.Query(GetPwmFreq())
	if err != nil {
		return 0, err
	}
	return DecodePwmFreq(resp)
}

func (m *LEDMatrix) StartGame(g Game) error {
	switch g {
	case GameGameOfLife:
		return m.StartGameOfLife(LifeCurrentMatrix)
	case GameSnake, GamePong, GameTetris:
		return m.Send(StartGame(g))
	}
	return &UnrecognizedValueError{Kind: "game", Value: int(g)}
}

func (m *LEDMatrix) StartGameOfLife(start LifeStart) error {
	return m.Send(StartGameOfLife(start))
}

func (m *LEDMatrix) GameControl(c Control) error {
	return m.Send(GameControl(c))
}

// Panic makes the firmware crash. Only useful to test crash handling.
func (m *LEDMatrix) Panic() error {
	return m.Send(Panic())
}

// SetAnimationPeriod sets the time between two frames of the firmware animations.
func (m *LEDMatrix) SetAnimationPeriod(d time.Duration) error {
	ms := d.Milliseconds()
	if ms < 0 || ms > math.MaxUint16 {
		return &ValueRangeError{What: "animation period in ms", Value: int(ms), Min: 0, Max: math.MaxUint16}
	}
	return m.Send(SetAnimationPeriod(uint16(ms)))
}

func (m *LEDMatrix) AnimationPeriod() (time.Duration, error) {
	resp, err := m.Query(GetAnimationPeriod())
	if err != nil {
		return 0, err
	}
	ms, err := DecodeAnimationPeriod(resp)
	return time.Duration(ms) * time.Millisecond, err
}

func (m *LEDMatrix) SetDebugMode(on bool) error {
	return m.Send(SetDebugMode(on))
}

func (m *LEDMatrix) DebugMode() (bool, error) {
	resp, err := m.Query(GetDebugMode())
	if err != nil {
		return false, err
	}
	return DecodeBool(resp)
}
