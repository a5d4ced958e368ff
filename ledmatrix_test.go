package inputmodule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatrix(t *testing.T) (*LEDMatrix, *TestPort) {
	t.Helper()
	c, port := newTestConn(t)
	return NewLEDMatrix(c), port
}

func TestLEDMatrixPatterns(t *testing.T) {
	m, port := newTestMatrix(t)

	require.NoError(t, m.ShowPattern(PatternDisplayLotus))
	require.NoError(t, m.Percentage(30))
	assert.Error(t, m.ShowPattern(PatternPercentage))
	assert.ErrorIs(t, m.ShowPattern(Pattern(8)), ErrUnrecognizedValue)

	var rangeErr *ValueRangeError
	assert.ErrorAs(t, m.Percentage(101), &rangeErr)
	assert.ErrorAs(t, m.Percentage(-1), &rangeErr)

	assert.Equal(t, [][]byte{
		{0x32, 0xAC, 0x01, 0x03},
		{0x32, 0xAC, 0x01, 0x00, 30},
	}, port.Frames())
}

func TestLEDMatrixDrawing(t *testing.T) {
	m, port := newTestMatrix(t)

	require.NoError(t, m.LightLEDs(8))
	require.NoError(t, m.ShowString("HI"))
	require.NoError(t, m.ShowSymbols("sun", ":)"))

	var vals [Width]uint8
	vals[0] = 2
	require.NoError(t, m.Equalizer(vals))
	vals[0] = Height + 1
	assert.Error(t, m.Equalizer(vals))

	frames := port.Frames()
	require.Len(t, frames, 4)
	for _, f := range frames {
		assert.Equal(t, OpDraw, Opcode(f[2]))
		assert.Len(t, f, 3+DrawSize)
	}
	assert.Equal(t, byte(0xFF), frames[0][3])

	hi := RenderString("HI")
	assert.Equal(t, hi, DecodeBitmap([DrawSize]byte(frames[1][3:])))
}

func TestLEDMatrixDrawGreyscale(t *testing.T) {
	m, port := newTestMatrix(t)
	g := AllBrightnesses()
	require.NoError(t, m.DrawGreyscale(&g))
	assert.Equal(t, g.Frames(), port.Frames())
}

func TestLEDMatrixQueries(t *testing.T) {
	m, port := newTestMatrix(t)
	port.Answer(OpAnimate, Response(0x01)...)
	port.Answer(OpPwmFreq, Response(0x01)...)
	port.Answer(OpAnimationPeriod, Response(0xF4, 0x01)...)
	port.Answer(OpDebugMode, Response(0x00)...)

	a, err := m.Animating()
	require.NoError(t, err)
	assert.True(t, a)

	f, err := m.PwmFreq()
	require.NoError(t, err)
	assert.Equal(t, Pwm3k6Hz, f)

	d, err := m.AnimationPeriod()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)

	debug, err := m.DebugMode()
	require.NoError(t, err)
	assert.False(t, debug)
}

func TestLEDMatrixSettings(t *testing.T) {
	m, port := newTestMatrix(t)

	require.NoError(t, m.SetAnimate(true))
	require.NoError(t, m.SetPwmFreq(Pwm29kHz))
	assert.ErrorIs(t, m.SetPwmFreq(PwmFreq(1000)), ErrUnrecognizedValue)
	require.NoError(t, m.SetAnimationPeriod(time.Second))
	assert.Error(t, m.SetAnimationPeriod(time.Minute*2))
	require.NoError(t, m.SetDebugMode(true))

	assert.Equal(t, [][]byte{
		{0x32, 0xAC, 0x04, 0x01},
		{0x32, 0xAC, 0x1E, 0x00},
		{0x32, 0xAC, 0x1C, 0xE8, 0x03},
		{0x32, 0xAC, 0x1F, 0x01},
	}, port.Frames())
}

func TestLEDMatrixGames(t *testing.T) {
	m, port := newTestMatrix(t)

	require.NoError(t, m.StartGame(GamePong))
	require.NoError(t, m.StartGame(GameGameOfLife))
	require.NoError(t, m.StartGameOfLife(LifeToad))
	require.NoError(t, m.GameControl(ControlLeft))
	assert.ErrorIs(t, m.StartGame(Game(9)), ErrUnrecognizedValue)
	require.NoError(t, m.Panic())

	assert.Equal(t, [][]byte{
		{0x32, 0xAC, 0x10, 0x01},
		{0x32, 0xAC, 0x10, 0x03, 0x00},
		{0x32, 0xAC, 0x10, 0x03, 0x03},
		{0x32, 0xAC, 0x11, 0x02},
		{0x32, 0xAC, 0x05, 0x00},
	}, port.Frames())
}
