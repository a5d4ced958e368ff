package inputmodule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestB1(t *testing.T) (*B1Display, *TestPort) {
	t.Helper()
	c, port := newTestConn(t)
	return NewB1Display(c), port
}

func TestB1DisplaySettings(t *testing.T) {
	d, port := newTestB1(t)

	require.NoError(t, d.SetText("Hello"))
	require.NoError(t, d.DisplayOn(true))
	require.NoError(t, d.InvertScreen(true))
	require.NoError(t, d.ScreenSaver(false))
	require.NoError(t, d.ClearRAM())
	require.NoError(t, d.SetPowerMode(PowerLow))

	assert.Equal(t, [][]byte{
		{0x32, 0xAC, 0x09, 5, 'H', 'e', 'l', 'l', 'o'},
		{0x32, 0xAC, 0x14, 0x01},
		{0x32, 0xAC, 0x15, 0x01},
		{0x32, 0xAC, 0x19, 0x00},
		{0x32, 0xAC, 0x18},
		{0x32, 0xAC, 0x1B, 0x00},
	}, port.Frames())
}

func TestB1DisplayText(t *testing.T) {
	d, port := newTestB1(t)

	var rangeErr *ValueRangeError
	assert.ErrorAs(t, d.SetText(strings.Repeat("a", 256)), &rangeErr)
	assert.Error(t, d.SetText("naïve"))
	assert.Empty(t, port.Frames())
}

func TestB1DisplayDraw(t *testing.T) {
	d, port := newTestB1(t)

	var b B1Bitmap
	b.Set(10, 10, true)
	require.NoError(t, d.Draw(&b))
	assert.Equal(t, b.Frames(), port.Frames())
}

func TestB1DisplaySetFps(t *testing.T) {
	d, port := newTestB1(t)
	port.Answer(OpSetFps, Response(0b00010101)...)

	half, err := ParseFps("half")
	require.NoError(t, err)
	require.NoError(t, d.SetFps(half))

	// read, modify, write and switch the power mode
	assert.Equal(t, [][]byte{
		{0x32, 0xAC, 0x1A},
		{0x32, 0xAC, 0x1A, 0b00010001},
		{0x32, 0xAC, 0x1B, 0x00},
	}, port.Frames())
}

func TestB1DisplayFps(t *testing.T) {
	d, port := newTestB1(t)
	port.Answer(OpSetFps, Response(0b00010011)...)

	port.Answer(OpSetPowerMode, Response(0x00)...)
	fps, err := d.Fps()
	require.NoError(t, err)
	assert.Equal(t, 2.0, fps)

	port.Answer(OpSetPowerMode, Response(0x01)...)
	fps, err = d.Fps()
	require.NoError(t, err)
	assert.Equal(t, 32.0, fps)

	m, err := d.PowerMode()
	require.NoError(t, err)
	assert.Equal(t, PowerHigh, m)
}

func TestB1DisplaySetFpsTruncated(t *testing.T) {
	d, port := newTestB1(t)

	one, err := ParseFps("one")
	require.NoError(t, err)
	assert.ErrorIs(t, d.SetFps(one), ErrResponseTruncated)

	// nothing is written without the current value
	assert.Len(t, port.Frames(), 1)
}
