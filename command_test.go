package inputmodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, []byte{0x32, 0xAC, 0x00, 0x80}, Encode(OpBrightness, 0x80))
	assert.Equal(t, []byte{0x32, 0xAC, 0x20}, Encode(OpVersion))
}

func TestCommandFrames(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		want     []byte
		response bool
	}{
		{"brightness", SetBrightness(100), []byte{0x32, 0xAC, 0x00, 100}, false},
		{"get brightness", GetBrightness(), []byte{0x32, 0xAC, 0x00}, true},
		{"pattern", ShowPattern(PatternZigZag), []byte{0x32, 0xAC, 0x01, 0x04}, false},
		{"percentage", Percentage(42), []byte{0x32, 0xAC, 0x01, 0x00, 42}, false},
		{"bootloader", BootloaderReset(), []byte{0x32, 0xAC, 0x02, 0x00}, false},
		{"sleep", SetSleep(true), []byte{0x32, 0xAC, 0x03, 0x01}, false},
		{"wake", SetSleep(false), []byte{0x32, 0xAC, 0x03, 0x00}, false},
		{"get sleep", GetSleep(), []byte{0x32, 0xAC, 0x03}, true},
		{"animate", SetAnimate(true), []byte{0x32, 0xAC, 0x04, 0x01}, false},
		{"panic", Panic(), []byte{0x32, 0xAC, 0x05, 0x00}, false},
		{"flush grey", DrawGreyColBuffer(), []byte{0x32, 0xAC, 0x08, 0x00}, false},
		{"text", SetText("Hi"), []byte{0x32, 0xAC, 0x09, 2, 'H', 'i'}, false},
		{"snake", StartGame(GameSnake), []byte{0x32, 0xAC, 0x10, 0x00}, false},
		{"life", StartGameOfLife(LifeGlider), []byte{0x32, 0xAC, 0x10, 0x03, 0x05}, false},
		{"control", GameControl(ControlQuit), []byte{0x32, 0xAC, 0x11, 0x04}, false},
		{"game status", GameStatus(), []byte{0x32, 0xAC, 0x12}, false},
		{"color", SetColor(RGB{1, 2, 3}), []byte{0x32, 0xAC, 0x13, 1, 2, 3}, false},
		{"get color", GetColor(), []byte{0x32, 0xAC, 0x13}, true},
		{"display on", DisplayOn(true), []byte{0x32, 0xAC, 0x14, 0x01}, false},
		{"invert", InvertScreen(false), []byte{0x32, 0xAC, 0x15, 0x00}, false},
		{"flush framebuffer", FlushFramebuffer(), []byte{0x32, 0xAC, 0x17}, false},
		{"clear ram", ClearRam(), []byte{0x32, 0xAC, 0x18}, false},
		{"screensaver", ScreenSaver(true), []byte{0x32, 0xAC, 0x19, 0x01}, false},
		{"fps", SetFps(0x11), []byte{0x32, 0xAC, 0x1A, 0x11}, false},
		{"get fps", GetFps(), []byte{0x32, 0xAC, 0x1A}, true},
		{"power", SetPowerMode(PowerHigh), []byte{0x32, 0xAC, 0x1B, 0x01}, false},
		{"animation period", SetAnimationPeriod(300), []byte{0x32, 0xAC, 0x1C, 0x2C, 0x01}, false},
		{"pwm", SetPwmFreq(Pwm1k8Hz), []byte{0x32, 0xAC, 0x1E, 0x02}, false},
		{"get pwm", GetPwmFreq(), []byte{0x32, 0xAC, 0x1E}, true},
		{"debug", SetDebugMode(true), []byte{0x32, 0xAC, 0x1F, 0x01}, false},
		{"version", GetVersion(), []byte{0x32, 0xAC, 0x20}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cmd.Bytes())
			assert.Equal(t, tc.response, tc.cmd.ExpectsResponse())
			assert.Equal(t, Opcode(tc.want[2]), tc.cmd.Opcode())
		})
	}
}

func TestStageGreyCol(t *testing.T) {
	var col [Height]byte
	for i := range col {
		col[i] = byte(i * 7)
	}
	frame := StageGreyCol(8, col).Bytes()
	require.Len(t, frame, 3+1+Height)
	assert.Equal(t, byte(OpStageGreyCol), frame[2])
	assert.Equal(t, byte(8), frame[3])
	assert.Equal(t, col[:], frame[4:])
}

func TestSetPixelColumn(t *testing.T) {
	var col [B1ColumnSize]byte
	col[0] = 0xAA
	col[B1ColumnSize-1] = 0x55
	frame := SetPixelColumn(299, col).Bytes()
	require.Len(t, frame, 3+2+B1ColumnSize)
	assert.Equal(t, byte(OpSetPixelColumn), frame[2])
	// little endian column index
	assert.Equal(t, []byte{0x2B, 0x01}, frame[3:5])
	assert.Equal(t, col[:], frame[5:])
}

func TestDrawCommand(t *testing.T) {
	payload := LightLEDs(9)
	frame := Draw(payload).Bytes()
	require.Len(t, frame, 3+DrawSize)
	assert.Equal(t, []byte{0xFF, 0x01, 0x00}, frame[3:6])
}

func TestCommandPanics(t *testing.T) {
	assert.Panics(t, func() { ShowPattern(PatternPercentage) })
	assert.Panics(t, func() { Percentage(101) })
	assert.Panics(t, func() { StageGreyCol(Width, [Height]byte{}) })
	assert.Panics(t, func() { StageGreyCol(-1, [Height]byte{}) })
	assert.Panics(t, func() { SetPixelColumn(B1Width, [B1ColumnSize]byte{}) })
	assert.Panics(t, func() { SetText("grüße") })
	assert.Panics(t, func() { StartGame(GameGameOfLife) })
	assert.Panics(t, func() { SetPwmFreq(PwmFreq(1000)) })
	assert.NotPanics(t, func() { Percentage(100) })
}

func TestRaw(t *testing.T) {
	params := []byte{1, 2}
	cmd := Raw(OpPattern, false, params...)
	params[0] = 9
	assert.Equal(t, []byte{0x32, 0xAC, 0x01, 1, 2}, cmd.Bytes())
	assert.Equal(t, []byte{1, 2}, cmd.Params())
	assert.False(t, cmd.ExpectsResponse())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "Brightness 0A", SetBrightness(10).String())
	assert.Equal(t, "Version?", GetVersion().String())
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "StageGreyCol", OpStageGreyCol.String())
	assert.Equal(t, "Opcode(0x1D)", Opcode(0x1D).String())
}

func TestParseNames(t *testing.T) {
	for i, name := range patternNames {
		p, err := ParsePattern(name)
		require.NoError(t, err)
		assert.Equal(t, Pattern(i), p)
		assert.Equal(t, name, p.String())
	}
	g, err := ParseGame("tetris")
	require.NoError(t, err)
	assert.Equal(t, GameTetris, g)

	l, err := ParseLifeStart("beacontoadblinker")
	require.NoError(t, err)
	assert.Equal(t, LifeBeaconToadBlinker, l)

	c, err := ParseControl("right2")
	require.NoError(t, err)
	assert.Equal(t, ControlSecondRight, c)

	m, err := ParsePowerMode("high")
	require.NoError(t, err)
	assert.Equal(t, PowerHigh, m)

	for _, parse := range []func(string) error{
		func(s string) error { _, err := ParsePattern(s); return err },
		func(s string) error { _, err := ParseGame(s); return err },
		func(s string) error { _, err := ParseLifeStart(s); return err },
		func(s string) error { _, err := ParseControl(s); return err },
		func(s string) error { _, err := ParsePowerMode(s); return err },
	} {
		assert.ErrorIs(t, parse("nope"), ErrUnrecognizedValue)
	}
}

func TestPwmFreqCode(t *testing.T) {
	for i, f := range []PwmFreq{Pwm29kHz, Pwm3k6Hz, Pwm1k8Hz, Pwm900Hz} {
		code, err := f.Code()
		require.NoError(t, err)
		assert.Equal(t, byte(i), code)
	}
	_, err := PwmFreq(1000).Code()
	assert.ErrorIs(t, err, ErrUnrecognizedValue)
	assert.Equal(t, "3600Hz", Pwm3k6Hz.String())
}
