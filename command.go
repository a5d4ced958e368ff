package inputmodule

import (
	"encoding/binary"
	"fmt"
)

// Command is one protocol exchange. Commands are built with the constructor of
// their opcode, which fixes the number of parameter bytes.
type Command struct {
	op              Opcode
	params          []byte
	expectsResponse bool
}

// Raw builds a command from arbitrary parameters, without checking them
// against the arity of the opcode.
func Raw(op Opcode, expectsResponse bool, params ...byte) Command {
	return Command{op: op, params: append([]byte(nil), params...), expectsResponse: expectsResponse}
}

func (c Command) Opcode() Opcode        { return c.op }
func (c Command) ExpectsResponse() bool { return c.expectsResponse }

// Params returns a copy of the parameter bytes.
func (c Command) Params() []byte { return append([]byte(nil), c.params...) }

// Bytes returns the frame to send.
func (c Command) Bytes() []byte { return Encode(c.op, c.params...) }

func (c Command) String() string {
	if c.expectsResponse {
		return fmt.Sprintf("%s?% X", c.op, c.params)
	}
	return fmt.Sprintf("%s % X", c.op, c.params)
}

func write(op Opcode, params ...byte) Command { return Command{op: op, params: params} }
func query(op Opcode) Command                 { return Command{op: op, expectsResponse: true} }

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func SetBrightness(v uint8) Command { return write(OpBrightness, v) }
func GetBrightness() Command        { return query(OpBrightness) }

// ShowPattern displays a pattern built into the firmware.
// Use Percentage for PatternPercentage, which needs a value.
func ShowPattern(p Pattern) Command {
	if p == PatternPercentage {
		panic("inputmodule: use Percentage to show the percentage pattern")
	}
	return write(OpPattern, byte(p))
}

// Percentage fills p percent of the LED matrix, bottom to top.
func Percentage(p uint8) Command {
	if p > 100 {
		panic(fmt.Sprintf("inputmodule: percentage %d > 100", p))
	}
	return write(OpPattern, byte(PatternPercentage), p)
}

func BootloaderReset() Command { return write(OpBootloaderReset, 0x00) }

func SetSleep(sleep bool) Command { return write(OpSleep, boolByte(sleep)) }
func GetSleep() Command           { return query(OpSleep) }

// SetAnimate starts or stops scrolling the current grid vertically.
func SetAnimate(animate bool) Command { return write(OpAnimate, boolByte(animate)) }
func GetAnimate() Command             { return query(OpAnimate) }

// Panic crashes the firmware, for testing only.
func Panic() Command { return write(OpPanic, 0x00) }

func Draw(payload [DrawSize]byte) Command { return write(OpDraw, payload[:]...) }

// StageGreyCol stages the brightness of one column. It only becomes visible
// after DrawGreyColBuffer.
func StageGreyCol(x int, values [Height]byte) Command {
	if x < 0 || x >= Width {
		panic(fmt.Sprintf("inputmodule: column %d out of range", x))
	}
	params := make([]byte, 0, 1+Height)
	params = append(params, byte(x))
	return write(OpStageGreyCol, append(params, values[:]...)...)
}

func DrawGreyColBuffer() Command { return write(OpDrawGreyColBuffer, 0x00) }

// SetText shows ASCII text on the B1 display.
func SetText(s string) Command {
	if len(s) > 255 {
		panic("inputmodule: text longer than 255 bytes")
	}
	params := make([]byte, 0, 1+len(s))
	params = append(params, byte(len(s)))
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			panic(fmt.Sprintf("inputmodule: non ascii text %q", s))
		}
		params = append(params, s[i])
	}
	return write(OpSetText, params...)
}

// StartGame starts a game on the LED matrix. Use StartGameOfLife for the Game of Life.
func StartGame(g Game) Command {
	if g == GameGameOfLife {
		panic("inputmodule: use StartGameOfLife to start the game of life")
	}
	return write(OpStartGame, byte(g))
}

func StartGameOfLife(start LifeStart) Command {
	return write(OpStartGame, byte(GameGameOfLife), byte(start))
}

func GameControl(c Control) Command { return write(OpGameControl, byte(c)) }

// GameStatus is accepted by the firmware but not answered.
func GameStatus() Command { return write(OpGameStatus) }

func SetColor(c RGB) Command { return write(OpSetColor, c.R, c.G, c.B) }
func GetColor() Command      { return query(OpSetColor) }

func DisplayOn(on bool) Command        { return write(OpDisplayOn, boolByte(on)) }
func InvertScreen(invert bool) Command { return write(OpInvertScreen, boolByte(invert)) }

// SetPixelColumn sets one column of the B1 framebuffer. It only becomes
// visible after FlushFramebuffer.
func SetPixelColumn(x int, column [B1ColumnSize]byte) Command {
	if x < 0 || x >= B1Width {
		panic(fmt.Sprintf("inputmodule: b1 column %d out of range", x))
	}
	params := make([]byte, 2, 2+B1ColumnSize)
	binary.LittleEndian.PutUint16(params, uint16(x))
	return write(OpSetPixelColumn, append(params, column[:]...)...)
}

func FlushFramebuffer() Command { return write(OpFlushFramebuffer) }
func ClearRam() Command         { return write(OpClearRam) }

func ScreenSaver(on bool) Command { return write(OpScreenSaver, boolByte(on)) }

// SetFps writes the raw FPS byte of the B1 display, see FpsSetting.
func SetFps(mode byte) Command { return write(OpSetFps, mode) }
func GetFps() Command          { return query(OpSetFps) }

func SetPowerMode(m PowerMode) Command { return write(OpSetPowerMode, byte(m)) }
func GetPowerMode() Command            { return query(OpSetPowerMode) }

// SetAnimationPeriod sets the time between two animation frames in milliseconds.
func SetAnimationPeriod(ms uint16) Command {
	params := make([]byte, 2)
	binary.LittleEndian.PutUint16(params, ms)
	return write(OpAnimationPeriod, params...)
}
func GetAnimationPeriod() Command { return query(OpAnimationPeriod) }

// SetPwmFreq panics for frequencies the LED driver does not support.
func SetPwmFreq(f PwmFreq) Command {
	code, err := f.Code()
	if err != nil {
		panic("inputmodule: " + err.Error())
	}
	return write(OpPwmFreq, code)
}
func GetPwmFreq() Command { return query(OpPwmFreq) }

func SetDebugMode(on bool) Command { return write(OpDebugMode, boolByte(on)) }
func GetDebugMode() Command        { return query(OpDebugMode) }

func GetVersion() Command { return query(OpVersion) }
