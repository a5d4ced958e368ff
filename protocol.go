// Package inputmodule talks to the Framework Laptop 16 input modules
// (LED matrix, B1 display, C1 minimal) over their USB serial link.
//
// Every command is a single frame: the two magic bytes, one opcode byte and a
// fixed number of parameter bytes. There is no length field, no checksum and
// no terminator, so both sides must know the arity of every opcode.
// Query commands are answered with a fixed 32 byte response.
package inputmodule

import "fmt"

// Magic is the prefix of every command frame.
var Magic = [2]byte{0x32, 0xAC}

const (
	// VendorID is the USB vendor id of all Framework input modules.
	VendorID = 0x32AC

	// ResponseSize is the number of bytes the firmware answers a query with.
	ResponseSize = 32
)

// Opcode selects the operation of a command frame.
type Opcode byte

const (
	OpBrightness        Opcode = 0x00
	OpPattern           Opcode = 0x01
	OpBootloaderReset   Opcode = 0x02
	OpSleep             Opcode = 0x03
	OpAnimate           Opcode = 0x04
	OpPanic             Opcode = 0x05
	OpDraw              Opcode = 0x06
	OpStageGreyCol      Opcode = 0x07
	OpDrawGreyColBuffer Opcode = 0x08
	OpSetText           Opcode = 0x09
	OpStartGame         Opcode = 0x10
	OpGameControl       Opcode = 0x11
	OpGameStatus        Opcode = 0x12
	OpSetColor          Opcode = 0x13
	OpDisplayOn         Opcode = 0x14
	OpInvertScreen      Opcode = 0x15
	OpSetPixelColumn    Opcode = 0x16
	OpFlushFramebuffer  Opcode = 0x17
	OpClearRam          Opcode = 0x18
	OpScreenSaver       Opcode = 0x19
	OpSetFps            Opcode = 0x1A
	OpSetPowerMode      Opcode = 0x1B
	OpAnimationPeriod   Opcode = 0x1C
	OpPwmFreq           Opcode = 0x1E
	OpDebugMode         Opcode = 0x1F
	OpVersion           Opcode = 0x20
)

var opcodeNames = map[Opcode]string{
	OpBrightness:        "Brightness",
	OpPattern:           "Pattern",
	OpBootloaderReset:   "BootloaderReset",
	OpSleep:             "Sleep",
	OpAnimate:           "Animate",
	OpPanic:             "Panic",
	OpDraw:              "Draw",
	OpStageGreyCol:      "StageGreyCol",
	OpDrawGreyColBuffer: "DrawGreyColBuffer",
	OpSetText:           "SetText",
	OpStartGame:         "StartGame",
	OpGameControl:       "GameControl",
	OpGameStatus:        "GameStatus",
	OpSetColor:          "SetColor",
	OpDisplayOn:         "DisplayOn",
	OpInvertScreen:      "InvertScreen",
	OpSetPixelColumn:    "SetPixelColumn",
	OpFlushFramebuffer:  "FlushFramebuffer",
	OpClearRam:          "ClearRam",
	OpScreenSaver:       "ScreenSaver",
	OpSetFps:            "SetFps",
	OpSetPowerMode:      "SetPowerMode",
	OpAnimationPeriod:   "AnimationPeriod",
	OpPwmFreq:           "PwmFreq",
	OpDebugMode:         "DebugMode",
	OpVersion:           "Version",
}

func (o Opcode) String() string {
	if s, has := opcodeNames[o]; has {
		return s
	}
	return fmt.Sprintf("Opcode(0x%02X)", byte(o))
}

// Pattern is a pattern that is built into the LED matrix firmware.
type Pattern byte

const (
	PatternPercentage     Pattern = 0x00
	PatternGradient       Pattern = 0x01
	PatternDoubleGradient Pattern = 0x02
	PatternDisplayLotus   Pattern = 0x03
	PatternZigZag         Pattern = 0x04
	PatternFullBrightness Pattern = 0x05
	PatternDisplayPanic   Pattern = 0x06
	PatternDisplayLotus2  Pattern = 0x07
)

var patternNames = []string{
	"percentage",
	"gradient",
	"double-gradient",
	"lotus",
	"zigzag",
	"full",
	"panic",
	"lotus2",
}

func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return fmt.Sprintf("Pattern(%d)", byte(p))
}

// ParsePattern returns the pattern with the given name, as returned by Pattern.String.
func ParsePattern(s string) (Pattern, error) {
	for i, name := range patternNames {
		if name == s {
			return Pattern(i), nil
		}
	}
	return 0, &UnrecognizedValueError{Kind: "pattern", Name: s}
}

// Game is a game that runs on the LED matrix itself.
type Game byte

const (
	GameSnake      Game = 0x00
	GamePong       Game = 0x01
	GameTetris     Game = 0x02
	GameGameOfLife Game = 0x03
)

var gameNames = []string{"snake", "pong", "tetris", "life"}

func (g Game) String() string {
	if int(g) < len(gameNames) {
		return gameNames[g]
	}
	return fmt.Sprintf("Game(%d)", byte(g))
}

// ParseGame returns the game with the given name.
func ParseGame(s string) (Game, error) {
	for i, name := range gameNames {
		if name == s {
			return Game(i), nil
		}
	}
	return 0, &UnrecognizedValueError{Kind: "game", Name: s}
}

// LifeStart is the initial board of the Game of Life.
type LifeStart byte

const (
	LifeCurrentMatrix     LifeStart = 0x00
	LifePattern1          LifeStart = 0x01
	LifeBlinker           LifeStart = 0x02
	LifeToad              LifeStart = 0x03
	LifeBeacon            LifeStart = 0x04
	LifeGlider            LifeStart = 0x05
	LifeBeaconToadBlinker LifeStart = 0x06
)

var lifeStartNames = []string{"currentmatrix", "pattern1", "blinker", "toad", "beacon", "glider", "beacontoadblinker"}

func (l LifeStart) String() string {
	if int(l) < len(lifeStartNames) {
		return lifeStartNames[l]
	}
	return fmt.Sprintf("LifeStart(%d)", byte(l))
}

// ParseLifeStart returns the Game of Life start board with the given name.
func ParseLifeStart(s string) (LifeStart, error) {
	for i, name := range lifeStartNames {
		if name == s {
			return LifeStart(i), nil
		}
	}
	return 0, &UnrecognizedValueError{Kind: "game of life start", Name: s}
}

// Control is a key press forwarded to a running game.
type Control byte

const (
	ControlUp    Control = 0
	ControlDown  Control = 1
	ControlLeft  Control = 2
	ControlRight Control = 3
	ControlQuit  Control = 4

	// only understood by pong, moves the second paddle
	ControlSecondLeft  Control = 5
	ControlSecondRight Control = 6
)

var controlNames = []string{"up", "down", "left", "right", "quit", "left2", "right2"}

func (c Control) String() string {
	if int(c) < len(controlNames) {
		return controlNames[c]
	}
	return fmt.Sprintf("Control(%d)", byte(c))
}

// ParseControl returns the game control with the given name.
func ParseControl(s string) (Control, error) {
	for i, name := range controlNames {
		if name == s {
			return Control(i), nil
		}
	}
	return 0, &UnrecognizedValueError{Kind: "game control", Name: s}
}

// PwmFreq is the PWM frequency of the LED driver in Hz.
type PwmFreq int

const (
	Pwm29kHz PwmFreq = 29000
	Pwm3k6Hz PwmFreq = 3600
	Pwm1k8Hz PwmFreq = 1800
	Pwm900Hz PwmFreq = 900
)

var pwmCodes = []PwmFreq{Pwm29kHz, Pwm3k6Hz, Pwm1k8Hz, Pwm900Hz}

// Code returns the wire value of the frequency.
func (p PwmFreq) Code() (byte, error) {
	for i, f := range pwmCodes {
		if f == p {
			return byte(i), nil
		}
	}
	return 0, &UnrecognizedValueError{Kind: "pwm frequency", Value: int(p)}
}

func (p PwmFreq) String() string {
	return fmt.Sprintf("%dHz", int(p))
}

// PowerMode is the power mode of the B1 display.
type PowerMode byte

const (
	PowerLow  PowerMode = 0
	PowerHigh PowerMode = 1
)

func (p PowerMode) String() string {
	switch p {
	case PowerLow:
		return "low"
	case PowerHigh:
		return "high"
	}
	return fmt.Sprintf("PowerMode(%d)", byte(p))
}

// ParsePowerMode parses "low" or "high".
func ParsePowerMode(s string) (PowerMode, error) {
	switch s {
	case "low":
		return PowerLow, nil
	case "high":
		return PowerHigh, nil
	}
	return 0, &UnrecognizedValueError{Kind: "power mode", Name: s}
}

// Encode returns the frame for the given opcode and parameters.
// The parameters are not checked against the arity of the opcode; use the
// typed constructors in command.go for that.
func Encode(op Opcode, params ...byte) []byte {
	frame := make([]byte, 0, len(Magic)+1+len(params))
	frame = append(frame, Magic[:]...)
	frame = append(frame, byte(op))
	return append(frame, params...)
}
