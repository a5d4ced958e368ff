package inputmodule

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Version is the firmware version of a module.
type Version struct {
	Major      uint8
	Minor      uint8
	Patch      uint8
	PreRelease bool
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease {
		s += " (Pre-release)"
	}
	return s
}

// RGB is the colour of the C1 minimal module.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB:(%d, %d, %d)", c.R, c.G, c.B)
}

func need(resp []byte, n int) error {
	if len(resp) < n {
		return &ResponseTruncatedError{Want: n, Got: len(resp)}
	}
	return nil
}

// DecodeVersion decodes the answer to GetVersion.
func DecodeVersion(resp []byte) (Version, error) {
	if err := need(resp, 3); err != nil {
		return Version{}, err
	}
	return Version{
		Major:      resp[0],
		Minor:      (resp[1] & 0xF0) >> 4,
		Patch:      resp[1] & 0x0F,
		PreRelease: resp[2] != 0,
	}, nil
}

// DecodeBrightness decodes the answer to GetBrightness.
func DecodeBrightness(resp []byte) (uint8, error) {
	if err := need(resp, 1); err != nil {
		return 0, err
	}
	return resp[0], nil
}

// DecodeBool decodes the answer to the boolean queries (sleep, animate, debug mode).
func DecodeBool(resp []byte) (bool, error) {
	if err := need(resp, 1); err != nil {
		return false, err
	}
	return resp[0] != 0, nil
}

// DecodeRGB decodes the answer to GetColor.
func DecodeRGB(resp []byte) (RGB, error) {
	if err := need(resp, 3); err != nil {
		return RGB{}, err
	}
	return RGB{R: resp[0], G: resp[1], B: resp[2]}, nil
}

// DecodePwmFreq decodes the answer to GetPwmFreq. Codes the firmware should
// never send are returned as UnrecognizedValueError.
func DecodePwmFreq(resp []byte) (PwmFreq, error) {
	if err := need(resp, 1); err != nil {
		return 0, err
	}
	code := int(resp[0])
	if code >= len(pwmCodes) {
		return 0, &UnrecognizedValueError{Kind: "pwm frequency code", Value: code}
	}
	return pwmCodes[code], nil
}

// DecodeAnimationPeriod decodes the answer to GetAnimationPeriod in milliseconds.
func DecodeAnimationPeriod(resp []byte) (uint16, error) {
	if err := need(resp, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(resp), nil
}

// DecodePowerMode decodes the answer to GetPowerMode.
func DecodePowerMode(resp []byte) (PowerMode, error) {
	if err := need(resp, 1); err != nil {
		return 0, err
	}
	switch m := PowerMode(resp[0]); m {
	case PowerLow, PowerHigh:
		return m, nil
	}
	return 0, &UnrecognizedValueError{Kind: "power mode", Value: int(resp[0])}
}

// B1 FPS byte layout: the low three bits select the low power rate,
// bit 4 selects the high power rate.
const (
	HighFpsMask = 0b00010000
	LowFpsMask  = 0b00000111
)

// FpsSetting is one of the refresh rates of the B1 display.
type FpsSetting struct {
	Name  string
	Power PowerMode
	bits  byte
}

// FpsSettings lists the refresh rates of the B1 display, slowest first.
var FpsSettings = []FpsSetting{
	{"quarter", PowerLow, 0b000},
	{"half", PowerLow, 0b001},
	{"one", PowerLow, 0b010},
	{"two", PowerLow, 0b011},
	{"four", PowerLow, 0b100},
	{"eight", PowerLow, 0b101},
	{"sixteen", PowerHigh, 0b00000000},
	{"thirtytwo", PowerHigh, 0b00010000},
}

// ParseFps returns the setting with the given name.
func ParseFps(name string) (FpsSetting, error) {
	for _, f := range FpsSettings {
		if f.Name == name {
			return f, nil
		}
	}
	return FpsSetting{}, &UnrecognizedValueError{Kind: "fps setting", Name: name}
}

// Apply returns the FPS byte with this setting applied to the current one.
// Only the bits that belong to the power mode of the setting are changed.
func (f FpsSetting) Apply(current byte) byte {
	if f.Power == PowerHigh {
		return current&^HighFpsMask | f.bits
	}
	return current&^LowFpsMask | f.bits
}

// DecodeFps returns the frames per second the B1 display runs at, given the
// FPS byte and the power mode.
func DecodeFps(fps byte, mode PowerMode) (float64, error) {
	switch mode {
	case PowerLow:
		low := fps & LowFpsMask
		switch low {
		case 0:
			return 0.25, nil
		case 1:
			return 0.5, nil
		}
		return math.Pow(2, float64(low)-2), nil
	case PowerHigh:
		if fps&HighFpsMask != 0 {
			return 32, nil
		}
		return 16, nil
	}
	return 0, &UnrecognizedValueError{Kind: "power mode", Value: int(mode)}
}
