package inputmodule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	errs := Errors{Task: "draw"}
	errs.Add(nil)
	assert.NoError(t, errs.Err())

	errs.Add(&TransportError{Device: "a", Task: "send Draw", WrappedError: errUnplugged})
	assert.Equal(t, `draw: device "a" had the following error when trying to send Draw: unplugged`, errs.Error())

	errs.Add(ConnectionClosedError("b"))
	err := errs.Err()
	assert.ErrorIs(t, err, ErrTransportUnavailable)
	assert.ErrorIs(t, err, errUnplugged)
	assert.Contains(t, err.Error(), "2 errors happened while trying to draw")
}

func TestErrorMatching(t *testing.T) {
	assert.ErrorIs(t, &ResponseTruncatedError{Want: 32, Got: 0}, ErrResponseTruncated)
	assert.ErrorIs(t, &UnrecognizedValueError{Kind: "x", Value: 1}, ErrUnrecognizedValue)
	assert.False(t, errors.Is(&ValueRangeError{}, ErrUnrecognizedValue))

	assert.Equal(t, "unknown pattern \"nope\"", (&UnrecognizedValueError{Kind: "pattern", Name: "nope"}).Error())
	assert.Equal(t, "unknown power mode 7", (&UnrecognizedValueError{Kind: "power mode", Value: 7}).Error())
	assert.Equal(t, "percentage must be 0-100, got 101", (&ValueRangeError{What: "percentage", Value: 101, Max: 100}).Error())
}

func TestKindIn(t *testing.T) {
	assert.True(t, kindIn(KindB1Display, nil))
	assert.True(t, kindIn(KindB1Display, []Kind{KindLEDMatrix, KindB1Display}))
	assert.False(t, kindIn(KindC1Minimal, []Kind{KindLEDMatrix}))
}

func TestPortInfoString(t *testing.T) {
	p := PortInfo{Device: "/dev/ttyACM0", Kind: KindLEDMatrix, Serial: "FRAK"}
	assert.Equal(t, "/dev/ttyACM0 (ledmatrix, serial FRAK)", p.String())

	d := USBDevice{Bus: 1, Address: 12, Kind: KindB1Display, Description: "Framework"}
	assert.Equal(t, "bus 001 device 012: b1display [32ac:0021] Framework", d.String())
}
