package inputmodule

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

const (
	// SerialRevision is the layout revision of the serial number blob.
	SerialRevision = 0x01

	// SerialLength is the number of ASCII characters of a serial number.
	SerialLength = 18

	serialBlobSize = 1 + SerialLength + 4
)

// Products maps a product name to the first ten characters of its serial
// number: the product code followed by the two config characters.
var Products = map[string]string{
	"ledmatrix-poc": "FRAKDEAM11",
	"ledmatrix":     "FRAKDEBZ41",
	"ledmatrix-27k": "FRAKDEBZ42",
	"ansi-keyboard": "FRAKDWEN41",
	"rgb-keyboard":  "FRAKDKEN41",
	"iso-keyboard":  "FRAKDWEN42",
	"jis-keyboard":  "FRAKDWEN4J",
	"numpad":        "FRAKDMEN41",
	"macropad":      "FRAKDNEN41",
}

// SerialNumber is the serial number that is flashed alongside the firmware.
type SerialNumber struct {
	Revision byte
	Serial   string
}

// NewSerialNumber builds the serial number of a module. prefix is the product
// code with its config (see Products), year is the full year of manufacture.
func NewSerialNumber(prefix string, year, week, day, part int) (SerialNumber, error) {
	if len(prefix) != 10 {
		return SerialNumber{}, fmt.Errorf("serial number prefix %q must be 10 characters", prefix)
	}
	switch {
	case week < 1 || week > 53:
		return SerialNumber{}, &ValueRangeError{What: "week", Value: week, Min: 1, Max: 53}
	case day < 1 || day > 7:
		return SerialNumber{}, &ValueRangeError{What: "day", Value: day, Min: 1, Max: 7}
	case part < 0 || part > 9999:
		return SerialNumber{}, &ValueRangeError{What: "part number", Value: part, Min: 0, Max: 9999}
	case year < 0:
		return SerialNumber{}, &ValueRangeError{What: "year", Value: year, Min: 0, Max: 9999}
	}
	return SerialNumber{
		Revision: SerialRevision,
		Serial:   fmt.Sprintf("%s%d%02d%d%04d", prefix, year%10, week, day, part),
	}, nil
}

func (s SerialNumber) String() string {
	return s.Serial
}

func (s SerialNumber) checksum() uint32 {
	h := crc32.NewIEEE()
	h.Write([]byte{s.Revision})
	h.Write([]byte(s.Serial))
	return h.Sum32()
}

// Blob returns the bytes to flash: revision, serial and the CRC32 of both in
// little endian order.
func (s SerialNumber) Blob() []byte {
	blob := make([]byte, 0, serialBlobSize)
	blob = append(blob, s.Revision)
	blob = append(blob, s.Serial...)
	return binary.LittleEndian.AppendUint32(blob, s.checksum())
}

// ParseSerialBlob reads a blob written by Blob and verifies its checksum.
func ParseSerialBlob(blob []byte) (SerialNumber, error) {
	if len(blob) < serialBlobSize {
		return SerialNumber{}, &ResponseTruncatedError{Want: serialBlobSize, Got: len(blob)}
	}
	s := SerialNumber{
		Revision: blob[0],
		Serial:   string(blob[1 : 1+SerialLength]),
	}
	got := binary.LittleEndian.Uint32(blob[1+SerialLength:])
	if want := s.checksum(); got != want {
		return SerialNumber{}, &ChecksumError{Want: want, Got: got}
	}
	return s, nil
}
