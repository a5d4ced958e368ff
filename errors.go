package inputmodule

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrTransportUnavailable is matched by errors that mean the device could not be reached.
	ErrTransportUnavailable = errors.New("transport unavailable")

	// ErrResponseTruncated is matched by ResponseTruncatedError.
	ErrResponseTruncated = errors.New("response truncated")

	// ErrUnrecognizedValue is matched by UnrecognizedValueError.
	ErrUnrecognizedValue = errors.New("unrecognized value")
)

// TransportError is returned if the port could not be opened, written or read.
type TransportError struct {
	Device       string
	Task         string
	WrappedError error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("device %q had the following error when trying to %s: %v", e.Device, e.Task, e.WrappedError)
}

func (e *TransportError) Unwrap() error { return e.WrappedError }

func (e *TransportError) Is(target error) bool { return target == ErrTransportUnavailable }

// ConnectionClosedError is returned for any command on a closed or disconnected connection.
type ConnectionClosedError string

func (e ConnectionClosedError) Error() string {
	return fmt.Sprintf("connection to device %q is closed", string(e))
}

func (e ConnectionClosedError) Is(target error) bool { return target == ErrTransportUnavailable }

// ResponseTruncatedError is returned if fewer bytes arrived than the response needs.
type ResponseTruncatedError struct {
	Want int
	Got  int
}

func (e *ResponseTruncatedError) Error() string {
	return fmt.Sprintf("response truncated: got %d bytes, need %d", e.Got, e.Want)
}

func (e *ResponseTruncatedError) Is(target error) bool { return target == ErrResponseTruncated }

// UnrecognizedValueError is returned if a decoded byte or a parsed name does not map to a known value.
type UnrecognizedValueError struct {
	Kind  string
	Value int
	Name  string
}

func (e *UnrecognizedValueError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("unknown %s %d", e.Kind, e.Value)
}

func (e *UnrecognizedValueError) Is(target error) bool { return target == ErrUnrecognizedValue }

// ValueRangeError is returned if a caller supplied value is outside of what the device accepts.
type ValueRangeError struct {
	What  string
	Value int
	Min   int
	Max   int
}

func (e *ValueRangeError) Error() string {
	return fmt.Sprintf("%s must be %d-%d, got %d", e.What, e.Min, e.Max, e.Value)
}

// ImageSizeError is returned if an image does not have the size of the display.
type ImageSizeError struct {
	Want image.Point
	Got  image.Point
}

func (e *ImageSizeError) Error() string {
	return fmt.Sprintf("image must be %dx%d, got %dx%d", e.Want.X, e.Want.Y, e.Got.X, e.Got.Y)
}

// ChecksumError is returned if a serial number blob does not match its CRC32.
type ChecksumError struct {
	Want uint32
	Got  uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: want 0x%08x, got 0x%08x", e.Want, e.Got)
}

// Errors collects the errors of an operation on several devices.
type Errors struct {
	Task   string
	Errors []error
}

func (m *Errors) Len() int {
	return len(m.Errors)
}

func (m *Errors) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Err returns nil if no error was added.
func (m *Errors) Err() error {
	if m.Len() == 0 {
		return nil
	}
	return m
}

func (m *Errors) Unwrap() []error {
	return m.Errors
}

func (m *Errors) Error() string {
	switch m.Len() {
	case 0:
		return fmt.Sprintf("no errors while trying to %s", m.Task)
	case 1:
		return fmt.Sprintf("%s: %v", m.Task, m.Errors[0])
	}
	return fmt.Sprintf("%d errors happened while trying to %s, first: %v", m.Len(), m.Task, m.Errors[0])
}

// USBContextError is returned if libusb could not be initialized.
type USBContextError string

func (e USBContextError) Error() string {
	return string(e)
}

// CloseError is returned if the port could not be closed.
type CloseError struct {
	Device       string
	WrappedError error
}

func (e CloseError) Error() string {
	return fmt.Sprintf("when closing device %q the following error occured: %v", e.Device, e.WrappedError)
}

func (e CloseError) Unwrap() error { return e.WrappedError }
