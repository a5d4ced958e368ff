package inputmodule

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tarm/serial"
)

// Port is the byte stream to a module, normally its USB CDC serial port.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data that was received but not read yet.
	Flush() error
}

// SerialConfig configures a serial port.
type SerialConfig struct {
	// Device path, e.g. /dev/ttyACM0 or COM3
	Device string

	// Baud is ignored by USB CDC but needed to open the port.
	Baud int

	// ReadTimeout bounds the wait for a response. 0 blocks forever.
	ReadTimeout time.Duration
}

// DefaultSerialConfig returns the settings the modules are used with.
func DefaultSerialConfig(device string) SerialConfig {
	return SerialConfig{
		Device:      device,
		Baud:        115200,
		ReadTimeout: time.Second,
	}
}

type serialPort struct {
	*serial.Port
}

// OpenSerial opens the serial port described by cfg.
func OpenSerial(cfg SerialConfig) (Port, error) {
	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, &TransportError{Device: cfg.Device, Task: "open serial port", WrappedError: err}
	}
	return serialPort{p}, nil
}

// DryRunPort prints every frame written to it as hex instead of sending it.
// Reads return a zeroed response.
type DryRunPort struct {
	mx  sync.Mutex
	out io.Writer
}

// NewDryRunPort returns a DryRunPort that prints to w.
func NewDryRunPort(w io.Writer) *DryRunPort {
	return &DryRunPort{out: w}
}

func (p *DryRunPort) Write(b []byte) (int, error) {
	p.mx.Lock()
	defer p.mx.Unlock()
	if _, err := fmt.Fprintf(p.out, "% X\n", b); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (p *DryRunPort) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = 0
	}
	return len(b), nil
}

func (p *DryRunPort) Flush() error { return nil }
func (p *DryRunPort) Close() error { return nil }
