package inputmodule

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Conn is the connection to one input module.
//
// Commands are sent one after another in call order. After the first
// transport failure the connection counts as disconnected: every following
// call fails with ConnectionClosedError without touching the port.
type Conn struct {
	port   Port
	name   string
	kind   Kind
	serial SerialConfig
	logger *zap.Logger

	// wire is held for every exchange and for the whole lifetime of a frame session
	wire sync.Mutex

	mx           sync.RWMutex
	closed       bool
	disconnected bool
}

// Open opens the serial port at device.
func Open(device string, options ...Option) (*Conn, error) {
	c := newConn(device, options)
	port, err := OpenSerial(c.serial)
	if err != nil {
		return nil, err
	}
	c.port = port
	c.logger.Debug("opened", zap.String("device", c.name), zap.Stringer("kind", c.kind))
	return c, nil
}

// NewConn returns a connection over an already open port.
func NewConn(port Port, options ...Option) *Conn {
	c := newConn("port", options)
	c.port = port
	return c
}

func newConn(device string, options []Option) *Conn {
	c := &Conn{
		name:   device,
		serial: DefaultSerialConfig(device),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *Conn) String() string { return c.name }

// Kind returns the kind of the module, KindUnknown if it was not given.
func (c *Conn) Kind() Kind { return c.kind }

// Logger returns the logger of the connection.
func (c *Conn) Logger() *zap.Logger { return c.logger }

// IsClosed reports whether the connection was closed or lost.
func (c *Conn) IsClosed() bool {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.closed || c.disconnected
}

// Close closes the port. Closing twice is not an error.
func (c *Conn) Close() error {
	c.mx.Lock()
	if c.closed {
		c.mx.Unlock()
		return nil
	}
	c.closed = true
	c.mx.Unlock()

	if err := c.port.Close(); err != nil {
		return CloseError{Device: c.name, WrappedError: err}
	}
	c.logger.Debug("closed", zap.String("device", c.name))
	return nil
}

// Send sends cmd. The response of a query is read and discarded.
func (c *Conn) Send(cmd Command) error {
	c.wire.Lock()
	defer c.wire.Unlock()
	_, err := c.exchange(cmd)
	return err
}

// Query sends cmd and returns the full response.
func (c *Conn) Query(cmd Command) ([]byte, error) {
	if !cmd.ExpectsResponse() {
		cmd.expectsResponse = true
	}
	c.wire.Lock()
	defer c.wire.Unlock()
	return c.exchange(cmd)
}

// SendAll sends the commands in order and stops at the first error.
// No other command is sent in between.
func (c *Conn) SendAll(cmds []Command) error {
	c.wire.Lock()
	defer c.wire.Unlock()
	for _, cmd := range cmds {
		if _, err := c.exchange(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (c *Conn) usable() error {
	if c.IsClosed() {
		return ConnectionClosedError(c.name)
	}
	return nil
}

// exchange must be called with c.wire held.
func (c *Conn) exchange(cmd Command) ([]byte, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}

	if ce := c.logger.Check(zap.DebugLevel, "send"); ce != nil {
		ce.Write(zap.String("device", c.name), zap.Stringer("command", cmd))
	}

	if cmd.ExpectsResponse() {
		// stale bytes would be taken for the response
		if err := c.port.Flush(); err != nil {
			c.logger.Warn("flush failed", zap.String("device", c.name), zap.Error(err))
		}
	}

	if _, err := c.port.Write(cmd.Bytes()); err != nil {
		return nil, c.fail("send "+cmd.Opcode().String(), err)
	}

	if !cmd.ExpectsResponse() {
		return nil, nil
	}

	resp := make([]byte, ResponseSize)
	n, err := io.ReadFull(c.port, resp)
	switch {
	case err == nil:
		return resp, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return resp[:n], fmt.Errorf("query %s on %s: %w", cmd.Opcode(), c.name, &ResponseTruncatedError{Want: ResponseSize, Got: n})
	}
	return nil, c.fail("read response to "+cmd.Opcode().String(), err)
}

func (c *Conn) fail(task string, err error) error {
	c.mx.Lock()
	c.disconnected = true
	c.mx.Unlock()
	c.logger.Warn("device lost", zap.String("device", c.name), zap.String("task", task), zap.Error(err))
	return &TransportError{Device: c.name, Task: task, WrappedError: err}
}

// Version returns the firmware version. All module kinds answer it.
func (c *Conn) Version() (Version, error) {
	resp, err := c.Query(GetVersion())
	if err != nil {
		return Version{}, err
	}
	return DecodeVersion(resp)
}

func (c *Conn) SetBrightness(v uint8) error {
	return c.Send(SetBrightness(v))
}

func (c *Conn) Brightness() (uint8, error) {
	resp, err := c.Query(GetBrightness())
	if err != nil {
		return 0, err
	}
	return DecodeBrightness(resp)
}

func (c *Conn) SetSleep(sleep bool) error {
	return c.Send(SetSleep(sleep))
}

func (c *Conn) Sleeping() (bool, error) {
	resp, err := c.Query(GetSleep())
	if err != nil {
		return false, err
	}
	return DecodeBool(resp)
}

// BootloaderReset reboots the module into its bootloader. The serial port
// goes away afterwards, so the connection is closed.
func (c *Conn) BootloaderReset() error {
	if err := c.Send(BootloaderReset()); err != nil {
		return err
	}
	return c.Close()
}
