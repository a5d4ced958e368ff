package inputmodule

import (
	"time"

	"go.uber.org/zap"
)

type Option func(*Conn)

// WithLogger sets the logger of the connection. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Conn) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithName overrides the name of the connection, which defaults to the device path.
func WithName(name string) Option {
	return func(c *Conn) {
		c.name = name
	}
}

// WithKind tells the connection which kind of module is attached.
func WithKind(k Kind) Option {
	return func(c *Conn) {
		c.kind = k
	}
}

// WithReadTimeout sets how long a query waits for its response on a port
// opened by Open. 0 waits forever.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Conn) {
		c.serial.ReadTimeout = d
	}
}
