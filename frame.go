package inputmodule

import (
	"errors"

	"go.uber.org/zap"
)

// ErrFrameFinished is returned when a frame session is used after Commit,
// Flush or Abort.
var ErrFrameFinished = errors.New("frame session already finished")

// frameSession holds the wire of a connection from begin until commit or abort.
// If a command fails in between, the frame on the device stays partial.
type frameSession struct {
	c    *Conn
	done bool
}

func (c *Conn) beginSession() (frameSession, error) {
	c.wire.Lock()
	if err := c.usable(); err != nil {
		c.wire.Unlock()
		return frameSession{}, err
	}
	return frameSession{c: c}, nil
}

func (s *frameSession) send(cmd Command) error {
	if s.done {
		return ErrFrameFinished
	}
	_, err := s.c.exchange(cmd)
	return err
}

func (s *frameSession) finish(cmd *Command) error {
	if s.done {
		return ErrFrameFinished
	}
	var err error
	if cmd != nil {
		_, err = s.c.exchange(*cmd)
	}
	s.done = true
	s.c.wire.Unlock()
	return err
}

// GreyFrame stages greyscale columns on the LED matrix. Nothing changes on
// the matrix until Commit. No other command can reach the module while the
// frame is open, so it must always be committed or aborted.
type GreyFrame struct {
	frameSession
	staged [Width]bool
}

// BeginGreyFrame opens a greyscale frame session.
func (c *Conn) BeginGreyFrame() (*GreyFrame, error) {
	s, err := c.beginSession()
	if err != nil {
		return nil, err
	}
	return &GreyFrame{frameSession: s}, nil
}

// StageColumn stages the brightness of column x.
func (f *GreyFrame) StageColumn(x int, values [Height]byte) error {
	if x < 0 || x >= Width {
		return &ValueRangeError{What: "column", Value: x, Min: 0, Max: Width - 1}
	}
	if err := f.send(StageGreyCol(x, values)); err != nil {
		return err
	}
	f.staged[x] = true
	return nil
}

// Stage stages all columns of g.
func (f *GreyFrame) Stage(g *Greyscale) error {
	for x := 0; x < Width; x++ {
		if err := f.StageColumn(x, g.Column(x)); err != nil {
			return err
		}
	}
	return nil
}

// Commit shows the staged columns and ends the session. Columns that were not
// staged keep their previous content.
func (f *GreyFrame) Commit() error {
	if !f.done {
		for x, ok := range f.staged {
			if !ok {
				f.c.logger.Debug("committing partial grey frame", zap.String("device", f.c.name), zap.Int("missing_column", x))
				break
			}
		}
	}
	cmd := DrawGreyColBuffer()
	return f.finish(&cmd)
}

// Abort ends the session without committing. Calling it after Commit is a no-op.
func (f *GreyFrame) Abort() {
	if !f.done {
		f.finish(nil)
	}
}

// B1Frame writes columns into the framebuffer of the B1 display. Nothing
// changes on the display until Flush. Like GreyFrame it blocks all other
// commands until it is flushed or aborted.
type B1Frame struct {
	frameSession
}

// BeginB1Frame opens a B1 framebuffer session.
func (c *Conn) BeginB1Frame() (*B1Frame, error) {
	s, err := c.beginSession()
	if err != nil {
		return nil, err
	}
	return &B1Frame{frameSession: s}, nil
}

// SetColumn writes column x of the framebuffer.
func (f *B1Frame) SetColumn(x int, column [B1ColumnSize]byte) error {
	if x < 0 || x >= B1Width {
		return &ValueRangeError{What: "b1 column", Value: x, Min: 0, Max: B1Width - 1}
	}
	return f.send(SetPixelColumn(x, column))
}

// Draw writes all columns of b.
func (f *B1Frame) Draw(b *B1Bitmap) error {
	for x := 0; x < B1Width; x++ {
		if err := f.SetColumn(x, b.Column(x)); err != nil {
			return err
		}
	}
	return nil
}

// Flush shows the framebuffer and ends the session.
func (f *B1Frame) Flush() error {
	cmd := FlushFramebuffer()
	return f.finish(&cmd)
}

// Abort ends the session without flushing. Calling it after Flush is a no-op.
func (f *B1Frame) Abort() {
	if !f.done {
		f.finish(nil)
	}
}
