package inputmodule

import (
	"io"
	"sync"
)

var _ Port = &TestPort{}

// TestPort is a fake Port for tests. It records every frame written to it
// and answers queries with canned responses.
type TestPort struct {
	mx      sync.Mutex
	frames  [][]byte
	answers map[Opcode][]byte
	pending []byte
	closed  bool

	// OnWrite, if set, is called for every frame. A returned error fails the write.
	OnWrite func(frame []byte) error

	// OnRead, if set, is called before every read. A returned error fails the read.
	OnRead func() error

	// OnClose, if set, is returned by Close.
	OnClose func() error
}

// NewTestPort returns a TestPort without any answers.
func NewTestPort() *TestPort {
	return &TestPort{answers: map[Opcode][]byte{}}
}

// Answer makes the port respond with resp to every query of op.
// A resp shorter than ResponseSize simulates a truncated response.
func (p *TestPort) Answer(op Opcode, resp ...byte) *TestPort {
	p.mx.Lock()
	p.answers[op] = resp
	p.mx.Unlock()
	return p
}

// Frames returns a copy of the frames written so far.
func (p *TestPort) Frames() [][]byte {
	p.mx.Lock()
	defer p.mx.Unlock()
	out := make([][]byte, len(p.frames))
	for i, f := range p.frames {
		out[i] = append([]byte(nil), f...)
	}
	return out
}

// Reset forgets the frames written so far.
func (p *TestPort) Reset() {
	p.mx.Lock()
	p.frames = nil
	p.mx.Unlock()
}

func (p *TestPort) IsClosed() bool {
	p.mx.Lock()
	defer p.mx.Unlock()
	return p.closed
}

func (p *TestPort) Write(b []byte) (int, error) {
	frame := append([]byte(nil), b...)
	if p.OnWrite != nil {
		if err := p.OnWrite(frame); err != nil {
			return 0, err
		}
	}
	p.mx.Lock()
	defer p.mx.Unlock()
	p.frames = append(p.frames, frame)
	// a query is a frame without parameters
	if len(frame) == len(Magic)+1 {
		if resp, has := p.answers[Opcode(frame[2])]; has {
			p.pending = append(p.pending[:0], resp...)
		}
	}
	return len(b), nil
}

func (p *TestPort) Read(b []byte) (int, error) {
	if p.OnRead != nil {
		if err := p.OnRead(); err != nil {
			return 0, err
		}
	}
	p.mx.Lock()
	defer p.mx.Unlock()
	if len(p.pending) == 0 {
		return 0, io.EOF
	}
	n := copy(b, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

// Flush drops the rest of an unread response.
func (p *TestPort) Flush() error {
	p.mx.Lock()
	p.pending = nil
	p.mx.Unlock()
	return nil
}

func (p *TestPort) Close() error {
	p.mx.Lock()
	p.closed = true
	p.mx.Unlock()
	if p.OnClose != nil {
		return p.OnClose()
	}
	return nil
}

// Response pads resp with zeros to a full response.
func Response(resp ...byte) []byte {
	full := make([]byte, ResponseSize)
	copy(full, resp)
	return full
}
