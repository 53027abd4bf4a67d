package dummy

import (
	"io"
	"net"
	"sync"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is an in-memory connection. Every read returns the next piece of data it was
// initialised with, and once they are over, the configured error (io.EOF by default).
// Everything written is accumulated and can be retrieved via Written.
type Conn struct {
	mu      sync.Mutex
	pieces  [][]byte
	readErr error
	written []byte
	writes  int
	closed  bool
	nop     bool
	remote  net.Addr
}

func NewConn(pieces ...[]byte) *Conn {
	return &Conn{
		pieces:  pieces,
		readErr: io.EOF,
		remote:  &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 54321},
	}
}

// NewNopConn returns a connection with nothing to read and which discards everything written.
func NewNopConn() *Conn {
	return NewConn().Nop()
}

func (c *Conn) Read(b []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.pieces) > 0 && len(c.pieces[0]) == 0 {
		c.pieces = c.pieces[1:]
	}

	if len(c.pieces) == 0 {
		return 0, c.readErr
	}

	n = copy(b, c.pieces[0])
	c.pieces[0] = c.pieces[0][n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writes++
	if !c.nop {
		c.written = append(c.written, b...)
	}

	return len(b), nil
}

func (c *Conn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.remote
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}

// Nop makes the connection discard written data.
func (c *Conn) Nop() *Conn {
	c.nop = true
	return c
}

// FailReads makes reads fail with the error once the data is over.
func (c *Conn) FailReads(err error) *Conn {
	c.readErr = err
	return c
}

// Written returns everything written into the connection so far.
func (c *Conn) Written() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.written
}

// Writes returns how many times Write was called.
func (c *Conn) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.writes
}

func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}
