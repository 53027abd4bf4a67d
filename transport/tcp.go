package transport

import (
	"errors"
	"log/slog"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/superhttp/config"
	"github.com/indigo-web/superhttp/internal/timer"
)

// acceptBackoff is how long the accept loop pauses after an unexpected accept error,
// e.g. running out of file descriptors.
const acceptBackoff = 50 * time.Millisecond

var _ Transport = new(TCP)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

type TCP struct {
	l      listener
	logger *slog.Logger
	wg     *sync.WaitGroup
	stop   *atomic.Bool
}

// NewTCP returns an unbound transport. Accept errors are reported to the logger.
func NewTCP(logger *slog.Logger) *TCP {
	return &TCP{
		logger: logger,
		wg:     new(sync.WaitGroup),
		stop:   new(atomic.Bool),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) (err error) {
	t.l, err = bindTCP(addr)
	return err
}

// Addr returns the bound address. Useful when bound to port 0.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// SetLogger replaces the logger accept errors are reported to.
func (t *TCP) SetLogger(logger *slog.Logger) {
	t.logger = logger
}

// Listen accepts connections until Stop is called. Every connection is served in its own
// goroutine, however no more than cfg.MaxWorkers at once: when all of them are busy, no
// connections are accepted until one is done.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	workers := newLimiter(cfg.MaxWorkers)

	for !t.stop.Load() {
		if !workers.Acquire(cfg.AcceptLoopInterruptPeriod) {
			continue
		}

		conn, err := t.accept(cfg.AcceptLoopInterruptPeriod)
		if err != nil {
			workers.Release()

			switch {
			case errors.Is(err, os.ErrDeadlineExceeded):
				continue
			case errors.Is(err, net.ErrClosed):
				if t.stop.Load() {
					return nil
				}

				return err
			}

			t.logger.Warn("failed to accept a connection", "error", err)
			time.Sleep(acceptBackoff)
			continue
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()
			defer workers.Release()

			cb(conn)
			_ = conn.Close()
		}(conn)
	}

	return nil
}

func (t *TCP) accept(timeout time.Duration) (net.Conn, error) {
	if err := t.l.SetDeadline(timer.Deadline(timeout)); err != nil {
		return nil, err
	}

	return t.l.Accept()
}

// Stop makes the accept loop exit at its next iteration. Connections being served aren't
// affected. The call isn't blocking.
func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	_ = t.l.Close()
}

// Wait blocks until all the connections are served.
func (t *TCP) Wait() {
	t.wg.Wait()
}
