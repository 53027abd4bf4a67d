package transport

import (
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/indigo-web/superhttp/config"
	"github.com/stretchr/testify/require"
)

func newTestTCP(t *testing.T) *TCP {
	tcp := NewTCP(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, tcp.Bind("127.0.0.1:0"))

	return tcp
}

func testNETConfig(workers int) config.NET {
	cfg := config.Default().NET
	cfg.MaxWorkers = workers
	cfg.AcceptLoopInterruptPeriod = 10 * time.Millisecond

	return cfg
}

func TestTCP(t *testing.T) {
	t.Run("echo", func(t *testing.T) {
		tcp := newTestTCP(t)
		done := make(chan error, 1)

		go func() {
			done <- tcp.Listen(testNETConfig(4), func(conn net.Conn) {
				buff := make([]byte, 64)
				n, err := conn.Read(buff)
				if err != nil {
					return
				}

				_, _ = conn.Write(buff[:n])
			})
		}()

		conn, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte("ping"))
		require.NoError(t, err)

		// the connection is closed right after the callback returns
		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.Equal(t, "ping", string(data))
		require.NoError(t, conn.Close())

		tcp.Stop()
		require.NoError(t, <-done)
		tcp.Wait()
		tcp.Close()
	})

	t.Run("workers bound", func(t *testing.T) {
		const workers = 2

		tcp := newTestTCP(t)
		var (
			active, peak atomic.Int64
			release      = make(chan struct{})
			served       sync.WaitGroup
		)

		go func() {
			_ = tcp.Listen(testNETConfig(workers), func(net.Conn) {
				n := active.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}

				<-release
				active.Add(-1)
				served.Done()
			})
		}()

		const clients = 6
		served.Add(clients)
		conns := make([]net.Conn, 0, clients)

		for range clients {
			conn, err := net.Dial("tcp", tcp.Addr().String())
			require.NoError(t, err)
			conns = append(conns, conn)
		}

		require.Eventually(t, func() bool {
			return active.Load() == workers
		}, time.Second, time.Millisecond)

		close(release)
		served.Wait()
		require.Equal(t, int64(workers), peak.Load())

		for _, conn := range conns {
			_ = conn.Close()
		}

		tcp.Stop()
		tcp.Wait()
		tcp.Close()
	})

	t.Run("closed listener", func(t *testing.T) {
		tcp := newTestTCP(t)
		tcp.Close()

		err := tcp.Listen(testNETConfig(1), func(net.Conn) {})
		require.ErrorIs(t, err, net.ErrClosed)
	})

	t.Run("stop without connections", func(t *testing.T) {
		tcp := newTestTCP(t)
		done := make(chan error, 1)

		go func() {
			done <- tcp.Listen(testNETConfig(0), func(net.Conn) {})
		}()

		tcp.Stop()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			require.Fail(t, "accept loop didn't stop")
		}

		tcp.Close()
	})
}
