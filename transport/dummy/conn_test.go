package dummy

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConn(t *testing.T) {
	t.Run("pieces", func(t *testing.T) {
		pieces := [][]byte{
			[]byte("Hello"), []byte("world!"),
		}
		conn := NewConn(pieces...)
		buff := make([]byte, 64)

		for _, piece := range pieces {
			n, err := conn.Read(buff)
			require.NoError(t, err)
			require.Equal(t, string(piece), string(buff[:n]))
		}

		_, err := conn.Read(buff)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("small buffer", func(t *testing.T) {
		conn := NewConn([]byte("Hello"))
		buff := make([]byte, 3)

		n, err := conn.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "Hel", string(buff[:n]))
		n, err = conn.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "lo", string(buff[:n]))
	})

	t.Run("failing reads", func(t *testing.T) {
		reset := errors.New("connection reset by peer")
		_, err := NewConn().FailReads(reset).Read(make([]byte, 1))
		require.ErrorIs(t, err, reset)
	})

	t.Run("writes", func(t *testing.T) {
		conn := NewConn()
		_, _ = conn.Write([]byte("Hello, "))
		_, _ = conn.Write([]byte("world!"))
		require.Equal(t, "Hello, world!", string(conn.Written()))
		require.Equal(t, 2, conn.Writes())

		nop := NewNopConn()
		_, _ = nop.Write([]byte("discarded"))
		require.Empty(t, nop.Written())
		require.Equal(t, 1, nop.Writes())
	})
}
