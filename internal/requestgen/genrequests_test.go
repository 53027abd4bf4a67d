package requestgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	request := Generate("hello", Headers(3))
	require.True(t, bytes.HasPrefix(request, []byte("GET /hello HTTP/1.1\r\n")))
	require.True(t, bytes.HasSuffix(request, []byte("Host: localhost\r\n\r\n")))
	require.Equal(t, 5, bytes.Count(request, []byte("\r\n")))
}

func TestRandom(t *testing.T) {
	for range 100 {
		request := Random()
		head, body, found := bytes.Cut(request, []byte("\r\n\r\n"))
		require.True(t, found)

		lines := bytes.Split(head, []byte("\r\n"))
		requestLine := bytes.Fields(lines[0])
		require.Len(t, requestLine, 3)
		require.Contains(t, methods, string(requestLine[0]))
		require.Regexp(t, `^/[a-z0-9]{5}/[a-z0-9]{8}$`, string(requestLine[1]))
		require.Equal(t, "HTTP/1.1", string(requestLine[2]))

		headers := lines[1:]
		require.GreaterOrEqual(t, len(headers), 1)
		require.LessOrEqual(t, len(headers), 50)
		for _, header := range headers {
			require.Regexp(t, `^[a-z0-9]{8}: [a-z0-9]{12}$`, string(header))
		}

		switch string(requestLine[0]) {
		case "POST", "PUT", "PATCH":
			require.GreaterOrEqual(t, len(body), 100)
			require.LessOrEqual(t, len(body), 5000)
			require.NotContains(t, string(body), "\n")
		default:
			require.Empty(t, body)
		}
	}
}

func TestJoinSplit(t *testing.T) {
	requests := RandomN(10)
	require.Equal(t, requests, Split(Join(requests)))
	require.Nil(t, Split(nil))
}
