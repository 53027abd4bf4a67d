package http1

import (
	"bytes"
	"slices"
	"testing"

	"github.com/indigo-web/superhttp/http/proto"
	"github.com/stretchr/testify/require"
)

func lines(raw string) [][]byte {
	return bytes.Split([]byte(raw), []byte("\n"))
}

func TestParseHead(t *testing.T) {
	t.Run("version only", func(t *testing.T) {
		version, headers, err := parseHead(lines("HTTP/1.1"), 0)
		require.NoError(t, err)
		require.Equal(t, proto.HTTP11, version)
		require.True(t, headers.Empty())
	})

	t.Run("separator and body lines are skipped", func(t *testing.T) {
		version, headers, err := parseHead(lines("HTTP/1.0\r\nA: 1\r\nB: 2\r\n\r\nnot: a header"), 2)
		require.NoError(t, err)
		require.Equal(t, proto.Version{Major: 1}, version)
		require.Equal(t, []string{"A", "B"}, slices.Collect(headers.Keys()))
		require.False(t, headers.Has("not"))
	})

	t.Run("bad version", func(t *testing.T) {
		_, _, err := parseHead(lines("HTTP/1\r\n\r\n"), 0)
		require.ErrorIs(t, err, ErrBadVersion)
	})

	t.Run("bad header", func(t *testing.T) {
		_, _, err := parseHead(lines("HTTP/1.1\r\nno colon\r\n\r\n"), 0)
		require.ErrorIs(t, err, ErrBadHeader)
	})
}

func TestParseVersion(t *testing.T) {
	for _, tc := range []struct {
		Token string
		Want  proto.Version
	}{
		{"HTTP/1.1", proto.HTTP11},
		{"HTTP/1.1\r", proto.HTTP11},
		{"HTTP/ 2 . 0 ", proto.Version{Major: 2}},
		{"HTTP/0.9", proto.Version{Minor: 9}},
	} {
		version, err := parseVersion([]byte(tc.Token))
		require.NoError(t, err, tc.Token)
		require.Equal(t, tc.Want, version)
	}

	for _, token := range []string{"", "HTTP", "http/1.1", "HTTP/1", "HTTP/.1", "HTTP/1.", "HTTP/a.b", "HTTP/1.1.1"} {
		_, err := parseVersion([]byte(token))
		require.ErrorIs(t, err, ErrBadVersion, token)
	}
}
