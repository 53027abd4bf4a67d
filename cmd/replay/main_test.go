package main

import (
	"testing"

	"github.com/indigo-web/superhttp/config"
	"github.com/indigo-web/superhttp/internal/requestgen"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	requests := requestgen.RandomN(20)
	requests = append(requests, []byte("GET HTTP/1.1\r\n\r\n"))

	summary := replay(requestgen.Split(requestgen.Join(requests)), config.Default().Headers)
	require.Equal(t, 21, summary.Requests)
	require.Equal(t, 1, summary.Malformed)
	require.Len(t, summary.Errors, 1)
	require.Contains(t, summary.Errors[0], "request #20")
	require.Greater(t, summary.Bytes, 20*len("HTTP/1.1 200 OK\r\n\r\n")-1)
}
