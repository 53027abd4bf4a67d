package http

import (
	"net"

	"github.com/indigo-web/superhttp/http/method"
	"github.com/indigo-web/superhttp/http/proto"
	"github.com/indigo-web/superhttp/kv"
)

type Headers = *kv.Storage

// Request represents HTTP request
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the request target exactly as received. It's guaranteed to be a valid UTF-8
	// string without whitespaces.
	Path string
	// Protocol is the version token of the request line.
	Protocol proto.Version
	// Headers holds trimmed header pairs. Lookup is case-sensitive and each name holds only
	// its last value.
	Headers Headers
	// Body is whatever trailing line was left in the headers buffer. The parser never reads
	// past the blank line terminating the headers block, so it's nil for requests that came
	// from a connection.
	Body []byte
	// Remote holds the remote address. Might be nil if the request wasn't read from the network.
	Remote net.Addr
	raw    []byte
}

func NewRequest(headers Headers, raw []byte) *Request {
	return &Request{
		Method:   method.Unknown,
		Protocol: proto.HTTP11,
		Headers:  headers,
		raw:      raw,
	}
}

// Raw returns the request line and the headers block as they were received, including
// the terminating blank line. Strings of the request point into this buffer, so it must
// not be modified.
func (r *Request) Raw() []byte {
	return r.raw
}

// Respond returns a fresh response builder.
func (r *Request) Respond() *Response {
	return NewResponse()
}
