package http

import (
	"fmt"

	"github.com/indigo-web/superhttp/http/status"
)

// Responder is anything that can be turned into a response. Handlers return it, so they
// may return either a plain *Response or a Result carrying a possible failure.
type Responder interface {
	Respond() *Response
}

// Handler processes requests. The same Handler is called concurrently by every connection,
// so implementations must be safe for concurrent use.
type Handler interface {
	Handle(request *Request) Responder
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(request *Request) Responder

func (h HandlerFunc) Handle(request *Request) Responder {
	return h(request)
}

// Result is either a successful Responder or an error. Results may be nested, the value
// is converted recursively.
type Result struct {
	Value Responder
	Err   error
}

// Try wraps the common (value, err) pair into a Result.
func Try[R Responder](value R, err error) Result {
	return Result{Value: value, Err: err}
}

// Fail returns a failed Result.
func Fail(err error) Result {
	return Result{Err: err}
}

// Respond converts the result into a response. A failure always results in
// 500 Internal Server Error with the error described in the body.
func (r Result) Respond() *Response {
	if r.Err != nil {
		return String(
			status.InternalServerError,
			fmt.Sprintf("Failed to process http request: %s", r.Err),
		)
	}

	return Respond(r.Value)
}

// Respond converts any Responder into a response. A nil responder results in an empty
// 200 OK response.
func Respond(r Responder) *Response {
	if r == nil {
		return NewResponse()
	}

	return r.Respond()
}
