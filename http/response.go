package http

import (
	"github.com/indigo-web/superhttp/http/mime"
	"github.com/indigo-web/superhttp/http/proto"
	"github.com/indigo-web/superhttp/http/status"
	"github.com/indigo-web/superhttp/internal/response"
	"github.com/indigo-web/superhttp/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const (
	// why 7? I don't know. There's no theory behind this number nor researches.
	// It can be adjusted to 10 as well, but why you would ever need to do this?
	preallocRespHeaders = 7
)

type Response struct {
	fields *response.Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// protocol HTTP/1.1, no headers and no body. Nothing is added implicitly: the response is
// serialized exactly as it was built, so there's no automatic Content-Length either.
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Code:     status.OK,
			Protocol: proto.HTTP11,
			Headers:  kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// ContentType sets the Content-Type header. If no charset is passed, the default one for
// the MIME is used, if any.
func (r *Response) ContentType(contentType mime.MIME, charset ...mime.Charset) *Response {
	cs := mime.DefaultCharset[contentType]
	if len(charset) > 0 {
		cs = charset[0]
	}

	return r.Header("Content-Type", mime.Render(contentType, cs))
}

// Code sets a Response code. The status text is derived from it automatically.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Protocol overrides the version of the status line. Defaults to HTTP/1.1
func (r *Response) Protocol(version proto.Version) *Response {
	r.fields.Protocol = version
	return r
}

// Header sets the header value. In case it already exists, the value is replaced.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Set(key, value)
	return r
}

// Headers simply merges passed headers into Response.
func (r *Response) Headers(headers map[string]string) *Response {
	for k, v := range headers {
		r.Header(k, v)
	}

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryJSON receives a model (must be a pointer to the structure) and returns a new Response
// object and an error
func (r *Response) TryJSON(model any) (*Response, error) {
	// the previous body might point into a string, so it must not be reused
	r.fields.Body = nil
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.ContentType(mime.JSON), err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// If an instance of status.HTTPError is passed, error code will be automatically set. Custom
// codes can be passed, however only first will be used. By default, the code is
// status.InternalServerError. The error text becomes the body.
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	c := status.InternalServerError
	if http, ok := err.(status.HTTPError); ok {
		c = http.Code
	} else if len(code) > 0 {
		// peek the first, ignore the rest
		c = code[0]
	}

	return r.
		Code(c).
		String(err.Error())
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() *response.Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	*r.fields = r.fields.Clear()
	return r
}

// Respond implements Responder. A response is already a response.
func (r *Response) Respond() *Response {
	if r == nil {
		return NewResponse()
	}

	return r
}

// Code is a shorthand for NewResponse().Code(...)
func Code(code status.Code) *Response {
	return NewResponse().Code(code)
}

// String is a shorthand for NewResponse().Code(...).String(...). It mirrors the most common
// way to build a response: a status and a text body.
func String(code status.Code, body string) *Response {
	return NewResponse().Code(code).String(body)
}

// Bytes is a shorthand for NewResponse().Code(...).Bytes(...)
func Bytes(code status.Code, body []byte) *Response {
	return NewResponse().Code(code).Bytes(body)
}

// JSON is a shorthand for NewResponse().JSON(...)
func JSON(model any) *Response {
	return NewResponse().JSON(model)
}

// Error is a shorthand for NewResponse().Error(...)
func Error(err error, code ...status.Code) *Response {
	return NewResponse().Error(err, code...)
}
