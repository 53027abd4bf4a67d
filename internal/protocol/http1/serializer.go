package http1

import (
	"io"

	"github.com/indigo-web/superhttp/http"
	"github.com/indigo-web/superhttp/http/status"
)

// Serializer renders responses into a reusable buffer and writes each one at once.
type Serializer struct {
	buff   []byte
	writer io.Writer
}

func NewSerializer(buff []byte, writer io.Writer) *Serializer {
	return &Serializer{
		buff:   buff,
		writer: writer,
	}
}

// Write serializes the response and writes it in a single call.
func (s *Serializer) Write(response *http.Response) error {
	s.buff = AppendResponse(s.buff[:0], response)
	_, err := s.writer.Write(s.buff)
	return err
}

// Serialize returns the wire representation of the response.
func Serialize(response *http.Response) []byte {
	return AppendResponse(nil, response)
}

// AppendResponse appends the status line, headers in their storage order, the blank line and
// the body (if any) to the buffer. Nothing is validated nor added implicitly, so the body
// is sent even if there's no Content-Length describing it.
func AppendResponse(buff []byte, response *http.Response) []byte {
	fields := response.Reveal()

	buff = fields.Protocol.Append(buff)
	buff = append(buff, ' ')
	buff = append(buff, status.Text(fields.Code)...)
	buff = append(buff, crlf...)

	for key, value := range fields.Headers.Pairs() {
		buff = append(buff, key...)
		buff = append(buff, ": "...)
		buff = append(buff, value...)
		buff = append(buff, crlf...)
	}

	buff = append(buff, crlf...)

	if fields.Body != nil {
		buff = append(buff, fields.Body...)
	}

	return buff
}
