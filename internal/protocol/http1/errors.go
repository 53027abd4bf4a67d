package http1

import (
	"errors"
)

var (
	ErrPrematureEOF         = errors.New("connection closed before the headers block was terminated")
	ErrHeadersTooLarge      = errors.New("request line and headers are too large")
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrUnsupportedMethod    = errors.New("unsupported request method")
	ErrBadPathEncoding      = errors.New("request path is not a valid UTF-8 string")
	ErrBadVersion           = errors.New("malformed protocol version")
	ErrBadHeader            = errors.New("malformed header line")
)

// ParseError is the only kind of error the parser reports for a request that was received
// but can't be understood. Errors of any other kind returned by the parser are I/O errors
// of the underlying connection.
type ParseError struct {
	Err error
}

func (p *ParseError) Error() string {
	return p.Err.Error()
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

// IsParseError reports whether the error (or any error it wraps) is a ParseError.
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}

func parseError(err error) error {
	return &ParseError{Err: err}
}
