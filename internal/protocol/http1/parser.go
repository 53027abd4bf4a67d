package http1

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/indigo-web/superhttp/config"
	"github.com/indigo-web/superhttp/http"
	"github.com/indigo-web/superhttp/http/method"
	"github.com/indigo-web/utils/uf"
)

const crlf = "\r\n"

// Parser reads requests off a buffered stream. It reads exactly up to and including the
// blank line terminating the headers block and not a single byte further, so whatever
// follows (e.g. a body) is left in the stream untouched.
type Parser struct {
	reader *bufio.Reader
	cfg    config.Headers
}

func NewParser(reader *bufio.Reader, cfg config.Headers) *Parser {
	return &Parser{
		reader: reader,
		cfg:    cfg,
	}
}

// ParseRequest is a shorthand for NewParser(...).Parse()
func ParseRequest(reader *bufio.Reader, cfg config.Headers) (*http.Request, error) {
	return NewParser(reader, cfg).Parse()
}

// Parse reads and parses a single request. Any malformed input results in *ParseError,
// including the stream ending before the headers block was terminated (ErrPrematureEOF).
// Other errors come from the reader as they are.
func (p *Parser) Parse() (*http.Request, error) {
	raw, err := p.readHead()
	if err != nil {
		return nil, err
	}

	request, err := parse(raw, p.cfg.Prealloc)
	if err != nil {
		return nil, parseError(err)
	}

	return request, nil
}

// readHead reads lines until a line consisting of just CRLF. Each line, including the
// terminating one, is appended to the returned buffer. Non-positive MaxSize disables the
// size limit.
func (p *Parser) readHead() ([]byte, error) {
	var raw []byte
	lineStart := 0

	for {
		chunk, err := p.reader.ReadSlice('\n')
		raw = append(raw, chunk...)
		if p.cfg.MaxSize > 0 && len(raw) > p.cfg.MaxSize {
			return nil, parseError(ErrHeadersTooLarge)
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			// the line is longer than the reader's buffer, continue to read it
			continue
		case errors.Is(err, io.EOF):
			return nil, parseError(ErrPrematureEOF)
		default:
			return nil, err
		}

		if string(raw[lineStart:]) == crlf {
			return raw, nil
		}

		lineStart = len(raw)
	}
}

// parse splits the raw buffer into lines and builds a request out of them. The request
// keeps the raw buffer, as its strings point into it.
func parse(raw []byte, prealloc int) (*http.Request, error) {
	lines := bytes.Split(raw, []byte("\n"))

	requestLine := bytes.Fields(lines[0])
	if len(requestLine) != 3 {
		return nil, fmt.Errorf(
			"%w: expected method, path and protocol, got %q", ErrMalformedRequestLine, lines[0],
		)
	}

	methodToken, path, version := requestLine[0], requestLine[1], requestLine[2]

	m := method.Parse(uf.B2S(methodToken))
	if m == method.Unknown {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, methodToken)
	}

	if !utf8.Valid(path) {
		return nil, fmt.Errorf("%w: %q", ErrBadPathEncoding, path)
	}

	lines[0] = version
	protocol, headers, err := parseHead(lines, prealloc)
	if err != nil {
		return nil, err
	}

	request := http.NewRequest(headers, raw)
	request.Method = m
	request.Path = uf.B2S(path)
	request.Protocol = protocol

	if last := lines[len(lines)-1]; len(last) > 0 {
		request.Body = last
	}

	return request, nil
}

// ParseBytes parses a request held entirely in memory. Unlike Parse, whatever follows the
// blank line (if it contains no line breaks) becomes the request body. The buffer must
// contain the blank line, otherwise ErrPrematureEOF is returned. The request references
// the passed buffer.
func ParseBytes(raw []byte, cfg config.Headers) (*http.Request, error) {
	if cfg.MaxSize > 0 && len(raw) > cfg.MaxSize {
		return nil, parseError(ErrHeadersTooLarge)
	}

	if !bytes.HasPrefix(raw, []byte(crlf)) && !bytes.Contains(raw, []byte(crlf+crlf)) {
		return nil, parseError(ErrPrematureEOF)
	}

	request, err := parse(raw, cfg.Prealloc)
	if err != nil {
		return nil, parseError(err)
	}

	return request, nil
}
