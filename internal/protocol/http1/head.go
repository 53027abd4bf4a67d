package http1

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/indigo-web/superhttp/http/proto"
	"github.com/indigo-web/superhttp/kv"
	"github.com/indigo-web/utils/uf"
)

const scheme = "HTTP/"

// parseHead parses the protocol version and header lines. The first line must be the
// version token, while the last two lines are reserved for the separator and the body, so
// they are never treated as headers. Strings of the returned storage point into lines.
func parseHead(lines [][]byte, prealloc int) (proto.Version, *kv.Storage, error) {
	version, err := parseVersion(lines[0])
	if err != nil {
		return version, nil, err
	}

	headers := kv.NewPrealloc(prealloc)
	if len(lines) < 3 {
		return version, headers, nil
	}

	for _, line := range lines[1 : len(lines)-2] {
		if !utf8.Valid(line) {
			return version, nil, fmt.Errorf("%w: header line %q is not a valid UTF-8 string", ErrBadHeader, line)
		}

		key, value, found := bytes.Cut(line, []byte(":"))
		if !found {
			return version, nil, fmt.Errorf("%w: header line %q doesn't contain ':'", ErrBadHeader, line)
		}

		headers.Set(uf.B2S(bytes.TrimSpace(key)), uf.B2S(bytes.TrimSpace(value)))
	}

	return version, headers, nil
}

func parseVersion(line []byte) (version proto.Version, err error) {
	if !bytes.HasPrefix(line, []byte(scheme)) {
		return version, fmt.Errorf("%w: expected %q, got %q", ErrBadVersion, scheme, line)
	}

	major, minor, found := bytes.Cut(line[len(scheme):], []byte("."))
	if !found {
		return version, fmt.Errorf("%w: version %q doesn't contain '.'", ErrBadVersion, line)
	}

	if version.Major, err = parseUint(major); err != nil {
		return version, fmt.Errorf("%w: cannot parse major version from %q", ErrBadVersion, major)
	}

	if version.Minor, err = parseUint(minor); err != nil {
		return version, fmt.Errorf("%w: cannot parse minor version from %q", ErrBadVersion, minor)
	}

	return version, nil
}

func parseUint(b []byte) (uint, error) {
	n, err := strconv.ParseUint(uf.B2S(bytes.TrimSpace(b)), 10, 0)
	return uint(n), err
}
