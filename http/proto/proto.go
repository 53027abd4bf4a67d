package proto

import "strconv"

// Version is the pair of numbers following the HTTP/ scheme in a request or status line.
// Both numbers are arbitrary unsigned integers, there's no check whether the version
// actually exists.
type Version struct {
	Major, Minor uint
}

// HTTP11 is the only version responses are ever written with.
var HTTP11 = Version{Major: 1, Minor: 1}

const scheme = "HTTP/"

// String returns the protocol token, e.g. HTTP/1.1
func (v Version) String() string {
	return string(v.Append(nil))
}

// Append appends the protocol token to the buffer.
func (v Version) Append(buff []byte) []byte {
	buff = append(buff, scheme...)
	buff = strconv.AppendUint(buff, uint64(v.Major), 10)
	buff = append(buff, '.')
	return strconv.AppendUint(buff, uint64(v.Minor), 10)
}
