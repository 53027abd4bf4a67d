// Package requestgen produces raw HTTP/1.1 requests for tests, benchmarks and the replay tool.
package requestgen

import (
	"bytes"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/superhttp/kv"
)

// Separator delimits requests in a replay file.
const Separator = '\x00'

var (
	lowerDigits = []byte("abcdefghijklmnopqrstuvwxyz0123456789")
	bodyChars   = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 ")
	methods     = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"}
)

// Headers returns n deterministic headers, the last of which is always Host.
func Headers(n int) *kv.Storage {
	hdrs := kv.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Set("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	return hdrs.Set("Host", "localhost")
}

func HeadersBlock(hdrs *kv.Storage) (buff []byte) {
	for key, value := range hdrs.Pairs() {
		buff = append(buff, key+": "+value+"\r\n"...)
	}

	return buff
}

// Generate returns a GET request to /uri with the headers and the terminating blank line.
func Generate(uri string, hdrs *kv.Storage) (request []byte) {
	request = append(request, "GET /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}

// Random returns a request of a random method to a path like /abcde/fgh12345 with 1 to 50
// random headers. POST, PUT and PATCH requests carry a body of 100 to 5000 characters
// right after the blank line. Header names may repeat.
func Random() []byte {
	method := methods[rand.IntN(len(methods))]
	path := "/" + randomString(5) + "/" + randomString(8)

	request := []byte(method + " " + path + " HTTP/1.1\r\n")
	for range 1 + rand.IntN(50) {
		request = append(request, randomString(8)+": "+randomString(12)+"\r\n"...)
	}

	request = append(request, '\r', '\n')

	switch method {
	case "POST", "PUT", "PATCH":
		request = append(request, uniuri.NewLenChars(100+rand.IntN(4901), bodyChars)...)
	}

	return request
}

// RandomN returns n random requests.
func RandomN(n int) [][]byte {
	requests := make([][]byte, n)
	for i := range requests {
		requests[i] = Random()
	}

	return requests
}

// Join concatenates requests, separating them by the Separator.
func Join(requests [][]byte) []byte {
	return bytes.Join(requests, []byte{Separator})
}

// Split is the reverse of Join.
func Split(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}

	return bytes.Split(data, []byte{Separator})
}

func randomString(n int) string {
	return uniuri.NewLenChars(n, lowerDigits)
}
