package config

import (
	"time"
)

type (
	Headers struct {
		// MaxSize limits the request line together with the headers block, in bytes. Requests
		// exceeding it are rejected as malformed. Non-positive value disables the limit.
		MaxSize int
		// Prealloc is the initial capacity of request headers storage.
		Prealloc int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket. Lines longer than that are still read, just in a few steps.
		ReadBufferSize int
		// MaxWorkers limits how many connections are served simultaneously. Once the limit
		// is reached, no new connections are accepted until some of the current ones are done.
		// Zero removes the limit, so every accepted connection gets its own goroutine at once.
		MaxWorkers int
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
		// ReadTimeout limits the time of receiving the request line and headers. Zero means
		// that a client is waited for as long as it takes.
		ReadTimeout time.Duration `test:"nullable"`
		// WriteTimeout limits the time of writing the response. Zero disables it.
		WriteTimeout time.Duration `test:"nullable"`
	}
)

// Config holds settings used across various parts of superhttp, mainly restrictions,
// limitations and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	NET     NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			// a request line together with headers is rarely longer than a few kilobytes,
			// however there might be extremely long cookies.
			MaxSize:  64 * 1024,
			Prealloc: 10,
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			MaxWorkers:                1024,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
	}
}
