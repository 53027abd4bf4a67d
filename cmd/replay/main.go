// Replay either generates a file of random requests, or parses every request of such a
// file and renders a response to it, reporting how long it took.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/indigo-web/superhttp/config"
	"github.com/indigo-web/superhttp/http"
	"github.com/indigo-web/superhttp/http/status"
	"github.com/indigo-web/superhttp/internal/protocol/http1"
	"github.com/indigo-web/superhttp/internal/requestgen"
	json "github.com/json-iterator/go"
)

type Summary struct {
	Requests  int           `json:"requests"`
	Malformed int           `json:"malformed"`
	Bytes     int           `json:"bytes"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	PerSecond float64       `json:"requests_per_second"`
	Errors    []string      `json:"errors,omitempty"`
}

func main() {
	var (
		generate = flag.Int("generate", 0, "number of random requests to generate instead of replaying")
		out      = flag.String("out", "random_http_requests.txt", "file to write generated requests into")
	)
	flag.Parse()

	if *generate > 0 {
		data := requestgen.Join(requestgen.RandomN(*generate))
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatalf("failed to write requests: %v", err)
		}

		return
	}

	if flag.NArg() != 1 {
		log.Fatal("usage: replay [-generate N [-out file]] | replay <file>")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to read requests: %v", err)
	}

	summary := replay(requestgen.Split(data), config.Default().Headers)
	if err = json.NewEncoder(os.Stdout).Encode(summary); err != nil {
		log.Fatalf("failed to encode the summary: %v", err)
	}
}

// replay parses every request and serializes a response echoing its body.
func replay(requests [][]byte, cfg config.Headers) Summary {
	var summary Summary
	start := time.Now()
	buff := make([]byte, 0, 4096)

	for i, raw := range requests {
		summary.Requests++

		request, err := http1.ParseBytes(raw, cfg)
		if err != nil {
			summary.Malformed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("request #%d: %s", i, err))
			continue
		}

		buff = http1.AppendResponse(buff[:0], http.Bytes(status.OK, request.Body))
		summary.Bytes += len(buff)
	}

	summary.Elapsed = time.Since(start)
	if seconds := summary.Elapsed.Seconds(); seconds > 0 {
		summary.PerSecond = float64(summary.Requests) / seconds
	}

	return summary
}
