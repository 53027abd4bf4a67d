package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Resolution is the frequency at which the time is updated. 500ms are precise enough
// for setting I/O deadlines
const Resolution = 500 * time.Millisecond

var (
	millis = new(atomic.Int64)
	start  sync.Once
)

// Now returns the current time with precision of Resolution. The clock is started on the
// first call.
func Now() time.Time {
	start.Do(run)
	m := millis.Load()
	return time.UnixMilli(m)
}

// Deadline returns the moment d from now. Durations below 2*Resolution are counted from
// the precise time, as the cached one could be already behind the deadline.
func Deadline(d time.Duration) time.Time {
	if d < 2*Resolution {
		return time.Now().Add(d)
	}

	return Now().Add(d)
}

func run() {
	// store the time before the goroutine is started, otherwise rapid usage right after
	// the start would result in zero-time
	millis.Store(time.Now().UnixMilli())

	go func() {
		for {
			time.Sleep(Resolution)
			millis.Store(time.Now().UnixMilli())
		}
	}()
}
