package transport

import "time"

// limiter is a counting semaphore bounding the number of simultaneously running workers.
// A nil limiter has no bound.
type limiter chan struct{}

func newLimiter(n int) limiter {
	if n <= 0 {
		return nil
	}

	return make(limiter, n)
}

// Acquire takes a seat, waiting at most for the timeout. Returns false if no seat was
// freed during that time.
func (l limiter) Acquire(timeout time.Duration) bool {
	if l == nil {
		return true
	}

	select {
	case l <- struct{}{}:
		return true
	default:
	}

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case l <- struct{}{}:
		return true
	case <-t.C:
		return false
	}
}

func (l limiter) Release() {
	if l != nil {
		<-l
	}
}

// Busy returns the number of taken seats.
func (l limiter) Busy() int {
	return len(l)
}
