package services

import (
	"fmt"
	"time"
)

// runWithDeadline runs fn in its own goroutine and returns its result unless
// the deadline elapses first, in which case the result is discarded and an
// ExtractTimeout error is returned. There is no true cancellation: the losing
// goroutine runs to completion unobserved.
func runWithDeadline[T any](d time.Duration, fn func() (T, error)) (T, error) {
	type outcome struct {
		val T
		err error
	}

	ch := make(chan outcome, 1)
	go func() {
		val, err := fn()
		ch <- outcome{val: val, err: err}
	}()

	select {
	case out := <-ch:
		return out.val, out.err
	case <-time.After(d):
		var zero T
		return zero, NewExtractError(ExtractTimeout, fmt.Sprintf("deadline of %s elapsed", d))
	}
}
