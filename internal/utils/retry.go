// Package utils contains small helpers shared by the server and the facts client.
package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"
)

// RetriableError marks a failure that is worth another attempt, such as a 5xx response.
type RetriableError struct {
	Err error
}

func (e *RetriableError) Error() string { return e.Err.Error() }

func (e *RetriableError) Unwrap() error { return e.Err }

// WithRetry runs fn once, then once more per entry in delays while the error is retriable.
// Waiting between attempts stops early when ctx is done.
func WithRetry(ctx context.Context, delays []time.Duration, fn func() error) error {
	err := fn()
	for _, delay := range delays {
		if err == nil || !isRetriable(err) {
			return err
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("%w (retry aborted: %v)", err, ctx.Err())
		case <-t.C:
		}

		err = fn()
	}
	return err
}

func isRetriable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var retriable *RetriableError
	if errors.As(err, &retriable) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return os.IsTimeout(err)
}
