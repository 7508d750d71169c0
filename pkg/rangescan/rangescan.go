// Package rangescan splits an inclusive height interval into bounded windows and scans them
// concurrently while preserving window order.
package rangescan

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/goodnatureofminers/lotterywatch/pkg/workerpool"
)

// Window is an inclusive [From, To] interval.
type Window struct {
	From uint64
	To   uint64
}

// Len returns the number of heights covered by the window.
func (w Window) Len() uint64 {
	return w.To - w.From + 1
}

func (w Window) String() string {
	return fmt.Sprintf("[%d,%d]", w.From, w.To)
}

// FetchFunc loads the items that belong to one window.
type FetchFunc[T any] func(ctx context.Context, w Window) ([]T, error)

// Windows lazily yields consecutive windows covering [from, to], each at most size heights long.
// A size of zero yields the whole interval as a single window.
func Windows(from, to, size uint64) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		if from > to {
			return
		}
		start := from
		for {
			end := to
			if size > 0 && to-start >= size {
				end = start + size - 1
			}
			if !yield(Window{From: start, To: end}) {
				return
			}
			if end == to {
				return
			}
			start = end + 1
		}
	}
}

// Split collects Windows into a slice.
func Split(from, to, size uint64) []Window {
	return slices.Collect(Windows(from, to, size))
}

// Scan fetches every window with up to workers concurrent calls and concatenates the
// results in window order.
func Scan[T any](ctx context.Context, windows []Window, workers int, fetch FetchFunc[T]) ([]T, error) {
	parts, err := workerpool.Map(ctx, workers, windows, func(ctx context.Context, w Window) ([]T, error) {
		items, err := fetch(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("scan window %s: %w", w, err)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]T, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// RetryPolicy retries a single window independently of the rest of the scan.
type RetryPolicy struct {
	// NewBackOff returns a fresh schedule per window.
	NewBackOff func() backoff.BackOff
	// OnRetry is called before each wait.
	OnRetry func(w Window, err error, wait time.Duration)
}

// WithRetry wraps fetch so that failures are retried according to p. Waits end early when
// the context is cancelled. Errors wrapped with backoff.Permanent are returned immediately.
func WithRetry[T any](fetch FetchFunc[T], p RetryPolicy) FetchFunc[T] {
	if p.NewBackOff == nil {
		return fetch
	}
	return func(ctx context.Context, w Window) ([]T, error) {
		var notify backoff.Notify
		if p.OnRetry != nil {
			notify = func(err error, wait time.Duration) { p.OnRetry(w, err, wait) }
		}
		return backoff.RetryNotifyWithData(func() ([]T, error) {
			return fetch(ctx, w)
		}, backoff.WithContext(p.NewBackOff(), ctx), notify)
	}
}
