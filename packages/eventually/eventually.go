// Package eventually provides polling assertions for conditions that
// become true asynchronously. Retries are paced with a rate limiter so
// tight polling intervals do not busy-spin.
package eventually

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/abdul-hamid-achik/verity/packages/core/compare"
	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// TestingT is re-exported so callers need only this package.
type TestingT = failure.TestingT

type tHelper interface{ Helper() }

const (
	defaultTimeout  = 5 * time.Second
	defaultInterval = 100 * time.Millisecond
)

// Assertion polls a condition until it holds or the timeout expires.
type Assertion struct {
	t        TestingT
	cond     func() bool
	timeout  time.Duration
	interval time.Duration
	desc     string
}

// That begins a polling assertion on a boolean condition.
func That(t TestingT, cond func() bool) *Assertion {
	return &Assertion{
		t:        t,
		cond:     cond,
		timeout:  defaultTimeout,
		interval: defaultInterval,
	}
}

// Within sets the total time the condition has to become true.
func (a *Assertion) Within(d time.Duration) *Assertion {
	a.timeout = d
	return a
}

// PollingEvery sets the polling interval.
func (a *Assertion) PollingEvery(d time.Duration) *Assertion {
	a.interval = d
	return a
}

// As sets a description included in failure messages.
func (a *Assertion) As(format string, args ...any) *Assertion {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

// Should polls until the condition holds, failing the test when the
// timeout expires first. It reports whether the condition held.
func (a *Assertion) Should() bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	return a.ShouldContext(ctx)
}

// ShouldContext is Should with caller-controlled cancellation.
func (a *Assertion) ShouldContext(ctx context.Context) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	limiter := rate.NewLimiter(rate.Every(a.interval), 1)
	attempts := 0
	start := time.Now()

	for {
		if err := limiter.Wait(ctx); err != nil {
			// The caller's context may end the poll before the
			// configured timeout, so report what actually happened.
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			}
			f := failure.New("condition not met after %s and %d attempt(s): %v",
				time.Since(start).Round(time.Millisecond), attempts, err)
			failure.Report(a.t, f.WithDescription(a.desc))
			return false
		}

		attempts++
		if a.cond() {
			return true
		}
	}
}

// ValueAssertion polls a value-producing function.
type ValueAssertion[T any] struct {
	t        TestingT
	fetch    func() T
	timeout  time.Duration
	interval time.Duration
	desc     string
	opts     represent.Options
}

// Value begins a polling assertion on the result of fetch.
func Value[T any](t TestingT, fetch func() T) *ValueAssertion[T] {
	return &ValueAssertion[T]{
		t:        t,
		fetch:    fetch,
		timeout:  defaultTimeout,
		interval: defaultInterval,
		opts:     represent.Default(),
	}
}

// Within sets the total time the value has to reach the expectation.
func (a *ValueAssertion[T]) Within(d time.Duration) *ValueAssertion[T] {
	a.timeout = d
	return a
}

// PollingEvery sets the polling interval.
func (a *ValueAssertion[T]) PollingEvery(d time.Duration) *ValueAssertion[T] {
	a.interval = d
	return a
}

// As sets a description included in failure messages.
func (a *ValueAssertion[T]) As(format string, args ...any) *ValueAssertion[T] {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

// Equals polls until the fetched value equals expected, failing the
// test with the last observed value when the timeout expires.
func (a *ValueAssertion[T]) Equals(expected T) bool {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	limiter := rate.NewLimiter(rate.Every(a.interval), 1)
	attempts := 0
	var last T

	for {
		if err := limiter.Wait(ctx); err != nil {
			f := failure.New("value did not become %s within %s after %d attempt(s)",
				a.opts.Format(expected), a.timeout, attempts)
			f.WithDetail("last observed: %s", a.opts.Format(last))
			failure.Report(a.t, f.WithDescription(a.desc))
			return false
		}

		attempts++
		last = a.fetch()
		if compare.EqualValues(last, expected) {
			return true
		}
	}
}
