// Package perf records duration samples and asserts on their latency
// distribution (percentiles, mean, max) using an HDR histogram.
package perf

import (
	"fmt"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
)

// TestingT is re-exported so callers need only this package.
type TestingT = failure.TestingT

type tHelper interface{ Helper() }

// Histogram bounds: 1us to 60s, 3 significant digits.
const (
	minLatencyUs = 1
	maxLatencyUs = 60_000_000
)

// Samples collects duration samples. Safe for concurrent use.
type Samples struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// NewSamples creates an empty sample collector.
func NewSamples() *Samples {
	return &Samples{
		hist: hdrhistogram.New(minLatencyUs, maxLatencyUs, 3),
	}
}

// Record adds one duration sample.
func (s *Samples) Record(d time.Duration) {
	us := d.Microseconds()
	if us < minLatencyUs {
		us = minLatencyUs
	}
	if us > maxLatencyUs {
		us = maxLatencyUs
	}

	s.mu.Lock()
	_ = s.hist.RecordValue(us)
	s.mu.Unlock()
}

// Time runs fn and records how long it took.
func (s *Samples) Time(fn func()) {
	start := time.Now()
	fn()
	s.Record(time.Since(start))
}

// Count returns the number of recorded samples.
func (s *Samples) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.TotalCount()
}

// Percentile returns the latency at the given quantile (0-100).
func (s *Samples) Percentile(q float64) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.hist.ValueAtQuantile(q)) * time.Microsecond
}

// Max returns the largest recorded sample.
func (s *Samples) Max() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.hist.Max()) * time.Microsecond
}

// Mean returns the mean of the recorded samples.
func (s *Samples) Mean() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.hist.Mean()) * time.Microsecond
}

// StdDev returns the standard deviation of the recorded samples.
func (s *Samples) StdDev() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.hist.StdDev()) * time.Microsecond
}

// Thresholds names the latency limits a sample set must stay within.
type Thresholds struct {
	P50        time.Duration
	P95        time.Duration
	P99        time.Duration
	MaxLatency time.Duration
	Mean       time.Duration
}

// ThresholdResult is the outcome of one threshold check.
type ThresholdResult struct {
	Name     string
	Passed   bool
	Expected string
	Actual   string
}

// Evaluate checks every non-zero threshold against the samples.
func (s *Samples) Evaluate(t Thresholds) []ThresholdResult {
	var results []ThresholdResult

	check := func(name string, limit, actual time.Duration) {
		if limit <= 0 {
			return
		}
		results = append(results, ThresholdResult{
			Name:     name,
			Passed:   actual <= limit,
			Expected: "<= " + limit.String(),
			Actual:   actual.String(),
		})
	}

	check("p50", t.P50, s.Percentile(50))
	check("p95", t.P95, s.Percentile(95))
	check("p99", t.P99, s.Percentile(99))
	check("max latency", t.MaxLatency, s.Max())
	check("mean", t.Mean, s.Mean())

	return results
}

// Assert asserts on a sample set's latency distribution.
type Assert struct {
	t       TestingT
	samples *Samples
	desc    string
}

// That begins an assertion chain on recorded samples.
func That(t TestingT, samples *Samples) *Assert {
	return &Assert{t: t, samples: samples}
}

// As sets a description included in failure messages.
func (a *Assert) As(format string, args ...any) *Assert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *Assert) fail(f *failure.Failure) {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	failure.Report(a.t, f.WithDescription(a.desc))
}

func (a *Assert) checkNotEmpty() bool {
	if a.samples.Count() == 0 {
		a.fail(failure.New("no samples recorded"))
		return false
	}
	return true
}

// HasSamples asserts at least n samples were recorded.
func (a *Assert) HasSamples(n int64) *Assert {
	if got := a.samples.Count(); got < n {
		a.fail(failure.New("expected at least %d sample(s) but recorded %d", n, got))
	}
	return a
}

// P50LessThan asserts the median latency is below limit.
func (a *Assert) P50LessThan(limit time.Duration) *Assert {
	return a.percentileLessThan(50, limit)
}

// P95LessThan asserts the 95th percentile latency is below limit.
func (a *Assert) P95LessThan(limit time.Duration) *Assert {
	return a.percentileLessThan(95, limit)
}

// P99LessThan asserts the 99th percentile latency is below limit.
func (a *Assert) P99LessThan(limit time.Duration) *Assert {
	return a.percentileLessThan(99, limit)
}

func (a *Assert) percentileLessThan(q float64, limit time.Duration) *Assert {
	if !a.checkNotEmpty() {
		return a
	}
	if got := a.samples.Percentile(q); got >= limit {
		a.fail(failure.New("expected p%g < %s but was %s", q, limit, got))
	}
	return a
}

// MaxLessThan asserts the worst sample is below limit.
func (a *Assert) MaxLessThan(limit time.Duration) *Assert {
	if !a.checkNotEmpty() {
		return a
	}
	if got := a.samples.Max(); got >= limit {
		a.fail(failure.New("expected max latency < %s but was %s", limit, got))
	}
	return a
}

// MeanLessThan asserts the mean latency is below limit.
func (a *Assert) MeanLessThan(limit time.Duration) *Assert {
	if !a.checkNotEmpty() {
		return a
	}
	if got := a.samples.Mean(); got >= limit {
		a.fail(failure.New("expected mean latency < %s but was %s", limit, got))
	}
	return a
}

// MeetsThresholds asserts every non-zero threshold holds, reporting all
// violations together.
func (a *Assert) MeetsThresholds(t Thresholds) *Assert {
	if !a.checkNotEmpty() {
		return a
	}

	results := a.samples.Evaluate(t)
	var failed []ThresholdResult
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}

	if len(failed) > 0 {
		f := failure.New("%d latency threshold(s) violated", len(failed))
		for _, r := range failed {
			f.WithDetail("  %s: expected %s but was %s", r.Name, r.Expected, r.Actual)
		}
		a.fail(f)
	}
	return a
}
