package perf

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	messages []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recorder) failed() bool { return len(r.messages) > 0 }

// fixedSamples records a known distribution: 1ms..100ms in 1ms steps.
func fixedSamples(t *testing.T) *Samples {
	t.Helper()
	s := NewSamples()
	for i := 1; i <= 100; i++ {
		s.Record(time.Duration(i) * time.Millisecond)
	}
	require.Equal(t, int64(100), s.Count())
	return s
}

func TestSamples_Statistics(t *testing.T) {
	s := fixedSamples(t)

	// The histogram keeps 3 significant digits, so allow a little slack.
	p50 := s.Percentile(50)
	assert.InDelta(t, 50, p50.Milliseconds(), 2)

	p95 := s.Percentile(95)
	assert.InDelta(t, 95, p95.Milliseconds(), 2)

	assert.InDelta(t, 100, s.Max().Milliseconds(), 1)
	assert.InDelta(t, 50, s.Mean().Milliseconds(), 2)
	assert.Greater(t, s.StdDev(), time.Duration(0))
}

func TestSamples_RecordClampsOutOfRange(t *testing.T) {
	s := NewSamples()
	s.Record(0)                // below histogram minimum
	s.Record(10 * time.Minute) // above histogram maximum
	assert.Equal(t, int64(2), s.Count())
}

func TestSamples_Time(t *testing.T) {
	s := NewSamples()
	s.Time(func() { time.Sleep(5 * time.Millisecond) })

	assert.Equal(t, int64(1), s.Count())
	assert.GreaterOrEqual(t, s.Max(), 5*time.Millisecond)
}

func TestSamples_ConcurrentRecording(t *testing.T) {
	s := NewSamples()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Record(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), s.Count())
}

func TestEvaluate(t *testing.T) {
	s := fixedSamples(t)

	results := s.Evaluate(Thresholds{P50: 60 * time.Millisecond, MaxLatency: 50 * time.Millisecond})
	require.Len(t, results, 2)

	assert.Equal(t, "p50", results[0].Name)
	assert.True(t, results[0].Passed)
	assert.Equal(t, "max latency", results[1].Name)
	assert.False(t, results[1].Passed)

	// Zero thresholds are skipped entirely.
	assert.Empty(t, s.Evaluate(Thresholds{}))
}

func TestAssert_Percentiles(t *testing.T) {
	s := fixedSamples(t)

	rec := &recorder{}
	That(rec, s).
		HasSamples(100).
		P50LessThan(60 * time.Millisecond).
		P95LessThan(99 * time.Millisecond).
		P99LessThan(110 * time.Millisecond).
		MaxLessThan(110 * time.Millisecond).
		MeanLessThan(60 * time.Millisecond)
	assert.False(t, rec.failed())

	That(rec, s).P50LessThan(10 * time.Millisecond)
	assert.True(t, rec.failed())
	assert.Contains(t, rec.messages[0], "expected p50 < 10ms")
}

func TestAssert_HasSamples(t *testing.T) {
	rec := &recorder{}
	That(rec, NewSamples()).HasSamples(1)

	assert.True(t, rec.failed())
	assert.Contains(t, rec.messages[0], "expected at least 1 sample(s) but recorded 0")
}

func TestAssert_EmptySamples(t *testing.T) {
	rec := &recorder{}
	That(rec, NewSamples()).P95LessThan(time.Second)

	assert.True(t, rec.failed())
	assert.Contains(t, rec.messages[0], "no samples recorded")
}

func TestAssert_MeetsThresholds(t *testing.T) {
	s := fixedSamples(t)

	rec := &recorder{}
	That(rec, s).MeetsThresholds(Thresholds{
		P50:        60 * time.Millisecond,
		MaxLatency: 110 * time.Millisecond,
	})
	assert.False(t, rec.failed())

	That(rec, s).As("checkout endpoint").MeetsThresholds(Thresholds{
		P50:        10 * time.Millisecond,
		MaxLatency: 20 * time.Millisecond,
	})
	assert.True(t, rec.failed())
	assert.Contains(t, rec.messages[0], "[checkout endpoint]")
	assert.Contains(t, rec.messages[0], "2 latency threshold(s) violated")
	assert.Contains(t, rec.messages[0], "p50")
	assert.Contains(t, rec.messages[0], "max latency")
}
