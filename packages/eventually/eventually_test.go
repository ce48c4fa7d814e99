package eventually

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	messages []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestShould_ConditionAlreadyTrue(t *testing.T) {
	rec := &recorder{}
	ok := That(rec, func() bool { return true }).Should()

	assert.True(t, ok)
	assert.Empty(t, rec.messages)
}

func TestShould_ConditionBecomesTrue(t *testing.T) {
	var calls atomic.Int32
	cond := func() bool {
		return calls.Add(1) >= 3
	}

	rec := &recorder{}
	ok := That(rec, cond).
		Within(2 * time.Second).
		PollingEvery(10 * time.Millisecond).
		Should()

	assert.True(t, ok)
	assert.Empty(t, rec.messages)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestShould_Timeout(t *testing.T) {
	rec := &recorder{}
	ok := That(rec, func() bool { return false }).
		Within(50 * time.Millisecond).
		PollingEvery(10 * time.Millisecond).
		As("queue drained").
		Should()

	assert.False(t, ok)
	assert.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "[queue drained]")
	assert.Contains(t, rec.messages[0], "condition not met after")
	assert.Contains(t, rec.messages[0], "context deadline exceeded")
	assert.Contains(t, rec.messages[0], "attempt")
}

func TestShouldContext_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	ok := That(rec, func() bool { return false }).
		PollingEvery(10 * time.Millisecond).
		ShouldContext(ctx)

	assert.False(t, ok)
	assert.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "context canceled")
}

func TestValue_BecomesEqual(t *testing.T) {
	var counter atomic.Int64
	go func() {
		for i := 0; i < 5; i++ {
			counter.Add(1)
			time.Sleep(5 * time.Millisecond)
		}
	}()

	rec := &recorder{}
	ok := Value(rec, func() int64 { return counter.Load() }).
		Within(2 * time.Second).
		PollingEvery(10 * time.Millisecond).
		Equals(5)

	assert.True(t, ok)
	assert.Empty(t, rec.messages)
}

func TestValue_TimeoutReportsLastObserved(t *testing.T) {
	rec := &recorder{}
	ok := Value(rec, func() int { return 3 }).
		Within(50 * time.Millisecond).
		PollingEvery(10 * time.Millisecond).
		Equals(7)

	assert.False(t, ok)
	assert.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "did not become 7")
	assert.Contains(t, rec.messages[0], "last observed: 3")
}
