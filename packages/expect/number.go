package expect

import (
	"fmt"
	"math"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// Real covers every built-in integer and floating point type.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberAssert asserts on a numeric value.
type NumberAssert[T Real] struct {
	t      TestingT
	actual T
	desc   string
	opts   represent.Options
}

// Number begins an assertion chain on a numeric value.
func Number[T Real](t TestingT, actual T) *NumberAssert[T] {
	return &NumberAssert[T]{t: t, actual: actual, opts: represent.Default()}
}

// As sets a description included in failure messages.
func (a *NumberAssert[T]) As(format string, args ...any) *NumberAssert[T] {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *NumberAssert[T]) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsEqualTo asserts equality with expected.
func (a *NumberAssert[T]) IsEqualTo(expected T) *NumberAssert[T] {
	helper(a.t)
	if a.actual != expected {
		a.fail(failure.ShouldBeEqual(a.actual, expected, a.opts))
	}
	return a
}

// IsNotEqualTo asserts the value differs from other.
func (a *NumberAssert[T]) IsNotEqualTo(other T) *NumberAssert[T] {
	helper(a.t)
	if a.actual == other {
		a.fail(failure.ShouldNotBeEqual(a.actual, a.opts))
	}
	return a
}

// IsZero asserts the value is zero.
func (a *NumberAssert[T]) IsZero() *NumberAssert[T] {
	helper(a.t)
	if a.actual != 0 {
		a.fail(failure.New("expected 0 but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// IsNotZero asserts the value is not zero.
func (a *NumberAssert[T]) IsNotZero() *NumberAssert[T] {
	helper(a.t)
	if a.actual == 0 {
		a.fail(failure.New("expected a non-zero number"))
	}
	return a
}

// IsPositive asserts the value is strictly greater than zero.
func (a *NumberAssert[T]) IsPositive() *NumberAssert[T] {
	helper(a.t)
	if !(a.actual > 0) {
		a.fail(failure.New("expected a positive number but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// IsNegative asserts the value is strictly less than zero.
func (a *NumberAssert[T]) IsNegative() *NumberAssert[T] {
	helper(a.t)
	if !(a.actual < 0) {
		a.fail(failure.New("expected a negative number but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// IsNotPositive asserts the value is zero or negative.
func (a *NumberAssert[T]) IsNotPositive() *NumberAssert[T] {
	helper(a.t)
	if a.actual > 0 {
		a.fail(failure.New("expected a non-positive number but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// IsNotNegative asserts the value is zero or positive.
func (a *NumberAssert[T]) IsNotNegative() *NumberAssert[T] {
	helper(a.t)
	if a.actual < 0 {
		a.fail(failure.New("expected a non-negative number but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// IsGreaterThan asserts actual > bound.
func (a *NumberAssert[T]) IsGreaterThan(bound T) *NumberAssert[T] {
	helper(a.t)
	if !(a.actual > bound) {
		a.fail(failure.ShouldBeGreater(a.actual, bound, false, a.opts))
	}
	return a
}

// IsGreaterThanOrEqualTo asserts actual >= bound.
func (a *NumberAssert[T]) IsGreaterThanOrEqualTo(bound T) *NumberAssert[T] {
	helper(a.t)
	if !(a.actual >= bound) {
		a.fail(failure.ShouldBeGreater(a.actual, bound, true, a.opts))
	}
	return a
}

// IsLessThan asserts actual < bound.
func (a *NumberAssert[T]) IsLessThan(bound T) *NumberAssert[T] {
	helper(a.t)
	if !(a.actual < bound) {
		a.fail(failure.ShouldBeLess(a.actual, bound, false, a.opts))
	}
	return a
}

// IsLessThanOrEqualTo asserts actual <= bound.
func (a *NumberAssert[T]) IsLessThanOrEqualTo(bound T) *NumberAssert[T] {
	helper(a.t)
	if !(a.actual <= bound) {
		a.fail(failure.ShouldBeLess(a.actual, bound, true, a.opts))
	}
	return a
}

// IsBetween asserts low <= actual <= high.
func (a *NumberAssert[T]) IsBetween(low, high T) *NumberAssert[T] {
	helper(a.t)
	if a.actual < low || a.actual > high {
		a.fail(failure.ShouldBeBetween(a.actual, low, high, a.opts))
	}
	return a
}

// IsStrictlyBetween asserts low < actual < high.
func (a *NumberAssert[T]) IsStrictlyBetween(low, high T) *NumberAssert[T] {
	helper(a.t)
	if a.actual <= low || a.actual >= high {
		a.fail(failure.ShouldBeBetween(a.actual, low, high, a.opts).
			WithDetail("bounds are exclusive"))
	}
	return a
}

// IsCloseTo asserts |actual - expected| <= offset.
func (a *NumberAssert[T]) IsCloseTo(expected, offset T) *NumberAssert[T] {
	helper(a.t)
	if math.Abs(float64(a.actual)-float64(expected)) > float64(offset) {
		a.fail(failure.ShouldBeCloseTo(a.actual, expected, offset, a.opts))
	}
	return a
}

// IsCloseToPercent asserts actual is within pct percent of expected.
func (a *NumberAssert[T]) IsCloseToPercent(expected T, pct float64) *NumberAssert[T] {
	helper(a.t)
	tolerance := math.Abs(float64(expected)) * pct / 100
	if math.Abs(float64(a.actual)-float64(expected)) > tolerance {
		a.fail(failure.ShouldBeCloseTo(a.actual, expected,
			fmt.Sprintf("%g%%", pct), a.opts))
	}
	return a
}

// IsNaN asserts the value is NaN.
func (a *NumberAssert[T]) IsNaN() *NumberAssert[T] {
	helper(a.t)
	if !math.IsNaN(float64(a.actual)) {
		a.fail(failure.New("expected NaN but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// IsFinite asserts the value is neither NaN nor infinite.
func (a *NumberAssert[T]) IsFinite() *NumberAssert[T] {
	helper(a.t)
	f := float64(a.actual)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		a.fail(failure.New("expected a finite number but was %s", a.opts.Format(a.actual)))
	}
	return a
}
