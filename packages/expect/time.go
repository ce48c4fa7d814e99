package expect

import (
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// TimeAssert asserts on a time.Time value.
type TimeAssert struct {
	t      TestingT
	actual time.Time
	desc   string
	opts   represent.Options
}

// Time begins an assertion chain on a time.Time.
func Time(t TestingT, actual time.Time) *TimeAssert {
	return &TimeAssert{t: t, actual: actual, opts: represent.Default()}
}

// As sets a description included in failure messages.
func (a *TimeAssert) As(format string, args ...any) *TimeAssert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *TimeAssert) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsEqualTo asserts the instants are equal (time.Time.Equal, so
// location differences do not matter).
func (a *TimeAssert) IsEqualTo(expected time.Time) *TimeAssert {
	helper(a.t)
	if !a.actual.Equal(expected) {
		a.fail(failure.ShouldBeEqual(a.actual, expected, a.opts))
	}
	return a
}

// IsBefore asserts the time is strictly before other.
func (a *TimeAssert) IsBefore(other time.Time) *TimeAssert {
	helper(a.t)
	if !a.actual.Before(other) {
		a.fail(failure.ShouldBeBefore(a.actual, other, a.opts))
	}
	return a
}

// IsBeforeOrEqualTo asserts the time is before or equal to other.
func (a *TimeAssert) IsBeforeOrEqualTo(other time.Time) *TimeAssert {
	helper(a.t)
	if a.actual.After(other) {
		a.fail(failure.ShouldBeBefore(a.actual, other, a.opts).
			WithDetail("bound is inclusive"))
	}
	return a
}

// IsAfter asserts the time is strictly after other.
func (a *TimeAssert) IsAfter(other time.Time) *TimeAssert {
	helper(a.t)
	if !a.actual.After(other) {
		a.fail(failure.ShouldBeAfter(a.actual, other, a.opts))
	}
	return a
}

// IsAfterOrEqualTo asserts the time is after or equal to other.
func (a *TimeAssert) IsAfterOrEqualTo(other time.Time) *TimeAssert {
	helper(a.t)
	if a.actual.Before(other) {
		a.fail(failure.ShouldBeAfter(a.actual, other, a.opts).
			WithDetail("bound is inclusive"))
	}
	return a
}

// IsBetween asserts start <= time <= end.
func (a *TimeAssert) IsBetween(start, end time.Time) *TimeAssert {
	helper(a.t)
	if a.actual.Before(start) || a.actual.After(end) {
		a.fail(failure.ShouldBeBetween(a.actual, start, end, a.opts))
	}
	return a
}

// IsInThePast asserts the time is before now.
func (a *TimeAssert) IsInThePast() *TimeAssert {
	helper(a.t)
	if !a.actual.Before(time.Now()) {
		a.fail(failure.New("expected %s to be in the past", a.opts.Format(a.actual)))
	}
	return a
}

// IsInTheFuture asserts the time is after now.
func (a *TimeAssert) IsInTheFuture() *TimeAssert {
	helper(a.t)
	if !a.actual.After(time.Now()) {
		a.fail(failure.New("expected %s to be in the future", a.opts.Format(a.actual)))
	}
	return a
}

// IsCloseTo asserts the time is within the given duration of expected.
func (a *TimeAssert) IsCloseTo(expected time.Time, within time.Duration) *TimeAssert {
	helper(a.t)
	diff := a.actual.Sub(expected)
	if diff < 0 {
		diff = -diff
	}
	if diff > within {
		a.fail(failure.ShouldBeCloseTo(a.actual, expected, within, a.opts).
			WithDetail("difference was %s", diff))
	}
	return a
}

// HasYear asserts the time's year.
func (a *TimeAssert) HasYear(year int) *TimeAssert {
	helper(a.t)
	if a.actual.Year() != year {
		a.fail(failure.New("expected year %d but was %d", year, a.actual.Year()))
	}
	return a
}

// HasMonth asserts the time's month.
func (a *TimeAssert) HasMonth(month time.Month) *TimeAssert {
	helper(a.t)
	if a.actual.Month() != month {
		a.fail(failure.New("expected month %s but was %s", month, a.actual.Month()))
	}
	return a
}

// HasDay asserts the time's day of month.
func (a *TimeAssert) HasDay(day int) *TimeAssert {
	helper(a.t)
	if a.actual.Day() != day {
		a.fail(failure.New("expected day %d but was %d", day, a.actual.Day()))
	}
	return a
}

// IsInSameDayAs asserts both times fall on the same calendar day in
// the actual value's location.
func (a *TimeAssert) IsInSameDayAs(other time.Time) *TimeAssert {
	helper(a.t)
	y1, m1, d1 := a.actual.Date()
	y2, m2, d2 := other.In(a.actual.Location()).Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		a.fail(failure.New("expected %s to be in the same day as %s",
			a.opts.Format(a.actual), a.opts.Format(other)))
	}
	return a
}

// DurationAssert asserts on a time.Duration value.
type DurationAssert struct {
	t      TestingT
	actual time.Duration
	desc   string
	opts   represent.Options
}

// Duration begins an assertion chain on a time.Duration.
func Duration(t TestingT, actual time.Duration) *DurationAssert {
	return &DurationAssert{t: t, actual: actual, opts: represent.Default()}
}

// As sets a description included in failure messages.
func (a *DurationAssert) As(format string, args ...any) *DurationAssert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *DurationAssert) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsZero asserts the duration is zero.
func (a *DurationAssert) IsZero() *DurationAssert {
	helper(a.t)
	if a.actual != 0 {
		a.fail(failure.New("expected zero duration but was %s", a.actual))
	}
	return a
}

// IsPositive asserts the duration is greater than zero.
func (a *DurationAssert) IsPositive() *DurationAssert {
	helper(a.t)
	if a.actual <= 0 {
		a.fail(failure.New("expected a positive duration but was %s", a.actual))
	}
	return a
}

// IsLessThan asserts the duration is strictly less than bound.
func (a *DurationAssert) IsLessThan(bound time.Duration) *DurationAssert {
	helper(a.t)
	if a.actual >= bound {
		a.fail(failure.ShouldBeLess(a.actual, bound, false, a.opts))
	}
	return a
}

// IsGreaterThan asserts the duration is strictly greater than bound.
func (a *DurationAssert) IsGreaterThan(bound time.Duration) *DurationAssert {
	helper(a.t)
	if a.actual <= bound {
		a.fail(failure.ShouldBeGreater(a.actual, bound, false, a.opts))
	}
	return a
}

// IsBetween asserts low <= duration <= high.
func (a *DurationAssert) IsBetween(low, high time.Duration) *DurationAssert {
	helper(a.t)
	if a.actual < low || a.actual > high {
		a.fail(failure.ShouldBeBetween(a.actual, low, high, a.opts))
	}
	return a
}

// IsCloseTo asserts the duration is within offset of expected.
func (a *DurationAssert) IsCloseTo(expected, offset time.Duration) *DurationAssert {
	helper(a.t)
	diff := a.actual - expected
	if diff < 0 {
		diff = -diff
	}
	if diff > offset {
		a.fail(failure.ShouldBeCloseTo(a.actual, expected, offset, a.opts))
	}
	return a
}
