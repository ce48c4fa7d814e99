package expect

import (
	"fmt"
	"reflect"

	"github.com/abdul-hamid-achik/verity/packages/core/compare"
	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// SliceAssert asserts on a slice. Containment checks honor the element
// comparison strategy, which defaults to deep equality and can be
// replaced with UsingComparator.
type SliceAssert[T any] struct {
	t      TestingT
	actual []T
	desc   string
	opts   represent.Options
	strat  compare.Strategy
}

// Slice begins an assertion chain on a slice.
func Slice[T any](t TestingT, actual []T) *SliceAssert[T] {
	return &SliceAssert[T]{
		t:      t,
		actual: actual,
		opts:   represent.Default(),
		strat:  compare.Standard(),
	}
}

// As sets a description included in failure messages.
func (a *SliceAssert[T]) As(format string, args ...any) *SliceAssert[T] {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

// UsingComparator replaces element equality for all subsequent checks.
func (a *SliceAssert[T]) UsingComparator(fn func(x, y T) bool) *SliceAssert[T] {
	a.strat = compare.Comparator(fn)
	return a
}

func (a *SliceAssert[T]) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsNil asserts the slice is nil.
func (a *SliceAssert[T]) IsNil() *SliceAssert[T] {
	helper(a.t)
	if a.actual != nil {
		a.fail(failure.ShouldBeNil(a.actual, a.opts))
	}
	return a
}

// IsEmpty asserts the slice has no elements. A nil slice is empty.
func (a *SliceAssert[T]) IsEmpty() *SliceAssert[T] {
	helper(a.t)
	if len(a.actual) != 0 {
		a.fail(failure.ShouldBeEmpty(a.actual, a.opts))
	}
	return a
}

// IsNotEmpty asserts the slice has at least one element.
func (a *SliceAssert[T]) IsNotEmpty() *SliceAssert[T] {
	helper(a.t)
	if len(a.actual) == 0 {
		a.fail(failure.ShouldNotBeEmpty())
	}
	return a
}

// HasSize asserts the slice has exactly n elements.
func (a *SliceAssert[T]) HasSize(n int) *SliceAssert[T] {
	helper(a.t)
	if len(a.actual) != n {
		a.fail(failure.ShouldHaveSize(a.actual, len(a.actual), n, a.opts))
	}
	return a
}

// HasSameSizeAs asserts the slice has the same length as other, which
// may be any slice, array, map or string.
func (a *SliceAssert[T]) HasSameSizeAs(other any) *SliceAssert[T] {
	helper(a.t)
	rv := reflect.ValueOf(other)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		if len(a.actual) != rv.Len() {
			a.fail(failure.ShouldHaveSize(a.actual, len(a.actual), rv.Len(), a.opts))
		}
	default:
		a.fail(failure.New("cannot get size of %T", other))
	}
	return a
}

// Contains asserts every given value appears in the slice.
func (a *SliceAssert[T]) Contains(values ...T) *SliceAssert[T] {
	helper(a.t)
	var missing []T
	for _, v := range values {
		if !compare.Contains(a.actual, v, a.strat) {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		a.fail(failure.ShouldContain(a.actual, missing, a.opts))
	}
	return a
}

// ContainsAnyOf asserts at least one of the given values appears.
func (a *SliceAssert[T]) ContainsAnyOf(values ...T) *SliceAssert[T] {
	helper(a.t)
	for _, v := range values {
		if compare.Contains(a.actual, v, a.strat) {
			return a
		}
	}
	a.fail(failure.New("expected %s to contain any of %s",
		a.opts.Format(a.actual), a.opts.Format(values)))
	return a
}

// DoesNotContain asserts none of the given values appear in the slice.
func (a *SliceAssert[T]) DoesNotContain(values ...T) *SliceAssert[T] {
	helper(a.t)
	for _, v := range values {
		if compare.Contains(a.actual, v, a.strat) {
			a.fail(failure.ShouldNotContain(a.actual, v, a.opts))
		}
	}
	return a
}

// ContainsExactly asserts the slice holds exactly the given values in
// the given order.
func (a *SliceAssert[T]) ContainsExactly(values ...T) *SliceAssert[T] {
	helper(a.t)
	if !compare.EqualSlices(a.actual, values, a.strat) {
		missing, unexpected := compare.MultisetDiff(a.actual, values, a.strat)
		f := failure.ShouldContainExactly(a.actual, sliceOrNil(missing), sliceOrNil(unexpected), a.opts)
		if len(missing) == 0 && len(unexpected) == 0 {
			f = failure.ShouldContainExactly(a.actual, nil, nil, a.opts).
				WithDetail("same elements but in a different order")
		}
		a.fail(f)
	}
	return a
}

// ContainsExactlyInAnyOrder asserts the slice holds exactly the given
// values, duplicates included, in any order.
func (a *SliceAssert[T]) ContainsExactlyInAnyOrder(values ...T) *SliceAssert[T] {
	helper(a.t)
	missing, unexpected := compare.MultisetDiff(a.actual, values, a.strat)
	if len(missing) > 0 || len(unexpected) > 0 {
		a.fail(failure.ShouldContainExactly(a.actual, sliceOrNil(missing), sliceOrNil(unexpected), a.opts))
	}
	return a
}

// ContainsOnlyOnce asserts every given value appears exactly once.
func (a *SliceAssert[T]) ContainsOnlyOnce(values ...T) *SliceAssert[T] {
	helper(a.t)
	for _, v := range values {
		switch n := compare.CountOf(a.actual, v, a.strat); {
		case n == 0:
			a.fail(failure.ShouldContain(a.actual, v, a.opts))
		case n > 1:
			a.fail(failure.New("expected %s to appear only once but found %d occurrences in %s",
				a.opts.Format(v), n, a.opts.Format(a.actual)))
		}
	}
	return a
}

// StartsWith asserts the slice starts with the given values in order.
func (a *SliceAssert[T]) StartsWith(values ...T) *SliceAssert[T] {
	helper(a.t)
	if len(values) == 0 {
		a.fail(failure.New("StartsWith requires at least one value"))
		return a
	}
	if !compare.HasPrefix(a.actual, values, a.strat) {
		a.fail(failure.ShouldStartWith(a.actual, values, a.opts))
	}
	return a
}

// EndsWith asserts the slice ends with the given values in order.
func (a *SliceAssert[T]) EndsWith(values ...T) *SliceAssert[T] {
	helper(a.t)
	if len(values) == 0 {
		a.fail(failure.New("EndsWith requires at least one value"))
		return a
	}
	if !compare.HasSuffix(a.actual, values, a.strat) {
		a.fail(failure.ShouldEndWith(a.actual, values, a.opts))
	}
	return a
}

// ContainsSubsequence asserts the given values appear in order in the
// slice, not necessarily contiguously.
func (a *SliceAssert[T]) ContainsSubsequence(values ...T) *SliceAssert[T] {
	helper(a.t)
	if !compare.IsSubsequence(a.actual, values, a.strat) {
		a.fail(failure.New("expected %s to contain subsequence %s",
			a.opts.Format(a.actual), a.opts.Format(values)))
	}
	return a
}

// IsSortedAccordingTo asserts the slice is sorted by the given less
// function.
func (a *SliceAssert[T]) IsSortedAccordingTo(less func(x, y T) bool) *SliceAssert[T] {
	helper(a.t)
	for i := 1; i < len(a.actual); i++ {
		if less(a.actual[i], a.actual[i-1]) {
			a.fail(failure.ShouldBeSorted(a.actual, i, a.opts))
			return a
		}
	}
	return a
}

// AllSatisfy asserts every element passes the predicate.
func (a *SliceAssert[T]) AllSatisfy(pred func(T) bool) *SliceAssert[T] {
	helper(a.t)
	for i, v := range a.actual {
		if !pred(v) {
			a.fail(failure.ShouldSatisfy(v, i, a.opts))
			return a
		}
	}
	return a
}

// AnySatisfy asserts at least one element passes the predicate.
func (a *SliceAssert[T]) AnySatisfy(pred func(T) bool) *SliceAssert[T] {
	helper(a.t)
	if compare.CountMatching(a.actual, pred) == 0 {
		a.fail(failure.New("expected at least one element of %s to satisfy the condition",
			a.opts.Format(a.actual)))
	}
	return a
}

// NoneSatisfy asserts no element passes the predicate.
func (a *SliceAssert[T]) NoneSatisfy(pred func(T) bool) *SliceAssert[T] {
	helper(a.t)
	for i, v := range a.actual {
		if pred(v) {
			a.fail(failure.New("expected no element to satisfy the condition but element at index %d does: %s",
				i, a.opts.Format(v)))
			return a
		}
	}
	return a
}

// Exactly asserts exactly n elements pass the predicate.
func (a *SliceAssert[T]) Exactly(n int, pred func(T) bool) *SliceAssert[T] {
	helper(a.t)
	if got := compare.CountMatching(a.actual, pred); got != n {
		a.fail(failure.New("expected exactly %d matching element(s) but found %d in %s",
			n, got, a.opts.Format(a.actual)))
	}
	return a
}

// Extracting maps every element through fn and returns a new assertion
// on the extracted values.
func (a *SliceAssert[T]) Extracting(fn func(T) any) *SliceAssert[any] {
	extracted := make([]any, len(a.actual))
	for i, v := range a.actual {
		extracted[i] = fn(v)
	}
	next := Slice(a.t, extracted)
	next.desc = a.desc
	return next
}

func sliceOrNil[T any](s []T) any {
	if len(s) == 0 {
		return nil
	}
	return s
}
