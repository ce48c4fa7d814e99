package expect

import (
	"fmt"
	"reflect"

	"github.com/abdul-hamid-achik/verity/packages/core/compare"
	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
	"github.com/abdul-hamid-achik/verity/packages/recursive"
)

// ValueAssert asserts on a value of any type.
type ValueAssert[T any] struct {
	t         TestingT
	actual    T
	desc      string
	opts      represent.Options
	strat     compare.Strategy
	recursive *recursive.Config
}

// Value begins an assertion chain on any value.
func Value[T any](t TestingT, actual T) *ValueAssert[T] {
	return &ValueAssert[T]{
		t:      t,
		actual: actual,
		opts:   represent.Default(),
		strat:  compare.Standard(),
	}
}

// As sets a description included in failure messages.
func (a *ValueAssert[T]) As(format string, args ...any) *ValueAssert[T] {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

// UsingComparator routes equality checks through a custom comparator.
func (a *ValueAssert[T]) UsingComparator(fn func(x, y T) bool) *ValueAssert[T] {
	a.strat = compare.Comparator(fn)
	return a
}

// WithRepresentation replaces the rendering options used in failure
// messages.
func (a *ValueAssert[T]) WithRepresentation(opts represent.Options) *ValueAssert[T] {
	a.opts = opts
	return a
}

// UsingRecursiveComparison switches IsEqualTo to a field-by-field
// recursive comparison that reports every difference at once.
func (a *ValueAssert[T]) UsingRecursiveComparison(opts ...recursive.Option) *ValueAssert[T] {
	a.recursive = recursive.NewConfig(opts...)
	return a
}

func (a *ValueAssert[T]) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsEqualTo asserts equality with expected. With a recursive comparison
// configured, all field-level differences are reported together.
func (a *ValueAssert[T]) IsEqualTo(expected T) *ValueAssert[T] {
	helper(a.t)

	if a.recursive != nil {
		diffs := recursive.Compare(expected, a.actual, a.recursive)
		if len(diffs) > 0 {
			f := failure.New("found %d difference(s) in recursive comparison", len(diffs))
			for _, d := range diffs {
				f.WithDetail("  %s", d.String())
			}
			a.fail(f)
		}
		return a
	}

	if !a.strat.Equal(a.actual, expected) {
		a.fail(failure.ShouldBeEqual(a.actual, expected, a.opts))
	}
	return a
}

// IsNotEqualTo asserts the value differs from other.
func (a *ValueAssert[T]) IsNotEqualTo(other T) *ValueAssert[T] {
	helper(a.t)
	if a.strat.Equal(a.actual, other) {
		a.fail(failure.ShouldNotBeEqual(a.actual, a.opts))
	}
	return a
}

// IsNil asserts the value is nil, including typed nils.
func (a *ValueAssert[T]) IsNil() *ValueAssert[T] {
	helper(a.t)
	if !compare.IsNil(any(a.actual)) {
		a.fail(failure.ShouldBeNil(a.actual, a.opts))
	}
	return a
}

// IsNotNil asserts the value is not nil.
func (a *ValueAssert[T]) IsNotNil() *ValueAssert[T] {
	helper(a.t)
	if compare.IsNil(any(a.actual)) {
		a.fail(failure.ShouldNotBeNil())
	}
	return a
}

// IsZero asserts the value is the zero value of its type.
func (a *ValueAssert[T]) IsZero() *ValueAssert[T] {
	helper(a.t)
	if !isZero(any(a.actual)) {
		a.fail(failure.New("expected zero value but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// IsNotZero asserts the value is not the zero value of its type.
func (a *ValueAssert[T]) IsNotZero() *ValueAssert[T] {
	helper(a.t)
	if isZero(any(a.actual)) {
		a.fail(failure.New("expected a non-zero value"))
	}
	return a
}

// IsIn asserts the value equals one of the given values.
func (a *ValueAssert[T]) IsIn(values ...T) *ValueAssert[T] {
	helper(a.t)
	if !compare.Contains(values, a.actual, a.strat) {
		a.fail(failure.New("expected %s to be in %s",
			a.opts.Format(a.actual), a.opts.Format(values)))
	}
	return a
}

// IsNotIn asserts the value equals none of the given values.
func (a *ValueAssert[T]) IsNotIn(values ...T) *ValueAssert[T] {
	helper(a.t)
	if compare.Contains(values, a.actual, a.strat) {
		a.fail(failure.New("expected %s not to be in %s",
			a.opts.Format(a.actual), a.opts.Format(values)))
	}
	return a
}

// Satisfies asserts the value passes the given predicate.
func (a *ValueAssert[T]) Satisfies(pred func(T) bool) *ValueAssert[T] {
	helper(a.t)
	if !pred(a.actual) {
		a.fail(failure.ShouldSatisfy(a.actual, -1, a.opts))
	}
	return a
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
