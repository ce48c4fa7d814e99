package expect

import (
	"fmt"

	"github.com/abdul-hamid-achik/verity/packages/core/compare"
	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// MapAssert asserts on a map.
type MapAssert[K comparable, V any] struct {
	t      TestingT
	actual map[K]V
	desc   string
	opts   represent.Options
}

// Map begins an assertion chain on a map.
func Map[K comparable, V any](t TestingT, actual map[K]V) *MapAssert[K, V] {
	return &MapAssert[K, V]{t: t, actual: actual, opts: represent.Default()}
}

// As sets a description included in failure messages.
func (a *MapAssert[K, V]) As(format string, args ...any) *MapAssert[K, V] {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *MapAssert[K, V]) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsEmpty asserts the map has no entries. A nil map is empty.
func (a *MapAssert[K, V]) IsEmpty() *MapAssert[K, V] {
	helper(a.t)
	if len(a.actual) != 0 {
		a.fail(failure.ShouldBeEmpty(a.actual, a.opts))
	}
	return a
}

// IsNotEmpty asserts the map has at least one entry.
func (a *MapAssert[K, V]) IsNotEmpty() *MapAssert[K, V] {
	helper(a.t)
	if len(a.actual) == 0 {
		a.fail(failure.ShouldNotBeEmpty())
	}
	return a
}

// HasSize asserts the map has exactly n entries.
func (a *MapAssert[K, V]) HasSize(n int) *MapAssert[K, V] {
	helper(a.t)
	if len(a.actual) != n {
		a.fail(failure.ShouldHaveSize(a.actual, len(a.actual), n, a.opts))
	}
	return a
}

// ContainsKey asserts the map has an entry for key.
func (a *MapAssert[K, V]) ContainsKey(key K) *MapAssert[K, V] {
	helper(a.t)
	if _, ok := a.actual[key]; !ok {
		a.fail(failure.New("expected map to contain key %s", a.opts.Format(key)).
			WithDetail("map: %s", a.opts.Format(a.actual)))
	}
	return a
}

// ContainsKeys asserts the map has an entry for every given key.
func (a *MapAssert[K, V]) ContainsKeys(keys ...K) *MapAssert[K, V] {
	helper(a.t)
	var missing []K
	for _, k := range keys {
		if _, ok := a.actual[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		a.fail(failure.ShouldContain(a.actual, missing, a.opts))
	}
	return a
}

// DoesNotContainKey asserts the map has no entry for key.
func (a *MapAssert[K, V]) DoesNotContainKey(key K) *MapAssert[K, V] {
	helper(a.t)
	if _, ok := a.actual[key]; ok {
		a.fail(failure.New("expected map not to contain key %s", a.opts.Format(key)))
	}
	return a
}

// ContainsEntry asserts the map maps key to value.
func (a *MapAssert[K, V]) ContainsEntry(key K, value V) *MapAssert[K, V] {
	helper(a.t)
	got, ok := a.actual[key]
	if !ok {
		a.fail(failure.New("expected map to contain entry %s: %s but key is absent",
			a.opts.Format(key), a.opts.Format(value)))
		return a
	}
	if !compare.EqualValues(got, value) {
		a.fail(failure.New("expected map to contain entry %s: %s but value was %s",
			a.opts.Format(key), a.opts.Format(value), a.opts.Format(got)))
	}
	return a
}

// DoesNotContainEntry asserts the map does not map key to value.
func (a *MapAssert[K, V]) DoesNotContainEntry(key K, value V) *MapAssert[K, V] {
	helper(a.t)
	if got, ok := a.actual[key]; ok && compare.EqualValues(got, value) {
		a.fail(failure.New("expected map not to contain entry %s: %s",
			a.opts.Format(key), a.opts.Format(value)))
	}
	return a
}

// ContainsValue asserts some entry holds the given value.
func (a *MapAssert[K, V]) ContainsValue(value V) *MapAssert[K, V] {
	helper(a.t)
	for _, v := range a.actual {
		if compare.EqualValues(v, value) {
			return a
		}
	}
	a.fail(failure.New("expected map to contain value %s", a.opts.Format(value)).
		WithDetail("map: %s", a.opts.Format(a.actual)))
	return a
}
