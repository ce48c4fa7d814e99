// Package compare implements the comparison strategies that assertion
// types delegate to. The standard strategy uses deep equality with
// numeric coercion; a comparator strategy routes equality through a
// user-supplied function so containment and ordering checks honor it.
package compare

import (
	"reflect"
)

// Strategy decides whether two values are considered equal.
type Strategy interface {
	Equal(a, b any) bool
	Describe() string
}

type standard struct{}

// Standard returns the default comparison strategy: deep equality,
// falling back to numeric coercion so 2 and 2.0 compare equal.
func Standard() Strategy {
	return standard{}
}

func (standard) Equal(a, b any) bool {
	return EqualValues(a, b)
}

func (standard) Describe() string {
	return "standard equality"
}

type comparatorStrategy[T any] struct {
	fn func(a, b T) bool
}

// Comparator wraps a user comparator function as a Strategy. Values
// that are not of type T fall back to the standard strategy.
func Comparator[T any](fn func(a, b T) bool) Strategy {
	return comparatorStrategy[T]{fn: fn}
}

func (c comparatorStrategy[T]) Equal(a, b any) bool {
	av, aok := a.(T)
	bv, bok := b.(T)
	if !aok || !bok {
		return EqualValues(a, b)
	}
	return c.fn(av, bv)
}

func (c comparatorStrategy[T]) Describe() string {
	var zero T
	return "custom comparator for " + reflect.TypeOf(&zero).Elem().String()
}

// EqualValues reports deep equality, treating numeric values of
// different types as equal when they represent the same number.
func EqualValues(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}

	af, aok := ToFloat64(a)
	bf, bok := ToFloat64(b)
	if aok && bok {
		return af == bf
	}

	return false
}

// ToFloat64 converts any integer or float value to float64.
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	return 0, false
}

// IsNil reports whether v is nil, including typed nils (a nil pointer
// stored in a non-nil interface value).
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
