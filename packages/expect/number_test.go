package expect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_Equality(t *testing.T) {
	rec := &recorder{}
	Number(rec, 42).IsEqualTo(42).IsNotEqualTo(7)
	assert.False(t, rec.failed())

	Number(rec, 42).IsEqualTo(7)
	assert.True(t, rec.failed())
	assert.Contains(t, rec.last(), "values are not equal")
}

func TestNumber_Signs(t *testing.T) {
	tests := []struct {
		name   string
		check  func(a *NumberAssert[int]) *NumberAssert[int]
		value  int
		failed bool
	}{
		{name: "zero passes IsZero", check: (*NumberAssert[int]).IsZero, value: 0},
		{name: "nonzero fails IsZero", check: (*NumberAssert[int]).IsZero, value: 3, failed: true},
		{name: "nonzero passes IsNotZero", check: (*NumberAssert[int]).IsNotZero, value: 3},
		{name: "positive passes IsPositive", check: (*NumberAssert[int]).IsPositive, value: 1},
		{name: "zero fails IsPositive", check: (*NumberAssert[int]).IsPositive, value: 0, failed: true},
		{name: "negative passes IsNegative", check: (*NumberAssert[int]).IsNegative, value: -1},
		{name: "zero passes IsNotPositive", check: (*NumberAssert[int]).IsNotPositive, value: 0},
		{name: "zero passes IsNotNegative", check: (*NumberAssert[int]).IsNotNegative, value: 0},
		{name: "negative fails IsNotNegative", check: (*NumberAssert[int]).IsNotNegative, value: -5, failed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			tt.check(Number(rec, tt.value))
			assert.Equal(t, tt.failed, rec.failed())
		})
	}
}

func TestNumber_Comparisons(t *testing.T) {
	rec := &recorder{}
	Number(rec, 5).
		IsGreaterThan(4).
		IsGreaterThanOrEqualTo(5).
		IsLessThan(6).
		IsLessThanOrEqualTo(5).
		IsBetween(5, 10).
		IsStrictlyBetween(4, 6)
	assert.False(t, rec.failed())

	Number(rec, 5).IsGreaterThan(5)
	assert.True(t, rec.failed())
	assert.Contains(t, rec.last(), "expected 5 > 5")

	rec = &recorder{}
	Number(rec, 5).IsStrictlyBetween(5, 10)
	assert.True(t, rec.failed())

	rec = &recorder{}
	Number(rec, 5).IsBetween(5, 10)
	assert.False(t, rec.failed())
}

func TestNumber_CloseTo(t *testing.T) {
	rec := &recorder{}
	Number(rec, 10.2).IsCloseTo(10.0, 0.5)
	assert.False(t, rec.failed())

	Number(rec, 11.0).IsCloseTo(10.0, 0.5)
	assert.True(t, rec.failed())

	rec = &recorder{}
	Number(rec, 105.0).IsCloseToPercent(100.0, 10)
	assert.False(t, rec.failed())

	Number(rec, 115.0).IsCloseToPercent(100.0, 10)
	assert.True(t, rec.failed())
}

func TestNumber_Float(t *testing.T) {
	rec := &recorder{}
	Number(rec, math.NaN()).IsNaN()
	Number(rec, 1.5).IsFinite()
	assert.False(t, rec.failed())

	Number(rec, 1.5).IsNaN()
	assert.True(t, rec.failed())

	rec = &recorder{}
	Number(rec, math.Inf(1)).IsFinite()
	assert.True(t, rec.failed())

	rec = &recorder{}
	Number(rec, math.NaN()).IsFinite()
	assert.True(t, rec.failed())
}
