package expect

import (
	"fmt"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
)

// BoolAssert asserts on a boolean value.
type BoolAssert struct {
	t      TestingT
	actual bool
	desc   string
}

// Bool begins an assertion chain on a boolean.
func Bool(t TestingT, actual bool) *BoolAssert {
	return &BoolAssert{t: t, actual: actual}
}

// As sets a description included in failure messages.
func (a *BoolAssert) As(format string, args ...any) *BoolAssert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *BoolAssert) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsTrue asserts the value is true.
func (a *BoolAssert) IsTrue() *BoolAssert {
	helper(a.t)
	if !a.actual {
		a.fail(failure.ShouldBeTrue())
	}
	return a
}

// IsFalse asserts the value is false.
func (a *BoolAssert) IsFalse() *BoolAssert {
	helper(a.t)
	if a.actual {
		a.fail(failure.ShouldBeFalse())
	}
	return a
}

// IsEqualTo asserts equality with expected.
func (a *BoolAssert) IsEqualTo(expected bool) *BoolAssert {
	helper(a.t)
	if a.actual != expected {
		a.fail(failure.New("expected %v but was %v", expected, a.actual))
	}
	return a
}
