package failure

import (
	"fmt"

	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// Factories for the common failure shapes. Each returns a Failure with
// the expected/actual values already rendered.

func ShouldBeEqual(actual, expected any, opts represent.Options) *Failure {
	return &Failure{
		Message:  "values are not equal",
		Expected: opts.Format(expected),
		Actual:   opts.Format(actual),
	}
}

func ShouldNotBeEqual(actual any, opts represent.Options) *Failure {
	return New("expected value to be different from %s", opts.Format(actual))
}

func ShouldBeNil(actual any, opts represent.Options) *Failure {
	return New("expected nil but was %s", opts.Format(actual))
}

func ShouldNotBeNil() *Failure {
	return New("expected a non-nil value but was nil")
}

func ShouldBeEmpty(actual any, opts represent.Options) *Failure {
	return New("expected empty but was %s", opts.Format(actual))
}

func ShouldNotBeEmpty() *Failure {
	return New("expected a non-empty value")
}

func ShouldHaveSize(actual any, actualSize, expectedSize int, opts represent.Options) *Failure {
	f := New("expected size %d but was %d", expectedSize, actualSize)
	f.Actual = opts.Format(actual)
	return f
}

func ShouldContain(actual, missing any, opts represent.Options) *Failure {
	return &Failure{
		Message: "could not find expected element(s)",
		Actual:  opts.Format(actual),
		Details: []string{"missing: " + opts.Format(missing)},
	}
}

func ShouldNotContain(actual, unwanted any, opts represent.Options) *Failure {
	return &Failure{
		Message: fmt.Sprintf("expected not to contain %s", opts.Format(unwanted)),
		Actual:  opts.Format(actual),
	}
}

func ShouldContainExactly(actual, missing, unexpected any, opts represent.Options) *Failure {
	f := &Failure{
		Message: "elements differ from expected",
		Actual:  opts.Format(actual),
	}
	if missing != nil {
		f.Details = append(f.Details, "missing:    "+opts.Format(missing))
	}
	if unexpected != nil {
		f.Details = append(f.Details, "unexpected: "+opts.Format(unexpected))
	}
	return f
}

func ShouldBeTrue() *Failure {
	return New("expected true but was false")
}

func ShouldBeFalse() *Failure {
	return New("expected false but was true")
}

func ShouldBeGreater(actual, bound any, orEqual bool, opts represent.Options) *Failure {
	op := ">"
	if orEqual {
		op = ">="
	}
	return New("expected %s %s %s", opts.Format(actual), op, opts.Format(bound))
}

func ShouldBeLess(actual, bound any, orEqual bool, opts represent.Options) *Failure {
	op := "<"
	if orEqual {
		op = "<="
	}
	return New("expected %s %s %s", opts.Format(actual), op, opts.Format(bound))
}

func ShouldBeBetween(actual, low, high any, opts represent.Options) *Failure {
	return New("expected %s to be between %s and %s",
		opts.Format(actual), opts.Format(low), opts.Format(high))
}

func ShouldBeCloseTo(actual, expected, tolerance any, opts represent.Options) *Failure {
	return New("expected %s to be close to %s within %s",
		opts.Format(actual), opts.Format(expected), opts.Format(tolerance))
}

func ShouldStartWith(actual, prefix any, opts represent.Options) *Failure {
	return New("expected %s to start with %s", opts.Format(actual), opts.Format(prefix))
}

func ShouldEndWith(actual, suffix any, opts represent.Options) *Failure {
	return New("expected %s to end with %s", opts.Format(actual), opts.Format(suffix))
}

func ShouldMatch(actual any, pattern string, opts represent.Options) *Failure {
	return New("expected %s to match /%s/", opts.Format(actual), pattern)
}

func ShouldBeSorted(actual any, index int, opts represent.Options) *Failure {
	f := New("expected sorted but element at index %d is out of order", index)
	f.Actual = opts.Format(actual)
	return f
}

func ShouldSatisfy(actual any, index int, opts represent.Options) *Failure {
	if index >= 0 {
		return New("element at index %d does not satisfy the condition: %s",
			index, opts.Format(actual))
	}
	return New("value does not satisfy the condition: %s", opts.Format(actual))
}

func ShouldBeBefore(actual, other any, opts represent.Options) *Failure {
	return New("expected %s to be before %s", opts.Format(actual), opts.Format(other))
}

func ShouldBeAfter(actual, other any, opts represent.Options) *Failure {
	return New("expected %s to be after %s", opts.Format(actual), opts.Format(other))
}
