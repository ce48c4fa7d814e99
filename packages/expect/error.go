package expect

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// ErrorAssert asserts on an error value.
type ErrorAssert struct {
	t      TestingT
	actual error
	desc   string
	opts   represent.Options
}

// Error begins an assertion chain on an error.
func Error(t TestingT, actual error) *ErrorAssert {
	return &ErrorAssert{t: t, actual: actual, opts: represent.Default()}
}

// As sets a description included in failure messages.
func (a *ErrorAssert) As(format string, args ...any) *ErrorAssert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *ErrorAssert) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsNil asserts no error occurred.
func (a *ErrorAssert) IsNil() *ErrorAssert {
	helper(a.t)
	if a.actual != nil {
		a.fail(failure.New("expected no error but got: %v", a.actual))
	}
	return a
}

// IsNotNil asserts an error occurred.
func (a *ErrorAssert) IsNotNil() *ErrorAssert {
	helper(a.t)
	if a.actual == nil {
		a.fail(failure.New("expected an error but got nil"))
	}
	return a
}

// Is asserts errors.Is(err, target).
func (a *ErrorAssert) Is(target error) *ErrorAssert {
	helper(a.t)
	if !errors.Is(a.actual, target) {
		a.fail(failure.New("expected error to match target via errors.Is").
			WithDetail("target: %v", target).
			WithDetail("actual: %v", a.actual))
	}
	return a
}

// IsNot asserts !errors.Is(err, target).
func (a *ErrorAssert) IsNot(target error) *ErrorAssert {
	helper(a.t)
	if errors.Is(a.actual, target) {
		a.fail(failure.New("expected error not to match %v but it does", target))
	}
	return a
}

// AsTarget asserts errors.As(err, target) succeeds, assigning the
// matched error to target.
func (a *ErrorAssert) AsTarget(target any) *ErrorAssert {
	helper(a.t)
	if !errors.As(a.actual, target) {
		a.fail(failure.New("expected error chain to contain a %T", target).
			WithDetail("actual: %v", a.actual))
	}
	return a
}

// HasMessage asserts the error message is exactly msg.
func (a *ErrorAssert) HasMessage(msg string) *ErrorAssert {
	helper(a.t)
	if a.actual == nil {
		a.fail(failure.New("expected an error with message %s but got nil", a.opts.Format(msg)))
		return a
	}
	if a.actual.Error() != msg {
		a.fail(failure.ShouldBeEqual(a.actual.Error(), msg, a.opts))
	}
	return a
}

// MessageContains asserts the error message contains sub.
func (a *ErrorAssert) MessageContains(sub string) *ErrorAssert {
	helper(a.t)
	if a.actual == nil {
		a.fail(failure.New("expected an error containing %s but got nil", a.opts.Format(sub)))
		return a
	}
	if !strings.Contains(a.actual.Error(), sub) {
		a.fail(failure.ShouldContain(a.actual.Error(), sub, a.opts))
	}
	return a
}

// MessageStartsWith asserts the error message starts with prefix.
func (a *ErrorAssert) MessageStartsWith(prefix string) *ErrorAssert {
	helper(a.t)
	if a.actual == nil {
		a.fail(failure.New("expected an error starting with %s but got nil", a.opts.Format(prefix)))
		return a
	}
	if !strings.HasPrefix(a.actual.Error(), prefix) {
		a.fail(failure.ShouldStartWith(a.actual.Error(), prefix, a.opts))
	}
	return a
}

// MessageMatches asserts the error message matches the pattern.
func (a *ErrorAssert) MessageMatches(pattern string) *ErrorAssert {
	helper(a.t)
	if a.actual == nil {
		a.fail(failure.New("expected an error matching /%s/ but got nil", pattern))
		return a
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		a.fail(failure.New("invalid regex pattern %q: %v", pattern, err))
		return a
	}
	if !re.MatchString(a.actual.Error()) {
		a.fail(failure.ShouldMatch(a.actual.Error(), pattern, a.opts))
	}
	return a
}
