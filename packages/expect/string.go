package expect

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// StringAssert asserts on a string value.
type StringAssert struct {
	t      TestingT
	actual string
	desc   string
	opts   represent.Options
}

// String begins an assertion chain on a string.
func String(t TestingT, actual string) *StringAssert {
	return &StringAssert{t: t, actual: actual, opts: represent.Default()}
}

// As sets a description included in failure messages.
func (a *StringAssert) As(format string, args ...any) *StringAssert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *StringAssert) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsEqualTo asserts equality with expected.
func (a *StringAssert) IsEqualTo(expected string) *StringAssert {
	helper(a.t)
	if a.actual != expected {
		a.fail(failure.ShouldBeEqual(a.actual, expected, a.opts))
	}
	return a
}

// IsEqualToIgnoringCase asserts equality ignoring letter case.
func (a *StringAssert) IsEqualToIgnoringCase(expected string) *StringAssert {
	helper(a.t)
	if !strings.EqualFold(a.actual, expected) {
		a.fail(failure.ShouldBeEqual(a.actual, expected, a.opts).
			WithDetail("comparison ignores case"))
	}
	return a
}

// IsNotEqualTo asserts the string differs from other.
func (a *StringAssert) IsNotEqualTo(other string) *StringAssert {
	helper(a.t)
	if a.actual == other {
		a.fail(failure.ShouldNotBeEqual(a.actual, a.opts))
	}
	return a
}

// IsEmpty asserts the string is "".
func (a *StringAssert) IsEmpty() *StringAssert {
	helper(a.t)
	if a.actual != "" {
		a.fail(failure.ShouldBeEmpty(a.actual, a.opts))
	}
	return a
}

// IsNotEmpty asserts the string is not "".
func (a *StringAssert) IsNotEmpty() *StringAssert {
	helper(a.t)
	if a.actual == "" {
		a.fail(failure.ShouldNotBeEmpty())
	}
	return a
}

// IsBlank asserts the string is empty or only whitespace.
func (a *StringAssert) IsBlank() *StringAssert {
	helper(a.t)
	if strings.TrimSpace(a.actual) != "" {
		a.fail(failure.New("expected a blank string but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// IsNotBlank asserts the string contains at least one non-space rune.
func (a *StringAssert) IsNotBlank() *StringAssert {
	helper(a.t)
	if strings.TrimSpace(a.actual) == "" {
		a.fail(failure.New("expected a non-blank string but was %s", a.opts.Format(a.actual)))
	}
	return a
}

// HasLength asserts the string has exactly n runes.
func (a *StringAssert) HasLength(n int) *StringAssert {
	helper(a.t)
	if got := utf8.RuneCountInString(a.actual); got != n {
		a.fail(failure.ShouldHaveSize(a.actual, got, n, a.opts))
	}
	return a
}

// Contains asserts the string contains every given substring.
func (a *StringAssert) Contains(substrings ...string) *StringAssert {
	helper(a.t)
	var missing []string
	for _, s := range substrings {
		if !strings.Contains(a.actual, s) {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		a.fail(failure.ShouldContain(a.actual, missing, a.opts))
	}
	return a
}

// ContainsIgnoringCase asserts the string contains sub ignoring case.
func (a *StringAssert) ContainsIgnoringCase(sub string) *StringAssert {
	helper(a.t)
	if !strings.Contains(strings.ToLower(a.actual), strings.ToLower(sub)) {
		a.fail(failure.ShouldContain(a.actual, sub, a.opts).
			WithDetail("comparison ignores case"))
	}
	return a
}

// ContainsSubsequence asserts the given substrings all appear in the
// string in the given order, possibly with other content between them.
func (a *StringAssert) ContainsSubsequence(subsequence ...string) *StringAssert {
	helper(a.t)
	offset := 0
	for _, s := range subsequence {
		idx := strings.Index(a.actual[offset:], s)
		if idx < 0 {
			a.fail(failure.New("expected %s to contain subsequence %s",
				a.opts.Format(a.actual), a.opts.Format(subsequence)).
				WithDetail("could not find %s after position %d", a.opts.Format(s), offset))
			return a
		}
		offset += idx + len(s)
	}
	return a
}

// DoesNotContain asserts the string contains none of the substrings.
func (a *StringAssert) DoesNotContain(substrings ...string) *StringAssert {
	helper(a.t)
	for _, s := range substrings {
		if strings.Contains(a.actual, s) {
			a.fail(failure.ShouldNotContain(a.actual, s, a.opts))
		}
	}
	return a
}

// StartsWith asserts the string starts with prefix.
func (a *StringAssert) StartsWith(prefix string) *StringAssert {
	helper(a.t)
	if !strings.HasPrefix(a.actual, prefix) {
		a.fail(failure.ShouldStartWith(a.actual, prefix, a.opts))
	}
	return a
}

// EndsWith asserts the string ends with suffix.
func (a *StringAssert) EndsWith(suffix string) *StringAssert {
	helper(a.t)
	if !strings.HasSuffix(a.actual, suffix) {
		a.fail(failure.ShouldEndWith(a.actual, suffix, a.opts))
	}
	return a
}

// Matches asserts the string matches the regular expression pattern.
func (a *StringAssert) Matches(pattern string) *StringAssert {
	helper(a.t)
	re, err := regexp.Compile(pattern)
	if err != nil {
		a.fail(failure.New("invalid regex pattern %q: %v", pattern, err))
		return a
	}
	if !re.MatchString(a.actual) {
		a.fail(failure.ShouldMatch(a.actual, pattern, a.opts))
	}
	return a
}

// DoesNotMatch asserts the string does not match the pattern.
func (a *StringAssert) DoesNotMatch(pattern string) *StringAssert {
	helper(a.t)
	re, err := regexp.Compile(pattern)
	if err != nil {
		a.fail(failure.New("invalid regex pattern %q: %v", pattern, err))
		return a
	}
	if re.MatchString(a.actual) {
		a.fail(failure.New("expected %s not to match /%s/", a.opts.Format(a.actual), pattern))
	}
	return a
}

// HasLineCount asserts the string has exactly n lines.
func (a *StringAssert) HasLineCount(n int) *StringAssert {
	helper(a.t)
	got := strings.Count(a.actual, "\n") + 1
	if a.actual == "" {
		got = 0
	}
	if got != n {
		a.fail(failure.New("expected %d lines but found %d", n, got))
	}
	return a
}
