// Package failure builds and reports human-readable assertion failure
// messages. Assertion types construct a Failure through the factory
// functions in this package and hand it to Report; they never format
// message text themselves.
package failure

import (
	"fmt"
	"strings"
)

// TestingT is the minimal testing interface assertions report through.
// *testing.T satisfies it, as does any testify-compatible fake.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface {
	Helper()
}

// Failure is a single assertion failure ready to be rendered.
type Failure struct {
	Description string   // optional user description, set with As(...)
	Message     string   // main failure line
	Expected    string   // rendered expected value, may be empty
	Actual      string   // rendered actual value, may be empty
	Details     []string // extra lines (missing elements, diffs, ...)
}

// WithDescription returns f with the user description set.
func (f *Failure) WithDescription(desc string) *Failure {
	f.Description = desc
	return f
}

// WithDetail appends an extra detail line.
func (f *Failure) WithDetail(format string, args ...any) *Failure {
	f.Details = append(f.Details, fmt.Sprintf(format, args...))
	return f
}

// Render produces the final multi-line failure message.
func (f *Failure) Render() string {
	var sb strings.Builder

	if f.Description != "" {
		sb.WriteString("[" + f.Description + "] ")
	}
	sb.WriteString(f.Message)

	if f.Expected != "" {
		sb.WriteString("\nexpected: " + f.Expected)
	}
	if f.Actual != "" {
		sb.WriteString("\n but was: " + f.Actual)
	}
	for _, d := range f.Details {
		sb.WriteString("\n" + d)
	}

	return sb.String()
}

// Report renders f and reports it through t. Helper is invoked when t
// supports it so the failure is attributed to the caller's test line.
func Report(t TestingT, f *Failure) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	t.Errorf("%s", f.Render())
}

// New builds a Failure from a plain message.
func New(format string, args ...any) *Failure {
	return &Failure{Message: fmt.Sprintf(format, args...)}
}
