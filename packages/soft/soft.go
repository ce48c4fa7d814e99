// Package soft collects assertion failures instead of reporting them
// one at a time, then reports them all together. A Collector satisfies
// the TestingT interface the expect package reports through, so any
// assertion can run in soft mode:
//
//	s := soft.New(t)
//	expect.Number(s, got.Count).IsPositive()
//	expect.String(s, got.Name).IsNotEmpty()
//	s.AssertAll()
package soft

import (
	"fmt"
	"strings"
	"sync"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
)

type tHelper interface{ Helper() }

// Collector accumulates failures from assertions run against it.
// Safe for concurrent use.
type Collector struct {
	t  failure.TestingT
	mu sync.Mutex

	failures []string
	asserted bool
}

// New creates a Collector reporting to t when AssertAll is called.
func New(t failure.TestingT) *Collector {
	return &Collector{t: t}
}

// Errorf records a failure instead of failing the test immediately.
// After AssertAll has run, failures go straight through to the
// underlying t so they cannot be silently dropped.
func (c *Collector) Errorf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.asserted {
		c.t.Errorf(format, args...)
		return
	}
	c.failures = append(c.failures, fmt.Sprintf(format, args...))
}

// Helper is a no-op so assertion helpers can mark frames as usual.
func (c *Collector) Helper() {}

// FailureCount returns the number of failures collected so far.
func (c *Collector) FailureCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.failures)
}

// AssertAll reports every collected failure through the underlying t
// as a single numbered list. It reports whether all assertions passed.
func (c *Collector) AssertAll() bool {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.asserted = true

	if len(c.failures) == 0 {
		return true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d assertion(s) failed:", len(c.failures))
	for i, f := range c.failures {
		// Indent multi-line failure messages under their number.
		indented := strings.ReplaceAll(f, "\n", "\n    ")
		fmt.Fprintf(&sb, "\n  %d) %s", i+1, indented)
	}

	c.t.Errorf("%s", sb.String())
	c.failures = nil
	return false
}
