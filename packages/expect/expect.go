package expect

import (
	"github.com/abdul-hamid-achik/verity/packages/core/failure"
)

// TestingT is the reporting interface all assertions use. *testing.T
// satisfies it.
type TestingT = failure.TestingT

type tHelper interface {
	Helper()
}

// helper marks the calling frame as a test helper when t supports it.
func helper(t TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// Ordered covers element types usable with Ascending and Descending.
type Ordered interface {
	Real | ~string
}

// Ascending is a less function for naturally ordered element types,
// for use with IsSortedAccordingTo.
func Ascending[T Ordered](x, y T) bool { return x < y }

// Descending is the reverse of Ascending.
func Descending[T Ordered](x, y T) bool { return x > y }
