// Package expect provides fluent, chainable assertions for Go tests.
//
// Each entry point wraps an actual value and returns an assertion
// object whose methods check one property and return the receiver:
//
//	expect.String(t, name).IsNotEmpty().StartsWith("user-")
//	expect.Slice(t, ids).HasSize(3).Contains(42)
//	expect.Number(t, latency).IsBetween(0, 250)
//	expect.Value(t, got).UsingRecursiveComparison().IsEqualTo(want)
//
// Assertion objects stay thin: comparison work is delegated to the
// compare package and message construction to the failure package.
// Failures are reported through the minimal TestingT interface, so the
// assertions work with *testing.T and with the soft package's collector.
package expect
