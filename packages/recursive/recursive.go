// Package recursive compares arbitrary object graphs field by field and
// reports every difference found, instead of stopping at the first one.
// It is built on google/go-cmp, which handles reference cycles, and
// supports per-field and per-type comparison overrides.
package recursive

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Difference is a single field-level mismatch between two object graphs.
type Difference struct {
	Path     string
	Expected any
	Actual   any
}

func (d Difference) String() string {
	return fmt.Sprintf("field %s: expected %v, got %v", d.Path, d.Expected, d.Actual)
}

// Config holds the comparison overrides for a recursive comparison.
type Config struct {
	ignoreFields       []string
	ignorePatterns     []*regexp.Regexp
	ignoreTypes        []any
	ignoreZeroExpected bool
	strictTypes        bool
	extraOpts          []cmp.Option
}

// Option configures a recursive comparison.
type Option func(*Config)

// NewConfig builds a Config from options.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// IgnoringFields excludes the given field paths (and everything under
// them) from the comparison. Paths use dotted notation: "Address.City".
func IgnoringFields(paths ...string) Option {
	return func(c *Config) {
		c.ignoreFields = append(c.ignoreFields, paths...)
	}
}

// IgnoringFieldsMatching excludes fields whose path matches any of the
// given regular expressions.
func IgnoringFieldsMatching(patterns ...string) Option {
	return func(c *Config) {
		for _, p := range patterns {
			c.ignorePatterns = append(c.ignorePatterns, regexp.MustCompile(p))
		}
	}
}

// IgnoringTypes excludes all fields of the same types as the given
// example values.
func IgnoringTypes(examples ...any) Option {
	return func(c *Config) {
		c.ignoreTypes = append(c.ignoreTypes, examples...)
	}
}

// IgnoringZeroExpectedFields skips any field whose expected-side value
// is the zero value for its type. Useful when the expected object is a
// sparse template.
func IgnoringZeroExpectedFields() Option {
	return func(c *Config) {
		c.ignoreZeroExpected = true
	}
}

// ComparingWith registers a custom equality function for type T,
// overriding field-by-field comparison wherever a T is encountered.
func ComparingWith[T any](fn func(a, b T) bool) Option {
	return func(c *Config) {
		c.extraOpts = append(c.extraOpts, cmp.Comparer(fn))
	}
}

// ComparingFieldWith registers a custom equality function applied only
// at the given field path.
func ComparingFieldWith[T any](path string, fn func(a, b T) bool) Option {
	return func(c *Config) {
		c.extraOpts = append(c.extraOpts, cmp.FilterPath(
			pathMatcher([]string{path}, nil),
			cmp.Comparer(fn),
		))
	}
}

// WithFloatTolerance makes float comparisons pass when values differ by
// at most tol.
func WithFloatTolerance(tol float64) Option {
	return func(c *Config) {
		c.extraOpts = append(c.extraOpts, cmpopts.EquateApprox(0, tol))
	}
}

// EquatingEmptyCollections treats nil and empty slices or maps as equal.
func EquatingEmptyCollections() Option {
	return func(c *Config) {
		c.extraOpts = append(c.extraOpts, cmpopts.EquateEmpty())
	}
}

// Equal reports whether expected and actual are recursively equal under
// the config.
func Equal(expected, actual any, cfg *Config) bool {
	return len(Compare(expected, actual, cfg)) == 0
}

// Compare walks both object graphs and returns every field-level
// difference. An empty result means the graphs are equal.
func Compare(expected, actual any, cfg *Config) []Difference {
	if cfg == nil {
		cfg = NewConfig()
	}

	rec := &recorder{}
	opts := cfg.cmpOptions()
	opts = append(opts, cmp.Reporter(rec))

	cmp.Equal(expected, actual, opts...)
	return rec.diffs
}

func (c *Config) cmpOptions() []cmp.Option {
	opts := []cmp.Option{
		// Compare unexported fields the same way exported ones are
		// compared; callers opt types out via IgnoringTypes.
		cmp.Exporter(func(reflect.Type) bool { return true }),
	}

	if len(c.ignoreFields) > 0 || len(c.ignorePatterns) > 0 {
		opts = append(opts, cmp.FilterPath(
			pathMatcher(c.ignoreFields, c.ignorePatterns),
			cmp.Ignore(),
		))
	}

	if len(c.ignoreTypes) > 0 {
		opts = append(opts, cmpopts.IgnoreTypes(c.ignoreTypes...))
	}

	if c.ignoreZeroExpected {
		opts = append(opts, cmp.FilterValues(
			func(x, y any) bool { return isZeroValue(x) },
			cmp.Ignore(),
		))
	}

	opts = append(opts, c.extraOpts...)
	return opts
}

func pathMatcher(fields []string, patterns []*regexp.Regexp) func(cmp.Path) bool {
	return func(p cmp.Path) bool {
		formatted := FormatPath(p)
		if formatted == "" {
			return false
		}
		for _, f := range fields {
			if formatted == f || strings.HasPrefix(formatted, f+".") || strings.HasPrefix(formatted, f+"[") {
				return true
			}
		}
		for _, re := range patterns {
			if re.MatchString(formatted) {
				return true
			}
		}
		return false
	}
}

// FormatPath renders a cmp.Path as dotted field notation with slice and
// map indexes: "Items[2].Name".
func FormatPath(p cmp.Path) string {
	var sb strings.Builder
	for _, step := range p {
		switch s := step.(type) {
		case cmp.StructField:
			sb.WriteString("." + s.Name())
		case cmp.SliceIndex:
			sb.WriteString(s.String())
		case cmp.MapIndex:
			fmt.Fprintf(&sb, "[%v]", s.Key())
		}
	}
	return strings.TrimPrefix(sb.String(), ".")
}

func isZeroValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.IsZero()
}

type recorder struct {
	path  cmp.Path
	diffs []Difference
}

func (r *recorder) PushStep(ps cmp.PathStep) {
	r.path = append(r.path, ps)
}

func (r *recorder) Report(rs cmp.Result) {
	if rs.Equal() {
		return
	}

	vx, vy := r.path.Last().Values()
	d := Difference{Path: rootedPath(r.path)}
	if vx.IsValid() && vx.CanInterface() {
		d.Expected = vx.Interface()
	}
	if vy.IsValid() && vy.CanInterface() {
		d.Actual = vy.Interface()
	}
	r.diffs = append(r.diffs, d)
}

func (r *recorder) PopStep() {
	r.path = r.path[:len(r.path)-1]
}

func rootedPath(p cmp.Path) string {
	formatted := FormatPath(p)
	if formatted == "" {
		return "(root)"
	}
	return formatted
}
