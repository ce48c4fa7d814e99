// Package jsonassert provides assertions on JSON documents: semantic
// equality, path queries, and JSON Schema validation.
package jsonassert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/abdul-hamid-achik/verity/packages/core/compare"
	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// TestingT is re-exported so callers need only this package.
type TestingT = failure.TestingT

type tHelper interface{ Helper() }

// Assert asserts on a JSON document.
type Assert struct {
	t       TestingT
	doc     string
	parsed  gjson.Result
	baseDir string
	desc    string
	opts    represent.Options
}

// Option configures an Assert.
type Option func(*Assert)

// WithBaseDir sets the directory schema file paths are resolved
// against. Paths escaping it are rejected.
func WithBaseDir(dir string) Option {
	return func(a *Assert) {
		a.baseDir = dir
	}
}

// That begins an assertion chain on a JSON document.
func That(t TestingT, doc string, opts ...Option) *Assert {
	a := &Assert{
		t:      t,
		doc:    doc,
		parsed: gjson.Parse(doc),
		opts:   represent.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// As sets a description included in failure messages.
func (a *Assert) As(format string, args ...any) *Assert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *Assert) fail(f *failure.Failure) {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	failure.Report(a.t, f.WithDescription(a.desc))
}

// IsValidJSON asserts the document parses as JSON.
func (a *Assert) IsValidJSON() *Assert {
	if !gjson.Valid(a.doc) {
		a.fail(failure.New("expected valid JSON but parsing failed").
			WithDetail("document: %s", a.opts.Format(a.doc)))
	}
	return a
}

// IsEqualTo asserts semantic JSON equality with expected: key order and
// number formatting differences are ignored.
func (a *Assert) IsEqualTo(expected string) *Assert {
	var got, want any
	if err := json.Unmarshal([]byte(a.doc), &got); err != nil {
		a.fail(failure.New("actual document is not valid JSON: %v", err))
		return a
	}
	if err := json.Unmarshal([]byte(expected), &want); err != nil {
		a.fail(failure.New("expected document is not valid JSON: %v", err))
		return a
	}
	if !reflect.DeepEqual(got, want) {
		a.fail(failure.ShouldBeEqual(a.doc, expected, a.opts))
	}
	return a
}

// HasPath asserts the document has a value at the gjson path.
func (a *Assert) HasPath(path string) *Assert {
	if !a.parsed.Get(path).Exists() {
		a.fail(failure.New("expected path %q to exist", path).
			WithDetail("document: %s", a.opts.Format(a.doc)))
	}
	return a
}

// DoesNotHavePath asserts nothing exists at the gjson path.
func (a *Assert) DoesNotHavePath(path string) *Assert {
	if a.parsed.Get(path).Exists() {
		a.fail(failure.New("expected path %q not to exist", path))
	}
	return a
}

// PathEquals asserts the value at path equals expected, with numeric
// coercion so PathEquals("age", 30) matches a JSON number.
func (a *Assert) PathEquals(path string, expected any) *Assert {
	result := a.parsed.Get(path)
	if !result.Exists() {
		a.fail(failure.New("expected path %q to exist", path))
		return a
	}
	if !compare.EqualValues(result.Value(), expected) {
		a.fail(failure.ShouldBeEqual(result.Value(), expected, a.opts).
			WithDetail("at path: %s", path))
	}
	return a
}

// PathMatches asserts the string value at path matches the pattern.
func (a *Assert) PathMatches(path, pattern string) *Assert {
	result := a.parsed.Get(path)
	if !result.Exists() {
		a.fail(failure.New("expected path %q to exist", path))
		return a
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		a.fail(failure.New("invalid regex pattern %q: %v", pattern, err))
		return a
	}
	if !re.MatchString(result.String()) {
		a.fail(failure.ShouldMatch(result.String(), pattern, a.opts).
			WithDetail("at path: %s", path))
	}
	return a
}

// HasLength asserts the array or string at path has n elements.
func (a *Assert) HasLength(path string, n int) *Assert {
	result := a.parsed.Get(path)
	if !result.Exists() {
		a.fail(failure.New("expected path %q to exist", path))
		return a
	}

	var got int
	switch {
	case result.IsArray():
		got = len(result.Array())
	case result.Type == gjson.String:
		got = utf8.RuneCountInString(result.String())
	default:
		a.fail(failure.New("cannot get length of %s value at path %q", result.Type, path))
		return a
	}

	if got != n {
		a.fail(failure.New("expected length %d at path %q but was %d", n, path, got))
	}
	return a
}

// MatchesSchema asserts the document validates against the JSON Schema
// stored at schemaPath, resolved against the base dir when set.
func (a *Assert) MatchesSchema(schemaPath string) *Assert {
	if !filepath.IsAbs(schemaPath) && a.baseDir != "" {
		schemaPath = filepath.Join(a.baseDir, schemaPath)
	}
	if err := validatePathWithinBase(schemaPath, a.baseDir); err != nil {
		a.fail(failure.New("%v", err))
		return a
	}

	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		a.fail(failure.New("failed to read schema file: %v", err))
		return a
	}
	return a.MatchesSchemaBytes(schemaData)
}

// MatchesSchemaBytes asserts the document validates against the given
// JSON Schema.
func (a *Assert) MatchesSchemaBytes(schema []byte) *Assert {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewStringLoader(a.doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		a.fail(failure.New("schema validation error: %v", err))
		return a
	}

	if !result.Valid() {
		f := failure.New("document does not match schema")
		for _, desc := range result.Errors() {
			f.WithDetail("  %s", desc.String())
		}
		a.fail(f)
	}
	return a
}

// validatePathWithinBase checks that the resolved path stays within the
// base directory to prevent path traversal.
func validatePathWithinBase(path, baseDir string) error {
	if baseDir == "" {
		return nil
	}

	cleanBase, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base directory: %v", err)
	}
	cleanPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %v", err)
	}

	if !strings.HasPrefix(cleanPath, cleanBase+string(filepath.Separator)) && cleanPath != cleanBase {
		return fmt.Errorf("path traversal detected: %s is outside allowed directory %s", path, baseDir)
	}
	return nil
}
