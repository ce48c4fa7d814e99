// Package represent formats arbitrary values for assertion failure messages.
package represent

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/verity/packages/core/compare"
)

// Options controls how values are rendered in failure messages.
type Options struct {
	MaxValueLength int // truncate rendered values longer than this
	MaxElements    int // summarize slices/maps with more elements than this
}

// Default returns the rendering options used when none are configured.
func Default() Options {
	return Options{
		MaxValueLength: 200,
		MaxElements:    20,
	}
}

// ToString renders a value with default options.
func ToString(v any) string {
	return Default().Format(v)
}

// Format renders a value for display, quoting strings, expanding small
// collections and truncating anything too large to be readable.
func (o Options) Format(v any) string {
	return o.truncate(o.format(v))
}

func (o Options) format(v any) string {
	// A typed-nil pointer still satisfies error or fmt.Stringer, and
	// calling the method on it would crash mid-report.
	if compare.IsNil(v) {
		return "nil"
	}

	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case []byte:
		return strconv.Quote(string(val))
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case time.Duration:
		return val.String()
	case error:
		return strconv.Quote(val.Error())
	case fmt.Stringer:
		return val.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return o.formatList(rv)
	case reflect.Map:
		return o.formatMap(rv)
	case reflect.Pointer:
		return o.format(rv.Elem().Interface())
	}

	return fmt.Sprintf("%+v", v)
}

func (o Options) formatList(rv reflect.Value) string {
	n := rv.Len()
	if o.MaxElements > 0 && n > o.MaxElements {
		return fmt.Sprintf("[%d elements, first %d: %s...]",
			n, o.MaxElements, o.joinElements(rv, o.MaxElements))
	}
	return "[" + o.joinElements(rv, n) + "]"
}

func (o Options) joinElements(rv reflect.Value, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(o.format(rv.Index(i).Interface()))
	}
	return sb.String()
}

func (o Options) formatMap(rv reflect.Value) string {
	n := rv.Len()
	if o.MaxElements > 0 && n > o.MaxElements {
		return fmt.Sprintf("{map with %d entries}", n)
	}

	keys := rv.MapKeys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, o.format(k.Interface())+": "+o.format(rv.MapIndex(k).Interface()))
	}
	// Deterministic output for tests and stable failure messages.
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

func (o Options) truncate(s string) string {
	if o.MaxValueLength <= 0 || len(s) <= o.MaxValueLength {
		return s
	}
	return s[:o.MaxValueLength] + "... (truncated " + strconv.Itoa(len(s)-o.MaxValueLength) + " chars)"
}
