package failure

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

type recorder struct {
	messages []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestRender(t *testing.T) {
	f := &Failure{
		Message:  "values are not equal",
		Expected: `"abc"`,
		Actual:   `"abd"`,
	}

	want := "values are not equal\nexpected: \"abc\"\n but was: \"abd\""
	assert.Equal(t, want, f.Render())
}

func TestRender_WithDescription(t *testing.T) {
	f := New("expected true but was false").WithDescription("user is active")
	assert.Equal(t, "[user is active] expected true but was false", f.Render())
}

func TestRender_WithDetails(t *testing.T) {
	f := New("elements differ").
		WithDetail("missing: %d", 3).
		WithDetail("unexpected: %d", 7)

	assert.Equal(t, "elements differ\nmissing: 3\nunexpected: 7", f.Render())
}

func TestRender_MessageOnly(t *testing.T) {
	assert.Equal(t, "expected a non-nil value but was nil", ShouldNotBeNil().Render())
}

func TestReport(t *testing.T) {
	rec := &recorder{}
	Report(rec, New("boom %d", 42))

	assert.Len(t, rec.messages, 1)
	assert.Equal(t, "boom 42", rec.messages[0])
}

func TestShouldBeEqual(t *testing.T) {
	f := ShouldBeEqual("abd", "abc", represent.Default())

	assert.Equal(t, "values are not equal", f.Message)
	assert.Equal(t, `"abc"`, f.Expected)
	assert.Equal(t, `"abd"`, f.Actual)
}

func TestShouldContainExactly(t *testing.T) {
	opts := represent.Default()

	f := ShouldContainExactly([]int{1, 2}, []int{3}, nil, opts)
	assert.Equal(t, []string{"missing:    [3]"}, f.Details)

	f = ShouldContainExactly([]int{1, 2}, []int{3}, []int{2}, opts)
	assert.Len(t, f.Details, 2)
	assert.Contains(t, f.Details[1], "unexpected: [2]")
}

func TestShouldHaveSize(t *testing.T) {
	f := ShouldHaveSize([]int{1, 2, 3}, 3, 5, represent.Default())
	assert.Contains(t, f.Render(), "expected size 5 but was 3")
	assert.Contains(t, f.Render(), "but was: [1, 2, 3]")
}

func TestComparisonMessages(t *testing.T) {
	opts := represent.Default()

	assert.Equal(t, "expected 3 > 5", ShouldBeGreater(3, 5, false, opts).Render())
	assert.Equal(t, "expected 3 >= 5", ShouldBeGreater(3, 5, true, opts).Render())
	assert.Equal(t, "expected 7 < 5", ShouldBeLess(7, 5, false, opts).Render())
	assert.Equal(t, "expected 9 to be between 1 and 5", ShouldBeBetween(9, 1, 5, opts).Render())
	assert.Equal(t, `expected "ab" to match /^x/`, ShouldMatch("ab", "^x", opts).Render())
}
