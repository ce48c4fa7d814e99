package expect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdul-hamid-achik/verity/packages/recursive"
)

type user struct {
	Name  string
	Email string
	Age   int
}

func TestValue_IsEqualTo(t *testing.T) {
	rec := &recorder{}
	Value(rec, user{Name: "ada", Age: 36}).IsEqualTo(user{Name: "ada", Age: 36})
	assert.False(t, rec.failed())

	Value(rec, user{Name: "ada"}).IsEqualTo(user{Name: "bob"})
	assert.True(t, rec.failed())
	assert.Contains(t, rec.last(), "values are not equal")
	assert.Contains(t, rec.last(), "Name:bob")
}

func TestValue_IsEqualTo_Description(t *testing.T) {
	rec := &recorder{}
	Value(rec, 1).As("checking %s", "id").IsEqualTo(2)

	assert.True(t, strings.HasPrefix(rec.last(), "[checking id]"))
}

func TestValue_IsNotEqualTo(t *testing.T) {
	rec := &recorder{}
	Value(rec, "a").IsNotEqualTo("b")
	assert.False(t, rec.failed())

	Value(rec, "a").IsNotEqualTo("a")
	assert.True(t, rec.failed())
}

func TestValue_UsingComparator(t *testing.T) {
	rec := &recorder{}
	sameLength := func(x, y string) bool { return len(x) == len(y) }

	Value(rec, "abc").UsingComparator(sameLength).IsEqualTo("xyz")
	assert.False(t, rec.failed())

	Value(rec, "abc").UsingComparator(sameLength).IsEqualTo("toolong")
	assert.True(t, rec.failed())
}

func TestValue_Nil(t *testing.T) {
	rec := &recorder{}
	var p *user
	Value(rec, p).IsNil()
	assert.False(t, rec.failed())

	Value(rec, &user{}).IsNil()
	assert.True(t, rec.failed())

	rec = &recorder{}
	Value(rec, &user{}).IsNotNil()
	assert.False(t, rec.failed())

	Value(rec, p).IsNotNil()
	assert.True(t, rec.failed())
	assert.Contains(t, rec.last(), "non-nil")
}

func TestValue_Zero(t *testing.T) {
	rec := &recorder{}
	Value(rec, user{}).IsZero()
	Value(rec, 0).IsZero()
	Value(rec, "").IsZero()
	assert.False(t, rec.failed())

	Value(rec, user{Name: "ada"}).IsZero()
	assert.True(t, rec.failed())

	rec = &recorder{}
	Value(rec, 7).IsNotZero()
	assert.False(t, rec.failed())

	Value(rec, 0).IsNotZero()
	assert.True(t, rec.failed())
}

func TestValue_IsIn(t *testing.T) {
	rec := &recorder{}
	Value(rec, "b").IsIn("a", "b", "c")
	assert.False(t, rec.failed())

	Value(rec, "z").IsIn("a", "b", "c")
	assert.True(t, rec.failed())
	assert.Contains(t, rec.last(), `expected "z" to be in`)

	rec = &recorder{}
	Value(rec, "z").IsNotIn("a", "b")
	assert.False(t, rec.failed())

	Value(rec, "a").IsNotIn("a", "b")
	assert.True(t, rec.failed())
}

func TestValue_Satisfies(t *testing.T) {
	rec := &recorder{}
	Value(rec, 10).Satisfies(func(n int) bool { return n%2 == 0 })
	assert.False(t, rec.failed())

	Value(rec, 11).Satisfies(func(n int) bool { return n%2 == 0 })
	assert.True(t, rec.failed())
}

func TestValue_UsingRecursiveComparison(t *testing.T) {
	type account struct {
		Owner   user
		Balance float64
	}

	rec := &recorder{}
	a := account{Owner: user{Name: "ada", Email: "ada@x.io", Age: 36}, Balance: 10}
	b := account{Owner: user{Name: "bob", Email: "ada@x.io", Age: 37}, Balance: 10}

	Value(rec, a).UsingRecursiveComparison().IsEqualTo(a)
	assert.False(t, rec.failed())

	Value(rec, b).UsingRecursiveComparison().IsEqualTo(a)
	assert.True(t, rec.failed())
	assert.Contains(t, rec.last(), "2 difference(s)")
	assert.Contains(t, rec.last(), "Owner.Name")
	assert.Contains(t, rec.last(), "Owner.Age")
}

func TestValue_UsingRecursiveComparison_IgnoringFields(t *testing.T) {
	rec := &recorder{}
	a := user{Name: "ada", Email: "ada@x.io", Age: 36}
	b := user{Name: "ada", Email: "other@x.io", Age: 36}

	Value(rec, b).
		UsingRecursiveComparison(recursive.IgnoringFields("Email")).
		IsEqualTo(a)
	assert.False(t, rec.failed())
}

func TestValue_Chaining(t *testing.T) {
	rec := &recorder{}
	Value(rec, 5).IsNotZero().IsIn(1, 3, 5).IsEqualTo(5)
	assert.False(t, rec.failed())
}
