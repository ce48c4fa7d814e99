package recursive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Street string
	City   string
}

type person struct {
	Name    string
	Age     int
	Home    address
	Tags    []string
	Friends []*person
}

func TestCompare_EqualGraphs(t *testing.T) {
	a := person{Name: "ada", Age: 36, Home: address{Street: "1 Main", City: "Oslo"}}
	b := person{Name: "ada", Age: 36, Home: address{Street: "1 Main", City: "Oslo"}}

	assert.Empty(t, Compare(a, b, nil))
	assert.True(t, Equal(a, b, nil))
}

func TestCompare_ReportsEveryDifference(t *testing.T) {
	a := person{Name: "ada", Age: 36, Home: address{City: "Oslo"}}
	b := person{Name: "bob", Age: 37, Home: address{City: "Bergen"}}

	diffs := Compare(a, b, nil)
	require.Len(t, diffs, 3)

	paths := make([]string, len(diffs))
	for i, d := range diffs {
		paths[i] = d.Path
	}
	assert.Contains(t, paths, "Name")
	assert.Contains(t, paths, "Age")
	assert.Contains(t, paths, "Home.City")
}

func TestCompare_DifferenceValues(t *testing.T) {
	diffs := Compare(person{Name: "ada"}, person{Name: "bob"}, nil)
	require.Len(t, diffs, 1)

	assert.Equal(t, "Name", diffs[0].Path)
	assert.Equal(t, "ada", diffs[0].Expected)
	assert.Equal(t, "bob", diffs[0].Actual)
	assert.Equal(t, "field Name: expected ada, got bob", diffs[0].String())
}

func TestCompare_SliceAndMapPaths(t *testing.T) {
	type order struct {
		Items  []string
		Totals map[string]int
	}

	a := order{Items: []string{"x", "y"}, Totals: map[string]int{"net": 10}}
	b := order{Items: []string{"x", "z"}, Totals: map[string]int{"net": 12}}

	diffs := Compare(a, b, nil)
	require.Len(t, diffs, 2)

	paths := []string{diffs[0].Path, diffs[1].Path}
	assert.Contains(t, paths, "Items[1]")
	assert.Contains(t, paths, "Totals[net]")
}

func TestCompare_RootDifference(t *testing.T) {
	diffs := Compare(1, 2, nil)
	require.Len(t, diffs, 1)
	assert.Equal(t, "(root)", diffs[0].Path)
}

func TestCompare_IgnoringFields(t *testing.T) {
	a := person{Name: "ada", Home: address{City: "Oslo"}}
	b := person{Name: "bob", Home: address{City: "Bergen"}}

	cfg := NewConfig(IgnoringFields("Name", "Home.City"))
	assert.Empty(t, Compare(a, b, cfg))

	// Ignoring a parent path covers everything under it.
	cfg = NewConfig(IgnoringFields("Name", "Home"))
	assert.Empty(t, Compare(a, b, cfg))
}

func TestCompare_IgnoringFieldsMatching(t *testing.T) {
	a := person{Name: "ada", Home: address{Street: "1 Main", City: "Oslo"}}
	b := person{Name: "ada", Home: address{Street: "2 Side", City: "Bergen"}}

	cfg := NewConfig(IgnoringFieldsMatching(`^Home\.`))
	assert.Empty(t, Compare(a, b, cfg))
}

func TestCompare_IgnoringTypes(t *testing.T) {
	type event struct {
		ID   string
		When time.Time
	}

	a := event{ID: "1", When: time.Now()}
	b := event{ID: "1", When: a.When.Add(time.Hour)}

	assert.NotEmpty(t, Compare(a, b, nil))
	assert.Empty(t, Compare(a, b, NewConfig(IgnoringTypes(time.Time{}))))
}

func TestCompare_IgnoringZeroExpectedFields(t *testing.T) {
	expected := person{Name: "ada"} // sparse template
	actual := person{Name: "ada", Age: 36, Home: address{City: "Oslo"}, Tags: []string{"x"}}

	cfg := NewConfig(IgnoringZeroExpectedFields())
	assert.Empty(t, Compare(expected, actual, cfg))

	expected.Name = "bob"
	assert.NotEmpty(t, Compare(expected, actual, cfg))
}

func TestCompare_ComparingWith(t *testing.T) {
	type box struct {
		Label string
	}
	a := struct{ B box }{B: box{Label: "ABC"}}
	b := struct{ B box }{B: box{Label: "abc"}}

	assert.NotEmpty(t, Compare(a, b, nil))

	cfg := NewConfig(ComparingWith(func(x, y box) bool {
		return len(x.Label) == len(y.Label)
	}))
	assert.Empty(t, Compare(a, b, cfg))
}

func TestCompare_ComparingFieldWith(t *testing.T) {
	a := person{Name: "ADA", Age: 36}
	b := person{Name: "ada", Age: 36}

	cfg := NewConfig(ComparingFieldWith("Name", func(x, y string) bool {
		return len(x) == len(y)
	}))
	assert.Empty(t, Compare(a, b, cfg))

	// The override only applies at its path.
	a.Age = 40
	assert.NotEmpty(t, Compare(a, b, cfg))
}

func TestCompare_WithFloatTolerance(t *testing.T) {
	type reading struct {
		Celsius float64
	}

	a := reading{Celsius: 21.0}
	b := reading{Celsius: 21.004}

	assert.NotEmpty(t, Compare(a, b, nil))
	assert.Empty(t, Compare(a, b, NewConfig(WithFloatTolerance(0.01))))
}

func TestCompare_EquatingEmptyCollections(t *testing.T) {
	a := person{Name: "ada", Tags: nil}
	b := person{Name: "ada", Tags: []string{}}

	assert.NotEmpty(t, Compare(a, b, nil))
	assert.Empty(t, Compare(a, b, NewConfig(EquatingEmptyCollections())))
}

func TestCompare_UnexportedFields(t *testing.T) {
	type hidden struct {
		visible string
		secret  int
	}

	a := hidden{visible: "x", secret: 1}
	b := hidden{visible: "x", secret: 2}

	diffs := Compare(a, b, nil)
	require.Len(t, diffs, 1)
	assert.Equal(t, "secret", diffs[0].Path)
}

func TestCompare_Cycles(t *testing.T) {
	a := &person{Name: "ada"}
	a.Friends = []*person{a}

	b := &person{Name: "ada"}
	b.Friends = []*person{b}

	// Self-referential graphs terminate and compare equal.
	assert.Empty(t, Compare(a, b, nil))

	c := &person{Name: "bob"}
	c.Friends = []*person{c}
	assert.NotEmpty(t, Compare(a, c, nil))
}

func TestFormatPath_Empty(t *testing.T) {
	assert.Equal(t, "(root)", rootedPath(nil))
}
