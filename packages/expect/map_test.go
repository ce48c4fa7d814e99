package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Emptiness(t *testing.T) {
	rec := &recorder{}
	Map(rec, map[string]int{}).IsEmpty()
	Map(rec, map[string]int{"a": 1}).IsNotEmpty()
	assert.False(t, rec.failed())

	Map(rec, map[string]int{"a": 1}).IsEmpty()
	assert.True(t, rec.failed())

	rec = &recorder{}
	Map(rec, map[string]int{}).IsNotEmpty()
	assert.True(t, rec.failed())
}

func TestMap_HasSize(t *testing.T) {
	rec := &recorder{}
	Map(rec, map[string]int{"a": 1, "b": 2}).HasSize(2)
	assert.False(t, rec.failed())

	Map(rec, map[string]int{"a": 1}).HasSize(3)
	assert.True(t, rec.failed())
}

func TestMap_Keys(t *testing.T) {
	m := map[string]int{"host": 1, "port": 2}

	rec := &recorder{}
	Map(rec, m).
		ContainsKey("host").
		ContainsKeys("host", "port").
		DoesNotContainKey("timeout")
	assert.False(t, rec.failed())

	Map(rec, m).ContainsKey("timeout")
	assert.True(t, rec.failed())

	rec = &recorder{}
	Map(rec, m).ContainsKeys("host", "timeout", "retries")
	assert.True(t, rec.failed())
	assert.Contains(t, rec.last(), "timeout")

	rec = &recorder{}
	Map(rec, m).DoesNotContainKey("host")
	assert.True(t, rec.failed())
}

func TestMap_Entries(t *testing.T) {
	m := map[string]int{"host": 1, "port": 2}

	rec := &recorder{}
	Map(rec, m).
		ContainsEntry("host", 1).
		DoesNotContainEntry("host", 9).
		DoesNotContainEntry("missing", 1)
	assert.False(t, rec.failed())

	Map(rec, m).ContainsEntry("host", 9)
	assert.True(t, rec.failed())

	rec = &recorder{}
	Map(rec, m).ContainsEntry("missing", 1)
	assert.True(t, rec.failed())

	rec = &recorder{}
	Map(rec, m).DoesNotContainEntry("port", 2)
	assert.True(t, rec.failed())
}

func TestMap_ContainsValue(t *testing.T) {
	m := map[string][]string{"tags": {"a", "b"}}

	rec := &recorder{}
	Map(rec, m).ContainsValue([]string{"a", "b"})
	assert.False(t, rec.failed())

	Map(rec, m).ContainsValue([]string{"z"})
	assert.True(t, rec.failed())
}
