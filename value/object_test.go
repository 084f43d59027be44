package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPreservesInsertionOrderAndOverwrites(t *testing.T) {
	o := NewObject()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3) // overwrite, position unchanged

	assert.Equal(t, []string{"b", "a"}, o.Keys())
	assert.Equal(t, 2, o.Len())

	v, ok := o.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = o.Get("missing")
	assert.False(t, ok)
}

func TestObjectRangeStopsEarly(t *testing.T) {
	o := NewObject()
	o.Set("a", 1)
	o.Set("b", 2)
	o.Set("c", 3)

	var seen []string
	o.Range(func(k string, v any) bool {
		seen = append(seen, k)
		return k != "b"
	})

	assert.Equal(t, []string{"a", "b"}, seen)
}
