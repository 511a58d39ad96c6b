package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagMap_SetGet(t *testing.T) {
	tm := NewTagMap()

	tm.Set(TagMD5, "abc")
	tm.Set(TagURI, "file:///ref.fa")

	v, ok := tm.Get(TagMD5)
	require.True(t, ok)
	assert.Equal(t, "abc", v)

	_, ok = tm.Get(TagSpecies)
	assert.False(t, ok)

	assert.Equal(t, 2, tm.Len())
}

func TestTagMap_InsertionOrder(t *testing.T) {
	tm := NewTagMap()

	tm.Set("c", "3")
	tm.Set("a", "1")
	tm.Set("b", "2")

	assert.Equal(t, []string{"c", "a", "b"}, tm.Keys())

	// Overwriting keeps the original position.
	tm.Set("a", "updated")
	assert.Equal(t, []string{"c", "a", "b"}, tm.Keys())

	v, _ := tm.Get("a")
	assert.Equal(t, "updated", v)
}

func TestTagMap_All(t *testing.T) {
	tm := NewTagMap()
	tm.Set("a", "1")
	tm.Set("b", "2")

	var keys, values []string
	for k, v := range tm.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []string{"1", "2"}, values)
}

func TestTagMap_Equal(t *testing.T) {
	a := NewTagMap()
	a.Set("x", "1")
	a.Set("y", "2")

	// Same pairs, different insertion order: still equal.
	b := NewTagMap()
	b.Set("y", "2")
	b.Set("x", "1")
	assert.True(t, a.Equal(b))

	b.Set("z", "3")
	assert.False(t, a.Equal(b))

	empty := NewTagMap()
	assert.True(t, empty.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestTagMap_Clone(t *testing.T) {
	a := NewTagMap()
	a.Set("x", "1")

	b := a.Clone()
	b.Set("y", "2")

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"x"}, a.Keys())
}
