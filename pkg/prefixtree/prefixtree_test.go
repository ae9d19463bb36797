package prefixtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTree(t *testing.T) {
	tree := New()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Keys())

	_, ok := tree.Get("missing")
	assert.False(t, ok)
}

func TestSingleInsertion(t *testing.T) {
	tree := New()
	tree.Insert("bar", "val_bar")

	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 1, tree.Len())

	v, ok := tree.Get("bar")
	require.True(t, ok)
	assert.Equal(t, "val_bar", v)
}

func TestSharedPrefixes(t *testing.T) {
	tree := New()
	tree.Insert("bar", "val_bar")
	tree.Insert("foobar", "val_foobar")
	tree.Insert("foofoo", "val_foofoo")
	tree.Insert("foo", "val_foo")

	for key, expected := range map[string]string{
		"bar":    "val_bar",
		"foobar": "val_foobar",
		"foofoo": "val_foofoo",
		"foo":    "val_foo",
	} {
		v, ok := tree.Get(key)
		require.True(t, ok, "missing %q", key)
		assert.Equal(t, expected, v)
	}
	assert.Equal(t, 4, tree.Len())

	_, ok := tree.Get("fo")
	assert.False(t, ok)
	_, ok = tree.Get("foob")
	assert.False(t, ok)
}

func TestValueReplacement(t *testing.T) {
	tree := New()
	tree.Insert("foo", "old")
	tree.Insert("foo", "new")

	v, ok := tree.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, tree.Len())
}

func TestKeysCollection(t *testing.T) {
	tree := New()
	tree.Insert("bar", "val_bar")
	tree.Insert("foobar", "val_foobar")
	tree.Insert("foofoo", "val_foofoo")
	tree.Insert("foo", "val_foo")

	keys := tree.Keys()
	assert.Equal(t, []string{"bar", "foo", "foobar", "foofoo"}, keys)
}

func TestPrefixKeyAfterLongKey(t *testing.T) {
	tree := New()
	tree.Insert("foobar", "long")
	tree.Insert("foo", "short")

	v, ok := tree.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "short", v)
	v, ok = tree.Get("foobar")
	require.True(t, ok)
	assert.Equal(t, "long", v)
	assert.Equal(t, 2, tree.Len())
}

func TestDumpTo(t *testing.T) {
	tree := New()
	tree.Insert("foobar", "val_foobar")
	tree.Insert("foofoo", "val_foofoo")
	tree.Insert("bar", "val_bar")

	var sb strings.Builder
	require.NoError(t, tree.DumpTo(&sb))
	out := sb.String()
	assert.Contains(t, out, "ROOT")
	assert.Contains(t, out, `NODE -> key="foo"`)
	assert.Contains(t, out, `LEAF -> key="bar", value="val_bar"`)
	assert.Contains(t, out, `LEAF -> key="foo", value="val_foofoo"`)
}
