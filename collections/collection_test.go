package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar-utils/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

func fruit() *collections.Keyed[int] {
	return collections.NewKeyed[int]().Set("pear", 3).Set("apple", 1).Set("fig", 2)
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection
// ─────────────────────────────────────────────────────────────────────────────

func TestFromCopies(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z"
	require.Equal(t, []string{"a", "b", "c"}, c.All())
}

func TestCollectionAccessors(t *testing.T) {
	c := ints(10, 20, 30)
	require.Equal(t, 3, c.Len())
	require.Equal(t, 3, c.Count())
	require.False(t, c.IsEmpty())
	require.True(t, collections.Empty[int]().IsEmpty())

	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, 20, v)
	_, ok = c.Get(3)
	require.False(t, ok)
	_, ok = c.Get(-1)
	require.False(t, ok)

	require.Equal(t, "[10,20,30]", c.String())
}

func TestFirstLast(t *testing.T) {
	c := ints(1, 2, 3, 4)

	v, ok := c.First()
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = c.First(func(n int) bool { return n > 2 })
	require.True(t, ok)
	require.Equal(t, 3, v)

	v, ok = c.Last(func(n int) bool { return n < 3 })
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = collections.Empty[int]().Last()
	require.False(t, ok)
	_, ok = c.First(func(n int) bool { return n > 10 })
	require.False(t, ok)
}

func TestTakeSkip(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	assert.Equal(t, []int{1, 2}, c.Take(2).All())
	assert.Equal(t, []int{4, 5}, c.Take(-2).All())
	assert.Empty(t, c.Take(0).All())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Take(99).All())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Take(-99).All())

	assert.Equal(t, []int{3, 4, 5}, c.Skip(2).All())
	assert.Equal(t, []int{1, 2, 3}, c.Skip(-2).All())
	assert.Empty(t, c.Skip(99).All())
}

func TestFilterReject(t *testing.T) {
	even := func(n, _ int) bool { return n%2 == 0 }
	require.Equal(t, []int{2, 4}, ints(1, 2, 3, 4).Filter(even).All())
	require.Equal(t, []int{1, 3}, ints(1, 2, 3, 4).Reject(even).All())
}

func TestPushDoesNotAlias(t *testing.T) {
	c := ints(1, 2)
	d := c.Push(3)
	require.Equal(t, []int{1, 2}, c.All())
	require.Equal(t, []int{1, 2, 3}, d.All())
}

func TestShuffleKeepsElements(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6, 7, 8)
	s := c.Shuffle()
	require.ElementsMatch(t, c.All(), s.All())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, c.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Each
// ─────────────────────────────────────────────────────────────────────────────

func TestEachVisitsInIndexOrder(t *testing.T) {
	c := ints(5, 6, 7)
	var values, keys []int
	collections.Each(c, func(v, i int, src collections.Enumerable[int, int]) {
		require.Same(t, c, src)
		values = append(values, v)
		keys = append(keys, i)
	})
	require.Equal(t, []int{5, 6, 7}, values)
	require.Equal(t, []int{0, 1, 2}, keys)
}

func TestEachVisitsKeyedInInsertionOrder(t *testing.T) {
	var keys []string
	visits := 0
	collections.Each(fruit(), func(_ int, k string, _ collections.Enumerable[string, int]) {
		keys = append(keys, k)
		visits++
	})
	require.Equal(t, []string{"pear", "apple", "fig"}, keys)
	require.Equal(t, fruit().Len(), visits)
}

func TestEachOnEmpty(t *testing.T) {
	collections.Each(collections.Empty[int](), func(int, int, collections.Enumerable[int, int]) {
		t.Fatal("visitor called on empty collection")
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed
// ─────────────────────────────────────────────────────────────────────────────

func TestKeyedSetKeepsPosition(t *testing.T) {
	k := fruit().Set("pear", 30)
	require.Equal(t, []string{"pear", "apple", "fig"}, k.Keys())
	v, ok := k.Get("pear")
	require.True(t, ok)
	require.Equal(t, 30, v)
}

func TestKeyedDelete(t *testing.T) {
	k := fruit()
	k.Delete("apple")
	k.Delete("missing")
	require.Equal(t, []string{"pear", "fig"}, k.Keys())
	require.False(t, k.Has("apple"))
	require.Equal(t, []int{3, 2}, k.Values().All())
}

func TestKeyedFrom(t *testing.T) {
	k := collections.KeyedFrom(collections.P("b", 2), collections.P("a", 1))
	require.Equal(t, []string{"b", "a"}, k.Keys())
}

func TestExtend(t *testing.T) {
	dst := collections.NewKeyed[int]().Set("apple", 100)
	out := collections.Extend(dst, fruit(), collections.NewKeyed[int]().Set("kiwi", 4))
	require.Same(t, dst, out)
	require.Equal(t, []string{"apple", "pear", "fig", "kiwi"}, dst.Keys())
	v, _ := dst.Get("apple")
	require.Equal(t, 1, v)
}

func TestDefaults(t *testing.T) {
	dst := collections.NewKeyed[int]().Set("apple", 100)
	collections.Defaults(dst, fruit())
	v, _ := dst.Get("apple")
	require.Equal(t, 100, v)
	require.Equal(t, []string{"apple", "pear", "fig"}, dst.Keys())
}

// ─────────────────────────────────────────────────────────────────────────────
// Of
// ─────────────────────────────────────────────────────────────────────────────

func TestOfSlice(t *testing.T) {
	c, err := collections.Of([]string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	var got []any
	collections.Each(c, func(v, k any, _ collections.Enumerable[any, any]) {
		got = append(got, k, v)
	})
	require.Equal(t, []any{0, "x", 1, "y"}, got)
}

func TestOfMapSortsKeys(t *testing.T) {
	c, err := collections.Of(map[string]int{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)

	var keys []any
	collections.Each(c, func(_, k any, _ collections.Enumerable[any, any]) {
		keys = append(keys, k)
	})
	require.Equal(t, []any{"a", "b", "c"}, keys)
}

func TestOfCollection(t *testing.T) {
	c, err := collections.Of(collections.New[any](1, "two"))
	require.NoError(t, err)
	require.True(t, collections.Contains(c, any("two")))
}

func TestOfNilCollectionsAreEmpty(t *testing.T) {
	c, err := collections.Of((*collections.Collection[any])(nil))
	require.NoError(t, err)
	require.Zero(t, c.Len())

	k, err := collections.Of((*collections.Keyed[any])(nil))
	require.NoError(t, err)
	require.Zero(t, k.Len())
}

func TestOfInvalidInput(t *testing.T) {
	for _, v := range []any{nil, 42, "text", map[int]string{1: "a"}, struct{}{}} {
		_, err := collections.Of(v)
		require.ErrorIs(t, err, collections.ErrInvalidInput, "input %#v", v)
	}
}
