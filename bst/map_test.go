package bst_test

import (
	"maps"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/seipan/bst/bst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapInsert(t *testing.T) {
	assert := assert.New(t)

	m := bst.NewMap[string, int]()
	it, ok := m.Insert("b", 2)
	assert.True(ok)
	k, err := it.Key()
	assert.NoError(err)
	assert.Equal("b", k)

	it, ok = m.Insert("b", 3)
	assert.False(ok)
	v, err := it.Value()
	assert.NoError(err)
	assert.Equal(2, v)
	assert.Equal(1, m.Len())

	m.Insert("a", 1)
	m.Insert("c", 3)
	assert.Equal([]string{"a", "b", "c"}, slices.Collect(m.Keys()))
}

func TestMapOfFirstWins(t *testing.T) {
	m := bst.MapOf(
		bst.Pair[int, string]{Key: 2, Value: "two"},
		bst.Pair[int, string]{Key: 1, Value: "one"},
		bst.Pair[int, string]{Key: 2, Value: "deux"},
	)
	assert.Equal(t, 2, m.Len())
	v, ok := m.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestMapIndex(t *testing.T) {
	m := bst.NewMap[string, int]()
	*m.Index("x") += 5
	*m.Index("x") += 5
	assert.Equal(t, 10, *m.Index("x"))
	assert.Equal(t, 0, *m.Index("y"))
	assert.Equal(t, 2, m.Len())

	m.Set("x", 1)
	v, err := m.At("x")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestMapAtMissing(t *testing.T) {
	m := bst.NewMap[int, int]()
	m.Set(1, 1)
	_, err := m.At(7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bst.ErrKeyNotFound))
	assert.Contains(t, err.Error(), "key 7")
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Contains(7))
	assert.False(t, m.Find(7).Valid())
}

func TestMapErase(t *testing.T) {
	m := bst.NewMap[int, string]()
	for i := 0; i < 6; i++ {
		m.Set(i, strings.Repeat("*", i))
	}
	assert.Equal(t, 1, m.Erase(3))
	assert.Equal(t, 0, m.Erase(3))

	next := m.EraseAt(m.Find(0))
	k, err := next.Key()
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	last := m.EraseRange(m.Find(1), m.Find(5))
	k, err = last.Key()
	require.NoError(t, err)
	assert.Equal(t, 5, k)
	assert.Equal(t, []int{5}, slices.Collect(m.Keys()))

	m.EraseRange(m.Begin(), m.End())
	assert.True(t, m.Empty())
}

func TestMapIteratorRef(t *testing.T) {
	m := bst.NewMap[string, []string]()
	m.Set("k", nil)
	p, err := m.Find("k").Ref()
	require.NoError(t, err)
	*p = append(*p, "v")
	v, _ := m.Get("k")
	assert.Equal(t, []string{"v"}, v)

	_, err = m.End().Ref()
	assert.True(t, errors.Is(err, bst.ErrInvalidIterator))
	_, err = m.End().Key()
	assert.True(t, errors.Is(err, bst.ErrInvalidIterator))
}

func TestMapIteratorWalk(t *testing.T) {
	m := bst.NewMapFunc[int, int](func(a, b int) bool { return a > b })
	for i := 1; i <= 4; i++ {
		m.Set(i, i*i)
	}
	var keys []int
	for it := m.Begin(); it.Valid(); it.Next() {
		k, _ := it.Key()
		keys = append(keys, k)
	}
	assert.Equal(t, []int{4, 3, 2, 1}, keys)

	it := m.Find(1)
	it.Prev()
	v, _ := it.Value()
	assert.Equal(t, 4, v)
}

func TestMapCloneAndMove(t *testing.T) {
	a := bst.NewMap[int, int]()
	a.Set(1, 10)
	a.Set(2, 20)

	b := a.Clone()
	b.Set(1, 11)
	b.Set(3, 30)
	v, _ := a.Get(1)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, b.Len())

	c := bst.NewMap[int, int]()
	c.CopyFrom(b)
	assert.Equal(t, maps.Collect(b.All()), maps.Collect(c.All()))

	d := bst.NewMap[int, int]()
	d.MoveFrom(a)
	assert.True(t, a.Empty())
	assert.Equal(t, map[int]int{1: 10, 2: 20}, maps.Collect(d.All()))

	d.Swap(b)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 2, b.Len())

	d.Clear()
	assert.True(t, d.Empty())
}

func TestMapFromRange(t *testing.T) {
	src := bst.NewMap[int, string]()
	for i, s := range []string{"a", "b", "c", "d"} {
		src.Set(i, s)
	}
	m := bst.MapFromRange(func(a, b int) bool { return a > b }, src.Find(1), src.End())
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(m.Keys()))

	m.InsertRange(src.Begin(), src.Find(2))
	assert.Equal(t, []int{3, 2, 1, 0}, slices.Collect(m.Keys()))
}

func TestMapAllStops(t *testing.T) {
	m := bst.NewMap[int, int]()
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}
	n := 0
	for k := range m.All() {
		if k == 3 {
			break
		}
		n++
	}
	assert.Equal(t, 3, n)
}

func TestMapRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m := bst.NewMap[int, int]()
	model := map[int]int{}
	for i := 0; i < 5000; i++ {
		k := r.Intn(500)
		switch r.Intn(3) {
		case 0:
			want := 0
			if _, ok := model[k]; ok {
				want = 1
			}
			delete(model, k)
			assert.Equal(t, want, m.Erase(k))
		default:
			m.Set(k, i)
			model[k] = i
		}
	}
	assert.Equal(t, model, maps.Collect(m.All()))
	keys := slices.Collect(m.Keys())
	assert.True(t, slices.IsSorted(keys))
}

