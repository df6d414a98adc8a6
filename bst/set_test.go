package bst_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/seipan/bst/bst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInsert(t *testing.T) {
	assert := assert.New(t)

	s := bst.NewSet[int]()
	_, ok := s.Insert(3)
	assert.True(ok)
	it, ok := s.Insert(3)
	assert.False(ok)
	v, err := it.Value()
	assert.NoError(err)
	assert.Equal(3, v)

	s.InsertValues(5, 1, 5, 1)
	assert.Equal(3, s.Len())
	assert.Equal([]int{1, 3, 5}, slices.Collect(s.All()))
	assert.Equal([]int{5, 3, 1}, slices.Collect(s.Backward()))
	assert.True(s.Contains(5))
	assert.False(s.Contains(4))
	assert.False(s.Find(4).Valid())
}

func TestSetErase(t *testing.T) {
	s := bst.SetOf(1, 2, 3, 4, 5, 6)
	assert.Equal(t, 1, s.Erase(4))
	assert.Equal(t, 0, s.Erase(4))

	next := s.EraseAt(s.Find(2))
	v, err := next.Value()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	last := s.EraseRange(s.Find(3), s.Find(6))
	v, err = last.Value()
	require.NoError(t, err)
	assert.Equal(t, 6, v)
	assert.Equal(t, []int{1, 6}, slices.Collect(s.All()))

	assert.False(t, s.EraseAt(s.End()).Valid())
	s.Clear()
	assert.True(t, s.Empty())
	assert.False(t, s.Begin().Valid())
}

func TestSetFunc(t *testing.T) {
	s := bst.NewSetFunc(func(a, b string) bool { return strings.ToLower(a) < strings.ToLower(b) })
	s.InsertValues("b", "A", "a", "B", "c")
	assert.Equal(t, []string{"A", "b", "c"}, slices.Collect(s.All()))
}

func TestSetFromRange(t *testing.T) {
	tr := bst.From(4, 1, 4, 3, 2, 3)
	s := bst.SetFromRange(func(a, b int) bool { return a < b }, tr.LowerBound(2), tr.UpperBound(3))
	assert.Equal(t, []int{2, 3}, slices.Collect(s.All()))
	assert.Equal(t, 6, tr.Len())
}

func TestSetCloneAndMove(t *testing.T) {
	a := bst.SetOf("x", "y")
	b := a.Clone()
	b.Insert("z")
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, b.Len())

	c := bst.NewSet[string]()
	c.CopyFrom(b)
	assert.Equal(t, slices.Collect(b.All()), slices.Collect(c.All()))

	c.MoveFrom(a)
	assert.True(t, a.Empty())
	assert.Equal(t, []string{"x", "y"}, slices.Collect(c.All()))

	c.Swap(b)
	assert.Equal(t, []string{"x", "y", "z"}, slices.Collect(c.All()))
	assert.Equal(t, []string{"x", "y"}, slices.Collect(b.All()))
}
