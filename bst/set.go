package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Set は重複を許さない順序付き集合で、Tree をそのまま包んだものである。
type Set[T any] struct {
	tree *Tree[T]
}

func NewSet[T constraints.Ordered]() *Set[T] {
	return NewSetFunc(ordered[T])
}

func NewSetFunc[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{tree: NewFunc(less)}
}

// SetOf は values を順に挿入した Set を返す。
func SetOf[T constraints.Ordered](values ...T) *Set[T] {
	s := NewSet[T]()
	s.InsertValues(values...)
	return s
}

// SetFromRange は [first, last) の値から less で並べる Set を作る。
func SetFromRange[T any](less func(a, b T) bool, first, last Iterator[T]) *Set[T] {
	return &Set[T]{tree: FromRange(less, first, last, true)}
}

func (s *Set[T]) Insert(v T) (Iterator[T], bool) {
	return s.tree.Insert(v, true)
}

func (s *Set[T]) InsertValues(values ...T) {
	for _, v := range values {
		s.tree.Insert(v, true)
	}
}

func (s *Set[T]) Contains(v T) bool {
	return s.tree.Has(v)
}

func (s *Set[T]) Find(v T) Iterator[T] {
	return s.tree.Find(v)
}

// Erase は v を取り除き、取り除いた数 (0 か 1) を返す。
func (s *Set[T]) Erase(v T) int {
	if _, ok := s.tree.Delete(v); ok {
		return 1
	}
	return 0
}

func (s *Set[T]) EraseAt(it Iterator[T]) Iterator[T] {
	return s.tree.Erase(it)
}

// EraseRange は [first, last) の値を取り除き、last を返す。
func (s *Set[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	it := first
	for it.Valid() && !it.Equal(last) {
		it = s.tree.Erase(it)
	}
	return it
}

func (s *Set[T]) Clear()      { s.tree.Clear() }
func (s *Set[T]) Len() int    { return s.tree.Len() }
func (s *Set[T]) Empty() bool { return s.tree.Empty() }

func (s *Set[T]) Begin() Iterator[T] { return s.tree.Begin() }
func (s *Set[T]) End() Iterator[T]   { return s.tree.End() }

func (s *Set[T]) All() iter.Seq[T]      { return s.tree.All() }
func (s *Set[T]) Backward() iter.Seq[T] { return s.tree.Backward() }

func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{tree: s.tree.Clone()}
}

func (s *Set[T]) CopyFrom(src *Set[T]) { s.tree.CopyFrom(src.tree) }
func (s *Set[T]) MoveFrom(src *Set[T]) { s.tree.MoveFrom(src.tree) }
func (s *Set[T]) Swap(o *Set[T])       { s.tree.Swap(o.tree) }
