package bst

import (
	"iter"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type (
	// Pair は Map に格納されるキーと値の組である。順序は Key だけで決まる。
	Pair[K, V any] struct {
		Key   K
		Value V
	}

	// Map はキーの重複を許さない順序付きの連想配列で、Pair の Tree を包んだものである。
	Map[K, V any] struct {
		tree *Tree[Pair[K, V]]
	}

	// MapIterator は Map の中の一つの Pair を指す。
	MapIterator[K, V any] struct {
		it Iterator[Pair[K, V]]
	}
)

func byKey[K, V any](less func(a, b K) bool) func(a, b Pair[K, V]) bool {
	return func(a, b Pair[K, V]) bool {
		return less(a.Key, b.Key)
	}
}

func NewMap[K constraints.Ordered, V any]() *Map[K, V] {
	return NewMapFunc[K, V](ordered[K])
}

// NewMapFunc は less でキーを並べる空の Map を返す。
func NewMapFunc[K, V any](less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{tree: NewFunc(byKey[K, V](less))}
}

// MapOf は pairs を順に挿入した Map を返す。同じキーが続いた場合は最初のものが残る。
func MapOf[K constraints.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	m.InsertPairs(pairs...)
	return m
}

// MapFromRange は [first, last) の組から less でキーを並べる Map を作る。
func MapFromRange[K, V any](less func(a, b K) bool, first, last MapIterator[K, V]) *Map[K, V] {
	m := NewMapFunc[K, V](less)
	m.InsertRange(first, last)
	return m
}

func (m *Map[K, V]) probe(k K) Pair[K, V] {
	return Pair[K, V]{Key: k}
}

// Insert は (k, v) を追加する。k がすでにあれば何もせず、その組を指す Iterator と false を返す。
func (m *Map[K, V]) Insert(k K, v V) (MapIterator[K, V], bool) {
	it, ok := m.tree.Insert(Pair[K, V]{Key: k, Value: v}, true)
	return MapIterator[K, V]{it: it}, ok
}

func (m *Map[K, V]) InsertPairs(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		m.tree.Insert(p, true)
	}
}

// InsertRange は [first, last) の組を追加する。
func (m *Map[K, V]) InsertRange(first, last MapIterator[K, V]) {
	for it := first; it.Valid() && !it.Equal(last); it.Next() {
		m.tree.Insert(it.it.n.value, true)
	}
}

// Index は k の値へのポインタを返す。k がなければゼロ値で追加してから返す。
func (m *Map[K, V]) Index(k K) *V {
	it, _ := m.tree.Insert(m.probe(k), true)
	return &it.n.value.Value
}

// Set は k の値を v にする。
func (m *Map[K, V]) Set(k K, v V) {
	*m.Index(k) = v
}

// At は k の値を返す。k がなければ ErrKeyNotFound を返す。
func (m *Map[K, V]) At(k K) (V, error) {
	n := m.tree.find(m.probe(k))
	if n == nil {
		var zero V
		return zero, errors.Wrapf(ErrKeyNotFound, "key %v", k)
	}
	return n.value.Value, nil
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	p, ok := m.tree.Get(m.probe(k))
	return p.Value, ok
}

func (m *Map[K, V]) Contains(k K) bool {
	return m.tree.Has(m.probe(k))
}

func (m *Map[K, V]) Find(k K) MapIterator[K, V] {
	return MapIterator[K, V]{it: m.tree.Find(m.probe(k))}
}

// Erase は k を取り除き、取り除いた数 (0 か 1) を返す。
func (m *Map[K, V]) Erase(k K) int {
	if _, ok := m.tree.Delete(m.probe(k)); ok {
		return 1
	}
	return 0
}

// EraseAt は it の組を取り除き、次の組を指す Iterator を返す。
func (m *Map[K, V]) EraseAt(it MapIterator[K, V]) MapIterator[K, V] {
	return MapIterator[K, V]{it: m.tree.Erase(it.it)}
}

// EraseRange は [first, last) の組を取り除き、last を返す。
func (m *Map[K, V]) EraseRange(first, last MapIterator[K, V]) MapIterator[K, V] {
	it := first
	for it.Valid() && !it.Equal(last) {
		it = m.EraseAt(it)
	}
	return it
}

func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

func (m *Map[K, V]) Empty() bool {
	return m.tree.Empty()
}

func (m *Map[K, V]) Begin() MapIterator[K, V] {
	return MapIterator[K, V]{it: m.tree.Begin()}
}

func (m *Map[K, V]) End() MapIterator[K, V] {
	return MapIterator[K, V]{}
}

// All はキーの昇順に (キー, 値) を返すイテレータである。
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Clone は Map の深いコピーを返す。
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

func (m *Map[K, V]) CopyFrom(src *Map[K, V]) {
	m.tree.CopyFrom(src.tree)
}

// MoveFrom は src の中身を受け取り、src を空にする。
func (m *Map[K, V]) MoveFrom(src *Map[K, V]) {
	m.tree.MoveFrom(src.tree)
}

func (m *Map[K, V]) Swap(o *Map[K, V]) {
	m.tree.Swap(o.tree)
}

// MapIterator

func (it *MapIterator[K, V]) Next() { it.it.Next() }

func (it *MapIterator[K, V]) Prev() { it.it.Prev() }

func (it MapIterator[K, V]) Valid() bool { return it.it.Valid() }

func (it MapIterator[K, V]) Equal(o MapIterator[K, V]) bool { return it.it.Equal(o.it) }

func (it MapIterator[K, V]) Key() (K, error) {
	p, err := it.it.Value()
	return p.Key, err
}

func (it MapIterator[K, V]) Value() (V, error) {
	p, err := it.it.Value()
	return p.Value, err
}

// Ref は値へのポインタを返す。キーは書き換えられない。
func (it MapIterator[K, V]) Ref() (*V, error) {
	p, err := it.it.Ref()
	if err != nil {
		return nil, err
	}
	return &p.Value, nil
}
