package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type (
	// Tree は平衡化を行わない二分探索木である。
	// 各ノードの左部分木の値はすべてそのノードより小さく、右部分木の値はすべてそのノード以上である。
	//
	// Write 操作も Read 操作も複数のゴルーチンから同時に呼び出してはいけない。呼び出し側で直列化すること。
	Tree[T any] struct {
		length   int
		root     *node[T]
		less     func(a, b T) bool
		freelist *FreeList[T]
	}

	// ItemIterator は Ascend*/Descend* の呼び出し元が木の一部を順番に処理するための関数である。
	// false を返すと反復は止まり、関連する Ascend*/Descend* 関数はすぐに返る。
	ItemIterator[T any] func(v T) bool

	// cloneFrame は複製元のノードと、その複製をぶら下げる新しい親の組である。
	cloneFrame[T any] struct {
		src    *node[T]
		parent *node[T]
		left   bool
	}
)

func ordered[T constraints.Ordered](a, b T) bool {
	return a < b
}

// New は T の自然な順序 (<) で並ぶ空の木を返す。
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(ordered[T])
}

// NewFunc は less で並ぶ空の木を返す。
func NewFunc[T any](less func(a, b T) bool) *Tree[T] {
	return NewWithFreeList(less, NewFreeList[T](DefaultFreeListSize))
}

// 与えられたノードフリーリストを使用する新しい木を作成します。
func NewWithFreeList[T any](less func(a, b T) bool, f *FreeList[T]) *Tree[T] {
	if less == nil {
		panic("bst: nil less func")
	}
	return &Tree[T]{
		less:     less,
		freelist: f,
	}
}

// From は values をリストの順に (重複を許して) 挿入した木を返す。
func From[T constraints.Ordered](values ...T) *Tree[T] {
	return FromFunc(ordered[T], values...)
}

func FromFunc[T any](less func(a, b T) bool, values ...T) *Tree[T] {
	t := NewFunc(less)
	for _, v := range values {
		t.Insert(v, false)
	}
	return t
}

// FromRange は [first, last) の値を順に挿入した木を返す。
// last に到達する前に end になった場合はそこで止まる。
func FromRange[T any](less func(a, b T) bool, first, last Iterator[T], keepUnique bool) *Tree[T] {
	t := NewFunc(less)
	for it := first; it.Valid() && !it.Equal(last); it.Next() {
		t.Insert(it.n.value, keepUnique)
	}
	return t
}

func (t *Tree[T]) newNode(v T) *node[T] {
	if t.freelist == nil {
		return &node[T]{value: v}
	}
	return t.freelist.newNode(v)
}

func (t *Tree[T]) freeNode(n *node[T]) {
	if t.freelist == nil {
		*n = node[T]{}
		return
	}
	t.freelist.freeNode(n)
}

// Assign は木を空にしてから values を順に挿入する。
func (t *Tree[T]) Assign(values ...T) {
	t.Clear()
	for _, v := range values {
		t.Insert(v, false)
	}
}

// Clone は木の深いコピーを返す。形は元の木と全く同じになる。
// 偏った木でもスタックを使い切らないように、(複製元, 新しい親) の組を積んだ明示的なスタックで先行順に複製する。
func (t *Tree[T]) Clone() *Tree[T] {
	out := NewWithFreeList(t.less, NewFreeList[T](DefaultFreeListSize))
	out.root = t.cloneInto(out)
	out.length = t.length
	return out
}

func (t *Tree[T]) cloneInto(dst *Tree[T]) *node[T] {
	if t.root == nil {
		return nil
	}
	var root *node[T]
	stack := []cloneFrame[T]{{src: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := dst.newNode(f.src.value)
		c.red = f.src.red
		switch {
		case f.parent == nil:
			root = c
		case f.left:
			f.parent.addLeft(c)
		default:
			f.parent.addRight(c)
		}
		if f.src.right != nil {
			stack = append(stack, cloneFrame[T]{src: f.src.right, parent: c})
		}
		if f.src.left != nil {
			stack = append(stack, cloneFrame[T]{src: f.src.left, parent: c, left: true})
		}
	}
	return root
}

// CopyFrom は src の深いコピーで木の中身を置き換える。
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.less = src.less
	t.root = src.cloneInto(t)
	t.length = src.length
}

// MoveFrom は src の中身を O(1) で受け取り、src を空にする。
// 受け取る側の古いノードはフリーリストに戻さず GC に任せる。
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.root, t.length, t.less = src.root, src.length, src.less
	src.root, src.length = nil, 0
}

// Move は木の中身を持つ新しい木を返し、t を空にする。
func (t *Tree[T]) Move() *Tree[T] {
	out := &Tree[T]{
		length:   t.length,
		root:     t.root,
		less:     t.less,
		freelist: t.freelist,
	}
	t.root, t.length = nil, 0
	return out
}

// Swap は二つの木の中身を O(1) で交換する。
func (t *Tree[T]) Swap(o *Tree[T]) {
	t.root, o.root = o.root, t.root
	t.length, o.length = o.length, t.length
	t.less, o.less = o.less, t.less
	t.freelist, o.freelist = o.freelist, t.freelist
}

// Insert は v を木に追加する。
// keepUnique が true で、v と等しい (どちらも小さくない) 値がすでにある場合は挿入せず、その値を指す Iterator と false を返す。
// 平衡化しないので、整列済みの順に挿入すると O(n) になる。
func (t *Tree[T]) Insert(v T, keepUnique bool) (Iterator[T], bool) {
	if t.root == nil {
		t.root = t.newNode(v)
		t.length++
		return makeIter(t.root), true
	}
	cur := t.root
	for {
		if t.less(v, cur.value) {
			if cur.left == nil {
				n := t.newNode(v)
				n.red = true
				cur.addLeft(n)
				t.length++
				return makeIter(n), true
			}
			cur = cur.left
			continue
		}
		if keepUnique && !t.less(cur.value, v) {
			return makeIter(cur), false
		}
		if cur.right == nil {
			n := t.newNode(v)
			n.red = true
			cur.addRight(n)
			t.length++
			return makeIter(n), true
		}
		cur = cur.right
	}
}

// ReplaceOrInsert は v を木に追加する。 v と等しい値がすでにある場合は v で置き換え、古い値と true を返す。
func (t *Tree[T]) ReplaceOrInsert(v T) (old T, replaced bool) {
	it, inserted := t.Insert(v, true)
	if inserted {
		return old, false
	}
	old = it.n.value
	it.n.value = v
	return old, true
}

func (t *Tree[T]) find(v T) *node[T] {
	cur := t.root
	for cur != nil {
		switch {
		case t.less(v, cur.value):
			cur = cur.left
		case t.less(cur.value, v):
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// Find は v と等しい値を指す Iterator を返す。見つからなければ End を返す。
func (t *Tree[T]) Find(v T) Iterator[T] {
	return makeIter(t.find(v))
}

// Get は木の中から v と等しい値を探して返す。
func (t *Tree[T]) Get(v T) (T, bool) {
	if n := t.find(v); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// 与えられた値が木にある場合、Has は true を返します。
func (t *Tree[T]) Has(v T) bool {
	return t.find(v) != nil
}

func (t *Tree[T]) lowerBound(v T) *node[T] {
	var out *node[T]
	for cur := t.root; cur != nil; {
		if t.less(cur.value, v) {
			cur = cur.right
		} else {
			out = cur
			cur = cur.left
		}
	}
	return out
}

func (t *Tree[T]) upperBound(v T) *node[T] {
	var out *node[T]
	for cur := t.root; cur != nil; {
		if t.less(v, cur.value) {
			out = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return out
}

// lastLessOrEqual returns the greatest node not greater than v.
func (t *Tree[T]) lastLessOrEqual(v T) *node[T] {
	if n := t.upperBound(v); n != nil {
		return n.prev()
	}
	if t.root == nil {
		return nil
	}
	return t.root.rightmost()
}

// LowerBound は v 以上の最初の値を指す Iterator を返す。
func (t *Tree[T]) LowerBound(v T) Iterator[T] {
	return makeIter(t.lowerBound(v))
}

// UpperBound は v より大きい最初の値を指す Iterator を返す。
func (t *Tree[T]) UpperBound(v T) Iterator[T] {
	return makeIter(t.upperBound(v))
}

// replaceChild hangs c where n hangs under parent, or makes it the root.
func (t *Tree[T]) replaceChild(parent, n, c *node[T]) {
	switch {
	case parent == nil:
		t.root = c
	case parent.left == n:
		parent.left = c
	default:
		parent.right = c
	}
	if c != nil {
		c.parent = parent
	}
}

// Erase は it が指すノードを取り除き、取り除く前の時点での次の値を指す Iterator を返す。
// it が End の場合は何もせず End を返す。 it と、取り除いたノードを指す他の Iterator は無効になる。
func (t *Tree[T]) Erase(it Iterator[T]) Iterator[T] {
	n := it.n
	if n == nil {
		return it
	}
	next := it
	next.Next()

	parent := n.parent
	switch {
	case n.left == nil && n.right == nil:
		t.replaceChild(parent, n, nil)
	case n.left == nil:
		t.replaceChild(parent, n, n.right)
	case n.right == nil:
		t.replaceChild(parent, n, n.left)
	default:
		// 右部分木の最左ノード s (n の次の値) を n の位置に付け替える。
		s := n.right.leftmost()
		if s.parent != n {
			s.parent.addLeft(s.right)
			s.addRight(n.right)
		}
		s.addLeft(n.left)
		s.red = n.red
		t.replaceChild(parent, n, s)
	}
	t.length--
	t.freeNode(n)
	return next
}

// Delete は v と等しい値を一つ取り除いて返す。
func (t *Tree[T]) Delete(v T) (T, bool) {
	return t.deleteNode(t.find(v))
}

// DeleteMinは、木の中の最小の値を取り除いて返す。
func (t *Tree[T]) DeleteMin() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.deleteNode(t.root.leftmost())
}

// DeleteMaxは、木の中の最大の値を取り除いて返す。
func (t *Tree[T]) DeleteMax() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.deleteNode(t.root.rightmost())
}

func (t *Tree[T]) deleteNode(n *node[T]) (out T, ok bool) {
	if n == nil {
		return out, false
	}
	out = n.value
	t.Erase(makeIter(n))
	return out, true
}

// Clear は木からすべての値を取り除き、ノードをフリーリストに戻す。
// 子を先に解放する後行順で、再帰もスタックも使わずに親リンクを辿って処理する。
func (t *Tree[T]) Clear() {
	n := t.root
	for n != nil {
		switch {
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			p := n.parent
			if p != nil {
				if p.left == n {
					p.left = nil
				} else {
					p.right = nil
				}
			}
			t.freeNode(n)
			n = p
		}
	}
	t.root, t.length = nil, 0
}

// Begin は最小の値を指す Iterator を返す。木が空なら End を返す。
func (t *Tree[T]) Begin() Iterator[T] {
	if t.root == nil {
		return Iterator[T]{}
	}
	return makeIter(t.root.leftmost())
}

// End は最後の値の一つ先を表す Iterator を返す。
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Last は最大の値を指す Iterator を返す。木が空なら End を返す。
func (t *Tree[T]) Last() Iterator[T] {
	if t.root == nil {
		return Iterator[T]{}
	}
	return makeIter(t.root.rightmost())
}

// Minは，木の中で最も小さい値を返す。
func (t *Tree[T]) Min() (T, bool) {
	return t.Begin().n.valueOK()
}

// Maxは，木の中で最大の値を返す。
func (t *Tree[T]) Max() (T, bool) {
	return t.Last().n.valueOK()
}

func (n *node[T]) valueOK() (v T, ok bool) {
	if n == nil {
		return v, false
	}
	return n.value, true
}

// Lenは、現在木にある値の数を返します。
func (t *Tree[T]) Len() int {
	return t.length
}

func (t *Tree[T]) Empty() bool {
	return t.length == 0
}

// Height は木の高さを返す。空の木は 0 である。
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 0
	level := []*node[T]{t.root}
	for len(level) > 0 {
		h++
		var next []*node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return h
}

// All は木の値を昇順に返すイテレータである。
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Ascend(ItemIterator[T](yield))
	}
}

// Backward は木の値を降順に返すイテレータである。
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Descend(ItemIterator[T](yield))
	}
}

// ascendFrom calls iterator from n upwards while in range. stop may be nil.
func (t *Tree[T]) ascendFrom(n *node[T], stop func(T) bool, iterator ItemIterator[T]) {
	for ; n != nil; n = n.next() {
		if stop != nil && stop(n.value) {
			return
		}
		if !iterator(n.value) {
			return
		}
	}
}

func (t *Tree[T]) descendFrom(n *node[T], stop func(T) bool, iterator ItemIterator[T]) {
	for ; n != nil; n = n.prev() {
		if stop != nil && stop(n.value) {
			return
		}
		if !iterator(n.value) {
			return
		}
	}
}

// iteratorがfalseを返すまで、[first, last]の範囲内にある木のすべての値に対して、iteratorを呼び出します。
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	t.ascendFrom(t.Begin().n, nil, iterator)
}

// AscendRange は、[greaterOrEqual, lessThan) の範囲内のすべての値について、iterator が false を返すまでイテレータを呼び出します。
func (t *Tree[T]) AscendRange(greaterOrEqual, lessThan T, iterator ItemIterator[T]) {
	t.ascendFrom(t.lowerBound(greaterOrEqual), func(v T) bool {
		return !t.less(v, lessThan)
	}, iterator)
}

// AscendLessThan は、[first, pivot) の範囲内のすべての値に対して、iterator が false を返すまでイテレータを呼び出します。
func (t *Tree[T]) AscendLessThan(pivot T, iterator ItemIterator[T]) {
	t.ascendFrom(t.Begin().n, func(v T) bool {
		return !t.less(v, pivot)
	}, iterator)
}

// AscendGreaterOrEqual は、[pivot, last] の範囲内のすべての値について、iterator が false を返すまでイテレータを呼び出します。
func (t *Tree[T]) AscendGreaterOrEqual(pivot T, iterator ItemIterator[T]) {
	t.ascendFrom(t.lowerBound(pivot), nil, iterator)
}

// Descend calls the iterator for every value in the tree within the range [last, first], until iterator returns false.
func (t *Tree[T]) Descend(iterator ItemIterator[T]) {
	t.descendFrom(t.Last().n, nil, iterator)
}

// DescendRangeは、[lessOrEqual, greaterThan)の範囲内で、iteratorがfalseを返すまでイテレータを降順に呼び出します。
func (t *Tree[T]) DescendRange(lessOrEqual, greaterThan T, iterator ItemIterator[T]) {
	t.descendFrom(t.lastLessOrEqual(lessOrEqual), func(v T) bool {
		return !t.less(greaterThan, v)
	}, iterator)
}

// DescendLessOrEqualは、[pivot, first]の範囲内にあるすべての値について、iteratorがfalseを返すまで、iteratorを呼び出します。
func (t *Tree[T]) DescendLessOrEqual(pivot T, iterator ItemIterator[T]) {
	t.descendFrom(t.lastLessOrEqual(pivot), nil, iterator)
}

// DescendGreaterThanは、[last, pivot)の範囲内で、iteratorがfalseを返すまでイテレータを呼び出します。
func (t *Tree[T]) DescendGreaterThan(pivot T, iterator ItemIterator[T]) {
	t.descendFrom(t.Last().n, func(v T) bool {
		return !t.less(pivot, v)
	}, iterator)
}
