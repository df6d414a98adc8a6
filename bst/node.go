package bst

import "sync"

type (
	// node は木の一要素を保持する。left/right は子を所有し、parent は祖先を辿るためだけの参照で、
	// parent を経由してノードを解放することはない。
	node[T any] struct {
		value  T
		left   *node[T]
		right  *node[T]
		parent *node[T]
		// red is the colour bit of a red/black tree. Nothing rebalances on it yet.
		red bool
	}

	// FreeList は使い終わったノードを再利用するためのプールである。
	// 同じ FreeList を複数の Tree で共有してよい。共有している Tree どうしは別々のゴルーチンから書き込んでも安全である。
	FreeList[T any] struct {
		mu       sync.Mutex
		freelist []*node[T]
	}
)

const (
	DefaultFreeListSize = 32
)

func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

// FreeList

// newNode pops the last pooled node, or allocates when the pool is empty.
func (f *FreeList[T]) newNode(v T) (n *node[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	index := len(f.freelist) - 1
	if index < 0 {
		return &node[T]{value: v}
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	n.value = v
	return
}

// freeNode clears n and keeps it for reuse. It reports whether n was stored.
func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	*n = node[T]{}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	return
}

// Len returns the number of pooled nodes.
func (f *FreeList[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

// node

// leftmost returns the minimum of the subtree rooted at n.
func (n *node[T]) leftmost() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the maximum of the subtree rooted at n.
func (n *node[T]) rightmost() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *node[T]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

func (n *node[T]) isRightChild() bool {
	return n.parent != nil && n.parent.right == n
}

// addLeft attaches c as n's left child. n.left must be nil.
func (n *node[T]) addLeft(c *node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

// addRight attaches c as n's right child. n.right must be nil.
func (n *node[T]) addRight(c *node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// next returns the in-order successor of n, or nil.
func (n *node[T]) next() *node[T] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil {
		if n.isLeftChild() {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// prev returns the in-order predecessor of n, or nil.
func (n *node[T]) prev() *node[T] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil {
		if n.isRightChild() {
			return n.parent
		}
		n = n.parent
	}
	return nil
}
