package bst

import "github.com/cockroachdb/errors"

// validateFrame carries the bounds a subtree must respect: every value v in it
// satisfies !less(v, lo.value) and less(v, hi.value). nil means unbounded.
type validateFrame[T any] struct {
	n, lo, hi *node[T]
}

// Validate は木の構造を検査する。順序、親リンク、要素数のいずれかが壊れていればエラーを返す。
// 比較関数が格納済みの順序と矛盾している場合などに使う。通常の操作では検査しない。
func (t *Tree[T]) Validate() error {
	if t.root == nil {
		if t.length != 0 {
			return errors.AssertionFailedf("empty tree reports %d elements", t.length)
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.AssertionFailedf("root has a parent")
	}
	count := 0
	stack := []validateFrame[T]{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.n
		count++
		if f.lo != nil && t.less(n.value, f.lo.value) {
			return errors.AssertionFailedf("%v is in the right subtree of %v", n.value, f.lo.value)
		}
		if f.hi != nil && !t.less(n.value, f.hi.value) {
			return errors.AssertionFailedf("%v is in the left subtree of %v", n.value, f.hi.value)
		}
		if n.left != nil {
			if n.left.parent != n {
				return errors.AssertionFailedf("left child of %v has a wrong parent", n.value)
			}
			stack = append(stack, validateFrame[T]{n: n.left, lo: f.lo, hi: n})
		}
		if n.right != nil {
			if n.right.parent != n {
				return errors.AssertionFailedf("right child of %v has a wrong parent", n.value)
			}
			stack = append(stack, validateFrame[T]{n: n.right, lo: n, hi: f.hi})
		}
	}
	if count != t.length {
		return errors.AssertionFailedf("tree reports %d elements but holds %d", t.length, count)
	}
	return nil
}
