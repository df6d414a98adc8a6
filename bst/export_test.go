package bst

// Things that need to be exported for testing, but should not be part of the public API.

// TestingPreOrder returns the values of t in pre-order, which pins down the shape.
func TestingPreOrder[T any](t *Tree[T]) []T {
	var out []T
	if t.root == nil {
		return out
	}
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.value)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return out
}

// TestingParent returns an iterator to the parent of it's node.
func TestingParent[T any](it Iterator[T]) Iterator[T] {
	return makeIter(it.n.parent)
}

func TestingChildren[T any](it Iterator[T]) (left, right Iterator[T]) {
	return makeIter(it.n.left), makeIter(it.n.right)
}

func TestingFreeList[T any](t *Tree[T]) *FreeList[T] {
	return t.freelist
}
