package bst

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// printFrame pairs a node with the branch it is drawn under.
type printFrame[T any] struct {
	n      *node[T]
	branch treeprint.Tree
	tag    string
}

// テスト/デバッグのために使用されます。
func (t *Tree[T]) String() string {
	if t.root == nil {
		return "<empty>\n"
	}
	return t.shape().String()
}

// Print は木の形を w に書き出す。
func (t *Tree[T]) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

func (t *Tree[T]) shape() treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprint(t.root.value))
	var stack []printFrame[T]
	push := func(n *node[T], branch treeprint.Tree) {
		// right is pushed first so that L is drawn above R.
		if n.right != nil {
			stack = append(stack, printFrame[T]{n: n.right, branch: branch, tag: "R"})
		}
		if n.left != nil {
			stack = append(stack, printFrame[T]{n: n.left, branch: branch, tag: "L"})
		}
	}
	push(t.root, tree)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		label := fmt.Sprintf("%s: %v", f.tag, f.n.value)
		if f.n.left == nil && f.n.right == nil {
			f.branch.AddNode(label)
			continue
		}
		push(f.n, f.branch.AddBranch(label))
	}
	return tree
}
