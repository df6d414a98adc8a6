package bst

// Iterator は木の一つのノードを指すカーソルである。ノードが nil のときは end を表す。
// 補助スタックを持たず、親子リンクだけで前後に移動する。
//
// 指しているノードが Erase されると Iterator は無効になる。別のノードの挿入・削除では無効にならない。
type Iterator[T any] struct {
	n *node[T]
}

func makeIter[T any](n *node[T]) Iterator[T] {
	return Iterator[T]{n: n}
}

// Valid は Iterator が end でない場合に true を返す。
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Equal は二つの Iterator が同じノードを指しているかどうかを返す。
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.n == o.n
}

// Value returns a copy of the value the iterator points at.
func (it Iterator[T]) Value() (T, error) {
	if it.n == nil {
		var zero T
		return zero, ErrInvalidIterator
	}
	return it.n.value, nil
}

// Ref は格納されている値へのポインタを返す。順序に関わる部分を書き換えてはいけない。
func (it Iterator[T]) Ref() (*T, error) {
	if it.n == nil {
		return nil, ErrInvalidIterator
	}
	return &it.n.value, nil
}

// Next は Iterator を次に大きい要素へ進める。右の子があればその部分木の最左ノードへ、
// なければ左の子として辿り着く祖先まで親を遡る。そのような祖先がなければ end になる。
// end に対しては何もしない。
func (it *Iterator[T]) Next() {
	if it.n == nil {
		return
	}
	it.n = it.n.next()
}

// Prev は Next の鏡像である。
func (it *Iterator[T]) Prev() {
	if it.n == nil {
		return
	}
	it.n = it.n.prev()
}
