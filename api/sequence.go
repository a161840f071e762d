package api

// Sequence finite external stream of elements, used by the bulk
// operations. Next return the next element and true, or false once
// the stream is exhausted.
type Sequence[V any] interface {
	Next() (V, bool)
}

// SliceSequence adapt a slice into a Sequence.
type SliceSequence[V any] struct {
	elems []V
	index int
}

// NewSliceSequence stream elems in slice order.
func NewSliceSequence[V any](elems []V) *SliceSequence[V] {
	return &SliceSequence[V]{elems: elems}
}

// Next implement Sequence interface.
func (seq *SliceSequence[V]) Next() (elem V, ok bool) {
	if seq.index >= len(seq.elems) {
		return elem, false
	}
	elem = seq.elems[seq.index]
	seq.index++
	return elem, true
}

// CursorSequence stream a tree's [begin, end) slice as a Sequence.
// Carries its source tree so that AddAll can reject feeding a tree
// back into itself.
type CursorSequence[V any] struct {
	tree Tree[V]
	cur  Ref
	end  Ref
}

// NewCursorSequence stream tree's elements between begin and end.
func NewCursorSequence[V any](tree Tree[V], begin, end Ref) *CursorSequence[V] {
	return &CursorSequence[V]{tree: tree, cur: begin, end: end}
}

// Source return the tree this sequence reads from.
func (seq *CursorSequence[V]) Source() Tree[V] {
	return seq.tree
}

// Next implement Sequence interface. An exhausted or stale sequence
// reports false.
func (seq *CursorSequence[V]) Next() (elem V, ok bool) {
	if seq.cur == seq.end || seq.cur.IsEnd() {
		return elem, false
	}
	elem, err := seq.tree.Elem(seq.cur)
	if err != nil {
		return elem, false
	}
	if seq.cur, err = seq.tree.Successor(seq.cur); err != nil {
		seq.cur = seq.end
	}
	return elem, true
}
