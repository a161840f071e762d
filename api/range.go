package api

// Range half-open interval [begin, end) over a tree's in-order
// sequence. Ranges shrink from either end and never own the nodes
// they span.
type Range[V any] struct {
	tree  Tree[V]
	begin Cursor[V]
	end   Cursor[V]
}

// NewRange construct a range over tree from two refs. Both refs must
// belong to the tree and begin must not follow end, otherwise
// ErrorInvalidRange. Construction is O(log n) for the order check.
func NewRange[V any](tree Tree[V], begin, end Ref) (Range[V], error) {
	switch tree.NodeOrder(begin, end) {
	case OrderBefore, OrderSame:
		return Range[V]{
			tree:  tree,
			begin: NewCursor(tree, begin),
			end:   NewCursor(tree, end),
		}, nil
	}
	return Range[V]{}, ErrorInvalidRange
}

// Begin cursor at the first position of the range.
func (r Range[V]) Begin() Cursor[V] {
	return r.begin
}

// End cursor one past the last position of the range.
func (r Range[V]) End() Cursor[V] {
	return r.end
}

// Empty true iff begin equals end.
func (r Range[V]) Empty() bool {
	return r.begin.Eq(r.end)
}

// PopFront return the first element and shrink the range past it.
// ErrorEmptyAccess on an empty range.
func (r *Range[V]) PopFront() (elem V, err error) {
	if r.Empty() {
		return elem, ErrorEmptyAccess
	}
	if elem, err = r.begin.Elem(); err != nil {
		return elem, err
	}
	return elem, r.begin.Next()
}

// PopBack return the last element and shrink the range before it.
// ErrorEmptyAccess on an empty range.
func (r *Range[V]) PopBack() (elem V, err error) {
	if r.Empty() {
		return elem, ErrorEmptyAccess
	}
	if err = r.end.Prev(); err != nil {
		return elem, err
	}
	return r.end.Elem()
}

// Each call fn with every remaining element front to back, stopping
// early if fn returns false. The range itself is not consumed.
func (r Range[V]) Each(fn func(elem V) bool) error {
	for cur := r.begin; cur.Eq(r.end) == false; {
		elem, err := cur.Elem()
		if err != nil {
			return err
		}
		if fn(elem) == false {
			return nil
		}
		if err := cur.Next(); err != nil {
			return err
		}
	}
	return nil
}
