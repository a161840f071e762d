package api

// Cursor stable reference into one tree position, either a live node
// or past-the-end. Cursors survive rebalancing and removal of other
// nodes; removing the node itself, Clear or Destroy turn the cursor
// stale, detected as ErrorNotMember on the next access.
type Cursor[V any] struct {
	tree Tree[V]
	ref  Ref
}

// NewCursor bind ref to the tree that issued it.
func NewCursor[V any](tree Tree[V], ref Ref) Cursor[V] {
	return Cursor[V]{tree: tree, ref: ref}
}

// Ref return the underlying node reference.
func (cur Cursor[V]) Ref() Ref {
	return cur.ref
}

// Tree return the tree this cursor was issued by.
func (cur Cursor[V]) Tree() Tree[V] {
	return cur.tree
}

// Empty true if the cursor does not designate a readable element.
func (cur Cursor[V]) Empty() bool {
	return cur.ref.IsNil() || cur.ref.IsEnd()
}

// Eq cursors are equal iff they designate the same node on the same
// tree, or both are past-the-end on the same tree.
func (cur Cursor[V]) Eq(other Cursor[V]) bool {
	return cur.tree == other.tree && cur.ref == other.ref
}

// Elem read the element under the cursor. ErrorEmptyAccess on an
// empty cursor, ErrorNotMember on a stale or foreign one.
func (cur Cursor[V]) Elem() (elem V, err error) {
	if cur.Empty() {
		return elem, ErrorEmptyAccess
	}
	return cur.tree.Elem(cur.ref)
}

// Next advance the cursor one position towards End(). Advancing an
// empty cursor is ErrorEmptyAccess.
func (cur *Cursor[V]) Next() error {
	if cur.Empty() {
		return ErrorEmptyAccess
	}
	ref, err := cur.tree.Successor(cur.ref)
	if err != nil {
		return err
	}
	cur.ref = ref
	return nil
}

// Prev retreat the cursor one position towards Begin(). Retreating
// the first position is ErrorEmptyAccess; retreating End() on a
// non-empty tree lands on the last element.
func (cur *Cursor[V]) Prev() error {
	if cur.ref.IsNil() {
		return ErrorEmptyAccess
	}
	ref, err := cur.tree.Predecessor(cur.ref)
	if err != nil {
		return err
	}
	cur.ref = ref
	return nil
}
