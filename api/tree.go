package api

// Tree capability interface implemented by the backing tree engine.
// Adapters depend on this interface alone, so an alternate balanced
// tree can be substituted without touching them. All methods are
// single threaded, refer package rbt for the reference implementation
// and its cost contracts.
type Tree[V any] interface {
	// ID return the name of this tree instance.
	ID() string

	// Count return number of elements held.
	Count() int64

	// Insert elem into the tree. In the unique configuration an
	// equivalent element already present is updated in place via the
	// update rule and inserted is false, with no structural change.
	// In the duplicate configuration a fresh node is always linked
	// after the last equivalent node and inserted is true.
	Insert(elem V) (ref Ref, inserted bool)

	// Find return the earliest node equivalent to elem, End() if none.
	Find(elem V) Ref

	// Remove detach the referred node, returning the node that was its
	// in-order successor at the time of removal. Only refs to the
	// removed node are invalidated.
	Remove(ref Ref) (Ref, error)

	// Begin first node in order, End() when the tree is empty.
	Begin() Ref

	// End past-the-end position of this tree generation.
	End() Ref

	// Successor in-order neighbor towards End().
	Successor(ref Ref) (Ref, error)

	// Predecessor in-order neighbor towards Begin(). Predecessor of
	// End() on a non-empty tree is the last node.
	Predecessor(ref Ref) (Ref, error)

	// Elem return a copy of the element held by ref's node.
	Elem(ref Ref) (V, error)

	// NodeOrder relative in-order position of two refs, OrderInvalid
	// unless both belong to this tree.
	NodeOrder(a, b Ref) Ordering

	// Belongs true if ref was issued by this tree generation and its
	// node is still live.
	Belongs(ref Ref) bool

	// CountEqual number of elements equivalent to elem.
	CountEqual(elem V) int64

	// RemoveEqual remove every element equivalent to elem, returning
	// how many were removed.
	RemoveEqual(elem V) int64

	// Clear discard all nodes and re-issue the owner tag; every
	// outstanding ref stops belonging. The tree remains usable.
	Clear()

	// Clone produce an independently owned copy with the same
	// elements in the same order, sharing nothing with the source.
	Clone(name string) (Tree[V], error)

	// Destroy release the tree, no further operations are allowed.
	Destroy() error

	// Validate walk the full tree checking its invariants, panic on
	// violation.
	Validate()

	// Stats return per-instance counters and histograms.
	Stats() map[string]interface{}

	// Log stats via the configured logger.
	Log()
}
