package api

import "golang.org/x/exp/constraints"

// CompareFn total ordering over elements, like bytes.Compare: return
// negative if a sorts before b, zero if they are equivalent, positive
// if a sorts after b. Must be a strict weak ordering; behaviour is
// unspecified otherwise. Every tree takes one at construction, there
// is no implicit default.
type CompareFn[V any] func(a, b V) int

// UpdateFn update rule applied when inserting an equivalent element
// into a unique tree: old is the element already held by the node,
// elem the incoming one, the return value replaces the node's element
// in place. A nil UpdateFn means keep elem (overwrite).
type UpdateFn[V any] func(old, elem V) V

// OrderedCompare return a CompareFn for naturally ordered element
// types. Callers still pass it explicitly to constructors.
func OrderedCompare[T constraints.Ordered]() CompareFn[T] {
	return func(a, b T) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}
}
