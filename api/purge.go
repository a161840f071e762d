package api

// PurgeFn decision function for Purge. Return remove=true to flag the
// current element for immediate removal. A non-nil err terminates the
// walk early and is handed back to the caller unchanged, after the
// flagged removal, if any, is applied.
type PurgeFn[V any] func(elem V) (remove bool, err error)

type purgestate int8

const (
	purgeAdvancing purgestate = iota
	purgeRemoving
	purgeTerminated
)

// Purge walk [begin, end) front to back presenting each element to fn,
// removing flagged elements as it goes. Removal uses the engine's
// Remove, which hands back the in-order successor, so the walk is
// never disturbed by the node it just dropped. Modelled as a state
// machine over {advancing, removing, terminated} instead of re-entrant
// callback control flow.
func Purge[V any](tree Tree[V], begin, end Ref, fn PurgeFn[V]) error {
	switch tree.NodeOrder(begin, end) {
	case OrderBefore, OrderSame:
	default:
		return ErrorInvalidRange
	}

	state, cur := purgeAdvancing, begin
	var signal error
	for state != purgeTerminated {
		if cur == end {
			break
		}
		elem, err := tree.Elem(cur)
		if err != nil {
			return err
		}
		remove, fnerr := fn(elem)

		if remove {
			state = purgeRemoving
			next, err := tree.Remove(cur)
			if err != nil {
				return err
			}
			cur = next
		}
		if fnerr != nil {
			state, signal = purgeTerminated, fnerr
			continue
		}
		if state == purgeRemoving { // already on the successor
			state = purgeAdvancing
			continue
		}
		next, err := tree.Successor(cur)
		if err != nil {
			return err
		}
		state, cur = purgeAdvancing, next
	}
	return signal
}
