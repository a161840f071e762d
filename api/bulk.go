package api

// AddAll insert every element from seq into tree, one engine insert
// per element, O(m log n) for m elements. A CursorSequence reading
// from tree itself is rejected with ErrorSelfFeed before any element
// is inserted. Return how many elements were actually added, updates
// on a unique tree do not count.
func AddAll[V any](tree Tree[V], seq Sequence[V]) (int64, error) {
	if cseq, ok := seq.(*CursorSequence[V]); ok && cseq.Source() == tree {
		return 0, ErrorSelfFeed
	}
	added := int64(0)
	for {
		elem, ok := seq.Next()
		if ok == false {
			break
		}
		if _, inserted := tree.Insert(elem); inserted {
			added++
		}
	}
	return added, nil
}

// RetainOnly keep only elements equivalent to some probe from seq,
// removing everything else. Each probe marks its equal run through
// Find and successor walks, O(m log n) for m probes, then one sweep
// removes the unmarked nodes. Return how many elements were removed.
func RetainOnly[V any](tree Tree[V], seq Sequence[V]) (int64, error) {
	keep := make(map[Ref]struct{})
	for {
		probe, ok := seq.Next()
		if ok == false {
			break
		}
		ref := tree.Find(probe)
		if ref.IsEnd() {
			continue
		}
		run := tree.CountEqual(probe)
		for i := int64(0); i < run; i++ {
			keep[ref] = struct{}{}
			next, err := tree.Successor(ref)
			if err != nil {
				return 0, err
			}
			ref = next
		}
	}

	removed := int64(0)
	for cur := tree.Begin(); cur.IsEnd() == false; {
		if _, ok := keep[cur]; ok {
			next, err := tree.Successor(cur)
			if err != nil {
				return removed, err
			}
			cur = next
			continue
		}
		next, err := tree.Remove(cur)
		if err != nil {
			return removed, err
		}
		removed, cur = removed+1, next
	}
	return removed, nil
}
