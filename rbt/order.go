package rbt

import "fmt"

import "github.com/burner/dcollections/api"

// Find implement api.Tree{} interface. Return the earliest node equal
// to elem, End() if absent. On duplicate trees the leftward equal
// match is always preferred, so the ref designates the first inserted
// of the equal run.
func (tree *Tree[V]) Find(elem V) api.Ref {
	if tree.dead {
		panic(fmt.Errorf("%v find(): destroyed tree, call the programmer", tree.logprefix))
	}
	tree.n_finds++
	found := nilslot
	for i := tree.root; i != nilslot; {
		nd := tree.node(i)
		if c := tree.cmp(nd.elem, elem); c < 0 {
			i = nd.right
		} else {
			if c == 0 {
				found = i
			}
			i = nd.left
		}
	}
	return tree.mkref(found)
}

// NodeOrder implement api.Tree{} interface. Relative in-order
// position of two refs in O(log n), without comparing elements, so
// duplicate-valued nodes rank correctly. OrderInvalid unless both
// refs belong to this tree.
func (tree *Tree[V]) NodeOrder(a, b api.Ref) api.Ordering {
	if tree.Belongs(a) == false || tree.Belongs(b) == false {
		return api.OrderInvalid
	}
	tree.n_orderchecks++
	if a == b {
		return api.OrderSame
	} else if a.IsEnd() { // end sorts after every live node
		return api.OrderAfter
	} else if b.IsEnd() {
		return api.OrderBefore
	}

	// walk both parent chains to the root, then find where the two
	// paths diverge under their last common ancestor.
	patha := tree.rootpath(a.Slot())
	pathb := tree.rootpath(b.Slot())
	i := 0
	for i < len(patha) && i < len(pathb) && patha[i] == pathb[i] {
		i++
	}
	switch {
	case i == len(patha):
		// a is an ancestor of b; b hanging off a's left side
		// precedes a.
		if pathb[i] == tree.leftof(patha[i-1]) {
			return api.OrderAfter
		}
		return api.OrderBefore
	case i == len(pathb):
		if patha[i] == tree.leftof(pathb[i-1]) {
			return api.OrderBefore
		}
		return api.OrderAfter
	}
	// the path through the common ancestor's left child precedes.
	if patha[i] == tree.leftof(patha[i-1]) {
		return api.OrderBefore
	}
	return api.OrderAfter
}

// rootpath ancestor chain of slot, root first.
func (tree *Tree[V]) rootpath(slot int32) []int32 {
	path := make([]int32, 0, 32)
	for ; slot != nilslot; slot = tree.parentof(slot) {
		path = append(path, slot)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// CountEqual implement api.Tree{} interface. Find then walk successor
// links while elements compare equal, O(log n + m).
func (tree *Tree[V]) CountEqual(elem V) int64 {
	ref := tree.Find(elem)
	if ref.IsEnd() {
		return 0
	}
	count := int64(0)
	for slot := ref.Slot(); slot != nilslot; slot = tree.successor(slot) {
		if tree.cmp(tree.node(slot).elem, elem) != 0 {
			break
		}
		count++
	}
	return count
}

// RemoveEqual implement api.Tree{} interface. Remove every element
// equal to elem, O(m log n) for m equal elements, returning m.
func (tree *Tree[V]) RemoveEqual(elem V) int64 {
	ref := tree.Find(elem)
	if ref.IsEnd() {
		return 0
	}
	removed := int64(0)
	for slot := ref.Slot(); slot != nilslot; {
		if tree.cmp(tree.node(slot).elem, elem) != 0 {
			break
		}
		next := tree.successor(slot)
		tree.detach(slot)
		tree.nodes.Free(slot)
		tree.n_deletes++
		tree.n_count--
		removed, slot = removed+1, next
	}
	return removed
}
