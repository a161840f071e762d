package rbt

import "fmt"
import "math"

import "github.com/burner/dcollections/lib"

// height of the tree cannot exceed a certain limit. For example if
// the tree holds 1-million entries, a fully balanced tree shall have
// a height of 20 levels. maxheight provide some breathing space on
// top of ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 3 * math.Log2(float64(entries)) // 3x breathing space
}

// Validate implement api.Tree{} interface. Walk the entire tree
// checking the red-black invariants, the sort order, the structural
// back-links and the slot accounting, panic on any violation.
func (tree *Tree[V]) Validate() {
	if tree.dead {
		panic(fmt.Errorf("%v validate(): destroyed tree", tree.logprefix))
	}
	if tree.root != nilslot {
		if tree.isred(tree.root) {
			panic(fmt.Errorf("%v validate(): red root", tree.logprefix))
		}
		if p := tree.parentof(tree.root); p != nilslot {
			panic(fmt.Errorf("%v validate(): root has parent %v", tree.logprefix, p))
		}
	}

	h := lib.NewHistogramInt64(1, 256, 1)
	tree.validatetree(tree.root, tree.isred(tree.root), 0 /*blacks*/, 1 /*depth*/, h)

	if count := tree.validateorder(); count != tree.n_count {
		fmsg := "%v validate(): n_count:%v != walked:%v"
		panic(fmt.Errorf(fmsg, tree.logprefix, tree.n_count, count))
	}
	if allocated := tree.nodes.Allocated(); allocated != tree.n_count {
		fmsg := "%v validate(): n_count:%v != allocated:%v"
		panic(fmt.Errorf(fmsg, tree.logprefix, tree.n_count, allocated))
	}

	// `h_height`.max should not exceed certain limit.
	if h.Samples() > 8 {
		if float64(h.Max()) > maxheight(tree.n_count) {
			fmsg := "%v validate(): max height %v exceeds log2(%v)"
			panic(fmt.Errorf(fmsg, tree.logprefix, h.Max(), tree.n_count))
		}
	}
}

func (tree *Tree[V]) validatetree(
	slot int32, fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) int64 {

	if slot == nilslot {
		return blacks
	}
	h.Add(depth)

	nd := tree.node(slot)
	red := nd.black == false
	if fromred && red {
		panic(fmt.Errorf("%v validate(): consecutive reds at %v", tree.logprefix, slot))
	}
	if nd.left != nilslot && tree.parentof(nd.left) != slot {
		panic(fmt.Errorf("%v validate(): broken parent link at %v", tree.logprefix, nd.left))
	}
	if nd.right != nilslot && tree.parentof(nd.right) != slot {
		panic(fmt.Errorf("%v validate(): broken parent link at %v", tree.logprefix, nd.right))
	}

	if red == false {
		blacks++
	}
	lblacks := tree.validatetree(nd.left, red, blacks, depth+1, h)
	rblacks := tree.validatetree(nd.right, red, blacks, depth+1, h)
	if lblacks != rblacks {
		fmsg := "%v validate(): unbalancedblacks {%v,%v}"
		panic(fmt.Errorf(fmsg, tree.logprefix, lblacks, rblacks))
	}
	return lblacks
}

// validateorder walk in order comparing adjacent elements, strictly
// increasing for unique trees, non-decreasing for duplicate trees.
// Return the number of nodes walked.
func (tree *Tree[V]) validateorder() int64 {
	if tree.root == nilslot {
		return 0
	}
	count, prev := int64(1), tree.minimum(tree.root)
	for slot := tree.successor(prev); slot != nilslot; slot = tree.successor(slot) {
		c := tree.cmp(tree.node(prev).elem, tree.node(slot).elem)
		if c > 0 || (c == 0 && tree.dups == false) {
			fmsg := "%v validate(): sort order violation between %v and %v"
			panic(fmt.Errorf(fmsg, tree.logprefix, prev, slot))
		}
		count, prev = count+1, slot
	}
	return count
}
