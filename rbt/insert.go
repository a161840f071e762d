package rbt

import "fmt"

import "github.com/burner/dcollections/api"

// Insert implement api.Tree{} interface. Locate the insertion point
// by repeated comparison from the root. Unique trees resolve an equal
// hit through the update rule in place, no structural change, so
// outstanding refs and the node's position are untouched. Duplicate
// trees send equal elements right, the new node lands immediately
// after the last equal one, insertion order among equals is FIFO.
func (tree *Tree[V]) Insert(elem V) (api.Ref, bool) {
	if tree.dead {
		panic(fmt.Errorf("%v insert(): destroyed tree, call the programmer", tree.logprefix))
	}

	parent, goleft := nilslot, false
	for i := tree.root; i != nilslot; {
		nd := tree.node(i)
		c := tree.cmp(elem, nd.elem)
		if c == 0 && tree.dups == false {
			if tree.upd != nil {
				nd.elem = tree.upd(nd.elem, elem)
			} else {
				nd.elem = elem
			}
			tree.n_updates++
			return tree.mkref(i), false
		}
		parent, goleft = i, c < 0
		if goleft {
			i = nd.left
		} else {
			i = nd.right
		}
	}

	slot, err := tree.nodes.Alloc()
	if err != nil {
		panic(fmt.Errorf("%v insert(): %v", tree.logprefix, err))
	}
	nd := tree.node(slot)
	nd.elem, nd.black = elem, false
	nd.parent, nd.left, nd.right = parent, nilslot, nilslot
	if parent == nilslot {
		tree.root = slot
	} else if goleft {
		tree.node(parent).left = slot
	} else {
		tree.node(parent).right = slot
	}

	tree.insertfixup(slot)
	tree.n_inserts++
	tree.n_count++
	return tree.mkref(slot), true
}

// insertfixup restore the red-black invariants after linking a fresh
// red node, O(log n) recolorings and at most two rotations.
func (tree *Tree[V]) insertfixup(x int32) {
	for {
		p := tree.parentof(x)
		if p == nilslot {
			tree.node(x).black = true // root is black
			return
		} else if tree.node(p).black {
			return
		}
		g := tree.parentof(p) // grandparent exists, p is red
		if p == tree.leftof(g) {
			if u := tree.rightof(g); tree.isred(u) {
				tree.setblack(p, true)
				tree.setblack(u, true)
				tree.setblack(g, false)
				x = g
				continue
			}
			if x == tree.rightof(p) {
				tree.rotateleft(p)
				x, p = p, x
			}
			tree.setblack(p, true)
			tree.setblack(g, false)
			tree.rotateright(g)
			return
		}
		if u := tree.leftof(g); tree.isred(u) {
			tree.setblack(p, true)
			tree.setblack(u, true)
			tree.setblack(g, false)
			x = g
			continue
		}
		if x == tree.leftof(p) {
			tree.rotateright(p)
			x, p = p, x
		}
		tree.setblack(p, true)
		tree.setblack(g, false)
		tree.rotateleft(g)
		return
	}
}
