package rbt

import "github.com/burner/dcollections/api"

// Remove implement api.Tree{} interface. Detach the referred node and
// rebalance, returning the node that was its in-order successor at
// the time of removal, End() if none. Only refs to the removed node
// turn stale, every other ref keeps pointing at its element.
func (tree *Tree[V]) Remove(ref api.Ref) (api.Ref, error) {
	z, err := tree.resolve(ref)
	if err != nil {
		return api.Ref{}, err
	}
	succ := tree.successor(z)
	tree.detach(z)
	tree.nodes.Free(z)
	tree.n_deletes++
	tree.n_count--
	return tree.mkref(succ), nil
}

// detach splice slot z out of the tree. A node with two children is
// replaced by its in-order successor structurally, links and color,
// never by copying elements across nodes, so the successor's refs
// stay valid through the splice.
func (tree *Tree[V]) detach(z int32) {
	var x, xparent int32

	yblack := tree.node(z).black
	if tree.leftof(z) == nilslot {
		x, xparent = tree.rightof(z), tree.parentof(z)
		tree.transplant(z, x)
	} else if tree.rightof(z) == nilslot {
		x, xparent = tree.leftof(z), tree.parentof(z)
		tree.transplant(z, x)
	} else {
		y := tree.minimum(tree.rightof(z))
		yblack = tree.node(y).black
		x = tree.rightof(y)
		if tree.parentof(y) == z {
			xparent = y
		} else {
			xparent = tree.parentof(y)
			tree.transplant(y, x)
			tree.node(y).right = tree.rightof(z)
			tree.node(tree.rightof(y)).parent = y
		}
		tree.transplant(z, y)
		tree.node(y).left = tree.leftof(z)
		tree.node(tree.leftof(y)).parent = y
		tree.node(y).black = tree.node(z).black
	}
	if yblack {
		tree.removefixup(x, xparent)
	}
}

// transplant replace subtree rooted at u with the one rooted at v,
// v may be nilslot.
func (tree *Tree[V]) transplant(u, v int32) {
	p := tree.parentof(u)
	if p == nilslot {
		tree.root = v
	} else if tree.leftof(p) == u {
		tree.node(p).left = v
	} else {
		tree.node(p).right = v
	}
	if v != nilslot {
		tree.node(v).parent = p
	}
}

// removefixup restore the red-black invariants after splicing out a
// black node. x carries the double black, p is its parent, threaded
// explicitly since x may be nilslot.
func (tree *Tree[V]) removefixup(x, p int32) {
	for x != tree.root && tree.isblack(x) {
		if p == nilslot {
			break
		}
		if x == tree.leftof(p) {
			w := tree.rightof(p)
			if tree.isred(w) {
				tree.setblack(w, true)
				tree.setblack(p, false)
				tree.rotateleft(p)
				w = tree.rightof(p)
			}
			if tree.isblack(tree.leftof(w)) && tree.isblack(tree.rightof(w)) {
				tree.setblack(w, false)
				x, p = p, tree.parentof(p)
				continue
			}
			if tree.isblack(tree.rightof(w)) {
				tree.setblack(tree.leftof(w), true)
				tree.setblack(w, false)
				tree.rotateright(w)
				w = tree.rightof(p)
			}
			tree.node(w).black = tree.node(p).black
			tree.setblack(p, true)
			tree.setblack(tree.rightof(w), true)
			tree.rotateleft(p)
			x, p = tree.root, nilslot
			continue
		}
		w := tree.leftof(p)
		if tree.isred(w) {
			tree.setblack(w, true)
			tree.setblack(p, false)
			tree.rotateright(p)
			w = tree.leftof(p)
		}
		if tree.isblack(tree.leftof(w)) && tree.isblack(tree.rightof(w)) {
			tree.setblack(w, false)
			x, p = p, tree.parentof(p)
			continue
		}
		if tree.isblack(tree.leftof(w)) {
			tree.setblack(tree.rightof(w), true)
			tree.setblack(w, false)
			tree.rotateleft(w)
			w = tree.leftof(p)
		}
		tree.node(w).black = tree.node(p).black
		tree.setblack(p, true)
		tree.setblack(tree.leftof(w), true)
		tree.rotateright(p)
		x, p = tree.root, nilslot
	}
	tree.setblack(x, true)
}
