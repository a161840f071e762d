package rbt

// nilslot absence of a child or parent link.
const nilslot int32 = -1

// node one element and its structural links, all slot indices into
// the tree's arena. Rebalancing rewires links and flips colors but
// never moves an element between slots.
type node[V any] struct {
	elem   V
	parent int32
	left   int32
	right  int32
	black  bool
}

//---- slot accessors, nilslot reads as a black sentinel.

func (tree *Tree[V]) node(slot int32) *node[V] {
	return tree.nodes.At(slot)
}

func (tree *Tree[V]) leftof(slot int32) int32 {
	return tree.node(slot).left
}

func (tree *Tree[V]) rightof(slot int32) int32 {
	return tree.node(slot).right
}

func (tree *Tree[V]) parentof(slot int32) int32 {
	return tree.node(slot).parent
}

func (tree *Tree[V]) isred(slot int32) bool {
	if slot == nilslot {
		return false
	}
	return tree.node(slot).black == false
}

func (tree *Tree[V]) isblack(slot int32) bool {
	return tree.isred(slot) == false
}

func (tree *Tree[V]) setblack(slot int32, black bool) {
	if slot != nilslot {
		tree.node(slot).black = black
	}
}

func (tree *Tree[V]) minimum(slot int32) int32 {
	for tree.leftof(slot) != nilslot {
		slot = tree.leftof(slot)
	}
	return slot
}

func (tree *Tree[V]) maximum(slot int32) int32 {
	for tree.rightof(slot) != nilslot {
		slot = tree.rightof(slot)
	}
	return slot
}

// successor next slot in order, nilslot after the last one.
func (tree *Tree[V]) successor(slot int32) int32 {
	if r := tree.rightof(slot); r != nilslot {
		return tree.minimum(r)
	}
	p := tree.parentof(slot)
	for p != nilslot && slot == tree.rightof(p) {
		slot, p = p, tree.parentof(p)
	}
	return p
}

// predecessor previous slot in order, nilslot before the first one.
func (tree *Tree[V]) predecessor(slot int32) int32 {
	if l := tree.leftof(slot); l != nilslot {
		return tree.maximum(l)
	}
	p := tree.parentof(slot)
	for p != nilslot && slot == tree.leftof(p) {
		slot, p = p, tree.parentof(p)
	}
	return p
}

//---- rotations, in-order sequence is preserved.

func (tree *Tree[V]) rotateleft(x int32) {
	y := tree.rightof(x)
	tree.node(x).right = tree.leftof(y)
	if l := tree.leftof(y); l != nilslot {
		tree.node(l).parent = x
	}
	p := tree.parentof(x)
	tree.node(y).parent = p
	if p == nilslot {
		tree.root = y
	} else if tree.leftof(p) == x {
		tree.node(p).left = y
	} else {
		tree.node(p).right = y
	}
	tree.node(y).left = x
	tree.node(x).parent = y
}

func (tree *Tree[V]) rotateright(x int32) {
	y := tree.leftof(x)
	tree.node(x).left = tree.rightof(y)
	if r := tree.rightof(y); r != nilslot {
		tree.node(r).parent = x
	}
	p := tree.parentof(x)
	tree.node(y).parent = p
	if p == nilslot {
		tree.root = y
	} else if tree.leftof(p) == x {
		tree.node(p).left = y
	} else {
		tree.node(p).right = y
	}
	tree.node(y).right = x
	tree.node(x).parent = y
}
