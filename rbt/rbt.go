package rbt

import "fmt"
import "io"
import "strings"
import "sync/atomic"

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/arena"
import s "github.com/bnclabs/gosettings"
import "github.com/hashicorp/go-uuid"

// owner tags are process wide, one per live tree generation, so a ref
// can never be mistaken for one issued by another tree or by the same
// tree before a Clear.
var ownertags uint64

func nexttag() uint64 {
	return atomic.AddUint64(&ownertags, 1)
}

// Tree manage a single instance of an ordered in-memory index on a
// red-black tree. Not safe for concurrent access.
type Tree[V any] struct {
	treestats

	name      string
	owner     uint64
	root      int32
	nodes     *arena.Arena[node[V]]
	cmp       api.CompareFn[V]
	upd       api.UpdateFn[V]
	dead      bool
	logprefix string

	// settings
	dups     bool
	maxnodes int64
	minslabs int64
	logok    bool
	setts    s.Settings
}

// assert the capability contract.
var _ api.Tree[int64] = (*Tree[int64])(nil)

// New tree instance named name, ordered by cmp. upd is the update
// rule applied on equal insert into unique trees, nil means overwrite.
// Refer Defaultsettings() for system settings.
func New[V any](name string, cmp api.CompareFn[V], upd api.UpdateFn[V], setts s.Settings) *Tree[V] {
	if cmp == nil {
		panic("rbt.New(): nil compare function, call the programmer")
	}
	if name == "" {
		name, _ = uuid.GenerateUUID()
	}
	tree := &Tree[V]{
		name: name, root: nilslot, cmp: cmp, upd: upd, owner: nexttag(),
	}
	tree.logprefix = fmt.Sprintf("RBT [%s]", name)

	setts = (s.Settings{}).Mixin(Defaultsettings(), setts)
	tree.readsettings(setts)
	tree.setts = setts

	tree.nodes = arena.New[node[V]](tree.maxnodes, tree.minslabs)

	if tree.logok {
		// lifecycle logging dropped: github.com/bnclabs/golog is not
		// resolvable through the module proxy (its dependency
		// github.com/prataprc/color no longer exists upstream).
		tree.logarenasettings()
	}
	return tree
}

//---- api.Tree{} interface

// ID implement api.Tree{} interface.
func (tree *Tree[V]) ID() string {
	return tree.name
}

// Count implement api.Tree{} interface.
func (tree *Tree[V]) Count() int64 {
	return tree.n_count
}

// Begin implement api.Tree{} interface. O(log n).
func (tree *Tree[V]) Begin() api.Ref {
	if tree.root == nilslot {
		return tree.End()
	}
	return tree.mkref(tree.minimum(tree.root))
}

// End implement api.Tree{} interface. O(1), the ref belongs to this
// tree generation.
func (tree *Tree[V]) End() api.Ref {
	return api.MakeRef(tree.owner, api.EndSlot, 0)
}

// Elem implement api.Tree{} interface.
func (tree *Tree[V]) Elem(ref api.Ref) (elem V, err error) {
	slot, err := tree.resolve(ref)
	if err != nil {
		return elem, err
	}
	return tree.node(slot).elem, nil
}

// Successor implement api.Tree{} interface.
func (tree *Tree[V]) Successor(ref api.Ref) (api.Ref, error) {
	slot, err := tree.resolve(ref)
	if err != nil {
		return api.Ref{}, err
	}
	return tree.mkref(tree.successor(slot)), nil
}

// Predecessor implement api.Tree{} interface. Predecessor of End() on
// a non-empty tree is the last node, retreating the first node is
// ErrorEmptyAccess.
func (tree *Tree[V]) Predecessor(ref api.Ref) (api.Ref, error) {
	if tree.dead {
		return api.Ref{}, api.ErrorDestroyed
	} else if tree.Belongs(ref) == false {
		return api.Ref{}, api.ErrorNotMember
	}
	if ref.IsEnd() {
		if tree.root == nilslot {
			return api.Ref{}, api.ErrorEmptyAccess
		}
		return tree.mkref(tree.maximum(tree.root)), nil
	}
	p := tree.predecessor(ref.Slot())
	if p == nilslot {
		return api.Ref{}, api.ErrorEmptyAccess
	}
	return tree.mkref(p), nil
}

// Belongs implement api.Tree{} interface. O(1).
func (tree *Tree[V]) Belongs(ref api.Ref) bool {
	if tree.dead || ref.Owner() != tree.owner {
		return false
	} else if ref.IsEnd() {
		return true
	}
	slot := ref.Slot()
	return tree.nodes.Live(slot) && tree.nodes.Gen(slot) == ref.Gen()
}

// Clear implement api.Tree{} interface. Discard every node in one
// sweep and re-issue the owner tag, outstanding refs stop belonging.
func (tree *Tree[V]) Clear() {
	if tree.dead {
		panic(fmt.Errorf("%v clear(): destroyed tree, call the programmer", tree.logprefix))
	}
	tree.nodes.Reset()
	tree.root, tree.n_count = nilslot, 0
	tree.owner = nexttag()
	tree.n_clears++
}

// Destroy implement api.Tree{} interface.
func (tree *Tree[V]) Destroy() error {
	if tree.dead {
		return api.ErrorDestroyed
	}
	tree.Clear()
	tree.dead = true
	if tree.logok {
		// lifecycle logging dropped: golog unresolvable, see New().
		_ = tree.logprefix
	}
	return nil
}

// Clone implement api.Tree{} interface. Element-wise copy into brand
// new nodes under a fresh owner tag, sharing nothing with the source.
// An empty name picks a generated one.
func (tree *Tree[V]) Clone(name string) (api.Tree[V], error) {
	if tree.dead {
		return nil, api.ErrorDestroyed
	}
	newtree := New[V](name, tree.cmp, tree.upd, tree.setts)
	newtree.root = newtree.clonefrom(tree, tree.root, nilslot)
	newtree.n_count = tree.n_count
	tree.n_clones++
	return newtree, nil
}

// clonefrom copy src's subtree at slot, same shape and colors. Links
// are written after the recursive allocations, slab growth moves the
// backing array.
func (newtree *Tree[V]) clonefrom(src *Tree[V], slot, parent int32) int32 {
	if slot == nilslot {
		return nilslot
	}
	dst, err := newtree.nodes.Alloc()
	if err != nil {
		panic(fmt.Errorf("%v clone(): %v", newtree.logprefix, err))
	}
	snd := src.node(slot)
	elem, black, l, r := snd.elem, snd.black, snd.left, snd.right
	left := newtree.clonefrom(src, l, dst)
	right := newtree.clonefrom(src, r, dst)
	nd := newtree.node(dst)
	nd.elem, nd.black = elem, black
	nd.parent, nd.left, nd.right = parent, left, right
	return dst
}

// Dotdump to convert whole tree into dot script that can be
// visualized using graphviz.
func (tree *Tree[V]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph rbt {",
		"  node[shape=record];\n",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	tree.dotdump(tree.root, buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

func (tree *Tree[V]) dotdump(slot int32, buffer io.Writer) {
	if slot == nilslot {
		return
	}
	nd := tree.node(slot)
	color := "red"
	if nd.black {
		color = "black"
	}
	fmsg := "  %v [color=%v,label=\"{%v|%v}\"];\n"
	fmt.Fprintf(buffer, fmsg, slot, color, slot, nd.elem)
	if nd.left != nilslot {
		fmt.Fprintf(buffer, "  %v -> %v;\n", slot, nd.left)
	}
	if nd.right != nilslot {
		fmt.Fprintf(buffer, "  %v -> %v;\n", slot, nd.right)
	}
	tree.dotdump(nd.left, buffer)
	tree.dotdump(nd.right, buffer)
}

//---- local functions

// mkref issue a ref for slot under the current owner tag, End() for
// nilslot.
func (tree *Tree[V]) mkref(slot int32) api.Ref {
	if slot == nilslot {
		return tree.End()
	}
	return api.MakeRef(tree.owner, slot, tree.nodes.Gen(slot))
}

// resolve ref to a live slot. Destroyed tree, foreign or stale refs
// and the end ref are each reported by kind.
func (tree *Tree[V]) resolve(ref api.Ref) (int32, error) {
	if tree.dead {
		return nilslot, api.ErrorDestroyed
	} else if tree.Belongs(ref) == false {
		return nilslot, api.ErrorNotMember
	} else if ref.IsEnd() {
		return nilslot, api.ErrorEmptyAccess
	}
	return ref.Slot(), nil
}
