package api_test

import "testing"

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/rbt"
import s "github.com/bnclabs/gosettings"

func newtree(name string, dups bool) *rbt.Tree[int64] {
	setts := s.Settings{
		"dups":           dups,
		"arena.capacity": int64(8 * 1024 * 1024),
		"log.lifecycle":  false,
	}
	return rbt.New[int64](name, api.OrderedCompare[int64](), nil, setts)
}

func TestCursorTraverse(t *testing.T) {
	tree := newtree("cursor", false)
	defer tree.Destroy()
	for v := int64(1); v <= 5; v++ {
		tree.Insert(v)
	}

	cur := api.NewCursor[int64](tree, tree.Begin())
	for expect := int64(1); expect <= 5; expect++ {
		if cur.Empty() {
			t.Fatalf("unexpected empty at %v", expect)
		}
		elem, err := cur.Elem()
		if err != nil {
			t.Fatalf("unexpected %v", err)
		} else if elem != expect {
			t.Fatalf("expected %v, got %v", expect, elem)
		}
		if err := cur.Next(); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	if cur.Empty() == false {
		t.Errorf("expected past-the-end")
	}
	if _, err := cur.Elem(); err != api.ErrorEmptyAccess {
		t.Errorf("expected emptyAccess, got %v", err)
	}
	if err := cur.Next(); err != api.ErrorEmptyAccess {
		t.Errorf("expected emptyAccess, got %v", err)
	}

	// retreating end on a non-empty tree is legal.
	if err := cur.Prev(); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if elem, _ := cur.Elem(); elem != 5 {
		t.Errorf("unexpected %v", elem)
	}
}

func TestCursorEquality(t *testing.T) {
	tree := newtree("cursoreq", false)
	defer tree.Destroy()
	ref, _ := tree.Insert(7)

	c1 := api.NewCursor[int64](tree, ref)
	c2 := api.NewCursor[int64](tree, tree.Find(7))
	if c1.Eq(c2) == false {
		t.Errorf("expected equal cursors")
	}
	e1 := api.NewCursor[int64](tree, tree.End())
	e2 := api.NewCursor[int64](tree, tree.End())
	if e1.Eq(e2) == false {
		t.Errorf("expected equal end cursors")
	}
	if c1.Eq(e1) {
		t.Errorf("unexpected equality")
	}

	// cursors on different trees never compare equal.
	other := newtree("cursorother", false)
	defer other.Destroy()
	o := api.NewCursor[int64](other, other.End())
	if e1.Eq(o) {
		t.Errorf("unexpected equality across trees")
	}
}

func TestCursorStaleAfterRemove(t *testing.T) {
	tree := newtree("cursorstale", false)
	defer tree.Destroy()
	for v := int64(1); v <= 5; v++ {
		tree.Insert(v)
	}
	c2 := api.NewCursor[int64](tree, tree.Find(2))
	c4 := api.NewCursor[int64](tree, tree.Find(4))

	// remove 3 by value, other cursors stay readable and correct.
	if _, err := tree.Remove(tree.Find(3)); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if elem, err := c2.Elem(); err != nil || elem != 2 {
		t.Errorf("unexpected %v %v", elem, err)
	}
	if elem, err := c4.Elem(); err != nil || elem != 4 {
		t.Errorf("unexpected %v %v", elem, err)
	}

	// only the removed node's cursor turns stale.
	c4ref := c4.Ref()
	tree.Remove(c4ref)
	if _, err := c4.Elem(); err != api.ErrorNotMember {
		t.Errorf("expected notMember, got %v", err)
	}
	if err := c4.Next(); err != api.ErrorNotMember {
		t.Errorf("expected notMember, got %v", err)
	}
	if elem, err := c2.Elem(); err != nil || elem != 2 {
		t.Errorf("unexpected %v %v", elem, err)
	}
}

func TestCursorUpdateKeepsIdentity(t *testing.T) {
	tree := newtree("cursorupdate", false)
	defer tree.Destroy()

	// updates on a unique tree change no structure, cursors taken
	// before the update keep designating the same node.
	ref1, _ := tree.Insert(10)
	cur := api.NewCursor[int64](tree, ref1)
	ref2, inserted := tree.Insert(10)
	if inserted {
		t.Errorf("unexpected insert")
	}
	if ref1 != ref2 {
		t.Errorf("expected stable identity")
	}
	if elem, err := cur.Elem(); err != nil || elem != 10 {
		t.Errorf("unexpected %v %v", elem, err)
	}
}
