package treemset

import "testing"

import "github.com/burner/dcollections/api"
import s "github.com/bnclabs/gosettings"

func newmset(name string) *Multiset[int64] {
	setts := s.Settings{
		"arena.capacity": int64(8 * 1024 * 1024),
		"log.lifecycle":  false,
	}
	return New[int64](name, api.OrderedCompare[int64](), setts)
}

func TestMultisetAdd(t *testing.T) {
	mset := newmset("add")
	defer mset.Destroy()

	// always inserts, duplicates included.
	mset.Add(3)
	mset.Add(1)
	mset.Add(3)
	mset.Add(3)
	mset.Add(2)
	if x := mset.Count(); x != 5 {
		t.Errorf("unexpected %v", x)
	}
	if x := mset.CountOf(3); x != 3 {
		t.Errorf("unexpected %v", x)
	}
	if x := mset.CountOf(9); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	mset.Validate()

	// non-decreasing traversal, equal runs in insertion order.
	got := make([]int64, 0)
	cur := mset.Begin()
	for cur.Empty() == false {
		v, _ := cur.Elem()
		got = append(got, v)
		cur.Next()
	}
	want := []int64{1, 2, 3, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMultisetOrder(t *testing.T) {
	mset := newmset("order")
	defer mset.Destroy()

	// duplicate-valued cursors rank by insertion order, a value
	// comparison alone cannot tell them apart.
	c1 := mset.Add(3)
	c2 := mset.Add(3)
	c3 := mset.Add(3)

	if x := mset.Order(c1, c2); x != api.OrderBefore {
		t.Errorf("unexpected %v", x)
	} else if x := mset.Order(c2, c3); x != api.OrderBefore {
		t.Errorf("unexpected %v", x)
	} else if x := mset.Order(c1, c3); x != api.OrderBefore {
		t.Errorf("unexpected %v", x)
	} else if x := mset.Order(c1, c1); x != api.OrderSame {
		t.Errorf("unexpected %v", x)
	}

	// Find lands on the earliest inserted equal value.
	if mset.Find(3).Eq(c1) == false {
		t.Errorf("expected earliest inserted")
	}
}

func TestMultisetDelete(t *testing.T) {
	mset := newmset("delete")
	defer mset.Destroy()
	for _, v := range []int64{1, 2, 2, 3, 3, 3, 4} {
		mset.Add(v)
	}

	// Delete removes one copy, the earliest inserted.
	if mset.Delete(3) == false {
		t.Errorf("expected delete")
	}
	if x := mset.CountOf(3); x != 2 {
		t.Errorf("unexpected %v", x)
	}

	// DeleteAll removes the remaining run.
	if x := mset.DeleteAll(3); x != 2 {
		t.Errorf("unexpected %v", x)
	}
	if mset.Has(3) {
		t.Errorf("unexpected 3")
	}
	if x := mset.DeleteAll(3); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	if mset.Delete(9) {
		t.Errorf("unexpected delete")
	}
	if x := mset.Count(); x != 4 {
		t.Errorf("unexpected %v", x)
	}
	mset.Validate()
}

func TestMultisetRangeRemoval(t *testing.T) {
	mset := newmset("rangeremove")
	defer mset.Destroy()
	for _, v := range []int64{1, 2, 2, 3, 3, 4, 5} {
		mset.Add(v)
	}

	// removing [first 3, end) deletes {3,3,4,5} leaving {1,2,2}.
	removed, err := mset.RemoveRange(mset.Find(3), mset.End())
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if removed != 4 {
		t.Errorf("unexpected %v", removed)
	}
	got := make([]int64, 0)
	cur := mset.Begin()
	for cur.Empty() == false {
		v, _ := cur.Elem()
		got = append(got, v)
		cur.Next()
	}
	want := []int64{1, 2, 2}
	if len(got) != len(want) {
		t.Fatalf("unexpected %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
	mset.Validate()
}

func TestMultisetPurge(t *testing.T) {
	mset := newmset("purge")
	defer mset.Destroy()
	for _, v := range []int64{0, 1, 2, 2, 3, 3, 4} {
		mset.Add(v)
	}

	err := mset.Purge(func(v int64) (bool, error) {
		return v%2 == 1, nil
	})
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	got := make([]int64, 0)
	cur := mset.Begin()
	for cur.Empty() == false {
		v, _ := cur.Elem()
		got = append(got, v)
		cur.Next()
	}
	want := []int64{0, 2, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("unexpected %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestMultisetCursorSurvivesRemoval(t *testing.T) {
	mset := newmset("staleness")
	defer mset.Destroy()

	curs := make([]api.Cursor[int64], 0)
	for _, v := range []int64{1, 2, 3, 4, 5} {
		curs = append(curs, mset.Add(v))
	}
	// remove 3 by value, cursors to 2 and 4 stay correct.
	mset.Delete(3)
	if v, err := curs[1].Elem(); err != nil || v != 2 {
		t.Errorf("unexpected %v %v", v, err)
	}
	if v, err := curs[3].Elem(); err != nil || v != 4 {
		t.Errorf("unexpected %v %v", v, err)
	}
	if _, err := curs[2].Elem(); err != api.ErrorNotMember {
		t.Errorf("expected notMember, got %v", err)
	}
}

func TestMultisetClone(t *testing.T) {
	mset := newmset("original")
	defer mset.Destroy()
	for _, v := range []int64{7, 7, 7} {
		mset.Add(v)
	}
	cur := mset.Find(7)

	clone, err := mset.Clone("copy")
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	defer clone.Destroy()

	if x := clone.CountOf(7); x != 3 {
		t.Errorf("unexpected %v", x)
	}
	if clone.Belongs(cur) {
		t.Errorf("expected foreign cursor")
	}
	clone.DeleteAll(7)
	if x := mset.CountOf(7); x != 3 {
		t.Errorf("clone mutation leaked")
	}
}

func TestMultisetBulk(t *testing.T) {
	mset := newmset("bulk")
	defer mset.Destroy()

	added, err := mset.AddAll(api.NewSliceSequence([]int64{5, 5, 6}))
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if added != 3 {
		t.Errorf("unexpected %v", added)
	}
	if _, err := mset.AddAll(mset.Sequence()); err != api.ErrorSelfFeed {
		t.Errorf("expected selfFeed, got %v", err)
	}

	// retain keeps every copy of a probed value.
	removed, err := mset.RetainOnly(api.NewSliceSequence([]int64{5}))
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if removed != 1 {
		t.Errorf("unexpected %v", removed)
	}
	if x := mset.CountOf(5); x != 2 {
		t.Errorf("unexpected %v", x)
	}
}
