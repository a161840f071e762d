package rbt

import "math/rand"
import "testing"

import "github.com/burner/dcollections/api"

func TestNodeOrderDuplicates(t *testing.T) {
	tree := testtree("orderdups", true)
	defer tree.Destroy()

	// three equal-valued nodes, value comparison cannot rank them.
	c1, _ := tree.Insert(3)
	c2, _ := tree.Insert(3)
	c3, _ := tree.Insert(3)

	if x := tree.NodeOrder(c1, c2); x != api.OrderBefore {
		t.Errorf("unexpected %v", x)
	} else if x := tree.NodeOrder(c2, c3); x != api.OrderBefore {
		t.Errorf("unexpected %v", x)
	} else if x := tree.NodeOrder(c1, c3); x != api.OrderBefore {
		t.Errorf("unexpected %v", x)
	} else if x := tree.NodeOrder(c1, c1); x != api.OrderSame {
		t.Errorf("unexpected %v", x)
	} else if x := tree.NodeOrder(c3, c1); x != api.OrderAfter {
		t.Errorf("unexpected %v", x)
	}
}

func TestNodeOrderEnd(t *testing.T) {
	tree := testtree("orderend", false)
	defer tree.Destroy()

	end := tree.End()
	if x := tree.NodeOrder(end, end); x != api.OrderSame {
		t.Errorf("unexpected %v", x)
	}

	ref, _ := tree.Insert(1)
	if x := tree.NodeOrder(ref, end); x != api.OrderBefore {
		t.Errorf("unexpected %v", x)
	} else if x := tree.NodeOrder(end, ref); x != api.OrderAfter {
		t.Errorf("unexpected %v", x)
	}
}

func TestNodeOrderForeign(t *testing.T) {
	tree := testtree("orderhome", false)
	defer tree.Destroy()
	other := testtree("orderforeign", false)
	defer other.Destroy()

	ref, _ := tree.Insert(1)
	foreign, _ := other.Insert(1)

	if x := tree.NodeOrder(ref, foreign); x != api.OrderInvalid {
		t.Errorf("unexpected %v", x)
	} else if x := tree.NodeOrder(foreign, ref); x != api.OrderInvalid {
		t.Errorf("unexpected %v", x)
	} else if x := tree.NodeOrder(foreign, other.End()); x != api.OrderInvalid {
		t.Errorf("unexpected %v", x)
	}

	// a removed node's ref is invalid for ordering.
	gone, _ := tree.Insert(2)
	tree.Remove(gone)
	if x := tree.NodeOrder(ref, gone); x != api.OrderInvalid {
		t.Errorf("unexpected %v", x)
	}
}

func TestNodeOrderRandom(t *testing.T) {
	tree := testtree("orderrandom", false)
	defer tree.Destroy()

	refs := make(map[int64]api.Ref)
	for _, v := range rand.Perm(300) {
		refs[int64(v)], _ = tree.Insert(int64(v))
	}
	// order query must agree with value order on a unique tree.
	for i := 0; i < 1000; i++ {
		a, b := int64(rand.Intn(300)), int64(rand.Intn(300))
		want := api.OrderSame
		if a < b {
			want = api.OrderBefore
		} else if a > b {
			want = api.OrderAfter
		}
		if x := tree.NodeOrder(refs[a], refs[b]); x != want {
			t.Fatalf("order(%v,%v) expected %v, got %v", a, b, want, x)
		}
	}
}

func TestNodeOrderDuplicateRuns(t *testing.T) {
	setts := testsetts()
	setts["dups"] = true
	tree := New[int64]("orderruns", api.OrderedCompare[int64](), nil, setts)
	defer tree.Destroy()

	// several runs of duplicates, refs remembered in insertion order,
	// global order is (value, insertion rank).
	type tag struct {
		value int64
		rank  int
	}
	refs := make([]api.Ref, 0)
	tags := make([]tag, 0)
	for _, v := range []int64{5, 2, 5, 5, 2, 8, 2, 8} {
		ref, _ := tree.Insert(v)
		rank := 0
		for _, prev := range tags {
			if prev.value == v {
				rank++
			}
		}
		refs = append(refs, ref)
		tags = append(tags, tag{v, rank})
	}

	before := func(a, b tag) bool {
		if a.value != b.value {
			return a.value < b.value
		}
		return a.rank < b.rank
	}
	for i := range refs {
		for j := range refs {
			want := api.OrderSame
			if before(tags[i], tags[j]) {
				want = api.OrderBefore
			} else if before(tags[j], tags[i]) {
				want = api.OrderAfter
			}
			if x := tree.NodeOrder(refs[i], refs[j]); x != want {
				t.Fatalf("order(%v,%v) expected %v, got %v", tags[i], tags[j], want, x)
			}
		}
	}
}

func TestNodeOrderSettings(t *testing.T) {
	// defaults carry dups=false and a capacity derived from free
	// memory.
	setts := Defaultsettings()
	if setts.Bool("dups") {
		t.Errorf("unexpected dups default")
	}
	if x := setts.Int64("arena.capacity"); x <= 0 {
		t.Errorf("unexpected %v", x)
	}
	if x := setts.Int64("arena.minslabs"); x != 64 {
		t.Errorf("unexpected %v", x)
	}
}
