package api_test

import "testing"

import "github.com/burner/dcollections/api"

func TestAddAllSlice(t *testing.T) {
	tree := newtree("addall", false)
	defer tree.Destroy()
	tree.Insert(2)

	added, err := api.AddAll[int64](tree,
		api.NewSliceSequence([]int64{1, 2, 3, 4}))
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if added != 3 { // 2 was an update, not an add
		t.Errorf("unexpected %v", added)
	}
	if x := tree.Count(); x != 4 {
		t.Errorf("unexpected %v", x)
	}
	tree.Validate()
}

func TestAddAllFromTree(t *testing.T) {
	src := newtree("addallsrc", false)
	defer src.Destroy()
	dst := newtree("addalldst", false)
	defer dst.Destroy()
	for v := int64(1); v <= 5; v++ {
		src.Insert(v)
	}
	dst.Insert(100)

	seq := api.NewCursorSequence[int64](src, src.Begin(), src.End())
	added, err := api.AddAll[int64](dst, seq)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if added != 5 {
		t.Errorf("unexpected %v", added)
	}
	if x := dst.Count(); x != 6 {
		t.Errorf("unexpected %v", x)
	}
}

func TestAddAllSelfFeed(t *testing.T) {
	tree := newtree("selffeed", true)
	defer tree.Destroy()
	for v := int64(1); v <= 5; v++ {
		tree.Insert(v)
	}

	// feeding a tree into itself is rejected before any mutation.
	seq := api.NewCursorSequence[int64](tree, tree.Begin(), tree.End())
	if _, err := api.AddAll[int64](tree, seq); err != api.ErrorSelfFeed {
		t.Errorf("expected selfFeed, got %v", err)
	}
	if x := tree.Count(); x != 5 {
		t.Errorf("unexpected %v", x)
	}
}

func TestRetainOnly(t *testing.T) {
	tree := newtree("retain", true)
	defer tree.Destroy()
	for _, v := range []int64{1, 2, 2, 3, 3, 3, 4, 5} {
		tree.Insert(v)
	}

	// retain all copies of the probed values, 9 probes nothing.
	removed, err := api.RetainOnly[int64](tree,
		api.NewSliceSequence([]int64{2, 5, 9}))
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if removed != 5 {
		t.Errorf("unexpected %v", removed)
	}
	left := make([]int64, 0)
	for ref := tree.Begin(); ref.IsEnd() == false; ref, _ = tree.Successor(ref) {
		elem, _ := tree.Elem(ref)
		left = append(left, elem)
	}
	want := []int64{2, 2, 5}
	if len(left) != len(want) {
		t.Fatalf("unexpected %v", left)
	}
	for i := range want {
		if left[i] != want[i] {
			t.Errorf("expected %v, got %v", want, left)
			break
		}
	}
	tree.Validate()
}

func TestRetainOnlyNothing(t *testing.T) {
	tree := newtree("retainnothing", false)
	defer tree.Destroy()
	for v := int64(1); v <= 5; v++ {
		tree.Insert(v)
	}
	removed, err := api.RetainOnly[int64](tree,
		api.NewSliceSequence([]int64{}))
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if removed != 5 {
		t.Errorf("unexpected %v", removed)
	}
	if x := tree.Count(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}
