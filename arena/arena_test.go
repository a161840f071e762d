package arena

import "testing"

import "github.com/burner/dcollections/api"

func TestArenaAlloc(t *testing.T) {
	a := New[int64](8, 2)
	slots := make([]int32, 0)
	for i := 0; i < 8; i++ {
		slot, err := a.Alloc()
		if err != nil {
			t.Fatalf("unexpected %v", err)
		}
		*a.At(slot) = int64(i)
		slots = append(slots, slot)
	}
	if _, err := a.Alloc(); err != api.ErrorOutofMemory {
		t.Errorf("expected outofmemory, got %v", err)
	}
	if x := a.Allocated(); x != 8 {
		t.Errorf("unexpected %v", x)
	} else if x := a.Available(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	for i, slot := range slots {
		if x := *a.At(slot); x != int64(i) {
			t.Errorf("expected %v, got %v", i, x)
		}
	}
}

func TestArenaFree(t *testing.T) {
	a := New[string](4, 4)
	slot, _ := a.Alloc()
	*a.At(slot) = "hello"
	gen := a.Gen(slot)

	a.Free(slot)
	if a.Live(slot) {
		t.Errorf("expected freed slot")
	}
	if x := a.Gen(slot); x != gen+1 {
		t.Errorf("expected %v, got %v", gen+1, x)
	}

	// freed slot is reused, zeroed.
	again, _ := a.Alloc()
	if again != slot {
		t.Errorf("expected %v, got %v", slot, again)
	} else if x := *a.At(again); x != "" {
		t.Errorf("unexpected %q", x)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on double free")
		}
	}()
	a.Free(slot)
	a.Free(slot)
}

func TestArenaReset(t *testing.T) {
	a := New[int64](100, 10)
	for i := 0; i < 50; i++ {
		slot, _ := a.Alloc()
		*a.At(slot) = int64(i)
	}
	gens := make([]uint32, 50)
	for slot := int32(0); slot < 50; slot++ {
		gens[slot] = a.Gen(slot)
	}

	a.Reset()
	if x := a.Allocated(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := a.Slots(); x != 50 {
		t.Errorf("unexpected %v", x)
	}
	for slot := int32(0); slot < 50; slot++ {
		if a.Gen(slot) != gens[slot]+1 {
			t.Errorf("slot %v generation not bumped", slot)
		}
	}

	// arena remains usable after reset.
	slot, err := a.Alloc()
	if err != nil {
		t.Fatalf("unexpected %v", err)
	} else if x := *a.At(slot); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}

func TestArenaStats(t *testing.T) {
	a := New[byte](16, 4)
	for i := 0; i < 10; i++ {
		a.Alloc()
	}
	a.Free(3)
	a.Free(7)

	stats := a.Stats()
	if x := stats["slots.allocated"].(int64); x != 8 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["slots.available"].(int64); x != 8 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_allocs"].(int64); x != 10 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_frees"].(int64); x != 2 {
		t.Errorf("unexpected %v", x)
	}
	if ut := a.Utilization(); ut < 0.79 || ut > 0.81 {
		t.Errorf("unexpected %v", ut)
	}
}
