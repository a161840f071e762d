package lib

import "testing"

func TestHistogramInt64(t *testing.T) {
	h := NewHistogramInt64(1, 100, 10)
	for i := int64(0); i <= 200; i++ {
		h.Add(i)
	}
	if x := h.Samples(); x != 201 {
		t.Errorf("unexpected %v", x)
	} else if x := h.Min(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := h.Max(); x != 200 {
		t.Errorf("unexpected %v", x)
	} else if x := h.Mean(); x != 100 {
		t.Errorf("unexpected %v", x)
	}
	if h.SD() <= 0 {
		t.Errorf("unexpected %v", h.SD())
	}

	stats := h.Fullstats()
	if x := stats["samples"].(int64); x != 201 {
		t.Errorf("unexpected %v", x)
	}
	bins := stats["histogram"].(map[string]int64)
	if x := bins["+100"]; x != 101 {
		t.Errorf("unexpected %v", x)
	}
	if len(h.Logstring()) == 0 {
		t.Errorf("expected rendition")
	}
}

func TestHistogramInt64Empty(t *testing.T) {
	h := NewHistogramInt64(1, 10, 1)
	if x := h.Mean(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := h.Variance(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := h.SD(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}
