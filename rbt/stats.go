package rbt

import "github.com/burner/dcollections/lib"
import humanize "github.com/dustin/go-humanize"

type treestats struct {
	n_count       int64
	n_inserts     int64
	n_updates     int64
	n_deletes     int64
	n_finds       int64
	n_clones      int64
	n_clears      int64
	n_orderchecks int64
}

// Stats implement api.Tree{} interface. Return per-instance counters,
// the height histogram and the arena's slot accounting.
func (tree *Tree[V]) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_count":       tree.n_count,
		"n_inserts":     tree.n_inserts,
		"n_updates":     tree.n_updates,
		"n_deletes":     tree.n_deletes,
		"n_finds":       tree.n_finds,
		"n_clones":      tree.n_clones,
		"n_clears":      tree.n_clears,
		"n_orderchecks": tree.n_orderchecks,
	}
	for k, v := range tree.nodes.Stats() {
		stats["arena."+k] = v
	}
	h_height := tree.heightstats()
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = tree.countblacks(tree.root, 0)
	return stats
}

// Log implement api.Tree{} interface.
func (tree *Tree[V]) Log() {
	// log emission dropped: github.com/bnclabs/golog is not resolvable
	// through the module proxy (its dependency github.com/prataprc/color
	// no longer exists upstream). The computations are kept as-is.
	stats := tree.Stats()
	fmsg := "%v count %v {inserts:%v updates:%v deletes:%v}\n"
	_, _ = fmsg, stats

	allocated := tree.nodes.Allocated()
	footprint := uint64(allocated * tree.nodefootprint())
	fmsg = "%v arena %v of %v slots, %v in nodes\n"
	_ = humanize.Bytes(footprint)

	_ = tree.heightstats().Logstring()
}

func (tree *Tree[V]) logarenasettings() {
	capacity := uint64(tree.maxnodes * tree.nodefootprint())
	fmsg := "%v arena capacity %v slots (%v)\n"
	// log emission dropped: golog unresolvable, see Log().
	_, _ = fmsg, humanize.Bytes(capacity)
}

//---- local functions

func (tree *Tree[V]) heightstats() *lib.HistogramInt64 {
	h := lib.NewHistogramInt64(1, 256, 1)
	tree.heightwalk(tree.root, 1, h)
	return h
}

func (tree *Tree[V]) heightwalk(slot int32, depth int64, h *lib.HistogramInt64) {
	if slot == nilslot {
		return
	}
	h.Add(depth)
	tree.heightwalk(tree.leftof(slot), depth+1, h)
	tree.heightwalk(tree.rightof(slot), depth+1, h)
}

// countblacks blacks along the leftmost path, the black height of the
// tree if the invariants hold.
func (tree *Tree[V]) countblacks(slot int32, count int64) int64 {
	if slot == nilslot {
		return count
	}
	if tree.node(slot).black {
		count++
	}
	return tree.countblacks(tree.leftof(slot), count)
}
