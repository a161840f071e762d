package rbt

import "unsafe"

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for rbt instance and its node arena.
//
// "dups" (bool, default: false)
//      Permit duplicate elements. Equal elements keep their insertion
//      order and inserts always create a node. When false, an equal
//      insert applies the update rule on the existing node.
//
// "arena.capacity" (int64)
//      Memory capacity, in bytes, reserved for nodes. Maximum number
//      of live nodes is capacity divided by the per-node footprint of
//      the instantiated element type. Default is half the free system
//      memory.
//
// "arena.minslabs" (int64, default: 64)
//      Number of node slots materialized up front, slabs double from
//      there.
//
// "log.lifecycle" (bool, default: true)
//      Log start, destroy and stats banners for this instance.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	return s.Settings{
		"dups":           false,
		"arena.capacity": int64(free / 2),
		"arena.minslabs": int64(64),
		"log.lifecycle":  true,
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

func (tree *Tree[V]) readsettings(setts s.Settings) {
	tree.dups = setts.Bool("dups")
	tree.minslabs = setts.Int64("arena.minslabs")
	tree.logok = setts.Bool("log.lifecycle")

	capacity := setts.Int64("arena.capacity")
	footprint := tree.nodefootprint()
	tree.maxnodes = capacity / footprint
	if tree.maxnodes < tree.minslabs {
		tree.maxnodes = tree.minslabs
	}
}

func (tree *Tree[V]) nodefootprint() int64 {
	var nd node[V]
	return int64(unsafe.Sizeof(nd))
}
