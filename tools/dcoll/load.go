package main

import "flag"
import "fmt"
import "math/rand"
import "time"

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/treemset"
import "github.com/burner/dcollections/treeset"
import s "github.com/bnclabs/gosettings"

var loadopts struct {
	n        int
	vspace   int64
	capacity int64
	seed     int64
	unique   bool
}

func parseLoadopts(args []string) {
	f := flag.NewFlagSet("load", flag.ExitOnError)
	f.IntVar(&loadopts.n, "n", 1000000,
		"number of items to generate and insert")
	f.Int64Var(&loadopts.vspace, "vspace", 1000000,
		"generate values between [0,vspace)")
	f.Int64Var(&loadopts.capacity, "capacity", 1024*1024*1024,
		"memory capacity for the node arena, in bytes")
	f.Int64Var(&loadopts.seed, "seed", 42,
		"random seed")
	f.BoolVar(&loadopts.unique, "unique", false,
		"load a unique-value set instead of a multiset")
	f.Parse(args)
}

func doLoad(args []string) {
	parseLoadopts(args)
	setts := s.Settings{"arena.capacity": loadopts.capacity}
	rnd := rand.New(rand.NewSource(loadopts.seed))

	now := time.Now()
	if loadopts.unique {
		set := treeset.New[int64]("cmdline", api.OrderedCompare[int64](), setts)
		defer set.Destroy()
		added := 0
		for i := 0; i < loadopts.n; i++ {
			if set.Add(rnd.Int63n(loadopts.vspace)) {
				added++
			}
		}
		took := time.Since(now)
		fmt.Printf("loaded %v unique of %v values in %v\n", added, loadopts.n, took)
		set.Validate()
		set.Log()
		return
	}

	mset := treemset.New[int64]("cmdline", api.OrderedCompare[int64](), setts)
	defer mset.Destroy()
	for i := 0; i < loadopts.n; i++ {
		mset.Add(rnd.Int63n(loadopts.vspace))
	}
	took := time.Since(now)
	fmt.Printf("loaded %v values in %v\n", loadopts.n, took)
	mset.Validate()
	mset.Log()
}
