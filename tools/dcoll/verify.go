package main

import "flag"
import "fmt"
import "math/rand"
import "os"
import "sort"

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/treemap"
import s "github.com/bnclabs/gosettings"
import "github.com/fatih/color"

var verifyopts struct {
	n      int
	kspace int64
	seed   int64
}

func parseVerifyopts(args []string) {
	f := flag.NewFlagSet("verify", flag.ExitOnError)
	f.IntVar(&verifyopts.n, "n", 100000,
		"number of operations to apply")
	f.Int64Var(&verifyopts.kspace, "kspace", 1000,
		"generate keys between [0,kspace)")
	f.Int64Var(&verifyopts.seed, "seed", 42,
		"random seed")
	f.Parse(args)
}

// doVerify apply a random op stream to an ordered map and to a plain
// go map, comparing every result and the final sort order.
func doVerify(args []string) {
	parseVerifyopts(args)
	rnd := rand.New(rand.NewSource(verifyopts.seed))

	setts := s.Settings{"arena.capacity": int64(64 * 1024 * 1024)}
	m := treemap.New[int64, int64]("verify", api.OrderedCompare[int64](), nil, setts)
	defer m.Destroy()
	ref := map[int64]int64{}

	fails := 0
	for i := 0; i < verifyopts.n; i++ {
		key := rnd.Int63n(verifyopts.kspace)
		switch rnd.Intn(4) {
		case 0, 1: // set
			value := rnd.Int63()
			_, present := ref[key]
			if added := m.Set(key, value); added == present {
				fails++
				fmt.Printf("set(%v) added:%v present:%v\n", key, added, present)
			}
			ref[key] = value
		case 2: // get
			value, ok := m.Get(key)
			refvalue, refok := ref[key]
			if ok != refok || (ok && value != refvalue) {
				fails++
				fmt.Printf("get(%v) {%v,%v} expected {%v,%v}\n",
					key, value, ok, refvalue, refok)
			}
		case 3: // del
			_, present := ref[key]
			if deleted := m.Delete(key); deleted != present {
				fails++
				fmt.Printf("del(%v) deleted:%v present:%v\n", key, deleted, present)
			}
			delete(ref, key)
		}
	}

	if int64(len(ref)) != m.Count() {
		fails++
		fmt.Printf("count %v expected %v\n", m.Count(), len(ref))
	}

	// the traversal must agree with the reference keys in sort order.
	keys := make([]int64, 0, len(ref))
	for key := range ref {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	i := 0
	cur := m.Begin()
	for cur.Empty() == false {
		item, err := cur.Elem()
		if err != nil || i >= len(keys) || item.Key != keys[i] {
			fails++
			fmt.Printf("traversal offset %v unexpected %v %v\n", i, item, err)
			break
		}
		i++
		cur.Next()
	}
	m.Validate()

	if fails > 0 {
		fmt.Printf("%v: %v failures over %v ops\n",
			color.RedString("FAIL"), fails, verifyopts.n)
		os.Exit(1)
	}
	fmt.Printf("%v: %v ops, %v keys\n",
		color.GreenString("PASS"), verifyopts.n, m.Count())
}
