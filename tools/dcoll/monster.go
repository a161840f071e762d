package main

import "encoding/json"
import "flag"
import "fmt"
import "io/ioutil"
import "log"
import "os"
import "sort"

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/treemap"
import s "github.com/bnclabs/gosettings"
import "github.com/fatih/color"
import parsec "github.com/prataprc/goparsec"
import "github.com/prataprc/monster"
import mcommon "github.com/prataprc/monster/common"

var monsteropts struct {
	n        int
	seed     int
	bagdir   string
	prodfile string
}

func parseMonsteropts(args []string) {
	f := flag.NewFlagSet("monster", flag.ExitOnError)
	f.IntVar(&monsteropts.n, "n", 1000,
		"number of command batches to generate and apply")
	f.IntVar(&monsteropts.seed, "seed", 42,
		"random seed")
	f.StringVar(&monsteropts.bagdir, "bagdir", "",
		"bag directory for monster sample data")
	f.StringVar(&monsteropts.prodfile, "prodfile", "dcoll.prod",
		"monster production file")
	f.Parse(args)

	if monsteropts.prodfile == "" {
		log.Fatalf("please provide production file to monster")
	}
	fmt.Printf("seed: %v\n", monsteropts.seed)
}

// doMonster generate op batches from the production grammar and apply
// them to an ordered map and a reference map, comparing results.
func doMonster(args []string) {
	parseMonsteropts(args)

	setts := s.Settings{"arena.capacity": int64(64 * 1024 * 1024)}
	m := treemap.New[int64, int64]("monster", api.OrderedCompare[int64](), nil, setts)
	defer m.Destroy()
	ref := map[int64]int64{}

	stats, fails := map[string]int{}, 0
	for _, cmds := range generate(monsteropts.n, monsteropts.prodfile) {
		for _, cmd := range cmds {
			name := cmd[0].(string)
			stats[name] = stats[name] + 1
			if applycmd(m, ref, cmd) == false {
				fails++
			}
		}
	}
	m.Validate()

	// print statistics
	keys, total := []string{}, 0
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		total += stats[key]
		fmt.Printf("%v : %v\n", key, stats[key])
	}
	fmt.Printf("total : %v\n", total)

	if fails > 0 {
		fmt.Printf("%v: %v failures\n", color.RedString("FAIL"), fails)
		os.Exit(1)
	}
	fmt.Printf("%v: %v keys\n", color.GreenString("PASS"), m.Count())
}

func applycmd(m *treemap.Map[int64, int64], ref map[int64]int64, cmd []interface{}) bool {
	name := cmd[0].(string)
	switch name {
	case "set":
		key, value := int64(cmd[1].(float64)), int64(cmd[2].(float64))
		_, present := ref[key]
		ref[key] = value
		return m.Set(key, value) != present
	case "get":
		key := int64(cmd[1].(float64))
		value, ok := m.Get(key)
		refvalue, refok := ref[key]
		return ok == refok && (ok == false || value == refvalue)
	case "del":
		key := int64(cmd[1].(float64))
		_, present := ref[key]
		delete(ref, key)
		return m.Delete(key) == present
	}
	panic(fmt.Errorf("invalid command %q", name))
}

//--------
// monster
//--------

func generate(repeat int, prodfile string) [][][]interface{} {
	text, err := ioutil.ReadFile(prodfile)
	if err != nil {
		log.Fatal(err)
	}
	root := compile(parsec.NewScanner(text)).(mcommon.Scope)
	seed, bagdir := uint64(monsteropts.seed), monsteropts.bagdir
	scope := monster.BuildContext(root, seed, bagdir, prodfile)
	nterms := scope["_nonterminals"].(mcommon.NTForms)

	batches := make([][][]interface{}, 0, repeat)
	for i := 0; i < repeat; i++ {
		scope = scope.RebuildContext()
		val := evaluate("root", scope, nterms["s"])
		var arr [][]interface{}
		if err := json.Unmarshal([]byte(val.(string)), &arr); err != nil {
			log.Fatal(err)
		}
		batches = append(batches, arr)
	}
	return batches
}

func compile(s parsec.Scanner) parsec.ParsecNode {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%v at %v", r, s.GetCursor())
		}
	}()
	root, _ := monster.Y(s)
	return root
}

func evaluate(
	name string, scope mcommon.Scope, forms []*mcommon.Form) interface{} {

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%v", r)
		}
	}()
	return monster.EvalForms(name, scope, forms)
}
