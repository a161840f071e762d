package main

import "flag"
import "fmt"
import "strings"

import "github.com/burner/dcollections/api"
import "github.com/burner/dcollections/treemap"
import s "github.com/bnclabs/gosettings"
import "github.com/chzyer/readline"
import "github.com/fatih/color"

var replopts struct {
	history string
}

func parseReplopts(args []string) {
	f := flag.NewFlagSet("repl", flag.ExitOnError)
	f.StringVar(&replopts.history, "history", "/tmp/dcoll-readline.tmp",
		"readline history file")
	f.Parse(args)
}

func replusage() {
	fmt.Printf(`Available commands:
  set <key> <value>
  get <key>
  del <key>
  has <key>
  count
  dump
  validate
  stats
  exit
`)
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("set"),
	readline.PcItem("get"),
	readline.PcItem("del"),
	readline.PcItem("has"),
	readline.PcItem("count"),
	readline.PcItem("dump"),
	readline.PcItem("validate"),
	readline.PcItem("stats"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

// doRepl interactive shell on an ordered string map.
func doRepl(args []string) {
	parseReplopts(args)

	l, err := readline.NewEx(&readline.Config{
		Prompt:       "dcoll> ",
		HistoryFile:  replopts.history,
		AutoComplete: completer,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	setts := s.Settings{"arena.capacity": int64(64 * 1024 * 1024)}
	m := treemap.New[string, string]("repl", api.OrderedCompare[string](), nil, setts)
	defer m.Destroy()

	pass, fail := color.GreenString("ok"), color.RedString("no")
	for {
		line, err := l.Readline()
		if err != nil {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "set":
			if len(fields) != 3 {
				replusage()
				continue
			}
			if m.Set(fields[1], fields[2]) {
				fmt.Printf("%v: added\n", pass)
			} else {
				fmt.Printf("%v: updated\n", pass)
			}
		case "get":
			if len(fields) != 2 {
				replusage()
				continue
			}
			if value, ok := m.Get(fields[1]); ok {
				fmt.Printf("%v: %q\n", pass, value)
			} else {
				fmt.Printf("%v: missing\n", fail)
			}
		case "del":
			if len(fields) != 2 {
				replusage()
				continue
			}
			if m.Delete(fields[1]) {
				fmt.Printf("%v: deleted\n", pass)
			} else {
				fmt.Printf("%v: missing\n", fail)
			}
		case "has":
			if len(fields) != 2 {
				replusage()
				continue
			}
			if m.Has(fields[1]) {
				fmt.Printf("%v\n", pass)
			} else {
				fmt.Printf("%v\n", fail)
			}
		case "count":
			fmt.Printf("%v\n", m.Count())
		case "dump":
			cur := m.Begin()
			for cur.Empty() == false {
				item, _ := cur.Elem()
				fmt.Printf("  %q : %q\n", item.Key, item.Value)
				cur.Next()
			}
		case "validate":
			m.Validate()
			fmt.Printf("%v\n", pass)
		case "stats":
			for key, value := range m.Stats() {
				fmt.Printf("  %v : %v\n", key, value)
			}
		case "exit":
			return
		default:
			replusage()
		}
	}
}
