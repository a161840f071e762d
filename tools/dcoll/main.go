// Command dcoll exercise the ordered container family from the
// command line: bulk random loads, reference verification runs,
// grammar driven op streams and an interactive shell.
package main

import "fmt"
import "os"

func usage() {
	fmt.Printf("Usage : dcoll <command> [options]\n\n")
	fmt.Printf("Commands :\n")
	fmt.Printf("  load     bulk load random values, validate and log stats\n")
	fmt.Printf("  verify   random op stream against a reference model\n")
	fmt.Printf("  monster  op stream from a production grammar\n")
	fmt.Printf("  repl     interactive shell on an ordered map\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "load":
		doLoad(args)
	case "verify":
		doVerify(args)
	case "monster":
		doMonster(args)
	case "repl":
		doRepl(args)
	default:
		usage()
		os.Exit(1)
	}
}
