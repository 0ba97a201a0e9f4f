package main

import (
	"flag"
	"os"

	"github.com/lexiscope/lexiscope/compiler/internal/term"
	"github.com/lexiscope/lexiscope/compiler/internal/version"
)

/* ---------- main ---------- */

func main() {
	flag.Usage = usage
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 2
	}
	switch args[0] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
		return 0
	case "help", "--help", "-h":
		usage()
		return 0
	case "lex":
		return cmdLex(args[1:])
	case "check":
		return cmdCheck(args[1:])
	case "export":
		return cmdExport(args[1:])
	case "lex-diff":
		return cmdLexDiff(args[1:])
	default:
		term.Eprintf("unknown command: %s\n\n", args[0])
		usage()
		return 2
	}
}
