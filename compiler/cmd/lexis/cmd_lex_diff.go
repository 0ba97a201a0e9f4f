package main

import (
	"os"

	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
	"github.com/lexiscope/lexiscope/compiler/internal/report"
	"github.com/lexiscope/lexiscope/compiler/internal/term"
)

/* ---------- lex-diff (saved listing vs fresh lex) ---------- */

func cmdLexDiff(args []string) int {
	a, err := parseArgs(args, []string{"config", "limit"}, nil)
	if err != nil || len(a.files) != 2 {
		term.Eprintln("usage: lexis lex-diff [--config=f] [--limit=N] <tokens.ndjson> <file>")
		return 2
	}
	limit, err := a.intValue("limit", 0)
	if err != nil {
		term.Eprintf("%v\n", err)
		return 2
	}
	cfg, err := loadConfig(a.values["config"])
	if err != nil {
		term.Eprintf("%v\n", err)
		return 1
	}

	saved, src := a.files[0], a.files[1]
	f, err := os.Open(saved)
	if err != nil {
		term.Eprintf("open %s: %v\n", saved, err)
		return 1
	}
	want, rerr := report.ReadNDJSON(f)
	f.Close()
	if rerr != nil {
		term.Eprintf("ndjson parse warning: %v\n", rerr)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		term.Eprintf("read %s: %v\n", src, err)
		return 1
	}
	got, _ := lexer.Lex(string(data), cfg)

	rows := report.Diff(want, got, limit)
	if len(rows) == 0 {
		term.Printf("%d token(s) match\n", len(got))
		return 0
	}
	report.WriteDiff(term.Stdout, rows)
	return 1
}
