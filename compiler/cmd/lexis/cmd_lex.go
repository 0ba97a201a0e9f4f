package main

import (
	"os"

	"github.com/lexiscope/lexiscope/compiler/internal/analysis"
	"github.com/lexiscope/lexiscope/compiler/internal/diag"
	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
	"github.com/lexiscope/lexiscope/compiler/internal/report"
	"github.com/lexiscope/lexiscope/compiler/internal/term"
)

/* ---------- lex ---------- */

func cmdLex(args []string) int {
	a, err := parseArgs(args, []string{"config"}, nil)
	if err != nil || len(a.files) != 1 {
		term.Eprintln("usage: lexis lex [--config=f] <file>")
		return 2
	}
	cfg, err := loadConfig(a.values["config"])
	if err != nil {
		term.Eprintf("%v\n", err)
		return 1
	}
	path := a.files[0]
	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("read %s: %v\n", path, err)
		return 1
	}
	src := string(data)
	toks, errs := lexer.Lex(src, cfg)
	report.WriteTokenListing(term.Stdout, toks)
	next := 0
	for _, e := range errs {
		var d diag.Diagnostic
		d, next = analysis.LexDiagnosticFrom(e, toks, next)
		term.Eprintf("%s", diag.Render(d, "error", path, src))
	}
	if len(errs) > 0 {
		return 1
	}
	return 0
}
