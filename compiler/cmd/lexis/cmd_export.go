package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
	"github.com/lexiscope/lexiscope/compiler/internal/report"
	"github.com/lexiscope/lexiscope/compiler/internal/term"
)

/* ---------- export ---------- */

const exportUsage = "usage: lexis export [--config=f] [--format=text|ndjson] [--out=path] <file>"

func cmdExport(args []string) int {
	a, err := parseArgs(args, []string{"config", "format", "out"}, nil)
	if err != nil || len(a.files) != 1 {
		term.Eprintln(exportUsage)
		return 2
	}
	format := a.values["format"]
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "ndjson" {
		term.Eprintln(exportUsage)
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
	toks, lexErrs := lexer.Lex(string(data), cfg)

	var buf bytes.Buffer
	if format == "ndjson" {
		if err := report.WriteNDJSON(&buf, toks); err != nil {
			term.Eprintf("%v\n", err)
			return 1
		}
	} else {
		report.WriteTokenListing(&buf, toks)
	}

	if err := writeOut(a.values["out"], buf.Bytes()); err != nil {
		term.Eprintf("%v\n", err)
		return 1
	}
	if len(lexErrs) > 0 {
		term.Eprintf("note: %d lexical error(s); run 'lexis lex %s' for details\n", len(lexErrs), path)
	}
	return 0
}

func writeOut(path string, data []byte) error {
	if path == "" {
		_, err := term.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	term.Eprintf("wrote %s\n", path)
	return nil
}
