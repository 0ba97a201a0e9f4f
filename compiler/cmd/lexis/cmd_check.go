package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"

	"github.com/lexiscope/lexiscope/compiler/internal/analysis"
	"github.com/lexiscope/lexiscope/compiler/internal/batch"
	"github.com/lexiscope/lexiscope/compiler/internal/report"
	"github.com/lexiscope/lexiscope/compiler/internal/term"
)

/* ---------- check ---------- */

const checkUsage = "usage: lexis check [--config=f] [--format=text|json] [--jobs=N] [--verbose] <file|dir>..."

// fileReport is the JSON row for one analyzed file.
type fileReport struct {
	File   string           `json:"file"`
	Valid  bool             `json:"valid"`
	Stats  report.Stats     `json:"stats"`
	Result *analysis.Result `json:"result"`
}

func cmdCheck(args []string) int {
	a, err := parseArgs(args, []string{"config", "format", "jobs"}, []string{"verbose"})
	if err != nil || len(a.files) == 0 {
		term.Eprintln(checkUsage)
		return 2
	}
	format := a.values["format"]
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "json" {
		term.Eprintln(checkUsage)
		return 2
	}
	jobs, err := a.intValue("jobs", 0)
	if err != nil {
		term.Eprintf("%v\n", err)
		return 2
	}
	term.Verbose = a.bools["verbose"]

	cfg, err := loadConfig(a.values["config"])
	if err != nil {
		term.Eprintf("%v\n", err)
		return 1
	}

	files, loadErr := batch.Load(a.files)
	if loadErr != nil {
		term.Eprintf("%v\n", loadErr)
	}
	term.Tracef("load", "%d file(s)", len(files))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	outs, err := batch.Run(ctx, files, cfg, jobs)
	if err != nil {
		term.Eprintf("check: %v\n", err)
		return 1
	}

	rows := make([]fileReport, 0, len(outs))
	for _, o := range outs {
		st := report.Measure(o.File.Src)
		st.Tokens = len(o.Result.Tokens)
		st.Elapsed = o.Elapsed
		term.Tracef("analyze", "%s: %d tokens, %d finding(s) in %s", o.File.Path, st.Tokens, o.Result.ErrorCount(), o.Elapsed)
		if format == "text" {
			report.WriteText(term.Stdout, o.File.Path, o.File.Src, o.Result, st)
			term.Printf("\n")
			continue
		}
		rows = append(rows, fileReport{File: o.File.Path, Valid: o.Result.Valid(), Stats: st, Result: o.Result})
	}
	if format == "json" {
		enc := json.NewEncoder(term.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			term.Eprintf("encode: %v\n", err)
			return 1
		}
	}

	failed := batch.Failed(outs)
	term.Eprintf("summary: %d file(s), %d with findings\n", len(outs), failed)
	if failed > 0 || loadErr != nil {
		return 1
	}
	return 0
}
