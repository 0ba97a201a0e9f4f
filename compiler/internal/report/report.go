// Package report renders analysis results for people and tools: token
// tables, grouped diagnostics, plain listings and NDJSON.
package report

import (
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lexiscope/lexiscope/compiler/internal/analysis"
	"github.com/lexiscope/lexiscope/compiler/internal/diag"
	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
	"github.com/lexiscope/lexiscope/compiler/internal/term"
)

// Stats are the counters shown next to a result.
type Stats struct {
	Chars   int           `json:"chars"`
	Lines   int           `json:"lines"`
	Tokens  int           `json:"tokens"`
	Elapsed time.Duration `json:"elapsedNs"`
}

// Measure counts code points and lines of src. An empty text is one line.
func Measure(src string) Stats {
	return Stats{Chars: utf8.RuneCountInString(src), Lines: strings.Count(src, "\n") + 1}
}

// normalizeShort trims long texts and escapes newlines/tabs for one-line display.
func normalizeShort(s string) string {
	if utf8.RuneCountInString(s) > 40 {
		s = string([]rune(s)[:37]) + "..."
	}
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// WriteTokenTable writes a numbered "# | Kind | Value" table.
func WriteTokenTable(w io.Writer, toks []lexer.Token) {
	term.Wprintf(w, "%-5s %-11s %s\n", "#", "Kind", "Value")
	for i, t := range toks {
		term.Wprintf(w, "%-5d %-11s %s\n", i+1, t.Kind, normalizeShort(t.Lex))
	}
}

// WriteTokenListing writes one "line:col  Kind  'value'" row per token.
func WriteTokenListing(w io.Writer, toks []lexer.Token) {
	for _, t := range toks {
		term.Wprintf(w, "%d:%d  %-10s  '%s'\n", t.Line, t.Col, t.Kind, normalizeShort(t.Lex))
	}
}

// WriteText writes the full human report for one analyzed file: stats, the
// token table, then diagnostics grouped by category with source carets.
func WriteText(w io.Writer, name, src string, r *analysis.Result, st Stats) {
	term.Wprintf(w, "== %s: %d tokens, %d chars, %d lines, %s\n",
		name, st.Tokens, st.Chars, st.Lines, st.Elapsed.Round(time.Microsecond))
	WriteTokenTable(w, r.Tokens)
	if r.Valid() {
		term.Wprintf(w, "\n✔ no lexical, syntax or semantic errors\n")
		return
	}
	groups := map[analysis.Category][]diag.Diagnostic{}
	for _, f := range r.Findings() {
		groups[f.Category] = append(groups[f.Category], f.Diagnostic)
	}
	for _, c := range []analysis.Category{analysis.Lexical, analysis.Structural, analysis.Semantic} {
		ds := groups[c]
		if len(ds) == 0 {
			continue
		}
		term.Wprintf(w, "\n%s errors (%d):\n", c, len(ds))
		for _, d := range ds {
			term.Wprintf(w, "%s", diag.Render(d, "error", name, src))
		}
	}
}
