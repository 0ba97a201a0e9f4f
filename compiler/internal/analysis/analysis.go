// Package analysis runs the three analyzer stages over one source text and
// collects their output.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lexiscope/lexiscope/compiler/internal/check"
	"github.com/lexiscope/lexiscope/compiler/internal/diag"
	"github.com/lexiscope/lexiscope/compiler/internal/lang"
	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
	"github.com/lexiscope/lexiscope/compiler/internal/structure"
)

// Result holds everything one Analyze call produced.
type Result struct {
	Tokens     []lexer.Token    `json:"tokens"`
	LexErrors  []lexer.LexError `json:"lexErrors"`
	Structural structure.Result `json:"structural"`
	Semantic   check.Result     `json:"semantic"`
}

// Analyze lexes src once and feeds the tokens to the structural and scope
// checkers. A nil cfg selects lang.Default(). It keeps no state between
// calls.
func Analyze(src string, cfg *lang.Config) *Result {
	if cfg == nil {
		cfg = lang.Default()
	}
	toks, lexErrs := lexer.Lex(src, cfg)
	return &Result{
		Tokens:     toks,
		LexErrors:  lexErrs,
		Structural: structure.Check(toks),
		Semantic:   check.Check(toks, cfg.Exempt),
	}
}

// Valid reports whether no stage found a problem.
func (r *Result) Valid() bool {
	return len(r.LexErrors) == 0 && r.Structural.Valid && r.Semantic.Valid
}

// ErrorCount is the total number of findings over all stages.
func (r *Result) ErrorCount() int {
	return len(r.LexErrors) + len(r.Structural.Errors) + len(r.Semantic.Errors)
}

// Category names the stage a diagnostic came from.
type Category int

const (
	Lexical Category = iota
	Structural
	Semantic
)

func (c Category) String() string {
	switch c {
	case Lexical:
		return "lexical"
	case Structural:
		return "syntax"
	case Semantic:
		return "semantic"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Finding is a diagnostic tagged with its category.
type Finding struct {
	Category Category
	diag.Diagnostic
}

// Findings merges all three error lists, lexical first, each in discovery
// order.
func (r *Result) Findings() []Finding {
	out := make([]Finding, 0, r.ErrorCount())
	next := 0
	for _, e := range r.LexErrors {
		var d diag.Diagnostic
		d, next = LexDiagnosticFrom(e, r.Tokens, next)
		out = append(out, Finding{Category: Lexical, Diagnostic: d})
	}
	for _, d := range r.Structural.Errors {
		out = append(out, Finding{Category: Structural, Diagnostic: d})
	}
	for _, d := range r.Semantic.Errors {
		out = append(out, Finding{Category: Semantic, Diagnostic: d})
	}
	return out
}

// LexDiagnostic converts a lexical error into a catalog diagnostic. When a
// token starts at the error position its extent becomes the span.
func LexDiagnostic(e lexer.LexError, toks []lexer.Token) diag.Diagnostic {
	i := sort.Search(len(toks), func(i int) bool { return !before(toks[i], e) })
	d, _ := LexDiagnosticFrom(e, toks, i)
	return d
}

// LexDiagnosticFrom is LexDiagnostic with the token search starting at
// toks[from]. It returns the index to resume from for the next error, so a
// caller walking errors in source order visits every token once.
func LexDiagnosticFrom(e lexer.LexError, toks []lexer.Token, from int) (diag.Diagnostic, int) {
	d := diag.New(diag.DomainLexer, e.Kind.Key(), diag.At(e.Line, e.Col), "%s", e.Msg)
	i := from
	for i < len(toks) && before(toks[i], e) {
		i++
	}
	if i < len(toks) && toks[i].Line == e.Line && toks[i].Col == e.Col {
		t := toks[i]
		if n := len([]rune(t.Lex)); n > 1 && !strings.ContainsRune(t.Lex, '\n') {
			d.Span.End = diag.Pos{Line: t.Line, Col: t.Col + n}
		}
	}
	return d, i
}

// before reports whether t starts earlier in the source than e.
func before(t lexer.Token, e lexer.LexError) bool {
	return t.Line < e.Line || (t.Line == e.Line && t.Col < e.Col)
}
