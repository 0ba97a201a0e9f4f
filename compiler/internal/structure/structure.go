// Package structure validates bracket nesting and the few token adjacency
// rules of the statement language, without building a syntax tree.
package structure

import (
	"github.com/lexiscope/lexiscope/compiler/internal/diag"
	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
)

// Result is the outcome of a structural check. Valid is false iff Errors is
// non-empty.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []diag.Diagnostic `json:"errors"`
}

var openerFor = map[string]string{")": "(", "}": "{"}

// Check scans toks once with an explicit stack of open brackets.
func Check(toks []lexer.Token) Result {
	var (
		errs  []diag.Diagnostic
		stack []lexer.Token
	)
	report := func(key string, t lexer.Token, format string, a ...any) {
		errs = append(errs, diag.New(diag.DomainStructure, key, diag.At(t.Line, t.Col), format, a...))
	}
	at := func(i int) (lexer.Token, bool) {
		if i < len(toks) {
			return toks[i], true
		}
		return lexer.Token{}, false
	}

	for i, t := range toks {
		switch {
		case t.Is(lexer.TokSymbol, "(") || t.Is(lexer.TokSymbol, "{"):
			stack = append(stack, t)

		case t.Is(lexer.TokSymbol, ")") || t.Is(lexer.TokSymbol, "}"):
			want := openerFor[t.Lex]
			if len(stack) == 0 {
				report("unmatched_closer", t, "expected '%s' before '%s' at %d:%d", want, t.Lex, t.Line, t.Col)
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if open.Lex != want {
				report("mismatched_closer", t, "expected '%s' before '%s' at %d:%d (found '%s' opened at %d:%d)",
					want, t.Lex, t.Line, t.Col, open.Lex, open.Line, open.Col)
			}

		case t.Kind == lexer.TokKeyword && (t.Lex == "if" || t.Lex == "while" || t.Lex == "for"):
			if nx, ok := at(i + 1); !ok || !nx.Is(lexer.TokSymbol, "(") {
				report("missing_paren", t, "'%s' at %d:%d must be followed by '('", t.Lex, t.Line, t.Col)
			}

		case t.Kind == lexer.TokKeyword && (t.Lex == "let" || t.Lex == "const" || t.Lex == "var"):
			if nx, ok := at(i + 1); !ok || nx.Kind != lexer.TokIdent {
				report("missing_decl_name", t, "'%s' at %d:%d must be followed by a variable name", t.Lex, t.Line, t.Col)
			}
			if t.Lex == "const" {
				if eq, ok := at(i + 2); !ok || !eq.Is(lexer.TokOperator, "=") {
					report("const_without_init", t, "const requires initialization (at %d:%d)", t.Line, t.Col)
				}
			}
		}
	}

	for _, open := range stack {
		report("unclosed_opener", open, "unmatched '%s' at %d:%d is never closed", open.Lex, open.Line, open.Col)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}
