package check

import "github.com/lexiscope/lexiscope/compiler/internal/lexer"

// tiny generic stack helpers
func push[T any](s []T, v T) []T { return append(s, v) }
func pop[T any](s []T) []T       { return s[:len(s)-1] }
func top[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}

/* ---------- token helpers ---------- */

func isDeclKeyword(t lexer.Token) bool {
	return t.Kind == lexer.TokKeyword && (t.Lex == "let" || t.Lex == "const" || t.Lex == "var")
}

// tokenAt returns toks[i] when i is in range.
func tokenAt(toks []lexer.Token, i int) (lexer.Token, bool) {
	if i < 0 || i >= len(toks) {
		return lexer.Token{}, false
	}
	return toks[i], true
}
