package lexer

import (
	"fmt"
	"unicode"

	"github.com/lexiscope/lexiscope/compiler/internal/lang"
)

// Lexer scans source into tokens in a single left-to-right pass. Malformed
// input never stops it, except for an unterminated block comment, which
// swallows the rest of the source.
type Lexer struct {
	src []rune
	i   int

	line int
	col  int

	cfg    *lang.Config
	errs   []LexError
	halted bool
}

// New returns a Lexer over src. A nil cfg selects lang.Default().
func New(src string, cfg *lang.Config) *Lexer {
	if cfg == nil {
		cfg = lang.Default()
	}
	return &Lexer{
		src:  []rune(src),
		line: 1,
		col:  1,
		cfg:  cfg,
	}
}

// Lex tokenizes src and returns every token together with the lexical errors
// found, both in source order.
func Lex(src string, cfg *lang.Config) ([]Token, []LexError) {
	lx := New(src, cfg)
	var toks []Token
	for {
		t, ok := lx.Next()
		if !ok {
			break
		}
		toks = append(toks, t)
	}
	return toks, lx.Errors()
}

// Errors returns the lexical errors recorded so far.
func (lx *Lexer) Errors() []LexError { return lx.errs }

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) peekAt(off int) (rune, bool) {
	if lx.i+off >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+off], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return ch, true
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

func (lx *Lexer) errorf(kind ErrKind, line, col int, format string, a ...any) {
	lx.errs = append(lx.errs, LexError{Kind: kind, Msg: fmt.Sprintf(format, a...), Line: line, Col: col})
}

// Next returns the next token, or false once the input is exhausted or
// scanning has stopped at an unterminated block comment.
func (lx *Lexer) Next() (Token, bool) {
	for !lx.halted && !lx.atEOF() {
		ch, _ := lx.peek()
		line, col := lx.line, lx.col

		if unicode.IsSpace(ch) {
			lx.advance()
			continue
		}

		if ch == '/' {
			if nx, ok := lx.peekAt(1); ok && nx == '/' {
				lx.skipLineComment()
				continue
			} else if ok && nx == '*' {
				if !lx.skipBlockComment() {
					lx.errorf(ErrUnterminatedComment, line, col, "unterminated block comment")
					lx.halted = true
					return Token{}, false
				}
				continue
			}
		}

		if isIdentStart(ch) {
			lex := lx.scanIdent()
			kind := TokIdent
			if lx.cfg.Keywords.Has(lex) {
				kind = TokKeyword
			}
			return Token{Kind: kind, Lex: lex, Line: line, Col: col}, true
		}

		if isDigit(ch) {
			lex, dots := lx.scanNumber()
			if dots > 1 {
				lx.errorf(ErrMalformedNumber, line, col, "malformed number %q", lex)
			}
			return Token{Kind: TokLiteral, Lex: lex, Line: line, Col: col}, true
		}

		if ch == '"' || ch == '\'' {
			lex, closed := lx.scanString(ch)
			if !closed {
				lx.errorf(ErrUnterminatedString, line, col, "unterminated string")
			}
			return Token{Kind: TokLiteral, Lex: lex, Line: line, Col: col}, true
		}

		if nx, ok := lx.peekAt(1); ok {
			if op := string([]rune{ch, nx}); lx.cfg.TwoCharOps.Has(op) {
				lx.advance()
				lx.advance()
				return Token{Kind: TokOperator, Lex: op, Line: line, Col: col}, true
			}
		}

		s := string(ch)
		lx.advance()
		switch {
		case lx.cfg.OneCharOps.Has(s):
			return Token{Kind: TokOperator, Lex: s, Line: line, Col: col}, true
		case lx.cfg.Symbols.Has(s):
			return Token{Kind: TokSymbol, Lex: s, Line: line, Col: col}, true
		}
		lx.errorf(ErrUnknownChar, line, col, "unknown character %q", ch)
		return Token{Kind: TokUnknown, Lex: s, Line: line, Col: col}, true
	}
	return Token{}, false
}

// ----- scanning helpers -----

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }
func isDigit(r rune) bool      { return r >= '0' && r <= '9' }

func (lx *Lexer) skipLineComment() {
	for {
		ch, ok := lx.peek()
		if !ok || ch == '\n' {
			return
		}
		lx.advance()
	}
}

// skipBlockComment consumes "/* ... */" and reports whether the closing
// "*/" was found.
func (lx *Lexer) skipBlockComment() bool {
	lx.advance() // /
	lx.advance() // *
	for !lx.atEOF() {
		ch, _ := lx.advance()
		if nx, ok := lx.peek(); ch == '*' && ok && nx == '/' {
			lx.advance()
			return true
		}
	}
	return false
}

func (lx *Lexer) scanIdent() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

// scanNumber consumes a run of digits and dots and returns it with the number
// of dots seen.
func (lx *Lexer) scanNumber() (string, int) {
	start, dots := lx.i, 0
	for {
		r, ok := lx.peek()
		if !ok || !(isDigit(r) || r == '.') {
			break
		}
		if r == '.' {
			dots++
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i]), dots
}

// scanString consumes a quoted literal, quotes and escapes included verbatim.
// A backslash always takes the following character with it.
func (lx *Lexer) scanString(quote rune) (string, bool) {
	start := lx.i
	lx.advance() // opening quote
	for {
		r, ok := lx.advance()
		if !ok {
			return string(lx.src[start:lx.i]), false
		}
		switch r {
		case '\\':
			lx.advance()
		case quote:
			return string(lx.src[start:lx.i]), true
		}
	}
}
