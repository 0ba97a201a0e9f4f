package check

import (
	"strconv"
	"strings"

	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
)

/* ---------- kinds ---------- */

// Kind is the primitive type bucket inferred for a variable.
type Kind int

const (
	KindUnknown Kind = iota
	KindNumber
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// kindOf classifies the right-hand side of an assignment. Only literals and
// the words true/false carry a kind.
func kindOf(t lexer.Token) Kind {
	if t.Lex == "true" || t.Lex == "false" {
		return KindBool
	}
	if t.Kind != lexer.TokLiteral {
		return KindUnknown
	}
	if strings.HasPrefix(t.Lex, `"`) || strings.HasPrefix(t.Lex, "'") {
		return KindString
	}
	if _, err := strconv.ParseFloat(t.Lex, 64); err == nil {
		return KindNumber
	}
	return KindUnknown
}
