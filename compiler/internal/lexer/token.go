package lexer

import "fmt"

// TokKind enumerates token kinds produced by the lexer.
type TokKind int

const (
	TokKeyword TokKind = iota
	TokIdent
	TokLiteral
	TokOperator
	TokSymbol
	TokUnknown
)

var kindNames = [...]string{
	TokKeyword:  "Keyword",
	TokIdent:    "Identifier",
	TokLiteral:  "Literal",
	TokOperator: "Operator",
	TokSymbol:   "Symbol",
	TokUnknown:  "Unknown",
}

func (k TokKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokKind(%d)", int(k))
	}
	return kindNames[k]
}

func (k TokKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid token kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *TokKind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if n == string(b) {
			*k = TokKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", b)
}

// Token is a single lexeme with source position. Line and Col are 1-based and
// counted in code points.
type Token struct {
	Kind TokKind `json:"kind"`
	Lex  string  `json:"value"`
	Line int     `json:"line"`
	Col  int     `json:"col"`
}

// Is reports whether t has kind k and text lex.
func (t Token) Is(k TokKind, lex string) bool { return t.Kind == k && t.Lex == lex }

// ErrKind enumerates lexical error kinds.
type ErrKind int

const (
	ErrUnterminatedComment ErrKind = iota
	ErrMalformedNumber
	ErrUnterminatedString
	ErrUnknownChar
)

var errKindNames = [...]string{
	ErrUnterminatedComment: "UnterminatedBlockComment",
	ErrMalformedNumber:     "MalformedNumber",
	ErrUnterminatedString:  "UnterminatedString",
	ErrUnknownChar:         "UnknownChar",
}

func (k ErrKind) String() string {
	if k < 0 || int(k) >= len(errKindNames) {
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
	return errKindNames[k]
}

func (k ErrKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(errKindNames) {
		return nil, fmt.Errorf("invalid lexical error kind %d", int(k))
	}
	return []byte(errKindNames[k]), nil
}

// Key is the catalog key of the error kind in the diag "lexer" domain.
func (k ErrKind) Key() string {
	switch k {
	case ErrUnterminatedComment:
		return "unterminated_comment"
	case ErrMalformedNumber:
		return "malformed_number"
	case ErrUnterminatedString:
		return "unterminated_string"
	case ErrUnknownChar:
		return "unknown_char"
	}
	return fmt.Sprintf("invalid_%d", int(k))
}

// LexError is a scanning-time defect positioned at the start of the offending
// construct.
type LexError struct {
	Kind ErrKind `json:"kind"`
	Msg  string  `json:"message"`
	Line int     `json:"line"`
	Col  int     `json:"col"`
}

func (e LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}
