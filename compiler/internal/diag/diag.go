package diag

import "fmt"

// Pos marks a 1-based line/column location in a file.
type Pos struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Span marks a half-open range [Start, End) within a file. A zero End means
// a single column.
type Span struct {
	Start Pos `json:"start"`
	End   Pos `json:"end"`
}

// At returns a single-column span.
func At(line, col int) Span { return Span{Start: Pos{Line: line, Col: col}} }

// Diagnostic is an analyzer message with a catalog code and a span.
type Diagnostic struct {
	Code string `json:"code"`
	Span Span   `json:"span"`
	Msg  string `json:"message"`
	Help string `json:"help,omitempty"`
}

func (d Diagnostic) Error() string {
	if d.Span.Start.Line == 0 {
		return d.Msg
	}
	return fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Col, d.Msg)
}

// New builds a diagnostic whose code and help come from the catalog entry
// (domain, key).
func New(domain, key string, sp Span, format string, a ...any) Diagnostic {
	ce := MustLookup(domain, key, "", key)
	return Diagnostic{Code: ce.ID, Span: sp, Msg: fmt.Sprintf(format, a...), Help: ce.Help}
}
