package report

import (
	"io"
	"strings"

	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
	"github.com/lexiscope/lexiscope/compiler/internal/term"
)

// Mismatch is one index where two token streams disagree. HasWant or HasGot
// is false when that stream ended first.
type Mismatch struct {
	Index     int
	Want, Got lexer.Token
	HasWant   bool
	HasGot    bool
}

// Diff aligns want and got by index and returns the rows that differ. If
// limit > 0 at most limit rows are returned.
func Diff(want, got []lexer.Token, limit int) []Mismatch {
	n := len(want)
	if len(got) > n {
		n = len(got)
	}
	var out []Mismatch
	for i := 0; i < n; i++ {
		m := Mismatch{Index: i, HasWant: i < len(want), HasGot: i < len(got)}
		if m.HasWant {
			m.Want = want[i]
		}
		if m.HasGot {
			m.Got = got[i]
		}
		if m.HasWant && m.HasGot && m.Want == m.Got {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func cell(t lexer.Token, ok bool) (string, string) {
	if !ok {
		return "—", ""
	}
	return t.Kind.String(), fmtPos(t) + " '" + normalizeShort(t.Lex) + "'"
}

func fmtPos(t lexer.Token) string {
	var b strings.Builder
	term.Bprintf(&b, "%d:%d", t.Line, t.Col)
	return b.String()
}

// WriteDiff prints mismatches side by side.
func WriteDiff(w io.Writer, rows []Mismatch) {
	term.Wprintf(w, "%-6s | %-11s | %-30s || %-11s | %-30s\n", "idx", "want KIND", "want TEXT", "got KIND", "got TEXT")
	term.Wprintf(w, "%s\n", strings.Repeat("-", 6+3+11+3+30+4+11+3+30))
	for _, r := range rows {
		wk, wt := cell(r.Want, r.HasWant)
		gk, gt := cell(r.Got, r.HasGot)
		term.Wprintf(w, "%-6d | %-11s | %-30s || %-11s | %-30s\n", r.Index, wk, wt, gk, gt)
	}
}
