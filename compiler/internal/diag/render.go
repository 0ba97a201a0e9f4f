package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Render formats d in the Rust style: a header line, a "-->" location, the
// offending source line and a caret underline.
//
//	error[C0005]: variable 'x' used without declaration
//	 --> main.lx:1:1
//	 1 | x = 5;
//	   | ^
//	help: declare it with let, const or var first
func Render(d Diagnostic, level, file, src string) string {
	var b strings.Builder
	if d.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", level, d.Code, d.Msg)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", level, d.Msg)
	}
	line, col := d.Span.Start.Line, d.Span.Start.Col
	if line > 0 && col > 0 {
		if file != "" {
			fmt.Fprintf(&b, " --> %s:%d:%d\n", file, line, col)
		} else {
			fmt.Fprintf(&b, " --> %d:%d\n", line, col)
		}
		lineText := getLineText(src, line)
		lnStr := fmt.Sprintf("%d", line)
		fmt.Fprintf(&b, " %s | %s\n", lnStr, expandTabs(lineText))
		b.WriteString(" " + strings.Repeat(" ", len(lnStr)) + " | ")
		endCol := 0
		if d.Span.End.Line == line {
			endCol = d.Span.End.Col
		}
		writeUnderline(&b, lineText, col, endCol)
		b.WriteByte('\n')
	}
	if strings.TrimSpace(d.Help) != "" {
		fmt.Fprintf(&b, "help: %s\n", d.Help)
	}
	return b.String()
}

func writeUnderline(b *strings.Builder, line string, col, endCol int) {
	vis := visualWidth(line, col-1)
	b.WriteString(strings.Repeat(" ", vis))
	b.WriteByte('^')
	if endCol > col+1 {
		b.WriteString(strings.Repeat("~", endCol-col-1))
	}
}

func getLineText(src string, line int) string {
	if line <= 0 {
		return ""
	}
	cur := 1
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			if cur == line {
				return src[start:i]
			}
			cur++
			start = i + 1
		}
	}
	if cur == line {
		return src[start:]
	}
	return ""
}

const tabWidth = 4

func expandTabs(s string) string { return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth)) }

// visualWidth is the display width of the first n code points of s.
func visualWidth(s string, n int) int {
	w := 0
	for i := 0; i < n && len(s) > 0; i++ {
		r, sz := utf8.DecodeRuneInString(s)
		if r == '\t' {
			w += tabWidth
		} else {
			w++
		}
		s = s[sz:]
	}
	return w
}
