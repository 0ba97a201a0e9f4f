package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
)

// WriteNDJSON writes one JSON token per line:
//
//	{"kind":"Keyword","value":"let","line":1,"col":1}
func WriteNDJSON(w io.Writer, toks []lexer.Token) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, t := range toks {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode token %d:%d: %w", t.Line, t.Col, err)
		}
	}
	return nil
}

// ReadNDJSON reads tokens written by WriteNDJSON. Lines that fail to parse
// are skipped but counted in the returned error.
func ReadNDJSON(r io.Reader) ([]lexer.Token, error) {
	var toks []lexer.Token

	sc := bufio.NewScanner(r)
	// long string literals make for long rows
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	lineNo := 0
	var badLines []string
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if raw == "" {
			continue
		}
		var t lexer.Token
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			if len(badLines) < 5 {
				badLines = append(badLines, fmt.Sprintf("L%d: %s", lineNo, raw))
			}
			continue
		}
		toks = append(toks, t)
	}
	if err := sc.Err(); err != nil {
		return toks, err
	}
	if len(badLines) > 0 {
		return toks, fmt.Errorf("ignored malformed NDJSON line(s), first few: %s", strings.Join(badLines, " | "))
	}
	return toks, nil
}
