package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestTracefHonoursVerbose(t *testing.T) {
	var buf bytes.Buffer
	old, oldV := Stderr, Verbose
	defer func() { Stderr, Verbose = old, oldV }()
	Stderr = &buf

	Verbose = false
	Tracef("lex", "%d tokens", 3)
	if buf.Len() != 0 {
		t.Fatalf("quiet mode wrote %q", buf.String())
	}
	Verbose = true
	Tracef("lex", "%d tokens", 3)
	if got := buf.String(); got != "[lex] 3 tokens\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBuilderAndWriter(t *testing.T) {
	var b strings.Builder
	Bprintf(&b, "%s=%d", "a", 1)
	var w bytes.Buffer
	Wprintf(&w, "[%s]", b.String())
	if w.String() != "[a=1]" {
		t.Fatalf("got %q", w.String())
	}
}
