package report

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/lexiscope/lexiscope/compiler/internal/analysis"
	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
)

func TestMeasure(t *testing.T) {
	st := Measure("let é = 1;\nx;")
	if st.Chars != 13 || st.Lines != 2 {
		t.Fatalf("stats = %+v", st)
	}
	if st := Measure(""); st.Chars != 0 || st.Lines != 1 {
		t.Fatalf("empty stats = %+v", st)
	}
}

func TestNDJSONRoundTrip(t *testing.T) {
	toks, _ := lexer.Lex("let s = \"a\\\"b\";\nif (s == 'x') {}", nil)
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, toks); err != nil {
		t.Fatalf("WriteNDJSON: %v", err)
	}
	if !strings.HasPrefix(buf.String(), `{"kind":"Keyword","value":"let","line":1,"col":1}`) {
		t.Fatalf("unexpected first row: %s", buf.String())
	}
	back, err := ReadNDJSON(&buf)
	if err != nil {
		t.Fatalf("ReadNDJSON: %v", err)
	}
	if !reflect.DeepEqual(back, toks) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", back, toks)
	}
}

func TestReadNDJSONSkipsBadLines(t *testing.T) {
	raw := "\ufeff{\"kind\":\"Identifier\",\"value\":\"a\",\"line\":1,\"col\":1}\n" +
		"garbage\n\n" +
		"{\"kind\":\"Nope\",\"value\":\"b\",\"line\":1,\"col\":3}\n"
	toks, err := ReadNDJSON(strings.NewReader(raw))
	if err == nil || !strings.Contains(err.Error(), "L2: garbage") {
		t.Fatalf("err = %v", err)
	}
	if len(toks) != 1 || toks[0].Lex != "a" {
		t.Fatalf("toks = %+v", toks)
	}
}

func TestDiff(t *testing.T) {
	want, _ := lexer.Lex("let a = 1;", nil)
	got, _ := lexer.Lex("let b = 1", nil)
	rows := Diff(want, got, 0)
	if len(rows) != 2 || rows[0].Index != 1 || rows[1].Index != 4 || rows[1].HasGot {
		t.Fatalf("rows = %+v", rows)
	}
	if rows := Diff(want, got, 1); len(rows) != 1 {
		t.Fatalf("limit ignored: %+v", rows)
	}
	if rows := Diff(want, want, 0); len(rows) != 0 {
		t.Fatalf("identical streams differ: %+v", rows)
	}
	var buf bytes.Buffer
	WriteDiff(&buf, Diff(want, got, 0))
	if !strings.Contains(buf.String(), "1:5 'a'") || !strings.Contains(buf.String(), "—") {
		t.Fatalf("diff output:\n%s", buf.String())
	}
}

func TestTokenListing(t *testing.T) {
	toks, _ := lexer.Lex("x\t= 'a\tb';", nil)
	var buf bytes.Buffer
	WriteTokenListing(&buf, toks)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("listing:\n%s", buf.String())
	}
	if lines[2] != `1:5  Literal     ''a\tb''` {
		t.Fatalf("row = %q", lines[2])
	}
}

func TestWriteTextGroupsByCategory(t *testing.T) {
	src := "if x) { let a = 1; a = 'q'; } @"
	r := analysis.Analyze(src, nil)
	st := Measure(src)
	st.Tokens = len(r.Tokens)
	var buf bytes.Buffer
	WriteText(&buf, "demo.lx", src, r, st)
	out := buf.String()
	lex := strings.Index(out, "lexical errors (1):")
	syn := strings.Index(out, "syntax errors (2):")
	sem := strings.Index(out, "semantic errors (2):")
	if lex < 0 || syn < lex || sem < syn {
		t.Fatalf("sections missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, " --> demo.lx:1:4") {
		t.Fatalf("missing caret location:\n%s", out)
	}
}

func TestWriteTextClean(t *testing.T) {
	src := "let x = 5;"
	r := analysis.Analyze(src, nil)
	var buf bytes.Buffer
	WriteText(&buf, "ok.lx", src, r, Measure(src))
	if !strings.Contains(buf.String(), "no lexical, syntax or semantic errors") {
		t.Fatalf("output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "1     Keyword     let") {
		t.Fatalf("token table missing:\n%s", buf.String())
	}
}
