package analysis

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lexiscope/lexiscope/compiler/internal/lang"
	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
)

func TestCleanStatement(t *testing.T) {
	r := Analyze("let x = 5;", nil)
	want := []string{"let:Keyword", "x:Identifier", "=:Operator", "5:Literal", ";:Symbol"}
	var got []string
	for _, tok := range r.Tokens {
		got = append(got, tok.Lex+":"+tok.Kind.String())
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	if !r.Valid() || r.ErrorCount() != 0 {
		t.Fatalf("expected no errors, got %v", r.Findings())
	}
}

func TestAnalyzeIsPure(t *testing.T) {
	srcs := []string{
		"let a = 1; { let a = 'x'; b = a; } a = \"s\"; (",
		"const y; y = 2; foo(); 3.4.5 @ \"open",
		"",
	}
	for _, src := range srcs {
		a, b := Analyze(src, nil), Analyze(src, nil)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("Analyze(%q) differs between calls:\n%+v\n%+v", src, a, b)
		}
	}
}

func TestCategoriesStayApart(t *testing.T) {
	r := Analyze("if x) { let a = 1; a = 'x'; } @", nil)
	if len(r.LexErrors) != 1 || len(r.Structural.Errors) != 2 || r.Semantic.Valid {
		t.Fatalf("result = %+v", r)
	}
	fs := r.Findings()
	if len(fs) != r.ErrorCount() {
		t.Fatalf("findings %d, count %d", len(fs), r.ErrorCount())
	}
	if fs[0].Category != Lexical || fs[1].Category != Structural || fs[len(fs)-1].Category != Semantic {
		t.Fatalf("findings out of order: %+v", fs)
	}
}

func TestUndeclaredIsOnlySemantic(t *testing.T) {
	r := Analyze("x = 5;", nil)
	if !r.Structural.Valid {
		t.Fatalf("structural errors: %v", r.Structural.Errors)
	}
	if r.Semantic.Valid || !strings.Contains(r.Semantic.Errors[0].Msg, "used without declaration") {
		t.Fatalf("semantic = %+v", r.Semantic)
	}
}

func TestLexDiagnosticSpan(t *testing.T) {
	r := Analyze("3.4.5", nil)
	fs := r.Findings()
	if len(fs) != 1 {
		t.Fatalf("findings = %+v", fs)
	}
	d := fs[0].Diagnostic
	if d.Code != "L0002" || d.Span.End.Col != 6 {
		t.Fatalf("d = %+v", d)
	}
}

func TestCustomConfig(t *testing.T) {
	cfg, err := lang.Load(strings.NewReader(`{"keywords":["let","const","var","print"],"exempt":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	r := Analyze("print(console);", cfg)
	if r.Tokens[0].Kind != lexer.TokKeyword {
		t.Fatalf("print should be a keyword: %+v", r.Tokens[0])
	}
	if r.Semantic.Valid {
		t.Fatalf("console is not exempt under this config")
	}
}

func TestCategoryString(t *testing.T) {
	want := map[Category]string{Lexical: "lexical", Structural: "syntax", Semantic: "semantic"}
	for c, name := range want {
		if c.String() != name {
			t.Errorf("%d.String() = %q, want %q", int(c), c.String(), name)
		}
	}
	if got := Category(7).String(); got != "Category(7)" {
		t.Fatalf("out-of-range category = %q", got)
	}
}

func TestLexDiagnosticsMatchTokens(t *testing.T) {
	r := Analyze("1.2.3 @ x 4.5.6", nil)
	fs := r.Findings()
	var got []string
	for i, e := range r.LexErrors {
		d := fs[i].Diagnostic
		if single := LexDiagnostic(e, r.Tokens); single != d {
			t.Fatalf("LexDiagnostic(%v) = %+v, Findings has %+v", e, single, d)
		}
		got = append(got, fmt.Sprintf("%s@%d:%d-%d:%d", d.Code,
			d.Span.Start.Line, d.Span.Start.Col, d.Span.End.Line, d.Span.End.Col))
	}
	want := "L0002@1:1-1:6 L0004@1:7-0:0 L0002@1:11-1:16"
	if strings.Join(got, " ") != want {
		t.Fatalf("lexical diagnostics = %v, want %s", got, want)
	}
}

func TestManyLexErrorsScaleLinearly(t *testing.T) {
	src := strings.Repeat("@", 50000)
	r := Analyze(src, nil)
	start := time.Now()
	fs := r.Findings()
	if d := time.Since(start); d > 500*time.Millisecond {
		t.Fatalf("Findings over %d lexical errors took %v", len(r.LexErrors), d)
	}
	if len(r.LexErrors) != 50000 || fs[49999].Span.Start.Col != 50000 {
		t.Fatalf("lex errors = %d, last = %+v", len(r.LexErrors), fs[len(fs)-1])
	}
}
