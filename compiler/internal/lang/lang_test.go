package lang

import (
	"strings"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	c := Default()
	for _, kw := range []string{"if", "else", "while", "do", "for", "let", "const", "var", "return"} {
		if !c.Keywords.Has(kw) {
			t.Errorf("keyword %q missing", kw)
		}
	}
	if c.Keywords.Has("true") {
		t.Errorf("true must not be a keyword")
	}
	if got := c.TwoCharOps.Len(); got != 10 {
		t.Errorf("two-char ops = %d, want 10", got)
	}
	if !c.Exempt.Has("console") || !c.Exempt.Has("log") {
		t.Errorf("console/log should be exempt: %v", c.Exempt.Sorted())
	}
	if Default() != c {
		t.Fatalf("Default should return the same table on every call")
	}
}

func TestLoadOverridesOnlyGivenSections(t *testing.T) {
	c, err := Load(strings.NewReader(`{"keywords":["fn","let"],"exempt":["print"]}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Keywords.Has("fn") || c.Keywords.Has("if") {
		t.Fatalf("keywords not replaced: %v", c.Keywords.Sorted())
	}
	if !c.Exempt.Has("print") || c.Exempt.Has("console") {
		t.Fatalf("exempt not replaced: %v", c.Exempt.Sorted())
	}
	if !c.Symbols.Has("{") {
		t.Fatalf("symbols should fall back to defaults")
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := []string{
		`{"two_char_ops":["==="]}`,
		`{"symbols":["()"]}`,
		`{"nope":[]}`,
		`not json`,
	}
	for _, in := range cases {
		if _, err := Load(strings.NewReader(in)); err == nil {
			t.Errorf("Load(%s): expected error", in)
		}
	}
}

func TestSortedIsOrdered(t *testing.T) {
	got := strings.Join(NewSet("b", "c", "a").Sorted(), ",")
	if got != "a,b,c" {
		t.Fatalf("Sorted = %s", got)
	}
}

func TestSetIsDetachedFromInput(t *testing.T) {
	words := []string{"a", "b"}
	s := NewSet(words...)
	words[0] = "z"
	if !s.Has("a") || s.Has("z") {
		t.Fatalf("set follows caller slice: %v", s.Sorted())
	}
	got := s.Sorted()
	got[0] = "z"
	if !s.Has("a") || s.Has("z") {
		t.Fatalf("set follows Sorted result: %v", s.Sorted())
	}
	var zero Set
	if zero.Has("") || zero.Len() != 0 {
		t.Fatalf("zero Set should be empty")
	}
}

func TestDefaultUnchangedByLoad(t *testing.T) {
	before := strings.Join(Default().Keywords.Sorted(), ",")
	if _, err := Load(strings.NewReader(`{"keywords":["fn"]}`)); err != nil {
		t.Fatal(err)
	}
	if after := strings.Join(Default().Keywords.Sorted(), ","); after != before {
		t.Fatalf("Default keywords changed: %s -> %s", before, after)
	}
}
