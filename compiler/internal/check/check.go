// Package check performs the scope and type-consistency pass over a token
// stream: declaration before use, redeclaration within a block, const
// initialization and reassignment type drift.
package check

import (
	"github.com/lexiscope/lexiscope/compiler/internal/diag"
	"github.com/lexiscope/lexiscope/compiler/internal/lang"
	"github.com/lexiscope/lexiscope/compiler/internal/lexer"
)

// Result is the outcome of a scope check. Valid is false iff Errors is
// non-empty.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []diag.Diagnostic `json:"errors"`
}

type checker struct {
	toks   []lexer.Token
	exempt lang.Set
	scope  *scopes
	errors []diag.Diagnostic
}

// Check walks toks once. Names in exempt are built-ins and count as declared.
func Check(toks []lexer.Token, exempt lang.Set) Result {
	c := &checker{toks: toks, exempt: exempt, scope: newScopes()}
	for i, t := range toks {
		switch {
		case t.Is(lexer.TokSymbol, "{"):
			c.scope.push()
		case t.Is(lexer.TokSymbol, "}"):
			if !c.scope.pop() {
				c.errorf("unmatched_brace", t, "closing brace '}' at %d:%d without opening", t.Line, t.Col)
			}
		case isDeclKeyword(t):
			c.checkDecl(i)
		case t.Kind == lexer.TokIdent:
			c.checkUse(i)
		case t.Is(lexer.TokOperator, "="):
			c.checkAssign(i)
		}
	}
	return Result{Valid: len(c.errors) == 0, Errors: c.errors}
}

func (c *checker) errorf(key string, t lexer.Token, format string, a ...any) {
	c.errors = append(c.errors, diag.New(diag.DomainScope, key, diag.At(t.Line, t.Col), format, a...))
}

/* ---------- declarations ---------- */

func (c *checker) checkDecl(i int) {
	kw := c.toks[i]
	name, ok := tokenAt(c.toks, i+1)
	switch {
	case !ok:
		c.errorf("missing_decl_name", kw, "missing variable name after '%s'", kw.Lex)
		return
	case name.Kind == lexer.TokKeyword:
		c.errorf("missing_decl_name", name, "'%s' is a reserved word and cannot name a variable", name.Lex)
		return
	case name.Kind != lexer.TokIdent:
		c.errorf("missing_decl_name", kw, "missing variable name after '%s', found '%s'", kw.Lex, name.Lex)
		return
	}

	v := &varInfo{kind: KindUnknown, isConst: kw.Lex == "const"}
	if !c.scope.define(name.Lex, v) {
		c.errorf("redeclared", name, "variable '%s' already declared in this block", name.Lex)
	}
	if v.isConst {
		if eq, ok := tokenAt(c.toks, i+2); !ok || !eq.Is(lexer.TokOperator, "=") {
			c.errorf("const_without_init", name, "const '%s' requires initialization", name.Lex)
		}
	}
}

/* ---------- uses ---------- */

func (c *checker) checkUse(i int) {
	t := c.toks[i]
	if prev, ok := tokenAt(c.toks, i-1); ok && isDeclKeyword(prev) {
		return // the name being declared
	}
	if c.exempt.Has(t.Lex) {
		return
	}
	if _, ok := c.scope.lookup(t.Lex); ok {
		return
	}
	if nx, ok := tokenAt(c.toks, i+1); ok && nx.Is(lexer.TokSymbol, "(") {
		c.errorf("call_undeclared", t, "function '%s' used before declared", t.Lex)
		return
	}
	c.errorf("undeclared", t, "variable '%s' used without declaration", t.Lex)
}

/* ---------- assignments ---------- */

func (c *checker) checkAssign(i int) {
	eq := c.toks[i]
	lhs, ok := tokenAt(c.toks, i-1)
	var v *varInfo
	declared := false
	if ok && lhs.Kind == lexer.TokIdent {
		if v, declared = c.scope.lookup(lhs.Lex); !declared && c.exempt.Has(lhs.Lex) {
			declared = true
		}
	}
	if !declared {
		c.errorf("assign_undeclared", eq, "assignment at %d:%d without declared variable", eq.Line, eq.Col)
	}

	rhs, ok := tokenAt(c.toks, i+1)
	if !ok {
		c.errorf("assign_missing_rhs", eq, "missing value in assignment at %d:%d", eq.Line, eq.Col)
		return
	}
	if v == nil {
		return
	}

	if before, ok := tokenAt(c.toks, i-2); v.isConst && !(ok && isDeclKeyword(before)) {
		c.errorf("assign_const", lhs, "cannot assign to constant '%s'", lhs.Lex)
	}

	k := kindOf(rhs)
	switch {
	case k == KindUnknown:
	case v.kind == KindUnknown:
		v.kind = k
	case v.kind != k:
		c.errorf("type_mismatch", rhs, "incompatible types: '%s' is %s but assigned %s", lhs.Lex, v.kind, k)
	}
}
