package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").N("S").T("b").End() // 0: S → a S b
	b.LHS("S").T("c").End()               // 1: S → c
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 2 {
		t.Errorf("expected grammar to have 2 productions, has %d", g.Size())
	}
	if !g.IsNonTerminal("S") || g.IsNonTerminal("a") {
		t.Errorf("expected S to be the only non-terminal")
	}
	if terms := BodyKey(g.Terminals()); terms != "a b c" {
		t.Errorf("expected terminals [a b c], have [%s]", terms)
	}
	if g.IsTerminal(g.EmptySymbol()) {
		t.Errorf("empty symbol must not be a terminal")
	}
	if p := g.Production(0); p == nil || p.Key() != "a S b" || p.Head != "S" {
		t.Errorf("expected production 0 to be S → a S b, is %v", p)
	}
	if g.Production(2) != nil {
		t.Errorf("expected no production #2")
	}
}

func TestBuilderEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("b").End()
	b.LHS("A").Epsilon()
	b.LHS("A").T("ε").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range g.ProductionsFor("A") {
		if !p.IsEpsilon() || p.Key() != "" {
			t.Errorf("expected %v to have an empty body", p)
		}
	}
	if len(g.Terminals()) != 1 {
		t.Errorf("expected only terminal b, have %v", g.Terminals())
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.grammar")
	defer teardown()
	//
	builds := []func(b *GrammarBuilder){
		func(b *GrammarBuilder) { b.LHS("S").N("A").End() },               // A has no rule
		func(b *GrammarBuilder) { b.LHS("S").T("S").End() },               // S is a head
		func(b *GrammarBuilder) { b.LHS("S").T("a b").End() },             // white space
		func(b *GrammarBuilder) { b.LHS("").T("a").End() },                // empty head
		func(b *GrammarBuilder) { b.LHS("S").T("a").T("ε").End() },        // ε within body
		func(b *GrammarBuilder) {},                                        // no rules
		func(b *GrammarBuilder) { b.LHS("S").T("a").End(); b.LHS("ε").T("a").End() },
	}
	for i, build := range builds {
		b := NewGrammarBuilder("Err")
		build(b)
		if _, err := b.Grammar(); err == nil {
			t.Errorf("expected build #%d to fail", i)
		} else if !errors.Is(err, ErrInvalidGrammar) {
			t.Errorf("expected error #%d to be an invalid-grammar error, is %v", i, err)
		}
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.grammar")
	defer teardown()
	//
	g, err := Parse("Expr", `
		# expression grammar
		E -> E + T | T
		T -> T * F | F
		F -> ( E ) | id
		O -> | ε
	`)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 8 {
		t.Errorf("expected 8 productions, have %d", g.Size())
	}
	if nts := BodyKey(g.NonTerminals()); nts != "E T F O" {
		t.Errorf("expected non-terminals [E T F O], have [%s]", nts)
	}
	if ts := BodyKey(g.Terminals()); ts != "+ * ( ) id" {
		t.Errorf("expected terminals [+ * ( ) id], have [%s]", ts)
	}
	for _, p := range g.ProductionsFor("O") {
		if !p.IsEpsilon() {
			t.Errorf("expected %v to be an epsilon production", p)
		}
	}
	if _, err := Parse("Bad", "S a b"); err == nil {
		t.Errorf("expected rule line without arrow to fail")
	}
	if _, err := Parse("Bad", "S T -> a"); err == nil {
		t.Errorf("expected rule line with two heads to fail")
	}
}

func TestBodyKeyReversible(t *testing.T) {
	body := Symbols("a", "SS", "b")
	key := BodyKey(body)
	if fields := strings.Fields(key); len(fields) != 3 || fields[1] != "SS" {
		t.Errorf("cannot restore body from key %q", key)
	}
	if BodyKey(Symbols("ab")) == BodyKey(Symbols("a", "b")) {
		t.Errorf("distinct bodies must have distinct keys")
	}
}

func TestReadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.grammar")
	defer teardown()
	//
	spec, err := ReadYAML(strings.NewReader(`
name: anbn
start: S
end: $
productions:
  - S -> a S b | c
`))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Start != "S" || spec.End != "$" || spec.Grammar.Name != "anbn" {
		t.Errorf("unexpected grammar spec %+v", spec)
	}
	if spec.Grammar.Size() != 2 {
		t.Errorf("expected 2 productions, have %d", spec.Grammar.Size())
	}
	if _, err = ReadYAML(strings.NewReader("name: x\nproductions: [S -> a]\n")); err == nil {
		t.Errorf("expected grammar file without start symbol to fail")
	}
	if _, err = ReadYAML(strings.NewReader("start: S\nend: $\nfoo: 1\n")); err == nil {
		t.Errorf("expected grammar file with unknown field to fail")
	}
}
