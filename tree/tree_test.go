package tree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/weakprec/grammar"
	"github.com/npillmayer/weakprec/precedence"
)

func anbn(t *testing.T) *grammar.Grammar {
	b := grammar.NewGrammarBuilder("anbn")
	b.LHS("S").T("a").N("S").T("b").End() // 0
	b.LHS("S").T("c").End()               // 1
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func parse(t *testing.T, g *grammar.Grammar, start grammar.Symbol, input string) precedence.Derivation {
	p, err := precedence.NewParser(g, start, "$")
	if err != nil {
		t.Fatal(err)
	}
	var d precedence.Derivation
	if strings.Contains(input, " ") {
		d, err = p.Parse(grammar.Symbols(strings.Fields(input)...))
	} else {
		d, err = p.ParseString(input)
	}
	if err != nil {
		t.Fatalf("cannot parse %q: %v", input, err)
	}
	return d
}

func TestBuildBothOrientations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.tree")
	defer teardown()
	//
	g := anbn(t)
	d := parse(t, g, "S", "aacbb")
	for _, o := range []Orientation{Left, Right} {
		b := NewBuilder(g, o)
		root := b.Build(d)
		if root.String() != "S(a, S(a, S(c), b), b)" {
			t.Errorf("%s: unexpected tree %v", o, root)
		}
		if !b.Complete() {
			t.Errorf("%s: expected derivation to be consumed completely", o)
		}
	}
	if len(d) != 3 {
		t.Errorf("derivation must not be consumed by the builder, has length %d", len(d))
	}
}

func TestBuildRightmost(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.tree")
	defer teardown()
	//
	g, err := grammar.Parse("Expr", `
		E -> E + T | T
		T -> T * F | F
		F -> ( E ) | x
	`)
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range []string{"x", "x+x*x", "(x+x)*x", "x*(x+(x))"} {
		d := parse(t, g, "E", input)
		root := Build(d, g, Right)
		if root.Yield() != input {
			t.Errorf("expected yield of tree to be %q, is %q: %v", input, root.Yield(), root)
		}
	}
	root := Build(parse(t, g, "E", "x+x*x"), g, Right)
	expected := "E(E(T(F(x))), +, T(T(F(x)), *, F(x)))"
	if root.String() != expected {
		t.Errorf("expected %s, have %v", expected, root)
	}
}

func TestBuildTwoNonTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.tree")
	defer teardown()
	//
	g, err := grammar.Parse("AB", `
		S -> A B
		A -> a
		B -> b
	`)
	if err != nil {
		t.Fatal(err)
	}
	root := Build(parse(t, g, "S", "ab"), g, Right)
	if root.String() != "S(A(a), B(b))" {
		t.Errorf("unexpected tree %v", root)
	}
}

func TestBuildEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.tree")
	defer teardown()
	//
	b := grammar.NewGrammarBuilder("eps")
	b.LHS("S").N("A").T("b").End()
	b.LHS("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	root := Build(parse(t, g, "S", "b"), g, Right)
	if root.String() != "S(A, b)" {
		t.Errorf("unexpected tree %v", root)
	}
	if leaves := root.Leaves(); len(leaves) != 1 || leaves[0].Symbol != "b" {
		t.Errorf("expected b to be the only leaf, have %v", leaves)
	}
	if root.Yield() != "b" {
		t.Errorf("expected yield 'b', have %q", root.Yield())
	}
}

func TestIncompleteDerivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.tree")
	defer teardown()
	//
	g := anbn(t)
	b := NewBuilder(g, Left)
	root := b.Build(g.ProductionsFor("S")[:1]) // S → a S b, without inner S
	if root.String() != "S(a, b)" {
		t.Errorf("expected partial tree S(a, b), have %v", root)
	}
	if b.Missing() != 1 || b.Complete() {
		t.Errorf("expected 1 missing subtree, have %d", b.Missing())
	}
	c := g.Production(1)
	root = b.Build([]*grammar.Production{c, c})
	if root.String() != "S(c)" || b.Remaining() != 1 {
		t.Errorf("expected S(c) with 1 production remaining, have %v and %d", root, b.Remaining())
	}
	if Build(nil, g, Left) != nil {
		t.Errorf("expected no tree for an empty derivation")
	}
}

func TestTraversals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.tree")
	defer teardown()
	//
	root := NewNode("S").AppendChild(NewNode("a"))
	root.AppendChild(NewNode("S").AppendChild(NewNode("c")))
	root.AppendChild(NewNode("b"))
	collect := func(traverse func(func(*Node))) string {
		var syms []string
		traverse(func(n *Node) {
			syms = append(syms, string(n.Symbol))
		})
		return strings.Join(syms, " ")
	}
	if pre := collect(root.PreOrder); pre != "S a S c b" {
		t.Errorf("pre-order: expected 'S a S c b', have %q", pre)
	}
	if rev := collect(root.ReverseChildPreOrder); rev != "S b S c a" {
		t.Errorf("reverse-child pre-order: expected 'S b S c a', have %q", rev)
	}
	if root.String() != "S(a, S(c), b)" {
		t.Errorf("traversal must not reorder children, tree is %v", root)
	}
	root.PrependChild(NewNode("x")).AppendChild(nil)
	if root.Yield() != "xacb" || len(root.Children()) != 4 {
		t.Errorf("expected yield 'xacb' with 4 children, have %q", root.Yield())
	}
}
