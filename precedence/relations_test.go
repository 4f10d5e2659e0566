package precedence

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/weakprec/grammar"
)

func TestRelationsAnBn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.precedence")
	defer teardown()
	//
	R := DeriveRelations(anbn(t), "S", "$")
	expected := []Relation{
		{"a", Equal, "S"}, {"S", Equal, "b"}, // rule 1
		{"a", Less, "a"}, {"a", Less, "c"}, // rule 2
		{"b", Greater, "b"}, {"c", Greater, "b"}, // rule 3b
		{"$", Less, "a"}, {"$", Less, "c"}, // rule 4
		{"b", Greater, "$"}, {"c", Greater, "$"},
	}
	for _, r := range expected {
		if !R.Has(r.Left, r.Kind, r.Right) {
			t.Errorf("expected relation %v to hold", r)
		}
	}
	if R.Size() != len(expected) {
		t.Errorf("expected %d relations, have %d: %v", len(expected), R.Size(), R.Values())
	}
	if len(R.Conflicts()) != 0 {
		t.Errorf("expected no conflicts, have %v", R.Conflicts())
	}
	if !R.Yields("a", "S") || R.Yields("c", "b") {
		t.Errorf("expected a to yield S, and c not to yield b")
	}
}

func TestRelationsRule3a(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.precedence")
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
	R := DeriveRelations(g, "S", "$")
	if !R.Has("a", Greater, "b") || !R.Has("A", Less, "b") || !R.Has("A", Equal, "B") {
		t.Errorf("expected a > b, A < b and A = B, have %v", R.Values())
	}
}

func TestRelationsConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.precedence")
	defer teardown()
	//
	R := DeriveRelations(conflictGrammar(t), "S", "$")
	conflicts := R.Conflicts()
	if len(conflicts) != 1 || conflicts[0] != (Pair{Left: "a", Right: "c"}) {
		t.Errorf("expected conflict for (a, c), have %v", conflicts)
	}
}

func TestAdjacencyDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weakprec.precedence")
	defer teardown()
	//
	g, err := grammar.Parse("dup", `
		S -> a a | a a a
	`)
	if err != nil {
		t.Fatal(err)
	}
	R := NewRelationSet()
	if !R.Add(Relation{"a", Equal, "a"}) || R.Add(Relation{"a", Equal, "a"}) {
		t.Errorf("expected second insertion of a relation to be a no-op")
	}
	R = DeriveRelations(g, "S", "$")
	if !R.Has("a", Equal, "a") || !R.Has("a", Greater, "$") {
		t.Errorf("expected a = a and a > $, have %v", R.Values())
	}
}

// S → X c | a c, X → a: a > c because of X = c, and a = c.
func conflictGrammar(t *testing.T) *grammar.Grammar {
	g, err := grammar.Parse("conflict", `
		S -> X c | a c
		X -> a
	`)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
