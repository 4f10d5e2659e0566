package precedence

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/weakprec/grammar"
)

// === Symbol Sets ===========================================================

// SymbolSet is an ordered set of grammar symbols.
type SymbolSet struct {
	set *treeset.Set
}

// We need this for sets of symbols. It sorts symbols by name.
func symbolComparator(s1, s2 interface{}) int {
	return utils.StringComparator(string(s1.(grammar.Symbol)), string(s2.(grammar.Symbol)))
}

func newSymbolSet() *SymbolSet {
	return &SymbolSet{set: treeset.NewWith(symbolComparator)}
}

// Add adds symbols to the set.
func (S *SymbolSet) Add(syms ...grammar.Symbol) {
	for _, sym := range syms {
		S.set.Add(sym)
	}
}

// Contains checks if sym is an element of S. A nil set is empty.
func (S *SymbolSet) Contains(sym grammar.Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(sym)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Values returns the symbols of S in sorted order.
func (S *SymbolSet) Values() []grammar.Symbol {
	if S == nil {
		return nil
	}
	syms := make([]grammar.Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(grammar.Symbol))
	}
	return syms
}

// Equals is true if S and T contain the same symbols.
func (S *SymbolSet) Equals(T *SymbolSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	for _, sym := range S.Values() {
		if !T.Contains(sym) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, sym := range S.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(string(sym))
	}
	b.WriteString(" }")
	return b.String()
}

// === ESQ and DIR ===========================================================

// Esq computes for every non-terminal N the set of symbols which may occur
// leftmost in a derivation starting from N.
//
// A production N → M … with M being a non-terminal adds M and ESQ(M) to ESQ(N).
// A production N → N … is skipped. A production N → t … with t being a terminal
// adds t. Empty bodies contribute nothing.
func Esq(g Grammar) map[grammar.Symbol]*SymbolSet {
	return closures(g, leftmost)
}

// Dir computes for every non-terminal N the set of symbols which may occur
// rightmost in a derivation starting from N. It mirrors Esq.
func Dir(g Grammar) map[grammar.Symbol]*SymbolSet {
	return closures(g, rightmost)
}

// position selects a symbol from a non-empty body.
type position func(body []grammar.Symbol) grammar.Symbol

func leftmost(body []grammar.Symbol) grammar.Symbol {
	return body[0]
}

func rightmost(body []grammar.Symbol) grammar.Symbol {
	return body[len(body)-1]
}

func closures(g Grammar, at position) map[grammar.Symbol]*SymbolSet {
	sets := make(map[grammar.Symbol]*SymbolSet)
	for _, N := range g.NonTerminals() {
		S := newSymbolSet()
		closure(g, N, at, S, make(map[grammar.Symbol]bool))
		sets[N] = S
	}
	return sets
}

// closure collects the symbols reachable at position 'at' from N into S.
// Non-terminals already expanded for S are not expanded a second time. This
// guards against cycles through two or more distinct non-terminals
// (A → B …, B → A …), which would otherwise recurse infinitely.
func closure(g Grammar, N grammar.Symbol, at position, S *SymbolSet, expanded map[grammar.Symbol]bool) {
	expanded[N] = true
	for _, p := range g.ProductionsFor(N) {
		if len(p.Body) == 0 {
			continue
		}
		X := at(p.Body)
		if !g.IsNonTerminal(X) {
			S.Add(X)
			continue
		}
		if X == N { // immediate recursion N → N … contributes nothing
			continue
		}
		S.Add(X)
		if expanded[X] {
			tracer().Debugf("closure of %s: %s already expanded", N, X)
			continue
		}
		closure(g, X, at, S, expanded)
	}
}
