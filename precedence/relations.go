package precedence

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/weakprec/grammar"
)

// === Wirth–Weber Relations =================================================

// Kind is the kind of a precedence relation.
type Kind int8

// Precedence relations between an ordered pair of symbols.
const (
	Less    Kind = iota // left yields precedence to right (shift)
	Equal               // left and right are adjacent within a body (shift)
	Greater             // left takes precedence over right (reduce)
)

func (k Kind) String() string {
	switch k {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	}
	return "?"
}

// Relation is a Wirth–Weber relation between an ordered pair of symbols.
type Relation struct {
	Left  grammar.Symbol
	Kind  Kind
	Right grammar.Symbol
}

func (r Relation) String() string {
	return fmt.Sprintf("%s %s %s", r.Left, r.Kind, r.Right)
}

// Pair is an ordered pair of symbols.
type Pair struct {
	Left, Right grammar.Symbol
}

// We need this for the set of relations. It sorts relations by left symbol,
// then right symbol, then kind.
func relationComparator(r1, r2 interface{}) int {
	a, b := r1.(Relation), r2.(Relation)
	if c := utils.StringComparator(string(a.Left), string(b.Left)); c != 0 {
		return c
	}
	if c := utils.StringComparator(string(a.Right), string(b.Right)); c != 0 {
		return c
	}
	return utils.IntComparator(int(a.Kind), int(b.Kind))
}

// RelationSet is a set of precedence relations. Duplicates collapse.
type RelationSet struct {
	set *treeset.Set
}

// NewRelationSet creates an empty set of relations.
func NewRelationSet() *RelationSet {
	return &RelationSet{set: treeset.NewWith(relationComparator)}
}

// Add adds a relation to R. It returns false if R already contained r.
func (R *RelationSet) Add(r Relation) bool {
	if R.set.Contains(r) {
		return false
	}
	R.set.Add(r)
	return true
}

// Has checks if R contains the relation (left, kind, right).
func (R *RelationSet) Has(left grammar.Symbol, kind Kind, right grammar.Symbol) bool {
	return R.set.Contains(Relation{Left: left, Kind: kind, Right: right})
}

// Yields is true if R contains (left < right) or (left = right), i.e. the
// relations resulting in a shift.
func (R *RelationSet) Yields(left, right grammar.Symbol) bool {
	return R.Has(left, Less, right) || R.Has(left, Equal, right)
}

// Size returns the number of relations in R.
func (R *RelationSet) Size() int {
	return R.set.Size()
}

// Values returns all relations of R, ordered.
func (R *RelationSet) Values() []Relation {
	rels := make([]Relation, 0, R.set.Size())
	it := R.set.Iterator()
	for it.Next() {
		rels = append(rels, it.Value().(Relation))
	}
	return rels
}

// Conflicts returns all symbol pairs which are related by a shift relation
// (< or =) and by > at the same time. Grammars with conflicts are not
// weak precedence grammars.
func (R *RelationSet) Conflicts() []Pair {
	var pairs []Pair
	for _, r := range R.Values() {
		if r.Kind == Greater && R.Yields(r.Left, r.Right) {
			pairs = append(pairs, Pair{Left: r.Left, Right: r.Right})
		}
	}
	return pairs
}

// DeriveRelations computes the Wirth–Weber relations for a grammar, a start
// symbol and an end-of-input marker:
//
//     (1)  X = Y     for every pair X Y of adjacent symbols within a body
//     (2)  X < Z     for X = N, N a non-terminal, Z ∈ ESQ(N)
//     (3a) Z > W     for N = M, N and M non-terminals, Z ∈ DIR(N), W ∈ ESQ(M)
//     (3b) Z > t     for N = t, N a non-terminal, t a terminal, Z ∈ DIR(N)
//     (4)  $ < Z     for Z ∈ ESQ(start), and Z > $ for Z ∈ DIR(start)
func DeriveRelations(g Grammar, start, end grammar.Symbol) *RelationSet {
	return deriveRelations(g, start, end, Esq(g), Dir(g))
}

func deriveRelations(g Grammar, start, end grammar.Symbol, esq, dir map[grammar.Symbol]*SymbolSet) *RelationSet {
	R := NewRelationSet()
	var adjacent []Relation
	for _, p := range g.Productions() { // rule 1
		for i := 0; i+1 < len(p.Body); i++ {
			r := Relation{Left: p.Body[i], Kind: Equal, Right: p.Body[i+1]}
			if R.Add(r) {
				adjacent = append(adjacent, r)
			}
		}
	}
	for _, r := range adjacent {
		X, Y := r.Left, r.Right
		if g.IsNonTerminal(Y) { // rule 2
			for _, Z := range esq[Y].Values() {
				R.Add(Relation{Left: X, Kind: Less, Right: Z})
			}
		}
		if !g.IsNonTerminal(X) {
			continue
		}
		if g.IsNonTerminal(Y) { // rule 3a
			for _, Z := range dir[X].Values() {
				for _, W := range esq[Y].Values() {
					R.Add(Relation{Left: Z, Kind: Greater, Right: W})
				}
			}
		} else { // rule 3b
			for _, Z := range dir[X].Values() {
				R.Add(Relation{Left: Z, Kind: Greater, Right: Y})
			}
		}
	}
	for _, Z := range esq[start].Values() { // rule 4
		R.Add(Relation{Left: end, Kind: Less, Right: Z})
	}
	for _, Z := range dir[start].Values() {
		R.Add(Relation{Left: Z, Kind: Greater, Right: end})
	}
	tracer().Infof("%d precedence relations for start symbol %s", R.Size(), start)
	return R
}
