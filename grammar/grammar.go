package grammar

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// DefaultEmpty is the designated empty symbol if clients do not set one with
// GrammarBuilder.EmptySymbol.
const DefaultEmpty Symbol = "ε"

// Symbol is a grammar symbol. Symbols are non-empty strings without white space.
type Symbol string

func (sym Symbol) String() string {
	return string(sym)
}

// IsValid checks if a symbol is non-empty and free of white space.
func (sym Symbol) IsValid() bool {
	return sym != "" && strings.IndexFunc(string(sym), unicode.IsSpace) < 0
}

// Symbols converts a list of strings into a list of symbols.
func Symbols(s ...string) []Symbol {
	syms := make([]Symbol, len(s))
	for i, str := range s {
		syms[i] = Symbol(str)
	}
	return syms
}

// --- Productions -----------------------------------------------------------

// Production is a grammar rule
//
//    Head ::= Body
//
// Productions are numbered in declaration order, starting with 0.
// They are immutable once the grammar has been built.
type Production struct {
	Serial int      // ordinal no. of this production
	Head   Symbol   // left hand side
	Body   []Symbol // right hand side, may be empty
	key    string
}

func newProduction(serial int, head Symbol, body []Symbol) *Production {
	return &Production{
		Serial: serial,
		Head:   head,
		Body:   body,
		key:    BodyKey(body),
	}
}

// BodyKey returns the key for a sequence of symbols, as it is used for matching
// production bodies. Symbols are separated by a single blank. As symbols may not
// contain white space, strings.Fields(key) restores the sequence.
func BodyKey(body []Symbol) string {
	switch len(body) {
	case 0:
		return ""
	case 1:
		return string(body[0])
	}
	var b strings.Builder
	for i, sym := range body {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(sym))
	}
	return b.String()
}

// Key returns the body key of p.
func (p *Production) Key() string {
	return p.key
}

// IsEpsilon is true for productions with an empty body.
func (p *Production) IsEpsilon() bool {
	return len(p.Body) == 0
}

func (p *Production) String() string {
	return fmt.Sprintf("[%s] ::= [%s]", p.Head, p.key)
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar. Create one with a GrammarBuilder or with
// Parse.
type Grammar struct {
	Name         string
	empty        Symbol
	productions  []*Production
	terminals    *linkedhashset.Set // ordered, duplicate-free
	nonterminals *linkedhashset.Set // ordered, duplicate-free
	byHead       map[Symbol][]*Production
}

func newGrammar(name string, empty Symbol) *Grammar {
	return &Grammar{
		Name:         name,
		empty:        empty,
		terminals:    linkedhashset.New(),
		nonterminals: linkedhashset.New(),
		byHead:       make(map[Symbol][]*Production),
	}
}

// IsNonTerminal is true if sym is the head of at least one production.
func (g *Grammar) IsNonTerminal(sym Symbol) bool {
	_, ok := g.byHead[sym]
	return ok
}

// IsTerminal is true if sym is a declared terminal of g. The empty symbol is
// not a terminal.
func (g *Grammar) IsTerminal(sym Symbol) bool {
	return g.terminals.Contains(sym)
}

// IsEmpty is true if sym is the designated empty symbol of g.
func (g *Grammar) IsEmpty(sym Symbol) bool {
	return sym == g.empty
}

// EmptySymbol returns the designated empty symbol of g.
func (g *Grammar) EmptySymbol() Symbol {
	return g.empty
}

// Terminals returns the declared terminals in order of appearance.
func (g *Grammar) Terminals() []Symbol {
	return symbolValues(g.terminals)
}

// NonTerminals returns the non-terminals in order of appearance.
func (g *Grammar) NonTerminals() []Symbol {
	return symbolValues(g.nonterminals)
}

// Productions returns all productions in declaration order. Clients must not
// modify the returned slice.
func (g *Grammar) Productions() []*Production {
	return g.productions
}

// ProductionsFor returns all productions with head sym, in declaration order.
func (g *Grammar) ProductionsFor(sym Symbol) []*Production {
	return g.byHead[sym]
}

// Production returns the production with a given serial number, or nil.
func (g *Grammar) Production(serial int) *Production {
	if serial < 0 || serial >= len(g.productions) {
		return nil
	}
	return g.productions[serial]
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.productions)
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, p := range g.productions {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("-------------------------------------------------")
}

func symbolValues(set *linkedhashset.Set) []Symbol {
	values := set.Values()
	syms := make([]Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(Symbol)
	}
	return syms
}
