package tree

import (
	"github.com/npillmayer/weakprec/grammar"
)

// Orientation is the order in which the non-terminals of a production body
// have been expanded in a derivation.
type Orientation int8

// Orientations of derivations
const (
	Left  Orientation = iota // leftmost non-terminal first
	Right                    // rightmost non-terminal first
)

func (o Orientation) String() string {
	if o == Right {
		return "right"
	}
	return "left"
}

// Grammar is the interface the builder needs from a grammar.
type Grammar interface {
	IsNonTerminal(grammar.Symbol) bool
}

// Builder reconstructs syntax trees from derivations. A builder may be re-used
// for more than one derivation, but is not safe for concurrent use.
type Builder struct {
	g           Grammar
	orientation Orientation
	derivation  []*grammar.Production
	cursor      int // next production to consume
	missing     int // count of omitted subtrees
}

// NewBuilder creates a tree builder for derivations of a grammar.
func NewBuilder(g Grammar, orientation Orientation) *Builder {
	return &Builder{g: g, orientation: orientation}
}

// Build is a shortcut for NewBuilder(g, orientation).Build(d).
func Build(d []*grammar.Production, g Grammar, orientation Orientation) *Node {
	return NewBuilder(g, orientation).Build(d)
}

// Build creates the syntax tree for a derivation and returns its root, or nil
// for an empty derivation. d is not modified.
func (b *Builder) Build(d []*grammar.Production) *Node {
	b.derivation, b.cursor, b.missing = d, 0, 0
	root := b.buildOne()
	if b.missing > 0 {
		tracer().Errorf("incomplete derivation: %d subtrees missing", b.missing)
	}
	if r := b.Remaining(); r > 0 {
		tracer().Infof("%d productions of derivation not consumed", r)
	}
	return root
}

// Remaining returns the number of productions the last build did not consume.
func (b *Builder) Remaining() int {
	return len(b.derivation) - b.cursor
}

// Missing returns the number of subtrees the last build had to omit, due to
// a derivation too short.
func (b *Builder) Missing() int {
	return b.missing
}

// Complete is true if the last build consumed the derivation completely and
// did not omit any subtrees.
func (b *Builder) Complete() bool {
	return b.missing == 0 && b.Remaining() == 0
}

func (b *Builder) next() *grammar.Production {
	if b.cursor >= len(b.derivation) {
		return nil
	}
	p := b.derivation[b.cursor]
	b.cursor++
	return p
}

func (b *Builder) buildOne() *Node {
	p := b.next()
	if p == nil {
		return nil
	}
	node := &Node{Symbol: p.Head, Production: p}
	if b.orientation == Right {
		for i := len(p.Body) - 1; i >= 0; i-- {
			node.PrependChild(b.child(p.Body[i]))
		}
	} else {
		for _, sym := range p.Body {
			node.AppendChild(b.child(sym))
		}
	}
	return node
}

func (b *Builder) child(sym grammar.Symbol) *Node {
	if !b.g.IsNonTerminal(sym) {
		return NewNode(sym)
	}
	ch := b.buildOne()
	if ch == nil {
		tracer().Debugf("no production left for %s", sym)
		b.missing++
	} else if ch.Symbol != sym {
		tracer().Errorf("derivation does not match orientation %s: expected %s, have %v",
			b.orientation, sym, ch.Production)
	}
	return ch
}
