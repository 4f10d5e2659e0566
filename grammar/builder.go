package grammar

import (
	"errors"
	"fmt"
)

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder, add rules and finally call Grammar().
type GrammarBuilder struct {
	name   string
	empty  Symbol
	rules  []*RuleBuilder
	errors []error
}

// NewGrammarBuilder creates a new grammar builder, given the name of the grammar.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  gname,
		empty: DefaultEmpty,
	}
}

// EmptySymbol sets the designated empty symbol (default is "ε"). It must be
// called before any rules are added.
func (gb *GrammarBuilder) EmptySymbol(sym string) *GrammarBuilder {
	if len(gb.rules) > 0 {
		gb.errorf("empty symbol must be set before adding rules")
		return gb
	}
	if !Symbol(sym).IsValid() {
		gb.errorf("invalid empty symbol %q", sym)
		return gb
	}
	gb.empty = Symbol(sym)
	return gb
}

// LHS starts a new rule for a non-terminal head.
func (gb *GrammarBuilder) LHS(head string) *RuleBuilder {
	rb := &RuleBuilder{gb: gb, head: Symbol(head)}
	if !rb.head.IsValid() {
		gb.errorf("invalid rule head %q", head)
	}
	return rb
}

func (gb *GrammarBuilder) errorf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	tracer().Errorf("grammar %s: %v", gb.name, err)
	gb.errors = append(gb.errors, err)
}

// RuleBuilder collects the body symbols of a single rule.
type RuleBuilder struct {
	gb    *GrammarBuilder
	head  Symbol
	body  []Symbol
	kinds []bool // true for non-terminals
	done  bool
}

// N appends a non-terminal to the body of the rule.
func (rb *RuleBuilder) N(sym string) *RuleBuilder {
	return rb.appendSymbol(Symbol(sym), true)
}

// T appends a terminal to the body of the rule.
func (rb *RuleBuilder) T(sym string) *RuleBuilder {
	return rb.appendSymbol(Symbol(sym), false)
}

func (rb *RuleBuilder) appendSymbol(sym Symbol, nonterm bool) *RuleBuilder {
	if !sym.IsValid() {
		rb.gb.errorf("invalid symbol %q in rule for %s", sym, rb.head)
		return rb
	}
	rb.body = append(rb.body, sym)
	rb.kinds = append(rb.kinds, nonterm)
	return rb
}

// End closes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() {
	if rb.done {
		rb.gb.errorf("rule for %s closed twice", rb.head)
		return
	}
	rb.done = true
	rb.gb.rules = append(rb.gb.rules, rb)
}

// Epsilon closes the rule with an empty body and adds it to the grammar.
func (rb *RuleBuilder) Epsilon() {
	if len(rb.body) > 0 {
		rb.gb.errorf("epsilon rule for %s must not have body symbols", rb.head)
	}
	rb.body, rb.kinds = nil, nil
	rb.End()
}

// ErrInvalidGrammar is wrapped by all errors returned from GrammarBuilder.Grammar.
var ErrInvalidGrammar = errors.New("invalid grammar")

// Grammar returns the grammar built so far, or an error if the rules are
// inconsistent:
//
//     - a rule head or body symbol is empty or contains white space
//     - a symbol is used as a non-terminal in a body, but has no rule
//     - a symbol is used as a terminal in a body, but is the head of a rule
//     - the empty symbol occurs within a body of more than one symbol
//
// An empty symbol as the only body symbol is turned into an empty body.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.rules) == 0 {
		gb.errorf("grammar has no rules")
	}
	heads := make(map[Symbol]bool, len(gb.rules))
	for _, rb := range gb.rules {
		if rb.head == gb.empty {
			gb.errorf("empty symbol %s cannot be a rule head", gb.empty)
		}
		heads[rb.head] = true
	}
	g := newGrammar(gb.name, gb.empty)
	for _, rb := range gb.rules {
		body := rb.body
		if len(body) == 1 && body[0] == gb.empty && !rb.kinds[0] {
			body = nil
		}
		g.nonterminals.Add(rb.head)
		for i, sym := range body {
			switch {
			case sym == gb.empty:
				gb.errorf("empty symbol within body of rule for %s", rb.head)
			case rb.kinds[i] && !heads[sym]:
				gb.errorf("non-terminal %s has no rule", sym)
			case !rb.kinds[i] && heads[sym]:
				gb.errorf("terminal %s is the head of a rule", sym)
			case rb.kinds[i]:
				g.nonterminals.Add(sym)
			default:
				g.terminals.Add(sym)
			}
		}
		p := newProduction(len(g.productions), rb.head, append([]Symbol(nil), body...))
		g.productions = append(g.productions, p)
		g.byHead[p.Head] = append(g.byHead[p.Head], p)
	}
	if len(gb.errors) > 0 {
		return nil, fmt.Errorf("%w %s: %v (%d errors)", ErrInvalidGrammar, gb.name,
			gb.errors[0], len(gb.errors))
	}
	return g, nil
}
