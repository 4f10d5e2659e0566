package precedence

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/weakprec/grammar"
	"github.com/npillmayer/weakprec/scanner"
)

// Grammar is the interface a precedence parser needs from a grammar.
// *grammar.Grammar implements it.
type Grammar interface {
	IsNonTerminal(grammar.Symbol) bool
	IsEmpty(grammar.Symbol) bool
	Terminals() []grammar.Symbol    // declared terminals, without the empty symbol
	NonTerminals() []grammar.Symbol // non-terminals
	Productions() []*grammar.Production
	ProductionsFor(grammar.Symbol) []*grammar.Production
}

var _ Grammar = (*grammar.Grammar)(nil)

// Derivation is the sequence of productions a parser applied, outermost
// production first. As the parser works bottom-up, this is a rightmost
// derivation of the input.
type Derivation []*grammar.Production

// Heads returns the heads of all productions of d.
func (d Derivation) Heads() []grammar.Symbol {
	heads := make([]grammar.Symbol, len(d))
	for i, p := range d {
		heads[i] = p.Head
	}
	return heads
}

func (d Derivation) String() string {
	var b strings.Builder
	for i, p := range d {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Head.String())
		b.WriteString(" → ")
		if p.IsEpsilon() {
			b.WriteString(string(grammar.DefaultEmpty))
		} else {
			b.WriteString(p.Key())
		}
	}
	return b.String()
}

// Parser is a weak precedence parser. Create and initialize one with
// NewParser(...).
//
// A parser does not keep state between calls to Parse; it is safe to use
// a parser from more than one goroutine at a time.
type Parser struct {
	g        Grammar
	start    grammar.Symbol
	end      grammar.Symbol
	table    *Table
	bodies   map[string][]*grammar.Production // productions by body key, declaration order
	maxlen   int                              // length of the longest body
	nullable *grammar.Production              // first ε-production of the start symbol
	maxSteps int
	trace    bool
	strict   bool
}

// Option configures a parser.
type Option func(p *Parser)

// MaxSteps bounds the number of actions the parser performs for a single
// input. A value ≤ 0 selects a bound derived from the input length and the
// size of the grammar.
func MaxSteps(n int) Option {
	return func(p *Parser) {
		p.maxSteps = n
	}
}

// Trace lets the parser trace every action at debug level.
func Trace(b bool) Option {
	return func(p *Parser) {
		p.trace = b
	}
}

// Strict lets parser construction fail for grammars with shift/reduce
// conflicts. Otherwise conflicts are resolved to Shift.
func Strict(b bool) Option {
	return func(p *Parser) {
		p.strict = b
	}
}

// NewParser creates a weak precedence parser for a grammar, a start symbol and
// an end-of-input marker. It checks the configuration and builds the
// shift/reduce table. Errors are of kind ConfigError.
//
// The start symbol must be a non-terminal of g; the end-of-input marker must
// neither be a non-terminal, nor a terminal, nor the empty symbol of g.
func NewParser(g Grammar, start, end grammar.Symbol, opts ...Option) (*Parser, error) {
	if err := checkConfig(g, start, end); err != nil {
		return nil, err
	}
	esq, dir := Esq(g), Dir(g)
	R := deriveRelations(g, start, end, esq, dir)
	table := BuildTable(g, R, end)
	return NewParserFromTable(g, start, table, opts...)
}

// NewParserFromTable creates a parser for a table built previously, e.g. taken
// from a TableCache.
func NewParserFromTable(g Grammar, start grammar.Symbol, table *Table, opts ...Option) (*Parser, error) {
	if table == nil {
		return nil, configError("no shift/reduce table given")
	}
	if err := checkConfig(g, start, table.End()); err != nil {
		return nil, err
	}
	if fp, err := grammarFingerprint(g, table.End()); err != nil {
		return nil, err
	} else if fp != table.fingerprint {
		return nil, configError("shift/reduce table has not been built for grammar")
	}
	p := &Parser{
		g:      g,
		start:  start,
		end:    table.End(),
		table:  table,
		bodies: make(map[string][]*grammar.Production),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.strict && table.HasConflicts {
		return nil, configError("grammar has %d shift/reduce conflicts, first at %v",
			len(table.Conflicts()), table.Conflicts()[0])
	}
	for _, prod := range g.Productions() {
		if len(prod.Body) == 0 {
			if prod.Head == start && p.nullable == nil {
				p.nullable = prod
			}
			continue
		}
		p.bodies[prod.Key()] = append(p.bodies[prod.Key()], prod)
		if len(prod.Body) > p.maxlen {
			p.maxlen = len(prod.Body)
		}
	}
	return p, nil
}

func checkConfig(g Grammar, start, end grammar.Symbol) error {
	if g == nil {
		return configError("no grammar given")
	}
	if !start.IsValid() || !g.IsNonTerminal(start) {
		return configError("start symbol %q must be a non-terminal of the grammar", start)
	}
	if !end.IsValid() {
		return configError("end-of-input marker %q is not a valid symbol", end)
	}
	if g.IsNonTerminal(end) {
		return configError("end-of-input marker %s must not be a non-terminal of the grammar", end)
	}
	if g.IsEmpty(end) {
		return configError("end-of-input marker %s must not be the empty symbol", end)
	}
	for _, A := range g.Terminals() {
		if A == end {
			return configError("end-of-input marker %s must not be a terminal of the grammar", end)
		}
	}
	return nil
}

// Table returns the shift/reduce table of the parser.
func (p *Parser) Table() *Table {
	return p.table
}

// Start returns the start symbol.
func (p *Parser) Start() grammar.Symbol {
	return p.start
}

// End returns the end-of-input marker.
func (p *Parser) End() grammar.Symbol {
	return p.end
}

// ParseString parses a string, treating every rune as an input symbol.
func (p *Parser) ParseString(input string) (Derivation, error) {
	syms := make([]grammar.Symbol, 0, len(input))
	for _, r := range input {
		syms = append(syms, grammar.Symbol(r))
	}
	return p.Parse(syms)
}

// ParseTokens drains a tokenizer and parses the lexemes of its tokens.
func (p *Parser) ParseTokens(tokenizer scanner.Tokenizer) (Derivation, error) {
	return p.Parse(scanner.Symbols(tokenizer, nil))
}

// ParseInput parses input of one of the types
//
//     string              every rune is an input symbol
//     []string            every string is an input symbol
//     []grammar.Symbol
//     scanner.Tokenizer   lexemes of the tokens are input symbols
//
// Other types result in an error of kind InputTypeError.
func (p *Parser) ParseInput(input interface{}) (Derivation, error) {
	switch inp := input.(type) {
	case string:
		return p.ParseString(inp)
	case []string:
		return p.Parse(grammar.Symbols(inp...))
	case []grammar.Symbol:
		return p.Parse(inp)
	case scanner.Tokenizer:
		return p.ParseTokens(inp)
	}
	return nil, inputTypeError(input)
}

// Parse parses a sequence of input symbols. If the sequence is in the language
// of the grammar, Parse returns the derivation, outermost production first.
// Otherwise it returns a *ParseFailure.
//
// The input is not modified.
func (p *Parser) Parse(input []grammar.Symbol) (Derivation, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	buf := make([]grammar.Symbol, len(input)+1) // remaining input is buf[pos:]
	copy(buf, input)
	buf[len(input)] = p.end
	for i, a := range input {
		if a == p.end {
			return nil, parseFailure(i, a, "end-of-input marker within input")
		}
	}
	stack := make([]grammar.Symbol, 1, 64)
	stack[0] = p.end
	derivation := arraylist.New()
	maxSteps := p.stepBound(len(input))
	pos, steps := 0, 0
	for len(stack) > 2 || !(buf[pos] == p.end && stack[len(stack)-1] == p.start) {
		if steps++; steps > maxSteps {
			return nil, parseFailure(pos, buf[pos], "step limit exceeded")
		}
		tos, la := stack[len(stack)-1], buf[pos]
		action := p.table.Action(tos, la)
		if p.trace {
			tracer().Debugf("action(%s,%s)=%s, stack=%v", tos, la, valstring(action), stack)
		}
		switch action {
		case Shift:
			if la == p.end { // cannot happen with tables from BuildTable
				return nil, parseFailure(pos, la, "shift of end-of-input marker")
			}
			stack = append(stack, la)
			pos++
		case Reduce:
			prod, l := p.handle(stack)
			if prod == nil {
				return nil, parseFailure(pos, la, "no production matches top of stack")
			}
			if p.trace {
				tracer().Debugf("reduce %v", prod)
			}
			stack = append(stack[:len(stack)-l], prod.Head)
			derivation.Add(prod)
		default:
			prod, ok := p.table.Epsilon(tos, la)
			if !ok && len(stack) == 1 && la == p.end && p.nullable != nil {
				prod, ok = p.nullable, true // empty input, start → ε
			}
			if !ok {
				return nil, parseFailure(pos, la, "")
			}
			if p.trace {
				tracer().Debugf("insert %v", prod)
			}
			stack = append(stack, prod.Head)
			derivation.Add(prod)
		}
	}
	tracer().Infof("accepted input of length %d with %d productions", len(input), derivation.Size())
	n := derivation.Size()
	d := make(Derivation, n) // productions have been collected innermost first
	it := derivation.Iterator()
	for it.Next() {
		d[n-1-it.Index()] = it.Value().(*grammar.Production)
	}
	return d, nil
}

// handle searches for the longest suffix of the stack which matches the body
// of a production. The bottom of the stack (end-of-input marker) never takes
// part. For bodies shared by more than one production, the first production
// in declaration order is selected.
//
// handle returns the production and the length of its body, or (nil, 0).
func (p *Parser) handle(stack []grammar.Symbol) (*grammar.Production, int) {
	l := len(stack) - 1
	if l > p.maxlen {
		l = p.maxlen
	}
	for ; l > 0; l-- {
		key := grammar.BodyKey(stack[len(stack)-l:])
		if prods, ok := p.bodies[key]; ok {
			return prods[0], l
		}
	}
	return nil, 0
}

func (p *Parser) stepBound(inputLen int) int {
	if p.maxSteps > 0 {
		return p.maxSteps
	}
	return 64*(inputLen+1)*(len(p.bodies)+1) + 1024
}

// --- Helpers ----------------------------------------------------------

// valstring is a short helper to stringify an action table entry.
func valstring(a Action) string {
	switch a {
	case Shift:
		return "<shift>"
	case Reduce:
		return "<reduce>"
	}
	return "<none>"
}
