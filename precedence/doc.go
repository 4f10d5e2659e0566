/*
Package precedence implements weak precedence parsing.

Symbol Sets

For every non-terminal N, ESQ(N) holds the symbols which may appear leftmost
in a derivation from N, DIR(N) the symbols which may appear rightmost.

    esq := precedence.Esq(g)
    dir := precedence.Dir(g)
    fmt.Printf("ESQ(S) = %v, DIR(S) = %v", esq["S"], dir["S"])

    // Output for S → a S b | c:
    ESQ(S) = { a, c }, DIR(S) = { b, c }

Precedence Relations and Tables

From the symbol sets and adjacency within production bodies the Wirth–Weber
relations <, = and > are derived. Both < and = tell the parser to shift, > tells
it to reduce. The relations are anchored on a start symbol and an end-of-input
marker, which must not be a symbol of the grammar.

    R := precedence.DeriveRelations(g, "S", "$")
    table := precedence.BuildTable(g, R, "$")
    if table.HasConflicts { ... }  // not a weak precedence grammar

Parsing

Clients usually do not build tables themselves, but let NewParser do it.

    p, err := precedence.NewParser(g, "S", "$")
    derivation, err := p.ParseString("aacbb")

The parser shifts input symbols onto a stack and reduces the longest suffix of
the stack which matches a production body, whenever the table says so. The
resulting derivation lists the productions applied, outermost first. Package tree
reconstructs a syntax tree from it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package precedence

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weakprec.precedence'.
func tracer() tracing.Trace {
	return tracing.Select("weakprec.precedence")
}
