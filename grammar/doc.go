/*
Package grammar implements context-free grammars for precedence parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may contain
epsilon-productions.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").T("a").N("S").T("b").End()  // S  ->  a S b
    b.LHS("S").T("c").End()                // S  ->  c
    b.LHS("A").Epsilon()                   // A  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [a S b]
   1: [S] ::= [c]
   2: [A] ::= []

Reading Grammars

Small grammars are more conveniently written down in a line format, one head per
line, alternatives separated by '|':

    g, err := grammar.Parse("G", `
        S -> a S b | c      # nested
        A -> ε
    `)

Symbols occuring as the head of a rule are non-terminals, all other symbols are
terminals. The designated empty symbol (default "ε") denotes an empty body.
Finally, ReadYAML loads a grammar file, which names the start symbol and the
end-of-input marker as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weakprec.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("weakprec.grammar")
}
