/*
Package tree reconstructs syntax trees from the derivations of precedence parsers.

A parser reports a derivation as a sequence of productions, outermost
production first. Build consumes the sequence with a cursor and re-expands every
non-terminal of a production body with the next production in line. The
orientation tells in which order the non-terminals of a body have been expanded:

    d, _ := parser.ParseString("aacbb")
    root := tree.Build(d, g, tree.Right)
    fmt.Println(root)       // S(a, S(a, S(c), b), b)
    fmt.Println(root.Yield()) // aacbb

Precedence parsers record the reductions of a bottom-up parse, which makes
their derivations rightmost derivations. Use orientation Right for them.
Orientation Left matches leftmost derivations. For grammars with at most
one non-terminal per production body both orientations yield the same tree.

If a derivation is too short for the tree structure it implies, the missing
subtrees are omitted and the partial tree is returned. Builder.Missing reports
the number of omitted subtrees, Builder.Remaining the number of productions
left over.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weakprec.tree'.
func tracer() tracing.Trace {
	return tracing.Select("weakprec.tree")
}
