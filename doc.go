/*
Package weakprec is a toolbox for weak precedence parsing.

Weak precedence parsing is a bottom-up technique for context-free grammars. It
relaxes simple precedence parsing: the precedence relations only decide between
shift and reduce, while the length of a handle is found by matching the top of
the parse stack against the bodies of the grammar's productions.
Package structure is as follows:

■ grammar: Package grammar holds context-free grammars, a grammar builder and
readers for a small text format and for YAML grammar files.

■ precedence: Package precedence computes ESQ/DIR symbol sets, Wirth–Weber
relations and the shift/reduce table, and provides the parser driver which
produces a derivation for an input sequence.

■ tree: Package tree reconstructs a syntax tree from a derivation.

■ scanner: Package scanner defines an interface for scanners to feed symbols to
a parser, with a default implementation on top of text/scanner and an adapter for
lexmachine.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package weakprec
