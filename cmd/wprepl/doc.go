/*
Command wprepl provides an interactive command line tool for experiments with
weak precedence grammars.

Users enter input sentences, one per line. wprepl parses each sentence and
prints the resulting syntax tree. Entering lines starting with ':' inspects
the grammar and its shift/reduce table:

    :grammar        list the productions
    :sets           ESQ and DIR sets of all non-terminals
    :rel            precedence relations
    :table          the shift/reduce table
    :html <file>    write the shift/reduce table as HTML
    :quit           leave

Grammars are loaded from YAML files with flag -grammar, otherwise the grammar

    S → a S b | c

is used.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weakprec.repl'
func tracer() tracing.Trace {
	return tracing.Select("weakprec.repl")
}
