/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of package precedence.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Please refer to the lexmachine documentation on how to instruct lexmachine.
Package lexmach is opinionated on how to do the setup of lexmachine.

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      ignores the scanned match
		// lexmach.MakeToken wraps a scanned match into a token
	}

	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)

A scanner is instantiated for each concrete input sequence. It implements the
scanner.Tokenizer interface and may be handed to a precedence parser directly.
Precedence parsers work on grammar symbols, so token categories like identifiers
usually have to be mapped to a symbol of the grammar:

	scan, err := LM.Scanner("x + y * z")
	syms := scanner.Symbols(scan, LM.Categories("ID"))   // ID + ID * ID
	derivation, err := parser.Parse(syms)

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
