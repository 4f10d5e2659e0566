/*
Package scanner defines an interface for scanners to be used with the parsers of
package precedence.

Precedence parsers consume grammar symbols. A scanner produces tokens, which are
mapped to symbols by Symbols, usually by taking the lexeme of a token or, for
token categories like identifiers, a category name.

Two default scanner implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/weakprec"
	"github.com/npillmayer/weakprec/grammar"
)

// tracer traces with key 'weakprec.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("weakprec.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() weakprec.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune        // last token this scanner has produced
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() weakprec.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   weakprec.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   weakprec.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   weakprec.TokType
	lexeme string
	Val    interface{}
	span   weakprec.Span
}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ weakprec.TokType, lexeme string, span weakprec.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() weakprec.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() weakprec.Span {
	return t.span
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// --- Symbols ---------------------------------------------------------------

// SymbolMapper maps a token to a grammar symbol.
type SymbolMapper func(weakprec.Token) grammar.Symbol

// LexemeSymbol is the default symbol mapper: the symbol is the lexeme of the token.
func LexemeSymbol(token weakprec.Token) grammar.Symbol {
	return grammar.Symbol(token.Lexeme())
}

// CategorySymbols creates a symbol mapper which maps tokens of selected
// categories to fixed symbols (e.g., every identifier to "id") and all other
// tokens to their lexemes.
func CategorySymbols(categories map[weakprec.TokType]grammar.Symbol) SymbolMapper {
	return func(token weakprec.Token) grammar.Symbol {
		if sym, ok := categories[token.TokType()]; ok {
			return sym
		}
		return LexemeSymbol(token)
	}
}

// Symbols reads tokens from a tokenizer until EOF and maps them to grammar
// symbols. If mapper is nil, LexemeSymbol is used.
func Symbols(tokenizer Tokenizer, mapper SymbolMapper) []grammar.Symbol {
	if mapper == nil {
		mapper = LexemeSymbol
	}
	var syms []grammar.Symbol
	for token := tokenizer.NextToken(); token.TokType() != EOF; token = tokenizer.NextToken() {
		sym := mapper(token)
		tracer().Debugf("token %q/%d ⇒ symbol %s", token.Lexeme(), token.TokType(), sym)
		syms = append(syms, sym)
	}
	return syms
}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case weakprec.Token:
		return t.Lexeme()
	default:
		return fmt.Sprintf("%v", t)
	}
}
