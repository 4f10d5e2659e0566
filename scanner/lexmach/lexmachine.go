package lexmach

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/weakprec"
	"github.com/npillmayer/weakprec/grammar"
	"github.com/npillmayer/weakprec/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'weakprec.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("weakprec.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer    *lexmachine.Lexer
	tokenIds map[string]int
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{tokenIds: tokenIds}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// Categories creates a symbol mapper for tokens of this adapter. Tokens of the
// named categories are mapped to the category name, all other tokens to their
// lexeme. Category names must be keys of the token-ID map of the adapter.
func (lm *LMAdapter) Categories(names ...string) scanner.SymbolMapper {
	cats := make(map[weakprec.TokType]grammar.Symbol, len(names))
	for _, name := range names {
		if id, ok := lm.tokenIds[name]; ok {
			cats[weakprec.TokType(id)] = grammar.Symbol(name)
		} else {
			tracer().Errorf("unknown token category %q", name)
		}
	}
	return scanner.CategorySymbols(cats)
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface. Unconsumed input is reported
// to the error handler and skipped.
func (lms *LMScanner) NextToken() weakprec.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", weakprec.Span{0, 0})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", weakprec.Span{0, 0})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("lexmachine token %d | %q", token.Type, token.Lexeme)
	return scanner.MakeDefaultToken(
		weakprec.TokType(token.Type),
		string(token.Lexeme),
		weakprec.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
