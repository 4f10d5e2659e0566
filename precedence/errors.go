package precedence

import (
	"errors"
	"fmt"

	"github.com/npillmayer/weakprec/grammar"
)

// ErrorKind classifies errors of package precedence.
type ErrorKind int

// Kinds of errors.
const (
	NoError        ErrorKind = iota
	ConfigError              // invalid grammar/start/end-marker combination
	InputTypeError           // parser input of unsupported type
	ParseError               // input not in the language of the grammar
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigError:
		return "configuration error"
	case InputTypeError:
		return "input type error"
	case ParseError:
		return "parse error"
	}
	return "no error"
}

// Error is the error type for configuration and input errors.
// Use errors.Is with ErrConfig, ErrInputType or ErrParse to check for a kind.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrConfig    = &Error{Kind: ConfigError}
	ErrInputType = &Error{Kind: InputTypeError}
	ErrParse     = &Error{Kind: ParseError}
)

func configError(format string, args ...interface{}) error {
	err := &Error{Kind: ConfigError, Msg: fmt.Sprintf(format, args...)}
	tracer().Errorf("%v", err)
	return err
}

func inputTypeError(input interface{}) error {
	return &Error{
		Kind: InputTypeError,
		Msg:  fmt.Sprintf("input must be a string or a sequence of symbols, is %T", input),
	}
}

// ParseFailure is returned by a parser if an input sequence is not in the
// language of the grammar. It reports the number of input symbols consumed
// and the offending lookahead symbol.
type ParseFailure struct {
	Position int            // count of symbols consumed so far
	Found    grammar.Symbol // lookahead symbol at Position
	Reason   string
}

func (f *ParseFailure) Error() string {
	if f.Reason == "" {
		return fmt.Sprintf("parse error at position %d: unexpected %s", f.Position, f.Found)
	}
	return fmt.Sprintf("parse error at position %d: unexpected %s (%s)", f.Position, f.Found, f.Reason)
}

// Is matches ErrParse.
func (f *ParseFailure) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == ParseError
}

func parseFailure(pos int, found grammar.Symbol, reason string) error {
	f := &ParseFailure{Position: pos, Found: found, Reason: reason}
	tracer().Errorf("%v", f)
	return f
}

// KindOf returns the kind of an error returned by this package, or NoError
// for nil and for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	var f *ParseFailure
	switch {
	case err == nil:
		return NoError
	case errors.As(err, &f):
		return ParseError
	case errors.As(err, &e):
		return e.Kind
	}
	return NoError
}
