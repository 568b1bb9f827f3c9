package grammar

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors found while loading or building a grammar.
type ErrorKind int

// Kinds of load errors.
const (
	MissingSeparator ErrorKind = iota + 1
	MultipleSeparators
	MissingLHS
	LHSTooLong
	MalformedLHS
	MissingRHS
	InvalidSymbol
	UndefinedNonterminal
	EmptyGrammar
	ReadFailure
)

// Sentinel errors, one per ErrorKind. Every *LoadError matches the sentinel
// of its kind with errors.Is.
var (
	ErrMissingSeparator     = errors.New("missing separator '->'")
	ErrMultipleSeparators   = errors.New("more than one separator '->'")
	ErrMissingLHS           = errors.New("missing left hand side")
	ErrLHSTooLong           = errors.New("left hand side too long")
	ErrMalformedLHS         = errors.New("left hand side is not an uppercase letter")
	ErrMissingRHS           = errors.New("missing right hand side")
	ErrInvalidSymbol        = errors.New("invalid symbol")
	ErrUndefinedNonterminal = errors.New("undefined non-terminal")
	ErrEmptyGrammar         = errors.New("grammar has no rules")
	ErrRead                 = errors.New("cannot read grammar")
)

var sentinels = map[ErrorKind]error{
	MissingSeparator:     ErrMissingSeparator,
	MultipleSeparators:   ErrMultipleSeparators,
	MissingLHS:           ErrMissingLHS,
	LHSTooLong:           ErrLHSTooLong,
	MalformedLHS:         ErrMalformedLHS,
	MissingRHS:           ErrMissingRHS,
	InvalidSymbol:        ErrInvalidSymbol,
	UndefinedNonterminal: ErrUndefinedNonterminal,
	EmptyGrammar:         ErrEmptyGrammar,
	ReadFailure:          ErrRead,
}

func (k ErrorKind) String() string {
	if err, ok := sentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("<error kind %d>", k)
}

// LoadError is the error type of the grammar loader and the grammar builder.
type LoadError struct {
	Kind    ErrorKind
	Grammar string // name of the grammar
	Line    int    // line number in grammar source, 0 if unknown
	Text    string // offending source line or rule
	Detail  string // additional information, e.g. the undefined non-terminal
	cause   error
}

func newLoadError(kind ErrorKind, grammar string, line int, text, detail string) *LoadError {
	return &LoadError{
		Kind:    kind,
		Grammar: grammar,
		Line:    line,
		Text:    text,
		Detail:  detail,
	}
}

func (e *LoadError) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Detail)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Text != "" {
		msg = fmt.Sprintf("%s, in %q", msg, e.Text)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return fmt.Sprintf("grammar %s: %s", e.Grammar, msg)
}

// Is matches the sentinel error of the error's kind.
func (e *LoadError) Is(target error) bool {
	return target == sentinels[e.Kind]
}

// Unwrap returns the underlying cause, if any.
func (e *LoadError) Unwrap() error {
	return e.cause
}
