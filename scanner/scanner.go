/*
Package scanner defines an interface for tokenizers feeding the grammar loader
of package grammar.

The default implementation is an adapter for lexmachine, living in sub-package
`lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/nff"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nff.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("nff.scanner")
}

// Token categories of grammar source text. EOF has the same value as
// text/scanner.EOF.
const (
	EOF     nff.TokType = -1
	Arrow   nff.TokType = 1 // "->", separating left and right hand side
	Newline nff.TokType = 2 // end of a rule line
	Upper   nff.TokType = 3 // uppercase ASCII letter, i.e. a non-terminal
	Zero    nff.TokType = 4 // '0', the empty-production marker
	Char    nff.TokType = 5 // any other single byte
)

// TokTypeString returns a readable name for a token category.
func TokTypeString(t nff.TokType) string {
	switch t {
	case EOF:
		return "EOF"
	case Arrow:
		return "ARROW"
	case Newline:
		return "NL"
	case Upper:
		return "UPPER"
	case Zero:
		return "ZERO"
	case Char:
		return "CHAR"
	}
	return fmt.Sprintf("<%d>", t)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() nff.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for tokenizers.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// tokenizer.
type DefaultToken struct {
	kind   nff.TokType
	lexeme string
	span   nff.Span
	line   int
}

var _ nff.Token = DefaultToken{}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ nff.TokType, lexeme string, span nff.Span, line int) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
		line:   line,
	}
}

func (t DefaultToken) TokType() nff.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() nff.Span {
	return t.span
}

func (t DefaultToken) Line() int {
	return t.line
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s|%q@%d", TokTypeString(t.kind), t.lexeme, t.line)
}

// --- A tokenizer over pre-built tokens ---------------------------------------

// SliceTokenizer hands out a fixed sequence of tokens, followed by EOF.
// It is useful for feeding the grammar loader tokens constructed elsewhere.
type SliceTokenizer struct {
	tokens []nff.Token
	pos    int
}

var _ Tokenizer = (*SliceTokenizer)(nil)

// NewSliceTokenizer creates a tokenizer for a sequence of tokens.
func NewSliceTokenizer(tokens ...nff.Token) *SliceTokenizer {
	return &SliceTokenizer{tokens: tokens}
}

// NextToken is part of the Tokenizer interface.
func (st *SliceTokenizer) NextToken() nff.Token {
	if st.pos >= len(st.tokens) {
		var line int
		if len(st.tokens) > 0 {
			line = st.tokens[len(st.tokens)-1].Line()
		}
		return MakeDefaultToken(EOF, "", nff.Span{}, line)
	}
	t := st.tokens[st.pos]
	st.pos++
	return t
}

// SetErrorHandler is part of the Tokenizer interface. A SliceTokenizer never
// produces errors.
func (st *SliceTokenizer) SetErrorHandler(func(error)) {}
