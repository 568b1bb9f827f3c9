/*
Package lexmach provides a tokenizer for grammar source text, backed by
lexmachine (https://github.com/timtadh/lexmachine).

Grammar source is a sequence of rule lines

    S -> A b
    A -> 0

which lexmach splits into ARROW, NL, UPPER, ZERO and CHAR tokens.
Blanks, tabs and carriage returns are skipped. Every byte not covered by
one of the other categories is delivered as a CHAR token of length 1,
leaving it to the grammar loader to decide what to keep.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"strings"

	"github.com/npillmayer/nff"
	"github.com/npillmayer/nff/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'nff.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("nff.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init function
// for adding patterns, a list of literals ("->", …) and a map for translating
// literals to their token categories.
// Patterns added by init take precedence over literals of equal length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]nff.TokType) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// GrammarAdapter creates an adapter for tokenizing grammar source text.
func GrammarAdapter() (*LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`\n`), MakeToken("NL", scanner.Newline))
		lexer.Add([]byte(`( |\t|\r)+`), Skip)
		lexer.Add([]byte(`[A-Z]`), MakeToken("UPPER", scanner.Upper))
		lexer.Add([]byte(`0`), MakeToken("ZERO", scanner.Zero))
		lexer.Add([]byte(`.`), MakeToken("CHAR", scanner.Char))
	}
	literals := []string{"->"}
	tokenIds := map[string]nff.TokType{"->": scanner.Arrow}
	return NewLMAdapter(init, literals, tokenIds)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, scanner.LogError}, nil
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
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Input lexmachine cannot consume is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() nff.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		pos := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(scanner.EOF, "", nff.Span{pos, pos}, 0)
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q at line %d", scanner.TokTypeString(nff.TokType(token.Type)),
		token.Lexeme, token.StartLine)
	from := uint64(token.TC)
	return scanner.MakeDefaultToken(
		nff.TokType(token.Type),
		string(token.Lexeme),
		nff.Span{from, from + uint64(len(token.Lexeme))},
		token.StartLine,
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id nff.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), name, m), nil
	}
}
