package grammar

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/nff"
	"github.com/npillmayer/nff/scanner"
	"github.com/npillmayer/nff/scanner/lexmach"
)

// Load reads grammar source text from r and creates a rule table from it.
// The name is used for tracing and error messages.
//
// Every error is fatal and reported as a *LoadError; no partial rule table
// is returned.
func Load(name string, r io.Reader) (*RuleTable, error) {
	source, err := ioutil.ReadAll(r)
	if err != nil {
		lerr := newLoadError(ReadFailure, name, 0, "", "")
		lerr.cause = err
		return nil, lerr
	}
	return LoadString(name, string(source))
}

// LoadString creates a rule table from grammar source text.
func LoadString(name string, source string) (*RuleTable, error) {
	adapter, err := lexmach.GrammarAdapter()
	if err != nil {
		return nil, fmt.Errorf("cannot create grammar tokenizer: %w", err)
	}
	sc, err := adapter.Scanner(source)
	if err != nil {
		lerr := newLoadError(ReadFailure, name, 0, "", "")
		lerr.cause = err
		return nil, lerr
	}
	return LoadTokens(name, sc)
}

// LoadTokens creates a rule table from a stream of grammar source tokens
// (see package scanner for the token categories). Reading stops at the first
// EOF token.
func LoadTokens(name string, tokenizer scanner.Tokenizer) (*RuleTable, error) {
	ld := &loader{rt: newRuleTable(name)}
	var scanErr error
	tokenizer.SetErrorHandler(func(e error) {
		scanner.LogError(e)
		if scanErr == nil {
			scanErr = e
		}
	})
	line := make([]nff.Token, 0, 16)
	lineno := 1
	for {
		token := tokenizer.NextToken()
		typ := token.TokType()
		if typ != scanner.EOF && typ != scanner.Newline {
			line = append(line, token)
			continue
		}
		if err := ld.ruleLine(lineno, line); err != nil {
			return nil, err
		}
		if typ == scanner.EOF {
			break
		}
		line = line[:0]
		lineno++
	}
	if scanErr != nil {
		lerr := newLoadError(ReadFailure, name, 0, "", "")
		lerr.cause = scanErr
		return nil, lerr
	}
	if ld.rt.Size() == 0 {
		return nil, newLoadError(EmptyGrammar, name, 0, "", "")
	}
	if err := ld.rt.validate(); err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s: %d non-terminals, %d rules", name, ld.rt.Size(), ld.rt.RuleCount())
	ld.rt.Dump()
	return ld.rt, nil
}

type loader struct {
	rt *RuleTable
}

// ruleLine turns the tokens of a single line of grammar source into a rule.
// Blank lines are skipped.
func (ld *loader) ruleLine(lineno int, tokens []nff.Token) error {
	if isBlank(tokens) {
		return nil
	}
	text := lexemes(tokens)
	arrow := -1
	for i, t := range tokens {
		if t.TokType() != scanner.Arrow {
			continue
		}
		if arrow >= 0 {
			return newLoadError(MultipleSeparators, ld.rt.Name, lineno, text, "")
		}
		arrow = i
	}
	if arrow < 0 {
		return newLoadError(MissingSeparator, ld.rt.Name, lineno, text, "")
	}
	lhs := strings.TrimSpace(lexemes(tokens[:arrow]))
	switch utf8.RuneCountInString(lhs) {
	case 0:
		return newLoadError(MissingLHS, ld.rt.Name, lineno, text, "")
	case 1:
	default:
		return newLoadError(LHSTooLong, ld.rt.Name, lineno, text, lhs)
	}
	N, _ := utf8.DecodeRuneInString(lhs)
	if !isNonterminalID(N) {
		return newLoadError(MalformedLHS, ld.rt.Name, lineno, text, lhs)
	}
	rhs := make([]Symbol, 0, len(tokens)-arrow)
	for _, t := range tokens[arrow+1:] {
		switch t.TokType() {
		case scanner.Upper, scanner.Zero, scanner.Char:
			for _, c := range t.Lexeme() {
				if c < utf8.RuneSelf && !unicode.IsSpace(c) {
					rhs = append(rhs, classify(c))
				}
			}
		}
	}
	if len(rhs) == 0 {
		return newLoadError(MissingRHS, ld.rt.Name, lineno, text, "")
	}
	rule := &Rule{LHS: N, rhs: rhs, Line: lineno}
	if ld.rt.register(N) {
		tracer().Debugf("new non-terminal %c", N)
	}
	ld.rt.addRule(rule)
	tracer().Debugf("line %d: %s", lineno, rule)
	return nil
}

func lexemes(tokens []nff.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Lexeme())
	}
	return b.String()
}

// isBlank is true for lines holding nothing but white space. Multi-byte
// characters arrive split into single-byte tokens, so the check is done on
// the joined lexemes.
func isBlank(tokens []nff.Token) bool {
	for _, t := range tokens {
		if t.TokType() != scanner.Char {
			return false
		}
	}
	return strings.TrimSpace(lexemes(tokens)) == ""
}
