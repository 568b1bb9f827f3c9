package grammar

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/nff"
	"github.com/npillmayer/nff/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const sampleGrammar = `S -> A B
A -> a
A -> 0
B -> b
`

func TestLoadSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.grammar")
	defer teardown()
	//
	rt, err := LoadString("sample", sampleGrammar)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []rune{'S', 'A', 'B'}, rt.Nonterminals())
	assert.Equal(t, 4, rt.RuleCount())
	assert.Len(t, rt.Rules('A'), 2)
	S := rt.Rules('S')[0]
	assert.Equal(t, []Symbol{Nonterminal('A'), Nonterminal('B')}, S.RHS())
	assert.Equal(t, 1, S.Line)
	eps := rt.Rules('A')[1]
	assert.True(t, eps.IsEpsilon())
	assert.Equal(t, 3, eps.Line)
	assert.Equal(t, []rune{'a', 'b'}, rt.Terminals())
}

func TestLoadWhitespaceAndFiltering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.grammar")
	defer teardown()
	//
	rt, err := LoadString("ws", "\n   S   ->a  S\tb\r\n\n\t\nS->0\nS -> xéy\n")
	if err != nil {
		t.Fatal(err)
	}
	rules := rt.Rules('S')
	if assert.Len(t, rules, 3) {
		assert.Equal(t, "S -> a S b", rules[0].String())
		assert.Equal(t, 2, rules[0].Line)
		assert.Equal(t, "S -> ε", rules[1].String())
		assert.Equal(t, "S -> x y", rules[2].String(), "non-ASCII characters are dropped")
		assert.Equal(t, 6, rules[2].Line)
	}
}

func TestLoadClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.grammar")
	defer teardown()
	//
	rt, err := LoadString("classes", "E -> ( E ) + 1 - E 0\n")
	if err != nil {
		t.Fatal(err)
	}
	kinds := []SymbolKind{}
	for _, sym := range rt.Rules('E')[0].RHS() {
		kinds = append(kinds, sym.Kind())
	}
	assert.Equal(t, []SymbolKind{
		TerminalKind, NonterminalKind, TerminalKind, TerminalKind, TerminalKind,
		TerminalKind, NonterminalKind, EmptyKind,
	}, kinds)
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.grammar")
	defer teardown()
	//
	for _, test := range []struct {
		name   string
		source string
		err    error
		line   int
	}{
		{name: "two-character lhs", source: "Ab -> c", err: ErrLHSTooLong, line: 1},
		{name: "no separator", source: "S -> a\nA b c\n", err: ErrMissingSeparator, line: 2},
		{name: "two separators", source: "S -> a -> b", err: ErrMultipleSeparators, line: 1},
		{name: "empty lhs", source: " -> a", err: ErrMissingLHS, line: 1},
		{name: "lowercase lhs", source: "s -> a", err: ErrMalformedLHS, line: 1},
		{name: "digit lhs", source: "0 -> a", err: ErrMalformedLHS, line: 1},
		{name: "empty rhs", source: "S -> a\nS ->   \n", err: ErrMissingRHS, line: 2},
		{name: "undefined non-terminal", source: "S -> a B\nS -> C\nB -> b", err: ErrUndefinedNonterminal, line: 2},
		{name: "no rules", source: "\n\n", err: ErrEmptyGrammar, line: 0},
	} {
		rt, err := LoadString(test.name, test.source)
		assert.Nil(t, rt, test.name)
		if !assert.Error(t, err, test.name) {
			continue
		}
		assert.True(t, errors.Is(err, test.err), "%s: expected %v, got %v", test.name, test.err, err)
		var lerr *LoadError
		if assert.True(t, errors.As(err, &lerr), test.name) {
			assert.Equal(t, test.line, lerr.Line, test.name)
		}
	}
}

func TestLoadUndefinedReportsNonterminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.grammar")
	defer teardown()
	//
	_, err := LoadString("G", "A -> b\nS -> X\nA -> Y\n")
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected a load error, got %v", err)
	}
	assert.Equal(t, UndefinedNonterminal, lerr.Kind)
	assert.Equal(t, "X", lerr.Detail)
	assert.Equal(t, 2, lerr.Line)
	assert.Contains(t, err.Error(), "undefined non-terminal")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestLoadReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.grammar")
	defer teardown()
	//
	rt, err := Load("reader", strings.NewReader(sampleGrammar))
	if assert.NoError(t, err) {
		assert.Equal(t, 3, rt.Size())
	}
	_, err = Load("broken", failingReader{})
	assert.True(t, errors.Is(err, ErrRead))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestLoadTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.grammar")
	defer teardown()
	//
	tok := func(typ nff.TokType, lexeme string, line int) nff.Token {
		return scanner.MakeDefaultToken(typ, lexeme, nff.Span{}, line)
	}
	tokenizer := scanner.NewSliceTokenizer(
		tok(scanner.Upper, "S", 1), tok(scanner.Arrow, "->", 1),
		tok(scanner.Char, "x", 1), tok(scanner.Upper, "S", 1), tok(scanner.Newline, "\n", 1),
		tok(scanner.Upper, "S", 2), tok(scanner.Arrow, "->", 2), tok(scanner.Zero, "0", 2),
	)
	rt, err := LoadTokens("tokens", tokenizer)
	if assert.NoError(t, err) {
		assert.Equal(t, 2, rt.RuleCount())
		assert.Equal(t, "S -> x S", rt.Rules('S')[0].String())
	}
}

func TestLoadUnicodeBlankLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.grammar")
	defer teardown()
	//
	rt, err := LoadString("unicode", "S -> a\n\u2003\n\u00a0\t\u2003\nS -> b\n")
	if assert.NoError(t, err, "lines of unicode white space should be skipped") {
		rules := rt.Rules('S')
		assert.Len(t, rules, 2)
		assert.Equal(t, 4, rules[1].Line)
	}
	_, err = LoadString("unicode", "S -> a\n\u2003\u00e9\n")
	var lerr *LoadError
	if assert.True(t, errors.As(err, &lerr)) {
		assert.Equal(t, MissingSeparator, lerr.Kind)
		assert.Equal(t, 2, lerr.Line)
	}
}
