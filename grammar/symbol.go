package grammar

import "fmt"

// SymbolKind tells the three shapes of grammar symbols apart.
type SymbolKind uint8

// Kinds of grammar symbols.
const (
	NonterminalKind SymbolKind = iota + 1
	TerminalKind
	EmptyKind
)

func (k SymbolKind) String() string {
	switch k {
	case NonterminalKind:
		return "non-terminal"
	case TerminalKind:
		return "terminal"
	case EmptyKind:
		return "empty"
	}
	return fmt.Sprintf("<kind %d>", k)
}

// Symbol is a grammar symbol. It is either a non-terminal, identified by an
// uppercase letter, a terminal character, or the marker for the empty string.
// Symbols are values and cannot be changed once created.
type Symbol struct {
	kind  SymbolKind
	value rune
}

// Nonterminal creates a non-terminal symbol.
func Nonterminal(id rune) Symbol {
	return Symbol{kind: NonterminalKind, value: id}
}

// Terminal creates a terminal symbol.
func Terminal(c rune) Symbol {
	return Symbol{kind: TerminalKind, value: c}
}

// Empty creates the symbol for the empty string.
func Empty() Symbol {
	return Symbol{kind: EmptyKind}
}

// Kind returns the shape of the symbol.
func (s Symbol) Kind() SymbolKind {
	return s.kind
}

// Value is the identifier of a non-terminal or the character of a terminal.
// It is 0 for the empty symbol.
func (s Symbol) Value() rune {
	return s.value
}

func (s Symbol) IsNonterminal() bool {
	return s.kind == NonterminalKind
}

func (s Symbol) IsTerminal() bool {
	return s.kind == TerminalKind
}

func (s Symbol) IsEmpty() bool {
	return s.kind == EmptyKind
}

// String returns the symbol as it would appear in grammar source, with
// the empty symbol shown as 'ε'.
func (s Symbol) String() string {
	switch s.kind {
	case NonterminalKind, TerminalKind:
		return string(s.value)
	case EmptyKind:
		return "ε"
	}
	return "<invalid>"
}

// classify maps a character of a rule's right hand side to a symbol.
func classify(c rune) Symbol {
	switch {
	case c == '0':
		return Empty()
	case isNonterminalID(c):
		return Nonterminal(c)
	}
	return Terminal(c)
}

func isNonterminalID(c rune) bool {
	return c >= 'A' && c <= 'Z'
}
