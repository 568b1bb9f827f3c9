package grammar

import (
	"bytes"
	"fmt"
)

// Rule is a production rule of a grammar: a left hand side non-terminal and
// a sequence of symbols on the right hand side.
type Rule struct {
	LHS    rune     // identifier of the non-terminal this rule belongs to
	rhs    []Symbol // right hand side
	Serial int      // ordinal number of the rule within its rule table
	Line   int      // line of grammar source the rule was read from, or 0
}

// RHS returns the right hand side of a rule. Clients must not modify the
// slice.
func (r *Rule) RHS() []Symbol {
	return r.rhs
}

// Len is the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for rules consisting of nothing but empty symbols.
func (r *Rule) IsEpsilon() bool {
	for _, sym := range r.rhs {
		if !sym.IsEmpty() {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%c ->", r.LHS))
	for _, sym := range r.rhs {
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}
	return b.String()
}

// Source returns the rule in grammar source syntax, suitable for loading
// it again.
func (r *Rule) Source() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%c ->", r.LHS))
	for _, sym := range r.rhs {
		b.WriteByte(' ')
		if sym.IsEmpty() {
			b.WriteByte('0')
			continue
		}
		b.WriteRune(sym.Value())
	}
	return b.String()
}
