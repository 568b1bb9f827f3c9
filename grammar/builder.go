package grammar

import "fmt"

// Builder is a type for assembling a rule table in code. Builders are
// created with NewBuilder; rules are added with a fluent interface:
//
//    b.LHS('A').N('B').T('c').End()   // A -> B c
//    b.LHS('B').Epsilon()             // B -> 0
//
// The first error found is reported by RuleTable().
type Builder struct {
	rt  *RuleTable
	err error
}

// NewBuilder creates a builder for a rule table with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{rt: newRuleTable(name)}
}

// RuleBuilder collects the right hand side of a single rule.
type RuleBuilder struct {
	b    *Builder
	rule *Rule
}

// LHS starts a new rule for non-terminal N.
func (b *Builder) LHS(N rune) *RuleBuilder {
	if !isNonterminalID(N) {
		b.fail(MalformedLHS, string(N))
	}
	return &RuleBuilder{b: b, rule: &Rule{LHS: N}}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(id rune) *RuleBuilder {
	if !isNonterminalID(id) {
		rb.b.fail(InvalidSymbol, fmt.Sprintf("non-terminal %c", id))
	}
	rb.rule.rhs = append(rb.rule.rhs, Nonterminal(id))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(c rune) *RuleBuilder {
	if isNonterminalID(c) || c == '0' || c > 127 || c <= ' ' {
		rb.b.fail(InvalidSymbol, fmt.Sprintf("terminal %c", c))
	}
	rb.rule.rhs = append(rb.rule.rhs, Terminal(c))
	return rb
}

// End finishes the rule and adds it to the rule table.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rule.rhs) == 0 {
		rb.b.fail(MissingRHS, string(rb.rule.LHS))
	}
	if rb.b.err == nil {
		rb.b.rt.addRule(rb.rule)
	}
	return rb.rule
}

// Epsilon appends the empty symbol and finishes the rule.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = append(rb.rule.rhs, Empty())
	return rb.End()
}

func (b *Builder) fail(kind ErrorKind, detail string) {
	if b.err == nil {
		b.err = newLoadError(kind, b.rt.Name, 0, "", detail)
	}
}

// RuleTable returns the rule table built so far, after checking that every
// non-terminal used has rules of its own.
func (b *Builder) RuleTable() (*RuleTable, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.rt.Size() == 0 {
		return nil, newLoadError(EmptyGrammar, b.rt.Name, 0, "", "")
	}
	if err := b.rt.validate(); err != nil {
		return nil, err
	}
	return b.rt, nil
}
