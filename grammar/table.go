package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// RuleTable maps every non-terminal of a grammar to its production rules.
// Non-terminals are kept in the order they first appeared as a left hand side,
// rules in the order they have been added.
//
// A rule table is read-only once it has been returned by the loader or a
// builder.
type RuleTable struct {
	Name  string
	rules *linkedhashmap.Map // rune -> []*Rule
	count int                // number of rules
}

func newRuleTable(name string) *RuleTable {
	return &RuleTable{
		Name:  name,
		rules: linkedhashmap.New(),
	}
}

// register enters non-terminal N with an empty rule list, if it is not
// already present. Returns true for newly registered non-terminals.
func (rt *RuleTable) register(N rune) bool {
	if _, found := rt.rules.Get(N); found {
		return false
	}
	rt.rules.Put(N, []*Rule{})
	return true
}

func (rt *RuleTable) addRule(r *Rule) {
	rt.register(r.LHS)
	r.Serial = rt.count
	rt.count++
	rules, _ := rt.rules.Get(r.LHS)
	rt.rules.Put(r.LHS, append(rules.([]*Rule), r))
}

// Has is true if N is the left hand side of some rule.
func (rt *RuleTable) Has(N rune) bool {
	_, found := rt.rules.Get(N)
	return found
}

// Rules returns the rules of non-terminal N, or nil if N is unknown.
// Clients must not modify the slice.
func (rt *RuleTable) Rules(N rune) []*Rule {
	rules, found := rt.rules.Get(N)
	if !found {
		return nil
	}
	return rules.([]*Rule)
}

// Nonterminals returns all non-terminals, in order of first appearance.
func (rt *RuleTable) Nonterminals() []rune {
	nts := make([]rune, 0, rt.rules.Size())
	for _, k := range rt.rules.Keys() {
		nts = append(nts, k.(rune))
	}
	return nts
}

// Size is the number of non-terminals.
func (rt *RuleTable) Size() int {
	return rt.rules.Size()
}

// RuleCount is the number of rules.
func (rt *RuleTable) RuleCount() int {
	return rt.count
}

// EachNonterminal iterates over all non-terminals in order of appearance and
// calls mapper for each of them. The results of mapper are collected and
// returned.
func (rt *RuleTable) EachNonterminal(mapper func(N rune, rules []*Rule) interface{}) []interface{} {
	var r []interface{}
	it := rt.rules.Iterator()
	for it.Next() {
		r = append(r, mapper(it.Key().(rune), it.Value().([]*Rule)))
	}
	return r
}

// EachRule calls f for every rule, grouped by non-terminal.
func (rt *RuleTable) EachRule(f func(r *Rule)) {
	it := rt.rules.Iterator()
	for it.Next() {
		for _, r := range it.Value().([]*Rule) {
			f(r)
		}
	}
}

// Terminals returns the characters of all terminals used in the grammar,
// sorted.
func (rt *RuleTable) Terminals() []rune {
	set := treeset.NewWith(utils.RuneComparator)
	rt.EachRule(func(r *Rule) {
		for _, sym := range r.rhs {
			if sym.IsTerminal() {
				set.Add(sym.Value())
			}
		}
	})
	terms := make([]rune, 0, set.Size())
	for _, t := range set.Values() {
		terms = append(terms, t.(rune))
	}
	return terms
}

// validate checks that every non-terminal used on a right hand side is
// defined as the left hand side of a rule. The offending rule reported is
// the one added first.
func (rt *RuleTable) validate() error {
	var culprit *Rule
	var undefined rune
	rt.EachRule(func(r *Rule) {
		if culprit != nil && culprit.Serial < r.Serial {
			return
		}
		for _, sym := range r.rhs {
			if sym.IsNonterminal() && !rt.Has(sym.Value()) {
				culprit, undefined = r, sym.Value()
				return
			}
		}
	})
	if culprit == nil {
		return nil
	}
	return newLoadError(UndefinedNonterminal, rt.Name, culprit.Line, culprit.String(),
		fmt.Sprintf("%c", undefined))
}

// Dump is a debugging helper, tracing all rules at debug level.
func (rt *RuleTable) Dump() {
	tracer().Debugf("--- grammar %s ------------------------------", rt.Name)
	rt.EachRule(func(r *Rule) {
		tracer().Debugf("%3d: %s", r.Serial, r)
	})
	tracer().Debugf("-------------------------------------------")
}
