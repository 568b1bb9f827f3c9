package analysis

import (
	"fmt"

	"github.com/npillmayer/nff/grammar"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// Phase identifies one of the three fixed-point computations.
type Phase int

// Phases of the analysis, in the order they have to run.
const (
	NullablePhase Phase = iota + 1
	FirstPhase
	FollowPhase
)

func (p Phase) String() string {
	switch p {
	case NullablePhase:
		return "nullable"
	case FirstPhase:
		return "FIRST"
	case FollowPhase:
		return "FOLLOW"
	}
	return fmt.Sprintf("<phase %d>", int(p))
}

// PassInfo describes a completed pass of a fixed-point computation.
type PassInfo struct {
	Phase   Phase
	Pass    int  // 1-based number of the pass within its phase
	Changed bool // did the pass change anything?
}

// Option configures an analysis.
type Option func(*Analysis)

// WithPassListener sets a function to be called after every pass of every
// phase. Listeners may query the analysis, but must not start another
// computation.
func WithPassListener(listener func(*Analysis, PassInfo)) Option {
	return func(ga *Analysis) {
		ga.listener = listener
	}
}

// Analysis holds the results of the analysis of a rule table. Create one
// with New or Analyse.
//
// All maps are seeded with one entry per non-terminal of the rule table and
// only ever grow: nullable flags switch from false to true, FIRST and FOLLOW
// sets receive new members.
type Analysis struct {
	rt       *grammar.RuleTable
	nullable map[rune]bool
	first    map[rune]*TermSet
	follow   map[rune]*TermSet
	passes   map[Phase]int
	listener func(*Analysis, PassInfo)
}

// New creates an analysis for a rule table, with nothing computed yet.
func New(rt *grammar.RuleTable, opts ...Option) *Analysis {
	ga := &Analysis{
		rt:       rt,
		nullable: make(map[rune]bool, rt.Size()),
		first:    make(map[rune]*TermSet, rt.Size()),
		follow:   make(map[rune]*TermSet, rt.Size()),
		passes:   make(map[Phase]int, 3),
	}
	for _, N := range rt.Nonterminals() {
		ga.nullable[N] = false
		ga.first[N] = newTermSet()
		ga.follow[N] = newTermSet()
	}
	for _, opt := range opts {
		opt(ga)
	}
	return ga
}

// Analyse creates an analysis for a rule table and computes nullable, FIRST
// and FOLLOW.
func Analyse(rt *grammar.RuleTable, opts ...Option) *Analysis {
	ga := New(rt, opts...)
	ga.ComputeNullable()
	ga.ComputeFirst()
	ga.ComputeFollow()
	return ga
}

// RuleTable returns the rule table this analysis is for.
func (ga *Analysis) RuleTable() *grammar.RuleTable {
	return ga.rt
}

// Passes returns the number of passes a phase needed to reach its fixed point,
// including the final pass without changes. It is 0 for phases not yet run.
func (ga *Analysis) Passes(phase Phase) int {
	return ga.passes[phase]
}

// Nullable is true if N can derive the empty string.
func (ga *Analysis) Nullable(N rune) bool {
	if !ga.rt.Has(N) {
		tracer().Errorf("nullable requested for unknown non-terminal %c", N)
	}
	return ga.nullable[N]
}

// First returns FIRST(N), or nil if N is not a non-terminal of the grammar.
func (ga *Analysis) First(N rune) *TermSet {
	if !ga.rt.Has(N) {
		tracer().Errorf("FIRST requested for unknown non-terminal %c", N)
	}
	return ga.first[N]
}

// Follow returns FOLLOW(N), or nil if N is not a non-terminal of the grammar.
func (ga *Analysis) Follow(N rune) *TermSet {
	if !ga.rt.Has(N) {
		tracer().Errorf("FOLLOW requested for unknown non-terminal %c", N)
	}
	return ga.follow[N]
}

// === Nullable ==============================================================

// ComputeNullable determines which non-terminals can derive the empty string.
// A rule is nullable if all of its symbols are: the empty symbol always is,
// a terminal never is, a non-terminal is if it has been found nullable
// before.
func (ga *Analysis) ComputeNullable() {
	tracer().Debugf("=== nullable ==================================================")
	pass := 0
	for changed := true; changed; {
		changed = false
		pass++
		ga.rt.EachRule(func(r *grammar.Rule) {
			if ga.nullable[r.LHS] || !ga.ruleIsNullable(r) {
				return
			}
			tracer().Debugf("nullable(%c) by %v", r.LHS, r)
			ga.nullable[r.LHS] = true
			changed = true
		})
		ga.endPass(NullablePhase, pass, changed)
	}
}

func (ga *Analysis) ruleIsNullable(r *grammar.Rule) bool {
	for _, sym := range r.RHS() {
		switch sym.Kind() {
		case grammar.NonterminalKind:
			if !ga.nullable[sym.Value()] {
				return false
			}
		case grammar.TerminalKind:
			return false
		case grammar.EmptyKind:
		}
	}
	return true
}

// === FIRST =================================================================

// ComputeFirst determines the FIRST set of every non-terminal. It needs
// nullable, which will be computed first if that has not happened yet.
func (ga *Analysis) ComputeFirst() {
	if ga.passes[NullablePhase] == 0 {
		tracer().Infof("FIRST needs nullable, computing it first")
		ga.ComputeNullable()
	}
	tracer().Debugf("=== FIRST =====================================================")
	pass := 0
	for changed := true; changed; {
		changed = false
		pass++
		ga.rt.EachRule(func(r *grammar.Rule) {
			if ga.firstOfRule(r) {
				changed = true
			}
		})
		ga.endPass(FirstPhase, pass, changed)
	}
}

// firstOfRule adds the contributions of a rule to the FIRST set of its left
// hand side. Scanning stops at the first terminal or non-nullable
// non-terminal. Returns true if the set has grown.
func (ga *Analysis) firstOfRule(r *grammar.Rule) bool {
	F := ga.first[r.LHS]
	changed := false
	for _, sym := range r.RHS() {
		switch sym.Kind() {
		case grammar.TerminalKind:
			if F.add(sym.Value()) {
				tracer().Debugf("FIRST(%c) += %c by %v", r.LHS, sym.Value(), r)
				changed = true
			}
			return changed
		case grammar.NonterminalKind:
			C := sym.Value()
			if F.addAll(ga.first[C]) {
				tracer().Debugf("FIRST(%c) += FIRST(%c) by %v", r.LHS, C, r)
				changed = true
			}
			if !ga.nullable[C] {
				return changed
			}
		case grammar.EmptyKind:
		}
	}
	return changed
}

// === FOLLOW ================================================================

// States of the scan of a rule for occurrences of a target non-terminal.
const (
	searching  = iota // target not yet seen
	collecting        // target seen, collecting what follows it
	finished          // rest of the rule is irrelevant
)

// ComputeFollow determines the FOLLOW set of every non-terminal. It needs
// FIRST, which will be computed first if that has not happened yet.
//
// Every rule of the grammar is considered as a context for every
// non-terminal. There is no start symbol and no end-of-input marker.
func (ga *Analysis) ComputeFollow() {
	if ga.passes[FirstPhase] == 0 {
		tracer().Infof("FOLLOW needs FIRST, computing it first")
		ga.ComputeFirst()
	}
	tracer().Debugf("=== FOLLOW ====================================================")
	targets := ga.rt.Nonterminals()
	pass := 0
	for changed := true; changed; {
		changed = false
		pass++
		for _, target := range targets {
			ga.rt.EachRule(func(r *grammar.Rule) {
				if ga.followInRule(target, r) {
					changed = true
				}
			})
		}
		ga.endPass(FollowPhase, pass, changed)
	}
}

// followInRule adds to FOLLOW(target) what rule r contributes, looking at the
// first occurrence of target only:
//
// ■ a terminal right after target is added, and collecting stops
//
// ■ FIRST(C) of a non-terminal C right after target is added; collecting
// continues if C is nullable
//
// ■ if target is the last symbol, or everything after it is nullable,
// FOLLOW of the rule's left hand side is added
//
// Further occurrences of target within r are not considered.
// Returns true if FOLLOW(target) has grown.
func (ga *Analysis) followInRule(target rune, r *grammar.Rule) bool {
	F := ga.follow[target]
	state := searching
	nullableTilEnd := false
	changed := false
	for _, sym := range r.RHS() {
		if state == finished {
			break
		}
		switch sym.Kind() {
		case grammar.NonterminalKind:
			C := sym.Value()
			if state == searching && C == target {
				state = collecting
				nullableTilEnd = true
			} else if state == collecting && C != target {
				if F.addAll(ga.first[C]) {
					tracer().Debugf("FOLLOW(%c) += FIRST(%c) by %v", target, C, r)
					changed = true
				}
				if !ga.nullable[C] {
					state = finished
					nullableTilEnd = false
				}
			}
		case grammar.TerminalKind:
			nullableTilEnd = false
			if state == collecting {
				if F.add(sym.Value()) {
					tracer().Debugf("FOLLOW(%c) += %c by %v", target, sym.Value(), r)
					changed = true
				}
				state = finished
			}
		case grammar.EmptyKind:
		}
	}
	if nullableTilEnd && r.LHS != target {
		if F.addAll(ga.follow[r.LHS]) {
			tracer().Debugf("FOLLOW(%c) += FOLLOW(%c) by %v", target, r.LHS, r)
			changed = true
		}
	}
	return changed
}

// ===========================================================================

func (ga *Analysis) endPass(phase Phase, pass int, changed bool) {
	ga.passes[phase] = pass
	tracer().Debugf("%s pass %d, changed = %v", phase, pass, changed)
	if ga.listener != nil {
		ga.listener(ga, PassInfo{Phase: phase, Pass: pass, Changed: changed})
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug && gconf.GetBool("nff-trace-passes") {
		ga.dumpPhase(phase)
	}
}

func (ga *Analysis) dumpPhase(phase Phase) {
	for _, N := range ga.rt.Nonterminals() {
		switch phase {
		case NullablePhase:
			tracer().Debugf("    nullable(%c) = %v", N, ga.nullable[N])
		case FirstPhase:
			tracer().Debugf("    FIRST(%c) = %v", N, ga.first[N])
		case FollowPhase:
			tracer().Debugf("    FOLLOW(%c) = %v", N, ga.follow[N])
		}
	}
}
