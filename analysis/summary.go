package analysis

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// Entry is the result of the analysis for a single non-terminal.
type Entry struct {
	Nonterminal string
	Nullable    bool
	First       string // sorted terminals
	Follow      string // sorted terminals
}

// Summary is a snapshot of the results of an analysis. Entries are sorted by
// non-terminal and set members are sorted, so summaries of grammars differing
// only in the order of their rules are identical.
type Summary struct {
	Entries []Entry
}

// Summary takes a snapshot of the current state of the analysis.
func (ga *Analysis) Summary() Summary {
	nts := ga.rt.Nonterminals()
	sort.Slice(nts, func(i, j int) bool { return nts[i] < nts[j] })
	s := Summary{Entries: make([]Entry, 0, len(nts))}
	for _, N := range nts {
		s.Entries = append(s.Entries, Entry{
			Nonterminal: string(N),
			Nullable:    ga.nullable[N],
			First:       string(ga.first[N].Sorted()),
			Follow:      string(ga.follow[N].Sorted()),
		})
	}
	return s
}

// Digest returns a hash of the summary of the analysis. It may be used to
// compare results of different runs.
func (ga *Analysis) Digest() (string, error) {
	d, err := structhash.Hash(ga.Summary(), 1)
	if err != nil {
		return "", fmt.Errorf("cannot compute digest of analysis: %w", err)
	}
	return d, nil
}

// IncludedIn is true if every entry of s is covered by the corresponding entry
// of other: nullable flags have not been reset and no set has lost a member.
func (s Summary) IncludedIn(other Summary) bool {
	if len(s.Entries) != len(other.Entries) {
		return false
	}
	for i, e := range s.Entries {
		o := other.Entries[i]
		if e.Nonterminal != o.Nonterminal || (e.Nullable && !o.Nullable) ||
			!subset(e.First, o.First) || !subset(e.Follow, o.Follow) {
			return false
		}
	}
	return true
}

func subset(a, b string) bool {
	return termSetOf(a).SubsetOf(termSetOf(b))
}

// Dump is a debugging helper, tracing the results at debug level.
func (ga *Analysis) Dump() {
	tracer().Debugf("--- analysis of %s ---------------------------", ga.rt.Name)
	for _, N := range ga.rt.Nonterminals() {
		tracer().Debugf("%c: nullable=%-5v FIRST=%v FOLLOW=%v", N, ga.nullable[N],
			ga.first[N], ga.follow[N])
	}
	tracer().Debugf("-------------------------------------------")
}
