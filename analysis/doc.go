/*
Package analysis computes nullable, FIRST and FOLLOW for the non-terminals of
a grammar.

Static Grammar Analysis

The analysis is subjected to a rule table of package grammar. It computes

■ nullable(N): is there a derivation N ⇒* ε ?

■ FIRST(N): the terminals which may start a string derived from N

■ FOLLOW(N): the terminals which may appear immediately after N

Each of the three is a fixed-point iteration: full passes over all rules are
repeated until a pass changes nothing. FIRST depends on nullable and FOLLOW
depends on both, therefore they are computed in that order.

    rt, _ := grammar.LoadString("G", "S -> A B\nA -> a\nA -> 0\nB -> b")
    ga := analysis.Analyse(rt)
    for _, N := range rt.Nonterminals() {
        fmt.Printf("%c nullable=%v FIRST=%v FOLLOW=%v\n",
            N, ga.Nullable(N), ga.First(N), ga.Follow(N))
    }

    // Output:
    S nullable=false FIRST={a, b} FOLLOW={}
    A nullable=true FIRST={a} FOLLOW={b}
    B nullable=false FIRST={b} FOLLOW={}

FOLLOW sets are computed without a distinguished start symbol and without an
end-of-input marker: every rule of the grammar counts as a context for every
non-terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package analysis

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nff.analysis'.
func tracer() tracing.Trace {
	return tracing.Select("nff.analysis")
}
