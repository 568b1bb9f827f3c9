/*
Package grammar implements grammar symbols, production rules and the rule
table the analysis of package analysis works on.

Loading a Grammar

Grammars are usually read from text, one rule per line:

    S -> A B
    A -> a
    A -> 0
    B -> b

The left hand side of a rule is a single uppercase letter. On the right hand
side, uppercase letters denote non-terminals, '0' denotes the empty
production and every other ASCII character is a terminal. Whitespace is
insignificant.

    rt, err := grammar.LoadString("G", source)

Every error the loader finds is fatal for the whole grammar and reported as
a *LoadError.

Building a Grammar

Alternatively, clients may assemble a rule table with a builder object:

    b := grammar.NewBuilder("G")
    b.LHS('S').N('A').N('B').End()  // S  ->  A B
    b.LHS('A').T('a').End()         // A  ->  a
    b.LHS('A').Epsilon()            // A  ->  0
    b.LHS('B').T('b').End()         // B  ->  b
    rt, err := b.RuleTable()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nff.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("nff.grammar")
}
