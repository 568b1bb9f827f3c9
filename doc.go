/*
Package nff computes the classical static properties of a context-free
grammar: which non-terminals are nullable, and the FIRST and FOLLOW sets
of every non-terminal.

NFF strives to be a small and predictable helper for people writing
top-down parsers by hand, or studying how parser generators work.
Package structure is as follows:

■ grammar: Package grammar implements grammar symbols, rules and the rule table,
together with a loader for the textual grammar format.

■ analysis: Package analysis implements the fixed-point computations for
nullable, FIRST and FOLLOW.

■ scanner: Package scanner defines the tokenizer interface the grammar loader
reads from. Sub-package lexmach provides a tokenizer based on lexmachine.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nff
