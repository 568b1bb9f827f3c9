/*
Nff prints nullable, FIRST and FOLLOW for the non-terminals of a grammar.

Usage:

	nff [flags] <grammar-file>
	nff -i [flags] [grammar-file]

The grammar file contains one rule per line, e.g.

	S -> A B
	A -> a
	A -> 0
	B -> b

The flags are:

	-s/--sorted
		Print set members sorted instead of in the order they were found.

	-r/--rules
		Print the rules as nff understood them before the results.

	--timing
		Report the time the analysis took.

	--digest
		Print a digest of the results, suitable for comparing runs.

	-t/--trace [LEVEL]
		Trace level, one of Debug, Info or Error. Defaults to Error.

	-c/--config [FILE]
		Read settings from a TOML file. Flags given on the command line
		take precedence.

	-i/--interactive
		Start an interactive session. Rule lines entered are collected;
		":show" analyses them, ":help" lists all commands.

Exit codes are 0 for success, 2 for usage errors, 3 if the grammar file or
the configuration file cannot be read and 4 if the grammar is malformed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nff.cli'
func tracer() tracing.Trace {
	return tracing.Select("nff.cli")
}
