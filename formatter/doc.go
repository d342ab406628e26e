/*
Package formatter prints sequences to consoles and other writers.

Every element is printed on a line of its own, optionally prefixed with its
position. Elements wider than the configured line width are wrapped with a
first-fit strategy (see package textseq).

	err := formatter.Print(seq, os.Stdout, &formatter.Config{LineWidth: 40})

When printing to a terminal, ConfigFromTerminal derives the line width from
the terminal's properties.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sequence'
func tracer() tracing.Trace {
	return tracing.Select("sequence")
}
