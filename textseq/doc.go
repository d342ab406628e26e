/*
Package textseq splits text into sequences of segments and arranges them by
display width.

Segmentation follows the Unicode line breaking algorithm (UAX#14): a segment
ends at a line break opportunity and carries its trailing white space.
Display widths follow UAX#11 (East Asian Width) for a given context.

	seq := textseq.Segments("The quick brown fox")
	lines := textseq.Lines("The quick brown fox", 10, nil)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sequence'
func tracer() tracing.Trace {
	return tracing.Select("sequence")
}
