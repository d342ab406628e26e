/*
Package textfile provides API helpers to load UTF-8 text files as sequences
of lines.

Reading is done by a separate goroutine, which broadcasts every line it reads.
Load subscribes to this broadcast and appends lines to the resulting sequence
in file order, while preserving a synchronous `Load` API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sequence'
func tracer() tracing.Trace {
	return tracing.Select("sequence")
}
