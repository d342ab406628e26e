/*
Package sequence offers a generic doubly-linked sequence container.

Sequence

A Sequence owns an ordered chain of nodes, each holding one element. Nodes are
linked in both directions: the forward link defines the order of the chain,
the backward link allows stepping back and unlinking neighbours in O(1).

A sequence created by

	Sequence[T]{}

is a valid object and behaves like an empty sequence.

Positional operations address elements by a 0-based index and walk the chain
from its head. They are linear in the index, as there is no random access into
a linked chain.

	Operation     |   Sequence      |  Slice
	--------------+-----------------+--------
	Index         |   O(n)          |   O(1)
	Append        |   O(1)          |   O(1) amortized
	Insert        |   O(n)          |   O(n)
	Remove        |   O(n)          |   O(n)
	Sorted insert |   O(n)          |   O(n)
	Stable sort   |   O(n log n)    |   O(n log n)
	Iterate       |   O(n)          |   O(n)

Sorting relinks the existing nodes and never allocates. Sorted insertion and
sorting take a strict ordering predicate less(a, b), which reports whether a
must precede b.

Sequences are not safe for concurrent use. Iterators are plain traversal
handles: they do not notice modifications of the sequence they are bound to.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sequence

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'sequence'
func tracer() tracing.Trace {
	return tracing.Select("sequence")
}

// SeqError is an error type for the sequence module
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an index does not denote a valid
// position of a sequence, or when an iterator is advanced past its end.
const ErrIndexOutOfBounds = SeqError("index out of range")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")

// ErrCorrupted is flagged by Check if the links of a sequence are inconsistent.
const ErrCorrupted = SeqError("sequence links are inconsistent")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
