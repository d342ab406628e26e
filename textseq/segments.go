package textseq

import (
	"bufio"
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/sequence"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

// Segments breaks text at UAX#14 line break opportunities and returns the
// segments in text order. Concatenating all segments yields text.
func Segments(text string) *sequence.Sequence[string] {
	seq := sequence.New[string]()
	if text == "" {
		return seq
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	for segmenter.Next() {
		if frag := string(segmenter.Bytes()); frag != "" {
			seq.PushBack(frag)
		}
	}
	tracer().Debugf("textseq: %d segments", seq.Len())
	return seq
}

// Width returns the display width of s in fixed-width positions ('en's).
// If context is nil, uax11.LatinContext is used.
func Width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// ByWidth returns a strict ordering predicate comparing strings by their
// display width.
func ByWidth(context *uax11.Context) func(a, b string) bool {
	return func(a, b string) bool {
		return Width(a, context) < Width(b, context)
	}
}

// SortByWidth sorts seq by display width. Strings of equal width keep their
// relative order.
func SortByWidth(seq *sequence.Sequence[string], context *uax11.Context) {
	seq.MergeSort(ByWidth(context))
}

// InsertByWidth places s into seq, which is expected to be ordered by width,
// behind all strings of the same width. It returns the position of s.
func InsertByWidth(seq *sequence.Sequence[string], s string, context *uax11.Context) int {
	return seq.InsertIf(s, ByWidth(context))
}

/*
Lines arranges the segments of text into lines with a first-fit strategy:

	1. |  SpaceLeft := LineWidth
	2. |  for each Segment in Text
	3. |      if Width(Segment) > SpaceLeft
	4. |           start a new line with Segment
	5. |           SpaceLeft := LineWidth - Width(Segment)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - Width(Segment)

A segment wider than lineWidth gets a line of its own. A segment ending in a
newline ends its line. Trailing white space is trimmed from every line and
white space is never carried to the start of a line.
*/
func Lines(text string, lineWidth int, context *uax11.Context) *sequence.Sequence[string] {
	lines := sequence.New[string]()
	var line strings.Builder
	spaceleft := lineWidth
	flush := func() {
		if s := strings.TrimRightFunc(line.String(), unicode.IsSpace); s != "" {
			lines.PushBack(s)
		}
		line.Reset()
		spaceleft = lineWidth
	}
	for frag := range Segments(text).Values() {
		if line.Len() == 0 && strings.TrimSpace(frag) == "" {
			continue
		}
		fraglen := Width(frag, context)
		if line.Len() > 0 && fraglen > spaceleft {
			flush()
			if strings.TrimSpace(frag) == "" {
				continue
			}
		}
		line.WriteString(frag)
		spaceleft -= fraglen
		if strings.HasSuffix(frag, "\n") { // mandatory break
			flush()
		}
	}
	flush()
	return lines
}
