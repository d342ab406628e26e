/*
Package html collects the textual content of HTML into sequences.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sequence"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'sequence'
func tracer() tracing.Trace {
	return tracing.Select("sequence")
}

// InnerText creates a sequence of the text fragments of an HTML element and all
// its descendents, in document order. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, split at element boundaries. Fragments consisting of white
// space only are dropped, as is the content of <script> and <style> elements.
func InnerText(n *html.Node) (*sequence.Sequence[string], error) {
	if n == nil {
		return nil, sequence.ErrIllegalArguments
	}
	seq := sequence.New[string]()
	collectText(n, seq)
	return seq, nil
}

func collectText(n *html.Node, seq *sequence.Sequence[string]) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	case html.TextNode:
		if strings.TrimSpace(n.Data) != "" {
			seq.PushBack(n.Data)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, seq)
	}
}

// TextFromHTML creates a sequence from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*sequence.Sequence[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("html: cannot parse fragment: %v", err)
		return nil, err
	}
	seq := sequence.New[string]()
	for _, n := range nodes {
		collectText(n, seq)
	}
	return seq, nil
}

// Join concatenates the fragments of a text sequence.
func Join(seq *sequence.Sequence[string]) string {
	var bf strings.Builder
	for s := range seq.Values() {
		bf.WriteString(s)
	}
	return bf.String()
}
