package sequence

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSequence2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := FromSlice([]string{"x", "y", "z"})
	var bf strings.Builder
	Sequence2Dot(seq, &bf)
	dot := bf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("output is not a DOT graph")
	}
	if n := strings.Count(dot, "[label="); n != 3 {
		t.Errorf("expected 3 nodes, got %d", n)
	}
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges, got %d", n)
	}
	if strings.Contains(dot, "color=red") {
		t.Errorf("consistent sequence drawn with broken link")
	}
}

func TestSequence2DotShowsBrokenLink(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	seq := FromSlice([]int{1, 2, 3})
	seq.tail.prev = seq.head
	var bf strings.Builder
	Sequence2Dot(seq, &bf)
	if !strings.Contains(bf.String(), "color=red") {
		t.Errorf("expected broken backward link to be highlighted")
	}
	bf.Reset()
	Sequence2Dot[int](nil, &bf)
	if bf.String() == "" {
		t.Errorf("expected empty graph for nil sequence")
	}
}
