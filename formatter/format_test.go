package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sequence"
)

func TestPrintWithIndices(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	color.NoColor = true
	//
	seq := sequence.FromSlice([]string{"alpha", "beta", "gamma"})
	var bf strings.Builder
	if err := Print(seq, &bf, &Config{Indices: true}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if want := "0: alpha\n1: beta\n2: gamma\n"; bf.String() != want {
		t.Errorf("output=%q, want %q", bf.String(), want)
	}
	bf.Reset()
	if err := Print(seq, &bf, &Config{Indices: true, Reverse: true}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if want := "2: gamma\n1: beta\n0: alpha\n"; bf.String() != want {
		t.Errorf("reverse output=%q, want %q", bf.String(), want)
	}
}

func TestPrintPadsIndices(t *testing.T) {
	color.NoColor = true
	seq := sequence.New[int]()
	for i := 0; i < 11; i++ {
		seq.PushBack(i * i)
	}
	var bf strings.Builder
	if err := Print(seq, &bf, &Config{Indices: true}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(bf.String(), "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 lines, got %d", len(lines))
	}
	if lines[0] != " 0: 0" || lines[10] != "10: 100" {
		t.Errorf("unexpected padding: %q, %q", lines[0], lines[10])
	}
}

func TestPrintWrapsWideElements(t *testing.T) {
	color.NoColor = true
	seq := sequence.FromSlice([]string{"aaa bbb ccc", "x"})
	var bf strings.Builder
	if err := Print(seq, &bf, &Config{Indices: true, LineWidth: 11}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if want := "0: aaa bbb\n   ccc\n1: x\n"; bf.String() != want {
		t.Errorf("output=%q, want %q", bf.String(), want)
	}
	bf.Reset()
	if err := Print(seq, &bf, nil); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if want := "aaa bbb ccc\nx\n"; bf.String() != want {
		t.Errorf("output=%q, want %q", bf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestOutputErrors(t *testing.T) {
	seq := sequence.FromSlice([]int{1})
	if err := Output(seq, nil, nil, NewConsole(nil, nil)); !errors.Is(err, sequence.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
	if err := Print(seq, failingWriter{}, nil); err == nil {
		t.Errorf("expected write error to be reported")
	}
}

func TestConfigFromTerminal(t *testing.T) {
	config := ConfigFromTerminal()
	if config.LineWidth < 10 {
		t.Errorf("line width=%d, expected at least 10", config.LineWidth)
	}
}

func TestPrintWrappedWithEmptyElement(t *testing.T) {
	color.NoColor = true
	seq := sequence.FromSlice([]string{"a", "", "b"})
	var bf strings.Builder
	if err := Print(seq, &bf, &Config{LineWidth: 40}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if want := "a\n\nb\n"; bf.String() != want {
		t.Errorf("output=%q, want %q", bf.String(), want)
	}
	bf.Reset()
	if err := Print(seq, &bf, &Config{LineWidth: 40, Indices: true}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if want := "0: a\n1: \n2: b\n"; bf.String() != want {
		t.Errorf("output=%q, want %q", bf.String(), want)
	}
}
