package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	return name
}

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	name := writeFile(t, "alpha\nbeta\r\n\ngamma")
	seq, err := Load(context.Background(), name, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := seq.Check(); err != nil {
		t.Fatal(err.Error())
	}
	want := []string{"alpha", "beta", "", "gamma"}
	if got := seq.Slice(); !slices.Equal(got, want) {
		t.Errorf("lines=%q, want %q", got, want)
	}
}

func TestLoadManyLinesInOrder(t *testing.T) {
	var bf strings.Builder
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&bf, "line %d\n", i)
	}
	seq, err := Load(context.Background(), writeFile(t, bf.String()), &Config{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if seq.Len() != 1000 {
		t.Fatalf("loaded %d lines, want 1000", seq.Len())
	}
	for i, line := range seq.All() {
		if line != fmt.Sprintf("line %d", i) {
			t.Fatalf("line %d=%q", i, line)
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	seq, err := Load(context.Background(), writeFile(t, ""), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !seq.IsEmpty() {
		t.Errorf("expected empty sequence, got %v", seq)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Load(ctx, filepath.Join(t.TempDir(), "missing.txt"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if _, err := Load(ctx, t.TempDir(), nil); err == nil {
		t.Errorf("expected error for directory")
	}
	seq, err := Load(ctx, writeFile(t, "ok\n\xff\xfe\nnever\n"), nil)
	if !errors.Is(err, ErrNotUTF8) {
		t.Errorf("expected ErrNotUTF8, got %v", err)
	}
	if seq == nil || seq.Len() != 1 {
		t.Errorf("expected lines before the invalid one to be kept, got %v", seq)
	}
	long := strings.Repeat("x", 100) + "\n"
	if _, err := Load(ctx, writeFile(t, long), &Config{MaxLineLength: 16}); !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("expected bufio.ErrTooLong, got %v", err)
	}
}
