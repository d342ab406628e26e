package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/sequence"
)

// Some constants for line length defaults
const (
	fourKb    = 4096
	sixtyFour = 65536
)

// capacity of the subscription channel between reader and loader
const subscriberCapacity = 64

// ErrNotUTF8 is returned if a file contains a line which is not valid UTF-8.
var ErrNotUTF8 = errors.New("textfile: line is not valid UTF-8")

// Config holds parameters for loading a text file.
type Config struct {
	// MaxLineLength is the maximum length of a line in bytes. Lines exceeding it
	// make Load fail with bufio.ErrTooLong. Defaults to 64 KiB.
	MaxLineLength int
}

func (cfg *Config) normalized() Config {
	if cfg == nil || cfg.MaxLineLength <= 0 {
		return Config{MaxLineLength: sixtyFour}
	}
	return *cfg
}

// textFile represents a OS file which will be loaded as a sequence.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// loadDone is broadcast after the last line of a file.
type loadDone struct {
	lines int
	err   error
}

// Load reads a file, which must be a text file, and returns its lines as a
// sequence. Line terminators are stripped. config may be nil.
//
// Lines are read by a background goroutine. Opening of the file is always
// done synchronously. If ctx is cancelled before loading completes, Load
// returns the lines read so far together with ctx.Err().
func Load(ctx context.Context, name string, config *Config) (*sequence.Sequence[string], error) {
	cfg := config.normalized()
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	lines, ok := tf.cast.Sub(ctx, subscriberCapacity)
	if !ok {
		tf.file.Close()
		return nil, fmt.Errorf("textfile: cannot subscribe to loader for %s", name)
	}
	go tf.readLines(ctx, cfg.MaxLineLength)
	seq := sequence.New[string]()
	for msg := range lines {
		switch m := msg.(type) {
		case string:
			seq.PushBack(m)
		case loadDone:
			if m.err != nil {
				tracer().Errorf("textfile: loading %s failed after %d lines: %v", tf.path, m.lines, m.err)
				return seq, m.err
			}
			tracer().Debugf("textfile: loaded %d lines from %s", m.lines, tf.path)
			return seq, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return seq, err
	}
	return seq, fmt.Errorf("textfile: loader for %s stopped unexpectedly", name)
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast lines as they are read
	}
	return tf, nil
}

// --- File loading goroutine ------------------------------------------------

func (tf *textFile) readLines(ctx context.Context, maxLine int) {
	defer tf.cast.Close()
	defer tf.file.Close()
	scanner := bufio.NewScanner(tf.file)
	scanner.Buffer(make([]byte, 0, min(fourKb, maxLine)), maxLine)
	count := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := scanner.Text()
		if !utf8.ValidString(line) {
			tf.cast.Pub(loadDone{lines: count, err: fmt.Errorf("%w: line %d", ErrNotUTF8, count+1)})
			return
		}
		tf.cast.Pub(line)
		count++
	}
	tf.cast.Pub(loadDone{lines: count, err: scanner.Err()})
}
