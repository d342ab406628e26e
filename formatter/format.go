package formatter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/sequence"
	"github.com/npillmayer/sequence/textseq"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing.
type Config struct {
	LineWidth int  // wrap elements wider than this; 0 means no wrapping
	Indices   bool // prefix every element with its position
	Reverse   bool // print from tail to head
	Context   *uax11.Context
}

// Console holds the colors used for output. A nil color prints plain text.
type Console struct {
	IndexColor *color.Color
	ValueColor *color.Color
}

// NewConsole creates a console format. If index is nil, positions are printed
// in blue.
func NewConsole(index, value *color.Color) *Console {
	if index == nil {
		index = color.New(color.FgBlue)
	}
	return &Console{IndexColor: index, ValueColor: value}
}

// Print outputs seq to out with a default console format.
func Print[T any](seq *sequence.Sequence[T], out io.Writer, config *Config) error {
	return Output(seq, out, config, NewConsole(nil, nil))
}

// PrintConsole outputs seq to stdout.
//
// A heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func PrintConsole[T any](seq *sequence.Sequence[T]) error {
	config := ConfigFromTerminal()
	config.Indices = true
	config.Context = uax11.ContextFromEnvironment()
	return Print(seq, os.Stdout, config)
}

// Output prints the elements of seq to out, one element per line.
//
// seq, out and console may not be nil. It is safe to have config set to nil,
// which prints without wrapping. If config.Context is nil, uax11.LatinContext
// is used.
func Output[T any](seq *sequence.Sequence[T], out io.Writer, config *Config, console *Console) error {
	if seq == nil || out == nil || console == nil {
		return fmt.Errorf("%w: nil argument to Output", sequence.ErrIllegalArguments)
	}
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	digits := len(strconv.Itoa(max(seq.Len()-1, 0)))
	indent := 0
	if cfg.Indices {
		indent = digits + 2
	}
	p := &printer{out: out, console: console}
	elements := seq.All()
	if cfg.Reverse {
		elements = seq.Backward()
	}
	for i, v := range elements {
		for k, line := range wrap(fmt.Sprint(v), cfg, indent) {
			if cfg.Indices {
				if k == 0 {
					p.colored(console.IndexColor, fmt.Sprintf("%*d: ", digits, i))
				} else {
					p.plain(strings.Repeat(" ", indent))
				}
			}
			p.colored(console.ValueColor, line)
			p.plain("\n")
		}
		if p.err != nil {
			tracer().Errorf("formatter: output failed at element %d: %v", i, p.err)
			return p.err
		}
	}
	return nil
}

// wrap breaks text into lines fitting the configured line width, leaving room
// for indent positions.
func wrap(text string, cfg Config, indent int) []string {
	if cfg.LineWidth <= 0 {
		return []string{text}
	}
	avail := max(cfg.LineWidth-indent, 1)
	if textseq.Width(text, cfg.Context) <= avail {
		return []string{text}
	}
	lines := textseq.Lines(text, avail, cfg.Context).Slice()
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// printer remembers the first write error.
type printer struct {
	out     io.Writer
	console *Console
	err     error
}

func (p *printer) plain(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.out, s)
	}
}

func (p *printer) colored(c *color.Color, s string) {
	if c == nil {
		p.plain(s)
		return
	}
	if p.err == nil {
		_, p.err = c.Fprint(p.out, s)
	}
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
