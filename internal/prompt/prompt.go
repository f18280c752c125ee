// Package prompt provides the interactive primitives used by the generators:
// yes/no confirmation, single-line input, single select, and multi select.
// On a terminal the prompts are rendered with huh; otherwise a line-based
// reader is used so the CLI stays scriptable.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl-C, EOF).
var ErrCancelled = errors.New("prompt cancelled")

// Option is a single choice in a select or multi-select prompt.
type Option struct {
	Label string // Display text
	Value string // Returned value
}

// Prompter is a blocking request/response channel, one exchange per call.
type Prompter interface {
	Confirm(title string, def bool) (bool, error)
	Input(title, def string) (string, error)
	Select(title string, options []Option, def string) (string, error)
	MultiSelect(title string, options []Option) ([]string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a huh-backed Prompter when in is a terminal and a line-based
// one reading from in and writing to out otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if IsTerminal(in) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}
