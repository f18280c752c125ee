// Package ui holds console output helpers so every command reports success,
// warnings, and failures the same way.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Console writes status lines. Regular output goes to Out, diagnostics to Err.
type Console struct {
	Out     io.Writer
	Err     io.Writer
	Color   bool
	Verbose bool
}

// New creates a Console. Colors are enabled only when err is a terminal and
// NO_COLOR is unset.
func New(out, err io.Writer) *Console {
	return &Console{Out: out, Err: err, Color: colorCapable(err)}
}

func colorCapable(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Success prints a success message with a checkmark.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintf(c.Out, "%s %s\n", RenderStyle(StyleGreen, "✓", c.Color), fmt.Sprintf(format, args...))
}

// Info prints an informational line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.Out, "%s %s\n", RenderStyle(StyleCyan, "➜", c.Color), fmt.Sprintf(format, args...))
}

// Item prints an indented key-value pair.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// Plain prints an indented line.
func (c *Console) Plain(format string, args ...any) {
	fmt.Fprintf(c.Out, "   %s\n", fmt.Sprintf(format, args...))
}

// Warn prints a non-fatal diagnostic to Err.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintf(c.Err, "%s %s\n", RenderStyle(StyleYellow, "warning:", c.Color), fmt.Sprintf(format, args...))
}

// Error prints a fatal diagnostic to Err.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintf(c.Err, "%s %s\n", RenderStyle(StyleRed, "error:", c.Color), fmt.Sprintf(format, args...))
}

// Debugf prints to Err only in verbose mode.
func (c *Console) Debugf(format string, args ...any) {
	if !c.Verbose {
		return
	}
	fmt.Fprintln(c.Err, RenderStyle(StyleGray, fmt.Sprintf(format, args...), c.Color))
}
