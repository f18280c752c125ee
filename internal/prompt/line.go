package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter reads answers line by line. It is used when stdin is not a
// terminal (pipes, CI) and in tests.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter creates a LinePrompter reading from r and writing prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

// readLine returns the next line without its line ending. EOF with no data
// cancels the prompt.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readAnswer is readLine with surrounding blanks removed.
func (p *LinePrompter) readAnswer() (string, error) {
	line, err := p.readLine()
	return strings.TrimSpace(line), err
}

func (p *LinePrompter) Confirm(title string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.w, "%s [%s]: ", title, hint)

	answer, err := p.readAnswer()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected yes or no", answer)
	}
}

func (p *LinePrompter) Input(title, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "%s (%s): ", title, def)
	} else {
		fmt.Fprintf(p.w, "%s: ", title)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	// Only an empty line takes the default; blanks answer with "".
	if line == "" {
		return def, nil
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) Select(title string, options []Option, def string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", title)
	}
	p.printOptions(title, options)

	defIdx := -1
	for i, opt := range options {
		if opt.Value == def {
			defIdx = i
		}
	}
	if defIdx >= 0 {
		fmt.Fprintf(p.w, "Enter number [1-%d] (default %d): ", len(options), defIdx+1)
	} else {
		fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(options))
	}

	answer, err := p.readAnswer()
	if err != nil {
		return "", err
	}
	if answer == "" && defIdx >= 0 {
		return options[defIdx].Value, nil
	}
	idx, err := parseIndex(answer, len(options))
	if err != nil {
		return "", err
	}
	return options[idx].Value, nil
}

// MultiSelect accepts a comma-separated list of numbers; an empty line selects nothing.
func (p *LinePrompter) MultiSelect(title string, options []Option) ([]string, error) {
	p.printOptions(title, options)
	fmt.Fprintf(p.w, "Enter numbers separated by commas (empty for none): ")

	answer, err := p.readAnswer()
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}

	seen := make(map[int]bool)
	var selected []string
	for _, part := range strings.Split(answer, ",") {
		idx, err := parseIndex(strings.TrimSpace(part), len(options))
		if err != nil {
			return nil, err
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		selected = append(selected, options[idx].Value)
	}
	return selected, nil
}

func (p *LinePrompter) printOptions(title string, options []Option) {
	fmt.Fprintf(p.w, "\n%s\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, opt.Label)
	}
}

func parseIndex(s string, n int) (int, error) {
	num, err := strconv.Atoi(s)
	if err != nil || num < 1 || num > n {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", s, n)
	}
	return num - 1, nil
}
