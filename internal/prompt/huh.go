package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements Prompter with the huh TUI library.
type HuhPrompter struct{}

func (HuhPrompter) Confirm(title string, def bool) (bool, error) {
	value := def
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Run()
	if err != nil {
		return false, mapHuhError(err)
	}
	return value, nil
}

func (HuhPrompter) Input(title, def string) (string, error) {
	value := def
	err := huh.NewInput().
		Title(title).
		Placeholder(def).
		Value(&value).
		Run()
	if err != nil {
		return "", mapHuhError(err)
	}
	return value, nil
}

func (HuhPrompter) Select(title string, options []Option, def string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", title)
	}
	selected := def
	err := huh.NewSelect[string]().
		Title(title).
		Options(toHuhOptions(options)...).
		Value(&selected).
		Run()
	if err != nil {
		return "", mapHuhError(err)
	}
	return selected, nil
}

func (HuhPrompter) MultiSelect(title string, options []Option) ([]string, error) {
	var selected []string
	err := huh.NewMultiSelect[string]().
		Title(title).
		Options(toHuhOptions(options)...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, mapHuhError(err)
	}
	return selected, nil
}

func toHuhOptions(options []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, opt := range options {
		out[i] = huh.NewOption(opt.Label, opt.Value)
	}
	return out
}

func mapHuhError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
