package element

import (
	"fmt"
	"strings"

	"github.com/vitepug/vitepug/internal/prompt"
)

// DefaultName is offered when the name is prompted for.
const DefaultName = "newComponent"

// ResolveName returns the element name from arg, or prompts for it when arg
// is empty. The result is trimmed and must be a single non-empty path segment.
func ResolveName(arg string, kind Kind, p prompt.Prompter) (string, error) {
	name := arg
	if name == "" {
		answer, err := p.Input(fmt.Sprintf("What is the name of the %s?", kind), DefaultName)
		if err != nil {
			return "", err
		}
		name = answer
	}
	name = strings.TrimSpace(name)

	if name == "" {
		return "", fmt.Errorf("%s %w", kind, ErrEmptyName)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w %q: must not contain path separators", ErrInvalidName, name)
	}
	return name, nil
}
