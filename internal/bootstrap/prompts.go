package bootstrap

import (
	"fmt"

	"github.com/vitepug/vitepug/internal/prompt"
)

// AskProjectName asks for the project name until the user confirms one.
// The current directory is the default.
func AskProjectName(p prompt.Prompter) (string, error) {
	for {
		name, err := p.Input("What is the name of your project?", CurrentDir)
		if err != nil {
			return "", err
		}
		if name == "" {
			name = CurrentDir
		}

		question := fmt.Sprintf("Create the project in ./%s?", name)
		if name == CurrentDir {
			question = "Create the project in the current directory?"
		}
		ok, err := p.Confirm(question, true)
		if err != nil {
			return "", err
		}
		if ok {
			return name, nil
		}
	}
}

// AskIndexPage asks whether the pages plugin should generate an index page.
func AskIndexPage(p prompt.Prompter) (bool, error) {
	return p.Confirm("Do you want to generate index page automatically?", true)
}
