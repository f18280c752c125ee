package bootstrap

import (
	"errors"
	"fmt"
	"os"

	ignore "github.com/sabhiram/go-gitignore"
)

// junkPatterns are files an otherwise empty directory may contain.
var junkPatterns = []string{
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
	".idea",
	".vscode",
	"*.swp",
}

var junk = ignore.CompileIgnoreLines(junkPatterns...)

// ErrNotEmpty is returned when a project would be created in a directory
// that already has content.
var ErrNotEmpty = errors.New("directory is not empty")

// CheckEmpty returns ErrNotEmpty when dir contains anything besides OS and
// editor junk. A missing directory counts as empty.
func CheckEmpty(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if !junk.MatchesPath(e.Name()) {
			return fmt.Errorf("%w: %s contains %s", ErrNotEmpty, dir, e.Name())
		}
	}
	return nil
}
