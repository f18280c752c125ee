package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMarker is the directory whose presence identifies a project root.
const DefaultMarker = "node_modules"

// MaxDepth bounds the upward search independently of the filesystem root.
const MaxDepth = 256

// ErrRootNotFound is returned when no ancestor contains the marker directory.
var ErrRootNotFound = errors.New("could not find project root")

// FindRoot walks from start up through its ancestors and returns the first
// directory (start included) with a direct child directory named marker.
func FindRoot(start, marker string) (string, error) {
	if marker == "" {
		marker = DefaultMarker
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for depth := 0; depth < MaxDepth; depth++ {
		if isDir(filepath.Join(dir, marker)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: no %s directory in %s or its parents", ErrRootNotFound, marker, start)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
