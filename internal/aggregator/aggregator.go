package aggregator

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrAggregatorMissing is returned when no master file exists to patch.
var ErrAggregatorMissing = errors.New("aggregator file not found")

// Patcher appends element links to the aggregator files in UtilsDir.
type Patcher struct {
	UtilsDir string
	// StyleNames are master stylesheet candidates in preference order. Each
	// entry may be a doublestar pattern such as "main.{scss,sass}".
	StyleNames []string
	ScriptName string
}

// StyleLink returns the fragment appended to a master stylesheet living in
// aggregatorDir.
func StyleLink(aggregatorDir, elementDir, format string) string {
	return "\n@import '" + StyleImportPath(aggregatorDir, elementDir, format) + "';\n"
}

// StyleImportPath is the path a stylesheet link refers to. Stylesheet imports
// resolve against the importing file, so the path is relative to
// aggregatorDir, e.g. "../components/Foo/style.scss".
func StyleImportPath(aggregatorDir, elementDir, format string) string {
	rel, err := filepath.Rel(aggregatorDir, elementDir)
	if err != nil {
		rel = elementDir
	}
	return path.Join(filepath.ToSlash(rel), "style."+format)
}

// ScriptLink returns the fragment appended to the master script.
func ScriptLink(section, name string) string {
	return "\nimport * from '" + ScriptImportPath(section, name) + "';\n"
}

// ScriptImportPath is the module specifier a script link refers to.
func ScriptImportPath(section, name string) string {
	return fmt.Sprintf("@%s/%s/index.js", section, name)
}

// StylePath returns the master stylesheet, the first existing candidate.
func (p *Patcher) StylePath() (string, error) {
	return p.find("style", p.StyleNames)
}

// ScriptPath returns the master script.
func (p *Patcher) ScriptPath() (string, error) {
	return p.find("script", []string{p.ScriptName})
}

// LinkStyle appends an import of the stylesheet in elementDir and returns the
// patched file.
func (p *Patcher) LinkStyle(elementDir, format string) (string, error) {
	file, err := p.StylePath()
	if err != nil {
		return "", err
	}
	if err := appendFragment(file, StyleLink(filepath.Dir(file), elementDir, format)); err != nil {
		return file, err
	}
	return file, nil
}

// LinkScript appends a wildcard import of the element's script and returns the
// patched file.
func (p *Patcher) LinkScript(section, name string) (string, error) {
	file, err := p.ScriptPath()
	if err != nil {
		return "", err
	}
	if err := appendFragment(file, ScriptLink(section, name)); err != nil {
		return file, err
	}
	return file, nil
}

func (p *Patcher) find(kind string, candidates []string) (string, error) {
	fsys := os.DirFS(p.UtilsDir)
	for _, pattern := range candidates {
		if pattern == "" {
			continue
		}
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return "", fmt.Errorf("invalid %s aggregator pattern %q: %w", kind, pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			full := filepath.Join(p.UtilsDir, filepath.FromSlash(m))
			if info, err := os.Stat(full); err == nil && info.Mode().IsRegular() {
				return full, nil
			}
		}
	}
	return "", fmt.Errorf("%w: no %s file in %s", ErrAggregatorMissing, kind, p.UtilsDir)
}

// appendFragment adds fragment to the end of file. Existing content is never
// rewritten.
func appendFragment(file, fragment string) error {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file, err)
	}
	if _, err := f.WriteString(fragment); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}
