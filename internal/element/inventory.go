package element

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vitepug/vitepug/internal/aggregator"
	"github.com/vitepug/vitepug/internal/project"
)

// Entry describes one element found on disk.
type Entry struct {
	Kind         Kind
	Name         string
	Dir          string
	Markup       bool
	StyleFormat  StyleFormat // empty when the element has no stylesheet
	Script       bool
	StyleLinked  bool
	ScriptLinked bool
}

// Inventory lists the elements of a project and the aggregators they are
// linked from. An aggregator path is empty when the file does not exist.
type Inventory struct {
	Root             string
	StyleAggregator  string
	ScriptAggregator string
	Entries          []Entry
}

// Inspect walks the components and pages directories of root.
func Inspect(root string, layout project.Layout) (*Inventory, error) {
	patcher := &aggregator.Patcher{
		UtilsDir:   layout.UtilsDir(root),
		StyleNames: layout.StyleAggregators,
		ScriptName: layout.ScriptAggregator,
	}
	inv := &Inventory{Root: root}

	styleLinks, stylePath, err := links(patcher.StylePath, patcher.StyleLinks)
	if err != nil {
		return nil, err
	}
	scriptLinks, scriptPath, err := links(patcher.ScriptPath, patcher.ScriptLinks)
	if err != nil {
		return nil, err
	}
	inv.StyleAggregator = stylePath
	inv.ScriptAggregator = scriptPath

	for _, kind := range []Kind{Component, Page} {
		section := layout.SectionName(kind.Section())
		dir := layout.SectionDir(root, kind.Section())
		entries, err := os.ReadDir(dir)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}

		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			entry := Entry{Kind: kind, Name: e.Name(), Dir: filepath.Join(dir, e.Name())}
			entry.Markup = exists(filepath.Join(entry.Dir, layout.Markup))
			for _, f := range StyleFormats {
				if exists(filepath.Join(entry.Dir, "style."+string(f))) {
					entry.StyleFormat = f
					entry.StyleLinked = stylePath != "" && styleLinks[aggregator.StyleImportPath(filepath.Dir(stylePath), entry.Dir, string(f))]
					break
				}
			}
			entry.Script = exists(filepath.Join(entry.Dir, scriptFile))
			if entry.Script {
				entry.ScriptLinked = scriptLinks[aggregator.ScriptImportPath(section, entry.Name)]
			}
			inv.Entries = append(inv.Entries, entry)
		}
	}

	sort.SliceStable(inv.Entries, func(i, j int) bool {
		if inv.Entries[i].Kind != inv.Entries[j].Kind {
			return inv.Entries[i].Kind < inv.Entries[j].Kind
		}
		return inv.Entries[i].Name < inv.Entries[j].Name
	})
	return inv, nil
}

// links collects the imports of one aggregator. A missing aggregator yields
// no links rather than an error.
func links(locate func() (string, error), list func() ([]string, error)) (map[string]bool, string, error) {
	path, err := locate()
	if errors.Is(err, aggregator.ErrAggregatorMissing) {
		return map[string]bool{}, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	imports, err := list()
	if err != nil {
		return nil, "", err
	}
	set := make(map[string]bool, len(imports))
	for _, imp := range imports {
		set[imp] = true
	}
	return set, path, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
