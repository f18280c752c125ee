package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFile is the per-project layout file, read from the project root.
const ConfigFile = ".vitepug.yaml"

// envPrefix selects layout overrides, e.g. VITEPUG_LAYOUT_SRC or
// VITEPUG_LAYOUT_AGGREGATORS_SCRIPT.
const envPrefix = "VITEPUG_LAYOUT_"

// Section names an element directory under the source directory.
type Section string

const (
	SectionComponents Section = "components"
	SectionPages      Section = "pages"
)

// Layout describes where elements and aggregators live inside a project.
type Layout struct {
	Src              string   // source directory, relative to the root
	Components       string   // components directory, relative to Src
	Pages            string   // pages directory, relative to Src
	Utils            string   // aggregator directory, relative to Src
	Markup           string   // markup file name inside an element directory
	StyleAggregators []string // master stylesheet candidates, in preference order
	ScriptAggregator string   // master script file name
}

// DefaultLayout matches the directory structure of the project template.
func DefaultLayout() Layout {
	return Layout{
		Src:              "src",
		Components:       "components",
		Pages:            "pages",
		Utils:            "utils",
		Markup:           "index.pug",
		StyleAggregators: []string{"main.scss"},
		ScriptAggregator: "main.js",
	}
}

// SectionName returns the configured directory name of a section.
func (l Layout) SectionName(s Section) string {
	if s == SectionPages {
		return l.Pages
	}
	return l.Components
}

// SectionDir returns the absolute directory holding elements of a section.
func (l Layout) SectionDir(root string, s Section) string {
	return filepath.Join(root, l.Src, l.SectionName(s))
}

// UtilsDir returns the absolute directory holding the aggregator files.
func (l Layout) UtilsDir(root string) string {
	return filepath.Join(root, l.Src, l.Utils)
}

// LoadLayout builds the layout for the project at root with precedence:
// flags > env > .vitepug.yaml > defaults. flags may be nil; only the "src" and
// "utils" flags are consulted.
func LoadLayout(root string, flags *pflag.FlagSet) (Layout, error) {
	k := koanf.New(".")

	path := filepath.Join(root, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		result, verr := ValidateLayout(data)
		if verr != nil {
			return Layout{}, fmt.Errorf("validating %s: %w", path, verr)
		}
		if !result.Valid {
			return Layout{}, errors.New(formatIssues(path, result.Issues))
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Layout{}, fmt.Errorf("loading %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Layout{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return Layout{}, fmt.Errorf("loading environment variables: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Layout{}, fmt.Errorf("loading command flags: %w", err)
		}
	}

	return layoutFromKoanf(k), nil
}

func layoutFromKoanf(k *koanf.Koanf) Layout {
	def := DefaultLayout()
	l := Layout{
		Src:              stringOr(k, "src", def.Src),
		Components:       stringOr(k, "components", def.Components),
		Pages:            stringOr(k, "pages", def.Pages),
		Utils:            stringOr(k, "utils", def.Utils),
		Markup:           stringOr(k, "markup", def.Markup),
		ScriptAggregator: stringOr(k, "aggregators.script", def.ScriptAggregator),
		StyleAggregators: def.StyleAggregators,
	}

	if names := k.Strings("aggregators.style"); len(names) > 0 {
		l.StyleAggregators = names
	} else if v := k.String("aggregators.style"); v != "" {
		// Env values arrive as a single comma-separated string.
		l.StyleAggregators = splitList(v)
	}
	return l
}

func stringOr(k *koanf.Koanf, key, def string) string {
	if v := strings.TrimSpace(k.String(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
