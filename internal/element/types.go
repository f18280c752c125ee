package element

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vitepug/vitepug/internal/project"
)

// Fatal conditions. Each aborts the generation.
var (
	ErrArchitectureDeclined = errors.New("unsupported project architecture")
	ErrTargetExists         = errors.New("directory already exists")
	ErrCreateDir            = errors.New("failed to create directory")
	ErrEmptyName            = errors.New("name must not be empty")
	ErrInvalidName          = errors.New("invalid name")
)

// Kind distinguishes components from pages.
type Kind int

const (
	Component Kind = iota
	Page
)

func (k Kind) String() string {
	if k == Page {
		return "page"
	}
	return "component"
}

// Section returns the source sub-directory elements of this kind live in.
func (k Kind) Section() project.Section {
	if k == Page {
		return project.SectionPages
	}
	return project.SectionComponents
}

// StyleFormat is the syntax of a generated stylesheet.
type StyleFormat string

const (
	SCSS StyleFormat = "scss"
	SASS StyleFormat = "sass"
	CSS  StyleFormat = "css"
)

// StyleFormats lists the supported formats in prompt order.
var StyleFormats = []StyleFormat{SCSS, SASS, CSS}

// ParseStyleFormat accepts a format name in any case.
func ParseStyleFormat(s string) (StyleFormat, error) {
	f := StyleFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range StyleFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown style format %q: expected scss, sass, or css", s)
}

// Request is what gets generated. It is built once and not modified.
type Request struct {
	Kind         Kind
	Name         string
	CreateStyle  bool
	StyleFormat  StyleFormat
	CreateScript bool
}

// Options preselects the auxiliary files so the options prompt is skipped.
type Options struct {
	Style       bool
	StyleFormat StyleFormat
	Script      bool
}

// Issue is a non-fatal failure of a single step.
type Issue struct {
	Step string // "markup", "style", "style-link", "script", "script-link"
	File string
	Err  error
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s %s: %v", i.Step, i.File, i.Err)
}

func (i Issue) Unwrap() error { return i.Err }

// Result describes a completed generation.
type Result struct {
	Request Request
	Root    string
	Dir     string
	Files   []string // files written, relative to Dir
	Linked  []string // aggregator files patched
	Issues  []Issue
}
