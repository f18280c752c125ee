package element

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/vitepug/vitepug/internal/aggregator"
	"github.com/vitepug/vitepug/internal/project"
	"github.com/vitepug/vitepug/internal/prompt"
	"github.com/vitepug/vitepug/internal/scaffold"
	"github.com/vitepug/vitepug/internal/ui"
)

const (
	scriptFile = "index.js"
	dirPerm    = 0755
	filePerm   = 0644
)

// Generator creates elements. Prompter and Console are required.
type Generator struct {
	Prompter prompt.Prompter
	Console  *ui.Console
	// Marker is the directory identifying the project root.
	Marker string
	// LayoutFlags carries command-line layout overrides; may be nil.
	LayoutFlags *pflag.FlagSet
	// DefaultStyle preselects the style format prompt.
	DefaultStyle StyleFormat
	// AssumeYes skips the unsupported-architecture confirmation.
	AssumeYes bool
}

// Spec is the raw input of one generation.
type Spec struct {
	Kind     Kind
	Name     string   // command argument; empty means prompt
	StartDir string   // where the root search starts; empty means cwd
	Options  *Options // nil means prompt
}

// Generate runs the whole workflow. A returned error is fatal; non-fatal
// failures are reported on the console and collected in Result.Issues.
func (g *Generator) Generate(ctx context.Context, spec Spec) (*Result, error) {
	start := spec.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
		start = wd
	}

	root, err := project.FindRoot(start, g.Marker)
	if err != nil {
		return nil, err
	}
	g.Console.Debugf("project root: %s", root)

	layout, err := project.LoadLayout(root, g.LayoutFlags)
	if err != nil {
		return nil, fmt.Errorf("loading project layout: %w", err)
	}

	sectionDir := layout.SectionDir(root, spec.Kind.Section())
	if err := g.confirmArchitecture(sectionDir); err != nil {
		return nil, err
	}

	name, err := ResolveName(spec.Name, spec.Kind, g.Prompter)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(sectionDir, name)
	if _, err := os.Lstat(dir); err == nil {
		return nil, fmt.Errorf("failed to create %s %s: %w: %s", spec.Kind, name, ErrTargetExists, dir)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := createDir(sectionDir, dir); err != nil {
		return nil, fmt.Errorf("failed to create %s %s: %w", spec.Kind, name, err)
	}
	g.Console.Debugf("created %s", dir)

	req, err := g.buildRequest(spec, name)
	if err != nil {
		return nil, err
	}

	result := &Result{Request: req, Root: root, Dir: dir}
	section := layout.SectionName(spec.Kind.Section())
	patcher := &aggregator.Patcher{
		UtilsDir:   layout.UtilsDir(root),
		StyleNames: layout.StyleAggregators,
		ScriptName: layout.ScriptAggregator,
	}

	g.writeMarkup(result, layout.Markup)

	if req.CreateStyle {
		styleFile := "style." + string(req.StyleFormat)
		if g.writeEmpty(result, "style", styleFile) {
			g.link(result, "style-link", func() (string, error) {
				return patcher.LinkStyle(dir, string(req.StyleFormat))
			})
		}
	}

	if req.CreateScript {
		if g.writeEmpty(result, "script", scriptFile) {
			g.link(result, "script-link", func() (string, error) {
				return patcher.LinkScript(section, name)
			})
		}
	}

	g.Console.Success("Successfully created %s %s.", name, spec.Kind)
	return result, nil
}

func (g *Generator) confirmArchitecture(sectionDir string) error {
	if info, err := os.Stat(sectionDir); err == nil && info.IsDir() {
		return nil
	}
	g.Console.Warn("%s does not exist", sectionDir)
	if g.AssumeYes {
		return nil
	}
	ok, err := g.Prompter.Confirm("Your project seems to have an unsupported architecture. Do you wish to continue?", false)
	if err != nil {
		return err
	}
	if !ok {
		return ErrArchitectureDeclined
	}
	return nil
}

// createDir creates the parents as needed and the target itself with a
// non-recursive Mkdir, so an existing directory is never merged into.
func createDir(parent, dir string) error {
	if err := os.MkdirAll(parent, dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateDir, err)
	}
	if err := os.Mkdir(dir, dirPerm); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrTargetExists, dir)
		}
		return fmt.Errorf("%w: %v", ErrCreateDir, err)
	}
	return nil
}

func (g *Generator) buildRequest(spec Spec, name string) (Request, error) {
	req := Request{Kind: spec.Kind, Name: name}

	if spec.Options != nil {
		req.CreateStyle = spec.Options.Style
		req.StyleFormat = spec.Options.StyleFormat
		req.CreateScript = spec.Options.Script
		if req.CreateStyle && req.StyleFormat == "" {
			req.StyleFormat = g.defaultStyle()
		}
		return req, nil
	}

	choices, err := g.Prompter.MultiSelect(fmt.Sprintf("Choose %s options", spec.Kind), []prompt.Option{
		{Label: "Styles", Value: "style"},
		{Label: "JavaScript", Value: "js"},
	})
	if err != nil {
		return req, err
	}
	for _, c := range choices {
		switch c {
		case "style":
			req.CreateStyle = true
		case "js":
			req.CreateScript = true
		}
	}

	if req.CreateStyle {
		options := make([]prompt.Option, len(StyleFormats))
		for i, f := range StyleFormats {
			options[i] = prompt.Option{Label: string(f), Value: string(f)}
		}
		answer, err := g.Prompter.Select("Which styles do you want to use?", options, string(g.defaultStyle()))
		if err != nil {
			return req, err
		}
		format, err := ParseStyleFormat(answer)
		if err != nil {
			return req, err
		}
		req.StyleFormat = format
	}
	return req, nil
}

func (g *Generator) defaultStyle() StyleFormat {
	if g.DefaultStyle != "" {
		return g.DefaultStyle
	}
	return SCSS
}

func (g *Generator) writeMarkup(result *Result, file string) {
	content, err := scaffold.RenderMarkup(result.Request.Name, result.Request.Kind == Page)
	if err == nil {
		err = writeNew(filepath.Join(result.Dir, file), content)
	}
	if err != nil {
		g.report(result, Issue{Step: "markup", File: file, Err: err})
		return
	}
	result.Files = append(result.Files, file)
}

// writeEmpty creates an empty file in the element directory and reports
// whether it succeeded.
func (g *Generator) writeEmpty(result *Result, step, file string) bool {
	if err := writeNew(filepath.Join(result.Dir, file), ""); err != nil {
		g.report(result, Issue{Step: step, File: file, Err: err})
		return false
	}
	result.Files = append(result.Files, file)
	return true
}

func (g *Generator) link(result *Result, step string, patch func() (string, error)) {
	path, err := patch()
	if err != nil {
		g.report(result, Issue{Step: step, File: path, Err: err})
		return
	}
	result.Linked = append(result.Linked, path)
	g.Console.Debugf("linked %s into %s", result.Request.Name, path)
}

func (g *Generator) report(result *Result, issue Issue) {
	result.Issues = append(result.Issues, issue)
	kind := result.Request.Kind
	switch issue.Step {
	case "style-link":
		g.Console.Warn("Failed to link styles for your %s %s: %v", kind, result.Request.Name, issue.Err)
	case "script-link":
		g.Console.Warn("Failed to link js for your %s %s: %v", kind, result.Request.Name, issue.Err)
	default:
		g.Console.Warn("Failed to create %s for %s %s: %v", issue.File, kind, result.Request.Name, issue.Err)
	}
}

// writeNew creates path exclusively; an existing file is never overwritten.
func writeNew(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
