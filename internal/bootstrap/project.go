package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vitepug/vitepug/internal/ui"
)

// CurrentDir is the project name meaning "create the project right here".
const CurrentDir = "."

// stageName is the directory inside the target the template is cloned into
// before its contents are moved up.
const stageName = ".vitepug-clone"

var (
	ErrClone   = errors.New("failed to clone the project template")
	ErrInstall = errors.New("failed to install dependencies")
)

// Options describe the project to create.
type Options struct {
	Name            string
	EnableIndexPage bool
	TemplateRepo    string
	PackageManager  string
}

// Bootstrapper creates projects from the template repository.
type Bootstrapper struct {
	Runner  Runner
	Console *ui.Console
	// WorkDir is the directory relative project names are resolved against.
	WorkDir string
}

// Create clones the template into opts.Name, configures the pages plugin and
// installs dependencies. It returns the absolute project directory.
func (b *Bootstrapper) Create(ctx context.Context, opts Options) (string, error) {
	if opts.Name == "" {
		return "", fmt.Errorf("project name must not be empty")
	}
	target := opts.Name
	if !filepath.IsAbs(target) {
		target = filepath.Join(b.WorkDir, target)
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving project directory: %w", err)
	}

	if err := CheckEmpty(target); err != nil {
		return "", err
	}

	if opts.Name == CurrentDir {
		b.Console.Info("Creating a project in the current directory")
	} else {
		b.Console.Info("Creating a project: %s", opts.Name)
	}

	if err := b.clone(ctx, opts.TemplateRepo, target); err != nil {
		return "", err
	}
	b.Console.Debugf("cloned %s into %s", opts.TemplateRepo, target)

	if err := ConfigurePages(target, opts.EnableIndexPage); err != nil {
		return "", err
	}
	if opts.EnableIndexPage {
		b.Console.Debugf("index page enabled")
	} else {
		b.Console.Debugf("index page disabled, template index files removed")
	}

	pm := opts.PackageManager
	if pm == "" {
		pm = "npm"
	}
	b.Console.Info("Installing dependencies")
	if err := b.Runner.Run(ctx, target, pm, "install"); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInstall, err)
	}

	b.Console.Success("Project created successfully")
	return target, nil
}

// clone performs a shallow clone of repo into a staging directory inside
// target and moves its contents up. On failure everything created here is
// removed again.
func (b *Bootstrapper) clone(ctx context.Context, repo, target string) error {
	created := false
	if _, err := os.Stat(target); errors.Is(err, os.ErrNotExist) {
		created = true
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrClone, target, err)
	}

	stage := filepath.Join(target, stageName)
	_ = os.RemoveAll(stage)

	cleanup := func() {
		_ = os.RemoveAll(stage)
		if created {
			_ = os.RemoveAll(target)
		}
	}

	if err := b.Runner.Run(ctx, target, "git", "clone", "--depth", "1", repo, stageName); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrClone, err)
	}

	entries, err := os.ReadDir(stage)
	if err != nil {
		cleanup()
		return fmt.Errorf("%w: reading clone: %w", ErrClone, err)
	}
	for _, e := range entries {
		if err := os.Rename(filepath.Join(stage, e.Name()), filepath.Join(target, e.Name())); err != nil {
			cleanup()
			return fmt.Errorf("%w: finalizing clone: %w", ErrClone, err)
		}
	}
	return os.Remove(stage)
}
