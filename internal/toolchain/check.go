package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNotFound is returned by a VersionReader when the tool is not on PATH.
var ErrNotFound = errors.New("not found in PATH")

// Status is the outcome of a single tool check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Tool is an external program a project needs.
type Tool struct {
	Name       string
	Constraint string
}

// Check is the result of probing one Tool.
type Check struct {
	Tool    Tool
	Version string
	Status  Status
	Detail  string
}

// VersionReader returns the raw --version output of a tool.
type VersionReader interface {
	Version(ctx context.Context, name string) (string, error)
}

// ExecVersionReader runs `<tool> --version`.
type ExecVersionReader struct{}

func (ExecVersionReader) Version(ctx context.Context, name string) (string, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", ErrNotFound
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s --version: %w", name, err)
	}
	return out.String(), nil
}

// DefaultTools returns the tools needed to create and build a project with
// the given package manager.
func DefaultTools(packageManager string) []Tool {
	tools := []Tool{
		{Name: "git", Constraint: ">= 2.0.0"},
		{Name: "node", Constraint: ">= 18.0.0"},
	}
	switch packageManager {
	case "", "npm":
		tools = append(tools, Tool{Name: "npm", Constraint: ">= 8.0.0"})
	default:
		tools = append(tools, Tool{Name: packageManager, Constraint: "*"})
	}
	return tools
}

// Run checks every tool. A missing tool fails; an old or unrecognized
// version only warns.
func Run(ctx context.Context, p VersionReader, tools []Tool) []Check {
	checks := make([]Check, 0, len(tools))
	for _, tool := range tools {
		checks = append(checks, checkTool(ctx, p, tool))
	}
	return checks
}

func checkTool(ctx context.Context, p VersionReader, tool Tool) Check {
	c := Check{Tool: tool}

	out, err := p.Version(ctx, tool.Name)
	if err != nil {
		c.Status = StatusFail
		c.Detail = err.Error()
		return c
	}

	v, err := ExtractVersion(out)
	if err != nil {
		c.Status = StatusWarn
		c.Detail = "could not determine version"
		return c
	}
	c.Version = v.String()

	ok, err := Satisfies(c.Version, tool.Constraint)
	switch {
	case err != nil:
		c.Status = StatusWarn
		c.Detail = err.Error()
	case !ok:
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("version %s does not satisfy %s", c.Version, tool.Constraint)
	default:
		c.Status = StatusOK
	}
	return c
}

// Failed reports whether any check failed.
func Failed(checks []Check) bool {
	for _, c := range checks {
		if c.Status == StatusFail {
			return true
		}
	}
	return false
}
