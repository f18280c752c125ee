// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit that file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	TemplateRepoURL string `yaml:"template_repo_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "vitepug",
			DisplayName:     "VitePug",
			Description:     "Scaffold Vite + Pug projects and generate components and pages",
			HomeDir:         ".vitepug",
			EnvPrefix:       "VITEPUG",
			TemplateRepoURL: "https://github.com/neverFeltAlive/vite-pug.git",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "vitepug").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".vitepug").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "VITEPUG").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TemplateRepoURL returns the default git URL of the project template.
func TemplateRepoURL() string { load(); return defaults.TemplateRepoURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "VITEPUG_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
