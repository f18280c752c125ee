package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/vitepug/vitepug/internal/branding"
	"github.com/vitepug/vitepug/internal/config"
	"github.com/vitepug/vitepug/internal/prompt"
	"github.com/vitepug/vitepug/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags.
var (
	verbose bool
	noColor bool
	chdir   string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds Vite + Pug projects from a template and generates
components and pages inside them, linking their styles and scripts into the
project's aggregator files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print diagnostic output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&chdir, "chdir", "C", "", "Run as if started in this directory")
}

// Execute runs the root command with build info injected via ldflags.
// A returned error has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = rootCmd
		}
		reportError(newConsole(cmd), err)
	}
	return err
}

func reportError(c *ui.Console, err error) {
	if errors.Is(err, prompt.ErrCancelled) {
		c.Warn("operation cancelled")
		return
	}
	c.Error("%v", err)
}

// newConsole builds a Console on the command's writers honoring the
// persistent output flags.
func newConsole(cmd *cobra.Command) *ui.Console {
	c := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if noColor {
		c.Color = false
	}
	c.Verbose = verbose
	return c
}

// newPrompter prompts on the command's input. Interactive widgets are used
// only when that input is a terminal.
// notifyContext installs interrupt handling; replaced in tests.
var notifyContext = signal.NotifyContext

func newPrompter(cmd *cobra.Command) prompt.Prompter {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return prompt.New(f, cmd.ErrOrStderr())
	}
	return prompt.NewLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// workDir returns the directory commands operate from.
func workDir() (string, error) {
	if chdir != "" {
		return chdir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return wd, nil
}
