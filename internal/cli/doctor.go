package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/vitepug/vitepug/internal/config"
	"github.com/vitepug/vitepug/internal/toolchain"
	"github.com/vitepug/vitepug/internal/ui"
)

// newVersionReader builds the version reader used by doctor; replaced in tests.
var newVersionReader = func() toolchain.VersionReader { return toolchain.ExecVersionReader{} }

var errDoctorFailed = errors.New("required tools are missing")

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that git, Node.js and the package manager are installed",
	Long: `Check the external tools needed to create and build projects.

Each tool is reported as OK, WARN (installed but older than required, or its
version could not be read) or FAIL (not installed). The command fails when
any tool is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newConsole(cmd)
		tools := toolchain.DefaultTools(config.Get(config.KeyPackageManager))
		checks := toolchain.Run(cmd.Context(), newVersionReader(), tools)

		for _, check := range checks {
			printCheck(c, check)
		}
		if toolchain.Failed(checks) {
			return errDoctorFailed
		}
		c.Success("All required tools are available.")
		return nil
	},
}

func printCheck(c *ui.Console, check toolchain.Check) {
	var status string
	switch check.Status {
	case toolchain.StatusOK:
		status = ui.RenderStyle(ui.StyleGreen, "[OK]  ", c.Color)
	case toolchain.StatusWarn:
		status = ui.RenderStyle(ui.StyleYellow, "[WARN]", c.Color)
	default:
		status = ui.RenderStyle(ui.StyleRed, "[FAIL]", c.Color)
	}

	line := status + " " + check.Tool.Name
	if check.Version != "" {
		line += " " + check.Version
	}
	if check.Detail != "" {
		line += " (" + check.Detail + ")"
	}
	c.Plain("%s", line)
}
