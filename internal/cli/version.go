package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/vitepug/vitepug/internal/branding"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build details as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

type buildDetails struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Built    string `json:"built"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

// currentBuild merges the ldflags values with what the Go toolchain embedded,
// so binaries from "go install" still report a module version and revision.
func currentBuild() buildDetails {
	d := buildDetails{
		Version:  buildVersion,
		Commit:   buildCommit,
		Built:    buildDate,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return d
	}
	if (d.Version == "" || d.Version == "dev") && info.Main.Version != "" && info.Main.Version != "(devel)" {
		d.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && (d.Commit == "" || d.Commit == "unknown"):
			d.Commit = s.Value
		case s.Key == "vcs.time" && (d.Built == "" || d.Built == "unknown"):
			d.Built = s.Value
		}
	}
	return d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := currentBuild()
		switch {
		case versionShort:
			fmt.Fprintln(cmd.OutOrStdout(), d.Version)
		case versionJSON:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(d); err != nil {
				return fmt.Errorf("encoding build details: %w", err)
			}
		default:
			c := newConsole(cmd)
			c.Info("%s %s", branding.DisplayName(), d.Version)
			c.Item("Commit", d.Commit)
			c.Item("Built", d.Built)
			c.Item("Go", d.Go)
			c.Item("Platform", d.Platform)
		}
		return nil
	},
}
