package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitepug/vitepug/internal/bootstrap"
	"github.com/vitepug/vitepug/internal/config"
)

var (
	createIndex   bool
	createNoIndex bool
)

// newRunner builds the process runner used by create; replaced in tests.
var newRunner = func(cmd *cobra.Command) bootstrap.Runner {
	return &bootstrap.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
}

func init() {
	createCmd.Flags().BoolVarP(&createIndex, "index", "i", false, "Generate the index page without asking")
	createCmd.Flags().BoolVar(&createNoIndex, "no-index", false, "Disable the index page without asking")
	createCmd.MarkFlagsMutuallyExclusive("index", "no-index")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project from the template",
	Long: `Create a new project by cloning the template repository, configuring the
pages plugin and installing dependencies.

Use "." (the default when asked) to create the project in the current
directory, which must be empty.

Examples:
  vitepug create
  vitepug create my-site --index`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd)

		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			n, err := bootstrap.AskProjectName(p)
			if err != nil {
				return err
			}
			name = n
		}

		var enableIndex bool
		switch {
		case createIndex:
			enableIndex = true
		case createNoIndex:
			enableIndex = false
		default:
			ok, err := bootstrap.AskIndexPage(p)
			if err != nil {
				return err
			}
			enableIndex = ok
		}

		wd, err := workDir()
		if err != nil {
			return err
		}

		// Prompts are done; from here an interrupt cancels the child processes
		// and lets Create remove the half-built project.
		ctx, stop := notifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		c := newConsole(cmd)
		b := &bootstrap.Bootstrapper{Runner: newRunner(cmd), Console: c, WorkDir: wd}
		pm := config.Get(config.KeyPackageManager)
		if _, err := b.Create(ctx, bootstrap.Options{
			Name:            name,
			EnableIndexPage: enableIndex,
			TemplateRepo:    config.Get(config.KeyTemplateRepo),
			PackageManager:  pm,
		}); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\nNext steps:")
		step := 1
		if name != bootstrap.CurrentDir {
			fmt.Fprintf(out, "  %d. cd %s\n", step, name)
			step++
		}
		fmt.Fprintf(out, "  %d. %s run dev\n", step, pm)
		return nil
	},
}
