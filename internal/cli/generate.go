package cli

import (
	"github.com/spf13/cobra"
	"github.com/vitepug/vitepug/internal/config"
	"github.com/vitepug/vitepug/internal/element"
	"github.com/vitepug/vitepug/internal/project"
)

// Flags shared by generate, component and page.
var (
	genPage     bool
	genStyle    string
	genScript   bool
	genBare     bool
	genYes      bool
	layoutSrc   string
	layoutUtils string
)

func init() {
	generateCmd.Flags().BoolVarP(&genPage, "page", "p", false, "Generate a page instead of a component")
	for _, cmd := range []*cobra.Command{generateCmd, componentCmd, pageCmd} {
		addElementFlags(cmd)
		rootCmd.AddCommand(cmd)
	}
}

func addElementFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&genStyle, "style", "", "Create a stylesheet in this format (scss, sass, css)")
	cmd.Flags().BoolVar(&genScript, "script", false, "Create an index.js script")
	cmd.Flags().BoolVar(&genBare, "bare", false, "Create the markup file only")
	cmd.Flags().BoolVarP(&genYes, "yes", "y", false, "Continue without confirmation when the project layout looks unsupported")
	cmd.Flags().StringVar(&layoutSrc, "src", "", "Source directory relative to the project root (default: src)")
	cmd.Flags().StringVar(&layoutUtils, "utils", "", "Aggregator directory inside the source directory (default: utils)")
	cmd.MarkFlagsMutuallyExclusive("bare", "style")
	cmd.MarkFlagsMutuallyExclusive("bare", "script")
}

var generateCmd = &cobra.Command{
	Use:     "generate [name]",
	Aliases: []string{"g", "add"},
	Short:   "Generate a component or page",
	Long: `Generate a component (or a page with --page) inside the current project.

The project root is the nearest ancestor directory containing node_modules.
The element is created as <src>/components/<name>/ or <src>/pages/<name>/ with
an index.pug markup file, and optionally a stylesheet and an index.js script
which are linked into the aggregator files in <src>/utils/.

Without --style, --script or --bare the options are asked interactively.

Examples:
  vitepug generate Header
  vitepug g -p About --style scss --script
  vitepug add Footer --bare`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := element.Component
		if genPage {
			kind = element.Page
		}
		return runGenerate(cmd, args, kind)
	},
}

var componentCmd = &cobra.Command{
	Use:   "component [name]",
	Short: "Generate a component",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, element.Component)
	},
}

var pageCmd = &cobra.Command{
	Use:   "page [name]",
	Short: "Generate a page",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, element.Page)
	},
}

func runGenerate(cmd *cobra.Command, args []string, kind element.Kind) error {
	defaultStyle, err := element.ParseStyleFormat(config.Get(config.KeyStyleFormat))
	if err != nil {
		return err
	}

	opts, err := elementOptions(cmd, defaultStyle)
	if err != nil {
		return err
	}

	start, err := workDir()
	if err != nil {
		return err
	}

	spec := element.Spec{Kind: kind, StartDir: start, Options: opts}
	if len(args) > 0 {
		spec.Name = args[0]
	}

	g := &element.Generator{
		Prompter:     newPrompter(cmd),
		Console:      newConsole(cmd),
		Marker:       markerSetting(),
		LayoutFlags:  cmd.Flags(),
		DefaultStyle: defaultStyle,
		AssumeYes:    genYes,
	}
	_, err = g.Generate(cmd.Context(), spec)
	return err
}

// elementOptions returns the preset options, or nil when none of the option
// flags were given and the user should be asked.
func elementOptions(cmd *cobra.Command, defaultStyle element.StyleFormat) (*element.Options, error) {
	flags := cmd.Flags()
	if !flags.Changed("style") && !flags.Changed("script") && !flags.Changed("bare") {
		return nil, nil
	}
	if genBare {
		return &element.Options{StyleFormat: defaultStyle}, nil
	}

	opts := &element.Options{Script: genScript, StyleFormat: defaultStyle}
	if flags.Changed("style") {
		f, err := element.ParseStyleFormat(genStyle)
		if err != nil {
			return nil, err
		}
		opts.Style = true
		opts.StyleFormat = f
	}
	return opts, nil
}

func markerSetting() string {
	if m := config.Get(config.KeyMarker); m != "" {
		return m
	}
	return project.DefaultMarker
}
