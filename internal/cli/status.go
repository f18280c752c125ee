package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitepug/vitepug/internal/element"
	"github.com/vitepug/vitepug/internal/project"
	"github.com/vitepug/vitepug/internal/ui"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func init() {
	statusCmd.Flags().StringVar(&layoutSrc, "src", "", "Source directory relative to the project root (default: src)")
	statusCmd.Flags().StringVar(&layoutUtils, "utils", "", "Aggregator directory inside the source directory (default: utils)")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List the components and pages of the current project",
	Long: `List every component and page of the current project with the files it
has and whether its stylesheet and script are linked in the aggregators.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := workDir()
		if err != nil {
			return err
		}
		root, err := project.FindRoot(start, markerSetting())
		if err != nil {
			return err
		}
		layout, err := project.LoadLayout(root, cmd.Flags())
		if err != nil {
			return fmt.Errorf("loading project layout: %w", err)
		}
		inv, err := element.Inspect(root, layout)
		if err != nil {
			return err
		}

		printInventory(newConsole(cmd), inv)
		return nil
	},
}

func printInventory(c *ui.Console, inv *element.Inventory) {
	c.Item("Project", inv.Root)
	c.Item("Styles", orMissing(inv.StyleAggregator))
	c.Item("Scripts", orMissing(inv.ScriptAggregator))

	title := cases.Title(language.English)
	for _, kind := range []element.Kind{element.Component, element.Page} {
		var entries []element.Entry
		for _, e := range inv.Entries {
			if e.Kind == kind {
				entries = append(entries, e)
			}
		}

		c.Plain("")
		c.Plain("%ss (%d)", title.String(kind.String()), len(entries))
		for _, e := range entries {
			c.Plain("  %-20s %s", e.Name, describe(c, e))
		}
	}
}

func describe(c *ui.Console, e element.Entry) string {
	parts := []string{}
	if !e.Markup {
		parts = append(parts, ui.RenderStyle(ui.StyleYellow, "no markup", c.Color))
	}
	if e.StyleFormat != "" {
		parts = append(parts, linkState("style."+string(e.StyleFormat), e.StyleLinked, c.Color))
	}
	if e.Script {
		parts = append(parts, linkState("index.js", e.ScriptLinked, c.Color))
	}
	if len(parts) == 0 {
		return ui.RenderStyle(ui.StyleGray, "markup only", c.Color)
	}
	return strings.Join(parts, "  ")
}

func linkState(file string, linked, color bool) string {
	if linked {
		return file + " " + ui.RenderStyle(ui.StyleGreen, "(linked)", color)
	}
	return file + " " + ui.RenderStyle(ui.StyleRed, "(not linked)", color)
}

func orMissing(path string) string {
	if path == "" {
		return "(missing)"
	}
	return path
}
