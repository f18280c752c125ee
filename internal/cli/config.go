package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/vitepug/vitepug/internal/config"
	"github.com/vitepug/vitepug/internal/element"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.vitepug/config.yaml.

Keys:
  template_repo     git URL of the project template
  package_manager   tool used to install dependencies (default: npm)
  marker            directory identifying the project root (default: node_modules)
  style_format      preselected stylesheet format: scss, sass or css`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateSetting(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(config.Keys(), args[0]) {
			return unknownKey(args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}

func validateSetting(key, value string) error {
	if !slices.Contains(config.Keys(), key) {
		return unknownKey(key)
	}
	if value == "" {
		return fmt.Errorf("value for %q must not be empty", key)
	}
	if key == config.KeyStyleFormat {
		if _, err := element.ParseStyleFormat(value); err != nil {
			return err
		}
	}
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q (known keys: %v)", key, config.Keys())
}
