package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change tool configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Known keys:
  storage.data_dir  directory holding the shared collection files
  catalog.path      path of the catalog document`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	printTitle(cmd, "Configuration")
	cmd.Printf("  Config file: %s\n", configStore.Path())
	for _, key := range []string{configKeyDataDir, configKeyCatalog} {
		value := configStore.GetString(key)
		if value == "" {
			value = "(default)"
		}
		cmd.Printf("  %s: %s\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	key, value := args[0], args[1]
	if key != configKeyDataDir && key != configKeyCatalog {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
