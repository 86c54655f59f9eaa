package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uom-labs/uomsys/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var noCatalogs = map[string]string{annotationNoCatalogs: "true"}

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage user settings",
	Long:        `Read and write settings stored at ~/.uomsys/config.yaml (keys: provider, catalogs, debug).`,
	Annotations: noCatalogs,
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Set a configuration value",
	Args:        cobra.ExactArgs(2),
	Annotations: noCatalogs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:         "get <key>",
	Short:       "Get a configuration value",
	Args:        cobra.ExactArgs(1),
	Annotations: noCatalogs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
