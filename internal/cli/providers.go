package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var providersJSON bool

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered providers",
	Long:  `List the built-in providers and any loaded catalogs, highest priority first.`,
	Args:  cobra.NoArgs,
	RunE:  runProviders,
}

func init() {
	providersCmd.Flags().BoolVar(&providersJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(providersCmd)
}

// providerEntry represents a registered provider for display.
type providerEntry struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Default  string `json:"default"`
	Systems  int    `json:"systems"`
	Current  bool   `json:"current"`
}

func runProviders(cmd *cobra.Command, args []string) error {
	current, err := providers.CurrentName()
	if err != nil {
		return err
	}

	var entries []providerEntry
	for _, reg := range providers.Available() {
		entries = append(entries, providerEntry{
			Name:     reg.Name,
			Priority: reg.Priority,
			Default:  reg.Provider.Default().Name(),
			Systems:  len(reg.Provider.Available()),
			Current:  reg.Name == current,
		})
	}

	if providersJSON {
		return printJSON(cmd, entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRIORITY\tSYSTEMS\tDEFAULT\tCURRENT")
	for _, e := range entries {
		mark := ""
		if e.Current {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", e.Name, e.Priority, e.Systems, e.Default, mark)
	}
	return w.Flush()
}
