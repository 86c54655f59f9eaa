package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the systems of a provider",
	Long:  `List every system of units registered with a provider, in registration order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	name, p, err := selectedProvider()
	if err != nil {
		return err
	}

	views := viewsOf(p)
	if listJSON {
		return printJSON(cmd, views)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tALIASES\tDEFAULT")
	for _, v := range views {
		aliases := strings.Join(v.Aliases, ", ")
		if aliases == "" {
			aliases = "-"
		}
		def := ""
		if v.Default {
			def = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Key, v.Name, aliases, def)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printer.Fprintf(cmd.OutOrStdout(), "\n%d systems of units in provider %s\n", len(views), name)
	return nil
}
