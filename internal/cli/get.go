package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/uom-labs/uomsys/internal/log"
	"github.com/uom-labs/uomsys/internal/units"
)

// ErrSystemNotFound is returned by the get command on a lookup miss.
var ErrSystemNotFound = errors.New("system not found")

var (
	getUnits bool
	getJSON  bool
)

var getCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Resolve a system of units",
	Long: `Resolve a system of units by canonical name or alias. Without a name the
provider's default system is returned. Names match exactly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getUnits, "units", false, "Include the system's units")
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	providerName, p, err := selectedProvider()
	if err != nil {
		return err
	}

	var (
		query string
		sys   units.System
	)
	if len(args) == 0 {
		sys = p.Default()
	} else {
		query = args[0]
		var ok bool
		sys, ok = p.ByName(query)
		if !ok {
			log.Debug(log.CatCLI, "lookup miss", "provider", providerName, "name", query)
			return fmt.Errorf("%q in provider %s: %w", query, providerName, ErrSystemNotFound)
		}
	}

	v := viewOf(p, query, sys, getUnits)
	if getJSON {
		return printJSON(cmd, v)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", v.Name, v.Key)
	if !getUnits {
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tNAME\tQUANTITY")
	for _, u := range v.Units {
		fmt.Fprintf(w, "%s\t%s\t%s\n", u.Symbol, u.Name, u.Quantity)
	}
	return w.Flush()
}
