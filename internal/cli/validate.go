package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uom-labs/uomsys/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate catalog manifests",
	Long: `Check catalog manifests (YAML, JSON or TOML) against the catalog schema,
the supported version range and the registry invariants.`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: noCatalogs,
	RunE:        runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		cat, reg, err := manifest.Load(path)
		if err == nil {
			printer.Fprintf(out, "ok    %s (%s, %d systems)\n", path, cat.Name, reg.Len())
			continue
		}

		failed++
		fmt.Fprintf(out, "FAIL  %s\n", path)
		var se *manifest.SchemaError
		if errors.As(err, &se) {
			for _, issue := range se.Issues {
				fmt.Fprintf(out, "      %s\n", issue)
			}
			continue
		}
		fmt.Fprintf(out, "      %v\n", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d catalogs invalid", failed, len(args))
	}
	return nil
}
