package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uom-labs/uomsys/internal/branding"
	"github.com/uom-labs/uomsys/internal/config"
	"github.com/uom-labs/uomsys/internal/log"
	"github.com/uom-labs/uomsys/internal/manifest"
	"github.com/uom-labs/uomsys/internal/provider"
	"github.com/uom-labs/uomsys/internal/registry"
)

// annotationNoCatalogs marks commands that never query a provider.
const annotationNoCatalogs = "no-catalogs"

// UserPriority is the priority of catalogs loaded from --catalog or the
// config file. It ranks them above the built-in providers.
const UserPriority = 20

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	flagDebug    bool
	flagCatalogs []string
	flagProvider string

	// providers is rebuilt before every command run.
	providers *provider.Catalog
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves systems of units by canonical name or alias, falling back
to a provider's default system when no name is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if flagDebug || config.Debug() {
			log.Init(os.Stderr)
			log.SetMinLevel(log.LevelDebug)
		}
		log.Debug(log.CatCLI, "running command", "name", cmd.Name(), "args", args)

		if cmd.Annotations[annotationNoCatalogs] == "true" {
			return nil
		}

		c, err := buildProviders(append(config.Catalogs(), flagCatalogs...))
		if err != nil {
			return err
		}
		providers = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().StringArrayVar(&flagCatalogs, "catalog", nil, "Load an extra catalog manifest (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&flagProvider, "provider", "p", "", "Provider to query (default: configured or highest priority)")
}

// buildProviders returns the built-in catalog extended with the manifests at
// paths, each registered under its catalog name.
func buildProviders(paths []string) (*provider.Catalog, error) {
	c := provider.Builtin()
	for _, path := range paths {
		cat, reg, err := manifest.Load(path)
		if err != nil {
			log.ErrorErr(log.CatCLI, "loading catalog failed", err, "path", path)
			return nil, fmt.Errorf("loading catalog %s: %w", path, err)
		}
		if err := c.Register(cat.Name, UserPriority, reg); err != nil {
			return nil, fmt.Errorf("loading catalog %s: %w", path, err)
		}
	}
	return c, nil
}

// selectedProvider returns the provider named by --provider, the config file,
// or the current provider, in that order.
func selectedProvider() (string, registry.Provider, error) {
	name := flagProvider
	if name == "" {
		name = config.Provider()
	}
	if name == "" {
		current, err := providers.CurrentName()
		if err != nil {
			return "", nil, err
		}
		name = current
	}
	p, err := providers.Of(name)
	if err != nil {
		return "", nil, err
	}
	return name, p, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
