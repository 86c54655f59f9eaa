package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/uom-labs/uomsys/internal/registry"
	"github.com/uom-labs/uomsys/internal/units"
)

var printer = message.NewPrinter(language.English)

// describer is implemented by providers that expose their name tables.
// *registry.Registry satisfies it.
type describer interface {
	registry.Provider
	Names() []string
	DefaultName() string
	AliasesOf(canonical string) []string
	Resolve(name string) (string, bool)
}

// systemView represents a system of units for display.
type systemView struct {
	Key     string       `json:"key"`
	Name    string       `json:"name"`
	Default bool         `json:"default"`
	Aliases []string     `json:"aliases,omitempty"`
	Units   []units.Unit `json:"units,omitempty"`
}

// viewsOf lists the provider's systems in registration order. Providers that
// do not expose their keys are listed by system name.
func viewsOf(p registry.Provider) []systemView {
	d, ok := p.(describer)
	if !ok {
		def := p.Default()
		var views []systemView
		for _, s := range p.Available() {
			views = append(views, systemView{Key: s.Name(), Name: s.Name(), Default: s == def})
		}
		return views
	}

	names := d.Names()
	views := make([]systemView, 0, len(names))
	for _, n := range names {
		s, _ := d.ByName(n)
		views = append(views, systemView{
			Key:     n,
			Name:    s.Name(),
			Default: n == d.DefaultName(),
			Aliases: d.AliasesOf(n),
		})
	}
	return views
}

// viewOf describes the system a query resolved to.
func viewOf(p registry.Provider, query string, s units.System, withUnits bool) systemView {
	v := systemView{Key: query, Name: s.Name(), Default: s == p.Default()}
	if d, ok := p.(describer); ok {
		if key, ok := d.Resolve(query); ok {
			v.Key = key
		}
		if query == "" {
			v.Key = d.DefaultName()
		}
		v.Aliases = d.AliasesOf(v.Key)
	}
	if withUnits {
		v.Units = s.Units()
	}
	return v
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
