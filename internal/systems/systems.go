package systems

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/uom-labs/uomsys/internal/manifest"
	"github.com/uom-labs/uomsys/internal/registry"
	"github.com/uom-labs/uomsys/internal/units"
)

// Canonical names of the built-in systems.
const (
	ImperialName    = "Imperial"
	USCustomaryName = "USCustomary"
	CGSName         = "CGS"
	SIName          = "SI"
)

var (
	//go:embed catalogs/common.yaml
	commonYAML []byte
	//go:embed catalogs/default.yaml
	defaultYAML []byte
)

type builtin struct {
	once sync.Once
	file string
	data []byte
	reg  *registry.Registry
}

var (
	common   = &builtin{file: "common.yaml", data: commonYAML}
	fallback = &builtin{file: "default.yaml", data: defaultYAML}
)

func (b *builtin) load() *registry.Registry {
	b.once.Do(func() {
		_, reg, err := manifest.LoadBytes(b.file, b.data, manifest.FormatYAML)
		if err != nil {
			panic(fmt.Sprintf("systems: embedded catalog %s: %v", b.file, err))
		}
		b.reg = reg
	})
	return b.reg
}

// Common returns the registry of Imperial, USCustomary and CGS with
// USCustomary as default and the aliases "US" and "Centimetre–gram–second".
func Common() *registry.Registry { return common.load() }

// CommonConfig returns the configuration Common is built from. The entries
// reference the same system instances as Common.
func CommonConfig() registry.Config { return configOf(Common()) }

// Default returns the registry holding the SI base units.
func Default() *registry.Registry { return fallback.load() }

// Imperial returns the Imperial system.
func Imperial() units.System { return mustGet(Common(), ImperialName) }

// USCustomary returns the United States customary system.
func USCustomary() units.System { return mustGet(Common(), USCustomaryName) }

// CGS returns the centimetre–gram–second system.
func CGS() units.System { return mustGet(Common(), CGSName) }

// SI returns the International System of Units.
func SI() units.System { return mustGet(Default(), SIName) }

func mustGet(r *registry.Registry, name string) units.System {
	s, ok := r.ByName(name)
	if !ok {
		panic(fmt.Sprintf("systems: built-in system %q missing", name))
	}
	return s
}

func configOf(r *registry.Registry) registry.Config {
	cfg := registry.Config{Aliases: r.Aliases(), Default: r.DefaultName()}
	for _, n := range r.Names() {
		s, _ := r.ByName(n)
		cfg.Entries = append(cfg.Entries, registry.Entry{Name: n, System: s})
	}
	return cfg
}
