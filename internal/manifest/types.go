package manifest

import "github.com/uom-labs/uomsys/internal/units"

// Catalog is the decoded form of a catalog manifest.
type Catalog struct {
	Name        string        `yaml:"name" json:"name" toml:"name"`
	Version     string        `yaml:"version" json:"version" toml:"version"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Default     string        `yaml:"default" json:"default" toml:"default"`
	Systems     []SystemEntry `yaml:"systems" json:"systems" toml:"systems"`
	Aliases     []AliasEntry  `yaml:"aliases,omitempty" json:"aliases,omitempty" toml:"aliases,omitempty"`
}

// SystemEntry declares one system of units under its canonical key.
type SystemEntry struct {
	Key   string       `yaml:"key" json:"key" toml:"key"`
	Name  string       `yaml:"name" json:"name" toml:"name"`
	Units []units.Unit `yaml:"units,omitempty" json:"units,omitempty" toml:"units,omitempty"`
}

// AliasEntry maps an alternate name onto a system key.
type AliasEntry struct {
	Name   string `yaml:"name" json:"name" toml:"name"`
	Target string `yaml:"target" json:"target" toml:"target"`
}

// Format identifies the encoding of a manifest file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)
