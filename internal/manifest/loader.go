package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/uom-labs/uomsys/internal/log"
	"github.com/uom-labs/uomsys/internal/registry"
	"github.com/uom-labs/uomsys/internal/units"
)

// SupportedVersions is the semver constraint a catalog's version must meet.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// ErrSchema is wrapped by SchemaError.
var ErrSchema = errors.New("manifest does not match catalog schema")

// SchemaError reports the schema issues found in a manifest.
type SchemaError struct {
	Source string
	Issues []ValidationIssue
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %s", e.Source, strings.Join(parts, "; "))
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

var supported = semver.MustParse("1.0.0")

// CheckVersion verifies that version satisfies SupportedVersions.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing catalog version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("catalog version %s is not supported (want %s)", v, SupportedVersions)
	}
	if v.GreaterThan(supported) {
		log.Debug(log.CatManifest, "catalog version newer than reader", "version", v.String(), "reader", supported.String())
	}
	return nil
}

// Config builds a registry configuration from the catalog. Each call creates
// new units.System values; build the registry once and share it.
func (c *Catalog) Config() registry.Config {
	cfg := registry.Config{
		Entries: make([]registry.Entry, len(c.Systems)),
		Aliases: make([]registry.Alias, len(c.Aliases)),
		Default: c.Default,
	}
	for i, s := range c.Systems {
		cfg.Entries[i] = registry.Entry{Name: s.Key, System: units.NewSet(s.Name, s.Units)}
	}
	for i, a := range c.Aliases {
		cfg.Aliases[i] = registry.Alias{Name: a.Name, Target: a.Target}
	}
	return cfg
}

// Registry checks the catalog version and builds its registry.
func (c *Catalog) Registry() (*registry.Registry, error) {
	if err := CheckVersion(c.Version); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", c.Name, err)
	}
	r, err := registry.New(c.Config())
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", c.Name, err)
	}
	log.Debug(log.CatManifest, "built registry", "catalog", c.Name, "systems", r.Len(), "default", r.DefaultName())
	return r, nil
}

// LoadBytes validates, decodes and builds a catalog from raw manifest data.
// source names the data in error messages.
func LoadBytes(source string, data []byte, format Format) (*Catalog, *registry.Registry, error) {
	result, err := Validate(data, format)
	if err != nil {
		return nil, nil, fmt.Errorf("validating %s: %w", source, err)
	}
	if !result.Valid {
		return nil, nil, &SchemaError{Source: source, Issues: result.Issues}
	}

	c, err := ParseBytes(data, format)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}

	r, err := c.Registry()
	if err != nil {
		return nil, nil, err
	}
	return c, r, nil
}

// Load reads the manifest at path and builds its catalog and registry.
func Load(path string) (*Catalog, *registry.Registry, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	log.Debug(log.CatManifest, "loading catalog", "path", path, "format", string(format))
	return LoadBytes(path, data, format)
}
