package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uom-labs/uomsys/internal/registry"
)

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.0.0", false},
		{"v1.0.0", false},
		{"1.9.3", false},
		{"1.0.0-beta", true},
		{"0.9.0", true},
		{"2.0.0", true},
		{"latest", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.wantErr && err == nil {
				t.Errorf("CheckVersion(%q) expected error, got nil", tt.version)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckVersion(%q) unexpected error: %v", tt.version, err)
			}
		})
	}
}

func TestLoad_AllFormatsBuildSameRegistry(t *testing.T) {
	for _, file := range []string{"valid-catalog.yaml", "valid-catalog.json", "valid-catalog.toml"} {
		t.Run(file, func(t *testing.T) {
			c, r, err := Load(testPath(file))
			require.NoError(t, err)
			assert.Equal(t, "sample", c.Name)

			assert.Equal(t, []string{"Metric", "Nautical"}, r.Names())
			assert.Equal(t, "Metric System", r.Default().Name())

			sea, ok := r.ByName("Sea")
			require.True(t, ok)
			nautical, _ := r.ByName("Nautical")
			assert.Same(t, nautical, sea)
			assert.Len(t, sea.Units(), 1)
		})
	}
}

func TestLoad_SchemaError(t *testing.T) {
	_, _, err := Load(testPath("invalid-missing-default.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.NotEmpty(t, se.Issues)
	assert.Contains(t, se.Error(), "invalid-missing-default.yaml")
}

func TestLoad_DanglingAlias(t *testing.T) {
	_, _, err := Load(testPath("invalid-dangling-alias.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrInvalidConfig)

	var ce *registry.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Imperial", ce.Name)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	_, _, err := Load(testPath("invalid-version.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSchema))
	assert.Contains(t, err.Error(), "not supported")
}

func TestLoad_NotFound(t *testing.T) {
	_, _, err := Load(testPath("nonexistent.yaml"))
	require.Error(t, err)
}

func TestCatalog_ConfigCreatesFreshSystems(t *testing.T) {
	c, err := Parse(testPath("valid-catalog.yaml"))
	require.NoError(t, err)

	a := c.Config()
	b := c.Config()
	require.Len(t, a.Entries, 2)
	assert.NotSame(t, a.Entries[0].System, b.Entries[0].System)
	assert.Equal(t, "Metric", a.Default)
	assert.Equal(t, registry.Alias{Name: "SI", Target: "Metric"}, a.Aliases[0])
}
