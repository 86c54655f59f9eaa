package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uom-labs/uomsys/internal/registry"
	"github.com/uom-labs/uomsys/internal/units"
)

func TestCommon_DefaultIsUSCustomary(t *testing.T) {
	r := Common()
	s := r.Default()
	require.NotNil(t, s)
	assert.Equal(t, "United States Customary Units", s.Name())
	assert.Same(t, USCustomary(), s)
	assert.Len(t, s.Units(), 45)
}

func TestUSCustomary_Units(t *testing.T) {
	us, ok := USCustomary().(*units.Set)
	require.True(t, ok)

	seen := make(map[string]bool, us.Len())
	for _, u := range us.Units() {
		assert.False(t, seen[u.Symbol], "duplicate symbol %q", u.Symbol)
		seen[u.Symbol] = true
	}
	for _, sym := range []string{"ft_survey_us", "fur", "sq mi", "bu", "cwt_us", "ft/s"} {
		_, ok := us.Unit(sym)
		assert.True(t, ok, "missing unit %q", sym)
	}
}

func TestCommon_Aliases(t *testing.T) {
	r := Common()

	us, ok := r.ByName("US")
	require.True(t, ok)
	assert.Same(t, USCustomary(), us)

	c, ok := r.ByName("Centimetre–gram–second")
	require.True(t, ok)
	assert.Same(t, CGS(), c)
	assert.Equal(t, "Centimetre–gram–second System of Units", c.Name())
	assert.Len(t, c.Units(), 12)
}

func TestCommon_Miss(t *testing.T) {
	s, ok := Common().ByName("Metric")
	assert.False(t, ok)
	assert.Nil(t, s)
}

func TestCommon_Available(t *testing.T) {
	got := Common().Available()
	assert.Equal(t, []units.System{Imperial(), USCustomary(), CGS()}, got)
}

func TestCommon_Singleton(t *testing.T) {
	assert.Same(t, Common(), Common())
	a, _ := Common().ByName(ImperialName)
	b, _ := Common().ByName(ImperialName)
	assert.Same(t, a, b)
}

func TestCommonConfig_RebuildsEquivalentRegistry(t *testing.T) {
	cfg := CommonConfig()
	assert.Equal(t, USCustomaryName, cfg.Default)
	assert.Equal(t, []registry.Alias{
		{Name: "US", Target: USCustomaryName},
		{Name: "Centimetre–gram–second", Target: CGSName},
	}, cfg.Aliases)

	r, err := registry.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, Common().Available(), r.Available())
}

func TestDefault_SI(t *testing.T) {
	r := Default()
	assert.Equal(t, "International System of Units", r.Default().Name())
	assert.Same(t, SI(), r.Default())

	metric, ok := r.ByName("Metric")
	require.True(t, ok)
	assert.Same(t, SI(), metric)
	assert.Len(t, metric.Units(), 7)
}
