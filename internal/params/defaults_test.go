package params

import (
	"sort"
	"testing"

	"landgem/internal/emissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownPreset(t *testing.T) {
	p, err := Lookup("caa_conventional")
	require.NoError(t, err)
	assert.Equal(t, 0.05, p.K)
	assert.Equal(t, 170.0, p.L0)
	assert.Equal(t, 0.50, p.MethaneContent)
	assert.Equal(t, 4000.0, p.NMOCConcentration)

	p, err = Lookup("inventory_wet")
	require.NoError(t, err)
	assert.Equal(t, 0.7, p.K)
	assert.Equal(t, 96.0, p.L0)
	assert.Equal(t, 600.0, p.NMOCConcentration)
}

func TestLookupUnknownPreset(t *testing.T) {
	_, err := Lookup("lunar_regolith")
	assert.ErrorContains(t, err, "not found")
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	assert.Len(t, names, 9)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "caa_arid")
	assert.Contains(t, names, "inventory_wet_codisposal")
}

func TestEveryPresetBuildsAValidModel(t *testing.T) {
	for _, p := range All() {
		m, err := emissions.New(p.Decay(), p.Composition())
		require.NoError(t, err, p.Name)
		assert.Empty(t, m.Warnings, p.Name)
	}
}
