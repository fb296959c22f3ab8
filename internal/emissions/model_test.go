package emissions

import (
	"testing"

	"landgem/internal/decay"
	"landgem/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHistory = model.WasteHistory{
	Years:   []int{2020, 2021, 2022},
	Amounts: []float64{5000, 5200, 5500},
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(
		model.DecayParams{K: 0.05, L0: 170},
		model.Composition{MethaneContent: 0.5, NMOCConcentration: model.NMOCPtr(4000)},
	)
	require.NoError(t, err)
	return m
}

func TestNewRejectsBadParameters(t *testing.T) {
	comp := model.Composition{MethaneContent: 0.5}

	_, err := New(model.DecayParams{K: 0, L0: 170}, comp)
	assert.Error(t, err)
	_, err = New(model.DecayParams{K: 0.05, L0: 0}, comp)
	assert.Error(t, err)
	_, err = New(model.DecayParams{K: 0.05, L0: 170}, model.Composition{MethaneContent: 1.0})
	assert.Error(t, err)
}

func TestNewCollectsWarnings(t *testing.T) {
	m, err := New(model.DecayParams{K: 0.05, L0: 170}, model.Composition{MethaneContent: 0.35})
	require.NoError(t, err)
	require.Len(t, m.Warnings, 1)
	assert.Contains(t, m.Warnings[0], "typical range")
}

func TestCalculateUnitIdentities(t *testing.T) {
	m := newTestModel(t)

	res, err := m.Calculate(testHistory, 2030, 0.75, false)
	require.NoError(t, err)

	mc := m.Composition.MethaneContent
	assert.Greater(t, res.CH4, 0.0)
	assert.InEpsilon(t, res.CH4/mc, res.TotalGas, 1e-12)
	assert.InDelta(t, res.TotalGas-res.CH4, res.CO2, 1e-9)
	assert.InEpsilon(t, res.CH4*0.75, res.CH4Collected, 1e-12)
	assert.InEpsilon(t, res.TotalGas*0.75, res.GasCollected, 1e-12)
	assert.Nil(t, res.NMOC)

	// The methane rate is the raw decay-engine output.
	assert.Equal(t, decay.GenerationRate(testHistory, 2030, m.Params), res.CH4)
}

func TestCalculateNMOC(t *testing.T) {
	m := newTestModel(t)

	res, err := m.Calculate(testHistory, 2030, 0, true)
	require.NoError(t, err)
	require.NotNil(t, res.NMOC)

	want := (4000 * (86.18 / 16.04) * res.TotalGas) / 3.6e9
	assert.InEpsilon(t, want, *res.NMOC, 1e-12)
}

func TestCalculateNMOCOmitted(t *testing.T) {
	// Not requested.
	m := newTestModel(t)
	res, err := m.Calculate(testHistory, 2030, 0, false)
	require.NoError(t, err)
	assert.Nil(t, res.NMOC)

	// Requested but not configured.
	m2, err := New(model.DecayParams{K: 0.05, L0: 170}, model.Composition{MethaneContent: 0.5})
	require.NoError(t, err)
	res, err = m2.Calculate(testHistory, 2030, 0, true)
	require.NoError(t, err)
	assert.Nil(t, res.NMOC)

	// A configured zero behaves as unconfigured.
	m3, err := New(model.DecayParams{K: 0.05, L0: 170}, model.Composition{MethaneContent: 0.5, NMOCConcentration: model.NMOCPtr(0)})
	require.NoError(t, err)
	res, err = m3.Calculate(testHistory, 2030, 0, true)
	require.NoError(t, err)
	assert.Nil(t, res.NMOC)
}

func TestCalculateInputShapeErrors(t *testing.T) {
	m := newTestModel(t)

	_, err := m.Calculate(model.WasteHistory{Years: []int{2020, 2021}, Amounts: []float64{100}}, 2030, 0, false)
	assert.ErrorContains(t, err, "same length")

	_, err = m.Calculate(testHistory, 2030, -0.1, false)
	assert.ErrorContains(t, err, "collection efficiency")

	_, err = m.Calculate(testHistory, 2030, 1.1, false)
	assert.ErrorContains(t, err, "collection efficiency")
}

func TestWasteInPlaceDelegates(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, decay.WasteInPlace(testHistory, 2021, 0.25), m.WasteInPlace(testHistory, 2021, 0.25))
	assert.InDelta(t, 10200*0.75, m.WasteInPlace(testHistory, 2021, 0.25), 1e-9)
}
