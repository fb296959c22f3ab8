package emissions

import (
	"testing"

	"landgem/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiHistories() map[string]model.WasteHistory {
	return map[string]model.WasteHistory{
		"msw":     {Years: []int{2020, 2021}, Amounts: []float64{5000, 5200}},
		"organic": {Years: []int{2020, 2021}, Amounts: []float64{1000, 1100}},
	}
}

func newTestMultiStream(t *testing.T) *MultiStream {
	t.Helper()
	ms := NewMultiStream(0.05, model.Composition{MethaneContent: 0.5, NMOCConcentration: model.NMOCPtr(600)})
	require.NoError(t, ms.AddStream("msw", 170))
	require.NoError(t, ms.AddStream("organic", 200))
	return ms
}

func TestMultiStreamCombinedEqualsSumOfStreams(t *testing.T) {
	ms := newTestMultiStream(t)

	res, err := ms.Calculate(multiHistories(), 2030, 0.6, true)
	require.NoError(t, err)
	require.Len(t, res.Streams, 2)

	var ch4, gas, co2, ch4Coll, gasColl, nmoc float64
	for _, sr := range res.Streams {
		ch4 += sr.CH4
		gas += sr.TotalGas
		co2 += sr.CO2
		ch4Coll += sr.CH4Collected
		gasColl += sr.GasCollected
		require.NotNil(t, sr.NMOC)
		nmoc += *sr.NMOC
	}

	assert.InEpsilon(t, ch4, res.Combined.CH4, 1e-12)
	assert.InEpsilon(t, gas, res.Combined.TotalGas, 1e-12)
	assert.InEpsilon(t, co2, res.Combined.CO2, 1e-12)
	assert.InEpsilon(t, ch4Coll, res.Combined.CH4Collected, 1e-12)
	assert.InEpsilon(t, gasColl, res.Combined.GasCollected, 1e-12)
	require.NotNil(t, res.Combined.NMOC)
	assert.InEpsilon(t, nmoc, *res.Combined.NMOC, 1e-12)
}

func TestMultiStreamMatchesIndependentModels(t *testing.T) {
	ms := newTestMultiStream(t)
	histories := multiHistories()

	res, err := ms.Calculate(histories, 2030, 0, false)
	require.NoError(t, err)

	for name, l0 := range map[string]float64{"msw": 170, "organic": 200} {
		single, err := New(model.DecayParams{K: 0.05, L0: l0}, ms.Composition)
		require.NoError(t, err)
		want, err := single.Calculate(histories[name], 2030, 0, false)
		require.NoError(t, err)
		assert.Equal(t, want.CH4, res.Streams[name].CH4, name)
	}
}

func TestMultiStreamUnknownStream(t *testing.T) {
	ms := newTestMultiStream(t)

	_, err := ms.Calculate(map[string]model.WasteHistory{
		"construction": {Years: []int{2020}, Amounts: []float64{100}},
	}, 2030, 0, false)
	assert.ErrorContains(t, err, `"construction" not defined`)
}

func TestAddStreamLastWriteWins(t *testing.T) {
	ms := NewMultiStream(0.05, model.Composition{MethaneContent: 0.5})
	require.NoError(t, ms.AddStream("msw", 100))
	require.NoError(t, ms.AddStream("msw", 170))

	hist := map[string]model.WasteHistory{"msw": {Years: []int{2020}, Amounts: []float64{5000}}}
	res, err := ms.Calculate(hist, 2020, 0, false)
	require.NoError(t, err)

	single, err := New(model.DecayParams{K: 0.05, L0: 170}, ms.Composition)
	require.NoError(t, err)
	want, err := single.Calculate(hist["msw"], 2020, 0, false)
	require.NoError(t, err)
	assert.Equal(t, want.CH4, res.Combined.CH4)
}

func TestAddStreamValidatesParameters(t *testing.T) {
	ms := NewMultiStream(0.05, model.Composition{MethaneContent: 0.5})
	assert.Error(t, ms.AddStream("bad", 0))
	assert.Error(t, ms.AddStream("bad", 600))

	msBadK := NewMultiStream(1.5, model.Composition{MethaneContent: 0.5})
	assert.Error(t, msBadK.AddStream("msw", 170))
}

func TestMultiStreamTimeSeries(t *testing.T) {
	ms := newTestMultiStream(t)
	histories := multiHistories()
	years := []int{2025, 2026, 2027}

	series, err := ms.TimeSeries(histories, years, 0)
	require.NoError(t, err)
	require.Len(t, series.Rows, 3)
	assert.Equal(t, []string{"msw", "organic"}, series.StreamNames)

	cum := 0.0
	for i, row := range series.Rows {
		assert.Equal(t, years[i], row.Year)
		require.Len(t, row.StreamCH4, 2)

		streamSum := row.StreamCH4["msw"] + row.StreamCH4["organic"]
		assert.InEpsilon(t, streamSum, row.TotalCH4, 1e-12)
		assert.InDelta(t, row.TotalGas-row.TotalCH4, row.TotalCO2, 1e-9)

		cum += row.TotalCH4
		assert.InEpsilon(t, cum, row.CumulativeCH4, 1e-12)
	}
}

func TestStreamNamesSorted(t *testing.T) {
	ms := NewMultiStream(0.05, model.Composition{MethaneContent: 0.5})
	require.NoError(t, ms.AddStream("organic", 200))
	require.NoError(t, ms.AddStream("construction", 90))
	require.NoError(t, ms.AddStream("msw", 170))
	assert.Equal(t, []string{"construction", "msw", "organic"}, ms.StreamNames())
}
