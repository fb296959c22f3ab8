package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWasteHistoryCheckShape(t *testing.T) {
	assert.NoError(t, WasteHistory{Years: []int{2020}, Amounts: []float64{100}}.CheckShape())
	assert.NoError(t, WasteHistory{}.CheckShape())
	assert.Error(t, WasteHistory{Years: []int{2020, 2021}, Amounts: []float64{100}}.CheckShape())
}

func TestWasteHistoryValidate(t *testing.T) {
	tests := []struct {
		name         string
		hist         WasteHistory
		wantErr      bool
		wantWarnings int
	}{
		{
			"valid ascending",
			WasteHistory{Years: []int{2020, 2021, 2022}, Amounts: []float64{100, 200, 300}},
			false, 0,
		},
		{
			"empty",
			WasteHistory{},
			true, 0,
		},
		{
			"length mismatch",
			WasteHistory{Years: []int{2020, 2021}, Amounts: []float64{100}},
			true, 0,
		},
		{
			"negative amount",
			WasteHistory{Years: []int{2020}, Amounts: []float64{-5}},
			true, 0,
		},
		{
			"descending years",
			WasteHistory{Years: []int{2021, 2020}, Amounts: []float64{100, 200}},
			true, 0,
		},
		{
			"duplicate years warn only",
			WasteHistory{Years: []int{2020, 2020, 2021}, Amounts: []float64{100, 50, 200}},
			false, 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings, err := tt.hist.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}

func TestSeriesRowForYear(t *testing.T) {
	s := &EmissionsSeries{Rows: []SeriesRow{
		{Year: 2030, CumulativeCH4: 1},
		{Year: 2020, CumulativeCH4: 2},
	}}

	row, err := s.RowForYear(2020)
	require.NoError(t, err)
	assert.Equal(t, 2.0, row.CumulativeCH4)

	_, err = s.RowForYear(1999)
	assert.ErrorContains(t, err, "not found")
}
