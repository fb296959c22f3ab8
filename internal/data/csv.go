// Package data loads waste-acceptance records from disk. Parsing is kept
// separate from the core model: importers hand over plain histories and the
// model revalidates the structural invariants it depends on.
package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"landgem/internal/model"
)

// LoadWasteCSV reads a waste-acceptance history from a CSV file with a
// header row. yearColumn and amountColumn name the columns to read; pass ""
// to use the defaults ("year", "waste_mg"). Lines starting with '#' are
// treated as comments.
func LoadWasteCSV(path, yearColumn, amountColumn string) (model.WasteHistory, error) {
	if yearColumn == "" {
		yearColumn = "year"
	}
	if amountColumn == "" {
		amountColumn = "waste_mg"
	}

	header, records, err := readCSV(path)
	if err != nil {
		return model.WasteHistory{}, err
	}

	yearIdx, err := columnIndex(header, yearColumn, path)
	if err != nil {
		return model.WasteHistory{}, err
	}
	amountIdx, err := columnIndex(header, amountColumn, path)
	if err != nil {
		return model.WasteHistory{}, err
	}

	hist := model.WasteHistory{
		Years:   make([]int, 0, len(records)),
		Amounts: make([]float64, 0, len(records)),
	}
	for i, rec := range records {
		year, err := strconv.Atoi(rec[yearIdx])
		if err != nil {
			return model.WasteHistory{}, fmt.Errorf("%s row %d: bad year %q: %w", path, i+2, rec[yearIdx], err)
		}
		amount, err := strconv.ParseFloat(rec[amountIdx], 64)
		if err != nil {
			return model.WasteHistory{}, fmt.Errorf("%s row %d: bad amount %q: %w", path, i+2, rec[amountIdx], err)
		}
		hist.Years = append(hist.Years, year)
		hist.Amounts = append(hist.Amounts, amount)
	}

	return hist, nil
}

// LoadMultiStreamCSV reads per-stream waste histories from one CSV file.
// The file carries a shared "year" column; streamColumns maps stream names
// to the column holding that stream's accepted mass.
func LoadMultiStreamCSV(path string, streamColumns map[string]string) (map[string]model.WasteHistory, error) {
	header, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	yearIdx, err := columnIndex(header, "year", path)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, len(records))
	for i, rec := range records {
		year, err := strconv.Atoi(rec[yearIdx])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad year %q: %w", path, i+2, rec[yearIdx], err)
		}
		years = append(years, year)
	}

	out := make(map[string]model.WasteHistory, len(streamColumns))
	for stream, column := range streamColumns {
		idx, err := columnIndex(header, column, path)
		if err != nil {
			return nil, err
		}
		amounts := make([]float64, 0, len(records))
		for i, rec := range records {
			amount, err := strconv.ParseFloat(rec[idx], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad amount %q in column %q: %w", path, i+2, rec[idx], column, err)
			}
			amounts = append(amounts, amount)
		}
		out[stream] = model.WasteHistory{Years: years, Amounts: amounts}
	}

	return out, nil
}

func readCSV(path string) (header []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s: no header row", path)
	}
	return all[0], all[1:], nil
}

func columnIndex(header []string, name, path string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in %s", name, path)
}
