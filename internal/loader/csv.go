// Package loader reads daily OHLCV price history and rating bundles from
// flat CSV files, the offline input format the threshold CLI scores against.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ericfmiller/threshold-app-sub000/internal/ratings"
	"github.com/ericfmiller/threshold-app-sub000/internal/series"
)

// LoadPriceSeries reads a per-ticker daily bar history from a CSV file with
// header "date,open,high,low,close,volume". Open/high/low/volume may be
// blank; close must always be present.
func LoadPriceSeries(symbol, path string) (series.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return series.PriceSeries{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return series.PriceSeries{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	if len(records) < 2 {
		return series.PriceSeries{}, fmt.Errorf("loader: %s has no data rows", path)
	}

	bars := make([]series.Bar, 0, len(records)-1)
	for i, row := range records[1:] {
		bar, err := parseBar(row)
		if err != nil {
			return series.PriceSeries{}, fmt.Errorf("loader: %s row %d: %w", path, i+2, err)
		}
		bars = append(bars, bar)
	}

	ps, err := series.NewPriceSeries(symbol, bars)
	if err != nil {
		return series.PriceSeries{}, fmt.Errorf("loader: %s: %w", path, err)
	}
	return ps, nil
}

func parseBar(row []string) (series.Bar, error) {
	if len(row) < 6 {
		return series.Bar{}, fmt.Errorf("expected 6 columns, got %d", len(row))
	}
	date, err := time.Parse("2006-01-02", row[0])
	if err != nil {
		return series.Bar{}, fmt.Errorf("bad date %q: %w", row[0], err)
	}
	open := parseOptionalFloat(row[1])
	high := parseOptionalFloat(row[2])
	low := parseOptionalFloat(row[3])
	close, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return series.Bar{}, fmt.Errorf("bad close %q: %w", row[4], err)
	}
	volume := parseOptionalFloat(row[5])
	return series.Bar{Date: date, Open: open, High: high, Low: low, Close: close, Volume: volume}, nil
}

func parseOptionalFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// LoadRatingBundles reads one ratings.Bundle per row from a CSV file with
// header "ticker,quant_score,momentum,profitability,revisions,growth,valuation".
// quant_score is blank when the data provider has no opinion for the ticker.
func LoadRatingBundles(path string) (map[string]ratings.Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	if len(records) < 1 {
		return map[string]ratings.Bundle{}, nil
	}

	out := make(map[string]ratings.Bundle, len(records)-1)
	for i, row := range records[1:] {
		if len(row) < 7 {
			return nil, fmt.Errorf("loader: %s row %d: expected 7 columns, got %d", path, i+2, len(row))
		}
		bundle := ratings.Bundle{
			Momentum:      ratings.Grade(row[2]),
			Profitability: ratings.Grade(row[3]),
			Revisions:     ratings.Grade(row[4]),
			Growth:        ratings.Grade(row[5]),
			Valuation:     ratings.Grade(row[6]),
		}
		if row[1] != "" {
			v, err := strconv.ParseFloat(row[1], 64)
			if err != nil {
				return nil, fmt.Errorf("loader: %s row %d: bad quant_score %q: %w", path, i+2, row[1], err)
			}
			bundle.QuantScore = &v
		}
		out[row[0]] = bundle
	}
	return out, nil
}
