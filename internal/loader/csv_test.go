package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPriceSeriesParsesRows(t *testing.T) {
	path := writeTemp(t, "prices.csv", "date,open,high,low,close,volume\n"+
		"2024-01-01,99,101,98,100,1000000\n"+
		"2024-01-02,100,103,99,102,1100000\n")

	ps, err := LoadPriceSeries("TEST", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.Len() != 2 {
		t.Fatalf("expected 2 bars, got %d", ps.Len())
	}
	closes := ps.Closes()
	if closes[0] != 100 || closes[1] != 102 {
		t.Fatalf("unexpected closes: %v", closes)
	}
}

func TestLoadPriceSeriesRejectsBadClose(t *testing.T) {
	path := writeTemp(t, "prices.csv", "date,open,high,low,close,volume\n2024-01-01,99,101,98,notanumber,1000000\n")
	if _, err := LoadPriceSeries("TEST", path); err == nil {
		t.Fatal("expected error for malformed close column")
	}
}

func TestLoadRatingBundlesParsesOptionalQuantScore(t *testing.T) {
	path := writeTemp(t, "ratings.csv", "ticker,quant_score,momentum,profitability,revisions,growth,valuation\n"+
		"AAA,4.5,A,A-,B+,B,C+\n"+
		"BBB,,C,C,C,C,C\n")

	bundles, err := LoadRatingBundles(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundles) != 2 {
		t.Fatalf("expected 2 bundles, got %d", len(bundles))
	}
	if bundles["AAA"].QuantScore == nil || *bundles["AAA"].QuantScore != 4.5 {
		t.Fatalf("expected AAA quant_score 4.5, got %+v", bundles["AAA"].QuantScore)
	}
	if bundles["BBB"].QuantScore != nil {
		t.Fatalf("expected BBB quant_score nil, got %v", *bundles["BBB"].QuantScore)
	}
}
