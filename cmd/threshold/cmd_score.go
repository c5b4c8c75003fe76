package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ericfmiller/threshold-app-sub000/internal/composite"
	"github.com/ericfmiller/threshold-app-sub000/internal/config"
	"github.com/ericfmiller/threshold-app-sub000/internal/loader"
	"github.com/ericfmiller/threshold-app-sub000/internal/orchestrator"
	"github.com/ericfmiller/threshold-app-sub000/internal/ratings"
	"github.com/ericfmiller/threshold-app-sub000/internal/runctx"
)

var (
	scorePricesDir      string
	scoreRatingsFile    string
	scoreConfigFile     string
	scoreMarketRegime   float64
	scoreVixRegime      string
	scoreOutputFormat   string
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score every ticker found in --prices against the DCS composite",
		Long: `score reads one CSV of daily OHLCV bars per ticker from --prices and an
optional ratings CSV from --ratings, then prints each ticker's DCS, signal
and net action.

Examples:
  threshold score --prices testdata/prices --ratings testdata/ratings.csv
  threshold score --prices testdata/prices --format json`,
		RunE: runScore,
	}

	cmd.Flags().StringVar(&scorePricesDir, "prices", "testdata/prices", "Directory of <ticker>.csv daily bar files")
	cmd.Flags().StringVar(&scoreRatingsFile, "ratings", "", "CSV of rating bundles (ticker,quant_score,momentum,profitability,revisions,growth,valuation)")
	cmd.Flags().StringVar(&scoreConfigFile, "config", "", "YAML config overriding scoring defaults")
	cmd.Flags().Float64Var(&scoreMarketRegime, "market-regime-score", 0.5, "Market regime score in [0,1] fed into MR")
	cmd.Flags().StringVar(&scoreVixRegime, "vix-regime", "NORMAL", "VIX regime: COMPLACENT|NORMAL|FEAR|PANIC")
	cmd.Flags().StringVar(&scoreOutputFormat, "format", "table", "Output format: table, json")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if scoreConfigFile != "" {
		data, err := os.ReadFile(scoreConfigFile)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		cfg, err = config.Load(data)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	bundles := map[string]ratings.Bundle{}
	if scoreRatingsFile != "" {
		var err error
		bundles, err = loader.LoadRatingBundles(scoreRatingsFile)
		if err != nil {
			return fmt.Errorf("load ratings: %w", err)
		}
	}

	entries, err := os.ReadDir(scorePricesDir)
	if err != nil {
		return fmt.Errorf("read prices dir: %w", err)
	}

	ctx := runctx.New(scoreMarketRegime, composite.VixRegime(strings.ToUpper(scoreVixRegime)), uuid.New())
	ctx.Logger = log.Logger

	var results []*orchestrator.Result
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		ticker := strings.TrimSuffix(entry.Name(), ".csv")
		path := filepath.Join(scorePricesDir, entry.Name())

		ps, err := loader.LoadPriceSeries(ticker, path)
		if err != nil {
			log.Warn().Err(err).Str("ticker", ticker).Msg("skipping ticker: bad price file")
			continue
		}

		result := orchestrator.ScoreTicker(ticker, bundles[ticker], ps, ctx, cfg)
		if result == nil {
			log.Warn().Str("ticker", ticker).Msg("skipping ticker: insufficient price history")
			continue
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].DCS > results[j].DCS })

	switch strings.ToLower(scoreOutputFormat) {
	case "json":
		return outputJSON(results)
	default:
		return outputTable(results)
	}
}

func outputJSON(results []*orchestrator.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func outputTable(results []*orchestrator.Result) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "TICKER\tDCS\tSIGNAL\tNET ACTION\tFLAGS")
	fmt.Fprintln(w, "------\t---\t------\t----------\t-----")
	for _, r := range results {
		flags := strings.Join(r.SellFlags(), "; ")
		fmt.Fprintf(w, "%s\t%.1f\t%s\t%s\t%s\n", r.Ticker, r.DCS, r.DCSSignal, r.SignalBoard.NetAction(), flags)
	}
	return nil
}
