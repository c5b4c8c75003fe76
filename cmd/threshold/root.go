package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute builds and runs the threshold root command.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "threshold",
		Short: "Threshold dip-buy scoring engine",
		Long: `Threshold scores tickers against the DCS composite: a blend of
momentum, fundamental, technical-oversold, market-regime and valuation
sub-scores, gated by deployment and risk overlays.`,
	}
	root.AddCommand(scoreCmd())
	log.Info().Msg("threshold starting")
	return root.ExecuteContext(ctx)
}
