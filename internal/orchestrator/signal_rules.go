package orchestrator

import (
	"github.com/ericfmiller/threshold-app-sub000/internal/composite"
	"github.com/ericfmiller/threshold-app-sub000/internal/config"
	"github.com/ericfmiller/threshold-app-sub000/internal/signals"
	"github.com/ericfmiller/threshold-app-sub000/internal/subscores"
)

type buildSignalBoardInput struct {
	daysBelowSMA       int
	cfg                config.Config
	quantDeterioration *float64
	revMomentum        subscores.RevisionMomentumResult
	freshnessWarn      bool
	drawdown           *DrawdownDefense
	vixRegime          composite.VixRegime
	reversalConfirmed  bool
	bottomTurning      bool
	dcs                float64
	bbLowerBreach      bool
	rsi14              float64
	quantScore         float64
}

// buildSignalBoard evaluates the sell criteria, reversal triggers, and
// defensive-hold/amplifier rules (spec's L7 step 7) in a fixed order so
// SignalBoard's insertion order is deterministic run to run.
func buildSignalBoard(in buildSignalBoardInput) *signals.Board {
	board := signals.NewBoard()

	switch {
	case in.daysBelowSMA >= in.cfg.SellCriteria.SMABreachDays:
		board.Add(signals.SMABreachSell(in.daysBelowSMA, in.cfg.SellCriteria.SMABreachDays))
	case in.daysBelowSMA >= in.cfg.SellCriteria.SMABreachWarningDays:
		board.Add(signals.SMABreachWarning(in.daysBelowSMA, in.cfg.SellCriteria.SMABreachDays))
	}

	if in.quantDeterioration != nil {
		board.Add(signals.QuantDropSell(in.quantScore+*in.quantDeterioration, in.quantScore))
	}

	if in.revMomentum.Available {
		switch {
		case in.revMomentum.Direction == subscores.RevisionNegative && in.revMomentum.Delta4w < -0.20:
			board.Add(signals.EPSRevisionSell(string(in.revMomentum.Direction), in.revMomentum.Delta4w))
		case in.revMomentum.Direction == subscores.RevisionNegative:
			board.Add(signals.EPSRevisionWarning(string(in.revMomentum.Direction), in.revMomentum.Delta4w))
		}
	}

	if in.freshnessWarn {
		board.Add(signals.QuantFreshnessWarning(in.rsi14, in.quantScore))
	}

	if in.drawdown != nil {
		switch in.drawdown.Classification {
		case composite.DefenseHedge, composite.DefenseDefensive:
			if in.vixRegime == composite.VixFear || in.vixRegime == composite.VixPanic {
				board.Add(signals.DefensiveHold(string(in.drawdown.Classification), string(in.vixRegime)))
			}
		case composite.DefenseAmplifier:
			if (in.vixRegime == composite.VixFear || in.vixRegime == composite.VixPanic) && in.drawdown.DownsideCapture < 0 {
				board.Add(signals.AmplifierWarning(-in.drawdown.DownsideCapture, string(in.vixRegime)))
			}
		}
	}

	switch {
	case in.reversalConfirmed:
		board.Add(signals.ReversalConfirmed(in.dcs, in.bbLowerBreach))
	case in.bottomTurning:
		board.Add(signals.BottomTurning(in.rsi14))
	}

	return board
}
