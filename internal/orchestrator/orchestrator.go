package orchestrator

import (
	"github.com/ericfmiller/threshold-app-sub000/internal/composite"
	"github.com/ericfmiller/threshold-app-sub000/internal/config"
	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
	"github.com/ericfmiller/threshold-app-sub000/internal/ratings"
	"github.com/ericfmiller/threshold-app-sub000/internal/runctx"
	"github.com/ericfmiller/threshold-app-sub000/internal/series"
	"github.com/ericfmiller/threshold-app-sub000/internal/subscores"
)

// minCloseBars is the minimum history length score_ticker requires; any
// shorter series is insufficient-data and yields nil, never an error.
const minCloseBars = 50

// ScoreTicker sequences L0-L4 for a single ticker and assembles the
// immutable Result, per spec's eight ordered steps. Returns nil
// when the price history is too short to score at all.
func ScoreTicker(ticker string, rb ratings.Bundle, prices series.PriceSeries, ctx runctx.ScoringContext, cfg config.Config) *Result {
	closes := prices.Closes()
	if len(closes) < minCloseBars {
		ctx.Logger.Debug().Str("ticker", ticker).Int("bars", len(closes)).Int("required", minCloseBars).Msg("insufficient price history, skipping")
		return nil
	}

	// Step 2: OBV divergence, consecutive-days-below-SMA, quant
	// deterioration, revision momentum.
	obv := numerics.OBVDivergence(closes, prices.Volumes(), 20)
	daysBelowSMA := numerics.ConsecutiveDaysBelowSMA(closes, 200, -cfg.SellCriteria.SMABreachThresholdPct)
	quantDeterioration := quantDrop(ticker, rb, ctx, cfg)
	revMomentum := subscores.RevisionMomentum(ticker, ctx.GradeHistory)

	rsi := numerics.RSI(closes, 14)
	macd := numerics.MACD(closes, 12, 26, 9)
	bb := numerics.BollingerLowerBreach(closes, 20, 2)
	sma50 := numerics.SMALast(closes, 50)
	sma200 := numerics.SMALast(closes, 200)
	lastClose := closes[len(closes)-1]
	ret8w, _ := numerics.PriceAcceleration(closes)
	pctFrom200D := 0.0
	if sma200 > 0 {
		pctFrom200D = (lastClose - sma200) / sma200
	}

	annualizedVol := numerics.YangZhangVolatility(prices.Bars(), 60)

	raw12to1 := 0.0
	if len(closes) > 252 {
		raw12to1 = closes[len(closes)-21]/closes[len(closes)-252] - 1
	}

	// Step 3: MQ, FQ, TO sub-scores; MR from ctx; VC computed.
	momentumResult := subscores.MomentumQuality(momentumInputs(rb, sma50, sma200, lastClose, raw12to1, annualizedVol, closes, ctx), cfg.MomentumWeights)
	fq := subscores.FundamentalQuality(fundamentalInputs(ticker, rb, ctx, revMomentum), cfg.FundamentalWeights)
	to := subscores.TechnicalOversold(subscores.TOInputs{
		RSI14:          rsi.Last,
		PctFrom200D:    pctFrom200D,
		BBPctB:         bb.PctB,
		MACDCrossover:  macd.Crossover,
		MACDBelowZero:  macd.BelowZero,
		MACDHistRising: macd.HistRising,
	}, cfg.OversoldWeights)
	mr := ctx.MarketRegimeScore
	vc := subscores.ValuationContext(rb.Valuation, hasYF(ctx, ticker), yfField(ctx, ticker, func(f runctx.Fundamentals) *float64 { return f.EVToEBITDAPctl }), cfg.ValuationWeights)

	mq := momentumResult.Score

	// Step 4: optional advanced overlays, off by default and never
	// DCS-changing when disabled.
	if ctx.Advanced.TrendFollowingEnabled {
		w := cfg.Advanced.MQBlendWeight
		mq = numerics.Clip((1-w)*mq+w*ctx.Advanced.TrendFollowingScore, 0, 1)
	}
	if ctx.Advanced.SentimentOverlayEnabled && ctx.Advanced.SentimentOverheated {
		mr = numerics.Clip(mr*(1-ctx.Advanced.SentimentMRReduction), 0, 1)
	}

	scores := subscores.Scores{MQ: mq, FQ: fq, TO: to, MR: mr, VC: vc}

	// Step 5: compose raw DCS, OBV boost, RSI-divergence boost, reversal
	// signals.
	dcs := composite.ComposeDCS(scores, cfg.DCSWeights)
	dcs = composite.OBVBoost(dcs, obv.Divergence == numerics.DivergenceBullish, obv.Strength, cfg.Modifiers)

	rsiBullDiv := rsiBullishDivergence(closes, rsi.Series, 20)
	dcs = composite.RSIDivergenceBoost(dcs, rsiBullDiv, cfg.Modifiers)

	// Step 6: drawdown defense lookup, falling-knife cap, D-5 modifier.
	var fkResult *FallingKnifeCap
	var ddResult *DrawdownDefense
	if dd, ok := ctx.DrawdownClassifications[ticker]; ok {
		fk := composite.FallingKnifeCap(dcs, momentumResult.TrendScore, dd.Class, cfg.Modifiers)
		dcs = fk.DCS
		if fk.CapApplied {
			fkResult = &FallingKnifeCap{CapApplied: true, OriginalDCS: fk.OriginalDCS, CapValue: fk.CapValue}
			ctx.Logger.Warn().Str("ticker", ticker).Float64("original_dcs", fk.OriginalDCS).Float64("cap", fk.CapValue).Msg("falling-knife cap engaged")
		}

		d5 := composite.DrawdownModifier(dcs, ctx.VixRegime, dd.Class, cfg.Modifiers)
		dcs = d5.DCS
		ddResult = &DrawdownDefense{Classification: dd.Class, DownsideCapture: dd.DownsideCapture, ModifierApplied: d5.ModifierApplied}
	}

	// reversal_confirmed and bottom_turning key off the fully-composed dcs
	// (after OBV/RSI boosts, falling-knife cap, and D-5), per the literal
	// triggers in the signal table.
	reversalConfirmed := dcs >= 65 && bb.LowerBreach
	bottomTurning := !reversalConfirmed && macd.HistRising && macd.BelowZero && rsi.Last < 30 && rb.QuantScoreOrZero() >= 3

	quantScore := rb.QuantScoreOrZero()
	freshnessWarn := rsi.Last < 30 && quantScore >= 4
	if freshnessWarn {
		ctx.Logger.Debug().Str("ticker", ticker).Float64("rsi", rsi.Last).Float64("quant_score", quantScore).Msg("quant freshness check triggered")
	}

	// Step 7: SignalBoard.
	board := buildSignalBoard(buildSignalBoardInput{
		daysBelowSMA:       daysBelowSMA,
		cfg:                cfg,
		quantDeterioration: quantDeterioration,
		revMomentum:        revMomentum,
		freshnessWarn:      freshnessWarn,
		drawdown:           ddResult,
		vixRegime:          ctx.VixRegime,
		reversalConfirmed:  reversalConfirmed,
		bottomTurning:      bottomTurning,
		dcs:                dcs,
		bbLowerBreach:      bb.LowerBreach,
		rsi14:              rsi.Last,
		quantScore:         quantScore,
	})

	// Step 8: classify and assemble.
	result := &Result{
		Ticker:    ticker,
		DCS:       dcs,
		DCSSignal: composite.ClassifyDCS(dcs),
		SubScores: scores,
		Technicals: Technicals{
			RSI14:              rsi.Last,
			PctFrom200D:        pctFrom200D,
			Ret8w:               ret8w,
			MACDLine:           last(macd.Line),
			MACDSignal:         last(macd.Signal),
			MACDHist:           last(macd.Histogram),
			MACDCrossover:      macd.Crossover,
			OBVTrend:           obv.Trend,
			OBVDivergence:      obv.Divergence,
			OBVStrength:        obv.Strength,
			BBPctB:             bb.PctB,
			BBLowerBreach:      bb.LowerBreach,
			RSIBullDiv:         rsiBullDiv,
			BottomTurning:      bottomTurning,
			QuantFreshnessWarn: freshnessWarn,
			ReversalConfirmed:  reversalConfirmed,
		},
		TrendScore:        momentumResult.TrendScore,
		DaysBelowSMA3Pct:  daysBelowSMA,
		SignalBoard:       board,
		FallingKnife:      fkResult,
		DrawdownDefenseRes: ddResult,
	}
	if quantDeterioration != nil {
		result.QuantDeterioration = quantDeterioration
	}
	if revMomentum.Available {
		rm := revMomentum
		result.RevisionMomentum = &rm
	}
	if f, ok := ctx.YFFundamentals[ticker]; ok {
		result.YFFundamentals = &f
	}
	return result
}

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}

func hasYF(ctx runctx.ScoringContext, ticker string) bool {
	_, ok := ctx.YFFundamentals[ticker]
	return ok
}

func yfField(ctx runctx.ScoringContext, ticker string, get func(runctx.Fundamentals) *float64) float64 {
	f, ok := ctx.YFFundamentals[ticker]
	if !ok {
		return 0
	}
	p := get(f)
	if p == nil {
		return 0
	}
	return *p
}

func momentumInputs(rb ratings.Bundle, sma50, sma200, close, raw12to1, annualizedVol float64, closes []float64, ctx runctx.ScoringContext) subscores.MomentumInputs {
	in := subscores.MomentumInputs{
		SMA50: sma50, SMA200: sma200, Close: close,
		Raw12to1:      raw12to1,
		AnnualizedVol: annualizedVol,
		MomentumGrade: rb.Momentum,
	}
	if ctx.SPYClose != nil {
		spyCloses := ctx.SPYClose.Closes()
		if len(spyCloses) > 252 && len(closes) > 252 {
			in.BenchmarkAvailable = true
			in.TickerReturn12to1 = closes[len(closes)-21]/closes[len(closes)-252] - 1
			in.BenchmarkReturn12to1 = spyCloses[len(spyCloses)-21]/spyCloses[len(spyCloses)-252] - 1
		}
	}
	return in
}

func fundamentalInputs(ticker string, rb ratings.Bundle, ctx runctx.ScoringContext, rm subscores.RevisionMomentumResult) subscores.FQInputs {
	in := subscores.FQInputs{
		QuantNorm:          numerics.Clip(rb.QuantScoreOrZero()/5.0, 0, 1),
		ProfitabilityGrade: rb.Profitability,
		RevisionsGrade:     rb.Revisions,
		GrowthGrade:        rb.Growth,
		RMAvailable:        rm.Available,
		RevisionMomentum:   rm.Score,
	}
	if f, ok := ctx.YFFundamentals[ticker]; ok {
		in.YFAvailable = true
		if f.GrossProfitabilityPctl != nil {
			in.GrossProfitabilityPctl = *f.GrossProfitabilityPctl
		}
		if f.FCFYieldPctl != nil {
			in.FCFYieldPctl = *f.FCFYieldPctl
		}
	}
	return in
}

func quantDrop(ticker string, rb ratings.Bundle, ctx runctx.ScoringContext, cfg config.Config) *float64 {
	prev, ok := ctx.PrevScores[ticker]
	if !ok || prev.QuantScore == nil || rb.QuantScore == nil {
		return nil
	}
	delta := *prev.QuantScore - *rb.QuantScore
	if delta < cfg.SellCriteria.QuantDropThreshold {
		return nil
	}
	d := delta
	return &d
}

// rsiBullishDivergence reports a bullish RSI divergence: price makes a
// lower low over the lookback window while RSI makes a higher low.
func rsiBullishDivergence(closes, rsiSeries []float64, lookback int) bool {
	n := len(closes)
	if lookback <= 0 || n < lookback+1 || len(rsiSeries) != n {
		return false
	}
	priceWindow := closes[n-lookback:]
	rsiWindow := rsiSeries[n-lookback:]

	half := lookback / 2
	priceFirstLow := minOf(priceWindow[:half])
	priceSecondLow := minOf(priceWindow[half:])
	rsiFirstLow := minOf(rsiWindow[:half])
	rsiSecondLow := minOf(rsiWindow[half:])

	return priceSecondLow < priceFirstLow && rsiSecondLow > rsiFirstLow
}

func minOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
