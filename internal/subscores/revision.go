package subscores

import (
	"time"

	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
	"github.com/ericfmiller/threshold-app-sub000/internal/ratings"
)

// RevisionDirection classifies the revision-momentum delta.
type RevisionDirection string

const (
	RevisionPositive RevisionDirection = "positive" // delta_4w > 0.05
	RevisionFlat     RevisionDirection = "flat"
	RevisionNegative RevisionDirection = "negative" // delta_4w < -0.05
)

// GradeSnapshot is one entry of ScoringContext's newest-first grade
// history: a point-in-time rating bundle for every covered ticker.
type GradeSnapshot struct {
	Timestamp time.Time
	Grades    map[string]ratings.Bundle
}

// RevisionMomentumResult is the revision-momentum readout.
type RevisionMomentumResult struct {
	Score       float64
	Direction   RevisionDirection
	Delta4w     float64
	Consistency float64
	Available   bool // false when fewer than 4 qualifying snapshots exist
}

// RevisionMomentum computes revision momentum for one ticker from its
// newest-first history of weekly grade snapshots. It requires at least 4
// snapshots spanning at least 21 calendar days; otherwise Available is
// false and the caller should treat revision momentum as absent (RM-gated
// FQ/DCS paths fall back to their non-RM scheme).
func RevisionMomentum(ticker string, history []GradeSnapshot) RevisionMomentumResult {
	samples := collectRevisionSamples(ticker, history)
	if len(samples) < 4 {
		return RevisionMomentumResult{}
	}
	span := samples[0].ts.Sub(samples[len(samples)-1].ts)
	if span < 21*24*time.Hour {
		return RevisionMomentumResult{}
	}

	now := samples[0].norm
	fourWeeksAgo := samples[3].norm
	delta4w := now - fourWeeksAgo

	transitions := 0
	monotoneUp := 0
	monotoneDown := 0
	for i := 0; i < len(samples)-1; i++ {
		d := samples[i].norm - samples[i+1].norm
		if d == 0 {
			continue
		}
		transitions++
		if d > 0 {
			monotoneUp++
		} else {
			monotoneDown++
		}
	}
	consistency := 0.0
	if transitions > 0 {
		consistency = float64(monotoneUp-monotoneDown) / float64(transitions)
	}

	score := 0.60*numerics.Clip((delta4w+0.3)/0.6, 0, 1) + 0.40*numerics.Clip((consistency+1)/2, 0, 1)

	direction := RevisionFlat
	switch {
	case delta4w > 0.05:
		direction = RevisionPositive
	case delta4w < -0.05:
		direction = RevisionNegative
	}

	return RevisionMomentumResult{
		Score:       score,
		Direction:   direction,
		Delta4w:     delta4w,
		Consistency: consistency,
		Available:   true,
	}
}

type revisionSample struct {
	ts   time.Time
	norm float64
}

// collectRevisionSamples extracts the per-snapshot normalized revisions
// grade for one ticker, preserving the newest-first order of history.
func collectRevisionSamples(ticker string, history []GradeSnapshot) []revisionSample {
	samples := make([]revisionSample, 0, len(history))
	for _, snap := range history {
		bundle, ok := snap.Grades[ticker]
		if !ok {
			continue
		}
		samples = append(samples, revisionSample{ts: snap.Timestamp, norm: bundle.Revisions.Normalized()})
	}
	return samples
}
