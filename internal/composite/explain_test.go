package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfmiller/threshold-app-sub000/internal/subscores"
)

func TestExplainContributionsSumToDCS(t *testing.T) {
	s := subscores.Scores{MQ: 0.8, FQ: 0.6, TO: 0.5, MR: 0.7, VC: 0.4}
	w := DefaultWeights()
	dcs := ComposeDCS(s, w)

	exp := Explain("TEST", s, w, dcs)
	require.Len(t, exp.Contributions, 5)

	var sum float64
	for _, c := range exp.Contributions {
		sum += c.Points
	}
	assert.InDelta(t, dcs, sum, 1e-9)
	assert.Equal(t, ClassifyDCS(dcs), exp.Signal)
	assert.NotEmpty(t, exp.Reasons)
}

func TestWeightSummaryFormat(t *testing.T) {
	assert.Equal(t, "MQ=30 FQ=25 TO=20 MR=15 VC=10", DefaultWeights().WeightSummary())
}
