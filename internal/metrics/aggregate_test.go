package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunjanjp/gunj-reports/internal/schema"
)

func TestPercentStaysInBounds(t *testing.T) {
	for _, max := range []int{Level1Max, Level2Max, Level3Max, Level4Max, Level5Max} {
		for score := 0; score <= max; score++ {
			pct := Percent(score, max)
			assert.GreaterOrEqual(t, pct, 0, "score %d/%d", score, max)
			assert.LessOrEqual(t, pct, 100, "score %d/%d", score, max)
		}
	}
}

func TestPercentRoundsToNearest(t *testing.T) {
	assert.Equal(t, 29, Percent(10, 35))
	assert.Equal(t, 57, Percent(20, 35))
	assert.Equal(t, 75, Percent(15, 20))
	assert.Equal(t, 100, Percent(20, 20))
	assert.Equal(t, 0, Percent(0, 15))
}

func TestPercentClampsOutOfRangeScores(t *testing.T) {
	assert.Equal(t, 100, Percent(30, 20))
	assert.Equal(t, 0, Percent(-3, 20))
}

func TestBreakdownUsesFixedMaximums(t *testing.T) {
	rows := Breakdown(schema.ScoreSet{Level1: 20, Level2: 35, Level3: 25, Level4: 15, Level5: 20})
	require.Len(t, rows, 5)
	maxes := []int{20, 35, 25, 15, 20}
	for i, row := range rows {
		assert.Equal(t, i+1, row.Number)
		assert.Equal(t, maxes[i], row.Max)
		assert.Equal(t, 100, row.Percent)
	}
	assert.Equal(t, 115, TotalMax)
}

func TestOverallComplianceWeightsByControlCount(t *testing.T) {
	standards := []schema.ComplianceStandard{
		{Name: "CIS Kubernetes", Score: 85, ControlsPassed: 95, ControlsTotal: 112},
		{Name: "NIST CSF", Score: 78, ControlsPassed: 156, ControlsTotal: 200},
		{Name: "OWASP API", Score: 90, ControlsPassed: 9, ControlsTotal: 10},
	}
	got := OverallCompliance(standards)
	// (85*112 + 78*200 + 90*10) / 322 = 26020/322 = 80.8
	assert.InDelta(t, 80.8, got, 0.001)
}

func TestOverallComplianceEmptyIsZero(t *testing.T) {
	assert.Zero(t, OverallCompliance(nil))
}
