package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunjanjp/gunj-reports/internal/schema"
)

func maxedScores() schema.ScoreSet {
	return schema.ScoreSet{Level1: 20, Level2: 35, Level3: 25, Level4: 15, Level5: 20, Total: 115, Percentage: 100}
}

func TestAllMaxScoresYieldOnlyFallback(t *testing.T) {
	recs := For(maxedScores())
	require.Len(t, recs, 1)
	assert.Equal(t, Fallback, recs[0])
}

func TestZeroScoresGetContainerizationAdviceOnly(t *testing.T) {
	recs := For(schema.ScoreSet{})
	assert.Equal(t, []string{
		"Create a Dockerfile for containerizing the application",
		"Implement multi-stage builds to optimize container size",
		"Configure containers to run as non-root user",
		"Use minimal base images (distroless or alpine)",
	}, recs)
}

func TestLaterLevelsGateOnPrerequisites(t *testing.T) {
	// Level 2 advice requires level 1 at 15 or better.
	s := schema.ScoreSet{Level1: 14, Level2: 5}
	for _, rec := range For(s) {
		assert.NotContains(t, rec, "Custom Resource Definitions")
	}

	s.Level1 = 15
	recs := For(s)
	assert.Contains(t, recs, "Define Custom Resource Definitions (CRDs)")
	assert.Contains(t, recs, "Configure RBAC policies")
}

func TestMicroserviceAdviceNeedsOrchestration(t *testing.T) {
	s := schema.ScoreSet{Level1: 20, Level2: 24, Level3: 0}
	for _, rec := range For(s) {
		assert.NotContains(t, rec, "microservices")
	}

	s.Level2 = 25
	assert.Contains(t, For(s), "Decompose application into microservices")
}

func TestThresholdRulesWithinLevelOne(t *testing.T) {
	recs := For(schema.ScoreSet{Level1: 12})
	assert.NotContains(t, recs, "Create a Dockerfile for containerizing the application")
	assert.NotContains(t, recs, "Implement multi-stage builds to optimize container size")
	assert.Contains(t, recs, "Configure containers to run as non-root user")
	assert.Contains(t, recs, "Use minimal base images (distroless or alpine)")
}

func TestForIsDeterministic(t *testing.T) {
	s := schema.ScoreSet{Level1: 16, Level2: 18, Level3: 10, Level4: 3, Level5: 2}
	first := For(s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, For(s))
	}
}

func TestSecurityBaselineIsFixed(t *testing.T) {
	recs := SecurityBaseline()
	require.Len(t, recs, 5)
	assert.Equal(t, recs, SecurityBaseline())
}
