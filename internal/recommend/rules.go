// Package recommend turns aggregated maturity scores into an ordered list of
// improvement suggestions. The rule table models a staged adoption path:
// rules for a later level only fire once the previous level has met a
// prerequisite threshold.
package recommend

import (
	"github.com/gunjanjp/gunj-reports/internal/metrics"
	"github.com/gunjanjp/gunj-reports/internal/schema"
)

// Fallback is emitted when every level is at its maximum.
const Fallback = "Excellent! Continue maintaining high standards and consider contributing to CNCF"

// rule appends its message when the inspected score is below the threshold.
// A zero threshold means the message always fires within its group.
type rule struct {
	below   int
	message string
}

// group gates a set of rules on the level being incomplete and, for levels
// past the first, on the previous level meeting its prerequisite.
type group struct {
	score  func(schema.ScoreSet) int
	max    int
	prereq func(schema.ScoreSet) bool
	rules  []rule
}

var groups = []group{
	{
		score: func(s schema.ScoreSet) int { return s.Level1 },
		max:   metrics.Level1Max,
		rules: []rule{
			{below: 5, message: "Create a Dockerfile for containerizing the application"},
			{below: 10, message: "Implement multi-stage builds to optimize container size"},
			{below: 15, message: "Configure containers to run as non-root user"},
			{message: "Use minimal base images (distroless or alpine)"},
		},
	},
	{
		score:  func(s schema.ScoreSet) int { return s.Level2 },
		max:    metrics.Level2Max,
		prereq: func(s schema.ScoreSet) bool { return s.Level1 >= 15 },
		rules: []rule{
			{below: 10, message: "Define Custom Resource Definitions (CRDs)"},
			{below: 20, message: "Implement Kubernetes controller pattern"},
			{message: "Create Helm charts for deployment"},
			{message: "Configure RBAC policies"},
		},
	},
	{
		score:  func(s schema.ScoreSet) int { return s.Level3 },
		max:    metrics.Level3Max,
		prereq: func(s schema.ScoreSet) bool { return s.Level2 >= 25 },
		rules: []rule{
			{message: "Decompose application into microservices"},
			{message: "Implement service mesh for inter-service communication"},
			{message: "Add distributed tracing with OpenTelemetry"},
		},
	},
	{
		score:  func(s schema.ScoreSet) int { return s.Level4 },
		max:    metrics.Level4Max,
		prereq: func(s schema.ScoreSet) bool { return s.Level3 >= 15 },
		rules: []rule{
			{message: "Integrate with cloud provider services (AWS/Azure/GCP)"},
			{message: "Implement multi-cloud support"},
			{message: "Add cost optimization features"},
		},
	},
	{
		score:  func(s schema.ScoreSet) int { return s.Level5 },
		max:    metrics.Level5Max,
		prereq: func(s schema.ScoreSet) bool { return s.Level4 >= 10 },
		rules: []rule{
			{message: "Implement GitOps workflow"},
			{message: "Add comprehensive E2E testing"},
			{message: "Implement predictive scaling and self-healing"},
		},
	},
}

// For evaluates the rule table against a score set. Deterministic and
// side-effect free: identical input yields an identical ordered list.
func For(s schema.ScoreSet) []string {
	var out []string
	for _, g := range groups {
		if g.score(s) >= g.max {
			continue
		}
		if g.prereq != nil && !g.prereq(s) {
			continue
		}
		for _, r := range g.rules {
			if r.below == 0 || g.score(s) < r.below {
				out = append(out, r.message)
			}
		}
	}
	if len(out) == 0 {
		out = append(out, Fallback)
	}
	return out
}

// SecurityBaseline is the fixed improvement list shown on the security
// dashboard. It is not score-driven; the underlying checks live in the
// assessment script.
func SecurityBaseline() []string {
	return []string{
		"Enable container image signing for all production images",
		"Implement automated vulnerability patching for dependencies",
		"Add runtime security monitoring with Falco",
		"Increase code coverage to meet 80% threshold",
		"Review and update RBAC policies quarterly",
	}
}
