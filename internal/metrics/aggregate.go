package metrics

import (
	"math"

	"github.com/gunjanjp/gunj-reports/internal/schema"
)

// Per-level maximums fixed by the assessment methodology.
const (
	Level1Max = 20
	Level2Max = 35
	Level3Max = 25
	Level4Max = 15
	Level5Max = 20
	TotalMax  = Level1Max + Level2Max + Level3Max + Level4Max + Level5Max
)

// Level is one row of the maturity score breakdown with its derived display
// percentage.
type Level struct {
	Number      int
	Label       string // short card heading, e.g. "Containerized"
	Description string // long form used in the Markdown table
	Axis        string // radar chart axis label
	Score       int
	Max         int
	Percent     int
}

// Percent converts a raw score into a percentage of its maximum, rounded to
// the nearest integer and clamped to [0, 100] for display. max is always a
// positive constant.
func Percent(score, max int) int {
	pct := int(math.Round(float64(score) / float64(max) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Breakdown derives the five-level score table from a raw score set.
func Breakdown(s schema.ScoreSet) []Level {
	rows := []Level{
		{Number: 1, Label: "Containerized", Description: "Containerization", Axis: "Containerization", Score: s.Level1, Max: Level1Max},
		{Number: 2, Label: "Orchestrated", Description: "Dynamic Orchestration", Axis: "Orchestration", Score: s.Level2, Max: Level2Max},
		{Number: 3, Label: "Microservices", Description: "Microservices Oriented", Axis: "Microservices", Score: s.Level3, Max: Level3Max},
		{Number: 4, Label: "Cloud Native", Description: "Cloud Native Services", Axis: "Cloud Native", Score: s.Level4, Max: Level4Max},
		{Number: 5, Label: "Operations", Description: "Cloud Native Operations", Axis: "Operations", Score: s.Level5, Max: Level5Max},
	}
	for i := range rows {
		rows[i].Percent = Percent(rows[i].Score, rows[i].Max)
	}
	return rows
}

// OverallCompliance computes the control-count weighted average score across
// standards, rounded to one decimal. Returns 0 when no controls are tracked.
func OverallCompliance(standards []schema.ComplianceStandard) float64 {
	weighted := 0
	controls := 0
	for _, std := range standards {
		weighted += std.Score * std.ControlsTotal
		controls += std.ControlsTotal
	}
	if controls == 0 {
		return 0
	}
	return math.Round(float64(weighted)/float64(controls)*10) / 10
}
