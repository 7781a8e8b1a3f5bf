package schema

// ScoreSet holds the raw per-level maturity scores produced by the
// assessment script. Each level is bounded by a fixed maximum (see the
// metrics package).
type ScoreSet struct {
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
	Level1     int `json:"level1"`
	Level2     int `json:"level2"`
	Level3     int `json:"level3"`
	Level4     int `json:"level4"`
	Level5     int `json:"level5"`
}

// AssessmentRecord is one maturity assessment snapshot. It is produced by an
// external assessment run and read-only to this tool.
type AssessmentRecord struct {
	Timestamp     string   `json:"timestamp"`
	Project       string   `json:"project"`
	Scores        ScoreSet `json:"scores"`
	MaturityLevel string   `json:"maturityLevel"`
}

// SecuritySummary mirrors the summary block of security-assessment-report.json.
type SecuritySummary struct {
	TotalScore int `json:"total_score"`
	MaxScore   int `json:"max_score"`
	Percentage int `json:"percentage"`
}

// CheckResult is a single security check outcome from the assessment script.
type CheckResult struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Points   int    `json:"points"`
}

// SecurityAssessment is the parsed security-assessment-report.json.
type SecurityAssessment struct {
	Summary SecuritySummary `json:"summary"`
	Checks  []CheckResult   `json:"checks,omitempty"`
}

// VulnerabilitySummary counts detected issues in the four fixed severity
// tiers. Immutable once computed.
type VulnerabilitySummary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total is the sum across all four tiers.
func (v VulnerabilitySummary) Total() int {
	return v.Critical + v.High + v.Medium + v.Low
}

// ComplianceStandard is one named checklist with its pass/total control
// counts.
type ComplianceStandard struct {
	Name           string `json:"name" yaml:"name"`
	Score          int    `json:"score" yaml:"score"`
	ControlsPassed int    `json:"controls_passed" yaml:"controls_passed"`
	ControlsTotal  int    `json:"controls_total" yaml:"controls_total"`
}

// ComplianceSummary groups the tracked standards and their weighted average.
type ComplianceSummary struct {
	Standards []ComplianceStandard `json:"standards"`
	Overall   float64              `json:"overall_compliance"`
}

// ScanningStatus records when vulnerability data was last collected and when
// the next collection is due.
type ScanningStatus struct {
	LastScan string `json:"last_scan"`
	NextScan string `json:"next_scan"`
}

// SecurityMetrics is the flat snapshot written to security-metrics.json for
// monitoring systems.
type SecurityMetrics struct {
	Timestamp       string               `json:"timestamp"`
	SecurityScore   int                  `json:"security_score"`
	ComplianceScore float64              `json:"compliance_score"`
	Vulnerabilities VulnerabilitySummary `json:"vulnerabilities"`
	ScanningStatus  ScanningStatus       `json:"scanning_status"`
}
