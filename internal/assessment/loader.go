package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gunjanjp/gunj-reports/internal/schema"
)

// Default file names written by the assessment scripts.
const (
	MaturityReportFile = "maturity-assessment-report.json"
	SecurityReportFile = "security-assessment-report.json"
)

// LoadMaturity reads a maturity assessment snapshot. A missing file yields
// the zero-score default record; a file that exists but does not parse is an
// error.
func LoadMaturity(path string, now time.Time) (schema.AssessmentRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultMaturity(now), nil
	}
	if err != nil {
		return schema.AssessmentRecord{}, fmt.Errorf("read %s: %w", path, err)
	}
	var rec schema.AssessmentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return schema.AssessmentRecord{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return rec, nil
}

// DefaultMaturity is the record substituted when no assessment has run yet.
func DefaultMaturity(now time.Time) schema.AssessmentRecord {
	return schema.AssessmentRecord{
		Timestamp:     now.UTC().Format(time.RFC3339),
		Project:       "gunj-operator",
		MaturityLevel: "0 - Traditional",
	}
}

// LoadSecurityAssessment reads the security assessment report with the same
// missing-vs-malformed policy as LoadMaturity.
func LoadSecurityAssessment(path string) (schema.SecurityAssessment, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSecurityAssessment(), nil
	}
	if err != nil {
		return schema.SecurityAssessment{}, fmt.Errorf("read %s: %w", path, err)
	}
	var res schema.SecurityAssessment
	if err := json.Unmarshal(data, &res); err != nil {
		return schema.SecurityAssessment{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

// DefaultSecurityAssessment is the zero-score fallback used when the
// assessment script produced no report.
func DefaultSecurityAssessment() schema.SecurityAssessment {
	return schema.SecurityAssessment{
		Summary: schema.SecuritySummary{MaxScore: 100},
	}
}
