package trivy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gunjanjp/gunj-reports/internal/schema"
)

// DefaultResultsFile is where CI drops the scanner output.
const DefaultResultsFile = "trivy-results.json"

type report struct {
	Results []result `json:"Results"`
}

type result struct {
	Target          string          `json:"Target"`
	Vulnerabilities []vulnerability `json:"Vulnerabilities"`
}

type vulnerability struct {
	VulnerabilityID string `json:"VulnerabilityID"`
	PkgName         string `json:"PkgName"`
	Severity        string `json:"Severity"`
	Title           string `json:"Title"`
}

// LoadSeverityCounts reads a trivy results file and buckets every
// vulnerability entry into the four fixed severity tiers. A missing file
// yields zero counts; a malformed file is an error.
func LoadSeverityCounts(path string) (schema.VulnerabilitySummary, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return schema.VulnerabilitySummary{}, nil
	}
	if err != nil {
		return schema.VulnerabilitySummary{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseSeverityCounts(data)
}

// ParseSeverityCounts validates the report envelope and counts entries per
// severity tier. Entries without a Severity field default to low, matching
// the scanner's own convention; severities outside the four tiers are
// dropped.
func ParseSeverityCounts(payload []byte) (schema.VulnerabilitySummary, error) {
	if err := validateEnvelope(payload); err != nil {
		return schema.VulnerabilitySummary{}, err
	}
	var r report
	if err := json.Unmarshal(payload, &r); err != nil {
		return schema.VulnerabilitySummary{}, fmt.Errorf("parse trivy json: %w", err)
	}
	var counts schema.VulnerabilitySummary
	for _, res := range r.Results {
		for _, v := range res.Vulnerabilities {
			switch severity(v) {
			case "critical":
				counts.Critical++
			case "high":
				counts.High++
			case "medium":
				counts.Medium++
			case "low":
				counts.Low++
			}
		}
	}
	return counts, nil
}

func severity(v vulnerability) string {
	s := strings.ToLower(strings.TrimSpace(v.Severity))
	if s == "" {
		return "low"
	}
	return s
}

func validateEnvelope(payload []byte) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil {
		return fmt.Errorf("parse trivy json: %w", err)
	}
	rawResults, ok := root["Results"]
	if !ok {
		return nil
	}
	var results []json.RawMessage
	if err := json.Unmarshal(rawResults, &results); err != nil {
		return errors.New("parse trivy json: Results must be an array")
	}
	return nil
}
