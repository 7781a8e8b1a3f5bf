package compliance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gunjanjp/gunj-reports/internal/metrics"
	"github.com/gunjanjp/gunj-reports/internal/schema"
)

// Defaults is the compliance table from the last benchmark run against the
// operator. Used whenever no override file is supplied.
func Defaults() schema.ComplianceSummary {
	return schema.ComplianceSummary{
		Standards: []schema.ComplianceStandard{
			{Name: "CIS Kubernetes", Score: 85, ControlsPassed: 95, ControlsTotal: 112},
			{Name: "NIST CSF", Score: 78, ControlsPassed: 156, ControlsTotal: 200},
			{Name: "OWASP API", Score: 90, ControlsPassed: 9, ControlsTotal: 10},
		},
		Overall: 84.3,
	}
}

type overrideFile struct {
	Standards []schema.ComplianceStandard `yaml:"standards"`
	Overall   float64                     `yaml:"overall_compliance"`
}

// Load reads a standards override file. When the file omits
// overall_compliance, the control-count weighted average is computed instead.
func Load(path string) (schema.ComplianceSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.ComplianceSummary{}, fmt.Errorf("read %s: %w", path, err)
	}
	var doc overrideFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return schema.ComplianceSummary{}, fmt.Errorf("parse %s: %w", path, err)
	}
	summary := schema.ComplianceSummary{Standards: doc.Standards, Overall: doc.Overall}
	if summary.Overall == 0 {
		summary.Overall = metrics.OverallCompliance(doc.Standards)
	}
	return summary, nil
}
