package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gunjanjp/gunj-reports/internal/recommend"
	"github.com/gunjanjp/gunj-reports/internal/schema"
)

//go:embed templates/security.html.tmpl
var securityHTMLTemplate string

// Output file names for the security subcommand.
const (
	SecurityDashboardFile = "security-dashboard.html"
	SecurityMetricsFile   = "security-metrics.json"
)

// Vulnerability data is considered stale after a day.
const scanInterval = 24 * time.Hour

// SecurityView is the dashboard view model. VulnData is the doughnut chart
// dataset, pre-rendered as a fragment string.
type SecurityView struct {
	Timestamp       string
	SecurityScore   int
	ComplianceScore int
	Vulnerabilities schema.VulnerabilitySummary
	Standards       []schema.ComplianceStandard
	Checks          []schema.CheckResult
	Recommendations []string
	VulnData        template.JS
}

// BuildSecurityView combines assessment, vulnerability and compliance data
// for the dashboard. now is passed explicitly so rendering stays
// reproducible.
func BuildSecurityView(assessment schema.SecurityAssessment, vulns schema.VulnerabilitySummary, compliance schema.ComplianceSummary, now time.Time) SecurityView {
	return SecurityView{
		Timestamp:       now.UTC().Format("2006-01-02 15:04 UTC"),
		SecurityScore:   assessment.Summary.Percentage,
		ComplianceScore: int(compliance.Overall),
		Vulnerabilities: vulns,
		Standards:       compliance.Standards,
		Checks:          assessment.Checks,
		Recommendations: recommend.SecurityBaseline(),
		VulnData:        jsIntList([]int{vulns.Critical, vulns.High, vulns.Medium, vulns.Low}),
	}
}

// RenderSecurityHTML produces the complete dashboard document.
func RenderSecurityHTML(view SecurityView) ([]byte, error) {
	tmpl, err := template.New("security").Parse(securityHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse security html template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render security html: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildSecurityMetrics is the flat snapshot handed to monitoring systems via
// security-metrics.json.
func BuildSecurityMetrics(assessment schema.SecurityAssessment, vulns schema.VulnerabilitySummary, compliance schema.ComplianceSummary, now time.Time) schema.SecurityMetrics {
	ts := now.UTC()
	return schema.SecurityMetrics{
		Timestamp:       ts.Format(time.RFC3339),
		SecurityScore:   assessment.Summary.Percentage,
		ComplianceScore: compliance.Overall,
		Vulnerabilities: vulns,
		ScanningStatus: schema.ScanningStatus{
			LastScan: ts.Format(time.RFC3339),
			NextScan: ts.Add(scanInterval).Format(time.RFC3339),
		},
	}
}
