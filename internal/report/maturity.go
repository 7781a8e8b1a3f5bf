package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	texttemplate "text/template"

	"github.com/gunjanjp/gunj-reports/internal/metrics"
	"github.com/gunjanjp/gunj-reports/internal/recommend"
	"github.com/gunjanjp/gunj-reports/internal/schema"
)

//go:embed templates/maturity.html.tmpl
var maturityHTMLTemplate string

//go:embed templates/maturity.md.tmpl
var maturityMarkdownTemplate string

// Output file names, fixed since the first published report.
const (
	MaturityHTMLFile     = "maturity-report.html"
	MaturityMarkdownFile = "maturity-report.md"
)

// MaturityView is everything the maturity templates need, computed up front
// so rendering is pure substitution. The chart datasets are pre-rendered
// fragment strings so the emitted script carries plain comma-separated
// literals.
type MaturityView struct {
	Timestamp       string
	MaturityLevel   string
	Percentage      int
	TotalScore      int
	TotalMax        int
	Levels          []metrics.Level
	Recommendations []string
	RadarData       template.JS
	BarScores       template.JS
	BarMaxes        template.JS
}

// BuildMaturityView aggregates a raw assessment record into the view model
// shared by the HTML and Markdown renderers.
func BuildMaturityView(rec schema.AssessmentRecord) MaturityView {
	levels := metrics.Breakdown(rec.Scores)
	percents := make([]int, len(levels))
	scores := make([]int, len(levels))
	maxes := make([]int, len(levels))
	for i, l := range levels {
		percents[i] = l.Percent
		scores[i] = l.Score
		maxes[i] = l.Max
	}
	return MaturityView{
		Timestamp:       rec.Timestamp,
		MaturityLevel:   rec.MaturityLevel,
		Percentage:      rec.Scores.Percentage,
		TotalScore:      rec.Scores.Total,
		TotalMax:        metrics.TotalMax,
		Levels:          levels,
		Recommendations: recommend.For(rec.Scores),
		RadarData:       jsIntList(percents),
		BarScores:       jsIntList(scores),
		BarMaxes:        jsIntList(maxes),
	}
}

// jsIntList renders ints as a comma-separated chart dataset fragment.
func jsIntList(values []int) template.JS {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return template.JS(strings.Join(parts, ", "))
}

// RenderMaturityHTML produces the complete HTML report document.
func RenderMaturityHTML(view MaturityView) ([]byte, error) {
	tmpl, err := template.New("maturity").Parse(maturityHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse maturity html template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render maturity html: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderMaturityMarkdown produces the Markdown companion report.
func RenderMaturityMarkdown(view MaturityView) ([]byte, error) {
	tmpl, err := texttemplate.New("maturity-md").
		Funcs(texttemplate.FuncMap{"add": func(a, b int) int { return a + b }}).
		Parse(maturityMarkdownTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse maturity markdown template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render maturity markdown: %w", err)
	}
	return buf.Bytes(), nil
}
