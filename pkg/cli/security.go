package cli

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gunjanjp/gunj-reports/internal/assessment"
	"github.com/gunjanjp/gunj-reports/internal/compliance"
	"github.com/gunjanjp/gunj-reports/internal/ingest/trivy"
	"github.com/gunjanjp/gunj-reports/internal/report"
	"github.com/gunjanjp/gunj-reports/internal/schema"
)

func newSecurityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "security",
		Short:   "Generate the security compliance dashboard",
		Example: "gunj-reports security --trivy trivy-results.json --format html,pdf",
		RunE:    runSecurity,
	}

	cmd.Flags().String("assessment", assessment.SecurityReportFile, "Security assessment report (JSON)")
	cmd.Flags().String("trivy", trivy.DefaultResultsFile, "Trivy scan results (JSON)")
	cmd.Flags().String("script", assessment.DefaultScript, "Security assessment script to run before collecting")
	cmd.Flags().Bool("skip-script", false, "Skip running the assessment script")
	cmd.Flags().String("standards", "", "Compliance standards override (YAML)")
	cmd.Flags().String("format", "html", "Output formats: html,pdf")

	_ = viper.BindPFlag("security.assessment", cmd.Flags().Lookup("assessment"))
	_ = viper.BindPFlag("security.trivy", cmd.Flags().Lookup("trivy"))
	_ = viper.BindPFlag("security.script", cmd.Flags().Lookup("script"))
	_ = viper.BindPFlag("security.skip_script", cmd.Flags().Lookup("skip-script"))
	_ = viper.BindPFlag("security.standards", cmd.Flags().Lookup("standards"))
	_ = viper.BindPFlag("security.format", cmd.Flags().Lookup("format"))
	return cmd
}

func runSecurity(cmd *cobra.Command, _ []string) error {
	now := time.Now().UTC()

	// Best effort: a failed assessment run degrades to zero-valued defaults
	// rather than aborting the dashboard.
	if script := viper.GetString("security.script"); script != "" && !viper.GetBool("security.skip_script") {
		log.Info().Str("script", script).Msg("running security assessment")
		out, err := assessment.RunScript(script)
		if err != nil {
			log.Warn().Err(err).Msg("security assessment failed, using defaults")
		} else {
			log.Debug().Int("output_bytes", len(out)).Msg("security assessment finished")
		}
	}

	sec, err := assessment.LoadSecurityAssessment(viper.GetString("security.assessment"))
	if err != nil {
		return err
	}

	vulns, err := trivy.LoadSeverityCounts(viper.GetString("security.trivy"))
	if err != nil {
		return err
	}
	logVulnCounts(vulns)

	comp := compliance.Defaults()
	if path := viper.GetString("security.standards"); path != "" {
		comp, err = compliance.Load(path)
		if err != nil {
			return err
		}
	}

	outDir := viper.GetString("output")

	view := report.BuildSecurityView(sec, vulns, comp, now)
	html, err := report.RenderSecurityHTML(view)
	if err != nil {
		return err
	}
	htmlPath := filepath.Join(outDir, report.SecurityDashboardFile)
	if err := report.WriteFile(htmlPath, html); err != nil {
		return err
	}
	log.Info().Str("path", htmlPath).Msg("wrote security dashboard")

	metricsPath := filepath.Join(outDir, report.SecurityMetricsFile)
	if err := report.WriteJSON(metricsPath, report.BuildSecurityMetrics(sec, vulns, comp, now)); err != nil {
		return err
	}
	log.Info().Str("path", metricsPath).Msg("wrote security metrics")

	if contains(formats("security.format"), "pdf") {
		pdfPath, err := report.ExportPDF(cmd.Context(), htmlPath)
		if err != nil {
			log.Warn().Err(err).Msg("pdf export failed")
		} else {
			log.Info().Str("path", pdfPath).Msg("wrote security dashboard")
		}
	}

	return nil
}

func logVulnCounts(v schema.VulnerabilitySummary) {
	log.Info().
		Int("critical", v.Critical).
		Int("high", v.High).
		Int("medium", v.Medium).
		Int("low", v.Low).
		Int("total", v.Total()).
		Msg("vulnerability counts")
}
