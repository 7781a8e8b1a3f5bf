package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gunjanjp/gunj-reports/internal/assessment"
	"github.com/gunjanjp/gunj-reports/internal/report"
)

func newMaturityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "maturity",
		Short:   "Generate the cloud-native maturity report (HTML + Markdown)",
		Example: "gunj-reports maturity --assessment maturity-assessment-report.json --format html,md,pdf",
		RunE:    runMaturity,
	}

	cmd.Flags().String("assessment", assessment.MaturityReportFile, "Maturity assessment snapshot (JSON)")
	cmd.Flags().String("format", "html,md", "Output formats: html,md,pdf")

	_ = viper.BindPFlag("maturity.assessment", cmd.Flags().Lookup("assessment"))
	_ = viper.BindPFlag("maturity.format", cmd.Flags().Lookup("format"))
	return cmd
}

func runMaturity(cmd *cobra.Command, _ []string) error {
	now := time.Now().UTC()
	rec, err := assessment.LoadMaturity(viper.GetString("maturity.assessment"), now)
	if err != nil {
		return err
	}

	view := report.BuildMaturityView(rec)
	outDir := viper.GetString("output")
	wanted := formats("maturity.format")

	var htmlPath string
	if contains(wanted, "html") {
		html, err := report.RenderMaturityHTML(view)
		if err != nil {
			return err
		}
		htmlPath = filepath.Join(outDir, report.MaturityHTMLFile)
		if err := report.WriteFile(htmlPath, html); err != nil {
			return err
		}
		log.Info().Str("path", htmlPath).Msg("wrote maturity report")
	}

	if contains(wanted, "md") {
		md, err := report.RenderMaturityMarkdown(view)
		if err != nil {
			return err
		}
		mdPath := filepath.Join(outDir, report.MaturityMarkdownFile)
		if err := report.WriteFile(mdPath, md); err != nil {
			return err
		}
		log.Info().Str("path", mdPath).Msg("wrote maturity report")
	}

	if contains(wanted, "pdf") {
		if htmlPath == "" {
			return fmt.Errorf("pdf output requires the html format")
		}
		pdfPath, err := report.ExportPDF(cmd.Context(), htmlPath)
		if err != nil {
			log.Warn().Err(err).Msg("pdf export failed")
		} else {
			log.Info().Str("path", pdfPath).Msg("wrote maturity report")
		}
	}

	printScoreTable(view)
	return nil
}

func printScoreTable(view report.MaturityView) {
	fmt.Printf("\nMaturity: %s (%d%%)\n\n", view.MaturityLevel, view.Percentage)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowLine(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	table.SetHeader([]string{"Level", "Description", "Score", "Max", "Pct"})
	for _, l := range view.Levels {
		table.Append([]string{
			strconv.Itoa(l.Number),
			l.Description,
			strconv.Itoa(l.Score),
			strconv.Itoa(l.Max),
			strconv.Itoa(l.Percent) + "%",
		})
	}
	table.Append([]string{"", "Total", strconv.Itoa(view.TotalScore), strconv.Itoa(view.TotalMax), strconv.Itoa(view.Percentage) + "%"})
	table.Render()
	fmt.Println()
}
