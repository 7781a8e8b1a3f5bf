package report

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ExportPDF prints a rendered HTML report to PDF with a headless browser.
// Report pages pull chart.js from a CDN, so the charts only appear when the
// environment has network access; the rest of the page prints regardless.
func ExportPDF(ctx context.Context, htmlPath string) (string, error) {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", htmlPath, err)
	}

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("file://"+abs),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return "", fmt.Errorf("print %s: %w", htmlPath, err)
	}

	pdfPath := strings.TrimSuffix(htmlPath, ".html") + ".pdf"
	if err := WriteFile(pdfPath, pdf); err != nil {
		return "", err
	}
	return pdfPath, nil
}
