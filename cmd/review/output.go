package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/JiaqinWu/DCPS-Salary/internal/review"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func displayAmount(s *string) string {
	if s == nil {
		return "n/a"
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return *s
	}
	return review.FormatCurrency(d)
}

func displayStep(step *int, band string) string {
	if step == nil {
		return band
	}
	return fmt.Sprintf("%d (%s)", *step, band)
}

func renderReview(w io.Writer, r review.ReviewResponse) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("School Year", review.SeriesOriginal, review.SeriesCorrected)
	for i, year := range r.Years {
		t.Row(year, displayAmount(r.Original.Years[i]), displayAmount(r.Corrected.Years[i]))
	}
	t.Row("Total", r.Original.TotalDisplay, r.Corrected.TotalDisplay)

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(r.Badge.Color)).
		Render(r.Badge.Text)

	_, err := fmt.Fprintf(w, "%s\n%s %s\n%s %s\n%s %s\n%s\n%s %s  %s\n",
		titleStyle.Render(r.Label),
		labelStyle.Render("Education Level:"), r.EducationLevel,
		labelStyle.Render("Original step:"), displayStep(r.Step, r.Original.StepBand),
		labelStyle.Render("Corrected step:"), displayStep(r.CorrectedStep, r.Corrected.StepBand),
		t.String(),
		labelStyle.Render("Differential:"), r.DifferentialDisplay, badge,
	)
	return err
}
