package review

import (
	"fmt"

	"github.com/JiaqinWu/DCPS-Salary/internal/correction"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	BadgeZero        = "zero"
	BadgeOwe         = "owe"
	BadgeDelta       = "delta"
	BadgeUnavailable = "unavailable"

	SeriesOriginal  = "Original"
	SeriesCorrected = "Corrected"

	colorRed    = "#d62728"
	colorGreen  = "#2ca02c"
	colorBlue   = "#1f77b4"
	colorYellow = "#facc15"
	colorAlert  = "#ef4444"
	colorGain   = "#09ab3b"
	colorMuted  = "#9ca3af"
)

// Half a cent. Amounts closer than this are the same for display purposes.
var currencyEpsilon = decimal.RequireFromString("0.005")

func EmployeeLabel(employeeID int) string {
	return fmt.Sprintf("Employee ID: %d", employeeID)
}

// FormatCurrency renders an amount as US dollars, e.g. "$5,000.00".
func FormatCurrency(d decimal.Decimal) string {
	cents := d.Shift(2).RoundBank(0).IntPart()
	return money.New(cents, money.USD).Display()
}

func formatOptional(d decimal.NullDecimal) string {
	if !d.Valid {
		return "n/a"
	}
	return FormatCurrency(d.Decimal)
}

func fixedOrNil(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}

func nearlyEqual(a, b decimal.NullDecimal) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	return a.Decimal.Sub(b.Decimal).Abs().LessThan(currencyEpsilon)
}

// BuildBadge picks the differential indicator shown next to the corrected
// total.
func BuildBadge(diff decimal.NullDecimal) BadgeResponse {
	switch {
	case !diff.Valid:
		return BadgeResponse{Kind: BadgeUnavailable, Text: "Δ n/a", Color: colorMuted}
	case diff.Decimal.Abs().LessThan(currencyEpsilon):
		return BadgeResponse{Kind: BadgeZero, Text: "Δ 0", Color: colorYellow}
	case diff.Decimal.IsNegative():
		return BadgeResponse{Kind: BadgeOwe, Text: "owe " + FormatCurrency(diff.Decimal.Abs()), Color: colorAlert}
	default:
		return BadgeResponse{Kind: BadgeDelta, Text: "+" + FormatCurrency(diff.Decimal), Color: colorGain}
	}
}

// BuildChart draws a single line when every year matches between tracks and
// both lines otherwise.
func BuildChart(r correction.EnrichedRecord) ChartResponse {
	years := correction.YearLabels()
	chart := ChartResponse{
		Title:  "Salary by Year - " + EmployeeLabel(r.EmployeeID),
		XTitle: "School Year",
		YTitle: "Salary ($)",
		Years:  years,
	}

	allEqual := true
	for i := range r.Original.Years {
		if !nearlyEqual(r.Original.Years[i], r.Corrected.Years[i]) {
			allEqual = false
			break
		}
	}

	if allEqual {
		chart.Single = true
		chart.Series = []ChartSeries{
			{Name: SeriesOriginal, Color: colorGreen, Points: points(years, r.Original)},
		}
		return chart
	}

	originalColor, correctedColor := colorGreen, colorBlue
	if r.Differential.Valid && !r.Differential.Decimal.IsNegative() {
		originalColor, correctedColor = colorRed, colorGreen
	}
	chart.Series = []ChartSeries{
		{Name: SeriesOriginal, Color: originalColor, Points: points(years, r.Original)},
		{Name: SeriesCorrected, Color: correctedColor, Points: points(years, r.Corrected)},
	}
	return chart
}

func points(years []string, t correction.Track) []ChartPoint {
	out := make([]ChartPoint, len(years))
	for i, y := range years {
		out[i] = ChartPoint{Year: y}
		if t.Years[i].Valid {
			v := t.Years[i].Decimal.InexactFloat64()
			out[i].Amount = &v
		}
	}
	return out
}

func mapTrack(t correction.Track) TrackResponse {
	years := make([]*string, len(t.Years))
	for i, y := range t.Years {
		years[i] = fixedOrNil(y)
	}
	return TrackResponse{
		StepBand:     string(t.Band),
		BaseSalary:   fixedOrNil(t.Base),
		Years:        years,
		Total:        fixedOrNil(t.Total),
		TotalDisplay: formatOptional(t.Total),
	}
}

func mapToReview(r correction.EnrichedRecord) ReviewResponse {
	return ReviewResponse{
		EmployeeID:          r.EmployeeID,
		Label:               EmployeeLabel(r.EmployeeID),
		EducationLevel:      r.EducationLevel,
		Step:                r.Step,
		CorrectedStep:       r.CorrectedStep(),
		Years:               correction.YearLabels(),
		Original:            mapTrack(r.Original),
		Corrected:           mapTrack(r.Corrected),
		Differential:        fixedOrNil(r.Differential),
		DifferentialDisplay: formatOptional(r.Differential),
		AmountOwed:          fixedOrNil(r.AmountOwed()),
		Badge:               BuildBadge(r.Differential),
		Chart:               BuildChart(r),
	}
}
