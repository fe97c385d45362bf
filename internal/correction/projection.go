package correction

import (
	"github.com/shopspring/decimal"
)

const YearCount = 4

// Currency amounts carry cents.
const currencyPlaces = 2

// SchoolYear is one reported year and the growth applied to the prior year's
// salary to reach it.
type SchoolYear struct {
	Label  string
	Growth decimal.Decimal
}

// Schedule starts from the 20-21 base salary. 23-24 is a frozen year.
var Schedule = [YearCount]SchoolYear{
	{Label: "21-22", Growth: decimal.RequireFromString("1.02")},
	{Label: "22-23", Growth: decimal.RequireFromString("1.03")},
	{Label: "23-24", Growth: decimal.NewFromInt(1)},
	{Label: "24-25", Growth: decimal.RequireFromString("1.02")},
}

// YearLabels returns the reported school years in order.
func YearLabels() []string {
	labels := make([]string, 0, YearCount)
	for _, y := range Schedule {
		labels = append(labels, y.Label)
	}
	return labels
}

// RoundCurrency rounds half to even at cent precision.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(currencyPlaces)
}

// Project compounds base through the schedule. Each year is rounded before
// it feeds the next one, so the result differs from a single closed-form
// compound. A missing base leaves every year and the total missing.
func Project(base decimal.NullDecimal) Track {
	var track Track
	if !base.Valid {
		return track
	}

	prev := RoundCurrency(base.Decimal)
	track.Base = decimal.NewNullDecimal(prev)

	total := decimal.Zero
	for i, year := range Schedule {
		prev = RoundCurrency(prev.Mul(year.Growth))
		track.Years[i] = decimal.NewNullDecimal(prev)
		total = total.Add(prev)
	}
	track.Total = decimal.NewNullDecimal(total)

	return track
}

// Differential is original - corrected, missing when either side is.
func Differential(original, corrected decimal.NullDecimal) decimal.NullDecimal {
	if !original.Valid || !corrected.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(original.Decimal.Sub(corrected.Decimal))
}
