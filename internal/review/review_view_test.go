package review_test

import (
	"testing"

	"github.com/JiaqinWu/DCPS-Salary/internal/correction"
	"github.com/JiaqinWu/DCPS-Salary/internal/review"
	"github.com/JiaqinWu/DCPS-Salary/internal/stepband"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func record(id int, original, corrected decimal.NullDecimal) correction.EnrichedRecord {
	o := correction.Project(original)
	c := correction.Project(corrected)
	o.Band = stepband.Band("Step 1")
	c.Band = stepband.Band("Step 2")
	return correction.EnrichedRecord{
		StaffRecord:  correction.StaffRecord{EmployeeID: id, EducationLevel: "BA"},
		Original:     o,
		Corrected:    c,
		Differential: correction.Differential(o.Total, c.Total),
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$5,000.00", review.FormatCurrency(decimal.RequireFromString("5000")))
	assert.Equal(t, "$0.01", review.FormatCurrency(decimal.RequireFromString("0.01")))
	assert.Equal(t, "$1,234,567.89", review.FormatCurrency(decimal.RequireFromString("1234567.89")))
}

func TestBuildBadge(t *testing.T) {
	tests := []struct {
		name  string
		diff  decimal.NullDecimal
		kind  string
		text  string
		color string
	}{
		{"district owes", amount("-5000.00"), review.BadgeOwe, "owe $5,000.00", "#ef4444"},
		{"exact zero", amount("0"), review.BadgeZero, "Δ 0", "#facc15"},
		{"below half a cent", amount("-0.004"), review.BadgeZero, "Δ 0", "#facc15"},
		{"half a cent is not zero", amount("0.005"), review.BadgeDelta, "+$0.01", "#09ab3b"},
		{"positive", amount("1234.5"), review.BadgeDelta, "+$1,234.50", "#09ab3b"},
		{"missing", decimal.NullDecimal{}, review.BadgeUnavailable, "Δ n/a", "#9ca3af"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge := review.BuildBadge(tt.diff)
			assert.Equal(t, tt.kind, badge.Kind)
			assert.Equal(t, tt.text, badge.Text)
			assert.Equal(t, tt.color, badge.Color)
		})
	}
}

func TestBuildChart(t *testing.T) {
	t.Run("identical tracks draw one line", func(t *testing.T) {
		chart := review.BuildChart(record(7, amount("60000"), amount("60000")))

		assert.True(t, chart.Single)
		require.Len(t, chart.Series, 1)
		assert.Equal(t, review.SeriesOriginal, chart.Series[0].Name)
		assert.Equal(t, "#2ca02c", chart.Series[0].Color)
		assert.Equal(t, "Salary by Year - Employee ID: 7", chart.Title)
		assert.Equal(t, "School Year", chart.XTitle)
		assert.Equal(t, "Salary ($)", chart.YTitle)
		assert.Equal(t, []string{"21-22", "22-23", "23-24", "24-25"}, chart.Years)
	})

	t.Run("underpaid uses green and blue", func(t *testing.T) {
		chart := review.BuildChart(record(1, amount("50000"), amount("51500")))

		assert.False(t, chart.Single)
		require.Len(t, chart.Series, 2)
		assert.Equal(t, "#2ca02c", chart.Series[0].Color)
		assert.Equal(t, "#1f77b4", chart.Series[1].Color)
		require.NotNil(t, chart.Series[0].Points[0].Amount)
		assert.InDelta(t, 51000.0, *chart.Series[0].Points[0].Amount, 0.001)
	})

	t.Run("overpaid uses red and green", func(t *testing.T) {
		chart := review.BuildChart(record(2, amount("51500"), amount("50000")))

		require.Len(t, chart.Series, 2)
		assert.Equal(t, "#d62728", chart.Series[0].Color)
		assert.Equal(t, "#2ca02c", chart.Series[1].Color)
	})

	t.Run("missing values never match", func(t *testing.T) {
		chart := review.BuildChart(record(3, decimal.NullDecimal{}, decimal.NullDecimal{}))

		assert.False(t, chart.Single)
		require.Len(t, chart.Series, 2)
		for _, p := range chart.Series[1].Points {
			assert.Nil(t, p.Amount)
		}
		assert.Equal(t, "#2ca02c", chart.Series[0].Color)
		assert.Equal(t, "#1f77b4", chart.Series[1].Color)
	})
}
