package correction

import (
	"github.com/JiaqinWu/DCPS-Salary/internal/stepband"

	"github.com/shopspring/decimal"
)

// StaffRecord is one row of the staff sheet. Step is nil when the sheet cell
// is blank or not a whole number.
type StaffRecord struct {
	EmployeeID     int
	EducationLevel string
	Step           *int
}

// CorrectedStep is the original step plus one.
func (s StaffRecord) CorrectedStep() *int {
	if s.Step == nil {
		return nil
	}
	corrected := *s.Step + 1
	return &corrected
}

// Track is one pay path (original or corrected) for an employee. Every
// amount is invalid when the band had no match in the salary scale.
type Track struct {
	Band  stepband.Band
	Base  decimal.NullDecimal
	Years [YearCount]decimal.NullDecimal
	Total decimal.NullDecimal
}

// Matched reports whether the band joined against the salary scale.
func (t Track) Matched() bool {
	return t.Base.Valid
}

type EnrichedRecord struct {
	StaffRecord
	Original  Track
	Corrected Track

	// Differential is Original.Total - Corrected.Total. Negative means the
	// employee was underpaid and is owed the absolute value.
	Differential decimal.NullDecimal
}

// AmountOwed is the underpayment, zero when the employee was not underpaid.
// It is invalid when the differential is.
func (r EnrichedRecord) AmountOwed() decimal.NullDecimal {
	if !r.Differential.Valid {
		return decimal.NullDecimal{}
	}
	if r.Differential.Decimal.IsNegative() {
		return decimal.NewNullDecimal(r.Differential.Decimal.Abs())
	}
	return decimal.NewNullDecimal(decimal.Zero)
}
