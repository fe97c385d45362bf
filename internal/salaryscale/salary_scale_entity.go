package salaryscale

import (
	"github.com/JiaqinWu/DCPS-Salary/internal/stepband"

	"github.com/shopspring/decimal"
)

const EducationLevelColumn = "Education Level"

// WideTable is the salary scale as it appears in the workbook: one row per
// education level, one column per step label.
type WideTable struct {
	Header []string
	Rows   [][]string
}

// Entry is one tall row of the lookup. Salary is invalid when the source
// cell was blank.
type Entry struct {
	EducationLevel string
	StepBand       stepband.Band
	Salary         decimal.NullDecimal
}

type key struct {
	educationLevel string
	band           stepband.Band
}
