package workbook

import (
	"github.com/JiaqinWu/DCPS-Salary/internal/correction"
	"github.com/JiaqinWu/DCPS-Salary/internal/salaryscale"
)

// Staff sheet columns.
const (
	ColumnEmployeeID     = "Employee ID"
	ColumnEducationLevel = "Education Level"
	ColumnStep           = "20-21 Step"
)

// Data is everything the correction pipeline needs from one workbook.
type Data struct {
	Source string
	Staff  []correction.StaffRecord
	Scale  salaryscale.WideTable
}
