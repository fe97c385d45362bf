package correction

import (
	"github.com/JiaqinWu/DCPS-Salary/internal/stepband"

	"github.com/shopspring/decimal"
)

// SalaryLookup resolves a base salary for an education level and band.
type SalaryLookup interface {
	Get(educationLevel string, band stepband.Band) decimal.NullDecimal
}

// Enrich joins every staff row against the lookup twice, once per band, and
// projects both tracks. Rows without a match are kept with missing amounts.
func Enrich(staff []StaffRecord, lookup SalaryLookup) []EnrichedRecord {
	out := make([]EnrichedRecord, 0, len(staff))
	for _, s := range staff {
		out = append(out, EnrichRecord(s, lookup))
	}
	return out
}

func EnrichRecord(s StaffRecord, lookup SalaryLookup) EnrichedRecord {
	originalBand := stepband.CategorizeOptional(s.Step)
	correctedBand := stepband.Corrected(s.Step)

	original := Project(lookup.Get(s.EducationLevel, originalBand))
	original.Band = originalBand

	corrected := Project(lookup.Get(s.EducationLevel, correctedBand))
	corrected.Band = correctedBand

	return EnrichedRecord{
		StaffRecord:  s,
		Original:     original,
		Corrected:    corrected,
		Differential: Differential(original.Total, corrected.Total),
	}
}
