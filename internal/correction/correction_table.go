package correction

import "slices"

// Stats summarises a table for load reports.
type Stats struct {
	Employees          int   `json:"employees"`
	DuplicateIDs       []int `json:"duplicate_ids,omitempty"`
	OriginalUnmatched  []int `json:"original_unmatched,omitempty"`
	CorrectedUnmatched []int `json:"corrected_unmatched,omitempty"`
	Underpaid          int   `json:"underpaid"`
}

// Table is the fully computed result of one load. It is never mutated after
// NewTable returns, so it can be shared between readers without locking.
type Table struct {
	records []EnrichedRecord
	index   map[int]int
	stats   Stats
}

// NewTable indexes records by employee id. When an id repeats, the first row
// wins and the id is reported in Stats.DuplicateIDs.
func NewTable(records []EnrichedRecord) *Table {
	t := &Table{
		records: make([]EnrichedRecord, len(records)),
		index:   make(map[int]int, len(records)),
	}
	copy(t.records, records)

	for i, r := range t.records {
		if _, exists := t.index[r.EmployeeID]; exists {
			t.stats.DuplicateIDs = append(t.stats.DuplicateIDs, r.EmployeeID)
			continue
		}
		t.index[r.EmployeeID] = i

		if !r.Original.Matched() {
			t.stats.OriginalUnmatched = append(t.stats.OriginalUnmatched, r.EmployeeID)
		}
		if !r.Corrected.Matched() {
			t.stats.CorrectedUnmatched = append(t.stats.CorrectedUnmatched, r.EmployeeID)
		}
		if r.Differential.Valid && r.Differential.Decimal.IsNegative() {
			t.stats.Underpaid++
		}
	}
	t.stats.Employees = len(t.index)

	return t
}

// Build runs the whole pipeline for a staff list and lookup.
func Build(staff []StaffRecord, lookup SalaryLookup) *Table {
	return NewTable(Enrich(staff, lookup))
}

func (t *Table) Get(employeeID int) (EnrichedRecord, bool) {
	i, ok := t.index[employeeID]
	if !ok {
		return EnrichedRecord{}, false
	}
	return t.records[i], true
}

// EmployeeIDs returns unique ids in sheet order.
func (t *Table) EmployeeIDs() []int {
	ids := make([]int, 0, len(t.index))
	for i, r := range t.records {
		if t.index[r.EmployeeID] == i {
			ids = append(ids, r.EmployeeID)
		}
	}
	return ids
}

// Records returns a copy of every row, duplicates included.
func (t *Table) Records() []EnrichedRecord {
	out := make([]EnrichedRecord, len(t.records))
	copy(out, t.records)
	return out
}

func (t *Table) Stats() Stats {
	s := t.stats
	s.DuplicateIDs = slices.Clone(s.DuplicateIDs)
	s.OriginalUnmatched = slices.Clone(s.OriginalUnmatched)
	s.CorrectedUnmatched = slices.Clone(s.CorrectedUnmatched)
	return s
}
