package correction_test

import (
	"testing"

	"github.com/JiaqinWu/DCPS-Salary/internal/correction"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	lookup := buildLookup(t)
	table := correction.Build([]correction.StaffRecord{
		{EmployeeID: 30, EducationLevel: "BA", Step: step(1)},
		{EmployeeID: 10, EducationLevel: "PhD", Step: step(2)},
		{EmployeeID: 30, EducationLevel: "MA", Step: step(2)},
		{EmployeeID: 20, EducationLevel: "MA", Step: step(14)},
	}, lookup)

	t.Run("get by id", func(t *testing.T) {
		r, ok := table.Get(20)

		assert.True(t, ok)
		assert.Equal(t, "MA", r.EducationLevel)
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		r, ok := table.Get(30)

		assert.True(t, ok)
		assert.Equal(t, "BA", r.EducationLevel)
	})

	t.Run("not found", func(t *testing.T) {
		_, ok := table.Get(99)

		assert.False(t, ok)
	})

	t.Run("ids keep sheet order", func(t *testing.T) {
		assert.Equal(t, []int{30, 10, 20}, table.EmployeeIDs())
		assert.Len(t, table.Records(), 4)
	})

	t.Run("stats", func(t *testing.T) {
		stats := table.Stats()

		assert.Equal(t, 3, stats.Employees)
		assert.Equal(t, []int{30}, stats.DuplicateIDs)
		assert.Equal(t, []int{10}, stats.OriginalUnmatched)
		assert.Equal(t, []int{10}, stats.CorrectedUnmatched)
		assert.Equal(t, 1, stats.Underpaid)
	})

	t.Run("records are copies", func(t *testing.T) {
		records := table.Records()
		records[0].EducationLevel = "changed"

		r, _ := table.Get(30)
		assert.Equal(t, "BA", r.EducationLevel)
	})
}
