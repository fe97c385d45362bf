package stepband_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/JiaqinWu/DCPS-Salary/internal/stepband"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	expected := map[int]stepband.Band{
		12: "Step 12-15", 13: "Step 12-15", 14: "Step 12-15", 15: "Step 12-15",
		16: "Step 16",
		17: "Step 17-18", 18: "Step 17-18",
		19: "Step 19-20", 20: "Step 19-20",
	}
	for i := 1; i <= 11; i++ {
		expected[i] = stepband.Band(fmt.Sprintf("Step %d", i))
	}
	for i := 21; i <= 30; i++ {
		expected[i] = stepband.Overflow
	}

	for step := 1; step <= 30; step++ {
		t.Run(fmt.Sprintf("step %d", step), func(t *testing.T) {
			assert.Equal(t, expected[step], stepband.Categorize(step))
		})
	}

	t.Run("unknown below one", func(t *testing.T) {
		assert.Equal(t, stepband.Unknown, stepband.Categorize(0))
		assert.Equal(t, stepband.Unknown, stepband.Categorize(-1))
		assert.Equal(t, stepband.Unknown, stepband.Categorize(math.MinInt))
	})

	t.Run("large steps overflow", func(t *testing.T) {
		assert.Equal(t, stepband.Overflow, stepband.Categorize(math.MaxInt))
	})
}

func TestCategorize_NeverRegresses(t *testing.T) {
	for step := 1; step < 30; step++ {
		current := stepband.Rank(stepband.Categorize(step))
		next := stepband.Rank(stepband.Categorize(step + 1))
		assert.GreaterOrEqual(t, next, current, "step %d -> %d", step, step+1)
	}
}

func TestCorrected(t *testing.T) {
	for step := 0; step <= 30; step++ {
		s := step
		assert.Equal(t, stepband.Categorize(step+1), stepband.Corrected(&s))
	}

	t.Run("crosses boundaries", func(t *testing.T) {
		eleven, twenty := 11, 20
		assert.Equal(t, stepband.Band("Step 12-15"), stepband.Corrected(&eleven))
		assert.Equal(t, stepband.Overflow, stepband.Corrected(&twenty))
	})

	t.Run("missing step", func(t *testing.T) {
		assert.Equal(t, stepband.Unknown, stepband.Corrected(nil))
		assert.Equal(t, stepband.Unknown, stepband.CategorizeOptional(nil))
	})
}

func TestBands(t *testing.T) {
	bands := stepband.Bands()

	assert.Len(t, bands, 16)
	assert.Equal(t, stepband.Band("Step 1"), bands[0])
	assert.Equal(t, stepband.Band("Step 12-15"), bands[11])
	assert.Equal(t, stepband.Overflow, bands[len(bands)-1])
	assert.Equal(t, -1, stepband.Rank(stepband.Unknown))
}
