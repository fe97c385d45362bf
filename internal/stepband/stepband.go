// Package stepband maps raw pay-scale steps onto the step bands used as
// column labels in the salary scale.
package stepband

import (
	"math"
	"strconv"
)

type Band string

const (
	Unknown  Band = "Unknown"
	Overflow Band = "Step 21+"
)

// An exact rule labels each step on its own ("Step 7").
type rule struct {
	min   int
	max   int
	exact bool
	band  Band
}

// Ordered, first match wins.
var rules = []rule{
	{min: 1, max: 11, exact: true},
	{min: 12, max: 15, band: "Step 12-15"},
	{min: 16, max: 16, band: "Step 16"},
	{min: 17, max: 18, band: "Step 17-18"},
	{min: 19, max: 20, band: "Step 19-20"},
	{min: 21, max: math.MaxInt, band: Overflow},
}

// Categorize returns the band for step. Steps below 1 map to Unknown.
func Categorize(step int) Band {
	for _, r := range rules {
		if step < r.min || step > r.max {
			continue
		}
		if r.exact {
			return Band("Step " + strconv.Itoa(step))
		}
		return r.band
	}
	return Unknown
}

// CategorizeOptional treats a missing step as Unknown.
func CategorizeOptional(step *int) Band {
	if step == nil {
		return Unknown
	}
	return Categorize(*step)
}

// Corrected returns the band of the step one above the original.
func Corrected(step *int) Band {
	if step == nil || *step == math.MaxInt {
		return CategorizeOptional(step)
	}
	return Categorize(*step + 1)
}

// Bands lists every known band in ascending order.
func Bands() []Band {
	out := make([]Band, 0, 16)
	for _, r := range rules {
		if r.exact {
			for i := r.min; i <= r.max; i++ {
				out = append(out, Categorize(i))
			}
			continue
		}
		out = append(out, r.band)
	}
	return out
}

// Rank is the position of b in Bands, or -1 for Unknown and foreign labels.
func Rank(b Band) int {
	for i, known := range Bands() {
		if known == b {
			return i
		}
	}
	return -1
}
