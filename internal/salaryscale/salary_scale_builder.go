package salaryscale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	salaryscaleerrors "github.com/JiaqinWu/DCPS-Salary/internal/salaryscale/errors"
	"github.com/JiaqinWu/DCPS-Salary/internal/stepband"

	"github.com/shopspring/decimal"
)

// The scale has no columns past step 21, so its last column stands for every
// step from 21 upwards.
const literalOverflowLabel = "Step 21"

var stepLabelPattern = regexp.MustCompile(`^Step (\d+)(?:-(\d+))?$`)

// Lookup is the tall (Education Level, Step Band, Salary) form of the scale.
// It is immutable once built.
type Lookup struct {
	entries []Entry
	index   map[key]int
}

// Build unpivots every step column of the wide scale into one entry per
// education level and column.
func Build(table WideTable) (*Lookup, error) {
	levelCol := -1
	bands := make(map[int]stepband.Band, len(table.Header))
	for i, raw := range table.Header {
		label := strings.TrimSpace(raw)
		if label == EducationLevelColumn {
			levelCol = i
			continue
		}
		if label == "" {
			continue
		}
		band, err := parseStepLabel(label)
		if err != nil {
			return nil, err
		}
		bands[i] = band
	}
	if levelCol < 0 {
		return nil, fmt.Errorf("%w: missing %q column", salaryscaleerrors.ErrMalformedScale, EducationLevelColumn)
	}
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no step columns", salaryscaleerrors.ErrMalformedScale)
	}

	lookup := &Lookup{
		entries: make([]Entry, 0, len(table.Rows)*len(bands)),
		index:   make(map[key]int, len(table.Rows)*len(bands)),
	}

	for r, row := range table.Rows {
		if isBlankRow(row) {
			continue
		}
		level := strings.TrimSpace(cell(row, levelCol))

		for col := range table.Header {
			band, ok := bands[col]
			if !ok {
				continue
			}

			salary, err := parseSalary(cell(row, col))
			if err != nil {
				// +2: one-based rows below the header row.
				return nil, fmt.Errorf("%w: row %d column %q: %v",
					salaryscaleerrors.ErrMalformedScale, r+2, table.Header[col], err)
			}

			k := key{educationLevel: level, band: band}
			if _, exists := lookup.index[k]; exists {
				return nil, fmt.Errorf("%w: duplicate entry for %q / %q",
					salaryscaleerrors.ErrMalformedScale, level, band)
			}
			lookup.index[k] = len(lookup.entries)
			lookup.entries = append(lookup.entries, Entry{
				EducationLevel: level,
				StepBand:       band,
				Salary:         salary,
			})
		}
	}

	return lookup, nil
}

// Get returns the salary for an education level and band. A missing key and
// a blank salary cell both come back invalid.
func (l *Lookup) Get(educationLevel string, band stepband.Band) decimal.NullDecimal {
	if l == nil {
		return decimal.NullDecimal{}
	}
	i, ok := l.index[key{educationLevel: strings.TrimSpace(educationLevel), band: band}]
	if !ok {
		return decimal.NullDecimal{}
	}
	return l.entries[i].Salary
}

// Entries returns a copy of the tall rows in source order.
func (l *Lookup) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Lookup) Len() int {
	return len(l.entries)
}

func parseStepLabel(label string) (stepband.Band, error) {
	m := stepLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return "", fmt.Errorf("%w: unrecognised step column %q", salaryscaleerrors.ErrMalformedScale, label)
	}
	if m[2] != "" {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo >= hi {
			return "", fmt.Errorf("%w: invalid step range %q", salaryscaleerrors.ErrMalformedScale, label)
		}
	}
	if label == literalOverflowLabel {
		return stepband.Overflow, nil
	}
	return stepband.Band(label), nil
}

func parseSalary(raw string) (decimal.NullDecimal, error) {
	v := strings.TrimSpace(raw)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid salary %q", raw)
	}
	return decimal.NewNullDecimal(d.RoundBank(2)), nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
