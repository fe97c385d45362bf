package main

import (
	"bytes"
	"testing"

	"github.com/JiaqinWu/DCPS-Salary/internal/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string {
	return &s
}

func TestRenderReview(t *testing.T) {
	step, corrected := 1, 2
	resp := review.ReviewResponse{
		EmployeeID:     7,
		Label:          "Employee ID: 7",
		EducationLevel: "BA",
		Step:           &step,
		CorrectedStep:  &corrected,
		Years:          []string{"21-22", "22-23", "23-24", "24-25"},
		Original: review.TrackResponse{
			StepBand:     "Step 1",
			Years:        []*string{str("51000.00"), str("52530.00"), str("52530.00"), str("53580.60")},
			TotalDisplay: "$209,640.60",
		},
		Corrected: review.TrackResponse{
			StepBand:     "Step 2",
			Years:        []*string{nil, nil, nil, nil},
			TotalDisplay: "n/a",
		},
		DifferentialDisplay: "n/a",
		Badge:               review.BadgeResponse{Kind: review.BadgeUnavailable, Text: "Δ n/a", Color: "#9ca3af"},
	}

	var buf bytes.Buffer
	require.NoError(t, renderReview(&buf, resp))

	out := buf.String()
	assert.Contains(t, out, "Employee ID: 7")
	assert.Contains(t, out, "1 (Step 1)")
	assert.Contains(t, out, "2 (Step 2)")
	assert.Contains(t, out, "$53,580.60")
	assert.Contains(t, out, "$209,640.60")
	assert.Contains(t, out, "Δ n/a")
}

func TestDisplayStep(t *testing.T) {
	assert.Equal(t, "Unknown", displayStep(nil, "Unknown"))
}

func TestRootCmd_RequiresEmployee(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"show", "--env", "missing.env"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.Error(t, err)
}
