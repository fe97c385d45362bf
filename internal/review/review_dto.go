package review

import "time"

type GetReviewRequest struct {
	EmployeeID int `uri:"id" binding:"required,min=1"`
}

type ListEmployeesRequest struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=100" binding:"min=1,max=1000"`
}

type EmployeeOption struct {
	EmployeeID int    `json:"employee_id"`
	Label      string `json:"label"`
}

type LoadSummaryResponse struct {
	Source             string    `json:"source"`
	LoadedAt           time.Time `json:"loaded_at"`
	Employees          int       `json:"employees"`
	ScaleEntries       int       `json:"scale_entries"`
	DuplicateIDs       []int     `json:"duplicate_ids,omitempty"`
	OriginalUnmatched  []int     `json:"original_unmatched,omitempty"`
	CorrectedUnmatched []int     `json:"corrected_unmatched,omitempty"`
	Underpaid          int       `json:"underpaid"`
}

// TrackResponse carries amounts as fixed two-decimal strings; a nil entry
// means the salary scale had no match for the band.
type TrackResponse struct {
	StepBand     string    `json:"step_band"`
	BaseSalary   *string   `json:"base_salary"`
	Years        []*string `json:"years"`
	Total        *string   `json:"total"`
	TotalDisplay string    `json:"total_display"`
}

type BadgeResponse struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type ChartPoint struct {
	Year   string   `json:"year"`
	Amount *float64 `json:"amount"`
}

type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Points []ChartPoint `json:"points"`
}

type ChartResponse struct {
	Title  string        `json:"title"`
	XTitle string        `json:"x_title"`
	YTitle string        `json:"y_title"`
	Years  []string      `json:"years"`
	Single bool          `json:"single"`
	Series []ChartSeries `json:"series"`
}

type ReviewResponse struct {
	EmployeeID          int           `json:"employee_id"`
	Label               string        `json:"label"`
	EducationLevel      string        `json:"education_level"`
	Step                *int          `json:"step"`
	CorrectedStep       *int          `json:"corrected_step"`
	Years               []string      `json:"years"`
	Original            TrackResponse `json:"original"`
	Corrected           TrackResponse `json:"corrected"`
	Differential        *string       `json:"differential"`
	DifferentialDisplay string        `json:"differential_display"`
	AmountOwed          *string       `json:"amount_owed"`
	Badge               BadgeResponse `json:"badge"`
	Chart               ChartResponse `json:"chart"`
}
