package domain

// DateLayout is the calendar date format used for period bounds.
const DateLayout = "2006-01-02"

// EvaluationPeriod is the admin-controlled window during which submissions are accepted.
type EvaluationPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsActive  bool   `json:"isActive"`
}
