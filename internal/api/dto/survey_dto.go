package dto

import "github.com/spec-kit/evaluacion-docente/internal/domain"

// PeriodRequest replaces the evaluation period.
type PeriodRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	IsActive  bool   `json:"isActive"`
}

// Period converts the request to the domain value.
func (r PeriodRequest) Period() domain.EvaluationPeriod {
	return domain.EvaluationPeriod{StartDate: r.StartDate, EndDate: r.EndDate, IsActive: r.IsActive}
}

// SubmitRequest carries one student's answers. The submitting student is taken from
// the token; the submission pipeline validates the fields so its error order holds.
type SubmitRequest struct {
	CourseID string         `json:"courseId"`
	Answers  map[string]any `json:"answers"`
}

// CourseStatusRequest toggles a course survey.
type CourseStatusRequest struct {
	CourseID       string `json:"courseId" validate:"notblank"`
	IsSurveyActive *bool  `json:"isSurveyActive" validate:"required"`
}
