package events

import (
	"time"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventResponseSubmitted   EventType = "survey.response_submitted"
	EventPeriodUpdated       EventType = "survey.period_updated"
	EventCourseStatusChanged EventType = "survey.course_status_changed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role       domain.Role `json:"role"`
	Identifier string      `json:"identifier,omitempty"`
}

// Event represents a committed state change emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ResponseSubmittedPayload carries the accepted response.
type ResponseSubmittedPayload struct {
	Response domain.SurveyResponse `json:"response"`
}

// PeriodUpdatedPayload carries the new period.
type PeriodUpdatedPayload struct {
	Period domain.EvaluationPeriod `json:"period"`
}

// CourseStatusChangedPayload payload.
type CourseStatusChangedPayload struct {
	CourseID       string `json:"course_id"`
	IsSurveyActive bool   `json:"is_survey_active"`
}
