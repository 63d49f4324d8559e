package repository

import (
	"context"
	"sort"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

// MirrorState is what a durable mirror restores at startup.
type MirrorState struct {
	Responses    []domain.SurveyResponse
	Period       *domain.EvaluationPeriod
	CourseStatus map[string]bool
}

// Mirror receives committed in-memory mutations for durable storage.
type Mirror interface {
	SaveResponse(ctx context.Context, resp domain.SurveyResponse) error
	SavePeriod(ctx context.Context, period domain.EvaluationPeriod) error
	SaveCourseStatus(ctx context.Context, courseID string, active bool) error
	Load(ctx context.Context) (*MirrorState, error)
}

type nopMirror struct{}

// NewNopMirror returns a mirror that stores nothing.
func NewNopMirror() Mirror {
	return nopMirror{}
}

func (nopMirror) SaveResponse(context.Context, domain.SurveyResponse) error { return nil }
func (nopMirror) SavePeriod(context.Context, domain.EvaluationPeriod) error { return nil }
func (nopMirror) SaveCourseStatus(context.Context, string, bool) error { return nil }
func (nopMirror) Load(context.Context) (*MirrorState, error) { return &MirrorState{}, nil }

func sortResponses(responses []domain.SurveyResponse) {
	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].SubmittedAt.Before(responses[j].SubmittedAt)
	})
}
