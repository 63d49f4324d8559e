package repository

import (
	"sync"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// SurveyRepository is the append-only ledger of survey responses.
type SurveyRepository interface {
	Exists(student, courseID string) bool
	// Append fails with DUPLICATE_SUBMISSION when the (student, course) pair is already present.
	Append(resp domain.SurveyResponse) error
	All() []domain.SurveyResponse
	ForCourses(courseIDs map[string]struct{}) []domain.SurveyResponse
	Len() int
}

type responseKey struct {
	student  string
	courseID string
}

type surveyRepository struct {
	mu      sync.RWMutex
	entries []domain.SurveyResponse
	seen    map[responseKey]struct{}
}

// NewSurveyRepository returns an empty ledger.
func NewSurveyRepository() SurveyRepository {
	return &surveyRepository{seen: make(map[responseKey]struct{})}
}

func (r *surveyRepository) Exists(student, courseID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.seen[responseKey{student, courseID}]
	return ok
}

func (r *surveyRepository) Append(resp domain.SurveyResponse) error {
	key := responseKey{resp.Student, resp.CourseID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[key]; ok {
		return apperrors.NewDuplicateSubmission()
	}
	r.seen[key] = struct{}{}
	r.entries = append(r.entries, resp)
	return nil
}

func (r *surveyRepository) All() []domain.SurveyResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.SurveyResponse(nil), r.entries...)
}

func (r *surveyRepository) ForCourses(courseIDs map[string]struct{}) []domain.SurveyResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SurveyResponse, 0)
	for _, e := range r.entries {
		if _, ok := courseIDs[e.CourseID]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (r *surveyRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
