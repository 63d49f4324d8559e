package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
)

// Seed is the startup content of the directory, the period and the ledger.
type Seed struct {
	Students   []domain.Student
	Professors []domain.Professor
	Admins     []domain.Admin
	Period     *domain.EvaluationPeriod
	Responses  []domain.SurveyResponse
}

// StateDependencies bundles the repositories restored at startup.
type StateDependencies struct {
	DirectoryRepo repository.DirectoryRepository
	SurveyRepo    repository.SurveyRepository
	PeriodRepo    repository.PeriodRepository
	Mirror        repository.Mirror
	Logger        *zap.Logger
}

// RestoreSummary reports what was loaded.
type RestoreSummary struct {
	Students          int
	Professors        int
	Admins            int
	Courses           int
	Responses         int
	MirroredResponses int
	SkippedResponses  int
}

// Restore fills the repositories from the seed, then overlays whatever the mirror
// recorded. Mirror entries win for the period and course flags; responses already
// present in the seed are skipped.
func Restore(ctx context.Context, seed Seed, deps StateDependencies) (RestoreSummary, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	deps.DirectoryRepo.Replace(seed.Students, seed.Professors, seed.Admins)
	if seed.Period != nil {
		deps.PeriodRepo.Set(*seed.Period)
	}

	summary := RestoreSummary{
		Students:   len(seed.Students),
		Professors: len(seed.Professors),
		Admins:     len(seed.Admins),
	}
	for _, resp := range seed.Responses {
		if appendRestored(deps.SurveyRepo, resp) {
			summary.Responses++
		} else {
			summary.SkippedResponses++
		}
	}

	if deps.Mirror != nil {
		state, err := deps.Mirror.Load(ctx)
		if err != nil {
			return summary, fmt.Errorf("load mirror: %w", err)
		}
		for _, resp := range state.Responses {
			if appendRestored(deps.SurveyRepo, resp) {
				summary.MirroredResponses++
			} else {
				summary.SkippedResponses++
			}
		}
		if state.Period != nil {
			deps.PeriodRepo.Set(*state.Period)
		}
		for id, active := range state.CourseStatus {
			if !deps.DirectoryRepo.ToggleCourseSurvey(id, active) {
				logger.Warn("mirrored course status for unknown course", zap.String("course_id", id))
			}
		}
	}

	summary.Courses = deps.DirectoryRepo.CourseIndex().Len()
	return summary, nil
}

func appendRestored(ledger repository.SurveyRepository, resp domain.SurveyResponse) bool {
	if resp.ID == "" {
		resp.ID = uuid.NewString()
	}
	return ledger.Append(resp) == nil
}
