package service

import (
	"context"
	"sync"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/events"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// CourseService exposes the derived course index and the per-course survey flag.
type CourseService struct {
	directory repository.DirectoryRepository
	publisher

	// writeMu orders toggles with their events so subscribers see them in commit order.
	writeMu sync.Mutex
}

// CourseDependencies bundles repositories for the course service.
type CourseDependencies struct {
	DirectoryRepo repository.DirectoryRepository
	Dispatcher    events.Dispatcher
}

// NewCourseService constructs the service.
func NewCourseService(deps CourseDependencies) *CourseService {
	return &CourseService{
		directory: deps.DirectoryRepo,
		publisher: newPublisher(deps.Dispatcher, nil),
	}
}

// List returns every known course in index order.
func (s *CourseService) List() []domain.Course {
	return s.directory.CourseIndex().List()
}

// Toggle sets the survey flag on every record referencing courseID.
func (s *CourseService) Toggle(ctx context.Context, courseID string, active bool) (domain.Course, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if !s.directory.ToggleCourseSurvey(courseID, active) {
		return domain.Course{}, apperrors.NewNotFound("course", map[string]any{"course_id": courseID})
	}
	course, ok := s.directory.CourseIndex().Lookup(courseID)
	if !ok {
		return domain.Course{}, apperrors.NewNotFound("course", map[string]any{"course_id": courseID})
	}
	s.publishEvent(ctx, events.Event{
		Type:  events.EventCourseStatusChanged,
		Actor: actor(domain.RoleAdmin, ""),
		Payload: events.CourseStatusChangedPayload{
			CourseID:       courseID,
			IsSurveyActive: active,
		},
	})
	return course, nil
}
