package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/events"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// SubmissionService validates and records survey responses.
type SubmissionService struct {
	directory repository.DirectoryRepository
	surveys   repository.SurveyRepository
	periods   *PeriodService
	now       func() time.Time
	publisher
}

// SubmissionDependencies bundles collaborators for the submission service.
type SubmissionDependencies struct {
	DirectoryRepo repository.DirectoryRepository
	SurveyRepo    repository.SurveyRepository
	Periods       *PeriodService
	Dispatcher    events.Dispatcher
	Clock         func() time.Time
}

// NewSubmissionService constructs the service.
func NewSubmissionService(deps SubmissionDependencies) *SubmissionService {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &SubmissionService{
		directory: deps.DirectoryRepo,
		surveys:   deps.SurveyRepo,
		periods:   deps.Periods,
		now:       now,
		publisher: newPublisher(deps.Dispatcher, now),
	}
}

// Submit runs the validation pipeline in a fixed order and appends the response.
// The first failing check determines the returned error.
func (s *SubmissionService) Submit(ctx context.Context, studentCode, courseID string, rawAnswers map[string]any) (domain.Ack, error) {
	if !s.periods.IsOpen() {
		return domain.Ack{}, apperrors.NewPeriodClosed()
	}
	if studentCode == "" || courseID == "" || rawAnswers == nil {
		return domain.Ack{}, apperrors.NewBadRequest("student, courseId and answers are required")
	}

	course, ok := s.directory.CourseIndex().Lookup(courseID)
	if !ok {
		return domain.Ack{}, apperrors.NewCourseNotFound(courseID)
	}
	if !course.IsSurveyActive {
		return domain.Ack{}, apperrors.NewSurveyDisabled(courseID)
	}
	student, ok := s.directory.StudentByCode(studentCode)
	if !ok || !student.EnrolledIn(courseID) {
		return domain.Ack{}, apperrors.NewForbidden("student is not enrolled in this course")
	}

	answers, err := parseAnswers(rawAnswers)
	if err != nil {
		return domain.Ack{}, err
	}

	if s.surveys.Exists(studentCode, courseID) {
		return domain.Ack{}, apperrors.NewDuplicateSubmission()
	}

	resp := domain.SurveyResponse{
		ID:          uuid.NewString(),
		Student:     studentCode,
		CourseID:    courseID,
		Answers:     answers,
		SubmittedAt: s.now().UTC(),
	}
	// Append re-checks under its own lock; a concurrent twin loses here.
	if err := s.surveys.Append(resp); err != nil {
		return domain.Ack{}, err
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventResponseSubmitted,
		Actor:   actor(domain.RoleStudent, studentCode),
		Payload: events.ResponseSubmittedPayload{Response: resp},
	})
	return domain.Ack{ResponseID: resp.ID, SubmittedAt: resp.SubmittedAt}, nil
}

func parseAnswers(raw map[string]any) (domain.Answers, error) {
	var answers domain.Answers
	for _, key := range domain.QuestionKeys {
		score, ok := coerceScore(raw[key])
		if !ok || score < domain.MinScore || score > domain.MaxScore {
			return domain.Answers{}, apperrors.NewInvalidAnswer(key)
		}
		answers.SetScore(key, score)
	}

	switch c := raw[domain.CommentKey].(type) {
	case nil:
	case string:
		answers.Comment = strings.TrimSpace(c)
	default:
		return domain.Answers{}, apperrors.NewInvalidAnswer(domain.CommentKey)
	}
	return answers, nil
}

// coerceScore accepts integral numbers and numeric strings.
func coerceScore(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return integral(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func integral(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
