package service

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/events"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// PeriodService guards the evaluation period singleton.
type PeriodService struct {
	periods  repository.PeriodRepository
	location *time.Location
	now      func() time.Time
	publisher

	// writeMu orders writes with their events so subscribers see them in commit order.
	writeMu sync.Mutex
}

// PeriodDependencies bundles what the period service needs.
type PeriodDependencies struct {
	PeriodRepo repository.PeriodRepository
	Dispatcher events.Dispatcher
	// Location is the calendar the window is evaluated in. Defaults to UTC.
	Location *time.Location
	Clock    func() time.Time
}

// NewPeriodService constructs the service.
func NewPeriodService(deps PeriodDependencies) *PeriodService {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &PeriodService{
		periods:   deps.PeriodRepo,
		location:  loc,
		now:       now,
		publisher: newPublisher(deps.Dispatcher, now),
	}
}

// Get returns the current period; an unset period is inactive.
func (s *PeriodService) Get() domain.EvaluationPeriod {
	return s.periods.Get()
}

// Set replaces the period wholesale. Only admins may call it; date order is not validated.
func (s *PeriodService) Set(ctx context.Context, period domain.EvaluationPeriod, requesterRole domain.Role) (domain.EvaluationPeriod, error) {
	if requesterRole != domain.RoleAdmin {
		return domain.EvaluationPeriod{}, apperrors.NewForbidden("only administrators can change the evaluation period")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.periods.Set(period)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventPeriodUpdated,
		Actor:   actor(requesterRole, ""),
		Payload: events.PeriodUpdatedPayload{Period: period},
	})
	return period, nil
}

// IsOpen reports whether submissions are accepted right now.
func (s *PeriodService) IsOpen() bool {
	return IsWithinWindow(s.periods.Get(), s.now().In(s.location))
}

// IsWithinWindow is true iff the period is active, both bounds parse and the calendar
// day of now lies in [start, end]. Time of day is ignored.
func IsWithinWindow(period domain.EvaluationPeriod, now time.Time) bool {
	if !period.IsActive {
		return false
	}
	start, err := time.Parse(domain.DateLayout, period.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(domain.DateLayout, period.EndDate)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !today.Before(start) && !today.After(end)
}
