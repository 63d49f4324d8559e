package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/events"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

func TestIsWithinWindow(t *testing.T) {
	day := func(y int, m time.Month, d, h int) time.Time { return time.Date(y, m, d, h, 0, 0, 0, time.UTC) }

	cases := []struct {
		name   string
		period domain.EvaluationPeriod
		now    time.Time
		want   bool
	}{
		{"inside", marchWindow, day(2024, 3, 5, 12), true},
		{"first day", marchWindow, day(2024, 3, 1, 0), true},
		{"last day late evening", marchWindow, day(2024, 3, 10, 23), true},
		{"day before", marchWindow, day(2024, 2, 29, 23), false},
		{"day after", marchWindow, day(2024, 3, 11, 0), false},
		{"inactive", domain.EvaluationPeriod{StartDate: "2024-03-01", EndDate: "2024-03-10"}, day(2024, 3, 5, 12), false},
		{"unparseable start", domain.EvaluationPeriod{StartDate: "03/01/2024", EndDate: "2024-03-10", IsActive: true}, day(2024, 3, 5, 12), false},
		{"unparseable end", domain.EvaluationPeriod{StartDate: "2024-03-01", EndDate: "", IsActive: true}, day(2024, 3, 5, 12), false},
		{"inverted range", domain.EvaluationPeriod{StartDate: "2024-03-10", EndDate: "2024-03-01", IsActive: true}, day(2024, 3, 5, 12), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsWithinWindow(tc.period, tc.now))
		})
	}
}

func TestPeriodServiceDefaultsToInactive(t *testing.T) {
	f := newFixture(march5)
	assert.False(t, f.periods.Get().IsActive)
	assert.False(t, f.periods.IsOpen())
}

func TestPeriodServiceSetRequiresAdmin(t *testing.T) {
	f := newFixture(march5)

	for _, role := range []domain.Role{domain.RoleStudent, domain.RoleProfessor, ""} {
		_, err := f.periods.Set(context.Background(), marchWindow, role)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
	}
	assert.False(t, f.periods.Get().IsActive)
	assert.Empty(t, f.dispatcher.types())

	got, err := f.periods.Set(context.Background(), marchWindow, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, marchWindow, got)
	assert.Equal(t, marchWindow, f.periods.Get())
	assert.True(t, f.periods.IsOpen())
	assert.Equal(t, []events.EventType{events.EventPeriodUpdated}, f.dispatcher.types())
}

func TestPeriodServiceUsesConfiguredCalendar(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)

	repo := repository.NewPeriodRepository()
	repo.Set(marchWindow)
	// 02:00 UTC on the 11th is still the 10th in Lima.
	now := time.Date(2024, time.March, 11, 2, 0, 0, 0, time.UTC)

	utc := NewPeriodService(PeriodDependencies{PeriodRepo: repo, Clock: func() time.Time { return now }})
	local := NewPeriodService(PeriodDependencies{PeriodRepo: repo, Location: lima, Clock: func() time.Time { return now }})

	assert.False(t, utc.IsOpen())
	assert.True(t, local.IsOpen())
}
