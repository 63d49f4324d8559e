package worker

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/events"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	"github.com/spec-kit/evaluacion-docente/internal/service"
)

func TestStartEventSubscribersWritesBehind(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "mirror.db"), 0o600, nil)
	require.NoError(t, err)
	defer db.Close()
	mirror, err := repository.NewBoltMirror(db)
	require.NoError(t, err)

	dispatcher := events.NewInMemoryDispatcher()
	StartEventSubscribers(service.NewMirrorService(dispatcher, mirror, zap.NewNop(), nil), nil)

	periods := service.NewPeriodService(service.PeriodDependencies{
		PeriodRepo: repository.NewPeriodRepository(),
		Dispatcher: dispatcher,
	})
	window := domain.EvaluationPeriod{StartDate: "2024-03-01", EndDate: "2024-03-10", IsActive: true}
	_, err = periods.Set(context.Background(), window, domain.RoleAdmin)
	require.NoError(t, err)

	state, err := mirror.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state.Period)
	assert.Equal(t, window, *state.Period)
}

func TestStartEventSubscribersToleratesNil(t *testing.T) {
	assert.NotPanics(t, func() { StartEventSubscribers(nil, nil) })
}
