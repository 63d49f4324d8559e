package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

func TestPeriodRepositoryReplacesWholesale(t *testing.T) {
	repo := NewPeriodRepository()
	assert.Equal(t, domain.EvaluationPeriod{}, repo.Get())

	repo.Set(domain.EvaluationPeriod{StartDate: "2024-03-01", EndDate: "2024-03-10", IsActive: true})
	repo.Set(domain.EvaluationPeriod{StartDate: "2024-04-01"})

	assert.Equal(t, domain.EvaluationPeriod{StartDate: "2024-04-01"}, repo.Get())
}
