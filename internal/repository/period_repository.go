package repository

import (
	"sync"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

// PeriodRepository holds the evaluation period singleton.
type PeriodRepository interface {
	Get() domain.EvaluationPeriod
	Set(period domain.EvaluationPeriod)
}

type periodRepository struct {
	mu     sync.RWMutex
	period *domain.EvaluationPeriod
}

// NewPeriodRepository returns a repository with no period set.
func NewPeriodRepository() PeriodRepository {
	return &periodRepository{}
}

// Get returns the current period, or an inactive zero period if none was ever set.
func (r *periodRepository) Get() domain.EvaluationPeriod {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.period == nil {
		return domain.EvaluationPeriod{IsActive: false}
	}
	return *r.period
}

func (r *periodRepository) Set(period domain.EvaluationPeriod) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.period = &period
}
