package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/evaluacion-docente/internal/events"
	"github.com/spec-kit/evaluacion-docente/internal/observability"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
)

// MirrorService writes committed mutations behind to a durable mirror. Failures are
// logged and counted; the in-memory state stays authoritative.
type MirrorService struct {
	dispatcher events.Dispatcher
	mirror     repository.Mirror
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewMirrorService creates the service.
func NewMirrorService(dispatcher events.Dispatcher, mirror repository.Mirror, logger *zap.Logger, metrics *observability.Metrics) *MirrorService {
	return &MirrorService{
		dispatcher: dispatcher,
		mirror:     mirror,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (m *MirrorService) RegisterHandlers() {
	if m.dispatcher == nil || m.mirror == nil {
		return
	}
	m.dispatcher.Subscribe(events.EventResponseSubmitted, m.handleResponseSubmitted)
	m.dispatcher.Subscribe(events.EventPeriodUpdated, m.handlePeriodUpdated)
	m.dispatcher.Subscribe(events.EventCourseStatusChanged, m.handleCourseStatusChanged)
}

func (m *MirrorService) handleResponseSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ResponseSubmittedPayload)
	if !ok {
		return m.reject(event)
	}
	m.metrics.RecordResponseAccepted()
	m.report(event, m.mirror.SaveResponse(ctx, payload.Response))
	return nil
}

func (m *MirrorService) handlePeriodUpdated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PeriodUpdatedPayload)
	if !ok {
		return m.reject(event)
	}
	m.report(event, m.mirror.SavePeriod(ctx, payload.Period))
	return nil
}

func (m *MirrorService) handleCourseStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CourseStatusChangedPayload)
	if !ok {
		return m.reject(event)
	}
	m.report(event, m.mirror.SaveCourseStatus(ctx, payload.CourseID, payload.IsSurveyActive))
	return nil
}

func (m *MirrorService) report(event events.Event, err error) {
	if err == nil {
		return
	}
	m.metrics.RecordMirrorFailure(string(event.Type))
	m.logger.Error("mirror write failed",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Error(err))
}

func (m *MirrorService) reject(event events.Event) error {
	err := fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	m.report(event, err)
	return err
}
