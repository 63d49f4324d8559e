package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/evaluacion-docente/internal/config"
	"github.com/spec-kit/evaluacion-docente/internal/events"
)

// RedisPublisher is the subset of *redis.Client used for broadcasting.
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// BroadcastService publishes survey events on a Redis channel for external consumers
// such as dashboards. Student codes are stripped from response events.
type BroadcastService struct {
	dispatcher events.Dispatcher
	client     RedisPublisher
	logger     *zap.Logger
	cfg        config.BroadcastConfig
}

// NewBroadcastService creates the service. A nil client disables broadcasting.
func NewBroadcastService(dispatcher events.Dispatcher, client RedisPublisher, logger *zap.Logger, cfg config.BroadcastConfig) *BroadcastService {
	return &BroadcastService{
		dispatcher: dispatcher,
		client:     client,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (b *BroadcastService) RegisterHandlers() {
	if b.dispatcher == nil || b.client == nil || strings.TrimSpace(b.cfg.Channel) == "" {
		return
	}
	b.dispatcher.Subscribe(events.EventResponseSubmitted, b.handle)
	b.dispatcher.Subscribe(events.EventPeriodUpdated, b.handle)
	b.dispatcher.Subscribe(events.EventCourseStatusChanged, b.handle)
}

func (b *BroadcastService) handle(ctx context.Context, event events.Event) error {
	msg, err := json.Marshal(anonymize(event))
	if err != nil {
		b.logger.Warn("broadcast encode failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		return nil
	}
	if err := b.client.Publish(ctx, b.cfg.Channel, msg).Err(); err != nil {
		b.logger.Warn("broadcast publish failed",
			zap.String("channel", b.cfg.Channel),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
	return nil
}

// anonymize drops identities from response events.
func anonymize(event events.Event) events.Event {
	if p, ok := event.Payload.(events.ResponseSubmittedPayload); ok {
		p.Response.Student = ""
		p.Response.Answers.Comment = ""
		event.Payload = p
		event.Actor.Identifier = ""
	}
	return event
}
