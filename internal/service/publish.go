package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/events"
)

// publisher stamps and forwards events. A nil dispatcher drops them.
type publisher struct {
	dispatcher events.Dispatcher
	now        func() time.Time
}

func newPublisher(dispatcher events.Dispatcher, now func() time.Time) publisher {
	if now == nil {
		now = time.Now
	}
	return publisher{dispatcher: dispatcher, now: now}
}

// publishEvent never fails the caller: subscribers run after the state change committed.
func (p publisher) publishEvent(ctx context.Context, event events.Event) {
	if p.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now()
	}
	_ = p.dispatcher.Publish(ctx, event)
}

func actor(role domain.Role, identifier string) events.Actor {
	return events.Actor{Role: role, Identifier: identifier}
}
