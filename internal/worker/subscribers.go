package worker

import (
	"github.com/spec-kit/evaluacion-docente/internal/service"
)

// StartEventSubscribers registers the write-behind mirror and the Redis broadcast
// on the dispatcher. Either may be nil.
func StartEventSubscribers(mirror *service.MirrorService, broadcast *service.BroadcastService) {
	if mirror != nil {
		mirror.RegisterHandlers()
	}
	if broadcast != nil {
		broadcast.RegisterHandlers()
	}
}
