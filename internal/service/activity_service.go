package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/iftekharanwar/RareCare/internal/events"
	"github.com/iftekharanwar/RareCare/internal/observability"
)

var trackedEvents = []events.EventType{
	events.EventSessionStarted,
	events.EventSessionEnded,
	events.EventTabSelected,
	events.EventSearchChanged,
	events.EventCaseSubmissionStarted,
	events.EventCaseSubmitted,
}

// ActivityService records session and portal events.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range trackedEvents {
		a.dispatcher.Subscribe(eventType, a.handle)
	}
}

func (a *ActivityService) handle(_ context.Context, event events.Event) error {
	a.metrics.RecordAction(string(event.Type))
	a.logger.Debug("activity",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload))
	return nil
}
