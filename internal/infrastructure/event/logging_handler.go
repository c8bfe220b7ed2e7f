package event

import (
	"context"

	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/meatkonnex/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LoggingHandler writes every domain event to the log
type LoggingHandler struct {
	logger *zap.Logger
}

// NewLoggingHandler creates a LoggingHandler
func NewLoggingHandler(log *zap.Logger) *LoggingHandler {
	return &LoggingHandler{logger: log.Named("events")}
}

// Handle logs the event
func (h *LoggingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.Uint("aggregate_id", event.AggregateID()),
	}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	h.logger.Info("Domain event", fields...)
	return nil
}

// EventTypes returns nil so the handler receives every event
func (h *LoggingHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*LoggingHandler)(nil)
