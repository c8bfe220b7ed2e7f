package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	otelkafka "github.com/Trendyol/otel-kafka-konsumer"
	"github.com/meatkonnex/backend/internal/domain/order"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/meatkonnex/backend/internal/infrastructure/config"
	kafkago "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// MessageWriter writes a single Kafka message
type MessageWriter interface {
	WriteMessage(ctx context.Context, msg kafkago.Message) error
	Close() error
}

// NewKafkaWriter builds a traced Kafka writer for the configured topic.
// Trace context is injected into message headers.
func NewKafkaWriter(cfg config.KafkaConfig, serviceName string, tp trace.TracerProvider) (MessageWriter, error) {
	base := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}

	writer, err := otelkafka.NewWriter(base,
		otelkafka.WithTracerProvider(tp),
		otelkafka.WithPropagator(propagation.TraceContext{}),
		otelkafka.WithAttributes([]attribute.KeyValue{
			semconv.MessagingDestinationNameKey.String(cfg.Topic),
			attribute.String("messaging.kafka.client_id", serviceName),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka writer: %w", err)
	}
	return writer, nil
}

// KafkaForwarder publishes order events to Kafka keyed by order id
type KafkaForwarder struct {
	writer  MessageWriter
	timeout time.Duration
	logger  *zap.Logger
}

// NewKafkaForwarder creates a forwarder. timeout bounds each write; zero means
// only the caller's context applies.
func NewKafkaForwarder(writer MessageWriter, timeout time.Duration, logger *zap.Logger) *KafkaForwarder {
	return &KafkaForwarder{
		writer:  writer,
		timeout: timeout,
		logger:  logger.Named("kafka"),
	}
}

// Handle serialises the event to JSON and writes it
func (f *KafkaForwarder) Handle(ctx context.Context, event shared.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventType(), err)
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	msg := kafkago.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.AggregateID()), 10)),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType())},
			{Key: "event_id", Value: []byte(event.EventID().String())},
		},
		Time: event.OccurredAt(),
	}

	if err := f.writer.WriteMessage(ctx, msg); err != nil {
		return fmt.Errorf("write %s to kafka: %w", event.EventType(), err)
	}

	f.logger.Debug("Event forwarded",
		zap.String("event_type", event.EventType()),
		zap.Uint("order_id", event.AggregateID()),
	)
	return nil
}

// EventTypes lists the order events that leave the process
func (f *KafkaForwarder) EventTypes() []string {
	return []string{order.EventTypeOrderPlaced, order.EventTypeOrderPaymentUpdated}
}

// Close closes the underlying writer
func (f *KafkaForwarder) Close() error {
	return f.writer.Close()
}

var _ shared.EventHandler = (*KafkaForwarder)(nil)
