package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/pkg/logger"
)

// Publisher wraps Kafka producer and implements domain.EventPublisher
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducerConfig returns the producer settings used by the publisher
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000
	return config
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("topic", topic).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer, topic), nil
}

// NewPublisherWithProducer creates a publisher on an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{producer: producer, topic: topic}
}

// PublishStockEntryRecorded publishes a stock entry recorded event with tracing
func (p *Publisher) PublishStockEntryRecorded(ctx context.Context, entry *domain.StockEntry) error {
	event := StockEntryRecordedEvent{
		EventID:       uuid.NewString(),
		EventType:     EventTypeStockEntryRecorded,
		EntryID:       entry.ID,
		EntryDate:     entry.EntryDate.String(),
		DescriptionID: entry.DescriptionID,
		ColorID:       entry.ColorID,
		PurchaseQty:   entry.PurchaseQty,
		UsageQty:      entry.UsageQty,
		Reason:        entry.Reason,
		Timestamp:     time.Now().UTC(),
	}
	key := fmt.Sprintf("description_%d", entry.DescriptionID)

	return p.publish(ctx, event.EventType, event.EventID, key, event,
		attribute.Int64("entry.id", int64(entry.ID)),
		attribute.Int64("description.id", int64(entry.DescriptionID)),
	)
}

// PublishOpeningStockRolledOver publishes a rollover event with tracing
func (p *Publisher) PublishOpeningStockRolledOver(ctx context.Context, yearMonth string, updated int) error {
	event := OpeningStockRolledOverEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOpeningStockRolledOver,
		YearMonth: yearMonth,
		Updated:   updated,
		Timestamp: time.Now().UTC(),
	}

	return p.publish(ctx, event.EventType, event.EventID, "rollover_"+yearMonth, event,
		attribute.String("rollover.year_month", yearMonth),
		attribute.Int("rollover.updated", updated),
	)
}

func (p *Publisher) publish(ctx context.Context, eventType, eventID, key string, event any, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", p.topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", p.topic).
			Str("event_type", eventType).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
