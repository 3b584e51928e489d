package consumer

import (
	"context"
	"log/slog"
	"time"

	"github.com/NellsonAss/dd-scheduling/libs/kafkax"
	"github.com/NellsonAss/dd-scheduling/services/availability-service/internal/inbox"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultGroupID = "availability-service"

	readBackoffMin = 1 * time.Second
	readBackoffMax = 30 * time.Second
)

type Handler func(ctx context.Context, msg kafka.Message) error

// Consumer ingests people-service events that affect availability. It runs
// against a single topic (day-off approvals by default) and dedupes
// redeliveries through the inbox table before invoking the handler.
type Consumer struct {
	reader  *kafka.Reader
	logger  *slog.Logger
	inbox   *inbox.Repository
	handler Handler
	group   string
}

type Config struct {
	Brokers string
	GroupID string
	Topic   string
}

func New(logger *slog.Logger, inboxRepo *inbox.Repository, cfg Config, handler Handler) *Consumer {
	if cfg.GroupID == "" {
		cfg.GroupID = defaultGroupID
	}
	if cfg.Topic == "" {
		cfg.Topic = TopicDayOffApproved
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkax.SplitBrokers(cfg.Brokers),
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Consumer{
		reader:  reader,
		logger:  logger,
		inbox:   inboxRepo,
		handler: handler,
		group:   cfg.GroupID,
	}
}

// nextReadBackoff doubles the wait after consecutive read failures, capped
// so a long broker outage keeps polling every readBackoffMax.
func nextReadBackoff(current time.Duration) time.Duration {
	if current <= 0 {
		return readBackoffMin
	}
	next := current * 2
	if next > readBackoffMax {
		return readBackoffMax
	}
	return next
}

func (c *Consumer) Run(ctx context.Context) {
	defer c.reader.Close()

	var backoff time.Duration
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			backoff = nextReadBackoff(backoff)
			c.logger.Error("kafka read error", "err", err, "retry_in", backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			continue
		}
		backoff = 0

		c.consume(ctx, msg)
	}
}

func (c *Consumer) consume(ctx context.Context, msg kafka.Message) {
	meta := kafkax.ExtractEventMeta(msg)

	ctxMsg := kafkax.ExtractTraceContext(ctx, msg)
	ctxSpan, span := otel.Tracer("availability-consumer").Start(ctxMsg, "kafka.consume",
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", msg.Topic),
			attribute.String("messaging.kafka.consumer.group", c.group),
			attribute.String("event.type", meta.EventType),
		),
	)
	defer span.End()

	ok, err := c.inbox.Record(ctxSpan, meta.EventID, meta.EventType)
	if err != nil {
		c.logger.Error("inbox record failed", "err", err)
		span.RecordError(err)
		return
	}
	if !ok {
		c.logger.Info("duplicate event ignored", "event_id", meta.EventID, "event_type", meta.EventType)
		return
	}

	if err := c.handler(ctxSpan, msg); err != nil {
		c.logger.Error("handler error", "err", err, "event_id", meta.EventID)
		span.RecordError(err)
	}
}
