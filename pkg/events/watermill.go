// Package events provides a pub/sub EventBus built on Watermill.
//
// Transports:
//   - channel (default): in-process Go channels. Subscribers must live in the
//     publishing process; nothing survives a restart.
//   - sql: PostgreSQL tables via watermill-sql, so cmd/worker can consume
//     events published by cmd/api. All instances sharing a ConsumerGroup
//     (default: <service>-consumer) are load-balanced.
//
// Handlers should be idempotent. On failure the bus retries up to 3 times with
// exponential backoff. After that, the sql transport Nacks the message for
// redelivery; the channel transport drops it, since a Nack there redelivers
// immediately and forever.
//
// OTel context propagation: trace context is injected into message metadata on Publish
// and extracted in Subscribe, enabling end-to-end distributed tracing across processes.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/logger"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	shutdownTimeout = 30 * time.Second
	channelBuffer   = 64
)

// EventBus publishes and subscribes to Watermill topics over the configured transport.
type EventBus struct {
	publisher     message.Publisher
	subscriber    message.Subscriber
	db            *sql.DB // nil for the channel transport
	log           logger.Logger
	wg            sync.WaitGroup
	transport     string
	nackOnFailure bool
	retryDelay    time.Duration
}

// New builds the EventBus selected by cfg.EventTransport. db is required for
// the sql transport and ignored otherwise.
func New(cfg *config.Config, db *sql.DB, log logger.Logger) (*EventBus, error) {
	switch cfg.EventTransport {
	case config.TransportSQL:
		if db == nil {
			return nil, fmt.Errorf("events: sql transport requires a database")
		}
		return NewSQLBus(db, cfg.ServiceName+"-consumer", log)
	case config.TransportChannel, "":
		return NewChannelBus(log), nil
	default:
		return nil, fmt.Errorf("events: unknown transport %q", cfg.EventTransport)
	}
}

// NewChannelBus returns an in-process EventBus. Every subscriber receives every message.
func NewChannelBus(log logger.Logger) *EventBus {
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: channelBuffer,
	}, &slogAdapter{log: log})

	return &EventBus{
		publisher:  ch,
		subscriber: ch,
		log:        log,
		transport:  config.TransportChannel,
		retryDelay: retryBaseDelay,
	}
}

// NewSQLBus initializes a Watermill SQL publisher and subscriber on db.
// Schema tables are created automatically on first use.
//
// All instances with the same consumerGroup share the work, so each
// message is processed by exactly one instance (load-balanced, not broadcast).
func NewSQLBus(db *sql.DB, consumerGroup string, log logger.Logger) (*EventBus, error) {
	wlog := &slogAdapter{log: log}

	pub, err := watermillsql.NewPublisher(
		db,
		watermillsql.PublisherConfig{
			SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
			AutoInitializeSchema: true,
		},
		wlog,
	)
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}

	sub, err := watermillsql.NewSubscriber(
		db,
		watermillsql.SubscriberConfig{
			SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
			OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
			InitializeSchema: true,
			ConsumerGroup:    consumerGroup,
		},
		wlog,
	)
	if err != nil {
		_ = pub.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}

	return &EventBus{
		publisher:     pub,
		subscriber:    sub,
		db:            db,
		log:           log,
		transport:     config.TransportSQL,
		nackOnFailure: true,
		retryDelay:    retryBaseDelay,
	}, nil
}

// Transport returns the transport name ("channel" or "sql").
func (q *EventBus) Transport() string {
	return q.transport
}

// Publish sends one or more messages to the given topic.
// OTel trace context from ctx is injected into each message's metadata so
// the receiving subscriber can restore the trace and continue the span tree.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// PublishJSON marshals payload into a new message with a random UUID and publishes it.
func (q *EventBus) PublishJSON(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: marshal %s payload: %w", topic, err)
	}
	return q.Publish(ctx, topic, message.NewMessage(watermill.NewUUID(), data))
}

// Subscribe registers handler to process messages from topic asynchronously.
// The handler receives a context with the publisher's OTel trace restored from
// message metadata, enabling distributed tracing across process boundaries.
//
// Ack/Nack is managed by the bus:
//   - handler returns nil   → Ack (message consumed)
//   - handler returns error → retried up to 3× with exponential backoff (1s, 2s, 4s)
//   - all retries exhausted → Nack (sql) or Ack (channel) + error forwarded to the returned channel
//
// The returned error channel is buffered (capacity 100). Callers must drain it:
//
//	errCh, err := bus.Subscribe(ctx, topic, handler)
//	go func() { for err := range errCh { log.ErrorContext(ctx, "subscriber error", "error", err) } }()
//
// All in-flight handlers complete before Close() returns.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)
	propagator := otel.GetTextMapPropagator()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			// Restore the publisher's trace context from message metadata.
			carrier := propagation.MapCarrier{}
			for k, v := range msg.Metadata {
				carrier[k] = v
			}
			msgCtx := propagator.Extract(ctx, carrier)

			if err := retryWithBackoff(msgCtx, msg, handler, maxRetries, q.retryDelay, q.log); err != nil {
				if q.nackOnFailure {
					msg.Nack()
				} else {
					msg.Ack()
				}
				select {
				case errCh <- err:
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
			} else {
				msg.Ack()
			}
		}
	}()

	return errCh, nil
}

// retryWithBackoff calls handler up to maxRetries times with exponential backoff.
// Returns nil on first success; returns the last error after all retries exhaust.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler func(context.Context, *message.Message) error,
	maxRetries int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt < maxRetries {
			log.WarnContext(ctx, "events: handler failed, retrying",
				"attempt", attempt,
				"max_retries", maxRetries,
				"next_delay", delay,
				"message_uuid", msg.UUID,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", maxRetries, err)
}

// Ping checks the EventBus transport health. The channel transport is always healthy.
func (q *EventBus) Ping(ctx context.Context) error {
	if q.db == nil {
		return nil
	}
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close gracefully shuts down the EventBus.
// Shutdown order: stop subscriber → wait for in-flight handlers (30 s max) →
// close publisher. The database handle is owned by the caller.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	select {
	case <-done:
	case <-ctx.Done():
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}

	// The channel transport uses one object for both sides; it is already closed.
	if q.transport == config.TransportChannel {
		return nil
	}
	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return nil
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
