package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// TestRetryWithBackoff_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryWithBackoff_SuccessAfterRetries verifies retry continues until success.
func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("redis: connection refused")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger()); err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryWithBackoff_ExhaustsRetries verifies the last error is wrapped after all retries fail.
func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	permanent := errors.New("permanent error")
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return permanent
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if !errors.Is(err, permanent) {
		t.Fatalf("expected wrapped permanent error, got %v", err)
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

// TestRetryWithBackoff_ContextCancelled verifies retry stops when context is canceled.
func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	if err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, nopLogger()); err == nil {
		t.Fatal("expected error from canceled context")
	}
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

func TestNew_SelectsTransport(t *testing.T) {
	bus, err := New(&config.Config{EventTransport: config.TransportChannel}, nil, nopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer bus.Close() //nolint:errcheck
	if bus.Transport() != config.TransportChannel {
		t.Errorf("expected channel transport, got %q", bus.Transport())
	}
	if err := bus.Ping(context.Background()); err != nil {
		t.Errorf("channel bus ping: %v", err)
	}

	if _, err := New(&config.Config{EventTransport: config.TransportSQL}, nil, nopLogger()); err == nil {
		t.Error("expected error for sql transport without database")
	}
	if _, err := New(&config.Config{EventTransport: "kafka"}, nil, nopLogger()); err == nil {
		t.Error("expected error for unknown transport")
	}
}

type payload struct {
	Kind string `json:"kind"`
}

// TestChannelBus_PublishSubscribe verifies JSON payloads and trace context reach subscribers.
func TestChannelBus_PublishSubscribe(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	bus := NewChannelBus(nopLogger())
	defer bus.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type received struct {
		kind    string
		traceID trace.TraceID
	}
	got := make(chan received, 1)
	if _, err := bus.Subscribe(ctx, "collection.changed", func(ctx context.Context, msg *message.Message) error {
		var p payload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		got <- received{kind: p.Kind, traceID: trace.SpanFromContext(ctx).SpanContext().TraceID()}
		return nil
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	pubCtx, span := otel.Tracer("test").Start(ctx, "mutation")
	defer span.End()
	if err := bus.PublishJSON(pubCtx, "collection.changed", payload{Kind: "item.created"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case r := <-got:
		if r.kind != "item.created" {
			t.Errorf("unexpected kind %q", r.kind)
		}
		if r.traceID != span.SpanContext().TraceID() {
			t.Errorf("trace ID not propagated: want %s, got %s", span.SpanContext().TraceID(), r.traceID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

// TestChannelBus_FailedHandlerIsNotRedelivered verifies the channel transport drops a
// message after retries instead of looping on Nack.
func TestChannelBus_FailedHandlerIsNotRedelivered(t *testing.T) {
	bus := NewChannelBus(nopLogger())
	bus.retryDelay = time.Millisecond
	defer bus.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	errCh, err := bus.Subscribe(ctx, "t", func(context.Context, *message.Message) error {
		calls.Add(1)
		return errors.New("always fails")
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := bus.PublishJSON(ctx, "t", payload{Kind: "x"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected handler error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for handler error")
	}

	time.Sleep(50 * time.Millisecond)
	if n := calls.Load(); n != maxRetries {
		t.Errorf("expected exactly %d attempts, got %d", maxRetries, n)
	}
}
