package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/boxjoy/collection"

// CollectionSnapshot is the subset of collection stats exported as gauges.
type CollectionSnapshot struct {
	OwnedCount int64
	TotalValue float64
	Level      int64
}

// CollectionMetrics holds the instruments for the collection bounded context.
// A nil *CollectionMetrics is valid and records nothing.
type CollectionMetrics struct {
	mutations       metric.Int64Counter
	classifications metric.Int64Counter
	classifyLatency metric.Float64Histogram
}

// NewCollectionMetrics registers the collection instruments on the global meter
// provider. source is polled on every collection cycle for the gauges.
func NewCollectionMetrics(source func() CollectionSnapshot) (*CollectionMetrics, error) {
	meter := otel.Meter(meterName)

	mutations, err := meter.Int64Counter("boxjoy.collection.mutations",
		metric.WithDescription("Committed or failed collection mutations by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: mutations counter: %w", err)
	}

	classifications, err := meter.Int64Counter("boxjoy.classifier.requests",
		metric.WithDescription("Image classification requests by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: classifications counter: %w", err)
	}

	classifyLatency, err := meter.Float64Histogram("boxjoy.classifier.duration",
		metric.WithDescription("Image classification latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: classify histogram: %w", err)
	}

	owned, err := meter.Int64ObservableGauge("boxjoy.collection.owned_items",
		metric.WithDescription("Items with status displayed or stored"))
	if err != nil {
		return nil, fmt.Errorf("metrics: owned gauge: %w", err)
	}
	value, err := meter.Float64ObservableGauge("boxjoy.collection.total_value",
		metric.WithDescription("Sum of prices of owned items"))
	if err != nil {
		return nil, fmt.Errorf("metrics: value gauge: %w", err)
	}
	level, err := meter.Int64ObservableGauge("boxjoy.collection.level",
		metric.WithDescription("Collector level"))
	if err != nil {
		return nil, fmt.Errorf("metrics: level gauge: %w", err)
	}

	if source != nil {
		if _, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
			s := source()
			o.ObserveInt64(owned, s.OwnedCount)
			o.ObserveFloat64(value, s.TotalValue)
			o.ObserveInt64(level, s.Level)
			return nil
		}, owned, value, level); err != nil {
			return nil, fmt.Errorf("metrics: register gauges: %w", err)
		}
	}

	return &CollectionMetrics{
		mutations:       mutations,
		classifications: classifications,
		classifyLatency: classifyLatency,
	}, nil
}

// RecordMutation counts one mutation attempt of the given kind.
func (m *CollectionMetrics) RecordMutation(ctx context.Context, kind string, err error) {
	if m == nil {
		return
	}
	m.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome(err)),
	))
}

// RecordClassification counts one classifier call and its latency.
func (m *CollectionMetrics) RecordClassification(ctx context.Context, d time.Duration, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome(err)))
	m.classifications.Add(ctx, 1, attrs)
	m.classifyLatency.Record(ctx, d.Seconds(), attrs)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
