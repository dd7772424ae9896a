package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	failedKey = "failed"
	sizeKey   = "batch_size"
)

var meter = otel.Meter("store")

type metrics struct {
	write metric.Float64Histogram
}

func (s *Store) WithMetrics() error {
	write, err := meter.Float64Histogram("ledger_store_write_time_histogram",
		metric.WithDescription("ledger store batch write time histogram(s)"))
	if err != nil {
		return err
	}

	s.metrics = &metrics{
		write: write,
	}
	return nil
}

func (m *metrics) observeWrite(ctx context.Context, dur time.Duration, size int, failed bool) {
	if m == nil {
		return
	}
	if ctx.Err() != nil {
		ctx = context.Background()
	}

	m.write.Record(ctx, dur.Seconds(), metric.WithAttributes(
		attribute.Bool(failedKey, failed),
		attribute.Int(sizeKey, size)))
}
