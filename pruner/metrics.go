package pruner

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	domainKey = "domain"
	stageKey  = "stage"
	failedKey = "failed"

	stagePrune  = "prune"
	stageCommit = "commit"
)

var (
	meter = otel.Meter("storage_pruner")
)

type metrics struct {
	prunedCounter metric.Int64Counter
	failedCounter metric.Int64Counter
	cycleTime     metric.Float64Histogram

	minReadable metric.Int64ObservableGauge

	clientReg metric.Registration
}

// WithMetrics enables otel metrics of the pruner Service. It must be called
// before Start.
func (s *Service) WithMetrics() error {
	prunedCounter, err := meter.Int64Counter("pruner_pruned_versions",
		metric.WithDescription("pruner pruned versions counter"))
	if err != nil {
		return err
	}

	failedCounter, err := meter.Int64Counter("pruner_failed_cycles",
		metric.WithDescription("pruner failed pruning cycles counter"))
	if err != nil {
		return err
	}

	cycleTime, err := meter.Float64Histogram("pruner_cycle_time",
		metric.WithDescription("pruner cycle duration histogram(s)"),
		metric.WithUnit("s"))
	if err != nil {
		return err
	}

	minReadable, err := meter.Int64ObservableGauge("pruner_min_readable_version",
		metric.WithDescription("pruner least readable version per domain"))
	if err != nil {
		return err
	}

	callback := func(_ context.Context, observer metric.Observer) error {
		for d, v := range s.progress.Read() {
			if !v.Valid {
				continue
			}
			observer.ObserveInt64(minReadable, int64(v.Version),
				metric.WithAttributes(attribute.String(domainKey, Domain(d).String())))
		}
		return nil
	}

	clientReg, err := meter.RegisterCallback(callback, minReadable)
	if err != nil {
		return err
	}

	s.metrics = &metrics{
		prunedCounter: prunedCounter,
		failedCounter: failedCounter,
		cycleTime:     cycleTime,
		minReadable:   minReadable,
		clientReg:     clientReg,
	}
	return nil
}

func (m *metrics) close() error {
	if m == nil {
		return nil
	}

	return m.clientReg.Unregister()
}

func (m *metrics) observePruned(ctx context.Context, d Domain, versions uint64) {
	if m == nil || versions == 0 {
		return
	}
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	m.prunedCounter.Add(ctx, int64(versions), metric.WithAttributes(
		attribute.String(domainKey, d.String())))
}

func (m *metrics) observePruneFailure(ctx context.Context, d Domain) {
	if m == nil {
		return
	}
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	m.failedCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String(stageKey, stagePrune),
		attribute.String(domainKey, d.String())))
}

func (m *metrics) observeCommitFailure(ctx context.Context) {
	if m == nil {
		return
	}
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	m.failedCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String(stageKey, stageCommit)))
}

func (m *metrics) observeCycle(ctx context.Context, dur time.Duration, failed bool) {
	if m == nil {
		return
	}
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	m.cycleTime.Record(ctx, dur.Seconds(), metric.WithAttributes(
		attribute.Bool(failedKey, failed)))
}
