package nodebuilder

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"

	"github.com/celestiaorg/ledger-node/nodebuilder/ledger"
	"github.com/celestiaorg/ledger-node/nodebuilder/pruner"
)

// WithMetrics enables metrics exporting for the node.
// It must be called before the node is constructed, as it turns on metrics of
// the modules.
func WithMetrics(metricOpts []otlpmetrichttp.Option) fx.Option {
	ledger.MetricsEnabled = true
	pruner.MetricsEnabled = true

	return fx.Options(
		fx.Supply(metricOpts),
		fx.Invoke(InitializeMetrics),
	)
}

// InitializeMetrics initializes the global meter provider.
func InitializeMetrics(
	ctx context.Context,
	lc fx.Lifecycle,
	opts []otlpmetrichttp.Option,
) error {
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(10*time.Second))),
		sdkmetric.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("ledger-node"),
		)),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})

	otel.SetMeterProvider(provider)
	return nil
}
