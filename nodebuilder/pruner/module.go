package pruner

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/fx"

	"github.com/celestiaorg/ledger-node/pruner"
)

var log = logging.Logger("module/pruner")

func ConstructModule(cfg *Config) fx.Option {
	if err := cfg.Validate(); err != nil {
		return fx.Error(err)
	}

	return fx.Module("pruner",
		fx.Supply(cfg),
		fx.Provide(newRegistry),
		fx.Provide(fx.Annotate(
			newPrunerService,
			fx.OnStart(func(ctx context.Context, p *pruner.Service) error {
				return p.Start(ctx)
			}),
			fx.OnStop(func(ctx context.Context, p *pruner.Service) error {
				return p.Stop(ctx)
			}),
		)),
		// This is necessary to invoke the pruner service as independent thanks to a
		// quirk in FX.
		fx.Invoke(func(_ *pruner.Service) {}),
	)
}
