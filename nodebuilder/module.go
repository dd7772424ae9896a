package nodebuilder

import (
	"context"

	"go.uber.org/fx"

	"github.com/celestiaorg/ledger-node/nodebuilder/gateway"
	"github.com/celestiaorg/ledger-node/nodebuilder/ledger"
	"github.com/celestiaorg/ledger-node/nodebuilder/pruner"
)

func ConstructModule(cfg *Config, store Store) fx.Option {
	baseComponents := fx.Options(
		fx.Provide(func(lc fx.Lifecycle) context.Context {
			ctx, cancel := context.WithCancel(context.Background())
			lc.Append(fx.StopHook(cancel))
			return ctx
		}),
		fx.Supply(cfg),
		fx.Provide(store.Datastore),
		// modules provided by the node
		ledger.ConstructModule(&cfg.Ledger),
		pruner.ConstructModule(&cfg.Pruner),
		gateway.ConstructModule(&cfg.Gateway),
	)

	return fx.Module(
		"node",
		baseComponents,
	)
}
