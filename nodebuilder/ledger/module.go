package ledger

import (
	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	"go.uber.org/fx"

	"github.com/celestiaorg/ledger-node/ledgerdb"
	"github.com/celestiaorg/ledger-node/pruner"
	"github.com/celestiaorg/ledger-node/store"
)

var storePrefix = datastore.NewKey("ledgerdb")

func ConstructModule(cfg *Config) fx.Option {
	if err := cfg.Validate(); err != nil {
		return fx.Error(err)
	}

	return fx.Module("ledger",
		fx.Supply(cfg),
		fx.Provide(newStore),
		fx.Provide(func(cfg *Config, s *store.Store, p *pruner.Service) (*ledgerdb.DB, error) {
			return ledgerdb.New(s, p, ledgerdb.WithTxnCacheSize(cfg.TxnCacheSize))
		}),
		fx.Provide(newModule),
	)
}

func newStore(ds datastore.Batching) (*store.Store, error) {
	var opts []store.Option
	if MetricsEnabled {
		opts = append(opts, store.WithMetrics())
	}
	return store.NewStore(namespace.Wrap(ds, storePrefix), opts...)
}
