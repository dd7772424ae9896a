package pruner

import (
	"context"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"

	"github.com/celestiaorg/ledger-node/pruner"
	ledgerpruner "github.com/celestiaorg/ledger-node/pruner/ledger"
	statepruner "github.com/celestiaorg/ledger-node/pruner/state"
	"github.com/celestiaorg/ledger-node/store"
)

// newRegistry constructs the pruners of every enabled domain, leaving the
// slots of disabled ones empty.
func newRegistry(
	ctx context.Context,
	cfg *Config,
	s *store.Store,
	ds datastore.Batching,
) (*pruner.Registry, error) {
	modes := namespace.Wrap(ds, storePrefix)
	slots := make([]pruner.DBPruner, pruner.NumDomains)

	ledgerProgress, err := s.PrunerProgress(ctx, ledgerpruner.Name)
	if err != nil {
		return nil, err
	}
	if err := checkPruningMode(ctx, pruner.LedgerDomain, cfg.EnableLedger, modes, ledgerProgress); err != nil {
		return nil, err
	}
	if cfg.EnableLedger {
		p, err := ledgerpruner.NewPruner(ctx, s)
		if err != nil {
			return nil, err
		}
		slots[pruner.LedgerDomain] = p
	}

	stateProgress, err := s.PrunerProgress(ctx, statepruner.Name)
	if err != nil {
		return nil, err
	}
	if err := checkPruningMode(ctx, pruner.StateDomain, cfg.EnableState, modes, stateProgress); err != nil {
		return nil, err
	}
	if cfg.EnableState {
		p, err := statepruner.NewPruner(ctx, s)
		if err != nil {
			return nil, err
		}
		slots[pruner.StateDomain] = p
	}

	log.Infow("constructed pruners", "ledger", cfg.EnableLedger, "state", cfg.EnableState)
	return pruner.NewRegistry(slots...), nil
}

func newPrunerService(cfg *Config, s *store.Store, registry *pruner.Registry) (*pruner.Service, error) {
	opts := []pruner.Option{
		pruner.WithBatchSize(cfg.BatchSize),
		pruner.WithPruneWindow(pruner.LedgerDomain, cfg.LedgerWindow),
		pruner.WithPruneWindow(pruner.StateDomain, cfg.StateWindow),
	}
	if MetricsEnabled {
		opts = append(opts, pruner.WithPrunerMetrics())
	}
	return pruner.NewService(s, registry, opts...)
}
