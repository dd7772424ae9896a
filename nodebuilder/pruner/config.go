package pruner

import (
	"fmt"

	"github.com/celestiaorg/ledger-node/pruner"
)

var MetricsEnabled bool

type Config struct {
	// EnableLedger turns on pruning of transactions and events.
	EnableLedger bool
	// EnableState turns on pruning of superseded state nodes.
	EnableState bool
	// BatchSize is the max amount of versions pruned per domain in one cycle.
	BatchSize uint64
	// LedgerWindow is the amount of recent versions of the ledger kept.
	LedgerWindow uint64
	// StateWindow is the amount of recent versions of the state kept.
	StateWindow uint64
}

func DefaultConfig() Config {
	return Config{
		EnableLedger: true,
		EnableState:  true,
		BatchSize:    pruner.DefaultBatchSize,
		LedgerWindow: pruner.DefaultLedgerPruneWindow,
		StateWindow:  pruner.DefaultStatePruneWindow,
	}
}

func (cfg *Config) Validate() error {
	if cfg.BatchSize == 0 {
		return fmt.Errorf("nodebuilder/pruner: batch size should be positive and non-zero")
	}
	return nil
}
