package ledger

import (
	"fmt"

	"github.com/celestiaorg/ledger-node/ledgerdb"
)

var MetricsEnabled bool

type Config struct {
	// TxnCacheSize is the amount of recently read transactions kept in memory.
	TxnCacheSize int
}

func DefaultConfig() Config {
	return Config{
		TxnCacheSize: ledgerdb.DefaultParameters().TxnCacheSize,
	}
}

func (cfg *Config) Validate() error {
	if cfg.TxnCacheSize <= 0 {
		return fmt.Errorf("nodebuilder/ledger: transaction cache size should be positive and non-zero")
	}
	return nil
}
