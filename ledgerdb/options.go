package ledgerdb

import (
	"fmt"
)

type Option func(*Parameters)

// Parameters is the set of parameters that must be configured for the DB.
type Parameters struct {
	// TxnCacheSize is the amount of transactions kept in memory.
	TxnCacheSize int
}

func DefaultParameters() *Parameters {
	return &Parameters{
		TxnCacheSize: 4096,
	}
}

func (p *Parameters) Validate() error {
	if p.TxnCacheSize <= 0 {
		return fmt.Errorf("invalid transaction cache size: %d, value should be positive and non-zero", p.TxnCacheSize)
	}
	return nil
}

// WithTxnCacheSize configures the amount of transactions kept in memory.
func WithTxnCacheSize(size int) Option {
	return func(p *Parameters) {
		p.TxnCacheSize = size
	}
}
