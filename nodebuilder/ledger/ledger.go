package ledger

import (
	"context"

	"github.com/celestiaorg/ledger-node/store"
)

var _ Module = (*service)(nil)

// Module defines the API related to interacting with the versioned ledger.
//
//go:generate mockgen -destination=mocks/api.go -package=mocks . Module
type Module interface {
	// Head returns the latest committed version.
	Head(ctx context.Context) (uint64, error)
	// Transaction returns the transaction committed at the given version.
	Transaction(ctx context.Context, version uint64) ([]byte, error)
	// Events returns the events emitted at the given version.
	Events(ctx context.Context, version uint64) ([][]byte, error)
	// StateValue returns the value of the key as of the given version.
	StateValue(ctx context.Context, key []byte, version uint64) ([]byte, error)
	// SaveVersion appends the change as the next version.
	SaveVersion(ctx context.Context, change store.VersionChange) (uint64, error)
	// PrunerProgress reports the pruning progress of every domain.
	PrunerProgress(ctx context.Context) ([]DomainProgress, error)
}

// DomainProgress is the pruning progress of a single domain.
type DomainProgress struct {
	Domain             string `json:"domain"`
	Enabled            bool   `json:"enabled"`
	MinReadableVersion uint64 `json:"min_readable_version"`
}
