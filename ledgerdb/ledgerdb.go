package ledgerdb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	logging "github.com/ipfs/go-log/v2"

	"github.com/celestiaorg/ledger-node/pruner"
	"github.com/celestiaorg/ledger-node/store"
)

var log = logging.Logger("ledgerdb")

// ErrPruned is returned on attempt to read data below the min readable version
// of its domain.
var ErrPruned = errors.New("ledgerdb: pruned")

// Pruner is the part of the pruner.Service the DB relies on.
type Pruner interface {
	MaybeWake(ctx context.Context, latest pruner.Version) error
	MinReadableVersion(pruner.Domain) (pruner.Version, bool)
	Progress() pruner.Snapshot
}

// DB is the versioned ledger with background pruning. It serializes writers of
// new versions and refuses reads of versions already given to the pruner.
type DB struct {
	store  *store.Store
	pruner Pruner

	writeLk sync.Mutex
	txns    *lru.Cache[uint64, []byte]
}

// New constructs a DB over the store, waking the pruner as versions get saved.
func New(s *store.Store, p Pruner, opts ...Option) (*DB, error) {
	params := DefaultParameters()
	for _, opt := range opts {
		opt(params)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("ledgerdb: db creation failed: %w", err)
	}

	txns, err := lru.New[uint64, []byte](params.TxnCacheSize)
	if err != nil {
		return nil, fmt.Errorf("ledgerdb: creating transaction cache: %w", err)
	}
	return &DB{
		store:  s,
		pruner: p,
		txns:   txns,
	}, nil
}

// SaveVersion commits the change as the next version and returns it.
func (db *DB) SaveVersion(ctx context.Context, change store.VersionChange) (uint64, error) {
	db.writeLk.Lock()
	version, err := db.store.SaveVersion(ctx, change)
	db.writeLk.Unlock()
	if err != nil {
		return 0, err
	}

	// the version is durable, failing to wake the pruner only delays pruning
	if err := db.pruner.MaybeWake(ctx, version); err != nil {
		log.Warnw("waking pruner", "version", version, "err", err)
	}
	return version, nil
}

// LatestVersion returns the latest committed version.
func (db *DB) LatestVersion(ctx context.Context) (uint64, error) {
	return db.store.LatestVersion(ctx)
}

// Transaction returns the transaction committed at version v.
func (db *DB) Transaction(ctx context.Context, v uint64) ([]byte, error) {
	if err := db.checkReadable(pruner.LedgerDomain, "transaction", v); err != nil {
		return nil, err
	}
	if txn, ok := db.txns.Get(v); ok {
		return txn, nil
	}

	txn, err := db.store.Transaction(ctx, v)
	if err != nil {
		return nil, err
	}
	db.txns.Add(v, txn)
	return txn, nil
}

// Events returns the events emitted at version v.
func (db *DB) Events(ctx context.Context, v uint64) ([][]byte, error) {
	if err := db.checkReadable(pruner.LedgerDomain, "events", v); err != nil {
		return nil, err
	}
	latest, err := db.store.LatestVersion(ctx)
	if err != nil {
		return nil, err
	}
	if v > latest {
		return nil, store.ErrNotFound
	}
	return db.store.Events(ctx, v)
}

// StateValue returns the value of key as of version v.
func (db *DB) StateValue(ctx context.Context, key []byte, v uint64) ([]byte, error) {
	if err := db.checkReadable(pruner.StateDomain, "state", v); err != nil {
		return nil, err
	}
	return db.store.StateValue(ctx, key, v)
}

// MinReadableVersions returns the published pruning progress of every domain.
func (db *DB) MinReadableVersions() pruner.Snapshot {
	return db.pruner.Progress()
}

func (db *DB) checkReadable(d pruner.Domain, kind string, v uint64) error {
	minReadable, ok := db.pruner.MinReadableVersion(d)
	if !ok || v >= minReadable {
		return nil
	}
	return fmt.Errorf("%w: %s at version %d is pruned, min available version is %d",
		ErrPruned, kind, v, minReadable)
}
