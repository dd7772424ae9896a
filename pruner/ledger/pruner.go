package ledger

import (
	"context"
	"fmt"
	"sync/atomic"

	logging "github.com/ipfs/go-log/v2"

	"github.com/celestiaorg/ledger-node/store"
)

var log = logging.Logger("pruner/ledger")

// Name of the ledger pruner, also used to persist its progress.
const Name = "ledger"

// Pruner prunes transactions and their events below the target version.
type Pruner struct {
	store *store.Store

	minReadable atomic.Uint64
	target      atomic.Uint64
}

// NewPruner constructs a Pruner, recovering its progress from the store.
func NewPruner(ctx context.Context, s *store.Store) (*Pruner, error) {
	progress, err := s.PrunerProgress(ctx, Name)
	if err != nil {
		return nil, err
	}

	p := &Pruner{store: s}
	p.minReadable.Store(progress)
	p.target.Store(progress)
	log.Debugw("recovered progress", "min_readable", progress)
	return p, nil
}

func (p *Pruner) Name() string {
	return Name
}

func (p *Pruner) Prune(ctx context.Context, batch *store.Batch, maxVersions uint64) (uint64, error) {
	from, to := nextRange(p.minReadable.Load(), p.target.Load(), maxVersions)
	if from == to {
		return 0, nil
	}

	for v := from; v < to; v++ {
		keys, err := p.store.EventKeys(ctx, v)
		if err != nil {
			return 0, fmt.Errorf("ledger pruner: listing events at version %d: %w", v, err)
		}
		for _, k := range keys {
			batch.Delete(k)
		}
		batch.Delete(store.TxnKey(v))
	}

	batch.Put(store.PrunerProgressKey(Name), store.EncodeVersion(to))
	batch.OnCommit(func() {
		p.minReadable.Store(to)
	})
	return to - from, nil
}

func (p *Pruner) IsPruningPending() bool {
	return p.minReadable.Load() < p.target.Load()
}

func (p *Pruner) MinReadableVersion() uint64 {
	return p.minReadable.Load()
}

func (p *Pruner) TargetVersion() uint64 {
	return p.target.Load()
}

func (p *Pruner) SetTargetVersion(v uint64) {
	if v > p.target.Load() {
		p.target.Store(v)
	}
}

// nextRange returns the [from, to) range of at most limit versions to prune.
func nextRange(minReadable, target, limit uint64) (uint64, uint64) {
	if target <= minReadable {
		return minReadable, minReadable
	}
	if target-minReadable > limit {
		return minReadable, minReadable + limit
	}
	return minReadable, target
}
