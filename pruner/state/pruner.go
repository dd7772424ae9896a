package state

import (
	"context"
	"fmt"
	"sync/atomic"

	logging "github.com/ipfs/go-log/v2"

	"github.com/celestiaorg/ledger-node/store"
)

var log = logging.Logger("pruner/state")

// Name of the state pruner, also used to persist its progress.
const Name = "state"

// Pruner removes state nodes superseded at or below the target version,
// together with their stale index entries. A node stays readable as long as
// it is the latest value of its key as of some version not below the min
// readable version.
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
	from, target := p.minReadable.Load(), p.target.Load()
	if target <= from {
		return 0, nil
	}
	to := target
	if target-from > maxVersions {
		to = from + maxVersions
	}

	nodes, err := p.store.StaleNodes(ctx, to)
	if err != nil {
		return 0, fmt.Errorf("state pruner: listing stale nodes up to %d: %w", to, err)
	}
	for _, n := range nodes {
		batch.Delete(n.NodeKey)
		batch.Delete(n.IndexKey)
	}

	batch.Put(store.PrunerProgressKey(Name), store.EncodeVersion(to))
	batch.OnCommit(func() {
		p.minReadable.Store(to)
	})
	log.Debugw("staged stale nodes", "from", from, "to", to, "nodes", len(nodes))
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
