package pruner

import (
	"context"
	"time"

	"github.com/celestiaorg/ledger-node/store"
)

// worker owns all DBPruners and periodically calls their Prune to prune the
// store in small batches, reporting progress after every batch.
//
// It is the only caller of the mutating methods of the pruners.
type worker struct {
	committer Committer
	commands  <-chan Command
	registry  *Registry
	progress  *Progress

	// blockingRecv is set when there is no pending work or the last cycle
	// failed, so receiveCommands waits for the next command instead of polling.
	blockingRecv bool
	batchSize    uint64

	metrics *metrics
}

func newWorker(
	committer Committer,
	commands <-chan Command,
	registry *Registry,
	progress *Progress,
	batchSize uint64,
	metrics *metrics,
) *worker {
	return &worker{
		committer:    committer,
		commands:     commands,
		registry:     registry,
		progress:     progress,
		blockingRecv: true,
		batchSize:    batchSize,
		metrics:      metrics,
	}
}

// work runs until Quit is received.
func (w *worker) work(ctx context.Context) {
	for w.receiveCommands() {
		// process a reasonably small batch before checking commands again,
		// in case Quit arrives
		w.pruneBatch(ctx)
	}
	log.Info("pruner worker stopped")
}

// pruneBatch runs one pruning cycle over all enabled pruners, commits it and
// publishes the resulting progress.
func (w *worker) pruneBatch(ctx context.Context) {
	start := time.Now()
	failed := false
	staged := make(map[Domain]uint64, w.registry.Len())

	batch := store.NewBatch()
	w.registry.Each(func(d Domain, p DBPruner) {
		// stage into a scratch batch, so a failing pruner contributes nothing
		scratch := store.NewBatch()
		n, err := p.Prune(ctx, scratch, w.batchSize)
		if err != nil {
			failed = true
			log.Errorw("staging prune batch", "domain", d, "pruner", p.Name(),
				"min_readable", p.MinReadableVersion(), "target", p.TargetVersion(), "err", err)
			w.metrics.observePruneFailure(ctx, d)
			return
		}
		batch.Merge(scratch)
		staged[d] = n
	})

	if !batch.Empty() {
		// commit all domains atomically; watermarks advance through commit hooks
		if err := w.committer.Write(ctx, batch); err != nil {
			failed = true
			log.Errorw("committing prune batch", "ops", batch.Len(), "err", err)
			w.metrics.observeCommitFailure(ctx)
		} else {
			for d, n := range staged {
				w.metrics.observePruned(ctx, d, n)
			}
		}
	}

	// don't spin on a persistent failure, wait for the next command instead
	w.blockingRecv = !w.registry.Pending() || failed
	w.recordProgress()
	w.metrics.observeCycle(ctx, time.Since(start), failed)
}

func (w *worker) recordProgress() {
	w.progress.publish(w.registry.snapshot())
}

// receiveCommands drains pending commands. It blocks for the first command if
// there is no work to do, then keeps draining without blocking and returns as
// soon as the channel is empty, so the caller runs a cycle.
//
// It returns false once Quit is received.
func (w *worker) receiveCommands() bool {
	blocking := w.blockingRecv
	for {
		var cmd Command
		if blocking {
			c, ok := <-w.commands
			if !ok {
				log.Panic("pruner: command channel closed before the worker was told to quit")
			}
			cmd = c
			// the rest of the backlog is drained without waiting
			blocking = false
		} else {
			select {
			case c, ok := <-w.commands:
				if !ok {
					log.Panic("pruner: command channel closed before the worker was told to quit")
				}
				cmd = c
			default:
				return true
			}
		}

		switch c := cmd.(type) {
		case quitCommand:
			return false
		case pruneCommand:
			w.applyTargets(c.targets)
		}
	}
}

func (w *worker) applyTargets(targets []OptionalVersion) {
	if len(targets) != w.registry.Len() {
		log.Warnw("prune command does not match registry", "targets", len(targets), "domains", w.registry.Len())
	}

	w.registry.Each(func(d Domain, p DBPruner) {
		if int(d) >= len(targets) || !targets[d].Valid {
			return
		}
		target := targets[d].Version
		if target > p.TargetVersion() {
			log.Debugw("raising target version", "domain", d, "from", p.TargetVersion(), "to", target)
			p.SetTargetVersion(target)
			// there is new work, so don't block on the next receive either
			w.blockingRecv = false
		}
	})
}
