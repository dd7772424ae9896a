package pruner

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ipfs/go-datastore"

	"github.com/celestiaorg/ledger-node/pruner"
)

var (
	storePrefix = datastore.NewKey("pruner_mode")
	pruned      = []byte("pruned")
	archival    = []byte("archival")
)

// ErrDisallowRevertToArchival is returned when a domain that was pruned
// before is configured to run unpruned. Reads of its pruned versions could
// not be told apart from reads of missing ones anymore.
var ErrDisallowRevertToArchival = errors.New(
	"node has been run with pruning enabled before, it is not safe to convert to an archival node")

func modeKey(d pruner.Domain) datastore.Key {
	return datastore.NewKey(d.String())
}

// checkPruningMode records the pruning mode of the domain and ensures a domain
// that was pruned before is not run with pruning disabled. lastPruned is the
// persisted progress of the domain's pruner, used for nodes that ran before
// the mode got recorded.
func checkPruningMode(
	ctx context.Context,
	d pruner.Domain,
	enabled bool,
	ds datastore.Datastore,
	lastPruned uint64,
) error {
	prevMode, err := ds.Get(ctx, modeKey(d))
	switch {
	case errors.Is(err, datastore.ErrNotFound):
		if !enabled {
			if lastPruned > 0 {
				return fmt.Errorf("%s: %w", d, ErrDisallowRevertToArchival)
			}
			return ds.Put(ctx, modeKey(d), archival)
		}
		return ds.Put(ctx, modeKey(d), pruned)
	case err != nil:
		return fmt.Errorf("nodebuilder/pruner: loading previous mode of %s: %w", d, err)
	}

	if bytes.Equal(prevMode, pruned) && !enabled {
		return fmt.Errorf("%s: %w", d, ErrDisallowRevertToArchival)
	}

	if bytes.Equal(prevMode, archival) && enabled {
		// allow conversion from archival to pruned
		log.Infow("converting domain from archival to pruned", "domain", d)
		if err := ds.Put(ctx, modeKey(d), pruned); err != nil {
			return fmt.Errorf("nodebuilder/pruner: failed to update pruning mode of %s: %w", d, err)
		}
	}
	return nil
}
