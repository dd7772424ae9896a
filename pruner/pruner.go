package pruner

import (
	"context"
	"fmt"

	"github.com/celestiaorg/ledger-node/store"
)

// Version identifies a point in the ledger history. Version 0 is genesis.
type Version = uint64

// Domain addresses one independently prunable data domain.
type Domain int

const (
	// LedgerDomain holds transactions and their events.
	LedgerDomain Domain = iota
	// StateDomain holds versioned state snapshots.
	StateDomain

	// NumDomains is the amount of domains known to the node.
	NumDomains = int(StateDomain) + 1
)

func (d Domain) String() string {
	switch d {
	case LedgerDomain:
		return "ledger"
	case StateDomain:
		return "state"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// OptionalVersion is a Version that may be absent.
type OptionalVersion struct {
	Version Version
	Valid   bool
}

// Some returns a present OptionalVersion holding v.
func Some(v Version) OptionalVersion {
	return OptionalVersion{Version: v, Valid: true}
}

func (o OptionalVersion) String() string {
	if !o.Valid {
		return "none"
	}
	return fmt.Sprintf("%d", o.Version)
}

//go:generate mockgen -destination=mocks/pruner.go -package=mocks . DBPruner

// DBPruner prunes a single domain of the store up to its target version.
//
// Only the Worker calls the mutating methods. The getters may be called
// concurrently.
type DBPruner interface {
	// Name identifies the pruner in logs, metrics and persisted progress.
	Name() string
	// Prune stages deletions of at most maxVersions versions, starting at the
	// min readable version and never passing the target version, into the
	// given batch. It returns the amount of versions staged. Prune does not
	// change the pruner's state: the min readable version advances only once
	// the batch is committed.
	Prune(ctx context.Context, batch *store.Batch, maxVersions uint64) (uint64, error)
	// IsPruningPending reports whether the min readable version is behind the
	// target version.
	IsPruningPending() bool
	// MinReadableVersion is the version below which data may already be gone.
	MinReadableVersion() Version
	// TargetVersion is the version up to which pruning is authorized.
	TargetVersion() Version
	// SetTargetVersion raises the target version. Lower values are ignored.
	SetTargetVersion(Version)
}

// Committer atomically commits staged batches.
type Committer interface {
	Write(context.Context, *store.Batch) error
}
