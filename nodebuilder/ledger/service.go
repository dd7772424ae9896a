package ledger

import (
	"context"

	"github.com/celestiaorg/ledger-node/ledgerdb"
	"github.com/celestiaorg/ledger-node/pruner"
	"github.com/celestiaorg/ledger-node/store"
)

type service struct {
	db *ledgerdb.DB
}

func newModule(db *ledgerdb.DB) Module {
	return &service{db: db}
}

func (s *service) Head(ctx context.Context) (uint64, error) {
	return s.db.LatestVersion(ctx)
}

func (s *service) Transaction(ctx context.Context, version uint64) ([]byte, error) {
	return s.db.Transaction(ctx, version)
}

func (s *service) Events(ctx context.Context, version uint64) ([][]byte, error) {
	return s.db.Events(ctx, version)
}

func (s *service) StateValue(ctx context.Context, key []byte, version uint64) ([]byte, error) {
	return s.db.StateValue(ctx, key, version)
}

func (s *service) SaveVersion(ctx context.Context, change store.VersionChange) (uint64, error) {
	return s.db.SaveVersion(ctx, change)
}

func (s *service) PrunerProgress(context.Context) ([]DomainProgress, error) {
	snap := s.db.MinReadableVersions()
	progress := make([]DomainProgress, pruner.NumDomains)
	for i := range progress {
		d := pruner.Domain(i)
		v, ok := snap.MinReadableVersion(d)
		progress[i] = DomainProgress{
			Domain:             d.String(),
			Enabled:            ok,
			MinReadableVersion: v,
		}
	}
	return progress, nil
}
