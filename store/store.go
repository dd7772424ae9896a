package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/query"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("store")

var (
	// ErrNotFound is returned when the requested version or value is not in the store.
	ErrNotFound = errors.New("store: not found")
	// ErrEmptyKey is returned on attempt to write a state value under an empty key.
	ErrEmptyKey = errors.New("store: empty state key")
)

// VersionChange is everything committed to the ledger at a single version.
type VersionChange struct {
	Transaction []byte            `json:"transaction"`
	Events      [][]byte          `json:"events,omitempty"`
	State       map[string][]byte `json:"state,omitempty"`
}

// Store is a versioned ledger store over a datastore.Batching. It keeps two
// independently prunable domains: the ledger (transactions and events) and the
// versioned state. Store is safe for concurrent reads. Writers of new versions
// must be serialized by the caller.
type Store struct {
	ds      datastore.Batching
	metrics *metrics
}

// NewStore constructs a Store over the given datastore.
func NewStore(ds datastore.Batching, opts ...Option) (*Store, error) {
	params := DefaultParameters()
	for _, opt := range opts {
		opt(params)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("store: store creation failed: %w", err)
	}

	s := &Store{ds: ds}
	if params.metrics {
		if err := s.WithMetrics(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Write commits the batch atomically and, on success, runs its commit hooks.
// On failure no hook runs and nothing of the batch is visible.
func (s *Store) Write(ctx context.Context, b *Batch) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.observeWrite(ctx, time.Since(start), b.Len(), err != nil)
	}()

	dsb, err := s.ds.Batch(ctx)
	if err != nil {
		return fmt.Errorf("store: creating batch: %w", err)
	}
	if err = b.applyTo(ctx, dsb); err != nil {
		return err
	}
	if err = dsb.Commit(ctx); err != nil {
		return fmt.Errorf("store: committing batch: %w", err)
	}

	b.runHooks()
	return nil
}

// LatestVersion returns the latest committed version.
// ErrNotFound is returned for a store with no versions yet.
func (s *Store) LatestVersion(ctx context.Context) (uint64, error) {
	bin, err := s.ds.Get(ctx, latestKey)
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("store: loading latest version: %w", err)
	}
	return decodeUint64(bin)
}

// SaveVersion commits the change at the version following the latest one, or
// at version 0 for an empty store, and returns that version.
//
// Every state key written supersedes its previous node, which gets indexed as
// stale since the new version.
func (s *Store) SaveVersion(ctx context.Context, change VersionChange) (uint64, error) {
	version := uint64(0)
	latest, err := s.LatestVersion(ctx)
	switch {
	case err == nil:
		version = latest + 1
	case errors.Is(err, ErrNotFound):
	default:
		return 0, err
	}

	b := NewBatch()
	b.Put(TxnKey(version), change.Transaction)
	for i, ev := range change.Events {
		b.Put(EventKey(version, i), ev)
	}

	for k, val := range change.State {
		key := []byte(k)
		if len(key) == 0 {
			return 0, ErrEmptyKey
		}

		prev, err := s.ds.Get(ctx, latestNodeKey(key))
		switch {
		case err == nil:
			prevVersion, err := decodeUint64(prev)
			if err != nil {
				return 0, err
			}
			b.Put(StaleKey(version, key, prevVersion), []byte{})
		case errors.Is(err, datastore.ErrNotFound):
		default:
			return 0, fmt.Errorf("store: loading latest node of state key: %w", err)
		}

		b.Put(NodeKey(key, version), val)
		b.Put(latestNodeKey(key), encodeUint64(version))
	}
	b.Put(latestKey, encodeUint64(version))

	if err := s.Write(ctx, b); err != nil {
		return 0, err
	}

	log.Debugw("saved version", "version", version, "events", len(change.Events), "state", len(change.State))
	return version, nil
}

// Transaction returns the transaction committed at the given version.
func (s *Store) Transaction(ctx context.Context, v uint64) ([]byte, error) {
	txn, err := s.ds.Get(ctx, TxnKey(v))
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: loading transaction at version %d: %w", v, err)
	}
	return txn, nil
}

// Events returns the events emitted at the given version in emission order.
func (s *Store) Events(ctx context.Context, v uint64) ([][]byte, error) {
	res, err := s.ds.Query(ctx, query.Query{
		Prefix: EventPrefix(v).String(),
		Orders: []query.Order{query.OrderByKey{}},
	})
	if err != nil {
		return nil, fmt.Errorf("store: querying events at version %d: %w", v, err)
	}
	defer res.Close()

	var events [][]byte
	for {
		r, ok := res.NextSync()
		if !ok {
			break
		}
		if r.Error != nil {
			return nil, fmt.Errorf("store: reading events at version %d: %w", v, r.Error)
		}
		events = append(events, r.Value)
	}
	return events, nil
}

// EventKeys returns the keys of all events emitted at the given version.
func (s *Store) EventKeys(ctx context.Context, v uint64) ([]datastore.Key, error) {
	res, err := s.ds.Query(ctx, query.Query{
		Prefix:   EventPrefix(v).String(),
		KeysOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("store: querying event keys at version %d: %w", v, err)
	}
	defer res.Close()

	var keys []datastore.Key
	for {
		r, ok := res.NextSync()
		if !ok {
			break
		}
		if r.Error != nil {
			return nil, fmt.Errorf("store: reading event keys at version %d: %w", v, r.Error)
		}
		keys = append(keys, datastore.NewKey(r.Key))
	}
	return keys, nil
}

// StateValue returns the value of key as of the given version, that is the
// node written at the highest version not above it.
func (s *Store) StateValue(ctx context.Context, key []byte, v uint64) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	res, err := s.ds.Query(ctx, query.Query{
		Prefix: nodeKeyPrefix(key).String(),
		Orders: []query.Order{query.OrderByKey{}},
	})
	if err != nil {
		return nil, fmt.Errorf("store: querying state nodes: %w", err)
	}
	defer res.Close()

	var value []byte
	found := false
	for {
		r, ok := res.NextSync()
		if !ok {
			break
		}
		if r.Error != nil {
			return nil, fmt.Errorf("store: reading state nodes: %w", r.Error)
		}
		nodeVersion, err := parseVersion(datastore.RawKey(r.Key).BaseNamespace())
		if err != nil {
			return nil, fmt.Errorf("store: malformed state node key %s: %w", r.Key, err)
		}
		if nodeVersion > v {
			break
		}
		value, found = r.Value, true
	}
	if !found {
		return nil, ErrNotFound
	}
	return value, nil
}

// StaleNodes returns the stale state node index entries with a stale-since
// version not above upTo, ordered by that version.
func (s *Store) StaleNodes(ctx context.Context, upTo uint64) ([]StaleNode, error) {
	res, err := s.ds.Query(ctx, query.Query{
		Prefix:   stalePrefix.String(),
		KeysOnly: true,
		Orders:   []query.Order{query.OrderByKey{}},
	})
	if err != nil {
		return nil, fmt.Errorf("store: querying stale nodes: %w", err)
	}
	defer res.Close()

	var nodes []StaleNode
	for {
		r, ok := res.NextSync()
		if !ok {
			break
		}
		if r.Error != nil {
			return nil, fmt.Errorf("store: reading stale nodes: %w", r.Error)
		}
		node, err := parseStaleKey(datastore.RawKey(r.Key))
		if err != nil {
			return nil, err
		}
		if node.StaleSince > upTo {
			break
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// PrunerProgress loads the persisted min readable version of the named pruner.
// A pruner that never ran starts at version 0.
func (s *Store) PrunerProgress(ctx context.Context, name string) (uint64, error) {
	bin, err := s.ds.Get(ctx, PrunerProgressKey(name))
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("store: loading progress of %s pruner: %w", name, err)
	}
	return decodeUint64(bin)
}

// EncodeVersion encodes v the way the store persists versions.
func EncodeVersion(v uint64) []byte {
	return encodeUint64(v)
}

func encodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func decodeUint64(bin []byte) (uint64, error) {
	if len(bin) != 8 {
		return 0, fmt.Errorf("store: malformed version of %d bytes", len(bin))
	}
	return binary.BigEndian.Uint64(bin), nil
}
