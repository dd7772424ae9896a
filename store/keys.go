package store

import (
	"fmt"
	"strconv"

	"github.com/ipfs/go-datastore"
	"github.com/multiformats/go-base32"
)

var (
	ledgerPrefix = datastore.NewKey("ledger")
	txnPrefix    = ledgerPrefix.ChildString("txn")
	eventPrefix  = ledgerPrefix.ChildString("event")

	statePrefix  = datastore.NewKey("state")
	nodePrefix   = statePrefix.ChildString("node")
	latestPrefix = statePrefix.ChildString("latest")
	stalePrefix  = statePrefix.ChildString("stale")

	metaPrefix     = datastore.NewKey("meta")
	latestKey      = metaPrefix.ChildString("latest")
	progressPrefix = metaPrefix.ChildString("pruner")
)

// versions are zero-padded so that lexicographic key order equals version order
func versionString(v uint64) string {
	return fmt.Sprintf("%020d", v)
}

func parseVersion(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func encodeStateKey(key []byte) string {
	return base32.RawStdEncoding.EncodeToString(key)
}

func decodeStateKey(s string) ([]byte, error) {
	return base32.RawStdEncoding.DecodeString(s)
}

// TxnKey is the key of the transaction committed at the given version.
func TxnKey(v uint64) datastore.Key {
	return txnPrefix.ChildString(versionString(v))
}

// EventPrefix is the key prefix of all events emitted at the given version.
func EventPrefix(v uint64) datastore.Key {
	return eventPrefix.ChildString(versionString(v))
}

// EventKey is the key of the i-th event emitted at the given version.
func EventKey(v uint64, i int) datastore.Key {
	return EventPrefix(v).ChildString(fmt.Sprintf("%06d", i))
}

// NodeKey is the key of the state value written for key at the given version.
func NodeKey(key []byte, v uint64) datastore.Key {
	return nodePrefix.ChildString(encodeStateKey(key)).ChildString(versionString(v))
}

func nodeKeyPrefix(key []byte) datastore.Key {
	return nodePrefix.ChildString(encodeStateKey(key))
}

func latestNodeKey(key []byte) datastore.Key {
	return latestPrefix.ChildString(encodeStateKey(key))
}

// StaleKey indexes the state node (key, prev) which stopped being the latest
// value of key at version staleSince.
func StaleKey(staleSince uint64, key []byte, prev uint64) datastore.Key {
	return stalePrefix.
		ChildString(versionString(staleSince)).
		ChildString(encodeStateKey(key)).
		ChildString(versionString(prev))
}

// PrunerProgressKey is the key under which the pruner with the given name
// persists its min readable version.
func PrunerProgressKey(name string) datastore.Key {
	return progressPrefix.ChildString(name)
}

// StaleNode is an entry of the stale state node index.
type StaleNode struct {
	// StaleSince is the version at which the node got superseded.
	StaleSince uint64
	// IndexKey is the key of the index entry itself.
	IndexKey datastore.Key
	// NodeKey is the key of the superseded node.
	NodeKey datastore.Key
}

func parseStaleKey(k datastore.Key) (StaleNode, error) {
	// /state/stale/<since>/<key>/<prev>
	parts := k.Namespaces()
	if len(parts) != 5 {
		return StaleNode{}, fmt.Errorf("store: malformed stale index key %s", k)
	}
	since, err := parseVersion(parts[2])
	if err != nil {
		return StaleNode{}, fmt.Errorf("store: malformed stale version in %s: %w", k, err)
	}
	key, err := decodeStateKey(parts[3])
	if err != nil {
		return StaleNode{}, fmt.Errorf("store: malformed state key in %s: %w", k, err)
	}
	prev, err := parseVersion(parts[4])
	if err != nil {
		return StaleNode{}, fmt.Errorf("store: malformed node version in %s: %w", k, err)
	}
	return StaleNode{
		StaleSince: since,
		IndexKey:   k,
		NodeKey:    NodeKey(key, prev),
	}, nil
}
