package store

import (
	"context"
	"fmt"

	"github.com/ipfs/go-datastore"
)

type op struct {
	key    datastore.Key
	value  []byte
	delete bool
}

// Batch accumulates writes to be committed atomically by Store.Write.
// Nothing touches the underlying datastore until the batch is written.
//
// Hooks registered with OnCommit run, in registration order, only after
// the batch has been durably committed.
type Batch struct {
	ops   []op
	hooks []func()
}

// NewBatch returns an empty Batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Put stages a write of value under key.
func (b *Batch) Put(key datastore.Key, value []byte) {
	b.ops = append(b.ops, op{key: key, value: value})
}

// Delete stages a removal of key.
func (b *Batch) Delete(key datastore.Key) {
	b.ops = append(b.ops, op{key: key, delete: true})
}

// OnCommit registers fn to be called once the batch is committed.
func (b *Batch) OnCommit(fn func()) {
	b.hooks = append(b.hooks, fn)
}

// Merge appends all ops and hooks of other to b.
func (b *Batch) Merge(other *Batch) {
	b.ops = append(b.ops, other.ops...)
	b.hooks = append(b.hooks, other.hooks...)
}

// Len reports the amount of staged ops.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Empty reports whether the batch has neither ops nor hooks.
func (b *Batch) Empty() bool {
	return len(b.ops) == 0 && len(b.hooks) == 0
}

// applyTo stages all ops into the given datastore batch.
func (b *Batch) applyTo(ctx context.Context, dsb datastore.Batch) error {
	for _, o := range b.ops {
		var err error
		if o.delete {
			err = dsb.Delete(ctx, o.key)
		} else {
			err = dsb.Put(ctx, o.key, o.value)
		}
		if err != nil {
			return fmt.Errorf("store: staging %s: %w", o.key, err)
		}
	}
	return nil
}

func (b *Batch) runHooks() {
	for _, fn := range b.hooks {
		fn()
	}
}
