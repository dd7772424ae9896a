package pruner

// Registry holds one optional DBPruner per domain. A nil slot means pruning
// of the domain is disabled. The set of slots is fixed once constructed.
type Registry struct {
	slots []DBPruner
}

// NewRegistry builds a Registry out of the given slots, indexed by Domain.
func NewRegistry(slots ...DBPruner) *Registry {
	return &Registry{slots: append([]DBPruner(nil), slots...)}
}

// Len is the amount of slots, enabled or not.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Get returns the pruner of the given domain, if enabled.
func (r *Registry) Get(d Domain) (DBPruner, bool) {
	if int(d) < 0 || int(d) >= len(r.slots) || r.slots[d] == nil {
		return nil, false
	}
	return r.slots[d], true
}

// Enabled reports whether the domain has a pruner.
func (r *Registry) Enabled(d Domain) bool {
	_, ok := r.Get(d)
	return ok
}

// Each calls fn for every enabled pruner in domain order.
func (r *Registry) Each(fn func(Domain, DBPruner)) {
	for i, p := range r.slots {
		if p != nil {
			fn(Domain(i), p)
		}
	}
}

// Pending reports whether any enabled pruner has work left.
func (r *Registry) Pending() bool {
	pending := false
	r.Each(func(_ Domain, p DBPruner) {
		pending = pending || p.IsPruningPending()
	})
	return pending
}

// snapshot reads the min readable versions of all enabled pruners.
func (r *Registry) snapshot() Snapshot {
	snap := make(Snapshot, len(r.slots))
	r.Each(func(d Domain, p DBPruner) {
		snap[d] = Some(p.MinReadableVersion())
	})
	return snap
}
