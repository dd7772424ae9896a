package pruner

import (
	"sync/atomic"
)

// Snapshot holds the min readable version of every domain, indexed by Domain.
// Disabled domains are absent.
type Snapshot []OptionalVersion

// MinReadableVersion returns the min readable version of the domain, if
// pruning is enabled for it.
func (s Snapshot) MinReadableVersion(d Domain) (Version, bool) {
	if int(d) < 0 || int(d) >= len(s) || !s[d].Valid {
		return 0, false
	}
	return s[d].Version, true
}

// Progress publishes the pruning progress to concurrent readers.
// The snapshot is always replaced as a whole, so readers observe either the
// previous or the next one but never a mix.
type Progress struct {
	snapshot atomic.Pointer[Snapshot]
}

func newProgress(initial Snapshot) *Progress {
	p := &Progress{}
	p.publish(initial)
	return p
}

// Read returns a copy of the current snapshot. It never blocks.
func (p *Progress) Read() Snapshot {
	snap := *p.snapshot.Load()
	return append(Snapshot(nil), snap...)
}

// MinReadableVersion returns the published min readable version of the
// domain, if pruning is enabled for it.
func (p *Progress) MinReadableVersion(d Domain) (Version, bool) {
	return (*p.snapshot.Load()).MinReadableVersion(d)
}

func (p *Progress) publish(snap Snapshot) {
	p.snapshot.Store(&snap)
}
