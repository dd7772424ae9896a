package pruner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	state := newFakePruner("state", 4)
	r := NewRegistry(nil, state)

	assert.Equal(t, 2, r.Len())
	assert.False(t, r.Enabled(LedgerDomain))
	assert.True(t, r.Enabled(StateDomain))
	assert.False(t, r.Enabled(Domain(5)))

	var visited []Domain
	r.Each(func(d Domain, _ DBPruner) {
		visited = append(visited, d)
	})
	assert.Equal(t, []Domain{StateDomain}, visited)

	assert.False(t, r.Pending())
	state.SetTargetVersion(5)
	assert.True(t, r.Pending())

	assert.Equal(t, Snapshot{{}, Some(4)}, r.snapshot())
}

func TestProgress_ReadReturnsCopy(t *testing.T) {
	p := newProgress(Snapshot{Some(1), {}})

	snap := p.Read()
	snap[0] = Some(100)
	assert.Equal(t, Snapshot{Some(1), {}}, p.Read())

	p.publish(Snapshot{Some(2), {}})
	v, ok := p.MinReadableVersion(LedgerDomain)
	assert.True(t, ok)
	assert.Equal(t, Version(2), v)
	_, ok = p.MinReadableVersion(StateDomain)
	assert.False(t, ok)
}

func TestDomain_String(t *testing.T) {
	assert.Equal(t, "ledger", LedgerDomain.String())
	assert.Equal(t, "state", StateDomain.String())
	assert.Equal(t, "none", OptionalVersion{}.String())
	assert.Equal(t, "7", Some(7).String())
}
