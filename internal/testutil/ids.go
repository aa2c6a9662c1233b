package testutil

import (
	"fmt"
	"sync"
)

// DefaultRunID is the run ID golden files are written with.
const DefaultRunID = "0190a000-0000-7000-8000-000000000001"

// FixedRunIDs hands out a fixed list of run IDs in order.
//
// This enables deterministic test execution and golden snapshot comparison:
// the same scenario with the same FixedRunIDs produces byte-identical
// snapshots.
//
// Thread-safety: FixedRunIDs is safe for concurrent use.
type FixedRunIDs struct {
	mu   sync.Mutex
	ids  []string
	next int
}

// NewFixedRunIDs creates a generator that returns ids in order. With no ids
// it returns DefaultRunID once.
func NewFixedRunIDs(ids ...string) *FixedRunIDs {
	if len(ids) == 0 {
		ids = []string{DefaultRunID}
	}
	return &FixedRunIDs{ids: ids}
}

// Generate returns the next ID. It panics once the list is exhausted, since
// a test that runs more often than it planned for would otherwise reuse IDs.
func (g *FixedRunIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next >= len(g.ids) {
		panic(fmt.Sprintf("testutil: FixedRunIDs exhausted after %d ids", len(g.ids)))
	}
	id := g.ids[g.next]
	g.next++
	return id
}

// Remaining reports how many IDs are left.
func (g *FixedRunIDs) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.ids) - g.next
}
