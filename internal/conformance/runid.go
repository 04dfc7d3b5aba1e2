package conformance

import (
	"sync"

	"github.com/google/uuid"
)

// RunIDGenerator issues the identifier attached to each scenario execution.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator issues time-sortable UUIDv7 run IDs. Sorting a report by
// run ID therefore also sorts it by execution time, which helps when
// correlating a report with interleaved logs.
//
// Thread-safety: stateless, safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 as a hyphenated string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined run IDs for deterministic tests and
// stable report comparison.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator returns a generator yielding the given IDs in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID, or "run-fixed" once the
// sequence is exhausted.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		return "run-fixed"
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
