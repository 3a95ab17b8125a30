package assess

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator supplies identifiers for list entries synthesized during
// mapping. Injected so mappers carry no hidden global and tests can supply
// deterministic IDs.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDv4 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }

// SequenceGenerator generates "prefix-1", "prefix-2", ... Deterministic;
// intended for tests.
type SequenceGenerator struct {
	Prefix string
	n      int
}

func (g *SequenceGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.Prefix, g.n)
}
