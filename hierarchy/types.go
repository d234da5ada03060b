package hierarchy

import (
	"errors"

	"github.com/katalvlaran/hierclust/core"
)

// Sentinel errors for hierarchy operations.
var (
	// ErrMalformedRecord indicates a hierarchy file did not match the
	// expected "h c" / "h 1 n id0 .. idn-1" record shapes.
	ErrMalformedRecord = errors.New("hierarchy: malformed record")
)

// Partitioner computes a label vector over a graph's nodes. It is the
// shape every community partitioner closure already satisfies.
type Partitioner func(g *core.Graph) (lab []int, nlab int, err error)
