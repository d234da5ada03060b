package attrstore

import (
	"errors"

	"github.com/katalvlaran/hierclust/core"
)

// Sentinel errors for attribute-store operations.
var (
	// ErrOpenFile indicates the attribute file could not be opened.
	ErrOpenFile = errors.New("attrstore: could not open attribute file")

	// ErrNoRows indicates the attribute file contained no non-empty line,
	// so the dimension could not be inferred.
	ErrNoRows = errors.New("attrstore: attribute file has no data rows")

	// ErrDimensionMismatch indicates two rows of the attribute file
	// disagreed on their vector dimension; this is fatal, unlike a row
	// with too few tokens (which is silently skipped, see LoadMemory).
	ErrDimensionMismatch = errors.New("attrstore: inconsistent attribute dimensions")
)

// Store serves per-node attribute vectors keyed by original node ID. It is
// the only surface community and embedding depend on.
type Store interface {
	// Dim returns the attribute vector dimension, or 0 if none loaded.
	Dim() int

	// Lookup returns the attribute vector for originalID and true, or
	// (nil, false) if the node is absent or out of range.
	Lookup(originalID int) ([]float64, bool)

	// CosineToComm returns the cosine similarity between the attribute
	// vector of the original node behind g's local node, and
	// commVec/commSize (the community's mean attribute vector). Returns
	// 0 when Dim()==0, the node has no attribute, commSize==0, or either
	// vector has zero norm.
	CosineToComm(g *core.Graph, localNode int, commVec []float64, commSize int) float64

	// DotToComm returns the plain dot product of the node's attribute
	// vector with commVec (no normalisation). Returns 0 when Dim()==0 or
	// the node has no attribute.
	DotToComm(g *core.Graph, localNode int, commVec []float64) float64

	// Close releases any resources (file handles, memory maps) held by
	// the store.
	Close() error
}
