package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyPath indicates ReadEdgeList was called with an empty file path.
	ErrEmptyPath = errors.New("core: empty edge-list path")

	// ErrOpenFile indicates the edge-list file could not be opened for reading.
	ErrOpenFile = errors.New("core: could not open edge-list file")

	// ErrMalformedEdge indicates a line in the edge list did not parse as
	// a whitespace-separated pair of non-negative integers.
	ErrMalformedEdge = errors.New("core: malformed edge in edge-list file")

	// ErrEmptyGraph indicates an edge list produced zero nodes.
	ErrEmptyGraph = errors.New("core: edge list contains no nodes")

	// ErrLabelOutOfRange indicates a label vector passed to ChildBuilder.Child held a
	// value outside 0..nlab-1.
	ErrLabelOutOfRange = errors.New("core: label out of range")
)

// Graph is an undirected graph stored in compressed-sparse-row form.
//
// N is the number of nodes, numbered 0..N-1. CD holds N+1 cumulative
// degrees: CD[i+1]-CD[i] is the degree of local node i, and
// Adj[CD[i]:CD[i+1]] lists i's neighbours in local numbering. Weights is
// nil for an unweighted graph (every edge has implicit weight 1);
// otherwise it is aligned with Adj. TotalWeight is the sum of all
// weighted entries in Adj (equivalently 2*E in the unweighted case) —
// the "m2" term used throughout modularity computations. Map, when
// non-nil, translates a local node index to the original node ID from
// the root edge list; nil means local numbering already is the original
// numbering (only true at the root graph).
type Graph struct {
	N           int
	E           int64
	CD          []int64
	Adj         []int32
	Weights     []float64
	TotalWeight float64
	Map         []int
}

// Weight returns the weight carried by adjacency slot i: the explicit
// value in g.Weights if the graph is weighted, or the implicit weight 1
// otherwise.
func (g *Graph) Weight(i int64) float64 {
	if g.Weights == nil {
		return 1.0
	}
	return g.Weights[i]
}

// OriginalID translates local node index u back to the original node ID
// from the root edge list, chaining through g.Map when present.
func (g *Graph) OriginalID(u int) int {
	if g.Map == nil {
		return u
	}
	return g.Map[u]
}

// DegreeWeighted returns the sum of edge weights incident to local node u,
// counting a self-loop twice (once per adjacency slot it occupies).
func (g *Graph) DegreeWeighted(u int) float64 {
	lo, hi := g.CD[u], g.CD[u+1]
	if g.Weights == nil {
		return float64(hi - lo)
	}
	var sum float64
	for i := lo; i < hi; i++ {
		sum += g.Weights[i]
	}
	return sum
}

// SelfLoopWeighted returns the weight of node u's self-loop, or 0 if u has
// none. Only the first matching adjacency slot is consulted, matching the
// convention that a self-loop contributes its weight once to "in[c]" even
// though it occupies two adjacency slots.
func (g *Graph) SelfLoopWeighted(u int) float64 {
	lo, hi := g.CD[u], g.CD[u+1]
	for i := lo; i < hi; i++ {
		if int(g.Adj[i]) == u {
			return g.Weight(i)
		}
	}
	return 0.0
}

// Neighbors returns the adjacency-array slice for local node u: its
// neighbours in local numbering, duplicated once per parallel edge (or
// self-loop slot).
func (g *Graph) Neighbors(u int) []int32 {
	return g.Adj[g.CD[u]:g.CD[u+1]]
}
