// Package core stores an undirected graph in compressed-sparse-row (CSR)
// form and provides the two operations the rest of hierclust builds on:
// loading an edge list into that form, and inducing a dense child subgraph
// from a label vector (mkchild).
//
// A Graph is read-only once built: every node is numbered 0..N-1, CD holds
// cumulative degree so that Adj[CD[u]:CD[u+1]] lists u's neighbours, and
// Map (when non-nil) translates a local node index back to the original
// node ID from the input edge list. There is no locking: the package is
// used single-threaded, one Graph per call stack frame, matching the
// synchronous recursion that consumes it.
//
// Self-loops follow the standard CSR convention: an edge (u,u) occupies
// two slots in u's adjacency row (one per endpoint insertion, both landing
// in the same row), so it contributes twice to the weighted degree but
// only once when the community-detection package counts "in-community"
// weight.
package core
