// Package community computes a label vector over a graph's nodes: the
// partitioners hierarchy recurses with. A partitioner is a pure function
// (*core.Graph) -> (labels, nlab, error) with labels[i] in 0..nlab-1.
//
// Four families are provided:
//
//   - Random: a uniform random label in 0..min(K,n)-1, no renumbering,
//     empty labels permitted.
//   - LabelPropagation: asynchronous (in-place) label propagation to a
//     fixed point.
//   - LouvainOneLevel / LouvainComplete: the weighted Louvain modularity
//     optimizer, one pass or full multi-level with graph coarsening.
//   - LouvainAttributed: one-level Louvain whose gain mixes in cosine
//     similarity against each candidate community's mean attribute
//     vector, steering communities toward attribute-homogeneous groups.
//
// The Louvain variants share a Partition — the mutable bookkeeping (in/tot/commSize,
// optionally attrSums) bound to one graph — and its "sparse set" scratch
// (neighCommWeights/neighCommPos/neighCommNb): an O(1)-clear map from
// community ID to accumulated neighbour weight, cleared by walking only
// the positions touched since the last reset. None of this is
// goroutine-safe; a Partition is owned by a single Louvain call.
package community
