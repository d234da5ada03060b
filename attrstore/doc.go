// Package attrstore loads and serves per-node attribute vectors, keyed by
// the *original* node ID from the root edge list (not any subgraph's
// local numbering).
//
// Store is the only surface community and embedding depend on: Dim,
// Lookup, CosineToComm and DotToComm. Two backends implement it. Memory
// (memory.go) holds a dense float64 array plus a presence bitmap and is
// the default — adequate for the attribute files this pipeline expects.
// LMDB (lmdb.go, behind the "lmdb" build tag) memory-maps the same rows
// out of an on-disk B-tree instead, for attribute files too large to
// comfortably duplicate into process memory; it is loaded once and then
// read concurrently without a lock, since LMDB read transactions are
// safe for that.
//
// Every accumulation in this package happens in float64 with Kahan
// compensation rather than a literal wide float type, since Go has
// nothing narrower than float64 and nothing wider without an external
// decimal/bigfloat dependency; see DESIGN.md for the reasoning.
package attrstore
