// Package store is an optional Postgres sink for hierarchy records and
// embedding vectors, for callers who want a run's output queryable
// instead of (or as well as) written to a flat file. It is plain
// database/sql with the lib/pq driver registered for its side effect,
// the same pattern the rest of the pack's Postgres-backed services use.
package store
