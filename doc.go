// Package hierclust turns a large undirected graph into a hierarchy of
// communities, and that hierarchy into low-dimensional node embeddings.
//
// A batch pipeline that repeatedly applies community detection to each
//	induced subgraph, recording the recursion as a hierarchy file, then
//	walks that hierarchy top-down to emit one embedding vector per leaf
//	node. An optional attributed mode steers communities toward
//	attribute-homogeneous groups and folds the attribute signal into the
//	embedding.
//
// Under the hood, everything is organized under five subpackages:
//
//	core/       — CSR graph storage, edge-list loading, subgraph induction (mkchild)
//	attrstore/  — per-node attribute vectors, loaded from a text file
//	community/  — partitioners: random, Louvain (one-level/full/attributed), label propagation
//	hierarchy/  — the recursive bisection driver and the hierarchy file format
//	embedding/  — the hierarchy-to-vectors walk (recvec / recvec_attr)
//
// Supporting packages carry the ambient concerns: runconfig/ merges
// built-in defaults, a YAML file and environment variables into one run
// configuration; telemetry/ wires
// structured logging, Prometheus metrics and Sentry error reporting; store/
// offers an optional Postgres sink for hierarchy and vector output.
//
// The four command-line tools (cmd/recpart, cmd/recpart-attr, cmd/hi2vec,
// cmd/hi2vec-attr) are thin Cobra wrappers around these packages.
//
// Quick ASCII example — two disconnected triangles:
//
//	0─1     3─4
//	 \│      \│
//	  2       5
//
//	recpart finds two communities {0,1,2} and {3,4,5} and writes:
//
//	  0 2
//	  1 1 3 0 1 2
//	  1 1 3 3 4 5
package hierclust
