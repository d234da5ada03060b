// Package hierarchy drives the recursive bisection that turns a graph
// into a tree of communities and serialises it as a hierarchy record
// stream: a pre-order DFS where every interior record is immediately
// followed by its children at the next depth, and every leaf record lists
// the original node IDs it bottomed out on.
//
// Recurse owns every graph it is handed: each recursive step consumes its
// graph, induces children through a core.ChildBuilder, and never holds a
// reference to a graph once it has returned. A Partitioner is any of
// community's partitioner closures — the driver only needs the shape
// (*core.Graph) -> (labels, nlab, error).
package hierarchy
