// Package embedding replays a hierarchy record stream (written by
// hierarchy.Recurse) into one low-dimensional vector per leaf node.
//
// Walk descends the tree exactly as it was produced — depth-first,
// interior-before-children — carrying a k-dimensional accumulated vector
// per node of the tree (not per depth): an interior record's children each
// receive the parent's vector plus one independent uniform perturbation of
// magnitude a^h sampled per child, where h is the parent's own depth; a
// leaf record adds one more, fresh-per-original-node perturbation of
// magnitude a^h at its own depth before writing the final vector.
//
// WalkAttributed layers a fixed random k x d projection matrix on top:
// each leaf node's vector gains an extra beta * a^h * (P * x_u) term,
// where x_u is the node's attribute vector (zero contribution if absent).
package embedding
