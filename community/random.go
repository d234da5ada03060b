package community

import (
	"math/rand"

	"github.com/katalvlaran/hierclust/core"
)

// Random returns a partitioner that assigns every node a uniform random
// label in 0..min(K,n)-1. Unlike every other partitioner in this package it
// performs no renumbering afterward: some labels may end up empty, which is
// by design — Random exists to give hierarchy's driver a cheap, structure-
// blind baseline, not a meaningful clustering.
func Random(rng *rand.Rand) func(g *core.Graph) ([]int, int, error) {
	return func(g *core.Graph) ([]int, int, error) {
		if g.N == 0 {
			return nil, 0, ErrEmptyGraph
		}

		nlab := K
		if g.N < nlab {
			nlab = g.N
		}

		lab := make([]int, g.N)
		for i := range lab {
			lab[i] = rng.Intn(nlab)
		}
		return lab, nlab, nil
	}
}
