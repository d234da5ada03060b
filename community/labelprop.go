package community

import (
	"math/rand"

	"github.com/katalvlaran/hierclust/core"
)

// LabelPropagation returns a partitioner running asynchronous (in-place)
// label propagation to a fixed point: every node starts in its own label,
// then, visiting nodes in a freshly shuffled order each pass, adopts the
// most frequent label among its neighbours. A node's current label is the
// baseline and is kept unless some neighbour label is strictly more
// frequent; among equally frequent candidates the first one in a shuffled
// order of the touched labels wins. This repeats until a full pass over
// all nodes makes no change. Labels are densely renumbered in
// first-seen order before returning.
func LabelPropagation(rng *rand.Rand) func(g *core.Graph) ([]int, int, error) {
	return func(g *core.Graph) ([]int, int, error) {
		if g.N == 0 {
			return nil, 0, ErrEmptyGraph
		}

		n := g.N
		lab := make([]int, n)
		order := make([]int, n)
		tally := make([]int, n)
		touched := make([]int, 0, n)

		for i := 0; i < n; i++ {
			lab[i] = i
			order[i] = i
		}

		changed := true
		for changed {
			changed = false
			shuffleInts(order, rng)

			for _, u := range order {
				touched = touched[:0]
				neigh := g.Neighbors(u)
				for _, vv := range neigh {
					l := lab[int(vv)]
					if tally[l] == 0 {
						touched = append(touched, l)
					}
					tally[l]++
				}

				lmax := lab[u]
				nmax := tally[lmax]

				if len(touched) > 0 {
					shuffleInts(touched, rng)
				}
				for _, l := range touched {
					if tally[l] > nmax {
						lmax = l
						nmax = tally[l]
					}
					tally[l] = 0
				}

				if lmax != lab[u] {
					changed = true
				}
				lab[u] = lmax
			}
		}

		nlab := 0
		newID := make([]int, n)
		for i := range newID {
			newID[i] = -1
		}
		for i := 0; i < n; i++ {
			l := lab[i]
			if newID[l] == -1 {
				newID[l] = nlab
				nlab++
			}
			lab[i] = newID[l]
		}

		return lab, nlab, nil
	}
}
