package community

import (
	"sort"

	"github.com/katalvlaran/hierclust/core"
)

// louvainOneLevelPass runs repeated sweeps of greedy node moves over p/g
// until a sweep either moves nothing or fails to clear MinImprovement, and
// returns the total modularity gained across every sweep.
func louvainOneLevelPass(p *Partition, g *core.Graph) float64 {
	start := modularity(p, g)
	cur := start

	for {
		moves := 0

		for node := 0; node < g.N; node++ {
			oldComm := p.Node2Community[node]
			degreeW := g.DegreeWeighted(node)

			p.resetNeighCommunities()
			p.seedNeighCommunities(g, node)

			p.removeNode(g, nil, node, oldComm, p.neighCommWeights[oldComm])

			bestComm := oldComm
			bestW := 0.0
			bestGain := 0.0

			for j := 0; j < p.neighCommNb; j++ {
				nc := p.neighCommPos[j]
				ng := gain(p, g, nc, p.neighCommWeights[nc], degreeW)
				if ng > bestGain {
					bestComm = nc
					bestW = p.neighCommWeights[nc]
					bestGain = ng
				}
			}

			p.insertNode(g, nil, node, bestComm, bestW)
			if bestComm != oldComm {
				moves++
			}
		}

		newMod := modularity(p, g)
		improved := newMod - cur
		cur = newMod
		if !(moves > 0 && improved > MinImprovement) {
			break
		}
	}

	return cur - start
}

// LouvainOneLevel returns a partitioner running louvainOneLevelPass once
// from the singleton partition and renumbering the result.
func LouvainOneLevel() func(g *core.Graph) ([]int, int, error) {
	return func(g *core.Graph) ([]int, int, error) {
		if g.N == 0 {
			return nil, 0, ErrEmptyGraph
		}

		lab := make([]int, g.N)
		for i := range lab {
			lab[i] = i
		}

		p := newPartition(g, nil)
		louvainOneLevelPass(p, g)
		n := updatePartition(p, lab)
		return lab, n, nil
	}
}

// LouvainComplete returns a partitioner running full multi-level Louvain:
// repeatedly run a one-level pass, compose the result into lab, and — so
// long as the pass cleared MinImprovement — coarsen into the quotient graph
// and continue. It stops at the first level whose one-level gain falls
// below MinImprovement, returning the labelling composed through every
// level run so far.
func LouvainComplete() func(g *core.Graph) ([]int, int, error) {
	return func(g *core.Graph) ([]int, int, error) {
		if g.N == 0 {
			return nil, 0, ErrEmptyGraph
		}

		lab := make([]int, g.N)
		for i := range lab {
			lab[i] = i
		}

		cur := g
		n := g.N

		for {
			p := newPartition(cur, nil)
			improvement := louvainOneLevelPass(p, cur)
			n = updatePartition(p, lab)

			if improvement < MinImprovement {
				break
			}
			cur = quotientGraph(p, cur)
		}

		return lab, n, nil
	}
}

// quotientGraph coarsens g by p's community assignment into a new graph of
// p's (renumbered) community count, one node per community. It runs in two
// phases per community: accumulate every member's full neighbour-community
// weight into the sparse set (self-loop slots included, so intra-community
// edges land as the community's own self-loop weight), then flush the
// sparse set into CD/Adj/Weights before moving to the next community.
func quotientGraph(p *Partition, g *core.Graph) *core.Graph {
	k := renumberCommunities(p)

	order := make([]int, g.N)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return p.Node2Community[order[a]] < p.Node2Community[order[b]]
	})

	res := &core.Graph{N: k, CD: make([]int64, k+1)}
	var adj []int32
	var weights []float64
	var total float64

	idx := 0
	for comm := 0; comm < k; comm++ {
		p.resetNeighCommunities()
		for idx < g.N && p.Node2Community[order[idx]] == comm {
			p.accumulateAllNeighborCommunities(g, order[idx])
			idx++
		}

		res.CD[comm+1] = res.CD[comm] + int64(p.neighCommNb)
		for j := 0; j < p.neighCommNb; j++ {
			nc := p.neighCommPos[j]
			w := p.neighCommWeights[nc]
			adj = append(adj, int32(nc))
			weights = append(weights, w)
			total += w
		}
	}

	res.Adj = adj
	res.Weights = weights
	res.TotalWeight = total
	res.E = int64(len(adj)) / 2
	return res
}
