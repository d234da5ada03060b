package community

import (
	"github.com/katalvlaran/hierclust/attrstore"
	"github.com/katalvlaran/hierclust/core"
)

// AttrParams configures LouvainAttributed: Lambda weights the attribute
// term against the modularity term in each candidate move's gain, and
// Attrs supplies the per-node vectors it's computed against.
type AttrParams struct {
	Lambda float64
	Attrs  attrstore.Store
}

// attrGain returns Lambda times the cosine similarity between node's
// attribute vector and comm's mean attribute vector, or 0 whenever the
// comparison is undefined (no attribute store, no dimension, empty
// community, or Lambda<=0).
func attrGain(p *Partition, g *core.Graph, params AttrParams, node, comm int) float64 {
	if params.Lambda <= 0 || params.Attrs == nil || p.attrDim == 0 || p.AttrSums == nil || p.CommSize[comm] == 0 {
		return 0.0
	}
	base := comm * p.attrDim
	vec := p.AttrSums[base : base+p.attrDim]
	return params.Lambda * params.Attrs.CosineToComm(g, node, vec, p.CommSize[comm])
}

// louvainOneLevelAttributed runs greedy node moves whose gain is the
// ordinary modularity gain plus attrGain, to a fixed point (no move
// improves any node's total gain). Unlike louvainOneLevelPass it runs a
// single criterion — no moves this sweep — rather than comparing successive
// modularity values, since the attribute term is not itself a modularity
// contribution the MinImprovement threshold was calibrated against.
func louvainOneLevelAttributed(p *Partition, g *core.Graph, params AttrParams) {
	for {
		moves := 0

		for node := 0; node < g.N; node++ {
			oldComm := p.Node2Community[node]
			degreeW := g.DegreeWeighted(node)

			p.resetNeighCommunities()
			p.seedNeighCommunities(g, node)

			p.removeNode(g, params.Attrs, node, oldComm, p.neighCommWeights[oldComm])

			bestComm := oldComm
			bestW := 0.0
			bestGain := attrGain(p, g, params, node, oldComm)

			for j := 0; j < p.neighCommNb; j++ {
				nc := p.neighCommPos[j]
				ng := gain(p, g, nc, p.neighCommWeights[nc], degreeW) + attrGain(p, g, params, node, nc)
				if ng > bestGain {
					bestComm = nc
					bestW = p.neighCommWeights[nc]
					bestGain = ng
				}
			}

			p.insertNode(g, params.Attrs, node, bestComm, bestW)
			if bestComm != oldComm {
				moves++
			}
		}

		if moves == 0 {
			break
		}
	}
}

// LouvainAttributed returns a one-level partitioner whose gain mixes in
// cosine similarity to each candidate community's mean attribute vector,
// weighted by params.Lambda. If params.Lambda is 0, it falls back to
// DefaultLambda.
func LouvainAttributed(params AttrParams) func(g *core.Graph) ([]int, int, error) {
	if params.Lambda == 0 {
		params.Lambda = DefaultLambda
	}

	return func(g *core.Graph) ([]int, int, error) {
		if g.N == 0 {
			return nil, 0, ErrEmptyGraph
		}

		lab := make([]int, g.N)
		for i := range lab {
			lab[i] = i
		}

		p := newPartition(g, params.Attrs)
		louvainOneLevelAttributed(p, g, params)
		n := updatePartition(p, lab)
		return lab, n, nil
	}
}
