package community

import (
	"errors"

	"github.com/katalvlaran/hierclust/attrstore"
	"github.com/katalvlaran/hierclust/core"
)

// Sentinel errors for community-detection operations.
var (
	// ErrEmptyGraph indicates a partitioner was called on a graph with no nodes.
	ErrEmptyGraph = errors.New("community: graph has no nodes")
)

// K bounds the number of labels Random ever hands out.
const K = 5

// MinImprovement is the minimum modularity gain a louvainOneLevel pass must
// clear to justify another pass over all nodes.
const MinImprovement = 0.005

// DefaultLambda is the attribute-term weight LouvainAttributed falls back to
// when the caller does not override it.
const DefaultLambda = 0.2

// Partition is the mutable bookkeeping Louvain threads through one pass over
// one graph: which community each node currently sits in, each community's
// internal and total weighted degree, its node count, and — only when an
// attrstore.Store was supplied — the running sum of its members' attribute
// vectors.
//
// neighCommWeights/neighCommPos/neighCommNb form a sparse set: a map from
// community ID to accumulated neighbour weight that resets in time
// proportional to the entries touched since the last reset, not the total
// community count. -1 marks an untouched slot.
type Partition struct {
	Size           int
	Node2Community []int
	In             []float64
	Tot            []float64
	CommSize       []int

	AttrSums []float64
	attrDim  int

	neighCommWeights []float64
	neighCommPos     []int
	neighCommNb      int
}

// newPartition builds the initial singleton partition of g: every node in
// its own community, In seeded from self-loop weight and Tot from weighted
// degree. When attrs is non-nil and carries a positive dimension, AttrSums
// is allocated and seeded with each node's own vector.
func newPartition(g *core.Graph, attrs attrstore.Store) *Partition {
	p := &Partition{
		Size:             g.N,
		Node2Community:   make([]int, g.N),
		In:               make([]float64, g.N),
		Tot:              make([]float64, g.N),
		CommSize:         make([]int, g.N),
		neighCommWeights: make([]float64, g.N),
		neighCommPos:     make([]int, g.N),
	}

	if attrs != nil {
		p.attrDim = attrs.Dim()
	}
	if p.attrDim > 0 {
		p.AttrSums = make([]float64, g.N*p.attrDim)
	}

	for i := 0; i < g.N; i++ {
		p.Node2Community[i] = i
		p.In[i] = g.SelfLoopWeighted(i)
		p.Tot[i] = g.DegreeWeighted(i)
		p.CommSize[i] = 1
		p.neighCommWeights[i] = -1

		if p.attrDim > 0 {
			if x, ok := attrs.Lookup(g.OriginalID(i)); ok {
				copy(p.AttrSums[i*p.attrDim:(i+1)*p.attrDim], x)
			}
		}
	}

	return p
}

// resetNeighCommunities clears every slot the sparse set touched since the
// last reset, leaving neighCommWeights consistently -1 everywhere.
func (p *Partition) resetNeighCommunities() {
	for i := 0; i < p.neighCommNb; i++ {
		p.neighCommWeights[p.neighCommPos[i]] = -1
	}
	p.neighCommNb = 0
}

// seedNeighCommunities populates the sparse set with node's own community
// (seeded at weight 0, so it is always a candidate even with no same-
// community neighbours) plus the accumulated weight toward every other
// community node has an edge into. Self-loop slots (neigh==node) are
// skipped: self-loop weight lives in In/Tot bookkeeping, never in the
// neighbour-community gain comparison.
func (p *Partition) seedNeighCommunities(g *core.Graph, node int) {
	own := p.Node2Community[node]
	p.neighCommPos[0] = own
	p.neighCommWeights[own] = 0
	p.neighCommNb = 1

	lo, hi := g.CD[node], g.CD[node+1]
	for i := lo; i < hi; i++ {
		neigh := int(g.Adj[i])
		if neigh == node {
			continue
		}
		nc := p.Node2Community[neigh]
		if p.neighCommWeights[nc] == -1 {
			p.neighCommPos[p.neighCommNb] = nc
			p.neighCommWeights[nc] = 0
			p.neighCommNb++
		}
		p.neighCommWeights[nc] += g.Weight(i)
	}
}

// accumulateAllNeighborCommunities is seedNeighCommunities's unconditional
// sibling, used when coarsening a graph: no own-community seeding, no
// self-loop skip. Every adjacency slot of node, including self-loop slots,
// lands in the sparse set.
func (p *Partition) accumulateAllNeighborCommunities(g *core.Graph, node int) {
	lo, hi := g.CD[node], g.CD[node+1]
	for i := lo; i < hi; i++ {
		neigh := int(g.Adj[i])
		nc := p.Node2Community[neigh]
		if p.neighCommWeights[nc] == -1 {
			p.neighCommPos[p.neighCommNb] = nc
			p.neighCommWeights[nc] = 0
			p.neighCommNb++
		}
		p.neighCommWeights[nc] += g.Weight(i)
	}
}

// removeNode detaches node from comm, given dnodecomm — the weight node
// already has toward comm, read off the sparse set before calling this.
func (p *Partition) removeNode(g *core.Graph, attrs attrstore.Store, node, comm int, dnodecomm float64) {
	p.In[comm] -= 2*dnodecomm + g.SelfLoopWeighted(node)
	p.Tot[comm] -= g.DegreeWeighted(node)
	if p.CommSize[comm] > 0 {
		p.CommSize[comm]--
	}
	p.attrRemove(g, attrs, node, comm)
}

// insertNode attaches node to comm, given dnodecomm — the weight node has
// toward comm (as insertNode leaves it, this is also its post-move
// contribution to In[comm]).
func (p *Partition) insertNode(g *core.Graph, attrs attrstore.Store, node, comm int, dnodecomm float64) {
	p.In[comm] += 2*dnodecomm + g.SelfLoopWeighted(node)
	p.Tot[comm] += g.DegreeWeighted(node)
	p.CommSize[comm]++
	p.Node2Community[node] = comm
	p.attrInsert(g, attrs, node, comm)
}

func (p *Partition) attrRemove(g *core.Graph, attrs attrstore.Store, node, comm int) {
	if p.attrDim == 0 || p.AttrSums == nil {
		return
	}
	x, ok := attrs.Lookup(g.OriginalID(node))
	if !ok {
		return
	}
	base := comm * p.attrDim
	for j := 0; j < p.attrDim; j++ {
		p.AttrSums[base+j] -= x[j]
	}
}

func (p *Partition) attrInsert(g *core.Graph, attrs attrstore.Store, node, comm int) {
	if p.attrDim == 0 || p.AttrSums == nil {
		return
	}
	x, ok := attrs.Lookup(g.OriginalID(node))
	if !ok {
		return
	}
	base := comm * p.attrDim
	for j := 0; j < p.attrDim; j++ {
		p.AttrSums[base+j] += x[j]
	}
}

// gain returns the modularity delta from moving a node of weighted degree
// degc into comm, given dnc — the node's current weight toward comm.
func gain(p *Partition, g *core.Graph, comm int, dnc, degc float64) float64 {
	return dnc - p.Tot[comm]*degc/g.TotalWeight
}

// updatePartition composes lab through p's community assignment: each
// lab[i] (an index into p.Node2Community) is rewritten to a densely
// renumbered community ID, assigned in first-seen order over 0..p.Size-1.
// It returns the number of distinct communities.
func updatePartition(p *Partition, lab []int) int {
	renumber := make([]int, p.Size)
	for i := range renumber {
		renumber[i] = -1
	}
	next := 0
	for i := 0; i < p.Size; i++ {
		c := p.Node2Community[i]
		if renumber[c] == -1 {
			renumber[c] = next
			next++
		}
	}
	for i := range lab {
		lab[i] = renumber[p.Node2Community[lab[i]]]
	}
	return next
}

// renumberCommunities is updatePartition's in-place sibling: it mutates
// p.Node2Community itself to the dense first-seen-order IDs and returns
// their count. Used immediately before coarsening a graph, where the
// quotient graph's node IDs must already be compact.
func renumberCommunities(p *Partition) int {
	renumber := make([]int, p.Size)
	for i := range renumber {
		renumber[i] = -1
	}
	next := 0
	for i := 0; i < p.Size; i++ {
		c := p.Node2Community[i]
		if renumber[c] == -1 {
			renumber[c] = next
			next++
		}
	}
	for i := 0; i < p.Size; i++ {
		p.Node2Community[i] = renumber[p.Node2Community[i]]
	}
	return next
}
