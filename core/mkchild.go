package core

// layerScratch is the per-depth bucket sort the ChildBuilder amortises
// across all nlab calls to Child at a given recursion depth: nodes groups
// every node by label, newIndex gives each node its dense index within
// its own label's bucket, cd is the cumulative count per label, and
// incidence[lab] is the (pre-halving) count of adjacency slots whose two
// endpoints share label lab.
type layerScratch struct {
	nodes     []int
	newIndex  []int
	cd        []int64
	incidence []int64
}

// ChildBuilder amortises the work of inducing every child subgraph at a
// given recursion depth into a single bucket sort, built lazily on the
// first child requested at that depth and released once the last child
// has been extracted. This mirrors the layered scratch arrays in the
// original mkchild: all children at one depth must be built before the
// layer is freed, so callers (the hierarchy driver) must finish an entire
// sibling group before recursing past it.
//
// A ChildBuilder is not safe for concurrent use; hierclust's recursion is
// single-threaded by design (see the package-level docs of core).
type ChildBuilder struct {
	layers map[int]*layerScratch
}

// NewChildBuilder returns a ChildBuilder with no layers built yet.
func NewChildBuilder() *ChildBuilder {
	return &ChildBuilder{layers: make(map[int]*layerScratch)}
}

// Child induces the dense subgraph containing exactly the nodes with
// lab[u] == clab and exactly their intra-cluster edges, re-indexed
// 0..sg.N-1, with sg.Map giving original node IDs (chained through
// g.Map). depth identifies the recursion level so children from
// unrelated levels never share scratch; clab must range over 0..nlab-1
// in order for the per-depth layer to be built and released correctly —
// building it on clab==0 and freeing it after clab==nlab-1.
func (cb *ChildBuilder) Child(g *Graph, lab []int, nlab int, depth int, clab int) (*Graph, error) {
	if clab < 0 || clab >= nlab {
		return nil, ErrLabelOutOfRange
	}

	layer, ok := cb.layers[depth]
	if !ok {
		var err error
		layer, err = buildLayer(g, lab, nlab)
		if err != nil {
			return nil, err
		}
		cb.layers[depth] = layer
	}

	sg := extractChild(g, lab, layer, clab)

	if clab == nlab-1 {
		delete(cb.layers, depth)
	}

	return sg, nil
}

// buildLayer performs the counting-sort bucketing of every node by label,
// and tallies, per label, the raw (not yet halved) number of adjacency
// slots whose endpoints share that label.
func buildLayer(g *Graph, lab []int, nlab int) (*layerScratch, error) {
	bucketSize := make([]int64, nlab)
	for u := 0; u < g.N; u++ {
		if lab[u] < 0 || lab[u] >= nlab {
			return nil, ErrLabelOutOfRange
		}
		bucketSize[lab[u]]++
	}

	cd := make([]int64, nlab+1)
	for l := 0; l < nlab; l++ {
		cd[l+1] = cd[l] + bucketSize[l]
		bucketSize[l] = 0 // reused as a per-bucket write cursor
	}

	nodes := make([]int, g.N)
	newIndex := make([]int, g.N)
	incidence := make([]int64, nlab)

	for u := 0; u < g.N; u++ {
		lu := lab[u]
		pos := cd[lu] + bucketSize[lu]
		nodes[pos] = u
		newIndex[u] = int(bucketSize[lu])
		bucketSize[lu]++

		for _, vv := range g.Neighbors(u) {
			v := int(vv)
			if lu == lab[v] {
				incidence[lu]++
			}
		}
	}

	return &layerScratch{nodes: nodes, newIndex: newIndex, cd: cd, incidence: incidence}, nil
}

// extractChild builds the CSR subgraph for label clab out of the layer
// built by buildLayer.
func extractChild(g *Graph, lab []int, layer *layerScratch, clab int) *Graph {
	lo, hi := layer.cd[clab], layer.cd[clab+1]
	n := int(hi - lo)
	e := layer.incidence[clab] / 2

	sg := &Graph{
		N:           n,
		E:           e,
		CD:          make([]int64, n+1),
		Adj:         make([]int32, 2*e),
		Weights:     nil,
		TotalWeight: float64(2 * e),
		Map:         make([]int, n),
	}

	var cursor int64
	for k := lo; k < hi; k++ {
		u := layer.nodes[k]
		newU := layer.newIndex[u]
		sg.Map[newU] = g.OriginalID(u)

		for _, vv := range g.Neighbors(u) {
			v := int(vv)
			if lab[v] == clab {
				sg.Adj[cursor] = int32(layer.newIndex[v])
				cursor++
			}
		}
		sg.CD[newU+1] = cursor
	}

	return sg
}
