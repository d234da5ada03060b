package hierclust

import (
	"math/rand"

	"github.com/katalvlaran/hierclust/attrstore"
	"github.com/katalvlaran/hierclust/community"
	"github.com/katalvlaran/hierclust/core"
	"github.com/katalvlaran/hierclust/embedding"
)

// Context is the process-wide state a run threads through every call:
// the attribute table, the attributed-Louvain lambda, the embedding
// projection matrix, the RNG, and mkchild's depth scratch. The original
// kept these as process globals initialised once at startup; Context
// makes that lifetime explicit instead, so a test (or a long-lived
// caller handling several graphs) can hold more than one at a time
// without them interfering.
type Context struct {
	Attrs  attrstore.Store
	Lambda float64

	Proj *embedding.Projection

	RNG *rand.Rand

	children *core.ChildBuilder
}

// NewContext builds a Context with a fresh ChildBuilder and the given
// RNG. attrs may be nil (equivalent to attrstore.NewEmptyMemory()); proj
// may be nil when the run has no attributed embedding term.
func NewContext(attrs attrstore.Store, lambda float64, proj *embedding.Projection, rng *rand.Rand) *Context {
	if attrs == nil {
		attrs = attrstore.NewEmptyMemory()
	}
	return &Context{
		Attrs:    attrs,
		Lambda:   lambda,
		Proj:     proj,
		RNG:      rng,
		children: core.NewChildBuilder(),
	}
}

// ChildBuilder returns the context's mkchild scratch, amortised across
// every recursive-driver call made with this Context.
func (c *Context) ChildBuilder() *core.ChildBuilder {
	return c.children
}

// Partitioner resolves algo (0..4, matching the recpart CLI's algo
// argument) to a partitioner closure bound to this Context's RNG, Attrs
// and Lambda.
func (c *Context) Partitioner(algo int) (func(g *core.Graph) ([]int, int, error), error) {
	switch algo {
	case 0:
		return community.Random(c.RNG), nil
	case 1:
		return community.LouvainComplete(), nil
	case 2:
		return community.LouvainOneLevel(), nil
	case 3:
		return community.LabelPropagation(c.RNG), nil
	case 4:
		return community.LouvainAttributed(community.AttrParams{Lambda: c.Lambda, Attrs: c.Attrs}), nil
	default:
		return nil, ErrUnknownAlgo
	}
}
