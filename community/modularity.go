package community

import (
	"github.com/katalvlaran/hierclust/core"
	"github.com/katalvlaran/hierclust/xfloat"
)

// modularity computes Q = (1/m2) * sum_c [In[c] - Tot[c]^2/m2] over every
// community that currently holds at least one unit of weighted degree,
// accumulating the sum with Kahan compensation to keep the comparison
// against MinImprovement meaningful across many nodes.
func modularity(p *Partition, g *core.Graph) float64 {
	m2 := g.TotalWeight
	if m2 == 0 {
		return 0.0
	}

	var q xfloat.Sum
	for i := 0; i < p.Size; i++ {
		if p.Tot[i] > 0 {
			q.Add(p.In[i] - (p.Tot[i]*p.Tot[i])/m2)
		}
	}
	return q.Value() / m2
}
