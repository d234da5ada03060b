package hierarchy

import (
	"bufio"
	"io"

	"github.com/katalvlaran/hierclust/core"
)

// Recurse writes g's recursive bisection as a hierarchy record stream to
// w, consuming g (and everything mkchild induces from it) along the way.
// part is invoked on every non-trivial subgraph; cb amortises mkchild's
// scratch across the nlab children produced at each depth.
func Recurse(w io.Writer, g *core.Graph, part Partitioner, cb *core.ChildBuilder) error {
	bw := bufio.NewWriter(w)
	if err := recurse(bw, g, 0, part, cb); err != nil {
		return err
	}
	return bw.Flush()
}

func recurse(bw *bufio.Writer, g *core.Graph, depth int, part Partitioner, cb *core.ChildBuilder) error {
	if g.E == 0 {
		return writeLeaf(bw, depth, g)
	}

	lab, nlab, err := part(g)
	if err != nil {
		return err
	}
	if nlab == 1 {
		return writeLeaf(bw, depth, g)
	}

	if err := writeInterior(bw, depth, nlab); err != nil {
		return err
	}
	for c := 0; c < nlab; c++ {
		child, err := cb.Child(g, lab, nlab, depth, c)
		if err != nil {
			return err
		}
		if err := recurse(bw, child, depth+1, part, cb); err != nil {
			return err
		}
	}
	return nil
}
