package embedding

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/katalvlaran/hierclust/attrstore"
	"github.com/katalvlaran/hierclust/hierarchy"
)

// rand1 draws a uniform value in [-1, 1), matching the original's
// 2*U(0,1)-1 perturbation draw.
func rand1(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}

// Walk reads a hierarchy record stream from r and writes one
// "id v0 .. vk-1" line per leaf node to w, in %e scientific notation.
func Walk(r io.Reader, w io.Writer, k int, a float64, rng *rand.Rand) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	vec := make([]float64, k)
	if err := walk(br, bw, k, a, rng, 0, vec, nil); err != nil {
		return err
	}
	return bw.Flush()
}

// WalkAttributed is Walk plus a fixed projection term added to every leaf
// node's vector: beta * a^h * (P*x_u)[j], 0 when the node carries no
// attribute.
func WalkAttributed(r io.Reader, w io.Writer, k int, a, beta float64, rng *rand.Rand, attrs attrstore.Store, proj *Projection) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	vec := make([]float64, k)
	ctx := &attrWalkContext{beta: beta, attrs: attrs, proj: proj}
	if err := walk(br, bw, k, a, rng, 0, vec, ctx); err != nil {
		return err
	}
	return bw.Flush()
}

type attrWalkContext struct {
	beta  float64
	attrs attrstore.Store
	proj  *Projection
}

func walk(br *bufio.Reader, bw *bufio.Writer, k int, a float64, rng *rand.Rand, depth int, vec []float64, attr *attrWalkContext) error {
	_, count, err := hierarchy.ReadHeader(br)
	if err != nil {
		return err
	}
	ah := math.Pow(a, float64(depth))

	if count == 1 {
		ids, err := hierarchy.ReadLeafIDs(br)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := writeLeafVector(bw, k, ah, vec, rng, attr, id); err != nil {
				return err
			}
		}
		return nil
	}

	nlab := count
	for c := 0; c < nlab; c++ {
		childVec := make([]float64, k)
		for j := 0; j < k; j++ {
			childVec[j] = vec[j] + rand1(rng)*ah
		}
		if err := walk(br, bw, k, a, rng, depth+1, childVec, attr); err != nil {
			return err
		}
	}
	return nil
}

func writeLeafVector(bw *bufio.Writer, k int, ah float64, vec []float64, rng *rand.Rand, attr *attrWalkContext, id int) error {
	var x []float64
	haveAttr := false
	if attr != nil && attr.attrs != nil && attr.proj != nil && attr.attrs.Dim() > 0 {
		x, haveAttr = attr.attrs.Lookup(id)
	}

	if _, err := fmt.Fprintf(bw, "%d", id); err != nil {
		return err
	}
	for j := 0; j < k; j++ {
		v := vec[j] + rand1(rng)*ah
		if haveAttr {
			v += attr.beta * ah * attr.proj.Coord(x, j)
		}
		if _, err := fmt.Fprintf(bw, " %e", v); err != nil {
			return err
		}
	}
	_, err := bw.WriteString("\n")
	return err
}
