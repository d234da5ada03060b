package hierarchy

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/hierclust/core"
)

// writeLeaf emits "depth 1 n id0 .. idn-1\n" for g, whose original IDs
// come from g.OriginalID (chaining through g.Map when present).
func writeLeaf(w *bufio.Writer, depth int, g *core.Graph) error {
	if _, err := fmt.Fprintf(w, "%d 1 %d", depth, g.N); err != nil {
		return err
	}
	for i := 0; i < g.N; i++ {
		if _, err := fmt.Fprintf(w, " %d", g.OriginalID(i)); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n")
	return err
}

// writeInterior emits "depth nlab\n".
func writeInterior(w *bufio.Writer, depth, nlab int) error {
	_, err := fmt.Fprintf(w, "%d %d\n", depth, nlab)
	return err
}

// ReadHeader reads one record's leading "depth count" pair. The caller
// distinguishes interior from leaf by count itself (a count of 1 only ever
// appears for a leaf, never as a partitioner-produced nlab — a
// one-community result is always collapsed to a leaf record by Recurse,
// so a reader never needs to look past this rule).
func ReadHeader(r *bufio.Reader) (depth, count int, err error) {
	_, err = fmt.Fscan(r, &depth, &count)
	if err == io.EOF {
		return 0, 0, io.EOF
	}
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return depth, count, nil
}

// ReadLeafIDs reads a leaf record's body: "n id0 .. idn-1", given that
// ReadHeader already consumed "depth 1". It returns the n original IDs.
func ReadLeafIDs(r *bufio.Reader) ([]int, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		if _, err := fmt.Fscan(r, &ids[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
	}
	return ids, nil
}
