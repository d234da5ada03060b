package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// initialDegreeCapacity is the starting size of the per-node degree
// histogram built during the first pass over the edge list. It doubles
// whenever a node ID exceeds the current capacity, the geometric-growth
// discipline the rest of the pipeline relies on to stay cache-friendly on
// graphs whose node count isn't known up front.
const initialDegreeCapacity = 1024

// growDegrees returns a degree slice at least large enough to hold index
// need, doubling the capacity of d until it fits and zero-filling the new
// tail.
func growDegrees(d []int64, need int) []int64 {
	if need < len(d) {
		return d
	}
	cap2 := len(d)
	if cap2 == 0 {
		cap2 = initialDegreeCapacity
	}
	for cap2 <= need {
		cap2 *= 2
	}
	grown := make([]int64, cap2)
	copy(grown, d)
	return grown
}

// ReadEdgeList loads a whitespace-separated edge list (one "u v" pair of
// non-negative integers per line, order unimportant, multi-edges and
// self-loops allowed) into a CSR Graph. It reads the file twice: the
// first pass discovers N = max(u,v)+1 and the per-node degree, the second
// pass places each edge into both endpoints' adjacency rows.
//
// The returned Graph is unweighted (Weights == nil, TotalWeight == 2*E)
// and carries no node remapping (Map == nil): it is always the root of a
// recursion.
func ReadEdgeList(path string) (*Graph, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	n, e, degree, err := scanDegrees(path)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	cd := make([]int64, n+1)
	for i := 0; i < n; i++ {
		cd[i+1] = cd[i] + degree[i]
		degree[i] = 0 // reused below as a per-node write cursor
	}

	adj := make([]int32, 2*e)
	if err := fillAdjacency(path, cd, degree, adj); err != nil {
		return nil, err
	}

	return &Graph{
		N:           n,
		E:           e,
		CD:          cd,
		Adj:         adj,
		Weights:     nil,
		TotalWeight: float64(2 * e),
		Map:         nil,
	}, nil
}

// scanDegrees is the first pass: it determines N and the degree of every
// node without allocating adjacency storage yet.
func scanDegrees(path string) (n int, e int64, degree []int64, err error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		return 0, 0, nil, fmt.Errorf("%w: %v", ErrOpenFile, ferr)
	}
	defer f.Close()

	degree = make([]int64, initialDegreeCapacity)
	maxID := -1

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	for {
		u, okU, uerr := nextUint(sc)
		if uerr != nil {
			return 0, 0, nil, uerr
		}
		if !okU {
			break
		}
		v, okV, verr := nextUint(sc)
		if verr != nil {
			return 0, 0, nil, verr
		}
		if !okV {
			return 0, 0, nil, ErrMalformedEdge
		}

		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
		degree = growDegrees(degree, maxID)
		degree[u]++
		degree[v]++
		e++
	}

	n = maxID + 1
	degree = degree[:n]
	return n, e, degree, nil
}

// fillAdjacency is the second pass: it re-reads the file, placing each
// edge into both endpoints' rows using cursor as a per-node write offset
// (cursor is the zeroed-degree slice reused as scratch).
func fillAdjacency(path string, cd []int64, cursor []int64, adj []int32) error {
	f, ferr := os.Open(path)
	if ferr != nil {
		return fmt.Errorf("%w: %v", ErrOpenFile, ferr)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	for {
		u, okU, uerr := nextUint(sc)
		if uerr != nil {
			return uerr
		}
		if !okU {
			break
		}
		v, okV, verr := nextUint(sc)
		if verr != nil {
			return verr
		}
		if !okV {
			return ErrMalformedEdge
		}

		adj[cd[u]+cursor[u]] = int32(v)
		cursor[u]++
		adj[cd[v]+cursor[v]] = int32(u)
		cursor[v]++
	}
	return nil
}

// nextUint reads the next whitespace-delimited token as a non-negative
// integer. ok is false at clean EOF (no more tokens).
func nextUint(sc *bufio.Scanner) (val int, ok bool, err error) {
	if !sc.Scan() {
		if serr := sc.Err(); serr != nil && serr != io.EOF {
			return 0, false, fmt.Errorf("%w: %v", ErrMalformedEdge, serr)
		}
		return 0, false, nil
	}
	tok := sc.Bytes()
	n := 0
	if len(tok) == 0 {
		return 0, false, ErrMalformedEdge
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, false, ErrMalformedEdge
		}
		n = n*10 + int(c-'0')
	}
	return n, true, nil
}
