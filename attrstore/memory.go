package attrstore

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hierclust/core"
	"github.com/katalvlaran/hierclust/xfloat"
)

// Memory is the default Store: a dense []float64 array sized
// (maxID+1)*dim plus a presence bitmap, loaded from disk in two passes.
type Memory struct {
	dim     int
	maxID   int
	values  []float64 // len (maxID+1)*dim
	present []bool    // len maxID+1
}

// NewEmptyMemory returns a Memory store with Dim()==0: every lookup and
// similarity call becomes a no-op, matching an unattributed run.
func NewEmptyMemory() *Memory {
	return &Memory{}
}

// LoadMemory loads an attribute file into a Memory store.
//
// Each non-empty line is "id x1 x2 ... xd". The dimension d is inferred
// from the first non-empty line; a later line carrying more than d values
// fails loading with ErrDimensionMismatch. A row with fewer than d+1
// tokens is not an error: it is skipped and the node is left absent
// (presence bit unset).
func LoadMemory(path string) (*Memory, error) {
	dim, maxID, err := scanAttrShape(path)
	if err != nil {
		return nil, err
	}

	m := &Memory{
		dim:     dim,
		maxID:   maxID,
		values:  make([]float64, (maxID+1)*dim),
		present: make([]bool, maxID+1),
	}
	if err := fillAttrRows(path, m); err != nil {
		return nil, err
	}
	return m, nil
}

func scanAttrShape(path string) (dim int, maxID int, err error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrOpenFile, ferr)
	}
	defer f.Close()

	haveDim := false
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		id, perr := strconv.Atoi(fields[0])
		if perr != nil {
			continue
		}
		d := len(fields) - 1
		if !haveDim {
			dim = d
			haveDim = true
		} else if d > dim {
			return 0, 0, ErrDimensionMismatch
		}
		if id > maxID {
			maxID = id
		}
	}
	if !haveDim {
		return 0, 0, ErrNoRows
	}
	return dim, maxID, nil
}

func fillAttrRows(path string, m *Memory) error {
	f, ferr := os.Open(path)
	if ferr != nil {
		return fmt.Errorf("%w: %v", ErrOpenFile, ferr)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 1 {
			continue
		}
		id, perr := strconv.Atoi(fields[0])
		if perr != nil || id > m.maxID {
			continue
		}
		vec := fields[1:]
		if len(vec) < m.dim {
			// Fewer tokens than the vector needs: skip silently,
			// node stays absent.
			continue
		}
		base := id * m.dim
		ok := true
		for j := 0; j < m.dim; j++ {
			x, verr := strconv.ParseFloat(vec[j], 64)
			if verr != nil {
				ok = false
				break
			}
			m.values[base+j] = x
		}
		if ok {
			m.present[id] = true
		}
	}
	return nil
}

// Dim implements Store.
func (m *Memory) Dim() int { return m.dim }

// Lookup implements Store.
func (m *Memory) Lookup(originalID int) ([]float64, bool) {
	if m.dim == 0 || originalID < 0 || originalID > m.maxID || !m.present[originalID] {
		return nil, false
	}
	base := originalID * m.dim
	return m.values[base : base+m.dim], true
}

// CosineToComm implements Store.
func (m *Memory) CosineToComm(g *core.Graph, localNode int, commVec []float64, commSize int) float64 {
	if m.dim == 0 || commSize == 0 {
		return 0.0
	}
	x, ok := m.Lookup(g.OriginalID(localNode))
	if !ok {
		return 0.0
	}

	var dot, nx, nc xfloat.Sum
	for j := 0; j < m.dim; j++ {
		cj := commVec[j] / float64(commSize)
		xj := x[j]
		dot.Add(xj * cj)
		nx.Add(xj * xj)
		nc.Add(cj * cj)
	}
	nxv, ncv := nx.Value(), nc.Value()
	if nxv <= 0.0 || ncv <= 0.0 {
		return 0.0
	}
	return dot.Value() / (math.Sqrt(nxv) * math.Sqrt(ncv))
}

// DotToComm implements Store.
func (m *Memory) DotToComm(g *core.Graph, localNode int, commVec []float64) float64 {
	if m.dim == 0 {
		return 0.0
	}
	x, ok := m.Lookup(g.OriginalID(localNode))
	if !ok {
		return 0.0
	}
	var dot xfloat.Sum
	for j := 0; j < m.dim; j++ {
		dot.Add(x[j] * commVec[j])
	}
	return dot.Value()
}

// Close implements Store. Memory holds no external resources.
func (m *Memory) Close() error { return nil }
