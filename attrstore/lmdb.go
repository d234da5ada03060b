//go:build lmdb

package attrstore

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/PowerDNS/lmdb-go/lmdb"

	"github.com/katalvlaran/hierclust/core"
	"github.com/katalvlaran/hierclust/xfloat"
)

// LMDB backs the attribute Store with a memory-mapped LMDB database
// instead of one dense in-process slice, for attribute files too large to
// comfortably duplicate into RAM. It is built behind the "lmdb" build
// tag, opt-in: the rest of hierclust stays pure Go and cgo-free by
// default, matching the zero-dependency posture of the graph primitives
// it's layered under.
//
// Keys are the original node ID as a big-endian uint64; values are the
// dim float64 components, little-endian, back to back. LMDB read
// transactions are safe without external locking, so concurrent lookups
// during a Louvain pass need no mutex here.
type LMDB struct {
	env   *lmdb.Env
	dbi   lmdb.DBI
	dim   int
	maxID int
}

// OpenLMDB opens (creating if needed) an LMDB environment at dir and
// loads attribute rows from path into it, the same two-pass, same-dim,
// skip-short-rows semantics as LoadMemory.
func OpenLMDB(dir, path string) (*LMDB, error) {
	dim, maxID, err := scanAttrShape(path)
	if err != nil {
		return nil, err
	}

	env, eerr := lmdb.NewEnv()
	if eerr != nil {
		return nil, fmt.Errorf("attrstore: lmdb env create: %w", eerr)
	}
	if err := env.SetMapSize(int64(1) << 34); err != nil {
		return nil, fmt.Errorf("attrstore: lmdb set map size: %w", err)
	}
	if err := env.Open(dir, 0, 0o644); err != nil {
		return nil, fmt.Errorf("attrstore: lmdb open: %w", err)
	}

	store := &LMDB{env: env, dim: dim, maxID: maxID}

	err = env.Update(func(txn *lmdb.Txn) error {
		dbi, derr := txn.CreateDBI("attrs")
		if derr != nil {
			return derr
		}
		store.dbi = dbi
		return loadRowsInto(path, dim, func(id int, vec []float64) error {
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(id))
			val := make([]byte, 8*dim)
			for j, x := range vec {
				binary.LittleEndian.PutUint64(val[j*8:], math.Float64bits(x))
			}
			return txn.Put(dbi, key, val, 0)
		})
	})
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("attrstore: lmdb load: %w", err)
	}

	return store, nil
}

// loadRowsInto re-scans path and invokes put for every row that carries a
// full dim-length vector, exactly the rows LoadMemory would mark present.
func loadRowsInto(path string, dim int, put func(id int, vec []float64) error) error {
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
		if perr != nil {
			continue
		}
		vec := fields[1:]
		if len(vec) < dim {
			continue
		}
		row := make([]float64, dim)
		ok := true
		for j := 0; j < dim; j++ {
			x, verr := strconv.ParseFloat(vec[j], 64)
			if verr != nil {
				ok = false
				break
			}
			row[j] = x
		}
		if !ok {
			continue
		}
		if err := put(id, row); err != nil {
			return err
		}
	}
	return nil
}

// Dim implements Store.
func (l *LMDB) Dim() int { return l.dim }

// Lookup implements Store.
func (l *LMDB) Lookup(originalID int) ([]float64, bool) {
	if l.dim == 0 || originalID < 0 || originalID > l.maxID {
		return nil, false
	}
	var out []float64
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(originalID))

	err := l.env.View(func(txn *lmdb.Txn) error {
		val, verr := txn.Get(l.dbi, key)
		if verr != nil {
			if lmdb.IsNotFound(verr) {
				return nil
			}
			return verr
		}
		out = make([]float64, l.dim)
		for j := 0; j < l.dim; j++ {
			out[j] = math.Float64frombits(binary.LittleEndian.Uint64(val[j*8:]))
		}
		return nil
	})
	if err != nil || out == nil {
		return nil, false
	}
	return out, true
}

// CosineToComm implements Store.
func (l *LMDB) CosineToComm(g *core.Graph, localNode int, commVec []float64, commSize int) float64 {
	if l.dim == 0 || commSize == 0 {
		return 0.0
	}
	x, ok := l.Lookup(g.OriginalID(localNode))
	if !ok {
		return 0.0
	}
	var dot, nx, nc xfloat.Sum
	for j := 0; j < l.dim; j++ {
		cj := commVec[j] / float64(commSize)
		dot.Add(x[j] * cj)
		nx.Add(x[j] * x[j])
		nc.Add(cj * cj)
	}
	nxv, ncv := nx.Value(), nc.Value()
	if nxv <= 0.0 || ncv <= 0.0 {
		return 0.0
	}
	return dot.Value() / (math.Sqrt(nxv) * math.Sqrt(ncv))
}

// DotToComm implements Store.
func (l *LMDB) DotToComm(g *core.Graph, localNode int, commVec []float64) float64 {
	if l.dim == 0 {
		return 0.0
	}
	x, ok := l.Lookup(g.OriginalID(localNode))
	if !ok {
		return 0.0
	}
	var dot xfloat.Sum
	for j := 0; j < l.dim; j++ {
		dot.Add(x[j] * commVec[j])
	}
	return dot.Value()
}

// Close implements Store, releasing the LMDB environment.
func (l *LMDB) Close() error {
	l.env.Close()
	return nil
}
