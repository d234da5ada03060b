package attrstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierclust/attrstore"
	"github.com/katalvlaran/hierclust/core"
)

func writeAttrFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attrs.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMemory_DimInferredFromFirstRow(t *testing.T) {
	path := writeAttrFile(t, "0 1.0 0.0\n1 0.0 1.0\n")
	s, err := attrstore.LoadMemory(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Dim())

	v, ok := s.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, []float64{1.0, 0.0}, v)
}

func TestLoadMemory_ShortRowSkippedSilently(t *testing.T) {
	path := writeAttrFile(t, "0 1.0 0.0\n1 0.5\n")
	s, err := attrstore.LoadMemory(path)
	require.NoError(t, err)

	_, ok := s.Lookup(1)
	assert.False(t, ok)
}

func TestLoadMemory_MismatchedDimIsFatal(t *testing.T) {
	path := writeAttrFile(t, "0 1.0 0.0\n1 0.5 0.5 0.5\n")
	_, err := attrstore.LoadMemory(path)
	assert.ErrorIs(t, err, attrstore.ErrDimensionMismatch)
}

func TestLoadMemory_NoRows(t *testing.T) {
	path := writeAttrFile(t, "\n\n")
	_, err := attrstore.LoadMemory(path)
	assert.ErrorIs(t, err, attrstore.ErrNoRows)
}

func TestMemory_CosineToComm(t *testing.T) {
	path := writeAttrFile(t, "0 1.0 0.0\n")
	s, err := attrstore.LoadMemory(path)
	require.NoError(t, err)

	g := &core.Graph{N: 1, Map: nil}
	cos := s.CosineToComm(g, 0, []float64{2.0, 0.0}, 1)
	assert.InDelta(t, 1.0, cos, 1e-12)
}

func TestMemory_CosineToCommZeroWhenAbsent(t *testing.T) {
	s := attrstore.NewEmptyMemory()
	g := &core.Graph{N: 1}
	assert.Equal(t, 0.0, s.CosineToComm(g, 0, []float64{1, 2}, 1))
	assert.Equal(t, 0.0, s.DotToComm(g, 0, []float64{1, 2}))
}

func TestMemory_DotToComm(t *testing.T) {
	path := writeAttrFile(t, "0 2.0 3.0\n")
	s, err := attrstore.LoadMemory(path)
	require.NoError(t, err)

	g := &core.Graph{N: 1}
	dot := s.DotToComm(g, 0, []float64{5.0, 1.0})
	assert.InDelta(t, 13.0, dot, 1e-12)
}
