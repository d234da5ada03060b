package community_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierclust/community"
	"github.com/katalvlaran/hierclust/core"
)

func writeEdgeList(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func twoTrianglesBridged(t *testing.T) *core.Graph {
	t.Helper()
	// Two tight triangles {0,1,2} and {3,4,5} joined by one weak bridge
	// edge 2-3; any sane community detector should keep the triangles
	// intact and cut at the bridge.
	path := writeEdgeList(t, "0 1\n1 2\n0 2\n2 3\n3 4\n4 5\n3 5\n")
	g, err := core.ReadEdgeList(path)
	require.NoError(t, err)
	return g
}

func singleTriangle(t *testing.T) *core.Graph {
	t.Helper()
	path := writeEdgeList(t, "0 1\n1 2\n0 2\n")
	g, err := core.ReadEdgeList(path)
	require.NoError(t, err)
	return g
}

func TestLouvainOneLevel_TriangleMergesIntoOneCommunity(t *testing.T) {
	g := singleTriangle(t)
	lab, nlab, err := community.LouvainOneLevel()(g)
	require.NoError(t, err)
	assert.Equal(t, 1, nlab)
	assert.Equal(t, []int{0, 0, 0}, lab)
}

func TestLouvainComplete_SeparatesBridgedTriangles(t *testing.T) {
	g := twoTrianglesBridged(t)
	lab, nlab, err := community.LouvainComplete()(g)
	require.NoError(t, err)
	require.Equal(t, 2, nlab)

	assert.Equal(t, lab[0], lab[1])
	assert.Equal(t, lab[1], lab[2])
	assert.Equal(t, lab[3], lab[4])
	assert.Equal(t, lab[4], lab[5])
	assert.NotEqual(t, lab[0], lab[3])
}

func TestLouvainOneLevel_EveryLabelUsed(t *testing.T) {
	g := twoTrianglesBridged(t)
	lab, nlab, err := community.LouvainOneLevel()(g)
	require.NoError(t, err)

	seen := make([]bool, nlab)
	for _, l := range lab {
		require.GreaterOrEqual(t, l, 0)
		require.Less(t, l, nlab)
		seen[l] = true
	}
	for i, ok := range seen {
		assert.True(t, ok, "label %d unused after renumbering", i)
	}
}

func TestLouvainComplete_EmptyGraphErrors(t *testing.T) {
	g := &core.Graph{N: 0}
	_, _, err := community.LouvainComplete()(g)
	assert.ErrorIs(t, err, community.ErrEmptyGraph)
}

func TestLouvainComplete_QuotientGraphInvariantsHoldAcrossLevels(t *testing.T) {
	// Four disjoint triangles: a case that needs at least one coarsening
	// round, so LouvainComplete actually exercises quotientGraph. We can't
	// reach into the intermediate quotient graphs directly from outside
	// the package, so instead assert the externally observable corollary:
	// the final labelling still groups each triangle together.
	path := writeEdgeList(t, "0 1\n1 2\n0 2\n3 4\n4 5\n3 5\n6 7\n7 8\n6 8\n9 10\n10 11\n9 11\n")
	g, err := core.ReadEdgeList(path)
	require.NoError(t, err)

	lab, nlab, err := community.LouvainComplete()(g)
	require.NoError(t, err)
	assert.LessOrEqual(t, nlab, 4)

	for base := 0; base < 12; base += 3 {
		assert.Equal(t, lab[base], lab[base+1])
		assert.Equal(t, lab[base+1], lab[base+2])
	}
}
