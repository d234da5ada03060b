package community_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierclust/community"
	"github.com/katalvlaran/hierclust/core"
)

func chainGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n-1; i++ {
		fmt.Fprintf(&b, "%d %d\n", i, i+1)
	}
	path := filepath.Join(t.TempDir(), "chain.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	g, err := core.ReadEdgeList(path)
	require.NoError(t, err)
	return g
}

func TestRandom_BoundsLabelsToKOrN(t *testing.T) {
	g := chainGraph(t, 20)
	lab, nlab, err := community.Random(community.NewRNG(7))(g)
	require.NoError(t, err)
	assert.Equal(t, community.K, nlab)
	for _, l := range lab {
		assert.GreaterOrEqual(t, l, 0)
		assert.Less(t, l, nlab)
	}
}

func TestRandom_ClampsToGraphSizeWhenSmaller(t *testing.T) {
	g := chainGraph(t, 3)
	_, nlab, err := community.Random(community.NewRNG(1))(g)
	require.NoError(t, err)
	assert.Equal(t, 3, nlab)
}

func TestRandom_DeterministicGivenSameSeed(t *testing.T) {
	g := chainGraph(t, 20)
	lab1, _, err := community.Random(community.NewRNG(42))(g)
	require.NoError(t, err)
	lab2, _, err := community.Random(community.NewRNG(42))(g)
	require.NoError(t, err)
	assert.Equal(t, lab1, lab2)
}

func TestRandom_EmptyGraphErrors(t *testing.T) {
	g := &core.Graph{N: 0}
	_, _, err := community.Random(community.NewRNG(1))(g)
	assert.ErrorIs(t, err, community.ErrEmptyGraph)
}
