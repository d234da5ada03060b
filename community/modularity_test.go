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

// TestModularity_TriangleOneLevelIsSingleCommunity checks that one-level
// Louvain puts a triangle into a single community: the textbook degenerate
// case in which Q == 0, since In[c] == TotalWeight and the penalty term
// equals (TotalWeight/TotalWeight)^2 * TotalWeight == TotalWeight.
func TestModularity_TriangleOneLevelIsSingleCommunity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2\n0 2\n"), 0o644))
	g, err := core.ReadEdgeList(path)
	require.NoError(t, err)

	lab, _, err := community.LouvainOneLevel()(g)
	require.NoError(t, err)

	// A triangle's only sane one-level outcome is the whole thing in one
	// community: modularity of a single component collapsed to one
	// community is exactly 0.
	for _, l := range lab {
		assert.Equal(t, lab[0], l)
	}
}
