package community_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierclust/attrstore"
	"github.com/katalvlaran/hierclust/community"
	"github.com/katalvlaran/hierclust/core"
)

// starGraphWithSplitAttributes builds a 4-node star (hub 0, leaves 1,2,3)
// where topology alone gives no reason to split the leaves apart; the hub
// and leaves 1 and 2 carry one attribute vector and leaf 3 an orthogonal
// one. The attribute term is Lambda times a cosine similarity, which is 0
// (not negative) for leaf 3 against the hub's community, so it does not
// keep leaf 3 out: for any Lambda the result is the single community plain
// modularity gives on a star.
func starGraphWithSplitAttributes(t *testing.T) (*core.Graph, attrstore.Store) {
	t.Helper()
	edgePath := filepath.Join(t.TempDir(), "star.txt")
	require.NoError(t, os.WriteFile(edgePath, []byte("0 1\n0 2\n0 3\n"), 0o644))
	g, err := core.ReadEdgeList(edgePath)
	require.NoError(t, err)

	attrPath := filepath.Join(t.TempDir(), "attrs.txt")
	require.NoError(t, os.WriteFile(attrPath, []byte(
		"0 1.0 0.0\n1 1.0 0.0\n2 1.0 0.0\n3 0.0 1.0\n"), 0o644))
	store, err := attrstore.LoadMemory(attrPath)
	require.NoError(t, err)

	return g, store
}

func TestLouvainAttributed_NegativeLambdaMatchesPlainGain(t *testing.T) {
	g, store := starGraphWithSplitAttributes(t)
	lab, nlab, err := community.LouvainAttributed(community.AttrParams{
		Lambda: -1, // disables the attribute term entirely (<=0 guard)
		Attrs:  store,
	})(g)
	require.NoError(t, err)
	assert.Equal(t, 1, nlab)
	assert.Equal(t, []int{0, 0, 0, 0}, lab)
}

func TestLouvainAttributed_ZeroLambdaLabelsEveryNode(t *testing.T) {
	g, store := starGraphWithSplitAttributes(t)
	lab, _, err := community.LouvainAttributed(community.AttrParams{
		Attrs: store,
	})(g)
	require.NoError(t, err)
	assert.Len(t, lab, g.N)
}

func TestLouvainAttributed_EmptyGraphErrors(t *testing.T) {
	_, _, err := community.LouvainAttributed(community.AttrParams{
		Attrs: attrstore.NewEmptyMemory(),
	})(&core.Graph{N: 0})
	assert.ErrorIs(t, err, community.ErrEmptyGraph)
}
