package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierclust/community"
	"github.com/katalvlaran/hierclust/core"
)

func TestLabelPropagation_SeparatesBridgedTriangles(t *testing.T) {
	g := twoTrianglesBridged(t)
	lab, nlab, err := community.LabelPropagation(community.NewRNG(3))(g)
	require.NoError(t, err)
	require.LessOrEqual(t, nlab, 2)

	assert.Equal(t, lab[0], lab[1])
	assert.Equal(t, lab[1], lab[2])
	assert.Equal(t, lab[3], lab[4])
	assert.Equal(t, lab[4], lab[5])
}

func TestLabelPropagation_DeterministicGivenSameSeed(t *testing.T) {
	// Two runs with fresh, identically-seeded RNGs must produce the same
	// labelling: the algorithm restarts from a fresh singleton labelling
	// each call, so its output depends only on the graph and the seed.
	g := twoTrianglesBridged(t)
	lab1, nlab1, err := community.LabelPropagation(community.NewRNG(9))(g)
	require.NoError(t, err)
	lab2, nlab2, err := community.LabelPropagation(community.NewRNG(9))(g)
	require.NoError(t, err)

	assert.Equal(t, lab1, lab2)
	assert.Equal(t, nlab1, nlab2)
}

func TestLabelPropagation_EveryLabelUsed(t *testing.T) {
	g := twoTrianglesBridged(t)
	lab, nlab, err := community.LabelPropagation(community.NewRNG(5))(g)
	require.NoError(t, err)

	seen := make([]bool, nlab)
	for _, l := range lab {
		seen[l] = true
	}
	for i, ok := range seen {
		assert.True(t, ok, "label %d unused after renumbering", i)
	}
}

func TestLabelPropagation_EmptyGraphErrors(t *testing.T) {
	_, _, err := community.LabelPropagation(community.NewRNG(1))(&core.Graph{N: 0})
	assert.ErrorIs(t, err, community.ErrEmptyGraph)
}
