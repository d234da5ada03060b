package hierclust_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hierclust "github.com/katalvlaran/hierclust"
)

func TestContext_PartitionerResolvesEveryStableAlgo(t *testing.T) {
	ctx := hierclust.NewContext(nil, 0.2, nil, rand.New(rand.NewSource(1)))
	for algo := 0; algo <= 4; algo++ {
		part, err := ctx.Partitioner(algo)
		require.NoError(t, err, "algo %d", algo)
		assert.NotNil(t, part)
	}
}

func TestContext_PartitionerRejectsUnknownAlgo(t *testing.T) {
	ctx := hierclust.NewContext(nil, 0.2, nil, rand.New(rand.NewSource(1)))
	_, err := ctx.Partitioner(5)
	assert.ErrorIs(t, err, hierclust.ErrUnknownAlgo)
}

func TestContext_ChildBuilderIsSharedAcrossCalls(t *testing.T) {
	ctx := hierclust.NewContext(nil, 0.2, nil, rand.New(rand.NewSource(1)))
	assert.Same(t, ctx.ChildBuilder(), ctx.ChildBuilder())
}
