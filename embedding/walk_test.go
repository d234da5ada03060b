package embedding_test

import (
	"bufio"
	"bytes"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierclust/attrstore"
	"github.com/katalvlaran/hierclust/embedding"
)

func TestWalk_SingleRootLeafWithinDampingBound(t *testing.T) {
	hier := "0 1 3 10 20 30\n"
	var out bytes.Buffer
	err := embedding.Walk(strings.NewReader(hier), &out, 2, 0.5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	var ids []int
	for _, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 3) // id + k=2 components

		id, err := strconv.Atoi(fields[0])
		require.NoError(t, err)
		ids = append(ids, id)

		for _, vs := range fields[1:] {
			v, err := strconv.ParseFloat(vs, 64)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, -1.0)
			assert.Less(t, v, 1.0)
		}
	}
	assert.ElementsMatch(t, []int{10, 20, 30}, ids)
}

func TestWalk_InteriorWithTwoLeafChildrenEmitsTwoLines(t *testing.T) {
	hier := "0 2\n1 1 1 0\n1 1 1 1\n"
	var out bytes.Buffer
	err := embedding.Walk(strings.NewReader(hier), &out, 1, 0.5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
}

func TestWalkAttributed_EmptyStoreStillWritesLeafLine(t *testing.T) {
	hier := "0 1 1 42\n"

	store := attrstore.NewEmptyMemory()
	proj := embedding.NewProjection(2, 3, rand.New(rand.NewSource(2)))

	var out bytes.Buffer
	err := embedding.WalkAttributed(strings.NewReader(hier), &out, 2, 0.5, 1.0, rand.New(rand.NewSource(3)), store, proj)
	require.NoError(t, err)

	br := bufio.NewReader(strings.NewReader(out.String()))
	line, _, err := br.ReadLine()
	require.NoError(t, err)
	fields := strings.Fields(string(line))
	require.Len(t, fields, 3)
	assert.Equal(t, "42", fields[0])
}
