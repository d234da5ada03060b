package hierarchy_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierclust/community"
	"github.com/katalvlaran/hierclust/core"
	"github.com/katalvlaran/hierclust/hierarchy"
)

func writeEdgeList(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRecurse_Triangle(t *testing.T) {
	g, err := core.ReadEdgeList(writeEdgeList(t, "0 1\n1 2\n0 2\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = hierarchy.Recurse(&buf, g, community.LouvainComplete(), core.NewChildBuilder())
	require.NoError(t, err)

	assert.Equal(t, "0 1 3 0 1 2\n", buf.String())
}

func TestRecurse_TwoDisconnectedTriangles(t *testing.T) {
	path := writeEdgeList(t, "0 1\n1 2\n0 2\n3 4\n4 5\n3 5\n")
	g, err := core.ReadEdgeList(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = hierarchy.Recurse(&buf, g, community.LouvainComplete(), core.NewChildBuilder())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0 2", lines[0])
	assert.ElementsMatch(t,
		[]string{"1 1 3 0 1 2", "1 1 3 3 4 5"},
		lines[1:],
	)
}

func TestRecurse_EmptyGraphEmitsSingleLeaf(t *testing.T) {
	g := &core.Graph{N: 2, E: 0, CD: []int64{0, 0, 0}}

	var buf bytes.Buffer
	err := hierarchy.Recurse(&buf, g, community.LouvainComplete(), core.NewChildBuilder())
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 0 1\n", buf.String())
}

func TestRecurse_LeafIDMultisetMatchesInput(t *testing.T) {
	path := writeEdgeList(t, "0 1\n1 2\n2 3\n3 4\n4 5\n5 0\n6 7\n")
	g, err := core.ReadEdgeList(path)
	require.NoError(t, err)
	n := g.N

	var buf bytes.Buffer
	err = hierarchy.Recurse(&buf, g, community.LabelPropagation(community.NewRNG(11)), core.NewChildBuilder())
	require.NoError(t, err)

	ids := collectLeafIDs(t, buf.String())
	assert.ElementsMatch(t, rangeInts(n), ids)
}

func collectLeafIDs(t *testing.T, stream string) []int {
	t.Helper()
	r := bufio.NewReader(strings.NewReader(stream))

	var ids []int
	for {
		_, count, err := hierarchy.ReadHeader(r)
		if err != nil {
			break
		}
		if count == 1 {
			leafIDs, err := hierarchy.ReadLeafIDs(r)
			require.NoError(t, err)
			ids = append(ids, leafIDs...)
		}
	}
	return ids
}

func rangeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
