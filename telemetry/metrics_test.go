package telemetry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierclust/telemetry"
)

func TestMetrics_CloseWritesTextfileWhenDirSet(t *testing.T) {
	dir := t.TempDir()
	m := telemetry.NewMetrics(dir)
	m.NodesProcessed.Add(6)
	m.LeavesEmitted.Inc()
	m.MaxDepth.Set(2)
	m.FinalModularity.Set(0.42)

	require.NoError(t, m.Close())

	data, err := os.ReadFile(filepath.Join(dir, "hierclust.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hierclust_nodes_processed_total")
	assert.Contains(t, string(data), "hierclust_final_modularity")
}

func TestMetrics_CloseNoOpWithoutDir(t *testing.T) {
	m := telemetry.NewMetrics("")
	assert.NoError(t, m.Close())
}
