package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics is the Prometheus registry a single recpart/hi2vec run reports
// into. It is written to a textfile on Close rather than served over HTTP:
// these are one-shot batch processes, not long-running services, so the
// node_exporter textfile-collector convention fits better than a scrape
// endpoint.
type Metrics struct {
	registry *prometheus.Registry

	NodesProcessed  prometheus.Counter
	LeavesEmitted   prometheus.Counter
	MaxDepth        prometheus.Gauge
	FinalModularity prometheus.Gauge

	dir string
}

// NewMetrics registers a fresh set of gauges/counters under reg and
// returns them wrapped in a Metrics handle. dir, when non-empty, is the
// directory Close dumps a textfile-collector-format file into.
func NewMetrics(dir string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		dir:      dir,
		NodesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hierclust_nodes_processed_total",
			Help: "Original nodes assigned to a leaf hierarchy record.",
		}),
		LeavesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hierclust_leaves_emitted_total",
			Help: "Leaf hierarchy records emitted by the recursive driver.",
		}),
		MaxDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hierclust_max_depth",
			Help: "Deepest hierarchy level reached this run.",
		}),
		FinalModularity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hierclust_final_modularity",
			Help: "Modularity of the root-level partition this run computed.",
		}),
	}
	reg.MustRegister(m.NodesProcessed, m.LeavesEmitted, m.MaxDepth, m.FinalModularity)
	return m
}

// Close writes the registry's current values to "<dir>/hierclust.prom" in
// the Prometheus text exposition format, if a directory was configured.
func (m *Metrics) Close() error {
	if m.dir == "" {
		return nil
	}
	path := filepath.Join(m.dir, "hierclust.prom")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("telemetry: creating metrics textfile: %w", err)
	}
	defer f.Close()

	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gathering metrics: %w", err)
	}

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("telemetry: encoding metrics: %w", err)
		}
	}
	return nil
}
