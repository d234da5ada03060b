// Command recpart partitions a graph into a hierarchy of communities:
// "recpart edgelist hierarchy [algo]".
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	hierclust "github.com/katalvlaran/hierclust"
	"github.com/katalvlaran/hierclust/core"
	"github.com/katalvlaran/hierclust/hierarchy"
	"github.com/katalvlaran/hierclust/runconfig"
	"github.com/katalvlaran/hierclust/store"
	"github.com/katalvlaran/hierclust/telemetry"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:   "recpart edgelist hierarchy [algo]",
		Short: "Recursively partition a graph into a hierarchy of communities",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, configPath string) error {
	cfg, err := runconfig.Load(configPath)
	if err != nil {
		return err
	}
	telemetry.InitLogger(cfg.LogLevel)
	if err := telemetry.InitSentry(cfg.SentryDSN); err != nil {
		return err
	}

	algo := cfg.Algo
	if len(args) == 3 {
		algo, err = strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("recpart: invalid algo %q: %w", args[2], err)
		}
	}

	metrics := telemetry.NewMetrics(cfg.MetricsDir)
	defer metrics.Close()

	g, err := core.ReadEdgeList(args[0])
	if err != nil {
		telemetry.ReportFatal(err)
		return err
	}

	ctx := hierclust.NewContext(nil, cfg.Lambda, nil, rand.New(rand.NewSource(cfg.Seed)))
	part, err := ctx.Partitioner(algo)
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		telemetry.ReportFatal(err)
		return fmt.Errorf("recpart: creating %s: %w", args[1], err)
	}
	defer out.Close()

	if err := hierarchy.Recurse(out, g, hierarchy.Partitioner(part), ctx.ChildBuilder()); err != nil {
		telemetry.ReportFatal(err)
		return err
	}

	metrics.NodesProcessed.Add(float64(g.N))

	if cfg.DatabaseURL != "" {
		if err := sinkLeaves(args[1], cfg.DatabaseURL, metrics); err != nil {
			telemetry.ReportFatal(err)
			return err
		}
	}
	return nil
}

// sinkLeaves replays the hierarchy file just written at hierarchyPath into
// Postgres, tagging the run with a fresh UUID so repeated runs against the
// same database don't collide.
func sinkLeaves(hierarchyPath, databaseURL string, metrics *telemetry.Metrics) error {
	ctx := context.Background()
	sink, err := store.OpenPostgres(ctx, databaseURL, uuid.NewString())
	if err != nil {
		return err
	}
	defer sink.Close()

	f, err := os.Open(hierarchyPath)
	if err != nil {
		return fmt.Errorf("recpart: reopening %s for sink: %w", hierarchyPath, err)
	}
	defer f.Close()

	maxDepth := 0
	return hierarchy.ForEachLeaf(f, func(depth int, ids []int) error {
		metrics.LeavesEmitted.Inc()
		if depth > maxDepth {
			maxDepth = depth
			metrics.MaxDepth.Set(float64(depth))
		}
		return sink.PutLeaf(ctx, depth, ids)
	})
}
