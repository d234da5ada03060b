// Command hi2vec-attr walks a hierarchy file into attribute-aware node
// embeddings: "hi2vec_attr k a beta hierarchy attributes vectors".
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hierclust/attrstore"
	"github.com/katalvlaran/hierclust/embedding"
	"github.com/katalvlaran/hierclust/runconfig"
	"github.com/katalvlaran/hierclust/store"
	"github.com/katalvlaran/hierclust/telemetry"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:   "hi2vec_attr k a beta hierarchy attributes vectors",
		Short: "Walk a hierarchy file into attribute-aware node embeddings",
		Args:  cobra.ExactArgs(6),
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

	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("hi2vec_attr: invalid k %q: %w", args[0], err)
	}
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("hi2vec_attr: invalid a %q: %w", args[1], err)
	}
	beta, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("hi2vec_attr: invalid beta %q: %w", args[2], err)
	}

	metrics := telemetry.NewMetrics(cfg.MetricsDir)
	defer metrics.Close()

	in, err := os.Open(args[3])
	if err != nil {
		telemetry.ReportFatal(err)
		return fmt.Errorf("hi2vec_attr: opening %s: %w", args[3], err)
	}
	defer in.Close()

	attrs, err := attrstore.LoadMemory(args[4])
	if err != nil {
		telemetry.ReportFatal(err)
		return err
	}
	defer attrs.Close()

	out, err := os.Create(args[5])
	if err != nil {
		telemetry.ReportFatal(err)
		return fmt.Errorf("hi2vec_attr: creating %s: %w", args[5], err)
	}
	defer out.Close()

	rng := rand.New(rand.NewSource(cfg.Seed))
	proj := embedding.NewProjection(k, attrs.Dim(), rng)
	if err := embedding.WalkAttributed(in, out, k, a, beta, rng, attrs, proj); err != nil {
		telemetry.ReportFatal(err)
		return err
	}

	if cfg.DatabaseURL != "" {
		sink, err := store.OpenPostgres(context.Background(), cfg.DatabaseURL, uuid.NewString())
		if err != nil {
			telemetry.ReportFatal(err)
			return err
		}
		defer sink.Close()
		if err := store.SinkVectorsFile(sink, args[5]); err != nil {
			telemetry.ReportFatal(err)
			return err
		}
	}

	return nil
}
