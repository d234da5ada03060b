// Command hi2vec walks a hierarchy file into node embeddings:
// "hi2vec k a hierarchy vectors".
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hierclust/embedding"
	"github.com/katalvlaran/hierclust/runconfig"
	"github.com/katalvlaran/hierclust/store"
	"github.com/katalvlaran/hierclust/telemetry"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:   "hi2vec k a hierarchy vectors",
		Short: "Walk a hierarchy file into node embeddings",
		Args:  cobra.ExactArgs(4),
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
		return fmt.Errorf("hi2vec: invalid k %q: %w", args[0], err)
	}
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("hi2vec: invalid a %q: %w", args[1], err)
	}

	metrics := telemetry.NewMetrics(cfg.MetricsDir)
	defer metrics.Close()

	in, err := os.Open(args[2])
	if err != nil {
		telemetry.ReportFatal(err)
		return fmt.Errorf("hi2vec: opening %s: %w", args[2], err)
	}
	defer in.Close()

	out, err := os.Create(args[3])
	if err != nil {
		telemetry.ReportFatal(err)
		return fmt.Errorf("hi2vec: creating %s: %w", args[3], err)
	}
	defer out.Close()

	rng := rand.New(rand.NewSource(cfg.Seed))
	if err := embedding.Walk(in, out, k, a, rng); err != nil {
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
		if err := store.SinkVectorsFile(sink, args[3]); err != nil {
			telemetry.ReportFatal(err)
			return err
		}
	}

	return nil
}
