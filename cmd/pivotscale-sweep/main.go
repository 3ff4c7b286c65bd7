// Command pivotscale-sweep counts the exact number of cliques of
// every size from 1 up to k in one pass (spec §1,
// pivotscale-sweep.cc's main()).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ucsc-vama/pivotscale/internal/cli"
	"github.com/ucsc-vama/pivotscale/internal/comb"
	"github.com/ucsc-vama/pivotscale/internal/config"
	"github.com/ucsc-vama/pivotscale/internal/count"
	"github.com/ucsc-vama/pivotscale/internal/countio"
	"github.com/ucsc-vama/pivotscale/internal/ordering"
	"github.com/ucsc-vama/pivotscale/internal/pivot"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	code, err := run(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string) (int, error) {
	cfg := config.New()
	flags := &cli.Flags{}

	var exitCode int
	root := &cobra.Command{
		Use:   "pivotscale-sweep",
		Short: "Count the number of cliques of every size up to k",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd.Context(), cfg, flags, &exitCode)
		},
	}
	cli.Register(root, flags)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130, err
		}
		if exitCode != 0 {
			return exitCode, err
		}
		return 255, err
	}
	return exitCode, nil
}

func runSweep(ctx context.Context, cfg *config.Config, flags *cli.Flags, exitCode *int) error {
	if flags.ConfigFile != "" {
		if err := cfg.LoadFromFile(flags.ConfigFile); err != nil {
			*exitCode = 1
			return fmt.Errorf("pivotscale-sweep: loading config: %w", err)
		}
	}
	if flags.NumWorkers > 0 {
		cfg.Set("performance.num_workers", flags.NumWorkers)
	}
	if flags.CountWidth != "" {
		cfg.Set("count.width", flags.CountWidth)
	}
	if flags.ForceOrder != "" {
		cfg.Set("ordering.force_strategy", flags.ForceOrder)
	}

	runID := uuid.New()
	log := cfg.CreateLogger().With().Str("run_id", runID.String()).Logger()

	g, directed, err := cli.LoadGraph(flags)
	if err != nil {
		*exitCode = 255
		return fmt.Errorf("pivotscale-sweep: loading graph: %w", err)
	}
	if directed {
		*exitCode = 254
		return errors.New("pivotscale-sweep: input graph should be undirected (pass -s to symmetrize)")
	}

	log.Info().
		Int("num_nodes", g.NumNodes()).
		Int64("num_edges", g.NumEdgesDirected()/2).
		Msg("graph loaded")

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	dag := ordering.Directionalize(g, cfg.OrderingOptions())
	log.Info().Msg("directionalized")

	maxK := flags.K
	if flags.AutoMax {
		maxK = int(ordering.FindMaxDegree(dag)) + 1
	}
	log.Info().Int("max_k", maxK).Bool("auto_max", flags.AutoMax).Msg("sweep target")

	switch cfg.CountWidth() {
	case "128":
		cache := comb.New[count.Count128]()
		counts := pivot.CountSweep[count.Count128](dag, maxK, cache, cfg.NumWorkers())
		countio.WriteSweep(os.Stdout, counts)
	default:
		cache := comb.New[count.Count64]()
		counts := pivot.CountSweep[count.Count64](dag, maxK, cache, cfg.NumWorkers())
		countio.WriteSweep(os.Stdout, counts)
	}
	return nil
}
