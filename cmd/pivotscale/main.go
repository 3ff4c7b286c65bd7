// Command pivotscale counts the exact number of k-cliques in an
// undirected graph (spec §1, pivotscale.cc's main()).
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
		Use:   "pivotscale",
		Short: "Count the number of k-cliques in an undirected graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCount(cmd.Context(), cfg, flags, &exitCode)
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
		return 255, err // flag parse failure, same status as a loading failure
	}
	return exitCode, nil
}

func runCount(ctx context.Context, cfg *config.Config, flags *cli.Flags, exitCode *int) error {
	if flags.ConfigFile != "" {
		if err := cfg.LoadFromFile(flags.ConfigFile); err != nil {
			*exitCode = 1
			return fmt.Errorf("pivotscale: loading config: %w", err)
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
		*exitCode = 255 // spec exit code -1, wrapped to an 8-bit status
		return fmt.Errorf("pivotscale: loading graph: %w", err)
	}
	if directed {
		*exitCode = 254 // spec exit code -2, wrapped to an 8-bit status
		return errors.New("pivotscale: input graph should be undirected (pass -s to symmetrize)")
	}

	log.Info().
		Int("num_nodes", g.NumNodes()).
		Int64("num_edges", g.NumEdgesDirected()/2).
		Int("k", flags.K).
		Msg("graph loaded")

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	dag := ordering.Directionalize(g, cfg.OrderingOptions())
	log.Info().Msg("directionalized")

	switch cfg.CountWidth() {
	case "128":
		cache := comb.New[count.Count128]()
		total := pivot.Count[count.Count128](dag, flags.K, cache, cfg.NumWorkers())
		countio.WriteSingle(os.Stdout, flags.K, total)
	default:
		cache := comb.New[count.Count64]()
		total := pivot.Count[count.Count64](dag, flags.K, cache, cfg.NumWorkers())
		countio.WriteSingle(os.Stdout, flags.K, total)
	}
	return nil
}
