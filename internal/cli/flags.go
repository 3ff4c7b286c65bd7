// Package cli holds the command-line surface shared by the pivotscale
// and pivotscale-sweep binaries: flag definitions and graph ingestion
// dispatch (spec §6, command_line.h's
// CLBase/CLKClique generalized to cobra flags).
package cli

import "github.com/spf13/cobra"

// Flags mirrors command_line.h's CLKClique option set: -f (input
// file), -g (generate, scale), -u (generate, uniform), -s (symmetrize
// on read), -k (target/max clique size), plus pivotscale's own -b
// (binary graph file) and --seed.
type Flags struct {
	GraphFile  string
	BinaryFile string
	Symmetrize bool
	GenScale   int
	GenUniform int
	NumEdges   int
	Seed       uint64
	K          int
	AutoMax    bool
	ConfigFile string
	NumWorkers int
	CountWidth string
	ForceOrder string
}

// Register attaches every flag to cmd, matching the long/short-flag
// pairing command_line.h defines (spec §6).
func Register(cmd *cobra.Command, f *Flags) {
	cmd.Flags().StringVarP(&f.GraphFile, "graph-file", "f", "", "read an edge-list graph from this file (taken as directed unless -s is given)")
	cmd.Flags().StringVarP(&f.BinaryFile, "binary-file", "b", "", "read a serialized binary graph from this file")
	cmd.Flags().BoolVarP(&f.Symmetrize, "symmetrize", "s", false, "symmetrize the edge list read with -f")
	cmd.Flags().IntVarP(&f.GenScale, "generate-scale", "g", 0, "generate a synthetic Kronecker graph of 2^scale vertices")
	cmd.Flags().IntVarP(&f.GenUniform, "generate-uniform", "u", 0, "generate a synthetic uniform-random graph of this many vertices")
	cmd.Flags().IntVar(&f.NumEdges, "num-edges", 0, "edge count for a generated graph (defaults to 16x vertex count)")
	cmd.Flags().Uint64Var(&f.Seed, "seed", 1, "PRNG seed for graph generation")
	cmd.Flags().IntVarP(&f.K, "k", "k", 3, "clique size (count mode) or maximum clique size (sweep mode)")
	cmd.Flags().BoolVarP(&f.AutoMax, "auto-max", "m", false, "sweep mode only: derive max clique size from the DAG's maximum out-degree plus one, ignoring -k")
	cmd.Flags().StringVarP(&f.ConfigFile, "config", "c", "", "path to a viper config file overriding the ordering/performance defaults")
	cmd.Flags().IntVarP(&f.NumWorkers, "workers", "w", 0, "worker goroutines (0 = runtime.NumCPU())")
	cmd.Flags().StringVar(&f.CountWidth, "count-width", "", "clique count integer width: 64 or 128 (overrides config)")
	cmd.Flags().StringVar(&f.ForceOrder, "force-order", "", "bypass the core/degree heuristic: \"core\" or \"degree\"")
}
