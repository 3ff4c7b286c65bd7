package ordering

import (
	"sort"

	"github.com/ucsc-vama/pivotscale/internal/graph"
)

// Options controls which ranking strategy Directionalize uses and the
// heuristic's tunables (spec §4.3, §9 Open Questions: exposed via
// config rather than hardcoded, see DESIGN.md).
type Options struct {
	// ForceCore and ForceDegree, if set, bypass CoreIsAdvantageous and
	// pick a ranking strategy directly — useful for the "invariance
	// under ordering branch" property tests (spec §8).
	ForceCore, ForceDegree bool

	ParamA, ParamB, Epsilon float64
	NumWorkers              int
}

// DefaultOptions returns the reference heuristic thresholds.
func DefaultOptions(numWorkers int) Options {
	return Options{
		ParamA:     DefaultParamA,
		ParamB:     DefaultParamB,
		Epsilon:    DefaultEpsilon,
		NumWorkers: numWorkers,
	}
}

// Directionalize orients every edge of the symmetric input graph g
// from lower rank to higher rank, breaking ties by vertex id, and
// returns the resulting DAG as a directed CSR (spec §4.3). g must be
// undirected; callers are responsible for rejecting directed input
// before calling this (spec §7, exit code -2).
func Directionalize(g *graph.CSR, opt Options) *graph.CSR {
	var useCore bool
	switch {
	case opt.ForceCore:
		useCore = true
	case opt.ForceDegree:
		useCore = false
	default:
		useCore = CoreIsAdvantageous(g, opt.ParamA, opt.ParamB)
	}

	var rank []graph.NodeID
	if useCore {
		rank = CoreApprox(g, opt.Epsilon, opt.NumWorkers)
	} else {
		rank = degreeRank(g)
	}

	keep := func(u, v graph.NodeID) bool {
		if rank[u] != rank[v] {
			return rank[u] < rank[v]
		}
		return u < v
	}
	return graph.BuildDirectedByFunc(g, keep)
}

// degreeRank ranks vertices by ascending out-degree, ties broken by
// ascending id — the "direct by degree" branch (builder.h's
// DirectGraphDegree), used when the approximate core ordering is not
// advantageous.
func degreeRank(g *graph.CSR) []graph.NodeID {
	n := g.NumNodes()
	order := make([]graph.NodeID, n)
	for v := 0; v < n; v++ {
		order[v] = graph.NodeID(v)
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := g.OutDegree(order[i]), g.OutDegree(order[j])
		if di != dj {
			return di < dj
		}
		return order[i] < order[j]
	})
	rank := make([]graph.NodeID, n)
	for r, v := range order {
		rank[v] = graph.NodeID(r)
	}
	return rank
}
