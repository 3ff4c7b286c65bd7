// Package ordering computes a per-vertex rank and orients edges from
// lower to higher rank, producing the DAG the counting core runs over
// (spec §4.3).
package ordering

import "github.com/ucsc-vama/pivotscale/internal/graph"

// DefaultParamA and DefaultParamB are the reference thresholds for
// CoreIsAdvantageous. Spec §9 flags these (and Epsilon, in
// core_approx.go) as heuristics an implementer should expose for
// tuning rather than hardcode elsewhere in the codebase.
const (
	DefaultParamA = 0.0015
	DefaultParamB = 0.10
	// DefaultEpsilon is the canonical slack for the approximate core
	// peeling threshold: T = floor((1+epsilon) * avg_degree).
	DefaultEpsilon = -0.5
	// coreAdvantageousMinNodes is the |V| floor below which the core
	// approximation never pays off regardless of density.
	coreAdvantageousMinNodes = 1_000_000
)

// FindMaxDegree returns the maximum out-degree over all vertices.
func FindMaxDegree(g graph.DAGView) graph.NodeID {
	var maxSeen graph.NodeID
	for n := 0; n < g.NumNodes(); n++ {
		if d := graph.NodeID(g.OutDegree(graph.NodeID(n))); d > maxSeen {
			maxSeen = d
		}
	}
	return maxSeen
}

// CoreIsAdvantageous decides between the two ordering branches (spec
// §4.3): true iff |V| exceeds coreAdvantageousMinNodes AND either the
// highest-degree vertex's highest-degree neighbor has high relative
// degree, or the two share a large fraction of common neighbors.
func CoreIsAdvantageous(g *graph.CSR, paramA, paramB float64) bool {
	n := g.NumNodes()
	if n <= coreAdvantageousMinNodes {
		return false
	}

	biggest := graph.NodeID(0)
	for v := 1; v < n; v++ {
		vv := graph.NodeID(v)
		if g.OutDegree(vv) > g.OutDegree(biggest) {
			biggest = vv
		}
	}

	neigh := g.OutNeigh(biggest)
	if len(neigh) == 0 {
		return false
	}
	biggestNeigh := neigh[0]
	for _, v := range neigh[1:] {
		if g.OutDegree(v) > g.OutDegree(biggestNeigh) {
			biggestNeigh = v
		}
	}

	intersection := intersectionSize(g.OutNeigh(biggest), g.OutNeigh(biggestNeigh))

	largestNeighFrac := float64(g.OutDegree(biggestNeigh)) / float64(n)
	var intersectionFrac float64
	if d := g.OutDegree(biggestNeigh); d > 0 {
		intersectionFrac = float64(intersection) / float64(d)
	}

	return largestNeighFrac > paramA || intersectionFrac > paramB
}

// intersectionSize counts the common elements of two ascending,
// duplicate-free slices via a single merging scan, the same shape as
// ordering.h's common-neighbor computation — done symmetrically here
// (both cursors advance on a match) rather than with the original's
// single forward cursor, which can run past the end of its slice when
// the two adjacency lists diverge in range.
func intersectionSize(a, b []graph.NodeID) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}
