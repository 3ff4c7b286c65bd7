package ordering

import (
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ucsc-vama/pivotscale/internal/graph"
)

// CoreApprox computes an approximate core ranking by parallel,
// level-based peeling with slack epsilon (spec §4.3, ordering.h's
// CoreApprox): each level removes every still-unranked vertex whose
// current degree is at or below a threshold derived from the level's
// average remaining degree, admitting a batch of vertices per level
// rather than the one-at-a-time peeling of an exact core decomposition.
// Vertices removed in the same level receive the same rank.
func CoreApprox(g *graph.CSR, epsilon float64, numWorkers int) []graph.NodeID {
	n := g.NumNodes()
	rankings := make([]graph.NodeID, n)
	for i := range rankings {
		rankings[i] = -1
	}
	if n == 0 {
		return rankings
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	currDegree := make([]atomic.Int64, n)
	for v := 0; v < n; v++ {
		currDegree[v].Store(int64(g.OutDegree(graph.NodeID(v))))
	}

	var activeDegreeTotal atomic.Int64
	activeDegreeTotal.Store(g.NumEdgesDirected())
	numRemaining := int64(n)

	var remaining []graph.NodeID
	level := graph.NodeID(0)

	for numRemaining > 0 {
		avgDeg := float64(activeDegreeTotal.Load()) / float64(numRemaining)
		degThresh := int64((1 + epsilon) * avgDeg)
		if degThresh < 0 {
			degThresh = 0
		}

		var edgesRemoved int64
		var next []graph.NodeID

		if level == 0 {
			next, edgesRemoved = peelLevelZero(g, &currDegree, rankings, level, degThresh, numWorkers)
		} else {
			// The average-degree threshold alone can stall: once the
			// remaining subgraph's core is denser than its average
			// suggests, degThresh floors at a value nothing meets and
			// numRemaining never shrinks. Reducing the minimum degree
			// still present and flooring the threshold at it (spec
			// §4.3 step 3) guarantees at least one vertex is removed
			// every level.
			minDegActive := reduceMinDegree(remaining, &currDegree, numWorkers)
			effectiveThresh := degThresh
			if minDegActive > effectiveThresh {
				effectiveThresh = minDegActive
			}
			next, edgesRemoved = peelLevel(g, &currDegree, remaining, rankings, level, effectiveThresh, numWorkers)
		}

		activeDegreeTotal.Add(-edgesRemoved)
		remaining = next
		numRemaining = int64(len(remaining))
		level++
	}
	return rankings
}

// peelLevelZero handles level 0, which scans every vertex (there is no
// prior "remaining" list yet) and splits the scan across numWorkers
// contiguous vertex-id chunks.
func peelLevelZero(g *graph.CSR, currDegree *[]atomic.Int64, rankings []graph.NodeID, level graph.NodeID, degThresh int64, numWorkers int) ([]graph.NodeID, int64) {
	n := g.NumNodes()
	chunks := make([][]graph.NodeID, numWorkers)
	var removed atomic.Int64

	var eg errgroup.Group
	chunkSize := (n + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		w := w
		eg.Go(func() error {
			chunks[w] = peelRange(g, currDegree, rankings, level, degThresh, lo, hi, &removed)
			return nil
		})
	}
	_ = eg.Wait()

	var next []graph.NodeID
	for _, c := range chunks {
		next = append(next, c...)
	}
	return next, removed
}

// peelRange scans vertex ids [lo,hi), ranking and removing those at or
// below degThresh, decrementing the degree of their still-unranked
// neighbors, and returning the ones that survive.
func peelRange(g *graph.CSR, currDegree *[]atomic.Int64, rankings []graph.NodeID, level graph.NodeID, degThresh int64, lo, hi int, removed *atomic.Int64) []graph.NodeID {
	var kept []graph.NodeID
	var localRemoved int64
	for u := lo; u < hi; u++ {
		uu := graph.NodeID(u)
		d := (*currDegree)[u].Load()
		if d <= degThresh {
			rankings[uu] = level
			for _, w := range g.OutNeigh(uu) {
				if rankings[w] == -1 {
					(*currDegree)[w].Add(-1)
					localRemoved++
				}
			}
			localRemoved += d
		} else {
			kept = append(kept, uu)
		}
	}
	removed.Add(localRemoved)
	return kept
}

// reduceMinDegree computes the minimum currDegree over remaining,
// splitting the scan across numWorkers chunks and combining each
// chunk's local minimum into a shared atomic via a CAS loop — the
// lock-free monotonic-decrease reduction ordering.h's CoreApprox uses
// for min_deg_active.
func reduceMinDegree(remaining []graph.NodeID, currDegree *[]atomic.Int64, numWorkers int) int64 {
	n := len(remaining)
	if n == 0 {
		return 0
	}
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var minDegActive atomic.Int64
	minDegActive.Store(math.MaxInt64)

	var eg errgroup.Group
	chunkSize := (n + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		eg.Go(func() error {
			localMin := int64(math.MaxInt64)
			for _, v := range remaining[lo:hi] {
				if d := (*currDegree)[v].Load(); d < localMin {
					localMin = d
				}
			}
			for {
				cur := minDegActive.Load()
				if localMin >= cur {
					break
				}
				if minDegActive.CompareAndSwap(cur, localMin) {
					break
				}
			}
			return nil
		})
	}
	_ = eg.Wait()
	return minDegActive.Load()
}

// peelLevel handles every level after 0: it operates over the
// "remaining" list carried from the previous level instead of
// rescanning every vertex id, splitting that list into numWorkers
// contiguous chunks.
func peelLevel(g *graph.CSR, currDegree *[]atomic.Int64, remaining []graph.NodeID, rankings []graph.NodeID, level graph.NodeID, degThresh int64, numWorkers int) ([]graph.NodeID, int64) {
	n := len(remaining)
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	chunks := make([][]graph.NodeID, numWorkers)
	var removed atomic.Int64

	var eg errgroup.Group
	chunkSize := (n + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		w, lo, hi := w, lo, hi
		eg.Go(func() error {
			chunks[w] = peelSlice(g, currDegree, rankings, level, degThresh, remaining[lo:hi], &removed)
			return nil
		})
	}
	_ = eg.Wait()

	var next []graph.NodeID
	for _, c := range chunks {
		next = append(next, c...)
	}
	return next, removed
}

func peelSlice(g *graph.CSR, currDegree *[]atomic.Int64, rankings []graph.NodeID, level graph.NodeID, degThresh int64, vs []graph.NodeID, removed *atomic.Int64) []graph.NodeID {
	var kept []graph.NodeID
	var localRemoved int64
	for _, uu := range vs {
		d := (*currDegree)[uu].Load()
		if d <= degThresh {
			rankings[uu] = level
			for _, w := range g.OutNeigh(uu) {
				if rankings[w] == -1 {
					(*currDegree)[w].Add(-1)
					localRemoved++
				}
			}
			localRemoved += d
		} else {
			kept = append(kept, uu)
		}
	}
	removed.Add(localRemoved)
	return kept
}
