// Package pivot implements the pivoted recursion that counts k-cliques
// (or sweeps all sizes 1..K) over a DAG produced by internal/ordering,
// using internal/subgraph as its candidate-set data structure and
// internal/comb for the pivot-set combinatorics (spec §4.5).
package pivot

import (
	"github.com/ucsc-vama/pivotscale/internal/comb"
	"github.com/ucsc-vama/pivotscale/internal/count"
	"github.com/ucsc-vama/pivotscale/internal/subgraph"
)

// Counter owns a combination cache and exposes the single-k and sweep
// recursions over it. A Counter has no mutable state of its own beyond
// the cache, so one instance is shared read-only across every worker.
type Counter[T count.Value[T]] struct {
	cache *comb.Cache[T]
}

// NewCounter wraps a prebuilt combination cache.
func NewCounter[T count.Value[T]](cache *comb.Cache[T]) *Counter[T] {
	return &Counter[T]{cache: cache}
}

// Recurse counts the number of k-cliques within sg's current candidate
// set that extend the partial clique already fixed by the caller,
// where cliqueSize vertices are fixed (the DAG root plus every vertex
// InduceFromSelfMutate'd into the recursion so far) and numPivots of
// those were chosen as pivots rather than forced members (spec
// §4.5.1). maxK is the target clique size for this call.
func (c *Counter[T]) Recurse(sg *subgraph.SubGraph, maxK, cliqueSize, numPivots int) T {
	var zero T
	if sg.NumActive()+cliqueSize < maxK {
		return zero
	}

	holds := cliqueSize - numPivots
	if sg.NumActive() == 0 || holds == maxK {
		return c.cache.Binomial(numPivots, maxK-holds)
	}

	p := sg.FindPivot()
	nonNeighs := sg.ActiveUnreachableFromPivot(p)

	var total T
	for _, v := range nonNeighs {
		var child T
		if v == p {
			sg.InduceFromSelfMutate(p, nil)
			child = c.Recurse(sg, maxK, cliqueSize+1, numPivots+1)
		} else {
			sg.InduceFromSelfMutate(v, nonNeighs)
			child = c.Recurse(sg, maxK, cliqueSize+1, numPivots)
		}
		sg.UndoSelfMutate()
		total = total.Add(child)
	}
	sg.PopNonNeighbors()
	return total
}
