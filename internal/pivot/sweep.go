package pivot

import "github.com/ucsc-vama/pivotscale/internal/subgraph"

// RecurseSweep is Recurse's sweep variant: instead of returning the
// count for one target size maxK, it accumulates into counts[0..maxK]
// the contribution of every clique size reachable from the current
// partial clique in one pass (spec §4.5.2, pivotscale-sweep.cc's
// PivotRecurse). counts must have length maxK+1 and already hold any
// prior contributions — this call only adds to it.
func (c *Counter[T]) RecurseSweep(sg *subgraph.SubGraph, maxK, cliqueSize, numPivots int, counts []T) {
	holds := cliqueSize - numPivots

	if sg.NumActive() == 0 || holds == maxK {
		limit := numPivots
		if maxK-holds < limit {
			limit = maxK - holds
		}
		for p := 0; p <= limit; p++ {
			counts[holds+p] = counts[holds+p].Add(c.cache.Binomial(numPivots, p))
		}
		return
	}

	p := sg.FindPivot()
	nonNeighs := sg.ActiveUnreachableFromPivot(p)

	for _, v := range nonNeighs {
		if v == p {
			sg.InduceFromSelfMutate(p, nil)
			c.RecurseSweep(sg, maxK, cliqueSize+1, numPivots+1, counts)
		} else {
			sg.InduceFromSelfMutate(v, nonNeighs)
			c.RecurseSweep(sg, maxK, cliqueSize+1, numPivots, counts)
		}
		sg.UndoSelfMutate()
	}
	sg.PopNonNeighbors()
}
