package pivot

import (
	"sync"
	"sync/atomic"

	"github.com/ucsc-vama/pivotscale/internal/comb"
	"github.com/ucsc-vama/pivotscale/internal/count"
	"github.com/ucsc-vama/pivotscale/internal/graph"
	"github.com/ucsc-vama/pivotscale/internal/subgraph"
)

// Count returns the exact number of k-cliques in dag, dividing the
// roots 0..NumNodes-1 dynamically across numWorkers goroutines — an
// atomic cursor stands in for OpenMP's schedule(dynamic,1) (spec §5,
// pivotscale.cc's PivotCount). Each worker owns exactly one SubGraph
// for its entire lifetime.
func Count[T count.Value[T]](dag graph.DAGView, k int, cache *comb.Cache[T], numWorkers int) T {
	if numWorkers < 1 {
		numWorkers = 1
	}
	counter := NewCounter(cache)

	var cursor atomic.Int64
	numNodes := int64(dag.NumNodes())

	var mu sync.Mutex
	var total T
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			sg := subgraph.New()
			var local T
			for {
				root := cursor.Add(1) - 1
				if root >= numNodes {
					break
				}
				u := graph.NodeID(root)
				sg.InduceFromDAG(dag, u)
				local = local.Add(counter.Recurse(sg, k, 1, 0))
			}
			mu.Lock()
			total = total.Add(local)
			mu.Unlock()
		}()
	}
	wg.Wait()
	return total
}

// CountSweep is Count's sweep variant: it returns counts[1..maxK], the
// exact number of cliques of every size up to maxK, computed in one
// pass per root (pivotscale-sweep.cc's PivotCount). counts[0] is
// always zero.
func CountSweep[T count.Value[T]](dag graph.DAGView, maxK int, cache *comb.Cache[T], numWorkers int) []T {
	if numWorkers < 1 {
		numWorkers = 1
	}
	counter := NewCounter(cache)

	var cursor atomic.Int64
	numNodes := int64(dag.NumNodes())

	var mu sync.Mutex
	total := make([]T, maxK+1)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			sg := subgraph.New()
			local := make([]T, maxK+1)
			for {
				root := cursor.Add(1) - 1
				if root >= numNodes {
					break
				}
				u := graph.NodeID(root)
				sg.InduceFromDAG(dag, u)
				counter.RecurseSweep(sg, maxK, 1, 0, local)
			}
			mu.Lock()
			for i := range total {
				total[i] = total[i].Add(local[i])
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	return total
}
