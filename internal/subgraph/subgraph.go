// Package subgraph implements the mutable, backtracking induced
// subgraph used inside the pivoted recursion (spec §4.4). A SubGraph
// is created once per worker and reused across DAG roots: InduceFromDAG
// resets it to the neighborhood of a new root, InduceFromSelfMutate
// narrows the candidate set further (recording enough state to undo),
// and UndoSelfMutate restores the prior candidate set and tails.
package subgraph

import (
	"github.com/ucsc-vama/pivotscale/internal/graph"
	"github.com/ucsc-vama/pivotscale/internal/gstack"
)

// SubGraph is the per-worker, thread-local candidate-set structure.
// Share nothing: each worker owns exactly one instance for its
// lifetime (spec §5).
type SubGraph struct {
	active     []bool
	activeList []graph.NodeID
	adj        [][]graph.NodeID
	tail       []int

	dropped        gstack.Stack[graph.NodeID]
	pivotNonNeighs gstack.Stack[graph.NodeID]

	remap map[graph.NodeID]graph.NodeID
}

// New returns an empty SubGraph, ready for InduceFromDAG.
func New() *SubGraph {
	return &SubGraph{}
}

func (sg *SubGraph) ensureCapacity(n int) {
	for len(sg.adj) < n {
		sg.adj = append(sg.adj, nil)
	}
	for len(sg.tail) < n {
		sg.tail = append(sg.tail, 0)
	}
	for len(sg.active) < n {
		sg.active = append(sg.active, false)
	}
}

// InduceFromDAG resets the SubGraph to the graph induced on the
// out-neighborhood of root u in dag, undirected (spec §4.4.1).
func (sg *SubGraph) InduceFromDAG(dag graph.DAGView, u graph.NodeID) {
	n := dag.OutDegree(u)
	sg.ensureCapacity(n)

	sg.active = sg.active[:n]
	for i := range sg.active {
		sg.active[i] = false
	}
	sg.tail = sg.tail[:n]
	sg.activeList = sg.activeList[:0]

	sg.dropped.Clear()
	sg.pivotNonNeighs.Clear()
	sg.dropped.Reserve(n)
	sg.pivotNonNeighs.Reserve(n)

	if sg.remap == nil {
		sg.remap = make(map[graph.NodeID]graph.NodeID, n)
	} else {
		clear(sg.remap)
	}

	idx := graph.NodeID(0)
	for _, v := range dag.OutNeigh(u) {
		sg.remap[v] = idx
		sg.active[idx] = true
		sg.activeList = append(sg.activeList, idx)
		sg.adj[idx] = sg.adj[idx][:0]
		idx++
	}

	idx = 0
	for _, v := range dag.OutNeigh(u) {
		vR := idx
		for _, w := range dag.OutNeigh(v) {
			if wR, ok := sg.remap[w]; ok {
				sg.adj[vR] = append(sg.adj[vR], wR)
				sg.adj[wR] = append(sg.adj[wR], vR)
			}
		}
		idx++
	}

	for _, vR := range sg.activeList {
		sg.tail[vR] = len(sg.adj[vR])
	}
}

// NumActive returns |P|, the size of the current candidate set.
func (sg *SubGraph) NumActive() int { return len(sg.activeList) }

// Neighs returns the currently-active neighbors of local vertex uR.
func (sg *SubGraph) Neighs(uR graph.NodeID) []graph.NodeID {
	return sg.adj[uR][:sg.tail[uR]]
}

// FindPivot returns the local id of maximum active degree among the
// candidate set, ties broken by whichever is encountered first (spec
// §4.4.2).
func (sg *SubGraph) FindPivot() graph.NodeID {
	if len(sg.activeList) == 0 {
		panic("subgraph: FindPivot called on an empty candidate set")
	}
	maxR := sg.activeList[0]
	for _, n := range sg.activeList[1:] {
		if sg.tail[n] > sg.tail[maxR] {
			maxR = n
		}
	}
	return maxR
}

// ActiveUnreachableFromPivot computes P \ N(p) ∪ {p} for pivot p,
// returning a view into a freshly pushed frame of the pivot-non-neighbor
// stack (spec §4.4.3). The active bitmap is restored to match
// activeList before returning.
func (sg *SubGraph) ActiveUnreachableFromPivot(p graph.NodeID) []graph.NodeID {
	sg.pivotNonNeighs.NewFrame()
	for _, v := range sg.Neighs(p) {
		sg.active[v] = false
	}
	for _, n := range sg.activeList {
		if sg.active[n] {
			sg.pivotNonNeighs.Push(n)
		} else {
			sg.active[n] = true
		}
	}
	return sg.pivotNonNeighs.LastFrame()
}

// InduceFromSelfMutate narrows the candidate set to N(v) ∩ P, minus
// the elements of excl whose local id is less than v's (spec §4.4.4).
// Every call must be paired with exactly one UndoSelfMutate, in LIFO
// order.
func (sg *SubGraph) InduceFromSelfMutate(v graph.NodeID, excl []graph.NodeID) {
	for _, n := range sg.activeList {
		sg.active[n] = false
	}
	for _, w := range sg.Neighs(v) {
		sg.active[w] = true
	}
	for _, n := range excl {
		if n < v {
			sg.active[n] = false
		}
	}

	sg.dropped.NewFrame()

	i := 0
	for i < len(sg.activeList) {
		n := sg.activeList[i]
		if sg.active[n] {
			tail := sg.tail[n]
			j := 0
			for j < tail {
				w := sg.adj[n][j]
				if !sg.active[w] {
					newTail := tail - 1
					tw := sg.adj[n][newTail]
					for newTail > j && !sg.active[tw] {
						newTail--
						tw = sg.adj[n][newTail]
					}
					if newTail > j {
						sg.adj[n][j], sg.adj[n][newTail] = sg.adj[n][newTail], sg.adj[n][j]
					}
					tail = newTail
				}
				j++
			}
			sg.tail[n] = tail
			i++
		} else {
			last := len(sg.activeList) - 1
			sg.activeList[i] = sg.activeList[last]
			sg.activeList = sg.activeList[:last]
			sg.dropped.Push(n)
		}
	}
}

// UndoSelfMutate is the inverse of the most recent
// InduceFromSelfMutate, restoring the membership of activeList, active,
// and every tail to their pre-induce values (spec §4.4.5). The order of
// activeList is not restored: dropped vertices are appended at its end.
func (sg *SubGraph) UndoSelfMutate() {
	for _, n := range sg.dropped.LastFrame() {
		sg.active[n] = true
		sg.activeList = append(sg.activeList, n)
	}
	sg.dropped.PopFrame()

	for _, u := range sg.activeList {
		newTail := sg.tail[u]
		for newTail < len(sg.adj[u]) {
			w := sg.adj[u][newTail]
			if !sg.active[w] {
				break
			}
			newTail++
		}
		sg.tail[u] = newTail
	}
}

// PopNonNeighbors discards the most recent ActiveUnreachableFromPivot
// frame. Must be called exactly once after the recursion has finished
// consuming it (spec §4.4.6).
func (sg *SubGraph) PopNonNeighbors() {
	sg.pivotNonNeighs.PopFrame()
}
