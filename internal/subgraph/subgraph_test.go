package subgraph

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/ucsc-vama/pivotscale/internal/graph"
)

// k4DAG directs K4 by ascending id: 0->{1,2,3}, 1->{2,3}, 2->{3}, 3->{}.
func k4DAG() *graph.CSR {
	edges := [][2]graph.NodeID{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g := graph.BuildSymmetric(4, edges)
	return graph.BuildDirectedByFunc(g, func(u, v graph.NodeID) bool { return u < v })
}

func sortedCopy(ns []graph.NodeID) []graph.NodeID {
	out := append([]graph.NodeID(nil), ns...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestInduceFromDAGBuildsInducedSubgraph(t *testing.T) {
	dag := k4DAG()
	sg := New()
	sg.InduceFromDAG(dag, 0)

	if sg.NumActive() != 3 {
		t.Fatalf("NumActive() = %d, want 3", sg.NumActive())
	}
	for _, v := range sg.activeList {
		if got := len(sg.Neighs(v)); got != 2 {
			t.Fatalf("Neighs(%d) has %d entries, want 2 (induced on K4's other 3 vertices)", v, got)
		}
	}
}

func TestFindPivotPicksMaxDegree(t *testing.T) {
	// Star-shaped local neighborhood: root's out-neighbors are 1,2,3,4
	// but only 1 is adjacent to all the others in the DAG, so within
	// the induced subgraph local vertex 0 (global 1) has degree 3 and
	// should win FindPivot.
	edges := [][2]graph.NodeID{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}}
	g := graph.BuildSymmetric(5, edges)
	dag := graph.BuildDirectedByFunc(g, func(u, v graph.NodeID) bool { return u < v })

	sg := New()
	sg.InduceFromDAG(dag, 0)
	p := sg.FindPivot()
	if p != 0 { // local id of global vertex 1, the only one with degree 3
		t.Fatalf("FindPivot() = %d, want 0", p)
	}
}

func TestInduceAndUndoSelfMutateRestoresState(t *testing.T) {
	dag := k4DAG()
	sg := New()
	sg.InduceFromDAG(dag, 0)

	before := sortedCopy(sg.activeList)
	beforeTails := append([]int(nil), sg.tail[:sg.NumActive()]...)

	v := sg.activeList[0]
	sg.InduceFromSelfMutate(v, nil)
	sg.UndoSelfMutate()

	after := sortedCopy(sg.activeList)
	if len(after) != len(before) {
		t.Fatalf("active set size after undo = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("active set after undo = %v, want %v", after, before)
		}
	}
	for _, n := range sg.activeList {
		if sg.tail[n] != beforeTails[n] {
			t.Fatalf("tail[%d] after undo = %d, want %d", n, sg.tail[n], beforeTails[n])
		}
	}
}

func TestActiveUnreachableFromPivotPartition(t *testing.T) {
	dag := k4DAG()
	sg := New()
	sg.InduceFromDAG(dag, 0)

	p := sg.FindPivot()
	nn := sg.ActiveUnreachableFromPivot(p)

	neighSet := map[graph.NodeID]bool{}
	for _, w := range sg.Neighs(p) {
		neighSet[w] = true
	}
	for _, v := range nn {
		if v != p && neighSet[v] {
			t.Fatalf("ActiveUnreachableFromPivot returned %d, which is a neighbor of pivot %d", v, p)
		}
	}
	// p itself must always be included, by construction (its own
	// active flag was never cleared).
	found := false
	for _, v := range nn {
		if v == p {
			found = true
		}
	}
	if !found {
		t.Fatal("ActiveUnreachableFromPivot did not include the pivot itself")
	}
	sg.PopNonNeighbors()
}

// TestUndoIsIdempotentUnderRandomDescents drives many random
// induce/undo sequences on a denser graph and checks that after
// unwinding back to the root, the active set and every tail exactly
// match the state immediately after InduceFromDAG — the core
// correctness property the backtracking data structure exists for.
func TestUndoIsIdempotentUnderRandomDescents(t *testing.T) {
	n := 12
	rng := rand.New(rand.NewPCG(1, 2))
	var edges [][2]graph.NodeID
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < 0.5 {
				edges = append(edges, [2]graph.NodeID{graph.NodeID(u), graph.NodeID(v)})
			}
		}
	}
	g := graph.BuildSymmetric(n, edges)
	dag := graph.BuildDirectedByFunc(g, func(u, v graph.NodeID) bool { return u < v })

	for root := 0; root < n; root++ {
		sg := New()
		sg.InduceFromDAG(dag, graph.NodeID(root))
		if sg.NumActive() == 0 {
			continue
		}
		before := sortedCopy(sg.activeList)
		beforeTails := append([]int(nil), sg.tail[:sg.NumActive()]...)

		descend(sg, rng, 3)

		after := sortedCopy(sg.activeList)
		if len(after) != len(before) {
			t.Fatalf("root %d: active set size after full unwind = %d, want %d", root, len(after), len(before))
		}
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("root %d: active set after full unwind = %v, want %v", root, after, before)
			}
		}
		for _, v := range sg.activeList {
			if sg.tail[v] != beforeTails[v] {
				t.Fatalf("root %d: tail[%d] after full unwind = %d, want %d", root, v, sg.tail[v], beforeTails[v])
			}
		}
	}
}

func descend(sg *SubGraph, rng *rand.Rand, depth int) {
	if depth == 0 || sg.NumActive() == 0 {
		return
	}
	v := sg.activeList[rng.IntN(len(sg.activeList))]
	sg.InduceFromSelfMutate(v, nil)
	descend(sg, rng, depth-1)
	sg.UndoSelfMutate()
}
