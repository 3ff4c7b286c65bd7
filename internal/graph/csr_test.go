package graph

import "testing"

func k4Edges() [][2]NodeID {
	return [][2]NodeID{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
}

func TestBuildSymmetricDegrees(t *testing.T) {
	g := BuildSymmetric(4, k4Edges())
	for v := 0; v < 4; v++ {
		if d := g.OutDegree(NodeID(v)); d != 3 {
			t.Fatalf("OutDegree(%d) = %d, want 3", v, d)
		}
	}
	if g.NumEdgesDirected() != 12 {
		t.Fatalf("NumEdgesDirected() = %d, want 12", g.NumEdgesDirected())
	}
}

func TestBuildSymmetricDropsSelfLoopsAndDuplicates(t *testing.T) {
	edges := [][2]NodeID{{0, 1}, {1, 0}, {0, 0}, {0, 1}}
	g := BuildSymmetric(2, edges)
	if g.OutDegree(0) != 1 || g.OutDegree(1) != 1 {
		t.Fatalf("degrees = %d,%d, want 1,1", g.OutDegree(0), g.OutDegree(1))
	}
}

func TestBuildDirectedByFuncOrientsByID(t *testing.T) {
	g := BuildSymmetric(4, k4Edges())
	dag := BuildDirectedByFunc(g, func(u, v NodeID) bool { return u < v })
	if dag.OutDegree(3) != 0 {
		t.Fatalf("OutDegree(3) = %d, want 0 (highest-ranked vertex has no out-edges)", dag.OutDegree(3))
	}
	if dag.OutDegree(0) != 3 {
		t.Fatalf("OutDegree(0) = %d, want 3", dag.OutDegree(0))
	}
	if dag.NumEdgesDirected() != 6 {
		t.Fatalf("NumEdgesDirected() = %d, want 6", dag.NumEdgesDirected())
	}
}

func TestComputeInverse(t *testing.T) {
	g := BuildSymmetric(4, k4Edges())
	dag := BuildDirectedByFunc(g, func(u, v NodeID) bool { return u < v })
	dag.ComputeInverse()
	if dag.InDegree(0) != 0 {
		t.Fatalf("InDegree(0) = %d, want 0", dag.InDegree(0))
	}
	if dag.InDegree(3) != 3 {
		t.Fatalf("InDegree(3) = %d, want 3", dag.InDegree(3))
	}
}
