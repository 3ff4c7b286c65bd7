package graphio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ucsc-vama/pivotscale/internal/graph"
)

func writeTempEdgeList(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.el")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadEdgeListFileSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeTempEdgeList(t, "# header\n0 1\n\n1 2\n# trailing comment\n2 0\n")
	el, err := ReadEdgeListFile(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(el.Edges) != 3 {
		t.Fatalf("len(Edges) = %d, want 3", len(el.Edges))
	}
	if el.NumNodes != 3 {
		t.Fatalf("NumNodes = %d, want 3", el.NumNodes)
	}
}

func TestReadEdgeListFileMalformedLine(t *testing.T) {
	path := writeTempEdgeList(t, "0 1\nnot-a-number 2\n")
	if _, err := ReadEdgeListFile(path, true); err == nil {
		t.Fatal("expected an error for a malformed edge line")
	}
}

func TestBuildSymmetrizesWhenNotDirected(t *testing.T) {
	el := &EdgeList{
		NumNodes: 3,
		Directed: false,
		Edges:    [][2]graph.NodeID{{0, 1}, {1, 2}},
	}
	g := el.Build()
	if g.OutDegree(0) != 1 || g.OutDegree(1) != 2 || g.OutDegree(2) != 1 {
		t.Fatalf("degrees = %d,%d,%d, want 1,2,1", g.OutDegree(0), g.OutDegree(1), g.OutDegree(2))
	}
}

func TestBuildKeepsDirectionWhenDirected(t *testing.T) {
	el := &EdgeList{
		NumNodes: 3,
		Directed: true,
		Edges:    [][2]graph.NodeID{{0, 1}, {1, 2}},
	}
	g := el.Build()
	if g.OutDegree(0) != 1 || g.OutDegree(2) != 0 {
		t.Fatalf("degrees = %d,_,%d, want 1,_,0 (directed edges only go forward)", g.OutDegree(0), g.OutDegree(2))
	}
}
