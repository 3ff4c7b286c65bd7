package graphio

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ucsc-vama/pivotscale/internal/graph"
)

// GenerateUniform builds a synthetic undirected graph by drawing
// numEdges endpoint pairs independently and uniformly from
// [0,numNodes), the Go-native counterpart of GAP's uniform random
// generator (generator.h). Self-loops drawn by chance are discarded
// during the later squish pass in graph.BuildSymmetric, not here.
func GenerateUniform(numNodes, numEdges int, seed uint64) *EdgeList {
	src := rand.New(rand.NewSource(seed))
	u := distuv.Uniform{Min: 0, Max: float64(numNodes), Src: src}

	edges := make([][2]graph.NodeID, numEdges)
	for i := range edges {
		a := graph.NodeID(u.Rand())
		b := graph.NodeID(u.Rand())
		edges[i] = [2]graph.NodeID{a, b}
	}
	return &EdgeList{Edges: edges, NumNodes: numNodes, Directed: false}
}

// GenerateKronecker builds a synthetic graph via Kronecker-style
// recursive bisection (GAP's default generator for "-g" scale
// factors): each edge's endpoint pair is produced by one descent of
// scale levels through a quadrant tree of depth log2(numNodes), each
// level choosing one (row, column) quadrant, biased toward (0,0) with
// probability a, spreading unevenly across the remaining three
// quadrants to approximate a power-law degree distribution.
func GenerateKronecker(scale, numEdges int, seed uint64) *EdgeList {
	numNodes := 1 << scale
	src := rand.New(rand.NewSource(seed))
	coin := distuv.Uniform{Min: 0, Max: 1, Src: src}

	const a, b, c = 0.57, 0.19, 0.19 // GAP's default Kronecker quadrant weights; d = 1-a-b-c

	pick := func() (graph.NodeID, graph.NodeID) {
		var src, dst graph.NodeID
		for level := 0; level < scale; level++ {
			src <<= 1
			dst <<= 1
			r := coin.Rand()
			switch {
			case r < a:
				// top-left quadrant: both bits stay 0.
			case r < a+b:
				dst |= 1 // top-right: column bit only.
			case r < a+b+c:
				src |= 1 // bottom-left: row bit only.
			default:
				src |= 1 // bottom-right: both bits.
				dst |= 1
			}
		}
		return src, dst
	}

	edges := make([][2]graph.NodeID, numEdges)
	for i := range edges {
		src, dst := pick()
		edges[i] = [2]graph.NodeID{src, dst}
	}
	return &EdgeList{Edges: edges, NumNodes: numNodes, Directed: false}
}
