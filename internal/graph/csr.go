package graph

import "sort"

// CSR is a compressed-sparse-row adjacency container. It represents
// either a symmetric (undirected) graph — in which case InNeigh aliases
// OutNeigh — or a directed graph with an independently stored inverse
// adjacency, generalizing GAP's CSRGraph<NodeID_, DestID_, invert>.
type CSR struct {
	numNodes  int
	directed  bool
	outIndex  []int64
	outNeighs []NodeID
	inIndex   []int64
	inNeighs  []NodeID
}

func (g *CSR) NumNodes() int { return g.numNodes }

func (g *CSR) NumEdgesDirected() int64 { return int64(len(g.outNeighs)) }

func (g *CSR) Directed() bool { return g.directed }

func (g *CSR) OutDegree(u NodeID) int {
	return int(g.outIndex[u+1] - g.outIndex[u])
}

func (g *CSR) OutNeigh(u NodeID) []NodeID {
	return g.outNeighs[g.outIndex[u]:g.outIndex[u+1]]
}

func (g *CSR) InDegree(u NodeID) int {
	return int(g.inIndex[u+1] - g.inIndex[u])
}

func (g *CSR) InNeigh(u NodeID) []NodeID {
	return g.inNeighs[g.inIndex[u]:g.inIndex[u+1]]
}

// ComputeInverse fills in the in-adjacency of a directed CSR from its
// out-adjacency. The core never calls this (spec: "the global in_neigh
// view is not used by the core") but collaborators that need it (graph
// converters, analysis tooling) can ask for it explicitly.
func (g *CSR) ComputeInverse() {
	if !g.directed {
		g.inIndex, g.inNeighs = g.outIndex, g.outNeighs
		return
	}
	buckets := make([][]NodeID, g.numNodes)
	for u := 0; u < g.numNodes; u++ {
		uu := NodeID(u)
		for _, v := range g.OutNeigh(uu) {
			buckets[v] = append(buckets[v], uu)
		}
	}
	for u := range buckets {
		sort.Slice(buckets[u], func(i, j int) bool { return buckets[u][i] < buckets[u][j] })
	}
	g.inIndex, g.inNeighs = buildCSRFromBuckets(buckets)
}

// buildCSRFromBuckets builds sequential index/neighs arrays from a
// per-vertex bucket slice, following the prefix-sum shape of
// BuilderBase::MakeCSR / ParallelPrefixSum.
func buildCSRFromBuckets(buckets [][]NodeID) ([]int64, []NodeID) {
	n := len(buckets)
	index := make([]int64, n+1)
	var total int64
	for u := 0; u < n; u++ {
		index[u] = total
		total += int64(len(buckets[u]))
	}
	index[n] = total
	neighs := make([]NodeID, total)
	for u := 0; u < n; u++ {
		copy(neighs[index[u]:index[u+1]], buckets[u])
	}
	return index, neighs
}

// squish sorts each bucket ascending, drops duplicates and self-loops,
// mirroring BuilderBase::SquishCSR's "sort then unique then remove self".
func squish(buckets [][]NodeID) {
	for u, list := range buckets {
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		out := list[:0]
		var prev NodeID = -1
		for _, v := range list {
			if v == NodeID(u) {
				continue
			}
			if len(out) > 0 && v == prev {
				continue
			}
			out = append(out, v)
			prev = v
		}
		buckets[u] = out
	}
}

// BuildSymmetric constructs an undirected CSR from a raw, possibly
// unsorted and duplicated, edge list. Each edge is inserted in both
// directions, matching BuilderBase::MakeCSR with symmetrize enabled.
func BuildSymmetric(numNodes int, edges [][2]NodeID) *CSR {
	buckets := make([][]NodeID, numNodes)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			continue
		}
		buckets[u] = append(buckets[u], v)
		buckets[v] = append(buckets[v], u)
	}
	squish(buckets)
	index, neighs := buildCSRFromBuckets(buckets)
	return &CSR{
		numNodes:  numNodes,
		directed:  false,
		outIndex:  index,
		outNeighs: neighs,
		inIndex:   index,
		inNeighs:  neighs,
	}
}

// BuildDirectedByFunc directs every edge of a symmetric graph g
// according to keep: an edge u-v becomes u->v in the result iff
// keep(u, v) holds. This is BuilderBase::DirectGraphByFunc, the shared
// machinery behind DirectGraphDegree and DirectGraphCore.
func BuildDirectedByFunc(g *CSR, keep func(u, v NodeID) bool) *CSR {
	n := g.numNodes
	buckets := make([][]NodeID, n)
	for u := 0; u < n; u++ {
		uu := NodeID(u)
		for _, v := range g.OutNeigh(uu) {
			if keep(uu, v) {
				buckets[u] = append(buckets[u], v)
			}
		}
	}
	for u := range buckets {
		sort.Slice(buckets[u], func(i, j int) bool { return buckets[u][i] < buckets[u][j] })
	}
	index, neighs := buildCSRFromBuckets(buckets)
	return &CSR{
		numNodes:  n,
		directed:  true,
		outIndex:  index,
		outNeighs: neighs,
	}
}
