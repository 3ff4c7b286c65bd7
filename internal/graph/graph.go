// Package graph provides the vertex identifier type and the minimal
// adjacency-view interface the counting core consumes, plus a generic
// CSR container capable of representing both the symmetric input graph
// and the directed DAG produced by ordering.
package graph

// NodeID is a dense vertex identifier in [0, NumNodes).
type NodeID int32

// DAGView is the adjacency contract the counting core (internal/subgraph,
// internal/pivot) depends on. Out-neighbors of u must be a contiguous,
// ascending-by-id sequence of vertices with rank(u) < rank(v); no
// self-loops, no duplicates.
type DAGView interface {
	NumNodes() int
	NumEdgesDirected() int64
	OutDegree(u NodeID) int
	OutNeigh(u NodeID) []NodeID
}
