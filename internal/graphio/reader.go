// Package graphio implements the three ways a graph can reach
// pivotscale: a plain-text edge list, a synthetically generated
// instance, and a compressed binary serialized graph (spec §6
// EXTERNAL INTERFACES).
package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ucsc-vama/pivotscale/internal/graph"
)

// EdgeList is the raw, not-yet-squished result of reading an edge-list
// file: every line's (src, dst) pair, and the largest vertex id seen
// (NumNodes = maxNode+1).
type EdgeList struct {
	Edges    [][2]graph.NodeID
	NumNodes int
	Directed bool
}

// ReadEdgeListFile reads a whitespace-separated edge list ("u v" per
// line, "#"-prefixed and blank lines ignored), the same format
// pkg/scar's GraphReader.ReadFromFile parses. If directed is true the
// edges are taken as given (u->v only); otherwise the caller is
// expected to symmetrize via graph.BuildSymmetric.
func ReadEdgeListFile(path string, directed bool) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var edges [][2]graph.NodeID
	var maxNode graph.NodeID = -1

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		src, err1 := strconv.ParseInt(parts[0], 10, 32)
		dst, err2 := strconv.ParseInt(parts[1], 10, 32)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("graphio: malformed edge at line %d: %q", lineNo, line)
		}
		u, v := graph.NodeID(src), graph.NodeID(dst)
		edges = append(edges, [2]graph.NodeID{u, v})
		if u > maxNode {
			maxNode = u
		}
		if v > maxNode {
			maxNode = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &EdgeList{
		Edges:    edges,
		NumNodes: int(maxNode) + 1,
		Directed: directed,
	}, nil
}

// Build turns the edge list into a CSR: symmetric (both directions
// inserted, then squished) when el.Directed is false, or a plain
// as-given directed CSR otherwise. Ingesting a graph that turns out to
// already be directed is the caller's trigger for the spec's exit
// code -2 — Build itself does not reject anything.
func (el *EdgeList) Build() *graph.CSR {
	if !el.Directed {
		return graph.BuildSymmetric(el.NumNodes, el.Edges)
	}
	full := graph.BuildSymmetric(el.NumNodes, el.Edges)
	keep := make(map[[2]graph.NodeID]bool, len(el.Edges))
	for _, e := range el.Edges {
		keep[e] = true
	}
	return graph.BuildDirectedByFunc(full, func(u, v graph.NodeID) bool {
		return keep[[2]graph.NodeID{u, v}]
	})
}
