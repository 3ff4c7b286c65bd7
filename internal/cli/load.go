package cli

import (
	"fmt"

	"github.com/ucsc-vama/pivotscale/internal/graph"
	"github.com/ucsc-vama/pivotscale/internal/graphio"
)

// LoadGraph dispatches on the flags the user set, in the same
// priority order command_line.h documents: an explicit file wins over
// generation, and -b (binary) wins over -f (edge list). It returns
// whether the loaded graph came out directed — the caller is
// responsible for rejecting that with exit code -2, mirroring
// PivotScale's main().
func LoadGraph(f *Flags) (*graph.CSR, bool, error) {
	switch {
	case f.BinaryFile != "":
		return graphio.ReadBinary(f.BinaryFile)

	case f.GraphFile != "":
		el, err := graphio.ReadEdgeListFile(f.GraphFile, !f.Symmetrize)
		if err != nil {
			return nil, false, err
		}
		return el.Build(), el.Directed, nil

	case f.GenScale > 0:
		numEdges := f.NumEdges
		if numEdges == 0 {
			numEdges = (1 << f.GenScale) * 16
		}
		el := graphio.GenerateKronecker(f.GenScale, numEdges, f.Seed)
		return el.Build(), false, nil

	case f.GenUniform > 0:
		numEdges := f.NumEdges
		if numEdges == 0 {
			numEdges = f.GenUniform * 16
		}
		el := graphio.GenerateUniform(f.GenUniform, numEdges, f.Seed)
		return el.Build(), false, nil

	default:
		return nil, false, fmt.Errorf("cli: no graph source given (use -f, -b, -g, or -u)")
	}
}
