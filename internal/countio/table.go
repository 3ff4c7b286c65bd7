// Package countio formats clique-count results for display, mirroring
// pivotscale.h's PrintCliqueCountRow column layout (spec §6).
package countio

import (
	"fmt"
	"io"

	"github.com/ucsc-vama/pivotscale/internal/count"
)

// colWidth is wide enough to right-align either a 64-bit count (up to
// 20 digits) or a 128-bit count (up to 39 digits) without the two
// output modes needing different formatting code.
const colWidth = 39

// WriteSingle prints the one-line "k-clique count: N" result of a
// single-target-size run.
func WriteSingle[T count.Value[T]](w io.Writer, k int, total T) {
	fmt.Fprintf(w, "%d-clique count: %*s\n", k, colWidth, total.String())
}

// WriteSweep prints the per-size table of a sweep run: a header row
// followed by one right-aligned row per size 1..len(counts)-1 that has
// a non-zero count (index 0 is always zero and is always skipped,
// exactly as PrintCliqueCounts skips sizes with no cliques).
func WriteSweep[T count.Value[T]](w io.Writer, counts []T) {
	fmt.Fprintf(w, "%5s  %*s\n", "k", colWidth, "clique_count")
	var zero T
	for k := 1; k < len(counts); k++ {
		if counts[k].Equal(zero) {
			continue
		}
		fmt.Fprintf(w, "%5d  %*s\n", k, colWidth, counts[k].String())
	}
}
