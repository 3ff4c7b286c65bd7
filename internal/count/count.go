// Package count provides the clique-count integer type used throughout
// the combination cache and the pivoted counter. Two widths are
// available: Count64, a plain wraparound uint64 (the default), and
// Count128, a manually carried two-word integer for graphs dense
// enough to overflow 64 bits at modest k (spec §3, §9). Both satisfy
// Value[T], so internal/comb and internal/pivot are written once,
// generically, against whichever width the caller picks.
package count

// Value is the arithmetic a count type must provide. Overflow wraps
// silently in the underlying width, matching spec §7's overflow
// policy — it is the caller's responsibility to pick a wide enough T
// for the workload.
type Value[T any] interface {
	Zero() T
	One() T
	Add(T) T
	Sub(T) T
	MulU64(uint64) T
	DivU64(uint64) T
	Equal(T) bool
	String() string
}

// Count64 is the default count width: a plain uint64 with silent
// wraparound on overflow, exactly as the original's `uint64_t count_t`.
type Count64 uint64

func (Count64) Zero() Count64             { return 0 }
func (Count64) One() Count64              { return 1 }
func (c Count64) Add(o Count64) Count64   { return c + o }
func (c Count64) Sub(o Count64) Count64   { return c - o }
func (c Count64) MulU64(m uint64) Count64 { return c * Count64(m) }
func (c Count64) DivU64(d uint64) Count64 { return c / Count64(d) }
func (c Count64) Equal(o Count64) bool    { return c == o }
func (c Count64) String() string          { return formatUint64(uint64(c)) }
