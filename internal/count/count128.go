package count

import "math/bits"

// Count128 is a manually carried two-word unsigned integer, used in
// the opt-in 128-bit mode (spec §3, §9) when a graph's clique counts
// overflow 64 bits. Arithmetic is built on math/bits rather than
// math/big: spec §9 explicitly calls for hand-rolled double-word
// arithmetic on the combination-cache hot path, not an arbitrary
// precision library.
type Count128 struct {
	Hi, Lo uint64
}

func (Count128) Zero() Count128 { return Count128{} }
func (Count128) One() Count128  { return Count128{Lo: 1} }

func (c Count128) Add(o Count128) Count128 {
	lo, carry := bits.Add64(c.Lo, o.Lo, 0)
	hi, _ := bits.Add64(c.Hi, o.Hi, carry)
	return Count128{Hi: hi, Lo: lo}
}

func (c Count128) Sub(o Count128) Count128 {
	lo, borrow := bits.Sub64(c.Lo, o.Lo, 0)
	hi, _ := bits.Sub64(c.Hi, o.Hi, borrow)
	return Count128{Hi: hi, Lo: lo}
}

// MulU64 multiplies by a 64-bit scalar, wrapping silently past 128
// bits (spec §7's overflow policy).
func (c Count128) MulU64(m uint64) Count128 {
	hiFromLo, lo := bits.Mul64(c.Lo, m)
	_, hiFromHi := bits.Mul64(c.Hi, m)
	return Count128{Hi: hiFromLo + hiFromHi, Lo: lo}
}

// QuoRem divides by a 64-bit divisor using the standard two-step
// 128-by-64 long division: divide the high word first, then fold its
// remainder into the low word's division.
func (c Count128) QuoRem(d uint64) (Count128, uint64) {
	qHi, rHi := bits.Div64(0, c.Hi, d)
	qLo, rLo := bits.Div64(rHi, c.Lo, d)
	return Count128{Hi: qHi, Lo: qLo}, rLo
}

func (c Count128) DivU64(d uint64) Count128 {
	q, _ := c.QuoRem(d)
	return q
}

func (c Count128) Equal(o Count128) bool { return c.Hi == o.Hi && c.Lo == o.Lo }

// String renders the value in decimal by peeling off 18-digit chunks
// (kept under 19 so each remainder always fits a uint64 cleanly),
// analogous in spirit to Print_uint128 in pivotscale.h but built on
// QuoRem instead of repeated single-digit division.
func (c Count128) String() string {
	const chunkDiv = 1_000_000_000_000_000_000 // 10^18
	if c.Hi == 0 && c.Lo == 0 {
		return "0"
	}
	var chunks []uint64
	for c.Hi != 0 || c.Lo != 0 {
		q, r := c.QuoRem(chunkDiv)
		chunks = append(chunks, r)
		c = q
	}
	out := formatUint64(chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		s := formatUint64(chunks[i])
		for len(s) < 18 {
			s = "0" + s
		}
		out += s
	}
	return out
}
