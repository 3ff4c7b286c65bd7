// Package comb implements the combination cache: C(n,k) for small
// inputs by table, else by multiplicative computation (spec §4.1).
package comb

import "github.com/ucsc-vama/pivotscale/internal/count"

// numPrecompute is the table's side length N. N=100 comfortably covers
// the pivot-set sizes encountered in practice; larger (n,k) fall back
// to Cache.compute.
const numPrecompute = 100

// Cache answers C(n,k) in the target count type T, populated once at
// construction and read-only thereafter — safe to share across every
// worker's goroutine (spec §9: "build it once at startup").
type Cache[T count.Value[T]] struct {
	table [numPrecompute][numPrecompute]T
}

// New builds the cache, populating the lower-triangular table by
// Pascal's recurrence C(n,k) = C(n-1,k-1) + C(n-1,k), with boundary
// C(n,0) = C(n,n) = 1. Entries with k > n are left at T's zero value;
// Binomial never reads them, since it returns zero for k > n before
// consulting the table.
func New[T count.Value[T]]() *Cache[T] {
	c := &Cache[T]{}
	var zero T
	one := zero.One()
	for n := 0; n < numPrecompute; n++ {
		for k := 0; k <= n; k++ {
			if k == 0 || k == n {
				c.table[n][k] = one
			} else {
				c.table[n][k] = c.table[n-1][k-1].Add(c.table[n-1][k])
			}
		}
	}
	return c
}

// Binomial returns C(n,k), exact in T, for 0 <= k <= n. For k > n it
// returns 0. n and k are taken as ints (the recursion's clique_size /
// num_pivots bookkeeping is naturally int-sized); negative k or n is
// not a valid call and panics, matching the original's "ASSUMES n>0,
// k>0" contract at the call sites that matter (the base cases never
// pass negative arguments).
func (c *Cache[T]) Binomial(n, k int) T {
	var zero T
	if n < 0 || k < 0 {
		panic("comb: negative argument")
	}
	if k > n {
		return zero
	}
	if n < numPrecompute && k < numPrecompute {
		return c.table[n][k]
	}
	return c.compute(n, k)
}

// compute handles (n,k) outside the precomputed table via
// C(n,k) = prod_{i=1..m} (n - m + i) / i, m = min(k, n-k), using the
// identity C(n,k) = C(n,n-k) to minimize the loop (spec §4.1).
func (c *Cache[T]) compute(n, k int) T {
	var zero T
	if k == 0 || k == n {
		return zero.One()
	}
	m := k
	if n-k < m {
		m = n - k
	}
	result := zero.One()
	for i := 1; i <= m; i++ {
		result = result.MulU64(uint64(n - m + i))
		result = result.DivU64(uint64(i))
	}
	return result
}
