package comb

import (
	"testing"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/ucsc-vama/pivotscale/internal/count"
)

func TestBinomialAgreesWithGonum(t *testing.T) {
	c := New[count.Count64]()
	for n := 0; n <= 40; n++ {
		for k := 0; k <= n; k++ {
			want := uint64(combin.Binomial(n, k))
			got := uint64(c.Binomial(n, k))
			if got != want {
				t.Fatalf("Binomial(%d,%d) = %d, want %d", n, k, got, want)
			}
		}
	}
}

func TestBinomialKGreaterThanN(t *testing.T) {
	c := New[count.Count64]()
	if got := c.Binomial(3, 5); got != 0 {
		t.Fatalf("Binomial(3,5) = %d, want 0", got)
	}
}

func TestBinomialBeyondTable(t *testing.T) {
	c := New[count.Count64]()
	// n=150 falls outside the 100x100 precomputed table and exercises
	// the multiplicative fallback.
	got := c.Binomial(150, 3)
	want := uint64(combin.Binomial(150, 3))
	if uint64(got) != want {
		t.Fatalf("Binomial(150,3) = %d, want %d", got, want)
	}
}

func TestBinomialNegativeArgPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative argument")
		}
	}()
	New[count.Count64]().Binomial(-1, 0)
}

func TestBinomial128Width(t *testing.T) {
	c := New[count.Count128]()
	// C(70,35) ~ 1.1e20 overflows uint64 (max ~ 1.8e19).
	got := c.Binomial(70, 35)
	want := float64(combin.Binomial(70, 35)) // float64, approximate reference
	gotF := float64(got.Hi)*18446744073709551616.0 + float64(got.Lo)
	if diff := gotF - want; diff > want*1e-9 || diff < -want*1e-9 {
		t.Fatalf("Binomial(70,35) = %v (%g), want ~%g", got, gotF, want)
	}
}
