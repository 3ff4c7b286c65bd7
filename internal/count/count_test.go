package count

import "testing"

func TestCount64Arithmetic(t *testing.T) {
	var a, b Count64 = 7, 5
	if got := a.Add(b); got != 12 {
		t.Fatalf("Add = %d, want 12", got)
	}
	if got := a.Sub(b); got != 2 {
		t.Fatalf("Sub = %d, want 2", got)
	}
	if got := a.MulU64(3); got != 21 {
		t.Fatalf("MulU64 = %d, want 21", got)
	}
	if got := a.DivU64(7); got != 1 {
		t.Fatalf("DivU64 = %d, want 1", got)
	}
	if a.String() != "7" {
		t.Fatalf("String() = %q, want %q", a.String(), "7")
	}
}

func TestCount64Wraps(t *testing.T) {
	var max Count64 = ^Count64(0)
	got := max.Add(1)
	if got != 0 {
		t.Fatalf("max+1 = %d, want 0 (silent wraparound)", got)
	}
}

func TestCount128AddCarries(t *testing.T) {
	a := Count128{Hi: 0, Lo: ^uint64(0)}
	got := a.Add(Count128{Lo: 1})
	want := Count128{Hi: 1, Lo: 0}
	if !got.Equal(want) {
		t.Fatalf("Add carry = %+v, want %+v", got, want)
	}
}

func TestCount128MulAndDivRoundTrip(t *testing.T) {
	a := Count128{Lo: 123456789}
	m := a.MulU64(987654321)
	back := m.DivU64(987654321)
	if !back.Equal(a) {
		t.Fatalf("round trip = %+v, want %+v", back, a)
	}
}

func TestCount128String(t *testing.T) {
	// 2^64, which needs the high word to render correctly.
	v := Count128{Hi: 1, Lo: 0}
	got := v.String()
	want := "18446744073709551616"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCount128StringZero(t *testing.T) {
	var v Count128
	if got := v.String(); got != "0" {
		t.Fatalf("String() = %q, want %q", got, "0")
	}
}
