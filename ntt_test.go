package mldsa

import "testing"

func TestNTTInvolution(t *testing.T) {
	var f poly
	for i := range f {
		f[i] = zq((i*37 + 11) % q)
	}

	transformed := ntt(&f)
	back := intt(transformed)

	for i := range f {
		if (*back)[i] != f[i] {
			t.Fatalf("intt(ntt(f))[%d] = %d, want %d", i, (*back)[i], f[i])
		}
	}
}

func TestNTTZeroIsFixedPoint(t *testing.T) {
	var f poly
	transformed := ntt(&f)
	for i, v := range transformed {
		if v != 0 {
			t.Fatalf("ntt(0)[%d] = %d, want 0", i, v)
		}
	}
}

func TestNTTMulMatchesConvolution(t *testing.T) {
	var a, b poly
	a[0] = 1
	a[1] = 2
	b[0] = 3
	b[2] = 1

	// a = 2X + 1, b = X^2 + 3 in R_q = Z_q[X]/(X^256+1).
	// a*b = (2X+1)(X^2+3) = 2X^3 + X^2 + 6X + 3
	var want poly
	want[0] = 3
	want[1] = 6
	want[2] = 1
	want[3] = 2

	aNTT := ntt(&a)
	bNTT := ntt(&b)
	prodNTT := nttMul(aNTT, bNTT)
	got := intt(prodNTT)

	for i := range want {
		if (*got)[i] != want[i] {
			t.Fatalf("(a*b)[%d] = %d, want %d", i, (*got)[i], want[i])
		}
	}
}

func TestZetasAreDistinctNonzero(t *testing.T) {
	seen := make(map[zq]bool)
	for i, z := range zetas {
		if i == 0 {
			continue // zetas[0] is never read by ntt/intt
		}
		if z == 0 {
			t.Fatalf("zetas[%d] == 0", i)
		}
		if seen[z] {
			t.Fatalf("zetas[%d] = %d repeats an earlier entry", i, z)
		}
		seen[z] = true
	}
}
