package mldsa

import "testing"

func TestZqAddSubNeg(t *testing.T) {
	cases := []zq{0, 1, q - 1, q / 2, 12345, q - 12345}
	for _, a := range cases {
		for _, b := range cases {
			sum := zqAdd(a, b)
			if sum >= q {
				t.Fatalf("zqAdd(%d,%d)=%d out of range", a, b, sum)
			}
			if got := zqSub(sum, b); got != a {
				t.Fatalf("zqSub(zqAdd(%d,%d),%d)=%d want %d", a, b, b, got, a)
			}
		}
		if got := zqAdd(a, zqNeg(a)); got != 0 {
			t.Fatalf("a + -a != 0 for a=%d, got %d", a, got)
		}
	}
}

func TestZqMulBarrett(t *testing.T) {
	cases := []struct{ a, b zq }{
		{0, 0}, {1, 1}, {2, 3}, {q - 1, q - 1}, {12345, 67890}, {q / 2, q / 2},
	}
	for _, c := range cases {
		got := zqMul(c.a, c.b)
		want := zq((uint64(c.a) * uint64(c.b)) % q)
		if got != want {
			t.Fatalf("zqMul(%d,%d)=%d want %d", c.a, c.b, got, want)
		}
	}
}

func TestZqInv(t *testing.T) {
	for _, a := range []zq{1, 2, 3, 12345, q - 1} {
		inv := zqInv(a)
		if got := zqMul(a, inv); got != 1 {
			t.Fatalf("a * a^-1 != 1 for a=%d, got %d", a, got)
		}
	}
}

func TestCentered(t *testing.T) {
	if v := centered(0); v != 0 {
		t.Fatalf("centered(0) = %d, want 0", v)
	}
	if v := centered(q / 2); v != q/2 {
		t.Fatalf("centered(q/2) = %d, want %d", v, q/2)
	}
	if v := centered(q - 1); v != -1 {
		t.Fatalf("centered(q-1) = %d, want -1", v)
	}
}

func TestReduce32(t *testing.T) {
	for _, v := range []uint32{0, 1, q, q + 1, q*3 + 5, 1 << 30} {
		got := reduce32(v)
		want := zq(uint64(v) % q)
		if got != want {
			t.Fatalf("reduce32(%d)=%d want %d", v, got, want)
		}
	}
}
