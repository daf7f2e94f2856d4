package mldsa

import "testing"

func TestSampleNTTPolyInRange(t *testing.T) {
	rho := make([]byte, 32)
	for i := range rho {
		rho[i] = byte(i)
	}
	p := sampleNTTPoly(rho, 0, 1)
	for i, c := range p {
		if c >= q {
			t.Fatalf("sampleNTTPoly coefficient %d = %d out of range", i, c)
		}
	}
}

func TestSampleBoundedPolyInRange(t *testing.T) {
	seed := make([]byte, 64)
	for _, eta := range []int{2, 4} {
		p := sampleBoundedPoly(seed, eta, 0)
		for i, c := range p {
			v := centered(c)
			if v < -int32(eta) || v > int32(eta) {
				t.Fatalf("eta=%d: coefficient %d = %d out of [-eta,eta]", eta, i, v)
			}
		}
	}
}

func TestSampleInBallHasTauNonzero(t *testing.T) {
	seed := make([]byte, 48)
	for _, tau := range []int{39, 49, 60} {
		c := sampleInBall(seed, tau)
		count := 0
		for _, coeff := range c {
			v := centered(coeff)
			if v != 0 {
				if v != 1 && v != -1 {
					t.Fatalf("tau=%d: nonzero coefficient %d not +-1", tau, v)
				}
				count++
			}
		}
		if count != tau {
			t.Fatalf("tau=%d: got %d nonzero coefficients", tau, count)
		}
	}
}

func TestExpandMaskInRange(t *testing.T) {
	seed := make([]byte, 64)
	gamma1 := 1 << 17
	bits := 18
	y := expandMask(seed, 0, 4, gamma1, bits)
	for i := range y {
		for j, c := range y[i] {
			v := centered(c)
			if v < -int32(gamma1)+1 || v > int32(gamma1) {
				t.Fatalf("y[%d][%d] = %d out of range", i, j, v)
			}
		}
	}
}
