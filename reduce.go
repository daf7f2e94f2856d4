package mldsa

// power2Round splits a canonical coefficient r into (r1, r0) such that
// r = r1*2^d + r0 with r0 in (-2^(d-1), 2^(d-1)], following
// original_source/include/reduction.hpp's power2round<d>.
func power2Round(r zq) (r1 zq, r0 int32) {
	const half = 1 << (d - 1)

	t1 := r + half - 1
	t2 := t1 >> d
	t3 := t2 << d

	r1 = t2
	r0 = int32(r) - int32(t3)
	return
}

// decompose splits a canonical coefficient r into (r1, r0) such that
// r = r1*alpha + r0 with r0 in (-alpha/2, alpha/2], handling the boundary
// wraparound near q-1 the way reduction.hpp's decompose<alpha> does: when
// the naive r1 would land on (q-1)/alpha, it is folded back to 0 and r0
// decremented by one so that the high/low split stays consistent with q's
// residue class.
func decompose(r zq, alpha int) (r1 zq, r0 int32) {
	t1 := int32(r)
	t2 := t1 + int32(alpha)/2 - 1
	t3 := t2 / int32(alpha)

	r0val := t1 - t3*int32(alpha)
	if t3 == int32((q-1)/alpha) {
		r1 = 0
		r0val--
	} else {
		r1 = zq(t3)
	}
	r0 = r0val
	return
}

// highBits returns the r1 component of decompose(r, 2*gamma2).
func highBits(r zq, gamma2 int) zq {
	r1, _ := decompose(r, 2*gamma2)
	return r1
}

// lowBits returns the r0 component of decompose(r, 2*gamma2).
func lowBits(r zq, gamma2 int) int32 {
	_, r0 := decompose(r, 2*gamma2)
	return r0
}

// makeHint reports whether the one-bit hint for coefficients z (perturbation
// applied at verification time) and r (the true value) differs, i.e. whether
// highBits(r) != highBits(r+z).
func makeHint(z, r zq, gamma2 int) bool {
	r1 := highBits(r, gamma2)
	v1 := highBits(zqAdd(r, z), gamma2)
	return r1 != v1
}

// useHint reconstructs highBits(r) given hint bit h and r, without knowing r
// exactly -- only r's low bits matter for selecting which of the two
// neighboring high-bit buckets h points to. Grounded in reduction.hpp's
// use_hint<alpha>.
func useHint(h bool, r zq, gamma2 int) zq {
	alpha := 2 * gamma2
	m := (q - 1) / alpha

	r1, r0 := decompose(r, alpha)
	if !h {
		return r1
	}

	if r0 > 0 {
		if int(r1) == m-1 {
			return 0
		}
		return r1 + 1
	}
	if int(r1) == 0 {
		return zq(m - 1)
	}
	return r1 - 1
}
