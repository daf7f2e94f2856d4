package mldsa

// poly is a polynomial in coefficient representation: 256 coefficients in
// Z_q, index i holding the coefficient of X^i.
type poly [n]zq

// polyAdd computes a+b coefficientwise.
func polyAdd(a, b *poly) *poly {
	var out poly
	for i := range out {
		out[i] = zqAdd(a[i], b[i])
	}
	return &out
}

// polySub computes a-b coefficientwise.
func polySub(a, b *poly) *poly {
	var out poly
	for i := range out {
		out[i] = zqSub(a[i], b[i])
	}
	return &out
}

// polyNeg negates a coefficientwise.
func polyNeg(a *poly) *poly {
	var out poly
	for i := range out {
		out[i] = zqNeg(a[i])
	}
	return &out
}

// polyShiftLeft multiplies every coefficient by 2^d, used to reconstruct
// t1*2^d during verification from the packed high bits of t.
func polyShiftLeft(a *poly) *poly {
	var out poly
	for i := range out {
		out[i] = zqMul(a[i], 1<<d)
	}
	return &out
}

// polyInfinityNorm returns the maximum absolute value of a's centered
// coefficients, i.e. ||a||_inf.
func polyInfinityNorm(a *poly) int32 {
	var max int32
	for _, c := range a {
		v := centered(c)
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

// polyReduce maps every coefficient of a raw (possibly out-of-range) poly
// back into canonical [0, q) form. Arithmetic in this package always
// produces canonical output already; this exists for values assembled
// directly from sampling routines that build coefficients outside zqAdd/
// zqSub/zqMul.
func polyReduce(a *poly) *poly {
	var out poly
	for i := range out {
		out[i] = reduce32(a[i])
	}
	return &out
}
