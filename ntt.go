package mldsa

// polyNTT is a polynomial already in NTT (evaluation) domain: 256 field
// elements, one per point of the negacyclic transform.
type polyNTT [n]zq

// zeta is a primitive 512th root of unity mod q (FIPS 204, Appendix).
const zeta = 1753

// zetas[i] holds zeta^(bitrev8(i)), the twiddle factor used at NTT layer
// position i. original_source computes this table at compile time via a
// consteval bit-reversal-permuted power table rather than hardcoding 256
// magic constants; this package does the equivalent at package init, which
// also means the table is trivially checked against the field exponentiation
// routine it is built from rather than hand-transcribed.
var zetas [n]zq

// invN is n^-1 mod q, the scaling factor applied once at the end of the
// inverse transform.
var invN zq

func init() {
	for i := 0; i < n; i++ {
		zetas[i] = zqPow(zeta, uint32(bitrev8(uint8(i))))
	}
	invN = zqInv(n)
}

// bitrev8 reverses the low 8 bits of v.
func bitrev8(v uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= v & 1
		v >>= 1
	}
	return r
}

// ntt computes the forward number-theoretic transform of f, converting it
// from coefficient representation to evaluation (NTT) domain. The result is
// returned as a new polynomial; f is left unchanged.
// This is the standard Cooley-Tukey decimation, iterating butterfly layers
// of decreasing stride; see original_source/include/ntt.hpp for the
// authoritative layer structure this mirrors.
func ntt(f *poly) *polyNTT {
	var out poly
	out = *f

	k := 1
	for length := 128; length >= 1; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zetaVal := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := zqMul(zetaVal, out[j+length])
				out[j+length] = zqSub(out[j], t)
				out[j] = zqAdd(out[j], t)
			}
		}
	}

	r := polyNTT(out)
	return &r
}

// intt computes the inverse NTT of f, converting it from evaluation
// domain back to coefficient representation. This is Gentleman-Sande
// decimation-in-frequency, the mirror image of ntt's layer order, with a
// final scale by invN.
func intt(f *polyNTT) *poly {
	var out poly
	out = poly(*f)

	k := n - 1
	for length := 1; length < n; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zetaVal := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := out[j]
				out[j] = zqAdd(t, out[j+length])
				out[j+length] = zqSub(out[j+length], t)
				out[j+length] = zqMul(zetaVal, out[j+length])
			}
		}
	}

	for i := range out {
		out[i] = zqMul(out[i], invN)
	}

	return &out
}

// nttMul computes the pointwise product of two polynomials already in NTT
// domain, i.e. the NTT-domain representation of their ring product.
func nttMul(a, b *polyNTT) *polyNTT {
	var out polyNTT
	for i := range out {
		out[i] = zqMul(a[i], b[i])
	}
	return &out
}

// nttAdd computes the pointwise sum of two NTT-domain polynomials.
func nttAdd(a, b *polyNTT) *polyNTT {
	var out polyNTT
	for i := range out {
		out[i] = zqAdd(a[i], b[i])
	}
	return &out
}
