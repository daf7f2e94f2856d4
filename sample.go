package mldsa

import (
	"golang.org/x/crypto/sha3"
)

// This file derives the pseudorandom matrix A, the secret vectors s1/s2, the
// per-iteration mask y, and the sparse challenge polynomial c from seed
// material via rejection sampling over SHAKE-128/256, following
// KarpelesLab-mldsa/sample.go's structure (sampleNTTPoly, sampleBoundedPoly,
// sampleChallenge, expandMask) adapted to this package's canonical (not
// Montgomery) field representation and its single-width generic bit-packer.

// expandA deterministically expands rho into the public K x L matrix A,
// directly in NTT domain (FIPS 204 never needs A in coefficient form).
func expandA(rho []byte, k, l int) matrix {
	a := newMatrix(k, l)
	for i := 0; i < k; i++ {
		for j := 0; j < l; j++ {
			a[i][j] = sampleNTTPoly(rho, byte(i), byte(j))
		}
	}
	return a
}

// sampleNTTPoly fills one NTT-domain polynomial by rejection-sampling
// uniform field elements from SHAKE128(rho || j || i), matching FIPS 204's
// RejNTTPoly / KarpelesLab's sampleNTTPoly.
func sampleNTTPoly(rho []byte, i, j byte) polyNTT {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{j, i})

	var out polyNTT
	buf := make([]byte, 168)
	count := 0
	for count < n {
		h.Read(buf)
		for pos := 0; pos+3 <= len(buf) && count < n; pos += 3 {
			cand := uint32(buf[pos]) | uint32(buf[pos+1])<<8 | uint32(buf[pos+2])<<16
			cand &= 0x7fffff
			if cand < q {
				out[count] = cand
				count++
			}
		}
	}
	return out
}

// expandS deterministically expands a seed into L+K bounded secret
// polynomials (s1 then s2), each coefficient in [-eta, eta], via rejection
// sampling over nibbles of a SHAKE256 stream, matching
// KarpelesLab-mldsa/sample.go's sampleBoundedPoly.
func expandS(seed []byte, eta, total int) polyVec {
	out := newPolyVec(total)
	for i := 0; i < total; i++ {
		out[i] = sampleBoundedPoly(seed, eta, uint16(i))
	}
	return out
}

func sampleBoundedPoly(seed []byte, eta int, nonce uint16) poly {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{byte(nonce), byte(nonce >> 8)})

	var out poly
	buf := make([]byte, 136)
	count := 0
	for count < n {
		h.Read(buf)
		for _, b := range buf {
			if count >= n {
				break
			}
			lo := b & 0x0f
			hi := b >> 4

			if eta == 2 {
				if v := lo; v < 15 {
					c := 2 - int32(v%5)
					out[count] = zq(int32(c) + q)
					out[count] = reduce32(out[count])
					count++
				}
				if count < n {
					if v := hi; v < 15 {
						c := 2 - int32(v%5)
						out[count] = reduce32(zq(int32(c) + q))
						count++
					}
				}
			} else { // eta == 4
				if lo <= 8 {
					c := 4 - int32(lo)
					out[count] = reduce32(zq(int32(c) + q))
					count++
				}
				if count < n && hi <= 8 {
					c := 4 - int32(hi)
					out[count] = reduce32(zq(int32(c) + q))
					count++
				}
			}
		}
	}
	return out
}

// expandMask deterministically derives the per-iteration mask vector y from
// rhoPrime and the current rejection-loop counter kappa, with coefficients
// uniform in (-gamma1, gamma1]. No rejection is needed here: the packed
// width already spans exactly the needed range.
func expandMask(rhoPrime []byte, kappa, l, gamma1, bits int) polyVec {
	out := newPolyVec(l)
	for i := 0; i < l; i++ {
		h := sha3.NewShake256()
		h.Write(rhoPrime)
		nonce := uint16(kappa + i)
		h.Write([]byte{byte(nonce), byte(nonce >> 8)})

		buf := make([]byte, encodingSize(bits))
		h.Read(buf)
		out[i] = *unpackZ(buf, gamma1, bits)
	}
	return out
}

// sampleInBall deterministically derives the sparse ternary challenge
// polynomial c (exactly tau nonzero coefficients, each +-1) from the
// signature's commitment hash seed, via Fisher-Yates shuffling of a {-1,+1}
// sign stream drawn from the first 8 bytes of a SHAKE256 squeeze, following
// KarpelesLab-mldsa/sample.go's sampleChallenge.
func sampleInBall(seed []byte, tau int) poly {
	h := sha3.NewShake256()
	h.Write(seed)

	var signBytes [8]byte
	h.Read(signBytes[:])
	var signBits uint64
	for i, b := range signBytes {
		signBits |= uint64(b) << (8 * i)
	}

	var out poly
	one := make([]byte, 1)
	for i := n - tau; i < n; i++ {
		var j int
		for {
			h.Read(one)
			j = int(one[0])
			if j <= i {
				break
			}
		}
		out[i] = out[j]
		if signBits&1 != 0 {
			out[j] = zqNeg(1)
		} else {
			out[j] = 1
		}
		signBits >>= 1
	}
	return out
}
