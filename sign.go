package mldsa

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// maxContextLen is FIPS 204's hard bound on context string length: the
// length prefix is a single byte, so 255 is the largest representable
// value.
const maxContextLen = 255

// Sign produces a deterministic or hedged ML-DSA signature over message
// under the given context, following the Fiat-Shamir-with-aborts loop
// grounded in KarpelesLab-mldsa/mldsa44.go's signInternal, generalized over
// priv.Params. If rand is nil, SeedSize zero bytes are used, which yields the
// scheme's deterministic variant (spec.md §1/§3); otherwise SeedSize bytes of
// signing randomness are read from rand.
func (priv *PrivateKey) Sign(rand io.Reader, message, context []byte) ([]byte, error) {
	if len(context) > maxContextLen {
		return nil, ErrContextTooLong
	}

	rnd := make([]byte, SeedSize)
	if rand != nil {
		if _, err := io.ReadFull(rand, rnd); err != nil {
			return nil, err
		}
	}
	defer zeroize(rnd)

	mPrime := make([]byte, 0, 2+len(context)+len(message))
	mPrime = append(mPrime, 0x00, byte(len(context)))
	mPrime = append(mPrime, context...)
	mPrime = append(mPrime, message...)

	return priv.signInternal(rnd, mPrime)
}

func (priv *PrivateKey) signInternal(rnd, mPrime []byte) ([]byte, error) {
	p := priv.Params

	muH := sha3.NewShake256()
	muH.Write(priv.tr)
	muH.Write(mPrime)
	mu := make([]byte, 64)
	muH.Read(mu)
	defer zeroize(mu)

	rpH := sha3.NewShake256()
	rpH.Write(priv.k)
	rpH.Write(rnd)
	rpH.Write(mu)
	rhoPrimePrime := make([]byte, 64)
	rpH.Read(rhoPrimePrime)
	defer zeroize(rhoPrimePrime)

	a := expandA(priv.rho, p.K, p.L)
	s1NTT := priv.s1.ntt()
	s2NTT := priv.s2.ntt()
	t0NTT := priv.t0.ntt()

	gamma1 := p.Gamma1
	gamma2 := p.Gamma2
	beta := p.Beta

	kappa := 0
	for {
		y := expandMask(rhoPrimePrime, kappa, p.L, gamma1, p.zBits)
		kappa += p.L

		yNTT := y.ntt()
		wNTT := a.mulVec(yNTT)
		w := wNTT.intt()

		w1 := newPolyVec(p.K)
		for i := 0; i < p.K; i++ {
			for j := 0; j < n; j++ {
				w1[i][j] = highBits(w[i][j], gamma2)
			}
		}

		cTildeH := sha3.NewShake256()
		cTildeH.Write(mu)
		for i := 0; i < p.K; i++ {
			poly := w1[i]
			cTildeH.Write(packW1(&poly, p.w1Bits))
		}
		lambdaBytes := 2 * p.Lambda / 8
		cTilde := make([]byte, lambdaBytes)
		cTildeH.Read(cTilde)

		c := sampleInBall(cTilde, p.Tau)
		cNTT := ntt(&c)

		z := newPolyVec(p.L)
		for i := 0; i < p.L; i++ {
			s1i := s1NTT[i]
			cs1 := intt(nttMul(cNTT, &s1i))
			zp := polyAdd(&y[i], cs1)
			z[i] = *zp
		}
		if centeredNormAtLeast(z, int32(gamma1-beta)) {
			continue
		}

		cs2 := newPolyVec(p.K)
		for i := 0; i < p.K; i++ {
			s2i := s2NTT[i]
			cs2[i] = *intt(nttMul(cNTT, &s2i))
		}
		r := w.sub(cs2)

		r0 := newPolyVec(p.K)
		for i := 0; i < p.K; i++ {
			for j := 0; j < n; j++ {
				r0[i][j] = reduce32(uint32(int64(lowBits(r[i][j], gamma2)) + q))
			}
		}
		if centeredNormAtLeast(r0, int32(gamma2-beta)) {
			continue
		}

		ct0 := newPolyVec(p.K)
		for i := 0; i < p.K; i++ {
			t0i := t0NTT[i]
			ct0[i] = *intt(nttMul(cNTT, &t0i))
		}
		if centeredNormAtLeast(ct0, int32(gamma2)) {
			continue
		}

		rPlusCt0 := r.add(ct0)
		h := make([]poly, p.K)
		weight := 0
		for i := 0; i < p.K; i++ {
			for j := 0; j < n; j++ {
				if makeHint(zqNeg(ct0[i][j]), rPlusCt0[i][j], gamma2) {
					h[i][j] = 1
					weight++
				}
			}
		}
		if weight > p.Omega {
			continue
		}

		sig := make([]byte, 0, p.SignatureSize)
		sig = append(sig, cTilde...)
		for i := 0; i < p.L; i++ {
			poly := z[i]
			sig = append(sig, packZ(&poly, gamma1, p.zBits)...)
		}
		sig = append(sig, encodeHint(h, p.Omega)...)

		return sig, nil
	}
}

// centeredNormAtLeast reports whether any coefficient of v, viewed as its
// centered representative, has absolute value >= bound.
func centeredNormAtLeast(v polyVec, bound int32) bool {
	for i := range v {
		p := v[i]
		if polyInfinityNorm(&p) >= bound {
			return true
		}
	}
	return false
}

// Verify reports whether sig is a valid ML-DSA signature by pub over message
// under context. A false return covers every FIPS-204-defined rejection
// reason (bad length, bad encoding, hash mismatch) uniformly, matching
// spec.md §7's contract that these never panic.
func (pub *PublicKey) Verify(sig, message, context []byte) bool {
	if len(context) > maxContextLen {
		return false
	}
	p := pub.Params
	if len(sig) != p.SignatureSize {
		return false
	}

	lambdaBytes := 2 * p.Lambda / 8
	cTilde := sig[:lambdaBytes]
	off := lambdaBytes

	zSz := encodingSize(p.zBits)
	z := newPolyVec(p.L)
	for i := 0; i < p.L; i++ {
		z[i] = *unpackZ(sig[off:off+zSz], p.Gamma1, p.zBits)
		off += zSz
	}
	if centeredNormAtLeast(z, int32(p.Gamma1-p.Beta)) {
		return false
	}

	hintBytes := sig[off:]
	h, ok := decodeHint(hintBytes, p.K, p.Omega)
	if !ok {
		return false
	}

	pkBytes := pub.Bytes()
	trH := sha3.NewShake256()
	trH.Write(pkBytes)
	tr := make([]byte, 64)
	trH.Read(tr)

	mPrime := make([]byte, 0, 2+len(context)+len(message))
	mPrime = append(mPrime, 0x00, byte(len(context)))
	mPrime = append(mPrime, context...)
	mPrime = append(mPrime, message...)

	muH := sha3.NewShake256()
	muH.Write(tr)
	muH.Write(mPrime)
	mu := make([]byte, 64)
	muH.Read(mu)

	a := expandA(pub.rho, p.K, p.L)
	zNTT := z.ntt()
	azNTT := a.mulVec(zNTT)
	az := azNTT.intt()

	c := sampleInBall(cTilde, p.Tau)
	cNTT := ntt(&c)

	t1Shifted := pub.t1.shiftLeft()
	t1ShiftedNTT := t1Shifted.ntt()

	wApprox := newPolyVec(p.K)
	for i := 0; i < p.K; i++ {
		t1i := t1ShiftedNTT[i]
		ct1 := intt(nttMul(cNTT, &t1i))
		wApprox[i] = *polySub(&az[i], ct1)
	}

	w1Prime := newPolyVec(p.K)
	for i := 0; i < p.K; i++ {
		for j := 0; j < n; j++ {
			w1Prime[i][j] = useHint(h[i][j] != 0, wApprox[i][j], p.Gamma2)
		}
	}

	cTildePrimeH := sha3.NewShake256()
	cTildePrimeH.Write(mu)
	for i := 0; i < p.K; i++ {
		poly := w1Prime[i]
		cTildePrimeH.Write(packW1(&poly, p.w1Bits))
	}
	cTildePrime := make([]byte, lambdaBytes)
	cTildePrimeH.Read(cTildePrime)

	return constantTimeEqual(cTilde, cTildePrime)
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
