package mldsa

import (
	"errors"

	"golang.org/x/crypto/sha3"
)

// Sentinel errors follow the teacher's pkg/crypto/pqc convention: package
// level errors.New values for caller-contract violations, returned through
// normal error returns rather than panics.
var (
	ErrSeedSize       = errors.New("mldsa: seed must be SeedSize bytes")
	ErrContextTooLong = errors.New("mldsa: context must be at most 255 bytes")
	ErrBadPublicKey   = errors.New("mldsa: malformed public key")
	ErrBadPrivateKey  = errors.New("mldsa: malformed private key")
	ErrBadSignature   = errors.New("mldsa: malformed signature")
)

// PublicKey is an ML-DSA public key: the matrix seed rho and the rounded
// high bits of t = A*s1 + s2.
type PublicKey struct {
	Params *Params
	rho    []byte // 32 bytes
	t1     polyVec
}

// PrivateKey is an ML-DSA private key. It satisfies crypto.Signer-shaped
// usage via its Sign method, alongside the flat-byte Sign/Verify free
// functions spec.md §6 names directly.
type PrivateKey struct {
	Params *Params
	rho    []byte // 32 bytes
	k      []byte // 32 bytes, named K by FIPS 204, lowercased here to avoid
	// shadowing Params.K
	tr []byte // 64 bytes
	s1 polyVec
	s2 polyVec
	t0 polyVec

	pub *PublicKey
}

// Public returns the public key corresponding to priv.
func (priv *PrivateKey) Public() *PublicKey {
	return priv.pub
}

// GenerateKey derives an ML-DSA key pair from a 32-byte seed for the given
// parameter set. The same seed always yields the same key pair.
func GenerateKey(params *Params, seed []byte) (*PublicKey, *PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, nil, ErrSeedSize
	}

	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{byte(params.K), byte(params.L)})
	expanded := make([]byte, 128)
	h.Read(expanded)
	defer zeroize(expanded)

	rho := append([]byte(nil), expanded[:32]...)
	rhoPrime := expanded[32:96]
	kBytes := append([]byte(nil), expanded[96:128]...)

	a := expandA(rho, params.K, params.L)

	s := expandS(rhoPrime, params.Eta, params.L+params.K)
	s1 := s[:params.L]
	s2 := s[params.L:]

	s1NTT := s1.ntt()
	tNTT := a.mulVec(s1NTT)
	t := tNTT.intt().add(s2)

	t1 := newPolyVec(params.K)
	t0 := newPolyVec(params.K)
	for i := 0; i < params.K; i++ {
		for j := 0; j < n; j++ {
			hi, lo := power2Round(t[i][j])
			t1[i][j] = hi
			t0[i][j] = reduce32(uint32(int64(lo) + q))
		}
	}

	pub := &PublicKey{Params: params, rho: rho, t1: t1}

	pkBytes := pub.Bytes()
	trHash := sha3.NewShake256()
	trHash.Write(pkBytes)
	tr := make([]byte, 64)
	trHash.Read(tr)

	priv := &PrivateKey{
		Params: params,
		rho:    rho,
		k:      kBytes,
		tr:     tr,
		s1:     s1,
		s2:     s2,
		t0:     t0,
		pub:    pub,
	}

	return pub, priv, nil
}

// Bytes serializes pub into its FIPS 204 wire encoding: rho || packed t1.
func (pub *PublicKey) Bytes() []byte {
	out := make([]byte, 0, pub.Params.PublicKeySize)
	out = append(out, pub.rho...)
	for i := 0; i < pub.Params.K; i++ {
		out = append(out, packT1(&pub.t1[i])...)
	}
	return out
}

// ParsePublicKey parses a public key previously produced by Bytes.
func ParsePublicKey(params *Params, buf []byte) (*PublicKey, error) {
	if len(buf) != params.PublicKeySize {
		return nil, ErrBadPublicKey
	}

	rho := append([]byte(nil), buf[:32]...)
	t1 := newPolyVec(params.K)
	off := 32
	sz := encodingSize(10)
	for i := 0; i < params.K; i++ {
		t1[i] = *unpackT1(buf[off : off+sz])
		off += sz
	}

	return &PublicKey{Params: params, rho: rho, t1: t1}, nil
}

// Bytes serializes priv into its FIPS 204 wire encoding: rho || K || tr ||
// packed s1 || packed s2 || packed t0.
func (priv *PrivateKey) Bytes() []byte {
	p := priv.Params
	out := make([]byte, 0, p.PrivateKeySize)
	out = append(out, priv.rho...)
	out = append(out, priv.k...)
	out = append(out, priv.tr...)
	for i := 0; i < p.L; i++ {
		poly := priv.s1[i]
		out = append(out, packEta(&poly, p.Eta, p.etaBits)...)
	}
	for i := 0; i < p.K; i++ {
		poly := priv.s2[i]
		out = append(out, packEta(&poly, p.Eta, p.etaBits)...)
	}
	for i := 0; i < p.K; i++ {
		poly := priv.t0[i]
		out = append(out, packT0(&poly)...)
	}
	return out
}

// ParsePrivateKey parses a private key previously produced by Bytes.
func ParsePrivateKey(params *Params, buf []byte) (*PrivateKey, error) {
	if len(buf) != params.PrivateKeySize {
		return nil, ErrBadPrivateKey
	}

	off := 0
	rho := append([]byte(nil), buf[off:off+32]...)
	off += 32
	k := append([]byte(nil), buf[off:off+32]...)
	off += 32
	tr := append([]byte(nil), buf[off:off+64]...)
	off += 64

	etaSz := encodingSize(params.etaBits)
	s1 := newPolyVec(params.L)
	for i := 0; i < params.L; i++ {
		s1[i] = *unpackEta(buf[off:off+etaSz], params.Eta, params.etaBits)
		off += etaSz
	}
	s2 := newPolyVec(params.K)
	for i := 0; i < params.K; i++ {
		s2[i] = *unpackEta(buf[off:off+etaSz], params.Eta, params.etaBits)
		off += etaSz
	}

	t0Sz := encodingSize(d)
	t0 := newPolyVec(params.K)
	for i := 0; i < params.K; i++ {
		t0[i] = *unpackT0(buf[off : off+t0Sz])
		off += t0Sz
	}

	s1NTT := s1.ntt()
	a := expandA(rho, params.K, params.L)
	tNTT := a.mulVec(s1NTT)
	t := tNTT.intt().add(s2)

	t1 := newPolyVec(params.K)
	for i := 0; i < params.K; i++ {
		for j := 0; j < n; j++ {
			hi, _ := power2Round(t[i][j])
			t1[i][j] = hi
		}
	}
	pub := &PublicKey{Params: params, rho: rho, t1: t1}

	return &PrivateKey{
		Params: params,
		rho:    rho,
		k:      k,
		tr:     tr,
		s1:     s1,
		s2:     s2,
		t0:     t0,
		pub:    pub,
	}, nil
}
