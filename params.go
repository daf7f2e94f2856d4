package mldsa

// n is the number of coefficients in every polynomial (FIPS 204 fixes this
// across all three parameter sets).
const n = 256

// q is the Dilithium/ML-DSA prime field modulus: q = 2^23 - 2^13 + 1.
const q = 8380417

// d is the number of bits dropped from t by Power2Round; fixed by FIPS 204.
const d = 13

// SeedSize is the size in bytes of the key-generation seed and of the
// per-signature randomness.
const SeedSize = 32

// Params describes one of the three ML-DSA parameter sets. Rather than
// triplicating the scheme's ~500 lines per security level (the shape taken
// by some reference Go ports), this core keeps a single implementation
// parameterized by a runtime table -- spec.md's "Parameter binding" layer
// explicitly leaves the choice between type-level and table-level selection
// open, and a table keeps L1-L7 at a single copy each instead of three.
type Params struct {
	Name string

	K, L   int // matrix/vector dimensions
	Eta    int // secret coefficient bound
	Tau    int // number of +-1s in the challenge polynomial
	Gamma1 int // mask coefficient range
	Gamma2 int // low-bits rounding range
	Omega  int // max hint weight
	Lambda int // collision strength of c~, in bits
	Beta   int // tau * eta

	etaBits int // bits per coefficient when packing s1/s2
	w1Bits  int // bits per coefficient when packing w1 into the challenge hash
	zBits   int // bits per coefficient when packing z

	PublicKeySize  int
	PrivateKeySize int
	SignatureSize  int
}

// encodingSize returns the number of bytes needed to pack one 256-coefficient
// polynomial at bits-per-coefficient width b.
func encodingSize(bits int) int {
	return n * bits / 8
}

func newParams(name string, k, l, eta, tau, gamma1, gamma2, omega, lambda int) *Params {
	p := &Params{
		Name:   name,
		K:      k,
		L:      l,
		Eta:    eta,
		Tau:    tau,
		Gamma1: gamma1,
		Gamma2: gamma2,
		Omega:  omega,
		Lambda: lambda,
		Beta:   tau * eta,
	}

	switch eta {
	case 2:
		p.etaBits = 3 // 2*eta+1 = 5 values, ceil(log2(5)) = 3
	case 4:
		p.etaBits = 4 // 2*eta+1 = 9 values, ceil(log2(9)) = 4
	default:
		panic("mldsa: unsupported eta")
	}

	switch gamma2 {
	case (q - 1) / 88:
		p.w1Bits = 6
	case (q - 1) / 32:
		p.w1Bits = 4
	default:
		panic("mldsa: unsupported gamma2")
	}

	switch gamma1 {
	case 1 << 17:
		p.zBits = 18
	case 1 << 19:
		p.zBits = 20
	default:
		panic("mldsa: unsupported gamma1")
	}

	p.PublicKeySize = 32 + k*encodingSize(10)
	p.PrivateKeySize = 32 + 32 + 64 + (k+l)*encodingSize(p.etaBits) + k*encodingSize(13)
	p.SignatureSize = 2*lambda/8 + l*encodingSize(p.zBits) + omega + k

	return p
}

// The three FIPS 204 parameter sets. These are process-wide constants; the
// zero value of none of their fields is ever mutated after init.
var (
	// MLDSA44 is ML-DSA-44, NIST security level 2.
	MLDSA44 = newParams("ML-DSA-44", 4, 4, 2, 39, 1<<17, (q-1)/88, 80, 128)

	// MLDSA65 is ML-DSA-65, NIST security level 3.
	MLDSA65 = newParams("ML-DSA-65", 6, 5, 4, 49, 1<<19, (q-1)/32, 55, 192)

	// MLDSA87 is ML-DSA-87, NIST security level 5.
	MLDSA87 = newParams("ML-DSA-87", 8, 7, 2, 60, 1<<19, (q-1)/32, 75, 256)
)
