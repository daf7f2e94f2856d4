package mldsa

// This file implements the bit-level encodings FIPS 204 uses to serialize
// polynomials, following the single generic bit-stream algorithm in
// original_source/include/bit_packing.hpp (encode<sbw>/decode<sbw>) rather
// than width-specialized unrolled variants: bit i of the output stream is
// bit (i mod sbw) of coefficient i/sbw, so one implementation is correct,
// and byte-identical, for every width FIPS 204 uses (3,4,6,10,13,18,20).

// packBits packs the n coefficients of vals (each assumed < 2^bits) into a
// byte slice of encodingSize(bits) bytes, LSB-first.
func packBits(vals [n]uint32, bits int) []byte {
	out := make([]byte, encodingSize(bits))

	bitPos := 0
	for i := 0; i < n; i++ {
		v := vals[i]
		for b := 0; b < bits; b++ {
			if v&(1<<b) != 0 {
				out[bitPos/8] |= 1 << (bitPos % 8)
			}
			bitPos++
		}
	}
	return out
}

// unpackBits is the inverse of packBits: it reads n values of the given bit
// width back out of buf.
func unpackBits(buf []byte, bits int) [n]uint32 {
	var out [n]uint32

	bitPos := 0
	for i := 0; i < n; i++ {
		var v uint32
		for b := 0; b < bits; b++ {
			byteVal := buf[bitPos/8]
			if byteVal&(1<<(bitPos%8)) != 0 {
				v |= 1 << b
			}
			bitPos++
		}
		out[i] = v
	}
	return out
}

// packT1 encodes a polynomial's coefficients (each in [0, 2^10)) as produced
// by power2Round's high half.
func packT1(p *poly) []byte {
	var vals [n]uint32
	for i, c := range p {
		vals[i] = c
	}
	return packBits(vals, 10)
}

func unpackT1(buf []byte) *poly {
	vals := unpackBits(buf, 10)
	var out poly
	for i, v := range vals {
		out[i] = v
	}
	return &out
}

// packT0 encodes a polynomial whose coefficients are centered in
// (-2^(d-1), 2^(d-1)], by shifting each into the unsigned range before
// packing at d bits.
func packT0(p *poly) []byte {
	const half = 1 << (d - 1)
	var vals [n]uint32
	for i, c := range p {
		vals[i] = uint32(half - centered(c))
	}
	return packBits(vals, d)
}

func unpackT0(buf []byte) *poly {
	const half = 1 << (d - 1)
	vals := unpackBits(buf, d)
	var out poly
	for i, v := range vals {
		out[i] = reduce32(uint32(int64(half) - int64(v) + q))
	}
	return &out
}

// packEta encodes a secret polynomial whose centered coefficients lie in
// [-eta, eta], shifting into the unsigned range [0, 2*eta] before packing.
func packEta(p *poly, eta, bits int) []byte {
	var vals [n]uint32
	for i, c := range p {
		vals[i] = uint32(eta - int(centered(c)))
	}
	return packBits(vals, bits)
}

func unpackEta(buf []byte, eta, bits int) *poly {
	vals := unpackBits(buf, bits)
	var out poly
	for i, v := range vals {
		out[i] = reduce32(uint32(int64(eta) - int64(v) + q))
	}
	return &out
}

// packZ encodes a mask/response polynomial whose centered coefficients lie
// in [-(gamma1-1), gamma1], shifting into the unsigned range before packing.
func packZ(p *poly, gamma1, bits int) []byte {
	var vals [n]uint32
	for i, c := range p {
		vals[i] = uint32(gamma1 - int(centered(c)))
	}
	return packBits(vals, bits)
}

func unpackZ(buf []byte, gamma1, bits int) *poly {
	vals := unpackBits(buf, bits)
	var out poly
	for i, v := range vals {
		out[i] = reduce32(uint32(int64(gamma1) - int64(v) + q))
	}
	return &out
}

// packW1 encodes the high bits of w for inclusion in the signature's
// challenge hash.
func packW1(p *poly, bits int) []byte {
	var vals [n]uint32
	for i, c := range p {
		vals[i] = c
	}
	return packBits(vals, bits)
}

// encodeHint serializes a slice of K 0/1-coefficient "hint polynomials" into
// the omega+k byte layout FIPS 204 uses: the first omega bytes hold, in
// order, the coefficient indices with a set bit (grouped per polynomial),
// and the trailing k bytes hold the running total of set bits after each
// polynomial, following original_source's encode_hint_bits.
func encodeHint(h []poly, omega int) []byte {
	k := len(h)
	out := make([]byte, omega+k)

	idx := 0
	for i, p := range h {
		for j, c := range p {
			if c != 0 {
				out[idx] = byte(j)
				idx++
			}
		}
		out[omega+i] = byte(idx)
	}
	return out
}

// decodeHint is the inverse of encodeHint, validating the structural
// invariants original_source's decode_hint_bits enforces: indices within a
// polynomial's segment must be strictly increasing, the running totals must
// be non-decreasing and never exceed omega, and every byte past the last
// used index must be zero. Returns nil and ok=false on any violation.
func decodeHint(buf []byte, k, omega int) ([]poly, bool) {
	if len(buf) != omega+k {
		return nil, false
	}

	h := make([]poly, k)
	prevIdx := 0
	for i := 0; i < k; i++ {
		total := int(buf[omega+i])
		if total < prevIdx || total > omega {
			return nil, false
		}

		lastJ := -1
		for pos := prevIdx; pos < total; pos++ {
			j := int(buf[pos])
			if j <= lastJ {
				return nil, false
			}
			lastJ = j
			h[i][j] = 1
		}
		prevIdx = total
	}

	for pos := prevIdx; pos < omega; pos++ {
		if buf[pos] != 0 {
			return nil, false
		}
	}

	return h, true
}
