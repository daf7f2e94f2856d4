package mldsa

import (
	"bytes"
	"testing"
)

func allZeroSeed() []byte {
	return make([]byte, SeedSize)
}

func TestKeygenSignVerifyRoundTrip(t *testing.T) {
	for _, p := range []*Params{MLDSA44, MLDSA65, MLDSA87} {
		t.Run(p.Name, func(t *testing.T) {
			pub, priv, err := GenerateKey(p, allZeroSeed())
			if err != nil {
				t.Fatalf("GenerateKey: %v", err)
			}

			msg := []byte("abc")
			sig, err := priv.Sign(nil, msg, nil)
			if err != nil {
				t.Fatalf("Sign: %v", err)
			}
			if len(sig) != p.SignatureSize {
				t.Fatalf("signature length = %d, want %d", len(sig), p.SignatureSize)
			}

			if !pub.Verify(sig, msg, nil) {
				t.Fatalf("Verify rejected a genuine signature")
			}
		})
	}
}

func TestSignDeterministic(t *testing.T) {
	_, priv, err := GenerateKey(MLDSA65, allZeroSeed())
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	msg := []byte("deterministic message")
	sig1, err := priv.Sign(nil, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig2, err := priv.Sign(nil, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !bytes.Equal(sig1, sig2) {
		t.Fatalf("deterministic signing (nil rand) produced different signatures")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	pub, priv, err := GenerateKey(MLDSA65, allZeroSeed())
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	msg := []byte("original message")
	sig, err := priv.Sign(nil, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if pub.Verify(sig, []byte("tampered message"), nil) {
		t.Fatalf("Verify accepted a signature over a different message")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	pub, priv, err := GenerateKey(MLDSA65, allZeroSeed())
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	msg := []byte("message")
	sig, err := priv.Sign(nil, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	corrupt := append([]byte(nil), sig...)
	corrupt[0] ^= 0xff
	if pub.Verify(corrupt, msg, nil) {
		t.Fatalf("Verify accepted a tampered signature")
	}
}

func TestContextLengthBoundary(t *testing.T) {
	_, priv, err := GenerateKey(MLDSA44, allZeroSeed())
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	ctx255 := bytes.Repeat([]byte{0x42}, 255)
	if _, err := priv.Sign(nil, []byte("m"), ctx255); err != nil {
		t.Fatalf("Sign with 255-byte context failed: %v", err)
	}

	ctx256 := bytes.Repeat([]byte{0x42}, 256)
	if _, err := priv.Sign(nil, []byte("m"), ctx256); err != ErrContextTooLong {
		t.Fatalf("Sign with 256-byte context: got err %v, want ErrContextTooLong", err)
	}
}

func TestKeyAndSignatureSerializationRoundTrip(t *testing.T) {
	pub, priv, err := GenerateKey(MLDSA44, allZeroSeed())
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	pubBytes := pub.Bytes()
	privBytes := priv.Bytes()

	pub2, err := ParsePublicKey(MLDSA44, pubBytes)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	priv2, err := ParsePrivateKey(MLDSA44, privBytes)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}

	msg := []byte("round trip")
	sig, err := priv2.Sign(nil, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !pub2.Verify(sig, msg, nil) {
		t.Fatalf("Verify failed on reparsed keys")
	}
	if !bytes.Equal(pub2.Bytes(), pubBytes) {
		t.Fatalf("reparsed public key does not round-trip to the same bytes")
	}
}

func TestCrossParameterSetRejection(t *testing.T) {
	_, priv44, err := GenerateKey(MLDSA44, allZeroSeed())
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	msg := []byte("m")
	sig, err := priv44.Sign(nil, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	// An MLDSA65 public key's SignatureSize differs from MLDSA44's, so
	// Verify's length check rejects the foreign signature cleanly.
	pub65, _, err := GenerateKey(MLDSA65, allZeroSeed())
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if pub65.Verify(sig, msg, nil) {
		t.Fatalf("MLDSA65 public key verified an MLDSA44 signature")
	}
}
