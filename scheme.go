package mldsa

import "crypto/rand"

// This file exposes the flat byte-buffer surface spec.md §6 names directly
// (Keygen/Sign/Verify over []byte), alongside the PrivateKey/PublicKey
// methods in keys.go and sign.go, following original_source's free-function
// API shape while the KarpelesLab-mldsa reference in the pack favors the
// struct-method shape -- this repo keeps both rather than choosing one.

// Keygen derives a public/private key pair for the given parameter set from
// a 32-byte seed and returns their wire encodings.
func Keygen(params *Params, seed []byte) (pub, priv []byte, err error) {
	pk, sk, err := GenerateKey(params, seed)
	if err != nil {
		return nil, nil, err
	}
	return pk.Bytes(), sk.Bytes(), nil
}

// Sign signs message under context using the private key encoded in sk,
// reading signing randomness from crypto/rand (hedged signing). Use
// SignDeterministic for a reproducible signature.
func Sign(params *Params, sk, message, context []byte) ([]byte, error) {
	priv, err := ParsePrivateKey(params, sk)
	if err != nil {
		return nil, err
	}
	return priv.Sign(rand.Reader, message, context)
}

// SignDeterministic signs message under context using the private key
// encoded in sk, with the all-zero randomness that makes ML-DSA's signing
// procedure deterministic for a given key and message.
func SignDeterministic(params *Params, sk, message, context []byte) ([]byte, error) {
	priv, err := ParsePrivateKey(params, sk)
	if err != nil {
		return nil, err
	}
	return priv.Sign(nil, message, context)
}

// Verify reports whether sig is a valid signature over message under
// context for the public key encoded in pk.
func Verify(params *Params, pk, sig, message, context []byte) bool {
	pub, err := ParsePublicKey(params, pk)
	if err != nil {
		return false
	}
	return pub.Verify(sig, message, context)
}
