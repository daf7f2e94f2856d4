package mldsa

import "testing"

func TestGlobalRegistryHasAllThreeLevels(t *testing.T) {
	r := GlobalRegistry()
	for _, id := range []AlgorithmID{AlgMLDSA44, AlgMLDSA65, AlgMLDSA87} {
		if !r.IsRegistered(id) {
			t.Fatalf("algorithm %d not registered", id)
		}
	}
	if r.Size() != 3 {
		t.Fatalf("registry size = %d, want 3", r.Size())
	}
}

func TestRegistryVerifySignatureDispatch(t *testing.T) {
	pub, priv, err := GenerateKey(MLDSA44, allZeroSeed())
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	msg := []byte("registry dispatch")
	sig, err := priv.Sign(nil, msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	r := GlobalRegistry()
	ok, err := r.VerifySignature(AlgMLDSA44, pub.Bytes(), msg, sig)
	if err != nil {
		t.Fatalf("VerifySignature: %v", err)
	}
	if !ok {
		t.Fatalf("registry rejected a genuine ML-DSA-44 signature")
	}
}

func TestRegistryRejectsWrongSizes(t *testing.T) {
	r := GlobalRegistry()
	_, err := r.VerifySignature(AlgMLDSA44, make([]byte, 10), []byte("m"), make([]byte, 10))
	if err == nil {
		t.Fatalf("expected a size-mismatch error")
	}
}

func TestRegistryUnknownAlgorithm(t *testing.T) {
	r := GlobalRegistry()
	if _, err := r.GetAlgorithm(AlgorithmID(99)); err == nil {
		t.Fatalf("expected ErrAlgUnknown for an unregistered id")
	}
	if _, err := r.RecoverPublicKey(AlgMLDSA65, nil, nil); err != ErrAlgRecoverFail {
		t.Fatalf("RecoverPublicKey = %v, want ErrAlgRecoverFail", err)
	}
}
