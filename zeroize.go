package mldsa

import "runtime"

// zeroize overwrites buf with zeros and pins it past the overwrite with
// runtime.KeepAlive, so the compiler cannot prove the write dead and elide
// it. Applied to signing randomness and the intermediate secret-derived
// buffers (rho', rho'', mu, K) once they are no longer needed, per the
// hygiene FIPS 204 expects of an implementation holding key material.
func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
