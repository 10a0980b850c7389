package crypto

import (
	stded25519 "crypto/ed25519"
	"crypto/sha512"
)

// H512 computes SHA-512 over the concatenation of its arguments.
func H512(parts ...[]byte) []byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// SignWithScalar implements the non-standard EdDSA-style sign pipeline of
// spec §4.7 steps 3-8. Unlike RFC 8032 Ed25519, the secret scalar `a` is
// already in clamped form (no per-sign SHA-512 of a seed) and the
// nonce-seed is an externally supplied 32-byte value (the derived
// extended key's right half, kR) rather than the lower half of H(seed).
//
//	A = a·G
//	r = H512(nonceSeed ‖ M) mod L
//	R = r·G
//	h = H512(R ‖ A ‖ M) mod L
//	S = (r + h·a) mod L
//	signature = R ‖ S
func SignWithScalar(aClamped, nonceSeed, message []byte) ([]byte, error) {
	aCanonical := ReduceWide(aClamped)

	A, err := BasePointMultiply(aCanonical)
	if err != nil {
		return nil, err
	}

	r := ReduceWide(H512(nonceSeed, message))

	R, err := BasePointMultiply(r)
	if err != nil {
		return nil, err
	}

	h := ReduceWide(H512(R, A, message))

	S, err := ScalarMultiplyAdd(h, aCanonical, r)
	if err != nil {
		return nil, err
	}

	sig := make([]byte, 64)
	copy(sig[:32], R)
	copy(sig[32:], S)
	return sig, nil
}

// VerifyDetached performs standard Ed25519 detached verification of sig
// (64 bytes) over message against publicKey (32 bytes), per spec §4.8.
func VerifyDetached(sig, message, publicKey []byte) bool {
	if len(sig) != stded25519.SignatureSize || len(publicKey) != stded25519.PublicKeySize {
		return false
	}
	return stded25519.Verify(stded25519.PublicKey(publicKey), message, sig)
}
