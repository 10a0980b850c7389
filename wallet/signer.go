package wallet

import (
	"github.com/arc52/xhd-wallet-go/crypto"
)

// rawSign implements §4.7 steps 1-8: derive the private extended key for
// path, then sign message with the non-standard EdDSA pipeline — the
// scalar is already clamped (no per-sign re-hash of a seed) and the
// nonce-seed is kR of the derived key rather than the lower half of
// H(seed).
func rawSign(root *extendedKey, path Bip44Path, profile DerivationProfile, message []byte) ([]byte, error) {
	extended, err := deriveKey(root, path, true, profile)
	if err != nil {
		return nil, err
	}

	var kL, kR [32]byte
	copy(kL[:], extended[:32])
	copy(kR[:], extended[32:64])

	return crypto.SignWithScalar(kL[:], kR[:], message)
}

// signData implements §4.7's signData entry point: run the domain guard
// before signing, and fail with ErrDataValidation if it rejects. This is
// the only signing entry point arbitrary caller-supplied data may go
// through.
func signData(root *extendedKey, path Bip44Path, profile DerivationProfile, data []byte, metadata SignMetadata) ([]byte, error) {
	ok, err := validateData(data, metadata)
	if err != nil || !ok {
		return nil, ErrDataValidation
	}
	return rawSign(root, path, profile, data)
}

// signAlgoTransaction implements §4.7's signAlgoTransaction entry point:
// prefixedTxBytes is assumed already prefixed by the caller (the host
// chain's own transaction tag) and is signed directly, without running the
// domain guard. This is intentionally the only escape hatch for
// tag-prefixed payloads.
func signAlgoTransaction(root *extendedKey, path Bip44Path, profile DerivationProfile, prefixedTxBytes []byte) ([]byte, error) {
	return rawSign(root, path, profile, prefixedTxBytes)
}
