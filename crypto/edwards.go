package crypto

import (
	"filippo.io/edwards25519"
)

// BasePointMultiply computes scalar·G for a 32-byte canonical (already
// reduced mod L) scalar. Use ReduceWide to build a canonical scalar
// from a raw, possibly non-canonical 256-bit value such as a derived kL —
// per spec §4.2/§4.6, base-point multiplication never re-applies the
// RFC 8032 clamp operation; it only needs the value reduced to its
// canonical residue mod L.
func BasePointMultiply(scalar []byte) ([]byte, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(scalar)
	if err != nil {
		return nil, ErrCryptoBackend
	}
	p := edwards25519.NewGeneratorPoint().ScalarBaseMult(s)
	return p.Bytes(), nil
}

// PublicFromScalar computes A = kL·G for a raw (possibly non-canonical)
// little-endian scalar kL, combining the wide mod-L reduction with the
// base-point multiplication. This is the "no-clamp base multiplication" of
// §4.2/§4.6/§4.7: kL's bit pattern is never rewritten, only reduced mod L
// as every scalar multiplication requires.
func PublicFromScalar(kL []byte) ([]byte, error) {
	return BasePointMultiply(ReduceWide(kL))
}

// ScalarMultiplyBase computes t·G for a canonical scalar t, used by public
// soft derivation (§4.5) to compute (8·t)·G.
func ScalarMultiplyBase(t []byte) ([]byte, error) {
	return BasePointMultiply(t)
}

// PointAdd decodes two compressed Ed25519 points and returns their
// (compressed) sum, used by public soft derivation: A_new = A + (8·t)·G.
func PointAdd(a, b []byte) ([]byte, error) {
	pa, err := edwards25519.NewIdentityPoint().SetBytes(a)
	if err != nil {
		return nil, ErrCryptoBackend
	}
	pb, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, ErrCryptoBackend
	}
	sum := edwards25519.NewIdentityPoint().Add(pa, pb)
	return sum.Bytes(), nil
}

// MontgomeryU converts a compressed Ed25519 point to its Curve25519
// u-coordinate via the standard birational map, the Ed25519→Curve25519
// conversion of §4.10 step 1.
func MontgomeryU(a []byte) ([]byte, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(a)
	if err != nil {
		return nil, ErrCryptoBackend
	}
	return p.BytesMontgomery(), nil
}
