package crypto

import (
	"filippo.io/edwards25519"
)

// ClampScalar applies the standard Ed25519/X25519 clamp to a 32-byte
// little-endian scalar in place: bits 0-2 of byte 0 are cleared, bit 7 of
// byte 31 is cleared, and bit 6 of byte 31 is set.
func ClampScalar(kL []byte) {
	kL[0] &= 0b11111000
	kL[31] &= 0b01111111
	kL[31] |= 0b01000000
}

// ThirdHighestBitSet reports whether bit 5 of the last byte of a 64-byte
// SHA-512 digest's lower half is set — the condition §4.1 iterates on.
func ThirdHighestBitSet(kL []byte) bool {
	return kL[31]&0b00100000 != 0
}

// ReduceWide reduces an arbitrary-length little-endian unsigned value mod
// the Ed25519 group order L, returning a 32-byte canonical scalar encoding.
// It is used both for the standard 64-byte hash reductions of the signing
// pipeline (§4.7) and for reducing 8·t before a public-key scalar
// multiplication (§4.5), where t may be narrower than 64 bytes.
func ReduceWide(le []byte) []byte {
	wide := make([]byte, 64)
	copy(wide, le) // zero-extend; little-endian zero-padding preserves value
	s, err := edwards25519.NewScalar().SetUniformBytes(wide)
	if err != nil {
		// SetUniformBytes only fails on wrong input length; wide is always 64.
		panic("crypto: ReduceWide: " + err.Error())
	}
	return s.Bytes()
}

// ScalarMultiplyAdd computes (h*a + r) mod L, the S = r + h·scalar step of
// §4.7. All three inputs must already be canonical (reduced mod L) scalar
// encodings — callers holding a raw, possibly non-canonical value such as a
// derived kL must reduce it first via ReduceWide. No clamping is applied
// here: clamping is only ever a property of the root kL produced by
// fromSeed, never re-derived at multiplication time.
func ScalarMultiplyAdd(h, a, r []byte) ([]byte, error) {
	hs, err := edwards25519.NewScalar().SetCanonicalBytes(h)
	if err != nil {
		return nil, ErrCryptoBackend
	}
	as, err := edwards25519.NewScalar().SetCanonicalBytes(a)
	if err != nil {
		return nil, ErrCryptoBackend
	}
	rs, err := edwards25519.NewScalar().SetCanonicalBytes(r)
	if err != nil {
		return nil, ErrCryptoBackend
	}
	out := edwards25519.NewScalar().MultiplyAdd(hs, as, rs)
	return out.Bytes(), nil
}

// ShiftLeft3 returns t*8 as a little-endian byte slice one byte longer than
// t, supporting the 8·t term of §4.4/§4.5.
func ShiftLeft3(t []byte) []byte {
	out := make([]byte, len(t)+1)
	var carry byte
	for i, b := range t {
		out[i] = (b << 3) | carry
		carry = b >> 5
	}
	out[len(t)] = carry
	return out
}

// AddWithOverflow adds two little-endian unsigned values of possibly
// different lengths and returns the low 32 bytes of the sum plus whether
// the true sum required more than 32 bytes to represent. This is the
// "kL + 8·t" check of §4.4: any carry or significant bit past byte 31 is an
// overflow that must fail loudly, never silently wrap.
func AddWithOverflow(a, b []byte) (sum [32]byte, overflow bool) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n < 32 {
		n = 32
	}

	full := make([]byte, n)
	var carry uint16
	for i := 0; i < n; i++ {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		total := uint16(av) + uint16(bv) + carry
		full[i] = byte(total)
		carry = total >> 8
	}

	copy(sum[:], full[:32])
	if carry != 0 {
		overflow = true
	}
	for i := 32; i < n; i++ {
		if full[i] != 0 {
			overflow = true
		}
	}
	return sum, overflow
}

// AddTruncating adds two 32-byte little-endian unsigned values mod 2^256,
// discarding any carry out of byte 31. This implements "kR + zR", which per
// spec §9's resolved Open Question keeps the least-significant 32 bytes
// (truncates the high bytes) rather than propagating a carry.
func AddTruncating(a, b [32]byte) [32]byte {
	var out [32]byte
	var carry uint16
	for i := 0; i < 32; i++ {
		total := uint16(a[i]) + uint16(b[i]) + carry
		out[i] = byte(total)
		carry = total >> 8
	}
	return out
}
