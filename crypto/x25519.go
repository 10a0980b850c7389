package crypto

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/curve25519"
)

// X25519 performs an X25519 scalar multiplication of a 32-byte scalar
// against a 32-byte Montgomery u-coordinate.
func X25519(scalar, u []byte) ([]byte, error) {
	out, err := curve25519.X25519(scalar, u)
	if err != nil {
		return nil, ErrCryptoBackend
	}
	return out, nil
}

// DiffieHellman implements the ECDH composition of spec §4.10 steps 2-4:
// an X25519 scalar multiplication followed by a BLAKE2b-256 hash that
// binds the shared point together with both parties' Montgomery public
// keys, in the caller-chosen canonical order (meFirst).
func DiffieHellman(scalar, selfMontgomery, peerMontgomery []byte, meFirst bool) ([]byte, error) {
	shared, err := X25519(scalar, peerMontgomery)
	if err != nil {
		return nil, err
	}

	concat := make([]byte, 0, 96)
	concat = append(concat, shared...)
	if meFirst {
		concat = append(concat, selfMontgomery...)
		concat = append(concat, peerMontgomery...)
	} else {
		concat = append(concat, peerMontgomery...)
		concat = append(concat, selfMontgomery...)
	}

	sum := blake2b.Sum256(concat)
	return sum[:], nil
}
