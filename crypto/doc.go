// Package crypto provides the low-level Ed25519/Curve25519 primitives used
// by the wallet package: scalar and point arithmetic on the Ed25519
// sub-group (via filippo.io/edwards25519), the non-standard pre-clamped
// EdDSA sign pipeline, standard Ed25519 detached verification, Ed25519-to-
// Curve25519 point conversion, X25519 Diffie-Hellman, digest helpers, and
// the Argon2id key derivation used by the ambient encrypted-keystore layer.
//
// Every exported function here is a pure function of its arguments; none
// perform I/O or retain state.
package crypto
