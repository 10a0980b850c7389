// Package wallet implements an ARC-0052 extended hierarchical deterministic
// (HD) wallet core for Ed25519/Curve25519: BIP32-Ed25519 derivation over a
// non-linear keyspace, a non-standard EdDSA signing pipeline guarded by a
// domain-separation check, standard Ed25519 verification, and an X25519
// Diffie-Hellman composition with hash binding of both parties' keys.
//
// The wallet object is constructed from a 64-byte BIP-39 seed and is
// immutable thereafter; every public operation recomputes the root
// extended key from the held seed, walks a BIP-44 path, and invokes the
// signer or the ECDH composition. There is no cache beyond the seed
// itself.
//
// # Basic Usage
//
//	w := wallet.New(seed)
//	defer w.Destroy()
//
//	pk, err := w.KeyGen(wallet.Address, 0, 0, 0, wallet.Khovratovich)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := w.SignAlgoTransaction(wallet.Address, 0, 0, 0, wallet.Khovratovich, prefixedTx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok := wallet.Verify(sig, prefixedTx, pk)
//
// # Derivation profiles
//
// Two derivation-safety profiles trade off randomisation width against
// maximum safe derivation depth: Peikert truncates to 9 bytes (safe to
// depth 8), Khovratovich to 28 bytes (safe to depth 2^26). Both are
// exported as wallet.Peikert and wallet.Khovratovich.
//
// # Domain-restricted signing
//
// SignData runs a domain guard before signing: the payload (and, once
// decoded per its encoding, the decoded payload) is rejected if it begins
// with any of a reserved set of blockchain object tags, and must validate
// against a caller-supplied JSON schema. SignAlgoTransaction is the
// intentional escape hatch for already-tagged transaction bytes the host
// chain itself prefixed; it does not run the domain guard.
//
// # Ambient key management
//
// This package also carries a BIP-39 mnemonic layer, an Argon2id/AES-GCM
// encrypted keystore file format, and a keystore manager/directory layer —
// conveniences around the ARC-0052 core, not part of it.
package wallet
