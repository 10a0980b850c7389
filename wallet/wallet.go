package wallet

import "runtime"

// zeroBytes securely zeros a byte slice in a way that cannot be optimized
// away by the compiler. The runtime.KeepAlive call keeps the slice
// reachable until after the zeroing completes, preventing the compiler
// from treating the writes as dead stores.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Wallet holds a BIP-39 seed for its lifetime and is immutable thereafter
// (spec §3's lifecycle). Every public operation recomputes the root
// extended key from the seed, walks the requested BIP-44 path, and
// delegates to the signer or ECDH composition; the object carries no
// cache beyond the seed.
type Wallet struct {
	seed []byte
}

// New constructs a Wallet from a 64-byte BIP-39 seed. The Wallet keeps its
// own copy of seed for its lifetime (zeroed by Destroy); the caller's slice
// is not retained.
func New(seed []byte) *Wallet {
	owned := make([]byte, len(seed))
	copy(owned, seed)
	return &Wallet{seed: owned}
}

// NewFromMnemonic constructs a Wallet from a BIP-39 mnemonic phrase and
// optional passphrase.
func NewFromMnemonic(mnemonic, passphrase string) *Wallet {
	return New(MnemonicToSeed(mnemonic, passphrase))
}

func (w *Wallet) root() (*extendedKey, error) {
	return fromSeed(w.seed)
}

func (w *Wallet) path(ctx KeyContext, account, change, index uint32) Bip44Path {
	return newBip44Path(ctx, account, change, index)
}

// KeyGen derives the public key at the given BIP-44 coordinates.
func (w *Wallet) KeyGen(ctx KeyContext, account, change, index uint32, profile DerivationProfile) ([]byte, error) {
	root, err := w.root()
	if err != nil {
		return nil, err
	}
	return deriveKey(root, w.path(ctx, account, change, index), false, profile)
}

// DeriveKey derives the extended key at path, returning either the
// 96-byte private extended key or the 32-byte public key depending on
// isPrivate (spec §4.6).
func (w *Wallet) DeriveKey(path Bip44Path, isPrivate bool, profile DerivationProfile) ([]byte, error) {
	root, err := w.root()
	if err != nil {
		return nil, err
	}
	return deriveKey(root, path, isPrivate, profile)
}

// DeriveChildNodePublic advances an extended public key by one
// non-hardened BIP-44 level using only public material (spec §4.5).
func DeriveChildNodePublic(extPub []byte, index uint32, profile DerivationProfile) ([]byte, error) {
	if len(extPub) != 64 {
		return nil, ErrInvalidSeed
	}
	parent := &extendedPublicKey{}
	copy(parent.a[:], extPub[:32])
	copy(parent.c[:], extPub[32:])

	child, err := deriveChildNodePublic(parent, index, profile)
	if err != nil {
		return nil, err
	}
	return child.bytes(), nil
}

// SignData signs data under the domain guard, per spec §4.7/§4.9. Fails
// with ErrDataValidation if the guard rejects data.
func (w *Wallet) SignData(ctx KeyContext, account, change, index uint32, profile DerivationProfile, data []byte, metadata SignMetadata) ([]byte, error) {
	root, err := w.root()
	if err != nil {
		return nil, err
	}
	return signData(root, w.path(ctx, account, change, index), profile, data, metadata)
}

// SignAlgoTransaction signs an already-prefixed transaction payload
// without running the domain guard (spec §4.7's intentional escape hatch).
func (w *Wallet) SignAlgoTransaction(ctx KeyContext, account, change, index uint32, profile DerivationProfile, prefixedTxBytes []byte) ([]byte, error) {
	root, err := w.root()
	if err != nil {
		return nil, err
	}
	return signAlgoTransaction(root, w.path(ctx, account, change, index), profile, prefixedTxBytes)
}

// ECDH performs X25519 Diffie-Hellman between the key derived at the given
// coordinates and peerPublicKey, binding the shared point to both parties'
// Montgomery keys in caller-chosen order (spec §4.10).
func (w *Wallet) ECDH(ctx KeyContext, account, change, index uint32, profile DerivationProfile, peerPublicKey []byte, meFirst bool) ([]byte, error) {
	root, err := w.root()
	if err != nil {
		return nil, err
	}
	return ecdh(root, w.path(ctx, account, change, index), profile, peerPublicKey, meFirst)
}

// Destroy zeros the held seed. The Wallet must not be used afterward.
func (w *Wallet) Destroy() {
	if w.seed != nil {
		zeroBytes(w.seed)
		w.seed = nil
	}
}
