package wallet

// KeyPair is a thin convenience wrapper binding a Wallet to a single
// BIP-44 account index under the Address context, for callers that want
// an address/sign handle without repeating the full coordinates on every
// call.
type KeyPair struct {
	wallet     *Wallet
	account    uint32
	publicKey  []byte
	addressStr string
}

// NewKeyPairFromSeed derives the account-0 KeyPair directly from a 64-byte
// seed.
func NewKeyPairFromSeed(seed []byte) (*KeyPair, error) {
	w := New(seed)
	return w.KeyPair(0)
}

// KeyPair derives the KeyPair at the given account index under the
// Address context, change 0, index 0.
func (w *Wallet) KeyPair(account uint32) (*KeyPair, error) {
	pub, err := w.KeyGen(Address, account, 0, 0, Khovratovich)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		wallet:     w,
		account:    account,
		publicKey:  pub,
		addressStr: Address(pub),
	}, nil
}

// PublicKey returns the 32-byte Ed25519 public key.
func (kp *KeyPair) PublicKey() []byte {
	return kp.publicKey
}

// GetAddress returns the base32 host-chain address for this keypair.
func (kp *KeyPair) GetAddress() (string, error) {
	return kp.addressStr, nil
}

// Sign signs an already-prefixed payload via the account's derived key,
// using the SignAlgoTransaction entry point (no domain guard — callers
// are expected to have applied their own framing, matching the teacher's
// unguarded KeyPair.Sign).
func (kp *KeyPair) Sign(message []byte) ([]byte, error) {
	return kp.wallet.SignAlgoTransaction(Address, kp.account, 0, 0, Khovratovich, message)
}

// Verify checks a signature produced by Sign against this keypair's
// public key.
func (kp *KeyPair) Verify(signature, message []byte) (bool, error) {
	return Verify(signature, message, kp.publicKey), nil
}
