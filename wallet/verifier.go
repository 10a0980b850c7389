package wallet

import "github.com/arc52/xhd-wallet-go/crypto"

// Verify implements §4.8: standard Ed25519 detached verification of sig
// over message against publicKey. No extensions beyond RFC 8032 verify.
func Verify(sig, message, publicKey []byte) bool {
	return crypto.VerifyDetached(sig, message, publicKey)
}
