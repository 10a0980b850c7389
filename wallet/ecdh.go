package wallet

import "github.com/arc52/xhd-wallet-go/crypto"

// ecdh implements §4.10: derive the private extended key for path, convert
// both this wallet's derived public point and the peer's public point from
// Ed25519 to Curve25519, run X25519 with kL as scalar, and bind the shared
// point to both parties' Montgomery keys in caller-chosen order.
//
// The ordering flag is part of the wire contract: both parties must agree
// on it, or they derive different secrets (§8 property 6).
func ecdh(root *extendedKey, path Bip44Path, profile DerivationProfile, peerPublic []byte, meFirst bool) ([]byte, error) {
	extended, err := deriveKey(root, path, true, profile)
	if err != nil {
		return nil, err
	}

	var kL [32]byte
	copy(kL[:], extended[:32])

	selfPublic, err := crypto.PublicFromScalar(kL[:])
	if err != nil {
		return nil, err
	}

	selfMontgomery, err := crypto.MontgomeryU(selfPublic)
	if err != nil {
		return nil, err
	}
	peerMontgomery, err := crypto.MontgomeryU(peerPublic)
	if err != nil {
		return nil, err
	}

	return crypto.DiffieHellman(kL[:], selfMontgomery, peerMontgomery, meFirst)
}
