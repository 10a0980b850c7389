package wallet

import (
	"github.com/tyler-smith/go-bip39"
)

// GenerateMnemonic generates a BIP-39 mnemonic with the given entropy
// strength, for use as a Wallet's seed material. strength must be 128, 160,
// 192, 224, or 256 bits (12, 15, 18, 21, or 24 words respectively).
func GenerateMnemonic(strength int) (string, error) {
	entropy, err := bip39.NewEntropy(strength)
	if err != nil {
		return "", err
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", err
	}

	return mnemonic, nil
}

// ValidateMnemonicString checks a BIP-39 mnemonic phrase's wordlist
// membership and checksum before it is handed to MnemonicToSeed.
func ValidateMnemonicString(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// MnemonicToEntropy recovers the entropy bytes a mnemonic was generated
// from, the inverse of EntropyToMnemonic. KeyStore records the entropy
// alongside the mnemonic phrase (see keystore.go).
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	return bip39.EntropyFromMnemonic(mnemonic)
}

// EntropyToMnemonic rebuilds a mnemonic phrase from raw entropy bytes, used
// when a KeyStore is reconstituted from persisted entropy.
func EntropyToMnemonic(entropy []byte) (string, error) {
	return bip39.NewMnemonic(entropy)
}

// MnemonicToSeed derives the 64-byte BIP-39 seed fromSeed consumes to build
// a wallet's root extended key (spec §4.1). passphrase may be empty.
func MnemonicToSeed(mnemonic string, passphrase string) []byte {
	return bip39.NewSeed(mnemonic, passphrase)
}
