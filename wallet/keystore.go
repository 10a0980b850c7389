package wallet

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// KeyStore represents a hierarchical deterministic wallet: a mnemonic (or
// raw seed) together with the derived root material needed to produce
// KeyPairs on demand.
type KeyStore struct {
	Mnemonic string
	Entropy  []byte
	Seed     []byte
}

// NewKeyStoreFromMnemonic creates a KeyStore from a BIP39 mnemonic.
func NewKeyStoreFromMnemonic(mnemonic string) (*KeyStore, error) {
	if !ValidateMnemonicString(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	entropy, err := MnemonicToEntropy(mnemonic)
	if err != nil {
		return nil, err
	}

	seed := MnemonicToSeed(mnemonic, "")

	return &KeyStore{
		Mnemonic: mnemonic,
		Entropy:  entropy,
		Seed:     seed,
	}, nil
}

// NewKeyStoreFromSeed creates a KeyStore from a hex-encoded seed.
func NewKeyStoreFromSeed(seedHex string) (*KeyStore, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("invalid seed hex: %w", err)
	}

	return &KeyStore{
		Seed: seed,
	}, nil
}

// NewKeyStoreFromEntropy creates a KeyStore from entropy bytes.
func NewKeyStoreFromEntropy(entropy []byte) (*KeyStore, error) {
	if len(entropy) != 16 && len(entropy) != 32 {
		return nil, ErrInvalidEntropy
	}

	mnemonic, err := EntropyToMnemonic(entropy)
	if err != nil {
		return nil, err
	}

	return NewKeyStoreFromMnemonic(mnemonic)
}

// NewKeyStoreRandom creates a new KeyStore with random 256-bit entropy.
func NewKeyStoreRandom() (*KeyStore, error) {
	mnemonic, err := GenerateMnemonic(256)
	if err != nil {
		return nil, err
	}

	return NewKeyStoreFromMnemonic(mnemonic)
}

// GetKeyPair derives a KeyPair at the given BIP-44 account index, in the
// Address context, under the Khovratovich profile.
//
// Each account index produces a distinct address from the same seed,
// letting a single backup mnemonic hold many addresses.
func (ks *KeyStore) GetKeyPair(account int) (*KeyPair, error) {
	if ks.Seed == nil {
		return nil, fmt.Errorf("keystore seed not initialized")
	}
	if account < 0 {
		return nil, fmt.Errorf("account index must be non-negative")
	}

	w := New(ks.Seed)
	return w.KeyPair(uint32(account))
}

// DeriveAddressesByRange derives the addresses for account indices in
// [left, right).
func (ks *KeyStore) DeriveAddressesByRange(left, right int) ([]string, error) {
	if left < 0 || right < left {
		return nil, fmt.Errorf("invalid range: [%d, %d)", left, right)
	}

	addresses := make([]string, 0, right-left)

	for i := left; i < right; i++ {
		kp, err := ks.GetKeyPair(i)
		if err != nil {
			return nil, fmt.Errorf("failed to derive account %d: %w", i, err)
		}

		addr, err := kp.GetAddress()
		if err != nil {
			return nil, fmt.Errorf("failed to get address for account %d: %w", i, err)
		}

		addresses = append(addresses, addr)
	}

	return addresses, nil
}

// FindResponse is the result of a successful FindAddress search.
type FindResponse struct {
	Index   int
	KeyPair *KeyPair
}

// FindAddress searches sequentially through account indices [0, maxAccounts)
// for the one producing address, returning ErrAddressNotFound if none
// matches within the bound.
func (ks *KeyStore) FindAddress(address string, maxAccounts int) (*FindResponse, error) {
	if maxAccounts <= 0 {
		maxAccounts = DefaultMaxIndex
	}

	for i := 0; i < maxAccounts; i++ {
		kp, err := ks.GetKeyPair(i)
		if err != nil {
			return nil, err
		}

		addr, err := kp.GetAddress()
		if err != nil {
			return nil, err
		}

		if addr == address {
			return &FindResponse{
				Index:   i,
				KeyPair: kp,
			}, nil
		}
	}

	return nil, ErrAddressNotFound
}

// GetBaseAddress returns the address at account index 0.
func (ks *KeyStore) GetBaseAddress() (string, error) {
	kp, err := ks.GetKeyPair(0)
	if err != nil {
		return "", err
	}

	return kp.GetAddress()
}

// ToEncryptedFile encrypts the keystore to an EncryptedFile.
func (ks *KeyStore) ToEncryptedFile(password string, metadata map[string]interface{}) (*EncryptedFile, error) {
	data := make(map[string]interface{})

	if ks.Mnemonic != "" {
		data["mnemonic"] = ks.Mnemonic
	}

	if ks.Entropy != nil {
		data["entropy"] = hex.EncodeToString(ks.Entropy)
	}

	if ks.Seed != nil {
		data["seed"] = hex.EncodeToString(ks.Seed)
	}

	jsonData, err := serializeKeyStoreData(data)
	if err != nil {
		return nil, err
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	if _, hasBaseAddr := metadata[BaseAddressKey]; !hasBaseAddr {
		baseAddr, err := ks.GetBaseAddress()
		if err != nil {
			return nil, fmt.Errorf("failed to get base address: %w", err)
		}
		metadata[BaseAddressKey] = baseAddr
	}

	if _, hasWalletType := metadata[WalletTypeKey]; !hasWalletType {
		metadata[WalletTypeKey] = KeyStoreWalletType
	}

	return Encrypt(jsonData, password, metadata)
}

// FromEncryptedFile decrypts an EncryptedFile to a KeyStore.
func FromEncryptedFile(ef *EncryptedFile, password string) (*KeyStore, error) {
	plaintext, err := ef.Decrypt(password)
	if err != nil {
		return nil, err
	}

	data, err := deserializeKeyStoreData(plaintext)
	if err != nil {
		return nil, err
	}

	if mnemonic, ok := data["mnemonic"].(string); ok && mnemonic != "" {
		return NewKeyStoreFromMnemonic(mnemonic)
	}

	if entropyHex, ok := data["entropy"].(string); ok && entropyHex != "" {
		entropy, err := hex.DecodeString(entropyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid entropy: %w", err)
		}
		return NewKeyStoreFromEntropy(entropy)
	}

	if seedHex, ok := data["seed"].(string); ok && seedHex != "" {
		return NewKeyStoreFromSeed(seedHex)
	}

	return nil, fmt.Errorf("encrypted file does not contain valid keystore data")
}

func serializeKeyStoreData(data map[string]interface{}) ([]byte, error) {
	return json.Marshal(data)
}

func deserializeKeyStoreData(data []byte) (map[string]interface{}, error) {
	result := make(map[string]interface{})
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse keystore data: %w", err)
	}
	return result, nil
}
