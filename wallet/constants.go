package wallet

// Keystore file metadata keys and defaults for the ambient keystore layer.
const (
	// BaseAddressKey is the metadata key under which a keystore file
	// records its account-0 address, for inspection without decryption.
	BaseAddressKey = "baseAddress"
	// WalletTypeKey is the metadata key recording which wallet format
	// produced a keystore file.
	WalletTypeKey = "walletType"
	// KeyStoreWalletType is the WalletTypeKey value this package writes.
	KeyStoreWalletType = "arc52-hd-keystore"
	// DefaultMaxIndex bounds FindAddress's linear search when the caller
	// does not specify one.
	DefaultMaxIndex = 1000
)
