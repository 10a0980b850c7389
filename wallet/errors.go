package wallet

import (
	"errors"

	"github.com/arc52/xhd-wallet-go/crypto"
)

// Closed error taxonomy per spec §7. Callers should match against these
// sentinels with errors.Is; nothing in this package is retried internally.
var (
	// ErrDerivationOverflow is returned when 8·zL + kL would not fit in 32
	// bytes (§4.4). It is fatal for the requested path: the caller must not
	// retry with the same path and profile.
	ErrDerivationOverflow = errors.New("wallet: derivation overflow: 8*zL + kL exceeds 256 bits")

	// ErrInvalidIndex is returned when deriveChildNodePublic is called with
	// a hardened index (§4.5).
	ErrInvalidIndex = errors.New("wallet: public derivation requires a non-hardened index")

	// ErrDataValidation is returned when the domain guard rejects a
	// signData payload: a reserved-prefix match, a decode failure, or a
	// JSON-schema violation (§4.9).
	ErrDataValidation = errors.New("wallet: data failed domain guard validation")

	// ErrSeedRejected is returned when the iterated HMAC of fromSeed (§4.1)
	// does not terminate within the implementation's iteration cap.
	ErrSeedRejected = errors.New("wallet: seed rejected: root derivation did not terminate")

	// ErrInvalidSeed is returned when a seed of the wrong length is supplied.
	// DeriveChildNodePublic also returns it for an extended public key that
	// is not 64 bytes.
	ErrInvalidSeed = errors.New("wallet: seed must be 64 bytes")

	// ErrCryptoBackend re-exports crypto.ErrCryptoBackend: an underlying
	// primitive rejected its input.
	ErrCryptoBackend = crypto.ErrCryptoBackend
)

// Ambient-layer errors: the mnemonic/keystore convenience layer built
// around the core, following the teacher's sentinel-error style. Not part
// of the closed §7 taxonomy above.
var (
	ErrIncorrectPassword = errors.New("wallet: incorrect password")
	ErrInvalidMnemonic   = errors.New("wallet: invalid mnemonic")
	ErrInvalidEntropy    = errors.New("wallet: invalid entropy")
	ErrKeystoreNotFound  = errors.New("wallet: keystore not found")
	ErrAddressNotFound   = errors.New("wallet: address not found in wallet")
)
