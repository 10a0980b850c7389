package crypto

import (
	"golang.org/x/crypto/argon2"
)

// Argon2Parameters represents the parameters for Argon2id key derivation,
// used by the ambient encrypted-keystore layer (wallet.EncryptedFile).
type Argon2Parameters struct {
	Memory      uint32 // Memory in KB
	Iterations  uint32 // Number of iterations
	Parallelism uint8  // Degree of parallelism
	SaltLength  uint32 // Length of salt in bytes
	KeyLength   uint32 // Length of derived key in bytes
}

// DefaultArgon2Parameters returns the default keystore-encryption
// parameters: 64 MB memory, 1 iteration, 4-way parallelism, 32-byte key.
func DefaultArgon2Parameters() Argon2Parameters {
	return Argon2Parameters{
		Memory:      64 * 1024,
		Iterations:  1,
		Parallelism: 4,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// DeriveKey derives a symmetric key from a password using Argon2id.
func DeriveKey(password []byte, salt []byte, params Argon2Parameters) []byte {
	return argon2.IDKey(
		password,
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)
}
