package crypto

import (
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// Digest computes the SHA3-256 hash of data. The digestSize parameter
// allows customization of output length (default: 32 bytes, via SHAKE256
// for anything other than the default).
func Digest(data []byte, digestSize int) []byte {
	if digestSize == 0 || digestSize == 32 {
		hash := sha3.Sum256(data)
		return hash[:]
	}

	hasher := sha3.NewShake256()
	// #nosec G104 -- shake.Write never returns an error
	hasher.Write(data) //nolint:errcheck
	result := make([]byte, digestSize)
	// #nosec G104 -- shake.Read always succeeds with sufficient buffer
	hasher.Read(result) //nolint:errcheck
	return result
}

// DigestDefault computes SHA3-256 hash with the default 32-byte output.
func DigestDefault(data []byte) []byte {
	return Digest(data, 32)
}

// SHA512_256 computes the SHA-512/256 hash of data, used by the address
// helper's checksum (spec §6).
func SHA512_256(data []byte) []byte {
	sum := sha512.Sum512_256(data)
	return sum[:]
}
