package wallet

import (
	"encoding/base32"
	"strings"

	"github.com/arc52/xhd-wallet-go/crypto"
)

// Address renders a 32-byte public key as the host-chain base32 address of
// §6: base32(pk ‖ SHA-512/256(pk)[0..4]) with '=' padding stripped,
// producing a 58-character string.
func Address(publicKey []byte) string {
	checksum := crypto.SHA512_256(publicKey)
	payload := make([]byte, 0, 36)
	payload = append(payload, publicKey...)
	payload = append(payload, checksum[:4]...)

	encoded := base32.StdEncoding.EncodeToString(payload)
	return strings.TrimRight(encoded, "=")
}
