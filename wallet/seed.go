package wallet

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/arc52/xhd-wallet-go/crypto"
)

// maxSeedIterations bounds the bit-5 rejection loop of fromSeed (§4.1). Each
// round clears bit 5 with probability ~1/2, so the loop terminates within a
// few rounds with overwhelming probability; this cap exists only to turn a
// theoretically possible infinite loop into a bounded failure.
const maxSeedIterations = 256

// extendedKey is the 96-byte kL ‖ kR ‖ c of spec §3.
type extendedKey struct {
	kL [32]byte
	kR [32]byte
	c  [32]byte
}

// bytes returns the 96-byte wire form kL ‖ kR ‖ c.
func (k *extendedKey) bytes() []byte {
	out := make([]byte, 96)
	copy(out[:32], k.kL[:])
	copy(out[32:64], k.kR[:])
	copy(out[64:], k.c[:])
	return out
}

// extendedPublicKey is the 64-byte A ‖ c of spec §3.
type extendedPublicKey struct {
	a [32]byte
	c [32]byte
}

func (k *extendedPublicKey) bytes() []byte {
	out := make([]byte, 64)
	copy(out[:32], k.a[:])
	copy(out[32:], k.c[:])
	return out
}

// fromSeed implements spec §4.1: derive the root extended key from a
// 64-byte BIP-39 seed.
//
//	k ← SHA-512(seed); split into kL ‖ kR
//	while bit 5 of kL[31] is set: k ← HMAC-SHA512(key=kL, msg=kR); re-split
//	clamp kL
//	c ← SHA-256(0x01 ‖ seed)
func fromSeed(seed []byte) (*extendedKey, error) {
	if len(seed) != 64 {
		return nil, ErrInvalidSeed
	}

	digest := sha512.Sum512(seed)
	kL := digest[:32]
	kR := digest[32:]

	for i := 0; crypto.ThirdHighestBitSet(kL); i++ {
		if i >= maxSeedIterations {
			return nil, fmt.Errorf("%w: exceeded %d iterations", ErrSeedRejected, maxSeedIterations)
		}
		h := hmac.New(sha512.New, kL)
		h.Write(kR)
		next := h.Sum(nil)
		kL = next[:32]
		kR = next[32:]
	}

	kLClamped := append([]byte(nil), kL...)
	crypto.ClampScalar(kLClamped)

	chainCodeInput := make([]byte, 0, 1+len(seed))
	chainCodeInput = append(chainCodeInput, 0x01)
	chainCodeInput = append(chainCodeInput, seed...)
	c := sha256.Sum256(chainCodeInput)

	out := &extendedKey{}
	copy(out.kL[:], kLClamped)
	copy(out.kR[:], kR)
	copy(out.c[:], c[:])
	return out, nil
}
