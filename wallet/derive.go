package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/arc52/xhd-wallet-go/crypto"
)

// deriveNonHardened implements §4.2: the HMAC-SHA512 pair driving a
// non-hardened child derivation, keyed on the parent's public point rather
// than private material. index must be < 2^31.
func deriveNonHardened(kL [32]byte, cc [32]byte, index uint32) (z [64]byte, ccNew [32]byte, err error) {
	a, err := crypto.PublicFromScalar(kL[:])
	if err != nil {
		return z, ccNew, err
	}

	var indexLE [4]byte
	binary.LittleEndian.PutUint32(indexLE[:], index)

	zData := make([]byte, 0, 1+32+4)
	zData = append(zData, 0x02)
	zData = append(zData, a...)
	zData = append(zData, indexLE[:]...)
	zMAC := hmac.New(sha512.New, cc[:])
	zMAC.Write(zData)
	copy(z[:], zMAC.Sum(nil))

	ccData := make([]byte, 0, 1+32+4)
	ccData = append(ccData, 0x03)
	ccData = append(ccData, a...)
	ccData = append(ccData, indexLE[:]...)
	ccMAC := hmac.New(sha512.New, cc[:])
	ccMAC.Write(ccData)
	ccSum := ccMAC.Sum(nil)
	copy(ccNew[:], ccSum[32:])

	return z, ccNew, nil
}

// deriveNonHardenedFromPublic is deriveNonHardened's public-key-only form,
// used by deriveChildNodePublic (§4.5) where no private kL is available —
// the parent's public point A is supplied directly instead of recomputed.
func deriveNonHardenedFromPublic(a [32]byte, cc [32]byte, index uint32) (z [64]byte, ccNew [32]byte) {
	var indexLE [4]byte
	binary.LittleEndian.PutUint32(indexLE[:], index)

	zData := make([]byte, 0, 1+32+4)
	zData = append(zData, 0x02)
	zData = append(zData, a[:]...)
	zData = append(zData, indexLE[:]...)
	zMAC := hmac.New(sha512.New, cc[:])
	zMAC.Write(zData)
	copy(z[:], zMAC.Sum(nil))

	ccData := make([]byte, 0, 1+32+4)
	ccData = append(ccData, 0x03)
	ccData = append(ccData, a[:]...)
	ccData = append(ccData, indexLE[:]...)
	ccMAC := hmac.New(sha512.New, cc[:])
	ccMAC.Write(ccData)
	ccSum := ccMAC.Sum(nil)
	copy(ccNew[:], ccSum[32:])

	return z, ccNew
}

// deriveHardened implements §4.3: the HMAC-SHA512 pair for a hardened
// child derivation, keyed on the full private extended key. index must be
// >= 2^31.
func deriveHardened(kL, kR, cc [32]byte, index uint32) (z [64]byte, ccNew [32]byte) {
	var indexLE [4]byte
	binary.LittleEndian.PutUint32(indexLE[:], index)

	zData := make([]byte, 0, 1+32+32+4)
	zData = append(zData, 0x00)
	zData = append(zData, kL[:]...)
	zData = append(zData, kR[:]...)
	zData = append(zData, indexLE[:]...)
	zMAC := hmac.New(sha512.New, cc[:])
	zMAC.Write(zData)
	copy(z[:], zMAC.Sum(nil))

	ccData := make([]byte, 0, 1+32+32+4)
	ccData = append(ccData, 0x01)
	ccData = append(ccData, kL[:]...)
	ccData = append(ccData, kR[:]...)
	ccData = append(ccData, indexLE[:]...)
	ccMAC := hmac.New(sha512.New, cc[:])
	ccMAC.Write(ccData)
	ccSum := ccMAC.Sum(nil)
	copy(ccNew[:], ccSum[32:])

	return z, ccNew
}

// deriveChildNodePrivate implements §4.4: advance a private extended key by
// one BIP-44 level under the given profile's truncation width. Hardened vs.
// non-hardened is selected by comparing index against HardenedOffset.
func deriveChildNodePrivate(parent *extendedKey, index uint32, profile DerivationProfile) (*extendedKey, error) {
	var z [64]byte
	var ccNew [32]byte
	var err error

	if isHardened(index) {
		z, ccNew = deriveHardened(parent.kL, parent.kR, parent.c, index)
	} else {
		z, ccNew, err = deriveNonHardened(parent.kL, parent.c, index)
		if err != nil {
			return nil, err
		}
	}

	var zL, zR [32]byte
	copy(zL[:], z[:32])
	copy(zR[:], z[32:])

	width := profile.ZLWidth()
	t := zL[:width]
	eightT := crypto.ShiftLeft3(t)

	kLNew, overflow := crypto.AddWithOverflow(parent.kL[:], eightT)
	if overflow {
		return nil, ErrDerivationOverflow
	}

	kRNew := crypto.AddTruncating(parent.kR, zR)

	return &extendedKey{kL: kLNew, kR: kRNew, c: ccNew}, nil
}

// deriveChildNodePublic implements §4.5: advance an extended public key by
// one non-hardened BIP-44 level, using only public material. Rejects a
// hardened index with ErrInvalidIndex.
func deriveChildNodePublic(parent *extendedPublicKey, index uint32, profile DerivationProfile) (*extendedPublicKey, error) {
	if isHardened(index) {
		return nil, ErrInvalidIndex
	}

	z, ccNew := deriveNonHardenedFromPublic(parent.a, parent.c, index)

	var zL [32]byte
	copy(zL[:], z[:32])

	width := profile.ZLWidth()
	t := zL[:width]
	eightT := crypto.ShiftLeft3(t)

	eightTG, err := crypto.ScalarMultiplyBase(crypto.ReduceWide(eightT))
	if err != nil {
		return nil, err
	}

	aNew, err := crypto.PointAdd(parent.a[:], eightTG)
	if err != nil {
		return nil, err
	}

	out := &extendedPublicKey{c: ccNew}
	copy(out.a[:], aNew)
	return out, nil
}

// deriveKey implements §4.6: walk the full BIP-44 path from a root extended
// key by repeated deriveChildNodePrivate. When isPrivate is false, returns
// only kL_final·G (32 bytes) — the final chain code is deliberately not
// part of the public-only return.
func deriveKey(root *extendedKey, path Bip44Path, isPrivate bool, profile DerivationProfile) ([]byte, error) {
	current := root
	for _, index := range path {
		next, err := deriveChildNodePrivate(current, index, profile)
		if err != nil {
			return nil, err
		}
		current = next
	}

	if isPrivate {
		return current.bytes(), nil
	}
	return crypto.PublicFromScalar(current.kL[:])
}
