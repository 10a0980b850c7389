package wallet

// HardenedOffset is the index at which hardened keys start (2^31), per
// spec §3 ("i' = 2^31 + i").
const HardenedOffset = uint32(1) << 31

// Bip44Path is the BIP-44 derivation path of spec §3: a sequence of
// indices. The full path is [44', coin', account', change, index]; 44,
// coin, and account are always hardened internally, change and index are
// never hardened. A Bip44Path may also be a four-element prefix
// [44', coin', account', change] — see bip44PathPrefix.
type Bip44Path []uint32

// newBip44Path builds the full five-level path for a given
// context/account/change/index.
func newBip44Path(ctx KeyContext, account, change, index uint32) Bip44Path {
	return Bip44Path{
		44 | HardenedOffset,
		ctx.coinType() | HardenedOffset,
		account | HardenedOffset,
		change,
		index,
	}
}

// bip44PathPrefix is the first four levels of the path — everything up to
// and including `change` — the level at which the soft-derivation
// equivalence property (spec §8 property 3) applies: an extended public key
// at this prefix can derive the final `index` level without private material.
func bip44PathPrefix(ctx KeyContext, account, change uint32) Bip44Path {
	full := newBip44Path(ctx, account, change, 0)
	return full[:4]
}

// isHardened reports whether index denotes a hardened derivation step.
func isHardened(index uint32) bool {
	return index >= HardenedOffset
}
