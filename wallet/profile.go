package wallet

// DerivationProfile selects between the two derivation-safety profiles
// spec §3 defines. Per spec §9 ("profile values are semantic, not numeric
// labels") the type stores the zL truncation width and the safe derivation
// depth directly, rather than carrying an opaque numeric tag.
type DerivationProfile struct {
	name     string
	zLWidth  int
	maxDepth uint64
}

// String returns the profile's name.
func (p DerivationProfile) String() string {
	return p.name
}

// ZLWidth returns the number of low-order bytes of zL retained when
// updating kL in a non-hardened step (§3/§4.4).
func (p DerivationProfile) ZLWidth() int {
	return p.zLWidth
}

// MaxDepth returns the maximum safe derivation depth for this profile
// before 8·zL could overflow a 256-bit scalar (§3).
func (p DerivationProfile) MaxDepth() uint64 {
	return p.maxDepth
}

var (
	// Peikert is the conservative profile: a 9-byte zL truncation, safe to
	// derivation depth 8.
	Peikert = DerivationProfile{name: "Peikert", zLWidth: 9, maxDepth: 8}

	// Khovratovich is the original BIP32-Ed25519 paper's profile: a 28-byte
	// zL truncation, safe to derivation depth 2^26.
	Khovratovich = DerivationProfile{name: "Khovratovich", zLWidth: 28, maxDepth: 1 << 26}
)

