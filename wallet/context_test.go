package wallet

import "testing"

func TestKeyContext_CoinType(t *testing.T) {
	if Address.coinType() != 283 {
		t.Errorf("Address.coinType() = %d, want 283", Address.coinType())
	}
	if Identity.coinType() != 0 {
		t.Errorf("Identity.coinType() = %d, want 0", Identity.coinType())
	}
}

func TestKeyContext_String(t *testing.T) {
	if Address.String() != "Address" {
		t.Errorf("Address.String() = %q, want %q", Address.String(), "Address")
	}
	if Identity.String() != "Identity" {
		t.Errorf("Identity.String() = %q, want %q", Identity.String(), "Identity")
	}
}
