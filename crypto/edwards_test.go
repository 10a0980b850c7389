package crypto

import (
	"bytes"
	"testing"
)

func clampedScalar(seed byte) []byte {
	s := make([]byte, 32)
	for i := range s {
		s[i] = seed + byte(i)
	}
	ClampScalar(s)
	return s
}

func TestPublicFromScalar_Deterministic(t *testing.T) {
	s := clampedScalar(1)
	a, err := PublicFromScalar(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := PublicFromScalar(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("PublicFromScalar is not deterministic")
	}
	if len(a) != 32 {
		t.Fatalf("expected 32-byte point, got %d", len(a))
	}
}

func TestPublicFromScalar_DistinctScalarsDistinctPoints(t *testing.T) {
	a, err := PublicFromScalar(clampedScalar(1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := PublicFromScalar(clampedScalar(2))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("distinct scalars should produce distinct points")
	}
}

func TestPointAdd_AssociativeWithScalarMultiplyBase(t *testing.T) {
	// (a+b)*G == a*G + b*G, using small canonical scalars reduced via ReduceWide.
	a := ReduceWide([]byte{3})
	b := ReduceWide([]byte{5})
	sum := ReduceWide([]byte{8})

	aG, err := ScalarMultiplyBase(a)
	if err != nil {
		t.Fatal(err)
	}
	bG, err := ScalarMultiplyBase(b)
	if err != nil {
		t.Fatal(err)
	}
	sumG, err := ScalarMultiplyBase(sum)
	if err != nil {
		t.Fatal(err)
	}

	added, err := PointAdd(aG, bG)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(added, sumG) {
		t.Error("PointAdd(3G, 5G) != 8G")
	}
}

func TestMontgomeryU_Deterministic(t *testing.T) {
	s := clampedScalar(7)
	point, err := PublicFromScalar(s)
	if err != nil {
		t.Fatal(err)
	}

	u1, err := MontgomeryU(point)
	if err != nil {
		t.Fatal(err)
	}
	u2, err := MontgomeryU(point)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(u1, u2) {
		t.Error("MontgomeryU is not deterministic")
	}
	if len(u1) != 32 {
		t.Fatalf("expected 32-byte u-coordinate, got %d", len(u1))
	}
}

func TestPointAdd_InvalidPoint(t *testing.T) {
	// y = 2 has no matching x on the curve, so this encoding is not a point.
	bad := make([]byte, 32)
	bad[0] = 2
	good, _ := PublicFromScalar(clampedScalar(1))

	if _, err := PointAdd(bad, good); err == nil {
		t.Error("expected error decoding an invalid point")
	}
}
