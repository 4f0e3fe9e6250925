package geometry

import "testing"

func TestTranslateCarriesOffset(t *testing.T) {
	tr := Translate(0, -42.5)
	offset := tr.Offset()
	if offset.X != 0 || offset.Y != -42.5 {
		t.Fatalf("offset = %+v, want {0 -42.5}", offset)
	}
}

func TestIdentityHasZeroOffset(t *testing.T) {
	if got := Identity().Offset(); got != (Offset{}) {
		t.Fatalf("identity offset = %+v, want zero", got)
	}
}

func TestSizeExtent(t *testing.T) {
	s := Size{Width: 300, Height: 900}
	if got := s.Extent(AxisVertical); got != 900 {
		t.Fatalf("vertical extent = %v, want 900", got)
	}
	if got := s.Extent(AxisHorizontal); got != 300 {
		t.Fatalf("horizontal extent = %v, want 300", got)
	}
}
