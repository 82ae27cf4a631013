package scenefile

import (
	"testing"

	"github.com/insiculous2d/engine/component"
)

func TestParseHexColorSixDigitsImpliesOpaque(t *testing.T) {
	col, err := ParseHexColor("ff0080")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if col.A != 1 {
		t.Errorf("A = %v, want 1", col.A)
	}
	if col.R != 1 {
		t.Errorf("R = %v, want 1", col.R)
	}
}

func TestParseHexColorEightDigitsWithHash(t *testing.T) {
	col, err := ParseHexColor("#00000080")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if col.A < 0.49 || col.A > 0.51 {
		t.Errorf("A = %v, want ~0.5", col.A)
	}
}

func TestParseHexColorRejectsBadLength(t *testing.T) {
	if _, err := ParseHexColor("abc"); err == nil {
		t.Error("expected error for 3-digit hex")
	}
}

func TestParseHexColorRejectsNonHex(t *testing.T) {
	if _, err := ParseHexColor("zzzzzz"); err == nil {
		t.Error("expected error for non-hex digits")
	}
}

func TestFormatHexColorRoundTrips(t *testing.T) {
	col := component.Color{R: 1, G: 0, B: 0.5, A: 1}
	s := FormatHexColor(col)
	got, err := ParseHexColor(s)
	if err != nil {
		t.Fatalf("ParseHexColor(%q): %v", s, err)
	}
	if got.R != col.R || got.A != col.A {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, col)
	}
}
