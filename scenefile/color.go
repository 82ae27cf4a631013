package scenefile

import (
	"fmt"
	"strconv"

	"github.com/insiculous2d/engine/component"
)

// ParseHexColor parses a 6- or 8-digit hex color string (with or without
// a leading '#') into a component.Color. 6 digits imply alpha=0xFF.
// Invalid hex is a reported error, per spec §6 "Hex color parsing".
func ParseHexColor(s string) (component.Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint64
	var err error

	switch len(s) {
	case 6:
		a = 0xFF
	case 8:
	default:
		return component.Color{}, fmt.Errorf("scenefile: hex color %q must be 6 or 8 digits", s)
	}

	if r, err = strconv.ParseUint(s[0:2], 16, 8); err != nil {
		return component.Color{}, fmt.Errorf("scenefile: hex color %q: %w", s, err)
	}
	if g, err = strconv.ParseUint(s[2:4], 16, 8); err != nil {
		return component.Color{}, fmt.Errorf("scenefile: hex color %q: %w", s, err)
	}
	if b, err = strconv.ParseUint(s[4:6], 16, 8); err != nil {
		return component.Color{}, fmt.Errorf("scenefile: hex color %q: %w", s, err)
	}
	if len(s) == 8 {
		if a, err = strconv.ParseUint(s[6:8], 16, 8); err != nil {
			return component.Color{}, fmt.Errorf("scenefile: hex color %q: %w", s, err)
		}
	}

	return component.Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

// FormatHexColor renders col as an 8-digit "RRGGBBAA" hex string, the
// inverse of ParseHexColor.
func FormatHexColor(col component.Color) string {
	return fmt.Sprintf("%02X%02X%02X%02X",
		clampByte(col.R), clampByte(col.G), clampByte(col.B), clampByte(col.A))
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
