package scenefile

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/insiculous2d/engine/asset"
)

// ResolveTexture decodes a texture field per spec §6: "#white" is handle
// 0, "#solid:RRGGBBAA" allocates or reuses a programmatic solid color,
// and anything else is a path resolved against assetsDir and loaded
// through cache.
func ResolveTexture(field, assetsDir string, cache *asset.Cache) (uint32, error) {
	switch {
	case field == "#white" || field == "":
		return asset.WhiteHandle, nil
	case strings.HasPrefix(field, "#solid:"):
		hex := strings.TrimPrefix(field, "#solid:")
		if len(hex) != 8 {
			return 0, fmt.Errorf("scenefile: #solid: texture %q must have an 8-digit RRGGBBAA hex", field)
		}
		r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
		g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
		b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
		a, err4 := strconv.ParseUint(hex[6:8], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return 0, fmt.Errorf("scenefile: #solid: texture %q has invalid hex", field)
		}
		return cache.CreateSolidColor(1, 1, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}), nil
	default:
		path := field
		if assetsDir != "" {
			path = assetsDir + "/" + field
		}
		return cache.LoadTexture(path)
	}
}

// EncodeTexture is the inverse of ResolveTexture, delegating to the
// cache's own round-trip encoding (spec §6 "get_texture_path").
func EncodeTexture(handle uint32, cache *asset.Cache) (string, error) {
	s, ok := cache.GetTexturePath(handle)
	if !ok {
		return "", fmt.Errorf("scenefile: unknown texture handle %d", handle)
	}
	return s, nil
}
