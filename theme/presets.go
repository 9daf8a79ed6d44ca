package theme

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Bundled preset drawables, keyed by the values PRESET_DRAWABLE resources may
// reference. The bridge renders them as plain tinted glyph placeholders; the
// render sink substitutes its own vector art for known keys.
var presetColors = map[string]color.NRGBA{
	"reply":      {R: 0x34, G: 0x82, B: 0xFF, A: 0xFF},
	"call":       {R: 0x2E, G: 0xCC, B: 0x71, A: 0xFF},
	"hangup":     {R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF},
	"music":      {R: 0x9B, G: 0x59, B: 0xB6, A: 0xFF},
	"navigation": {R: 0x1A, G: 0xBC, B: 0x9C, A: 0xFF},
	"archive":    {R: 0xF3, G: 0x9C, B: 0x12, A: 0xFF},
	"delete":     {R: 0x95, G: 0xA5, B: 0xA6, A: 0xFF},
}

const presetSize = 96

// PresetImage returns the bundled drawable for a key, nil when unknown.
func PresetImage(key string) image.Image {
	c, ok := presetColors[key]
	if !ok {
		return nil
	}
	return imaging.New(presetSize, presetSize, c)
}
