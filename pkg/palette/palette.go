// Package palette holds the four preset color tables spec §6 describes as
// "provided at compile-time" and treated as an injected constant map. Real
// deployments would load these from the target engine's palette JSON; this
// package ships a representative built-in set, lazily built once and never
// mutated afterward (§5's "process-wide immutable constants").
package palette

import (
	"strings"
	"sync"

	"github.com/dmoose/rsml/pkg/value"
)

var (
	once       sync.Once
	tw, css, skin map[string]value.Oklab
	brick      map[string]value.Color3u8
)

func build() {
	tw = map[string]value.Oklab{
		"red-500":    rgbOklab(239, 68, 68),
		"orange-500": rgbOklab(249, 115, 22),
		"amber-500":  rgbOklab(245, 158, 11),
		"green-500":  rgbOklab(34, 197, 94),
		"blue-500":   rgbOklab(59, 130, 246),
		"indigo-500": rgbOklab(99, 102, 241),
		"violet-500": rgbOklab(139, 92, 246),
		"gray-500":   rgbOklab(107, 114, 128),
		"black":      rgbOklab(0, 0, 0),
		"white":      rgbOklab(255, 255, 255),
	}
	css = map[string]value.Oklab{
		"tomato":      rgbOklab(255, 99, 71),
		"dodgerblue":  rgbOklab(30, 144, 255),
		"forestgreen": rgbOklab(34, 139, 34),
		"gold":        rgbOklab(255, 215, 0),
		"crimson":     rgbOklab(220, 20, 60),
		"black":       rgbOklab(0, 0, 0),
		"white":       rgbOklab(255, 255, 255),
	}
	skin = map[string]value.Oklab{
		"light":  rgbOklab(255, 224, 196),
		"medium": rgbOklab(198, 134, 66),
		"tan":    rgbOklab(214, 172, 126),
		"dark":   rgbOklab(92, 64, 51),
	}
	brick = map[string]value.Color3u8{
		"medium stone grey": {R: 163, G: 162, B: 165},
		"bright red":        {R: 196, G: 40, B: 28},
		"bright blue":       {R: 0, G: 85, B: 191},
		"bright yellow":     {R: 245, G: 205, B: 48},
		"black":             {R: 27, G: 42, B: 53},
		"white":             {R: 242, G: 243, B: 243},
	}
}

func rgbOklab(r, g, b uint8) value.Oklab {
	return value.Color3u8{R: r, G: g, B: b}.ToColor3().ToOklab()
}

func ensure() {
	once.Do(build)
}

// MediumStoneGrey is the documented fallback for an unknown BrickColor name.
var MediumStoneGrey = value.BrickColor{Name: "Medium stone grey", Color: value.Color3u8{R: 163, G: 162, B: 165}}

func lookup(table map[string]value.Oklab, name string) (value.Oklab, bool) {
	ensure()
	v, ok := table[strings.ToLower(name)]
	return v, ok
}

// LookupTw looks up a Tailwind-style color name (case-insensitive).
func LookupTw(name string) (value.Oklab, bool) { return lookup(tw, name) }

// LookupCSS looks up a CSS named color (case-insensitive).
func LookupCSS(name string) (value.Oklab, bool) { return lookup(css, name) }

// LookupSkin looks up a skin-tone preset (case-insensitive).
func LookupSkin(name string) (value.Oklab, bool) { return lookup(skin, name) }

// LookupBrickColor looks up a BrickColor by name (case-insensitive),
// falling back to MediumStoneGrey for unknown names per the documented
// error-handling policy (§7).
func LookupBrickColor(name string) value.BrickColor {
	ensure()
	if c, ok := brick[strings.ToLower(name)]; ok {
		return value.BrickColor{Name: name, Color: c}
	}
	return MediumStoneGrey
}
