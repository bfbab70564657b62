package value

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// normalizeHex pads 1-5 digit hex strings to 6 by appending '0', and
// passes 3- or 6-digit strings through unchanged. Grounded in
// original_source's normalize_hex (see SPEC_FULL.md supplement 7).
func normalizeHex(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3, 6:
		return hex
	case 0:
		return "000000"
	default:
		if len(hex) < 6 {
			return hex + strings.Repeat("0", 6-len(hex))
		}
		return hex[:6]
	}
}

// ParseHexColor3u8 parses an RSML hex literal (already without sentinel
// normalization applied by the lexer) into a Color3u8.
func ParseHexColor3u8(hex string) Color3u8 {
	h := normalizeHex(hex)
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color3u8{}
	}
	r, g, b := c.RGB255()
	return Color3u8{R: r, G: g, B: b}
}

func (c Color3u8) ToColor3() Color3 {
	return Color3{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func (c Color3) ToColor3u8() Color3u8 {
	cf := colorful.Color{R: c.R, G: c.G, B: c.B}
	r, g, b := cf.Clamped().RGB255()
	return Color3u8{R: r, G: g, B: b}
}

func (c Color3) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color) Color3 {
	return Color3{R: c.R, G: c.G, B: c.B}
}

// ToOklab converts an sRGB Color3 to the Oklab carrier via go-colorful's
// OkLab support.
func (c Color3) ToOklab() Oklab {
	l, a, b := c.toColorful().OkLab()
	return Oklab{L: l, A: a, B: b}
}

func (o Oklab) ToColor3() Color3 {
	return fromColorful(colorful.OkLab(o.L, o.A, o.B)).Clamp()
}

func (c Color3) ToOklch() Oklch {
	l, ch, h := c.toColorful().OkLch()
	return Oklch{L: l, C: ch, H: h}
}

func (o Oklch) ToColor3() Color3 {
	return fromColorful(colorful.OkLch(o.L, o.C, o.H)).Clamp()
}

func (o Oklab) ToOklch() Oklch {
	return o.ToColor3().ToOklch()
}

func (o Oklch) ToOklab() Oklab {
	return o.ToColor3().ToOklab()
}

// Clamp clips channels back into [0,1], matching go-colorful's Clamped.
func (c Color3) Clamp() Color3 {
	return fromColorful(c.toColorful().Clamped())
}

