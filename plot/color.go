package plot

import "image/color"

// Color is a packed 24-bit 0xRRGGBB value.
type Color uint32

const (
	White Color = 0xFFFFFF
	Black Color = 0x000000
	Gray  Color = 0x666666
)

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB unpacks the 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToRGBA returns the opaque color.RGBA equivalent.
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// FromRGBA drops alpha and packs the channels.
func FromRGBA(c color.RGBA) Color {
	return RGB(c.R, c.G, c.B)
}
