package uiraster

import "image/color"

// Color is an 8-bit R,G,B,A colour.
//
// Colours are composited as premultiplied alpha: R, G and B should not
// exceed A. Non-premultiplied values are accepted but saturate.
type Color struct {
	R, G, B, A uint8
}

// Common colours.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
)

// RGBA8 creates a colour from its four channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque creates a fully opaque colour.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color. The channels are already premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color to a premultiplied Color.
func FromColor(c color.Color) Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}

func (c Color) bytes() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

func colorOf(b [4]uint8) Color {
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}
}
