package newton

// Color is an 8-bit RGBA color. The palette rules are defined on byte
// channels (mod-255 accumulator arithmetic), so unlike image/color the
// channels are stored as raw bytes, not alpha-premultiplied values.
type Color struct {
	R, G, B, A uint8
}

// Unconverged is the fallback color for pixels whose iteration stalls
// on a critical point or runs out of iterations without reaching a
// root.
var Unconverged = Color{R: 0, G: 100, B: 0, A: 255}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}

// Brightness returns the color lightened (factor > 0) or darkened
// (factor < 0). The factor is clamped to [-1, 1]: -1 is black, 1 is
// white, 0 returns the color unchanged. Negative factors scale the
// channels toward black, positive factors interpolate toward white.
// Alpha is preserved.
func (c Color) Brightness(factor float64) Color {
	if factor > 1 {
		factor = 1
	} else if factor < -1 {
		factor = -1
	}

	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	if factor < 0 {
		f := 1 + factor
		r *= f
		g *= f
		b *= f
	} else {
		r += (255 - r) * factor
		g += (255 - g) * factor
		b += (255 - b) * factor
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: c.A}
}
