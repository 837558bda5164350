// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color implements small color helpers shared by the
// rendering backends.
package f32color

import "image/color"

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// ScaleAlpha multiplies the color alpha by f, clamped to [0, 1].
func ScaleAlpha(c color.NRGBA, f float32) color.NRGBA {
	switch {
	case f <= 0:
		c.A = 0
		return c
	case f >= 1:
		return c
	}
	return MulAlpha(c, uint8(f*0xFF+.5))
}

// ARGB converts a packed 0xAARRGGBB value.
func ARGB(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// RGB converts a packed 0xRRGGBB value to an opaque color.
func RGB(c uint32) color.NRGBA {
	return ARGB(0xff000000 | c)
}

// Packed returns c as 0xAARRGGBB.
func Packed(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
