package prefab

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA color with float32 components. Components are
// nominally in [0, 1]; light colors may exceed 1 to express HDR
// intensity.
//
// A Color carries no color-space tag of its own: whether its values
// are gamma-encoded or linear is determined by where it appears (see
// [ColorSpace] on materials). The conversion methods move between the
// two encodings.
type Color struct {
	R, G, B, A float32
}

// White is opaque white.
var White = Color{1, 1, 1, 1}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ToLinear converts a gamma-encoded (sRGB) color to linear light
// using the sRGB transfer function. Alpha is unchanged.
func (c Color) ToLinear() Color {
	return Color{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B), c.A}
}

// ToSRGB converts a linear-light color to the gamma-encoded sRGB
// representation. Alpha is unchanged.
func (c Color) ToSRGB() Color {
	return Color{linearToSRGB(c.R), linearToSRGB(c.G), linearToSRGB(c.B), c.A}
}

// Premultiplied returns the color with RGB scaled by alpha.
func (c Color) Premultiplied() Color {
	return Color{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// Scaled multiplies the RGB components by s, leaving alpha unchanged.
// Useful for applying an HDR intensity to a unit color.
func (c Color) Scaled(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Vec4 returns the color as an (r, g, b, a) vector for uniform upload.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math32.Pow(c, 1/2.4) - 0.055
}
