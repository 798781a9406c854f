package prefab

// Material describes how a graphics component is shaded. This is a
// sealed interface - only types in this package implement it.
//
// On the wire:
//
//	material: Srgba(0.8, 0.1, 0.1, 1.0)     // gamma-encoded solid
//	material: LinSrgba(0.5, 0.5, 0.5, 1.0)  // linear solid
//	material: Texture("textures/crate.png")
//
// An omitted material defaults to solid white sRGB.
type Material interface {
	// materialMarker is an unexported method that seals this
	// interface. Only types in this package can implement Material.
	materialMarker()
}

// SolidMaterial is a single flat color with its color-space tag.
type SolidMaterial struct {
	Color Color
	Space ColorSpace
}

// materialMarker implements the sealed Material interface.
func (SolidMaterial) materialMarker() {}

// Linear returns the material's color in linear light, converting
// from sRGB when the material is gamma-encoded.
func (m SolidMaterial) Linear() Color {
	if m.Space == ColorSpaceSRGB {
		return m.Color.ToLinear()
	}
	return m.Color
}

// TextureMaterial references an external texture asset by path.
type TextureMaterial struct {
	Path string
}

// materialMarker implements the sealed Material interface.
func (TextureMaterial) materialMarker() {}

// ColorSpace tags how a solid material's components are encoded.
type ColorSpace uint8

const (
	// ColorSpaceSRGB marks gamma-encoded, display-referred
	// components in [0, 1]. Wire tag: Srgba.
	ColorSpaceSRGB ColorSpace = iota

	// ColorSpaceLinear marks linear-light, scene-referred
	// components; values above 1 are permitted. Wire tag: LinSrgba.
	ColorSpaceLinear
)

// String returns the wire tag of the color space.
func (s ColorSpace) String() string {
	switch s {
	case ColorSpaceSRGB:
		return "Srgba"
	case ColorSpaceLinear:
		return "LinSrgba"
	default:
		return "unknown"
	}
}

// defaultMaterial is the material used when a graphics component
// omits the material field.
func defaultMaterial() Material {
	return SolidMaterial{Color: White, Space: ColorSpaceSRGB}
}
