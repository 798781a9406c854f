package prefab

import "github.com/go-gl/mathgl/mgl32"

// Light is an entity's lighting component. Both members are optional
// on the wire: an entity may set a scene-wide ambient color, carry a
// light source, or both.
type Light struct {
	// AmbientColor, when present, contributes a scene-wide ambient
	// term. Components may exceed 1 for HDR intensity.
	AmbientColor *Color

	// Source, when present, is the entity's emitter.
	Source LightSource
}

// LightSource is one concrete light emitter. This is a sealed
// interface - only types in this package implement it.
//
// Directions are taken as written in the document and are not
// required to be normalized; consumers normalize before use (see
// the Direction methods on the directional variants).
type LightSource interface {
	// lightSourceMarker is an unexported method that seals this
	// interface. Only types in this package can implement
	// LightSource.
	lightSourceMarker()
}

// PointLight radiates equally in all directions. Wire tag: Point.
type PointLight struct {
	Color      Color
	Intensity  float32
	Radius     float32
	Smoothness float32
}

func (PointLight) lightSourceMarker() {}

// DirectionalLight lights the whole scene from one direction, like
// sunlight at infinite distance. Wire tag: Directional.
type DirectionalLight struct {
	Color     Color
	Direction mgl32.Vec3
	Intensity float32
}

func (DirectionalLight) lightSourceMarker() {}

// NormalizedDirection returns the unit-length light direction.
func (l DirectionalLight) NormalizedDirection() mgl32.Vec3 {
	return l.Direction.Normalize()
}

// SpotLight emits a cone of light. Angle is the half-cone angle in
// degrees, in (0, 180); Smoothness in [0, 1] controls edge falloff,
// with 0 hard-edged. Wire tag: Spot.
type SpotLight struct {
	Angle      float32
	Color      Color
	Direction  mgl32.Vec3
	Intensity  float32
	Range      float32
	Smoothness float32
}

func (SpotLight) lightSourceMarker() {}

// NormalizedDirection returns the unit-length cone axis.
func (l SpotLight) NormalizedDirection() mgl32.Vec3 {
	return l.Direction.Normalize()
}

// AngleRadians returns the half-cone angle in radians.
func (l SpotLight) AngleRadians() float32 {
	return mgl32.DegToRad(l.Angle)
}

// SunLight is a directional light with an angular diameter, for soft
// shadows and disc rendering. Wire tag: Sun.
type SunLight struct {
	// Angle is the apparent angular diameter in degrees. The
	// default 0.53 matches the sun seen from earth.
	Angle     float32
	Color     Color
	Direction mgl32.Vec3
	Intensity float32
}

func (SunLight) lightSourceMarker() {}

// NormalizedDirection returns the unit-length light direction.
func (l SunLight) NormalizedDirection() mgl32.Vec3 {
	return l.Direction.Normalize()
}
