package prefab

import "github.com/go-gl/mathgl/mgl32"

// Camera is an entity's projection. This is a sealed interface -
// only types in this package implement it. A nil Camera slot means
// the entity has no camera component.
//
// Projection fields have no defaults: every field must be written in
// the document.
//
// On the wire:
//
//	camera: Perspective(aspect: 1.3, fovy: 1.047, znear: 0.1, zfar: 2000.0)
//	camera: Orthographic(left: -10.0, right: 10.0, bottom: -10.0, top: 10.0, znear: 0.1, zfar: 100.0)
type Camera interface {
	// cameraMarker is an unexported method that seals this
	// interface. Only types in this package can implement Camera.
	cameraMarker()

	// Projection returns the projection matrix for the camera.
	Projection() mgl32.Mat4
}

// Perspective is a perspective projection. Fovy is the vertical field
// of view in radians.
type Perspective struct {
	Aspect float32
	Fovy   float32
	Znear  float32
	Zfar   float32
}

// cameraMarker implements the sealed Camera interface.
func (Perspective) cameraMarker() {}

// Projection implements Camera.
func (c Perspective) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.Fovy, c.Aspect, c.Znear, c.Zfar)
}

// Orthographic is an orthographic projection over an axis-aligned
// view volume.
type Orthographic struct {
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
	Znear  float32
	Zfar   float32
}

// cameraMarker implements the sealed Camera interface.
func (Orthographic) cameraMarker() {}

// Projection implements Camera.
func (c Orthographic) Projection() mgl32.Mat4 {
	return mgl32.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Znear, c.Zfar)
}
