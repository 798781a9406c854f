package prefab

import "github.com/go-gl/mathgl/mgl32"

// Scene is an ordered sequence of entities produced by one load.
// Order is document order and may be meaningful to the consumer (for
// example, a renderer that lets later cameras override earlier ones).
//
// A Scene is immutable by convention: the loader builds a fresh value
// per call and never touches one it has already returned.
type Scene struct {
	Entities []Entity
}

// Entity is a single scene object, defined by which component slots
// are present. A nil slot means the entity has no such component.
type Entity struct {
	Graphics  *Graphics
	Transform *Transform
	Light     *Light
	Camera    Camera
}

// Graphics describes what an entity looks like: a mesh and the
// material used to shade it.
type Graphics struct {
	Mesh     Mesh
	Material Material
}

// Transform places an entity in the scene.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// DefaultTransform returns the identity transform: zero translation,
// identity rotation, unit scale. Omitted transform fields load with
// these values.
func DefaultTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Mat4 composes the transform into a column-major model matrix,
// applying scale, then rotation, then translation.
func (t Transform) Mat4() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	sc := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(t.Rotation.Mat4()).Mul4(sc)
}

// TextureRefs returns the external texture paths named by the scene's
// materials, in document order, without deduplication.
func (s *Scene) TextureRefs() []string {
	var refs []string
	for i := range s.Entities {
		g := s.Entities[i].Graphics
		if g == nil {
			continue
		}
		if tm, ok := g.Material.(TextureMaterial); ok {
			refs = append(refs, tm.Path)
		}
	}
	return refs
}

// MeshRefs returns the external mesh file paths named by the scene,
// in document order, without deduplication.
func (s *Scene) MeshRefs() []string {
	var refs []string
	for i := range s.Entities {
		g := s.Entities[i].Graphics
		if g == nil {
			continue
		}
		if mf, ok := g.Mesh.(MeshFile); ok {
			refs = append(refs, mf.Path)
		}
	}
	return refs
}
