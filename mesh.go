package prefab

// Mesh is the geometry of a graphics component. This is a sealed
// interface - only types in this package implement it.
//
// A mesh is either procedural ([ShapeMesh], built from a [Shape]
// description) or a reference to an external mesh file ([MeshFile],
// resolved by the caller's asset system).
//
// On the wire:
//
//	mesh: Shape(Sphere(32, 16))
//	mesh: File("models/teapot.obj", Obj)
type Mesh interface {
	// meshMarker is an unexported method that seals this interface.
	// Only types in this package can implement Mesh.
	meshMarker()
}

// ShapeMesh is a procedurally generated mesh.
type ShapeMesh struct {
	Shape Shape
}

// meshMarker implements the sealed Mesh interface.
func (ShapeMesh) meshMarker() {}

// MeshFile references an external mesh asset by path.
type MeshFile struct {
	Path   string
	Format MeshFormat
}

// meshMarker implements the sealed Mesh interface.
func (MeshFile) meshMarker() {}

// MeshFormat identifies the encoding of an external mesh file.
type MeshFormat uint8

const (
	// MeshObj is the Wavefront OBJ format.
	MeshObj MeshFormat = iota

	// MeshGltf is the glTF 2.0 text format.
	MeshGltf
)

// String returns the wire tag of the format.
func (f MeshFormat) String() string {
	switch f {
	case MeshObj:
		return "Obj"
	case MeshGltf:
		return "Gltf"
	default:
		return "unknown"
	}
}
