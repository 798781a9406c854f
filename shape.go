package prefab

// Shape describes a procedural mesh. This is a sealed interface -
// only types in this package implement it.
//
// Counts (rings, slices, segments, subdivisions) control tessellation
// density and must be positive. Pointer-typed members are optional on
// the wire: nil means the consumer picks its own default resolution.
type Shape interface {
	// shapeMarker is an unexported method that seals this interface.
	// Only types in this package can implement Shape.
	shapeMarker()
}

// CubeShape is a unit cube. Wire tag: Cube (no payload).
type CubeShape struct{}

func (CubeShape) shapeMarker() {}

// SphereShape is a UV sphere. Wire tag: Sphere(rings, slices).
type SphereShape struct {
	Rings  int
	Slices int
}

func (SphereShape) shapeMarker() {}

// PlaneShape is a bounded plane, optionally subdivided into a grid.
// Wire tag: Plane(Some((x, y))) or Plane(None).
type PlaneShape struct {
	Divisions *[2]int
}

func (PlaneShape) shapeMarker() {}

// CylinderShape is a capped cylinder. Wire tag:
// Cylinder(segments) or Cylinder(segments, Some(rings)).
type CylinderShape struct {
	Segments int
	Rings    *int
}

func (CylinderShape) shapeMarker() {}

// ConeShape is a cone. Wire tag: Cone(subdivisions).
type ConeShape struct {
	Subdivisions int
}

func (ConeShape) shapeMarker() {}

// CircleShape is a flat disc. Wire tag: Circle(subdivisions).
type CircleShape struct {
	Subdivisions int
}

func (CircleShape) shapeMarker() {}

// IcoSphereShape is a subdivided icosahedron. Wire tag:
// IcoSphere(Some(subdivisions)) or IcoSphere(None).
type IcoSphereShape struct {
	Subdivisions *int
}

func (IcoSphereShape) shapeMarker() {}
