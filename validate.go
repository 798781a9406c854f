package prefab

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/prefabkit/prefab/ron"
)

// checker accumulates invariant violations. The same constraint table
// runs both at load time (with source positions) and over
// programmatically built scenes through Scene.Validate.
type checker struct {
	violations []Violation
}

// posAt resolves the source position of a named field; zero for
// scenes that never came from a document.
type posAt func(field string) ron.Pos

func noPos(string) ron.Pos { return ron.Pos{} }

func (c *checker) add(ok bool, path, constraint string, value any, pos ron.Pos) {
	if ok {
		return
	}
	c.violations = append(c.violations, Violation{
		Path:       path,
		Constraint: constraint,
		Value:      fmt.Sprintf("%v", value),
		Pos:        pos,
	})
}

// Validate re-runs the loader's invariant table over the scene, for
// scenes assembled in code rather than loaded from a document. The
// walk is in canonical order: entity index, then graphics, transform,
// light, camera. Returns nil or a *ValidationError listing every
// violation.
func (s *Scene) Validate() error {
	var c checker
	for i := range s.Entities {
		c.entity(&s.Entities[i], fmt.Sprintf("entities[%d]", i))
	}
	if len(c.violations) > 0 {
		return &ValidationError{Violations: c.violations}
	}
	return nil
}

func (c *checker) entity(e *Entity, path string) {
	if e.Graphics != nil {
		if sm, ok := e.Graphics.Mesh.(ShapeMesh); ok {
			c.shape(sm.Shape, path+".graphics.mesh", ron.Pos{})
		}
		if e.Graphics.Material != nil {
			c.material(e.Graphics.Material, path+".graphics.material", ron.Pos{})
		}
	}
	if e.Light != nil {
		if e.Light.AmbientColor != nil {
			c.hdrColor(*e.Light.AmbientColor, path+".light.ambient_color", ron.Pos{})
		}
		if e.Light.Source != nil {
			c.source(e.Light.Source, path+".light.light", noPos)
		}
	}
	if e.Camera != nil {
		c.camera(e.Camera, path+".camera", noPos)
	}
}

func (c *checker) shape(sh Shape, path string, pos ron.Pos) {
	switch s := sh.(type) {
	case SphereShape:
		c.add(s.Rings > 0, path+".rings", "rings > 0", s.Rings, pos)
		c.add(s.Slices > 0, path+".slices", "slices > 0", s.Slices, pos)
	case PlaneShape:
		if s.Divisions != nil {
			c.add(s.Divisions[0] > 0 && s.Divisions[1] > 0, path+".divisions",
				"divisions > 0", fmt.Sprintf("(%d, %d)", s.Divisions[0], s.Divisions[1]), pos)
		}
	case CylinderShape:
		c.add(s.Segments > 0, path+".segments", "segments > 0", s.Segments, pos)
		if s.Rings != nil {
			c.add(*s.Rings > 0, path+".rings", "rings > 0", *s.Rings, pos)
		}
	case ConeShape:
		c.add(s.Subdivisions > 0, path+".subdivisions", "subdivisions > 0", s.Subdivisions, pos)
	case CircleShape:
		c.add(s.Subdivisions > 0, path+".subdivisions", "subdivisions > 0", s.Subdivisions, pos)
	case IcoSphereShape:
		if s.Subdivisions != nil {
			c.add(*s.Subdivisions > 0, path+".subdivisions", "subdivisions > 0", *s.Subdivisions, pos)
		}
	}
}

func (c *checker) material(m Material, path string, pos ron.Pos) {
	sm, ok := m.(SolidMaterial)
	if !ok {
		return
	}
	col := sm.Color
	if sm.Space == ColorSpaceSRGB {
		inRange := func(f float32) bool { return f >= 0 && f <= 1 }
		c.add(inRange(col.R) && inRange(col.G) && inRange(col.B) && inRange(col.A),
			path, "components in [0, 1]", formatColor(col), pos)
		return
	}
	c.add(col.R >= 0 && col.G >= 0 && col.B >= 0 && col.A >= 0,
		path, "components >= 0", formatColor(col), pos)
}

// hdrColor checks a light color: components must be non-negative,
// with values above 1 allowed for HDR intensity.
func (c *checker) hdrColor(col Color, path string, pos ron.Pos) {
	c.add(col.R >= 0 && col.G >= 0 && col.B >= 0 && col.A >= 0,
		path, "components >= 0", formatColor(col), pos)
}

// source checks a light variant's constraints in the variant's declared
// field order, independent of how the fields were ordered in the source
// text. Load and Scene.Validate report violations in the same order.
func (c *checker) source(src LightSource, path string, at posAt) {
	switch l := src.(type) {
	case PointLight:
		c.hdrColor(l.Color, path+".color", at("color"))
		c.add(l.Intensity >= 0, path+".intensity", "intensity >= 0", l.Intensity, at("intensity"))
		c.add(l.Radius > 0, path+".radius", "radius > 0", l.Radius, at("radius"))
		c.add(l.Smoothness >= 0 && l.Smoothness <= 1, path+".smoothness",
			"smoothness in [0, 1]", l.Smoothness, at("smoothness"))
	case DirectionalLight:
		c.hdrColor(l.Color, path+".color", at("color"))
		c.direction(l.Direction, path, at)
		c.add(l.Intensity >= 0, path+".intensity", "intensity >= 0", l.Intensity, at("intensity"))
	case SpotLight:
		c.add(l.Angle > 0 && l.Angle < 180, path+".angle", "angle in (0, 180)", l.Angle, at("angle"))
		c.hdrColor(l.Color, path+".color", at("color"))
		c.direction(l.Direction, path, at)
		c.add(l.Intensity >= 0, path+".intensity", "intensity >= 0", l.Intensity, at("intensity"))
		c.add(l.Range > 0, path+".range", "range > 0", l.Range, at("range"))
		c.add(l.Smoothness >= 0 && l.Smoothness <= 1, path+".smoothness",
			"smoothness in [0, 1]", l.Smoothness, at("smoothness"))
	case SunLight:
		c.add(l.Angle >= 0 && l.Angle < 180, path+".angle", "angle in [0, 180)", l.Angle, at("angle"))
		c.hdrColor(l.Color, path+".color", at("color"))
		c.direction(l.Direction, path, at)
		c.add(l.Intensity >= 0, path+".intensity", "intensity >= 0", l.Intensity, at("intensity"))
	}
}

func (c *checker) direction(dir mgl32.Vec3, path string, at posAt) {
	c.add(dir != (mgl32.Vec3{}), path+".direction", "direction non-zero",
		fmt.Sprintf("(%v, %v, %v)", dir.X(), dir.Y(), dir.Z()), at("direction"))
}

func (c *checker) camera(cam Camera, path string, at posAt) {
	switch p := cam.(type) {
	case Perspective:
		c.add(p.Aspect > 0, path+".aspect", "aspect > 0", p.Aspect, at("aspect"))
		c.add(p.Fovy > 0, path+".fovy", "fovy > 0", p.Fovy, at("fovy"))
		c.add(p.Znear > 0, path+".znear", "znear > 0", p.Znear, at("znear"))
		c.add(p.Znear < p.Zfar, path+".zfar", "znear < zfar", p.Zfar, at("zfar"))
	case Orthographic:
		c.add(p.Left < p.Right, path+".right", "left < right", p.Right, at("right"))
		c.add(p.Bottom < p.Top, path+".top", "bottom < top", p.Top, at("top"))
		c.add(p.Znear < p.Zfar, path+".zfar", "znear < zfar", p.Zfar, at("zfar"))
	}
}

func formatColor(c Color) string {
	return fmt.Sprintf("(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}
