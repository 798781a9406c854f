package prefab

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/prefabkit/prefab/ron"
)

// Marshal writes the scene as a canonical document that Load reads
// back field-for-field. The output enables implicit_some, writes
// every present component in full (defaults included), and omits
// absent component slots.
//
// The scene is validated first: Marshal never emits a document that
// Load would reject. The error is a *ValidationError when the scene
// violates an invariant.
func Marshal(s *Scene) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	for i := range s.Entities {
		if g := s.Entities[i].Graphics; g != nil && g.Mesh == nil {
			return nil, &MissingFieldError{
				Path:  fmt.Sprintf("entities[%d].graphics", i),
				Field: "mesh",
			}
		}
	}
	doc := &ron.Document{Extensions: []string{"implicit_some"}}
	doc.Root = encodeScene(s)
	return ron.Encode(doc), nil
}

func encodeScene(s *Scene) ron.Value {
	entities := ron.Value{Kind: ron.KindSeq}
	for i := range s.Entities {
		entities.Items = append(entities.Items, encodeEntity(&s.Entities[i]))
	}
	return record("Prefab", field("entities", entities))
}

func encodeEntity(e *Entity) ron.Value {
	var fields []ron.Field
	if e.Graphics != nil {
		fields = append(fields, field("graphics", encodeGraphics(e.Graphics)))
	}
	if e.Transform != nil {
		fields = append(fields, field("transform", encodeTransform(e.Transform)))
	}
	if e.Light != nil {
		fields = append(fields, field("light", encodeLight(e.Light)))
	}
	if e.Camera != nil {
		fields = append(fields, field("camera", encodeCamera(e.Camera)))
	}
	data := ron.Value{Kind: ron.KindRecord, Fields: fields}
	if len(fields) == 0 {
		// An empty component record prints as (), which loads back
		// as an entity with no components.
		data = ron.Value{Kind: ron.KindTuple}
	}
	return record("", field("data", data))
}

func encodeGraphics(g *Graphics) ron.Value {
	material := g.Material
	if material == nil {
		material = defaultMaterial()
	}
	return record("",
		field("mesh", encodeMesh(g.Mesh)),
		field("material", encodeMaterial(material)),
	)
}

func encodeMesh(m Mesh) ron.Value {
	switch mesh := m.(type) {
	case ShapeMesh:
		return tuple("Shape", encodeShape(mesh.Shape))
	case MeshFile:
		return tuple("File", str(mesh.Path), unit(mesh.Format.String()))
	default:
		panic(fmt.Sprintf("prefab: unknown mesh type %T", m))
	}
}

func encodeShape(s Shape) ron.Value {
	switch sh := s.(type) {
	case CubeShape:
		return unit("Cube")
	case SphereShape:
		return tuple("Sphere", integer(sh.Rings), integer(sh.Slices))
	case PlaneShape:
		if sh.Divisions == nil {
			return tuple("Plane", unit("None"))
		}
		return tuple("Plane", some(tuple("", integer(sh.Divisions[0]), integer(sh.Divisions[1]))))
	case CylinderShape:
		if sh.Rings == nil {
			return tuple("Cylinder", integer(sh.Segments))
		}
		return tuple("Cylinder", integer(sh.Segments), some(integer(*sh.Rings)))
	case ConeShape:
		return tuple("Cone", integer(sh.Subdivisions))
	case CircleShape:
		return tuple("Circle", integer(sh.Subdivisions))
	case IcoSphereShape:
		if sh.Subdivisions == nil {
			return tuple("IcoSphere", unit("None"))
		}
		return tuple("IcoSphere", some(integer(*sh.Subdivisions)))
	default:
		panic(fmt.Sprintf("prefab: unknown shape type %T", s))
	}
}

func encodeMaterial(m Material) ron.Value {
	switch mat := m.(type) {
	case SolidMaterial:
		return colorTuple(mat.Space.String(), mat.Color)
	case TextureMaterial:
		return tuple("Texture", str(mat.Path))
	default:
		panic(fmt.Sprintf("prefab: unknown material type %T", m))
	}
}

func encodeTransform(t *Transform) ron.Value {
	return record("",
		field("translation", vec3(t.Translation)),
		field("rotation", quat(t.Rotation)),
		field("scale", vec3(t.Scale)),
	)
}

func encodeLight(l *Light) ron.Value {
	var fields []ron.Field
	if l.AmbientColor != nil {
		fields = append(fields, field("ambient_color", colorTuple("", *l.AmbientColor)))
	}
	if l.Source != nil {
		fields = append(fields, field("light", encodeLightSource(l.Source)))
	}
	if len(fields) == 0 {
		return ron.Value{Kind: ron.KindTuple}
	}
	return ron.Value{Kind: ron.KindRecord, Fields: fields}
}

func encodeLightSource(src LightSource) ron.Value {
	switch l := src.(type) {
	case PointLight:
		return record("Point",
			field("color", colorTuple("", l.Color)),
			field("intensity", f32(l.Intensity)),
			field("radius", f32(l.Radius)),
			field("smoothness", f32(l.Smoothness)),
		)
	case DirectionalLight:
		return record("Directional",
			field("color", colorTuple("", l.Color)),
			field("direction", vec3(l.Direction)),
			field("intensity", f32(l.Intensity)),
		)
	case SpotLight:
		return record("Spot",
			field("angle", f32(l.Angle)),
			field("color", colorTuple("", l.Color)),
			field("direction", vec3(l.Direction)),
			field("intensity", f32(l.Intensity)),
			field("range", f32(l.Range)),
			field("smoothness", f32(l.Smoothness)),
		)
	case SunLight:
		return record("Sun",
			field("angle", f32(l.Angle)),
			field("color", colorTuple("", l.Color)),
			field("direction", vec3(l.Direction)),
			field("intensity", f32(l.Intensity)),
		)
	default:
		panic(fmt.Sprintf("prefab: unknown light source type %T", src))
	}
}

func encodeCamera(cam Camera) ron.Value {
	switch c := cam.(type) {
	case Perspective:
		return record("Perspective",
			field("aspect", f32(c.Aspect)),
			field("fovy", f32(c.Fovy)),
			field("znear", f32(c.Znear)),
			field("zfar", f32(c.Zfar)),
		)
	case Orthographic:
		return record("Orthographic",
			field("left", f32(c.Left)),
			field("right", f32(c.Right)),
			field("bottom", f32(c.Bottom)),
			field("top", f32(c.Top)),
			field("znear", f32(c.Znear)),
			field("zfar", f32(c.Zfar)),
		)
	default:
		panic(fmt.Sprintf("prefab: unknown camera type %T", cam))
	}
}

func record(tag string, fields ...ron.Field) ron.Value {
	return ron.Value{Kind: ron.KindRecord, Tag: tag, Fields: fields}
}

func field(name string, v ron.Value) ron.Field {
	return ron.Field{Name: name, Value: v}
}

func tuple(tag string, items ...ron.Value) ron.Value {
	return ron.Value{Kind: ron.KindTuple, Tag: tag, Items: items}
}

func some(v ron.Value) ron.Value {
	return tuple("Some", v)
}

func unit(tag string) ron.Value {
	return ron.Value{Kind: ron.KindUnit, Tag: tag}
}

func str(s string) ron.Value {
	return ron.Value{Kind: ron.KindString, Str: s}
}

func integer(i int) ron.Value {
	return ron.Value{Kind: ron.KindInt, Int: int64(i)}
}

// f32 widens a float32 through its shortest decimal form, so the
// printed literal is short and converts back to the identical
// float32.
func f32(v float32) ron.Value {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	return ron.Value{Kind: ron.KindFloat, Float: f}
}

func vec3(v mgl32.Vec3) ron.Value {
	return tuple("", f32(v.X()), f32(v.Y()), f32(v.Z()))
}

// quat writes a quaternion in (x, y, z, w) wire order.
func quat(q mgl32.Quat) ron.Value {
	return tuple("", f32(q.X()), f32(q.Y()), f32(q.Z()), f32(q.W))
}

func colorTuple(tag string, c Color) ron.Value {
	return ron.Value{Kind: ron.KindTuple, Tag: tag,
		Items: []ron.Value{f32(c.R), f32(c.G), f32(c.B), f32(c.A)}}
}
