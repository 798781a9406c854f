package prefab

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/prefabkit/prefab/ron"
)

// decoder turns a parsed document tree into a typed Scene. Structural
// problems (wrong shapes, unknown tags, missing required fields)
// abort decoding immediately; range violations accumulate in check
// and are reported by Load after the parse completes cleanly.
type decoder struct {
	opts     loadOptions
	implicit bool
	check    checker
}

func (d *decoder) decodeScene(root *ron.Value) (*Scene, error) {
	if root.Kind != ron.KindRecord {
		return nil, &SyntaxError{Pos: root.Pos, Msg: "document root must be a Prefab record"}
	}
	if root.Tag != "Prefab" {
		if root.Tag == "" {
			return nil, &SyntaxError{Pos: root.Pos, Msg: "document root must be tagged Prefab"}
		}
		return nil, &UnknownVariantError{Path: "", Tag: root.Tag, Pos: root.Pos}
	}
	if err := d.checkFields(root, "", "entities"); err != nil {
		return nil, err
	}
	ents := root.Field("entities")
	if ents == nil {
		return nil, &MissingFieldError{Path: "", Field: "entities", Pos: root.Pos}
	}
	if ents.Value.Kind != ron.KindSeq {
		return nil, &SyntaxError{Pos: ents.Value.Pos,
			Msg: fmt.Sprintf("entities: expected a sequence, found %s", ents.Value.Kind)}
	}

	scene := &Scene{}
	for i := range ents.Value.Items {
		path := fmt.Sprintf("entities[%d]", i)
		e, err := d.decodeEntity(&ents.Value.Items[i], path)
		if err != nil {
			return nil, err
		}
		scene.Entities = append(scene.Entities, e)
	}
	return scene, nil
}

func (d *decoder) decodeEntity(v *ron.Value, path string) (Entity, error) {
	rec, err := d.record(v, path)
	if err != nil {
		return Entity{}, err
	}
	if err := d.checkFields(rec, path, "data"); err != nil {
		return Entity{}, err
	}

	data, err := d.optionalField(rec, "data", path)
	if err != nil {
		return Entity{}, err
	}
	if data == nil {
		return Entity{}, nil
	}
	rec, err = d.record(data, path+".data")
	if err != nil {
		return Entity{}, err
	}
	if err := d.checkFields(rec, path, "graphics", "transform", "light", "camera"); err != nil {
		return Entity{}, err
	}

	var e Entity
	if gv, err := d.optionalField(rec, "graphics", path); err != nil {
		return Entity{}, err
	} else if gv != nil {
		g, err := d.decodeGraphics(gv, path+".graphics")
		if err != nil {
			return Entity{}, err
		}
		e.Graphics = &g
	}
	if tv, err := d.optionalField(rec, "transform", path); err != nil {
		return Entity{}, err
	} else if tv != nil {
		tr, err := d.decodeTransform(tv, path+".transform")
		if err != nil {
			return Entity{}, err
		}
		e.Transform = &tr
	}
	if lv, err := d.optionalField(rec, "light", path); err != nil {
		return Entity{}, err
	} else if lv != nil {
		l, err := d.decodeLight(lv, path+".light")
		if err != nil {
			return Entity{}, err
		}
		e.Light = &l
	}
	if cv, err := d.optionalField(rec, "camera", path); err != nil {
		return Entity{}, err
	} else if cv != nil {
		cam, err := d.decodeCamera(cv, path+".camera")
		if err != nil {
			return Entity{}, err
		}
		e.Camera = cam
	}
	return e, nil
}

func (d *decoder) decodeGraphics(v *ron.Value, path string) (Graphics, error) {
	rec, err := d.record(v, path)
	if err != nil {
		return Graphics{}, err
	}
	if err := d.checkFields(rec, path, "mesh", "material"); err != nil {
		return Graphics{}, err
	}

	mf := rec.Field("mesh")
	if mf == nil {
		return Graphics{}, &MissingFieldError{Path: path, Field: "mesh", Pos: rec.Pos}
	}
	mesh, err := d.decodeMesh(&mf.Value, path+".mesh")
	if err != nil {
		return Graphics{}, err
	}

	material := defaultMaterial()
	if f := rec.Field("material"); f != nil {
		material, err = d.decodeMaterial(&f.Value, path+".material")
		if err != nil {
			return Graphics{}, err
		}
	}
	return Graphics{Mesh: mesh, Material: material}, nil
}

func (d *decoder) decodeMesh(v *ron.Value, path string) (Mesh, error) {
	switch v.Tag {
	case "Shape":
		if v.Kind != ron.KindTuple || len(v.Items) != 1 {
			return nil, &SyntaxError{Pos: v.Pos,
				Msg: fmt.Sprintf("%s: Shape takes exactly one shape value", path)}
		}
		shape, err := d.decodeShape(&v.Items[0], path)
		if err != nil {
			return nil, err
		}
		return ShapeMesh{Shape: shape}, nil
	case "File":
		if v.Kind != ron.KindTuple || len(v.Items) != 2 {
			return nil, &SyntaxError{Pos: v.Pos,
				Msg: fmt.Sprintf("%s: File takes a path and a format", path)}
		}
		p, err := d.stringValue(&v.Items[0], path)
		if err != nil {
			return nil, err
		}
		fv := &v.Items[1]
		if fv.Kind != ron.KindUnit {
			return nil, &SyntaxError{Pos: fv.Pos,
				Msg: fmt.Sprintf("%s: expected a format tag, found %s", path, fv.Kind)}
		}
		var format MeshFormat
		switch fv.Tag {
		case "Obj":
			format = MeshObj
		case "Gltf":
			format = MeshGltf
		default:
			return nil, &UnknownVariantError{Path: path, Tag: fv.Tag, Pos: fv.Pos}
		}
		return MeshFile{Path: p, Format: format}, nil
	case "":
		return nil, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected a mesh variant (Shape or File)", path)}
	default:
		return nil, &UnknownVariantError{Path: path, Tag: v.Tag, Pos: v.Pos}
	}
}

func (d *decoder) decodeShape(v *ron.Value, path string) (Shape, error) {
	payload, err := d.variantTuple(v, path)
	if err != nil {
		return nil, err
	}
	switch v.Tag {
	case "Cube":
		if len(payload) != 0 {
			return nil, &SyntaxError{Pos: v.Pos, Msg: fmt.Sprintf("%s: Cube takes no payload", path)}
		}
		return CubeShape{}, nil
	case "Sphere":
		if len(payload) != 2 {
			return nil, &SyntaxError{Pos: v.Pos,
				Msg: fmt.Sprintf("%s: Sphere takes (rings, slices)", path)}
		}
		rings, err := d.intValue(&payload[0], path)
		if err != nil {
			return nil, err
		}
		slc, err := d.intValue(&payload[1], path)
		if err != nil {
			return nil, err
		}
		sh := SphereShape{Rings: rings, Slices: slc}
		d.check.shape(sh, path, v.Pos)
		return sh, nil
	case "Plane":
		var sh PlaneShape
		switch len(payload) {
		case 0:
		case 1:
			div, err := d.optionalValue(&payload[0], path)
			if err != nil {
				return nil, err
			}
			if div != nil {
				xy, err := d.intPair(div, path)
				if err != nil {
					return nil, err
				}
				sh.Divisions = &xy
			}
		default:
			return nil, &SyntaxError{Pos: v.Pos,
				Msg: fmt.Sprintf("%s: Plane takes at most one divisions value", path)}
		}
		d.check.shape(sh, path, v.Pos)
		return sh, nil
	case "Cylinder":
		if len(payload) < 1 || len(payload) > 2 {
			return nil, &SyntaxError{Pos: v.Pos,
				Msg: fmt.Sprintf("%s: Cylinder takes (segments) or (segments, rings)", path)}
		}
		segments, err := d.intValue(&payload[0], path)
		if err != nil {
			return nil, err
		}
		sh := CylinderShape{Segments: segments}
		if len(payload) == 2 {
			rv, err := d.optionalValue(&payload[1], path)
			if err != nil {
				return nil, err
			}
			if rv != nil {
				rings, err := d.intValue(rv, path)
				if err != nil {
					return nil, err
				}
				sh.Rings = &rings
			}
		}
		d.check.shape(sh, path, v.Pos)
		return sh, nil
	case "Cone", "Circle":
		if len(payload) != 1 {
			return nil, &SyntaxError{Pos: v.Pos,
				Msg: fmt.Sprintf("%s: %s takes (subdivisions)", path, v.Tag)}
		}
		n, err := d.intValue(&payload[0], path)
		if err != nil {
			return nil, err
		}
		var sh Shape
		if v.Tag == "Cone" {
			sh = ConeShape{Subdivisions: n}
		} else {
			sh = CircleShape{Subdivisions: n}
		}
		d.check.shape(sh, path, v.Pos)
		return sh, nil
	case "IcoSphere":
		var sh IcoSphereShape
		switch len(payload) {
		case 0:
		case 1:
			sv, err := d.optionalValue(&payload[0], path)
			if err != nil {
				return nil, err
			}
			if sv != nil {
				n, err := d.intValue(sv, path)
				if err != nil {
					return nil, err
				}
				sh.Subdivisions = &n
			}
		default:
			return nil, &SyntaxError{Pos: v.Pos,
				Msg: fmt.Sprintf("%s: IcoSphere takes at most one subdivisions value", path)}
		}
		d.check.shape(sh, path, v.Pos)
		return sh, nil
	case "":
		return nil, &SyntaxError{Pos: v.Pos, Msg: fmt.Sprintf("%s: expected a shape variant", path)}
	default:
		return nil, &UnknownVariantError{Path: path, Tag: v.Tag, Pos: v.Pos}
	}
}

func (d *decoder) decodeMaterial(v *ron.Value, path string) (Material, error) {
	switch v.Tag {
	case "Srgba", "LinSrgba":
		col, err := d.colorValue(v, path)
		if err != nil {
			return nil, err
		}
		space := ColorSpaceSRGB
		if v.Tag == "LinSrgba" {
			space = ColorSpaceLinear
		}
		m := SolidMaterial{Color: col, Space: space}
		d.check.material(m, path, v.Pos)
		return m, nil
	case "Texture":
		if v.Kind != ron.KindTuple || len(v.Items) != 1 {
			return nil, &SyntaxError{Pos: v.Pos,
				Msg: fmt.Sprintf("%s: Texture takes a path string", path)}
		}
		p, err := d.stringValue(&v.Items[0], path)
		if err != nil {
			return nil, err
		}
		return TextureMaterial{Path: p}, nil
	case "":
		return nil, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected a material variant (Srgba, LinSrgba, or Texture)", path)}
	default:
		return nil, &UnknownVariantError{Path: path, Tag: v.Tag, Pos: v.Pos}
	}
}

func (d *decoder) decodeTransform(v *ron.Value, path string) (Transform, error) {
	rec, err := d.record(v, path)
	if err != nil {
		return Transform{}, err
	}
	if err := d.checkFields(rec, path, "translation", "rotation", "scale"); err != nil {
		return Transform{}, err
	}

	tr := DefaultTransform()
	if f := rec.Field("translation"); f != nil {
		tr.Translation, err = d.vec3Value(&f.Value, path+".translation")
		if err != nil {
			return Transform{}, err
		}
	}
	if f := rec.Field("rotation"); f != nil {
		tr.Rotation, err = d.quatValue(&f.Value, path+".rotation")
		if err != nil {
			return Transform{}, err
		}
	}
	if f := rec.Field("scale"); f != nil {
		tr.Scale, err = d.vec3Value(&f.Value, path+".scale")
		if err != nil {
			return Transform{}, err
		}
	}
	return tr, nil
}

func (d *decoder) decodeLight(v *ron.Value, path string) (Light, error) {
	rec, err := d.record(v, path)
	if err != nil {
		return Light{}, err
	}
	if err := d.checkFields(rec, path, "ambient_color", "light"); err != nil {
		return Light{}, err
	}

	var l Light
	if av, err := d.optionalField(rec, "ambient_color", path); err != nil {
		return Light{}, err
	} else if av != nil {
		col, err := d.colorValue(av, path+".ambient_color")
		if err != nil {
			return Light{}, err
		}
		d.check.hdrColor(col, path+".ambient_color", av.Pos)
		l.AmbientColor = &col
	}
	if sv, err := d.optionalField(rec, "light", path); err != nil {
		return Light{}, err
	} else if sv != nil {
		src, err := d.decodeLightSource(sv, path+".light")
		if err != nil {
			return Light{}, err
		}
		l.Source = src
	}
	return l, nil
}

func (d *decoder) decodeLightSource(v *ron.Value, path string) (LightSource, error) {
	switch v.Tag {
	case "Point", "Directional", "Spot", "Sun":
	case "":
		return nil, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected a light variant", path)}
	default:
		return nil, &UnknownVariantError{Path: path, Tag: v.Tag, Pos: v.Pos}
	}

	rec, err := d.variantRecord(v, path)
	if err != nil {
		return nil, err
	}
	at := fieldPos(rec, v.Pos)

	switch v.Tag {
	case "Point":
		if err := d.checkFields(rec, path, "color", "intensity", "radius", "smoothness"); err != nil {
			return nil, err
		}
		l := PointLight{Color: White, Intensity: 1, Radius: 1}
		if err := d.lightFields(rec, path, []scalarField{
			{"intensity", &l.Intensity}, {"radius", &l.Radius}, {"smoothness", &l.Smoothness},
		}, &l.Color, nil); err != nil {
			return nil, err
		}
		d.check.source(l, path, at)
		return l, nil
	case "Directional":
		if err := d.checkFields(rec, path, "color", "direction", "intensity"); err != nil {
			return nil, err
		}
		l := DirectionalLight{Color: White, Direction: mgl32.Vec3{0, -1, 0}, Intensity: 1}
		if err := d.lightFields(rec, path, []scalarField{
			{"intensity", &l.Intensity},
		}, &l.Color, &l.Direction); err != nil {
			return nil, err
		}
		d.check.source(l, path, at)
		return l, nil
	case "Spot":
		if err := d.checkFields(rec, path, "angle", "color", "direction", "intensity", "range", "smoothness"); err != nil {
			return nil, err
		}
		l := SpotLight{
			Angle:     45,
			Color:     White,
			Direction: mgl32.Vec3{0, -1, 0},
			Intensity: 1,
			Range:     10,
		}
		if err := d.lightFields(rec, path, []scalarField{
			{"angle", &l.Angle}, {"intensity", &l.Intensity},
			{"range", &l.Range}, {"smoothness", &l.Smoothness},
		}, &l.Color, &l.Direction); err != nil {
			return nil, err
		}
		d.check.source(l, path, at)
		return l, nil
	default: // Sun
		if err := d.checkFields(rec, path, "angle", "color", "direction", "intensity"); err != nil {
			return nil, err
		}
		l := SunLight{
			Angle:     0.53,
			Color:     White,
			Direction: mgl32.Vec3{0, -1, 0},
			Intensity: 1,
		}
		if err := d.lightFields(rec, path, []scalarField{
			{"angle", &l.Angle}, {"intensity", &l.Intensity},
		}, &l.Color, &l.Direction); err != nil {
			return nil, err
		}
		d.check.source(l, path, at)
		return l, nil
	}
}

// scalarField binds a wire field name to its destination.
type scalarField struct {
	name string
	dst  *float32
}

// lightFields fills the scalar, color, and direction fields shared by
// the light variants from a record payload.
func (d *decoder) lightFields(rec *ron.Value, path string, scalars []scalarField, color *Color, direction *mgl32.Vec3) error {
	for _, s := range scalars {
		f := rec.Field(s.name)
		if f == nil {
			continue
		}
		val, err := d.floatValue(&f.Value, path+"."+s.name)
		if err != nil {
			return err
		}
		*s.dst = val
	}
	if f := rec.Field("color"); f != nil {
		col, err := d.colorValue(&f.Value, path+".color")
		if err != nil {
			return err
		}
		*color = col
	}
	if direction != nil {
		if f := rec.Field("direction"); f != nil {
			dir, err := d.vec3Value(&f.Value, path+".direction")
			if err != nil {
				return err
			}
			*direction = dir
		}
	}
	return nil
}

func (d *decoder) decodeCamera(v *ron.Value, path string) (Camera, error) {
	switch v.Tag {
	case "Perspective", "Orthographic":
	case "":
		return nil, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected a camera variant (Perspective or Orthographic)", path)}
	default:
		return nil, &UnknownVariantError{Path: path, Tag: v.Tag, Pos: v.Pos}
	}

	rec, err := d.variantRecord(v, path)
	if err != nil {
		return nil, err
	}
	at := fieldPos(rec, v.Pos)

	// Projection fields have no defaults: every field is required.
	required := func(name string, dst *float32) error {
		f := rec.Field(name)
		if f == nil {
			return &MissingFieldError{Path: path, Field: name, Pos: v.Pos}
		}
		val, err := d.floatValue(&f.Value, path+"."+name)
		if err != nil {
			return err
		}
		*dst = val
		return nil
	}

	if v.Tag == "Perspective" {
		if err := d.checkFields(rec, path, "aspect", "fovy", "znear", "zfar"); err != nil {
			return nil, err
		}
		var c Perspective
		for _, f := range []struct {
			name string
			dst  *float32
		}{
			{"aspect", &c.Aspect}, {"fovy", &c.Fovy}, {"znear", &c.Znear}, {"zfar", &c.Zfar},
		} {
			if err := required(f.name, f.dst); err != nil {
				return nil, err
			}
		}
		d.check.camera(c, path, at)
		return c, nil
	}

	if err := d.checkFields(rec, path, "left", "right", "bottom", "top", "znear", "zfar"); err != nil {
		return nil, err
	}
	var c Orthographic
	for _, f := range []struct {
		name string
		dst  *float32
	}{
		{"left", &c.Left}, {"right", &c.Right}, {"bottom", &c.Bottom},
		{"top", &c.Top}, {"znear", &c.Znear}, {"zfar", &c.Zfar},
	} {
		if err := required(f.name, f.dst); err != nil {
			return nil, err
		}
	}
	d.check.camera(c, path, at)
	return c, nil
}

// optionalField resolves an optional record field. Omission always
// means absent; a present value must be Some(v) or None unless
// implicit-optional mode admits it bare. nil means absent.
func (d *decoder) optionalField(rec *ron.Value, name, path string) (*ron.Value, error) {
	f := rec.Field(name)
	if f == nil {
		return nil, nil
	}
	return d.optionalValue(&f.Value, path+"."+name)
}

// optionalValue resolves Some/None wrapping on an optional value.
// nil means None.
func (d *decoder) optionalValue(v *ron.Value, path string) (*ron.Value, error) {
	if v.IsNone() {
		return nil, nil
	}
	if inner, ok := v.Some(); ok {
		return inner, nil
	}
	if !d.implicit {
		return nil, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: optional value must be Some(...) or None (enable implicit_some for bare values)", path)}
	}
	return v, nil
}

// record requires an untagged record value. An empty tuple () is
// accepted as a record with no fields.
func (d *decoder) record(v *ron.Value, path string) (*ron.Value, error) {
	if v.Tag != "" {
		return nil, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: unexpected tag %q on record", path, v.Tag)}
	}
	return d.recordShape(v, path)
}

// variantRecord requires a tagged variant's payload to be a record.
// A payload-free variant is treated as a record with no fields, so
// Point() and Point both mean "all defaults".
func (d *decoder) variantRecord(v *ron.Value, path string) (*ron.Value, error) {
	if v.Kind == ron.KindUnit {
		return &ron.Value{Kind: ron.KindRecord, Pos: v.Pos}, nil
	}
	return d.recordShape(v, path)
}

func (d *decoder) recordShape(v *ron.Value, path string) (*ron.Value, error) {
	switch v.Kind {
	case ron.KindRecord:
		return v, nil
	case ron.KindTuple:
		if len(v.Items) == 0 {
			return v, nil
		}
	}
	return nil, &SyntaxError{Pos: v.Pos,
		Msg: fmt.Sprintf("%s: expected a record, found %s", pathOrRoot(path), v.Kind)}
}

// variantTuple requires a tagged value with a tuple (or empty)
// payload and returns the payload items.
func (d *decoder) variantTuple(v *ron.Value, path string) ([]ron.Value, error) {
	switch v.Kind {
	case ron.KindUnit:
		return nil, nil
	case ron.KindTuple:
		return v.Items, nil
	}
	return nil, &SyntaxError{Pos: v.Pos,
		Msg: fmt.Sprintf("%s: expected a tuple payload, found %s", path, v.Kind)}
}

// checkFields rejects duplicate fields and handles unknown ones:
// errors under WithStrictFields, otherwise skipped with a debug log.
func (d *decoder) checkFields(rec *ron.Value, path string, known ...string) error {
	seen := make(map[string]bool, len(rec.Fields))
	for i := range rec.Fields {
		f := &rec.Fields[i]
		if seen[f.Name] {
			return &SyntaxError{Pos: f.NamePos,
				Msg: fmt.Sprintf("%s: duplicate field %q", pathOrRoot(path), f.Name)}
		}
		seen[f.Name] = true
		if !slices.Contains(known, f.Name) {
			if d.opts.strictFields {
				return &SyntaxError{Pos: f.NamePos,
					Msg: fmt.Sprintf("%s: unknown field %q", pathOrRoot(path), f.Name)}
			}
			Logger().Debug("prefab: ignoring unknown field", "path", pathOrRoot(path), "field", f.Name)
		}
	}
	return nil
}

func (d *decoder) floatValue(v *ron.Value, path string) (float32, error) {
	f, ok := v.Number()
	if !ok {
		return 0, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected a number, found %s", path, v.Kind)}
	}
	return float32(f), nil
}

func (d *decoder) intValue(v *ron.Value, path string) (int, error) {
	if v.Kind != ron.KindInt {
		return 0, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected an integer, found %s", path, v.Kind)}
	}
	return int(v.Int), nil
}

// intPair reads an untagged tuple of two integers.
func (d *decoder) intPair(v *ron.Value, path string) ([2]int, error) {
	if v.Tag != "" || v.Kind != ron.KindTuple || len(v.Items) != 2 {
		return [2]int{}, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected a pair of integers", path)}
	}
	x, err := d.intValue(&v.Items[0], path)
	if err != nil {
		return [2]int{}, err
	}
	y, err := d.intValue(&v.Items[1], path)
	if err != nil {
		return [2]int{}, err
	}
	return [2]int{x, y}, nil
}

func (d *decoder) stringValue(v *ron.Value, path string) (string, error) {
	if v.Kind != ron.KindString {
		return "", &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected a string, found %s", path, v.Kind)}
	}
	return v.Str, nil
}

// floats requires a tuple of exactly n numbers. Tag acceptance is the
// caller's concern.
func (d *decoder) floats(v *ron.Value, path string, n int) ([]float32, error) {
	if v.Kind != ron.KindTuple || len(v.Items) != n {
		return nil, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: expected a tuple of %d numbers, found %s", path, n, v.Kind)}
	}
	out := make([]float32, n)
	for i := range v.Items {
		f, err := d.floatValue(&v.Items[i], path)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func (d *decoder) vec3Value(v *ron.Value, path string) (mgl32.Vec3, error) {
	if v.Tag != "" {
		return mgl32.Vec3{}, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: unexpected tag %q on vector", path, v.Tag)}
	}
	fs, err := d.floats(v, path, 3)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{fs[0], fs[1], fs[2]}, nil
}

// quatValue reads a quaternion in (x, y, z, w) wire order.
func (d *decoder) quatValue(v *ron.Value, path string) (mgl32.Quat, error) {
	if v.Tag != "" {
		return mgl32.Quat{}, &SyntaxError{Pos: v.Pos,
			Msg: fmt.Sprintf("%s: unexpected tag %q on quaternion", path, v.Tag)}
	}
	fs, err := d.floats(v, path, 4)
	if err != nil {
		return mgl32.Quat{}, err
	}
	return mgl32.Quat{W: fs[3], V: mgl32.Vec3{fs[0], fs[1], fs[2]}}, nil
}

// colorValue reads an (r, g, b, a) color. Bare tuples and the
// Srgba/LinSrgba tags are accepted; the caller interprets the space.
func (d *decoder) colorValue(v *ron.Value, path string) (Color, error) {
	switch v.Tag {
	case "", "Srgba", "LinSrgba":
	default:
		return Color{}, &UnknownVariantError{Path: path, Tag: v.Tag, Pos: v.Pos}
	}
	fs, err := d.floats(v, path, 4)
	if err != nil {
		return Color{}, err
	}
	return Color{fs[0], fs[1], fs[2], fs[3]}, nil
}

// fieldPos positions violations at the offending field's value,
// falling back to the payload position for defaulted fields.
func fieldPos(rec *ron.Value, def ron.Pos) posAt {
	return func(name string) ron.Pos {
		if f := rec.Field(name); f != nil {
			return f.Value.Pos
		}
		return def
	}
}
