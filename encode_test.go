package prefab

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// buildScene assembles a scene covering every variant the format can
// express.
func buildScene() *Scene {
	divisions := [2]int{4, 4}
	rings := 3
	subdivisions := 2
	ambient := Color{0.01, 0.01, 0.01, 1}
	return &Scene{Entities: []Entity{
		{
			Graphics: &Graphics{
				Mesh:     ShapeMesh{Shape: PlaneShape{Divisions: &divisions}},
				Material: SolidMaterial{Color: Color{0.3, 0.4, 0.01, 1}, Space: ColorSpaceSRGB},
			},
			Transform: &Transform{
				Translation: mgl32.Vec3{0, -1, 0},
				Rotation:    mgl32.QuatIdent(),
				Scale:       mgl32.Vec3{10, 10, 10},
			},
		},
		{
			Graphics: &Graphics{
				Mesh:     ShapeMesh{Shape: SphereShape{Rings: 32, Slices: 16}},
				Material: SolidMaterial{Color: Color{2.5, 0.1, 0.1, 1}, Space: ColorSpaceLinear},
			},
			Transform: &Transform{
				Translation: mgl32.Vec3{-5, 2, -1.5},
				Rotation:    mgl32.Quat{W: 0, V: mgl32.Vec3{0, 1, 0}},
				Scale:       mgl32.Vec3{1, 1, 1},
			},
		},
		{
			Graphics: &Graphics{
				Mesh:     MeshFile{Path: "models/teapot.obj", Format: MeshObj},
				Material: TextureMaterial{Path: "textures/china.png"},
			},
		},
		{
			Graphics: &Graphics{
				Mesh:     ShapeMesh{Shape: CylinderShape{Segments: 24, Rings: &rings}},
				Material: SolidMaterial{Color: White, Space: ColorSpaceSRGB},
			},
		},
		{
			Graphics: &Graphics{
				Mesh:     ShapeMesh{Shape: IcoSphereShape{Subdivisions: &subdivisions}},
				Material: SolidMaterial{Color: White, Space: ColorSpaceSRGB},
			},
		},
		{
			Graphics: &Graphics{
				Mesh:     ShapeMesh{Shape: CubeShape{}},
				Material: SolidMaterial{Color: White, Space: ColorSpaceSRGB},
			},
		},
		{
			Light: &Light{
				AmbientColor: &ambient,
				Source: SpotLight{
					Angle:      60,
					Color:      Color{1, 0.9, 0.7, 1},
					Direction:  mgl32.Vec3{0, -1, 0.25},
					Intensity:  12.5,
					Range:      25,
					Smoothness: 0.25,
				},
			},
		},
		{Light: &Light{Source: PointLight{Color: White, Intensity: 6, Radius: 0.5, Smoothness: 0.1}}},
		{Light: &Light{Source: DirectionalLight{Color: White, Direction: mgl32.Vec3{0.3, -1, 0}, Intensity: 2}}},
		{Light: &Light{Source: SunLight{Angle: 0.53, Color: White, Direction: mgl32.Vec3{0, -1, 0}, Intensity: 32}}},
		{Camera: Perspective{Aspect: 1.3, Fovy: 1.047, Znear: 0.1, Zfar: 2000}},
		{Camera: Orthographic{Left: -10, Right: 10, Bottom: -10, Top: 10, Znear: 0.1, Zfar: 100}},
		{},
	}}
}

func TestMarshalRoundTrip(t *testing.T) {
	scene := buildScene()
	data, err := Marshal(scene)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	got, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes(Marshal()) error: %v\ndocument:\n%s", err, data)
	}
	if !reflect.DeepEqual(scene, got) {
		t.Errorf("round trip mismatch\nwant: %#v\ngot:  %#v\ndocument:\n%s", scene, got, data)
	}
}

func TestMarshalEnablesImplicitSome(t *testing.T) {
	data, err := Marshal(&Scene{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.HasPrefix(string(data), "#![enable(implicit_some)]") {
		t.Errorf("document does not start with the implicit_some directive:\n%s", data)
	}
}

func TestMarshalLoadedSceneReproduces(t *testing.T) {
	first, err := Load(demoScene)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	data, err := Marshal(first)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	second, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reloaded scene differs\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestMarshalRejectsInvalidScene(t *testing.T) {
	scene := &Scene{Entities: []Entity{
		{Light: &Light{Source: SpotLight{
			Angle: 200, Color: White, Direction: mgl32.Vec3{0, -1, 0},
			Intensity: 1, Range: 10,
		}}},
	}}
	_, err := Marshal(scene)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Marshal() error = %v, want *ValidationError", err)
	}
}

func TestMarshalRejectsNilMesh(t *testing.T) {
	scene := &Scene{Entities: []Entity{{Graphics: &Graphics{}}}}
	_, err := Marshal(scene)
	var merr *MissingFieldError
	if !errors.As(err, &merr) {
		t.Fatalf("Marshal() error = %v, want *MissingFieldError", err)
	}
}
