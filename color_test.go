package prefab

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxEq(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestColorToLinear(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"low segment", 0.04, 0.04 / 12.92},
		{"mid gray", 0.5, 0.2140},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Color{tt.in, tt.in, tt.in, 1}.ToLinear()
			if !approxEq(got.R, tt.want) {
				t.Errorf("ToLinear(%v) = %v, want %v", tt.in, got.R, tt.want)
			}
			if got.A != 1 {
				t.Errorf("alpha changed: %v", got.A)
			}
		})
	}
}

func TestColorRoundTripSRGB(t *testing.T) {
	for _, v := range []float32{0, 0.01, 0.25, 0.5, 0.75, 1} {
		c := Color{v, v, v, 1}
		back := c.ToLinear().ToSRGB()
		if !approxEq(back.R, v) {
			t.Errorf("ToSRGB(ToLinear(%v)) = %v", v, back.R)
		}
	}
}

func TestColorPremultiplied(t *testing.T) {
	c := Color{1, 0.5, 0.25, 0.5}.Premultiplied()
	want := Color{0.5, 0.25, 0.125, 0.5}
	if c != want {
		t.Errorf("Premultiplied() = %v, want %v", c, want)
	}
}

func TestColorScaled(t *testing.T) {
	c := Color{1, 0.5, 0.25, 1}.Scaled(2)
	want := Color{2, 1, 0.5, 1}
	if c != want {
		t.Errorf("Scaled(2) = %v, want %v", c, want)
	}
}

func TestColorVec4(t *testing.T) {
	v := Color{0.1, 0.2, 0.3, 0.4}.Vec4()
	if v.X() != 0.1 || v.Y() != 0.2 || v.Z() != 0.3 || v.W() != 0.4 {
		t.Errorf("Vec4() = %v", v)
	}
}

func TestSolidMaterialLinear(t *testing.T) {
	srgb := SolidMaterial{Color: Color{0.5, 0.5, 0.5, 1}, Space: ColorSpaceSRGB}
	if got := srgb.Linear(); !approxEq(got.R, 0.2140) {
		t.Errorf("sRGB material Linear() = %v", got.R)
	}
	lin := SolidMaterial{Color: Color{0.5, 0.5, 0.5, 1}, Space: ColorSpaceLinear}
	if got := lin.Linear(); got != lin.Color {
		t.Errorf("linear material Linear() = %v, want unchanged", got)
	}
}
