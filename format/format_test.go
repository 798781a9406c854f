package format

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
)

func TestTextureKindForPath(t *testing.T) {
	tests := []struct {
		path string
		kind TextureKind
		ok   bool
	}{
		{"textures/crate.png", TexturePNG, true},
		{"photo.JPG", TextureJPEG, true},
		{"photo.jpeg", TextureJPEG, true},
		{"anim.gif", TextureGIF, true},
		{"old.bmp", TextureBMP, true},
		{"scan.tiff", TextureTIFF, true},
		{"scan.tif", TextureTIFF, true},
		{"web.webp", TextureWebP, true},
		{"mesh.obj", 0, false},
		{"noext", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := TextureKindForPath(tt.path)
			if ok != tt.ok {
				t.Fatalf("TextureKindForPath(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && kind != tt.kind {
				t.Errorf("kind = %v, want %v", kind, tt.kind)
			}
		})
	}
}

func TestMeshKindForPath(t *testing.T) {
	tests := []struct {
		path string
		kind MeshKind
		ok   bool
	}{
		{"models/teapot.obj", MeshOBJ, true},
		{"models/scene.gltf", MeshGLTF, true},
		{"models/packed.GLB", MeshGLB, true},
		{"texture.png", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := MeshKindForPath(tt.path)
			if ok != tt.ok {
				t.Fatalf("MeshKindForPath(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && kind != tt.kind {
				t.Errorf("kind = %v, want %v", kind, tt.kind)
			}
		})
	}
}

func TestProbePNG(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	info, err := Probe(&buf)
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if info.Format != "png" || info.Width != 16 || info.Height != 8 {
		t.Errorf("Probe() = %+v, want png 16x8", info)
	}
}

func TestProbeGarbage(t *testing.T) {
	if _, err := Probe(strings.NewReader("not an image")); err == nil {
		t.Error("Probe() succeeded on garbage input")
	}
}

func TestKindStrings(t *testing.T) {
	if TexturePNG.String() != "png" || TextureWebP.String() != "webp" {
		t.Error("TextureKind.String() mismatch")
	}
	if MeshOBJ.String() != "obj" || MeshGLB.String() != "glb" {
		t.Error("MeshKind.String() mismatch")
	}
}
