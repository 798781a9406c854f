// Package format classifies the external asset references a scene
// names: texture and mesh file kinds by extension, and image probing
// for decodable texture files.
package format

import (
	"fmt"
	"image"
	"io"
	"path"
	"strings"

	// Registered image decoders for Probe.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureKind is a recognized texture file format.
type TextureKind uint8

const (
	TexturePNG TextureKind = iota
	TextureJPEG
	TextureGIF
	TextureBMP
	TextureTIFF
	TextureWebP
)

// String returns the conventional short name of the kind.
func (k TextureKind) String() string {
	switch k {
	case TexturePNG:
		return "png"
	case TextureJPEG:
		return "jpeg"
	case TextureGIF:
		return "gif"
	case TextureBMP:
		return "bmp"
	case TextureTIFF:
		return "tiff"
	case TextureWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// MeshKind is a recognized mesh file format.
type MeshKind uint8

const (
	MeshOBJ MeshKind = iota
	MeshGLTF
	MeshGLB
)

// String returns the conventional short name of the kind.
func (k MeshKind) String() string {
	switch k {
	case MeshOBJ:
		return "obj"
	case MeshGLTF:
		return "gltf"
	case MeshGLB:
		return "glb"
	default:
		return "unknown"
	}
}

// TextureKindForPath classifies a texture reference by extension.
func TextureKindForPath(p string) (TextureKind, bool) {
	switch strings.ToLower(path.Ext(p)) {
	case ".png":
		return TexturePNG, true
	case ".jpg", ".jpeg":
		return TextureJPEG, true
	case ".gif":
		return TextureGIF, true
	case ".bmp":
		return TextureBMP, true
	case ".tif", ".tiff":
		return TextureTIFF, true
	case ".webp":
		return TextureWebP, true
	}
	return 0, false
}

// MeshKindForPath classifies a mesh reference by extension.
func MeshKindForPath(p string) (MeshKind, bool) {
	switch strings.ToLower(path.Ext(p)) {
	case ".obj":
		return MeshOBJ, true
	case ".gltf":
		return MeshGLTF, true
	case ".glb":
		return MeshGLB, true
	}
	return 0, false
}

// ImageInfo describes a probed image.
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// Probe reads just enough of an image stream to report its format
// and dimensions. The PNG, JPEG, GIF, BMP, TIFF, and WebP decoders
// are registered.
func Probe(r io.Reader) (ImageInfo, error) {
	cfg, name, err := image.DecodeConfig(r)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("format: probing image: %w", err)
	}
	return ImageInfo{Format: name, Width: cfg.Width, Height: cfg.Height}, nil
}
