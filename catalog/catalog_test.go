package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prefabkit/prefab"
)

const testManifest = `version: 1
defaults:
  implicit_optional: true
scenes:
  - name: demo
    path: scenes/demo.ron
  - name: strict-demo
    path: scenes/demo.ron
    options:
      strict_fields: true
`

const testScene = `Prefab(
    entities: [
        (data: (transform: (translation: (1.0, 2.0, 3.0)))),
    ],
)
`

// writeCatalog lays out a catalog file plus its scene documents in a
// temporary directory.
func writeCatalog(t *testing.T, manifest, scene string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scenes"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scenes", "demo.ron"), []byte(scene), 0o644); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(dir, "catalog.yaml")
}

func TestOpenAndLoadScene(t *testing.T) {
	path := writeCatalog(t, testManifest, testScene)
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if got := c.Names(); len(got) != 2 || got[0] != "demo" || got[1] != "strict-demo" {
		t.Errorf("Names() = %v", got)
	}

	scene, err := c.LoadScene("demo")
	if err != nil {
		t.Fatalf("LoadScene() error: %v", err)
	}
	if len(scene.Entities) != 1 || scene.Entities[0].Transform == nil {
		t.Errorf("loaded scene = %+v", scene)
	}
}

func TestLoadSceneUnknownName(t *testing.T) {
	path := writeCatalog(t, testManifest, testScene)
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, err := c.LoadScene("nope"); err == nil {
		t.Error("LoadScene(nope) succeeded, want error")
	}
}

func TestEffectiveOptionsOverlay(t *testing.T) {
	path := writeCatalog(t, testManifest, testScene)
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	e, ok := c.Entry("strict-demo")
	if !ok {
		t.Fatal("Entry(strict-demo) not found")
	}
	opts, err := c.EffectiveOptions(e)
	if err != nil {
		t.Fatalf("EffectiveOptions() error: %v", err)
	}
	// Inherited from defaults.
	if opts.ImplicitOptional == nil || !*opts.ImplicitOptional {
		t.Error("implicit_optional not inherited from defaults")
	}
	// Set by the entry.
	if opts.StrictFields == nil || !*opts.StrictFields {
		t.Error("strict_fields not taken from entry")
	}
	if opts.FailFast != nil {
		t.Error("fail_fast set, want unset")
	}
}

func TestStrictEntryRejectsUnknownField(t *testing.T) {
	scene := `Prefab(
    entities: [
        (data: (transform: (translation: (1.0, 2.0, 3.0), wobble: 1.0))),
    ],
)
`
	path := writeCatalog(t, testManifest, scene)
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	// The lax entry skips the unknown field.
	if _, err := c.LoadScene("demo"); err != nil {
		t.Errorf("LoadScene(demo) error: %v", err)
	}

	// The strict entry rejects it, and keeps the inherited
	// implicit_optional so the bare transform still parses.
	_, err = c.LoadScene("strict-demo")
	var serr *prefab.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("LoadScene(strict-demo) error = %v, want *prefab.SyntaxError", err)
	}
	if !strings.Contains(serr.Msg, "wobble") {
		t.Errorf("error %q does not name the unknown field", serr.Msg)
	}
}

func TestParseVersionGate(t *testing.T) {
	_, err := Parse([]byte("version: 2\nscenes: []\n"), "")
	if err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("Parse() error = %v, want version mismatch", err)
	}
}

func TestParseRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"missing name", "version: 1\nscenes:\n  - path: a.ron\n"},
		{"missing path", "version: 1\nscenes:\n  - name: a\n"},
		{"duplicate name", "version: 1\nscenes:\n  - name: a\n    path: a.ron\n  - name: a\n    path: b.ron\n"},
		{"not yaml", "version: [1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.manifest), ""); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.manifest)
			}
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Open() succeeded for a missing file")
	}
}
