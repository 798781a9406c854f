// Package catalog loads scene catalog manifests: YAML files naming a
// set of scene documents and the load options to apply to each.
//
// A catalog looks like:
//
//	version: 1
//	defaults:
//	  implicit_optional: true
//	scenes:
//	  - name: demo
//	    path: scenes/demo.ron
//	  - name: strict-demo
//	    path: scenes/demo.ron
//	    options:
//	      strict_fields: true
//	      fail_fast: true
//
// Paths are resolved relative to the catalog file. Per-scene options
// overlay the catalog defaults field by field; unset fields inherit.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"github.com/prefabkit/prefab"
)

// Version is the manifest schema version this package reads.
const Version = 1

// Options selects prefab load options for a catalog entry. Fields are
// pointers so that an entry can overlay only the fields it sets.
type Options struct {
	ImplicitOptional *bool `yaml:"implicit_optional"`
	FailFast         *bool `yaml:"fail_fast"`
	StrictFields     *bool `yaml:"strict_fields"`
}

// loadOptions converts the set fields to prefab load options.
func (o *Options) loadOptions() []prefab.LoadOption {
	var opts []prefab.LoadOption
	if o.ImplicitOptional != nil && *o.ImplicitOptional {
		opts = append(opts, prefab.WithImplicitOptional())
	}
	if o.FailFast != nil && *o.FailFast {
		opts = append(opts, prefab.WithFailFast())
	}
	if o.StrictFields != nil && *o.StrictFields {
		opts = append(opts, prefab.WithStrictFields())
	}
	return opts
}

// Entry is one named scene in a catalog.
type Entry struct {
	Name    string   `yaml:"name"`
	Path    string   `yaml:"path"`
	Options *Options `yaml:"options"`
}

// Catalog is a parsed manifest.
type Catalog struct {
	Version  int     `yaml:"version"`
	Defaults Options `yaml:"defaults"`
	Scenes   []Entry `yaml:"scenes"`

	dir string
}

// Open reads and parses a catalog file. Scene paths in the catalog
// resolve relative to the file's directory.
func Open(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse parses manifest bytes. dir is the directory scene paths
// resolve against.
func Parse(data []byte, dir string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parsing manifest: %w", err)
	}
	if c.Version != Version {
		return nil, fmt.Errorf("catalog: unsupported manifest version %d (want %d)", c.Version, Version)
	}
	seen := make(map[string]bool, len(c.Scenes))
	for i := range c.Scenes {
		e := &c.Scenes[i]
		if e.Name == "" {
			return nil, fmt.Errorf("catalog: scene %d has no name", i)
		}
		if e.Path == "" {
			return nil, fmt.Errorf("catalog: scene %q has no path", e.Name)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("catalog: duplicate scene name %q", e.Name)
		}
		seen[e.Name] = true
	}
	c.dir = dir
	return &c, nil
}

// Entry returns the named scene entry.
func (c *Catalog) Entry(name string) (*Entry, bool) {
	for i := range c.Scenes {
		if c.Scenes[i].Name == name {
			return &c.Scenes[i], true
		}
	}
	return nil, false
}

// Names returns the entry names in manifest order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Scenes))
	for i := range c.Scenes {
		names[i] = c.Scenes[i].Name
	}
	return names
}

// ScenePath returns the resolved filesystem path of the named entry.
func (c *Catalog) ScenePath(name string) (string, error) {
	e, ok := c.Entry(name)
	if !ok {
		return "", fmt.Errorf("catalog: no scene named %q", name)
	}
	return c.resolve(e.Path), nil
}

// LoadScene reads and loads the named scene with its effective
// options: the catalog defaults overlaid by the entry's own options.
func (c *Catalog) LoadScene(name string) (*prefab.Scene, error) {
	e, ok := c.Entry(name)
	if !ok {
		return nil, fmt.Errorf("catalog: no scene named %q", name)
	}
	opts, err := c.EffectiveOptions(e)
	if err != nil {
		return nil, err
	}
	path := c.resolve(e.Path)
	prefab.Logger().Debug("catalog: loading scene", "name", name, "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading scene %q: %w", name, err)
	}
	scene, err := prefab.LoadBytes(data, opts.loadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("catalog: scene %q: %w", name, err)
	}
	return scene, nil
}

// EffectiveOptions overlays the entry's options onto the catalog
// defaults. Fields the entry leaves unset keep the default.
func (c *Catalog) EffectiveOptions(e *Entry) (Options, error) {
	merged := Options{}
	if err := copier.CopyWithOption(&merged, &c.Defaults, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return Options{}, fmt.Errorf("catalog: copying default options: %w", err)
	}
	if e.Options != nil {
		if err := copier.CopyWithOption(&merged, e.Options, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
			return Options{}, fmt.Errorf("catalog: overlaying options for %q: %w", e.Name, err)
		}
	}
	return merged, nil
}

func (c *Catalog) resolve(p string) string {
	if filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}
