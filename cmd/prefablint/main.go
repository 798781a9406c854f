// Command prefablint validates scene description files and catalog
// manifests, reporting every problem with its source position.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prefabkit/prefab"
	"github.com/prefabkit/prefab/catalog"
	"github.com/prefabkit/prefab/format"
)

func main() {
	var (
		implicit    = flag.Bool("implicit", false, "enable implicit-optional mode")
		failFast    = flag.Bool("failfast", false, "stop at the first validation violation")
		strict      = flag.Bool("strict", false, "reject unknown record fields")
		catalogPath = flag.String("catalog", "", "validate every entry of a catalog manifest")
		assets      = flag.String("assets", "", "verify mesh/texture references against this directory")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		prefab.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []prefab.LoadOption
	if *implicit {
		opts = append(opts, prefab.WithImplicitOptional())
	}
	if *failFast {
		opts = append(opts, prefab.WithFailFast())
	}
	if *strict {
		opts = append(opts, prefab.WithStrictFields())
	}

	failed := false
	if *catalogPath != "" {
		failed = !lintCatalog(*catalogPath, *assets)
	}
	for _, path := range flag.Args() {
		if !lintFile(path, opts, *assets) {
			failed = true
		}
	}
	if *catalogPath == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: prefablint [flags] scene.ron ...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if failed {
		os.Exit(1)
	}
}

func lintFile(path string, opts []prefab.LoadOption, assets string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}
	scene, err := prefab.LoadBytes(data, opts...)
	if err != nil {
		report(path, err)
		return false
	}
	if assets != "" {
		return checkAssets(path, scene, assets)
	}
	return true
}

func lintCatalog(path, assets string) bool {
	c, err := catalog.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}
	ok := true
	for _, name := range c.Names() {
		scene, err := c.LoadScene(name)
		if err != nil {
			scenePath, perr := c.ScenePath(name)
			if perr != nil {
				scenePath = path
			}
			report(scenePath, err)
			ok = false
			continue
		}
		if assets != "" {
			scenePath, _ := c.ScenePath(name)
			if !checkAssets(scenePath, scene, assets) {
				ok = false
			}
		}
	}
	return ok
}

// report prints one line per finding, with line:col positions where
// the error carries them.
func report(path string, err error) {
	var verr *prefab.ValidationError
	if errors.As(err, &verr) {
		for _, v := range verr.Violations {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s (got %s)\n",
				path, v.Pos.Line, v.Pos.Col, v.Path, v.Constraint, v.Value)
		}
		return
	}
	var serr *prefab.SyntaxError
	if errors.As(err, &serr) {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, serr.Pos.Line, serr.Pos.Col, serr.Msg)
		return
	}
	var uerr *prefab.UnknownVariantError
	if errors.As(err, &uerr) {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %v\n", path, uerr.Pos.Line, uerr.Pos.Col, uerr)
		return
	}
	var merr *prefab.MissingFieldError
	if errors.As(err, &merr) {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %v\n", path, merr.Pos.Line, merr.Pos.Col, merr)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
}

// checkAssets verifies that every mesh and texture reference resolves
// to a real file of a recognized, decodable format.
func checkAssets(scenePath string, scene *prefab.Scene, dir string) bool {
	ok := true
	for _, ref := range scene.TextureRefs() {
		if _, known := format.TextureKindForPath(ref); !known {
			fmt.Fprintf(os.Stderr, "%s: texture %q: unrecognized format\n", scenePath, ref)
			ok = false
			continue
		}
		full := filepath.Join(dir, filepath.FromSlash(ref))
		f, err := os.Open(full)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: texture %q: %v\n", scenePath, ref, err)
			ok = false
			continue
		}
		info, err := format.Probe(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: texture %q: %v\n", scenePath, ref, err)
			ok = false
			continue
		}
		prefab.Logger().Debug("prefablint: texture ok", "ref", ref,
			"format", info.Format, "width", info.Width, "height", info.Height)
	}
	for _, ref := range scene.MeshRefs() {
		if _, known := format.MeshKindForPath(ref); !known {
			fmt.Fprintf(os.Stderr, "%s: mesh %q: unrecognized format\n", scenePath, ref)
			ok = false
			continue
		}
		full := filepath.Join(dir, filepath.FromSlash(ref))
		if _, err := os.Stat(full); err != nil {
			fmt.Fprintf(os.Stderr, "%s: mesh %q: %v\n", scenePath, ref, err)
			ok = false
		}
	}
	return ok
}
