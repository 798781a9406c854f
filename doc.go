// Package prefab loads typed scene descriptions from a human-editable
// textual format.
//
// # Overview
//
// A scene document describes an ordered list of entities, each with
// optional graphics, transform, light, and camera components. Loading
// parses the text, fills documented defaults for omitted fields,
// validates every populated field against its range invariants, and
// returns an immutable [Scene]:
//
//	scene, err := prefab.Load(text)
//	if err != nil {
//	    // structured errors: *SyntaxError, *UnknownVariantError,
//	    // *MissingFieldError, *ValidationError
//	}
//	for _, e := range scene.Entities {
//	    if e.Camera != nil { ... }
//	}
//
// Loading is all-or-nothing: no partial scene is ever returned. The
// loader performs no I/O, keeps no state between calls, and is safe
// for concurrent use.
//
// # Document format
//
// The wire format is the dialect of the ron subpackage. The root value
// is a Prefab record:
//
//	#![enable(implicit_some)]
//	Prefab(
//	    entities: [
//	        (
//	            data: (
//	                graphics: (
//	                    mesh: Shape(Sphere(32, 16)),
//	                    material: Srgba(0.8, 0.1, 0.1, 1.0),
//	                ),
//	                transform: (translation: (-5.0, 2, -1.5)),
//	            ),
//	        ),
//	        (data: (light: (light: Point(intensity: 6.0, radius: 0.5)))),
//	        (data: (camera: Perspective(aspect: 1.3, fovy: 1.047, znear: 0.1, zfar: 2000.0))),
//	    ],
//	)
//
// Integer literals fill float fields exactly, so (-5.0, 2, -1.5) is a
// valid 3D vector.
//
// # Optional fields
//
// Fields holding a value that may be absent are written Some(value) or
// None, and may always be omitted entirely. With the implicit_some
// directive (or [WithImplicitOptional]) the Some wrapper may also be
// dropped. Fields with documented defaults (for example
// transform.translation) may likewise be omitted. Camera projection
// fields have no defaults and are required.
//
// # Consumers
//
// The loader stops at the typed scene: resolving mesh and texture
// references named in the document, and building renderer resources
// from the result, belong to the caller. [Scene.TextureRefs] and
// [Scene.MeshRefs] enumerate the external references for asset
// systems; the catalog and format subpackages cover manifest-driven
// loading and asset probing.
package prefab
