package prefab

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/prefabkit/prefab/ron"
)

// Load parses a scene document and returns the typed scene.
//
// The error is one of *SyntaxError, *UnknownVariantError,
// *MissingFieldError, or *ValidationError; on any error the returned
// scene is nil. Load keeps no state between calls and is safe for
// concurrent use.
func Load(text string, opts ...LoadOption) (*Scene, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	doc, err := ron.Parse(text)
	if err != nil {
		var perr *ron.ParseError
		if errors.As(err, &perr) {
			return nil, &SyntaxError{Pos: perr.Pos, Msg: perr.Msg}
		}
		return nil, &SyntaxError{Msg: err.Error()}
	}

	d := &decoder{
		opts:     o,
		implicit: o.implicitOptional || doc.HasExtension("implicit_some"),
	}
	scene, err := d.decodeScene(&doc.Root)
	if err != nil {
		return nil, err
	}
	if len(d.check.violations) > 0 {
		vs := d.check.violations
		if o.failFast {
			vs = vs[:1]
		}
		return nil, &ValidationError{Violations: vs}
	}
	return scene, nil
}

// LoadBytes is Load for raw document bytes. The bytes are normalized
// first: a UTF-8 byte order mark is stripped, and UTF-16 input with a
// byte order mark is transcoded to UTF-8.
func LoadBytes(data []byte, opts ...LoadOption) (*Scene, error) {
	text, err := normalizeText(data)
	if err != nil {
		return nil, &SyntaxError{Msg: fmt.Sprintf("decoding input text: %v", err)}
	}
	return Load(text, opts...)
}

// normalizeText decodes document bytes to UTF-8, honoring a leading
// byte order mark.
func normalizeText(data []byte) (string, error) {
	t := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
