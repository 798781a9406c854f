package prefab

import (
	"fmt"
	"strings"

	"github.com/prefabkit/prefab/ron"
)

// SyntaxError reports malformed document text: lexical and structural
// parse errors, and decode-stage shape mismatches such as a wrong
// tuple arity or a string where a number was expected.
//
// A syntax error aborts the load immediately; later content is not
// examined.
type SyntaxError struct {
	Pos ron.Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("prefab: %d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// UnknownVariantError reports an unrecognized tagged-union tag, such
// as a light written Laser(...). Path locates the offending field
// from the document root, e.g. "entities[2].light.light".
type UnknownVariantError struct {
	Path string
	Tag  string
	Pos  ron.Pos
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("prefab: %s: unknown variant %q", pathOrRoot(e.Path), e.Tag)
}

// MissingFieldError reports the absence of a field that has no
// default, such as a camera projection field, or an optional field
// omitted without implicit-optional mode.
type MissingFieldError struct {
	Path  string
	Field string
	Pos   ron.Pos
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("prefab: %s: missing required field %q", pathOrRoot(e.Path), e.Field)
}

// Violation is one range or invariant failure on an otherwise
// well-formed field. Path locates the field, Constraint states the
// violated rule, and Value is the offending value as written.
type Violation struct {
	Path       string
	Constraint string
	Value      string
	Pos        ron.Pos
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (got %s)", v.Path, v.Constraint, v.Value)
}

// ValidationError aggregates every invariant violation found in a
// structurally valid document, in document order. In fail-fast mode
// it carries only the first.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "prefab: validation failed (%d violation", len(e.Violations))
	if len(e.Violations) != 1 {
		sb.WriteByte('s')
	}
	sb.WriteByte(')')
	for _, v := range e.Violations {
		sb.WriteString("\n\t")
		sb.WriteString(v.String())
	}
	return sb.String()
}

func pathOrRoot(p string) string {
	if p == "" {
		return "document root"
	}
	return p
}
