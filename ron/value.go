package ron

// Kind identifies the shape of a parsed value node.
type Kind uint8

const (
	// KindUnit is a bare identifier with no payload, e.g. a unit
	// variant tag such as Cube or the marker None.
	KindUnit Kind = iota

	// KindBool is a boolean literal.
	KindBool

	// KindInt is an integer literal.
	KindInt

	// KindFloat is a floating-point literal.
	KindFloat

	// KindString is a string literal.
	KindString

	// KindRecord is a named-field record: (name: value, ...).
	KindRecord

	// KindTuple is a positional tuple: (value, value, ...).
	KindTuple

	// KindSeq is a sequence: [value, value, ...].
	KindSeq
)

// String returns a human-readable name for the value kind.
func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRecord:
		return "record"
	case KindTuple:
		return "tuple"
	case KindSeq:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed document tree.
//
// Tag carries the variant name for tagged values: Tag(...) parses to a
// record or tuple with Tag set, and a bare identifier parses to
// KindUnit with Tag set. Untagged values have an empty Tag.
type Value struct {
	Kind Kind
	Pos  Pos
	Tag  string

	Bool   bool
	Int    int64
	Float  float64
	Str    string
	Fields []Field // KindRecord
	Items  []Value // KindTuple, KindSeq
}

// Field is one named field of a record value.
type Field struct {
	Name    string
	NamePos Pos
	Value   Value
}

// Number returns the value as a float64. Integer values convert
// exactly for the int64 range representable in a float64 mantissa;
// the bool result reports whether the value is numeric at all.
func (v *Value) Number() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	}
	return 0, false
}

// Field returns the named record field, or nil when absent or when
// the value is not a record.
func (v *Value) Field(name string) *Field {
	if v.Kind != KindRecord {
		return nil
	}
	for i := range v.Fields {
		if v.Fields[i].Name == name {
			return &v.Fields[i]
		}
	}
	return nil
}

// IsNone reports whether the value is the bare None marker.
func (v *Value) IsNone() bool {
	return v.Kind == KindUnit && v.Tag == "None"
}

// Some unwraps a Some(inner) value. The bool result reports whether
// the value had that shape.
func (v *Value) Some() (*Value, bool) {
	if v.Tag == "Some" && v.Kind == KindTuple && len(v.Items) == 1 {
		return &v.Items[0], true
	}
	return nil, false
}

// Document is a parsed document: its enabled extensions and the
// single root value.
type Document struct {
	Extensions []string
	Root       Value
}

// HasExtension reports whether a #![enable(...)] directive named the
// given extension.
func (d *Document) HasExtension(name string) bool {
	for _, e := range d.Extensions {
		if e == name {
			return true
		}
	}
	return false
}
