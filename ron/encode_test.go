package ron

import (
	"reflect"
	"testing"
)

// stripPos zeroes positions so parsed trees can be compared
// structurally.
func stripPos(v *Value) {
	v.Pos = Pos{}
	for i := range v.Fields {
		v.Fields[i].NamePos = Pos{}
		stripPos(&v.Fields[i].Value)
	}
	for i := range v.Items {
		stripPos(&v.Items[i])
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"scalar", "42"},
		{"negative float", "-2.5"},
		{"string with escapes", `"a\"b\nc"`},
		{"unit", "Cube"},
		{"vector tuple", "(0.0, 1.0, 4.0)"},
		{"tagged tuple", "Srgba(1.0, 0.5, 0.25, 1.0)"},
		{"empty payload", "Plane()"},
		{"record", "(translation: (0.0, 1.0, 4.0), scale: (1.0, 1.0, 1.0))"},
		{"nested", "Prefab(entities: [(data: (camera: Perspective(aspect: 1.3)))])"},
		{"sequence of records", "[(a: 1), (b: 2)]"},
		{"directive", "#![enable(implicit_some)]\nPrefab(entities: [])"},
		{"some and none", "(a: Some((2, 2)), b: None)"},
		{"bools", "(x: true, y: false)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			out := Encode(doc)
			doc2, err := Parse(string(out))
			if err != nil {
				t.Fatalf("Parse(Encode()) error: %v\noutput:\n%s", err, out)
			}
			stripPos(&doc.Root)
			stripPos(&doc2.Root)
			if !reflect.DeepEqual(doc.Extensions, doc2.Extensions) {
				t.Errorf("extensions: got %v, want %v", doc2.Extensions, doc.Extensions)
			}
			if !reflect.DeepEqual(doc.Root, doc2.Root) {
				t.Errorf("round trip mismatch\nfirst:  %#v\nsecond: %#v\ntext:\n%s",
					doc.Root, doc2.Root, out)
			}
		})
	}
}

func TestEncodeFloatKeepsFloatness(t *testing.T) {
	doc := &Document{Root: Value{Kind: KindFloat, Float: 2}}
	out := Encode(doc)
	doc2, err := Parse(string(out))
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v", err)
	}
	if doc2.Root.Kind != KindFloat {
		t.Errorf("reparsed kind = %v, want %v (text %q)", doc2.Root.Kind, KindFloat, out)
	}
}

func TestEncodeScalarTupleInline(t *testing.T) {
	doc, err := Parse("(0.0, 1.0, 4.0)")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	got := string(EncodeValue(&doc.Root))
	want := "(0.0, 1.0, 4.0)"
	if got != want {
		t.Errorf("EncodeValue() = %q, want %q", got, want)
	}
}
