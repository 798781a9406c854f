package ron

import (
	"strconv"
	"strings"
)

// Encode prints a document in canonical form: directives first, then
// the root value. Scalars and tuples of scalars print inline; records
// and sequences print one field or element per line with 4-space
// indentation. Parsing the output reproduces the document.
func Encode(doc *Document) []byte {
	var sb strings.Builder
	if len(doc.Extensions) > 0 {
		sb.WriteString("#![enable(")
		sb.WriteString(strings.Join(doc.Extensions, ", "))
		sb.WriteString(")]\n")
	}
	encodeValue(&sb, &doc.Root, 0)
	sb.WriteByte('\n')
	return []byte(sb.String())
}

// EncodeValue prints a single value in canonical form without a
// trailing newline.
func EncodeValue(v *Value) []byte {
	var sb strings.Builder
	encodeValue(&sb, v, 0)
	return []byte(sb.String())
}

const indentStep = "    "

func encodeValue(sb *strings.Builder, v *Value, depth int) {
	switch v.Kind {
	case KindUnit:
		sb.WriteString(v.Tag)
	case KindBool:
		if v.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		sb.WriteString(formatFloat(v.Float))
	case KindString:
		encodeString(sb, v.Str)
	case KindTuple:
		sb.WriteString(v.Tag)
		if inlineTuple(v) {
			sb.WriteByte('(')
			for i := range v.Items {
				if i > 0 {
					sb.WriteString(", ")
				}
				encodeValue(sb, &v.Items[i], depth)
			}
			sb.WriteByte(')')
			return
		}
		sb.WriteString("(\n")
		for i := range v.Items {
			writeIndent(sb, depth+1)
			encodeValue(sb, &v.Items[i], depth+1)
			if i < len(v.Items)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		writeIndent(sb, depth)
		sb.WriteByte(')')
	case KindRecord:
		sb.WriteString(v.Tag)
		if len(v.Fields) == 0 {
			sb.WriteString("()")
			return
		}
		sb.WriteString("(\n")
		for i := range v.Fields {
			writeIndent(sb, depth+1)
			sb.WriteString(v.Fields[i].Name)
			sb.WriteString(": ")
			encodeValue(sb, &v.Fields[i].Value, depth+1)
			if i < len(v.Fields)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		writeIndent(sb, depth)
		sb.WriteByte(')')
	case KindSeq:
		if len(v.Items) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i := range v.Items {
			writeIndent(sb, depth+1)
			encodeValue(sb, &v.Items[i], depth+1)
			if i < len(v.Items)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		writeIndent(sb, depth)
		sb.WriteByte(']')
	}
}

// inlineTuple reports whether a tuple contains only scalar items and
// can print on one line, e.g. (0.0, 1.0, 0.0).
func inlineTuple(v *Value) bool {
	for i := range v.Items {
		switch v.Items[i].Kind {
		case KindRecord, KindSeq:
			return false
		case KindTuple:
			if !inlineTuple(&v.Items[i]) {
				return false
			}
		}
	}
	return true
}

// formatFloat prints a float so that reparsing yields a float token:
// integral values keep a trailing ".0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func encodeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indentStep)
	}
}
