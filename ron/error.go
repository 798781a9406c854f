package ron

import "fmt"

// ParseError reports a lexical or structural error in a document,
// located by byte offset and 1-based line/column.
type ParseError struct {
	Pos Pos
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ron: %d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

func errorf(pos Pos, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
