package frontmatter

import "fmt"

// ParseError describes a line the decoder could not use. It is only
// reported in strict mode; the default decoder drops such lines silently.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("frontmatter: line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
// This allows returning every dropped line of a document at once.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	// The collection reports the first error; callers range over it for more.
	msg := p[0].Error()
	if len(p) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(p)-1)
	}
	return msg
}
