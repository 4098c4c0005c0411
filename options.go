package frontmatter

import "fmt"

const defaultIndent = 2

type options struct {
	indent          *int
	strict          bool
	trailingNewline bool
}

// Option configures a Decoder or an Encoder.
type Option func(*options) error

// DecodeOption is an Option that affects decoding.
type DecodeOption = Option

// EncodeOption is an Option that affects encoding.
type EncodeOption = Option

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent returns an EncodeOption that sets the number of spaces written
// before each list marker. Continuation lines of inline objects and the
// entries of a mapping are indented two spaces further. The default is 2.
func Indent(spaces int) EncodeOption {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("frontmatter: indent spaces cannot be negative")
		}
		o.indent = &spaces
		return nil
	}
}

// TrailingNewline returns an EncodeOption that terminates the output with a
// newline. Without it the last line is left unterminated.
func TrailingNewline() EncodeOption {
	return func(o *options) error {
		o.trailingNewline = true
		return nil
	}
}

// Strict returns a DecodeOption that reports every line the decoder drops
// as a ParseError. Strict decoding builds the same document as the default
// lenient mode; it only adds the errors.
func Strict() DecodeOption {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}
