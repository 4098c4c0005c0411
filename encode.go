package frontmatter

import (
	"fmt"
	"io"
)

// Encoder writes front matter documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the source text encoding of doc to the stream.
func (e *Encoder) Encode(doc *Document) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	if err := newFormatter(e.w, o).format(doc); err != nil {
		return fmt.Errorf("frontmatter: %w", err)
	}
	return nil
}
