package frontmatter

import (
	"io"
	"strings"
)

// formatter writes a Document as source text to an output stream.
type formatter struct {
	w      io.Writer
	indent string // written before list markers and mapping entries
	opts   *options
	lines  int
}

// newFormatter returns a new formatter that writes to w.
func newFormatter(w io.Writer, opts *options) *formatter {
	spaces := defaultIndent
	if opts.indent != nil {
		spaces = *opts.indent
	}
	return &formatter{w: w, indent: strings.Repeat(" ", spaces), opts: opts}
}

// format writes every entry of doc, one top-level entry per line.
func (f *formatter) format(doc *Document) error {
	for key, v := range doc.All() {
		if err := f.writeEntry(key, v); err != nil {
			return err
		}
	}
	if f.opts.trailingNewline && f.lines > 0 {
		return f.write("\n")
	}
	return nil
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

// writeLine starts a new line, separating it from the previous one.
func (f *formatter) writeLine(parts ...string) error {
	if f.lines > 0 {
		if err := f.write("\n"); err != nil {
			return err
		}
	}
	f.lines++
	for _, p := range parts {
		if err := f.write(p); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeEntry(key string, v Value) error {
	switch v.Kind() {
	case ListKind:
		return f.writeList(key, v.list)
	case MappingKind:
		return f.writeMapping(key, v.m)
	default:
		return f.writeLine(key, ": ", v.Text())
	}
}

func (f *formatter) writeList(key string, items []Value) error {
	if err := f.writeLine(key, ":"); err != nil {
		return err
	}
	for _, item := range items {
		if m, ok := item.AsMapping(); ok {
			if err := f.writeInlineObject(m); err != nil {
				return err
			}
			continue
		}
		if err := f.writeLine(f.indent, "- ", item.Text()); err != nil {
			return err
		}
	}
	return nil
}

// writeInlineObject writes the first pair of m on the list marker line and
// every other pair on a continuation line indented under it.
func (f *formatter) writeInlineObject(m *Document) error {
	if m.Len() == 0 {
		return f.writeLine(f.indent, "- {}")
	}
	first := true
	for k, v := range m.All() {
		var err error
		if first {
			err = f.writeLine(f.indent, "- ", k, ": ", v.Text())
			first = false
		} else {
			err = f.writeLine(f.indent, "  ", k, ": ", v.Text())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeMapping writes a mapping that is not inside a list as a header line
// followed by one indented entry per pair. The decoder has no form for
// this shape; it reads the entries back as top-level pairs.
func (f *formatter) writeMapping(key string, m *Document) error {
	if err := f.writeLine(key, ":"); err != nil {
		return err
	}
	for k, v := range m.All() {
		if err := f.writeLine(f.indent, k, ": ", v.Text()); err != nil {
			return err
		}
	}
	return nil
}
