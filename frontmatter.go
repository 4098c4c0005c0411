package frontmatter

import (
	"bytes"
	"strings"

	"github.com/KimNorgaard/go-frontmatter/internal/lexer"
)

// Decode parses source text into a new Document. It never fails: lines the
// grammar has no form for, and list items outside of a list, are skipped.
func Decode(text string) *Document {
	return newDecodeState(false).run(lexer.New(text))
}

// Encode returns the source text for doc, one top-level entry per line in
// document order, without a trailing newline.
func Encode(doc *Document) string {
	var sb strings.Builder
	// strings.Builder never fails, so neither does the formatter.
	_ = newFormatter(&sb, &options{}).format(doc)
	return sb.String()
}

// Unmarshal parses the front matter in data into a new Document.
//
// Without options it behaves like Decode and never returns an error. With
// Strict, the returned error is a ParseErrors listing each dropped line;
// the document is returned as well.
func Unmarshal(data []byte, opts ...DecodeOption) (*Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	ds := newDecodeState(o.strict)
	doc := ds.run(lexer.New(string(data)))
	if len(ds.errs) > 0 {
		return doc, ds.errs
	}
	return doc, nil
}

// Marshal returns the source text encoding of doc.
func Marshal(doc *Document, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const fence = "---"

// Split separates a note into its front matter and body. The front matter
// is the text between a "---" line at the very start of the note and the
// next "---" line. When the note has no complete front matter block, ok is
// false and body is the whole note.
func Split(note string) (front, body string, ok bool) {
	first, rest, found := strings.Cut(note, "\n")
	if !found || !isFence(first) {
		return "", note, false
	}
	for offset := 0; offset <= len(rest); {
		line, _, more := strings.Cut(rest[offset:], "\n")
		if isFence(line) {
			front = rest[:offset]
			body = rest[min(offset+len(line)+1, len(rest)):]
			return strings.TrimSuffix(strings.TrimSuffix(front, "\n"), "\r"), body, true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	return "", note, false
}

// Join reassembles a note from front matter and body, the inverse of Split.
func Join(front, body string) string {
	var sb strings.Builder
	sb.WriteString(fence + "\n")
	if front != "" {
		sb.WriteString(front)
		if !strings.HasSuffix(front, "\n") {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(fence + "\n")
	sb.WriteString(body)
	return sb.String()
}

func isFence(line string) bool {
	return strings.TrimRight(line, " \t\r") == fence
}
