package frontmatter

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-frontmatter/internal/lexer"
	"github.com/KimNorgaard/go-frontmatter/internal/token"
)

// Decoder reads and decodes front matter from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the decoding process,
// such as reporting dropped lines with the Strict option.
func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads all of the input and decodes it into a new Document.
//
// An error is only returned when reading fails, when an option is invalid,
// or in strict mode when lines were dropped; in the latter case the
// document is returned alongside the ParseErrors.
func (d *Decoder) Decode() (*Document, error) {
	if d.r == nil {
		return nil, fmt.Errorf("frontmatter: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data, d.opts...)
}

// decodeState is the accumulator folded over the line tokens of a source.
// Besides the document under construction it tracks the key of the open
// block-list header, if any, and the inline object whose continuation
// lines are still being read.
type decodeState struct {
	doc *Document

	listKey string
	inList  bool

	item       *Document // open inline object
	itemIndent int       // indentation of its list marker

	strict bool
	errs   ParseErrors
}

func newDecodeState(strict bool) *decodeState {
	return &decodeState{doc: NewDocument(), strict: strict}
}

// run feeds every token of l through step and closes any open object.
func (ds *decodeState) run(l *lexer.Lexer) *Document {
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		ds.step(tok)
	}
	ds.finish()
	return ds.doc
}

// step applies a single line token to the state.
func (ds *decodeState) step(tok token.Token) {
	skip := tok.Type == token.BLANK || tok.Type == token.COMMENT

	// Any line not indented past the list marker ends an open object,
	// blank lines and comments included.
	if ds.item != nil {
		if tok.Indent > ds.itemIndent {
			if !skip {
				ds.continueItem(tok)
			}
			return
		}
		ds.closeItem()
	}
	if skip {
		return
	}

	switch tok.Type {
	case token.HEADER:
		// A header always starts a fresh list, replacing any earlier value.
		ds.listKey, ds.inList = tok.Key, true
		ds.doc.Set(tok.Key, List())
	case token.PAIR:
		ds.doc.Set(tok.Key, ParseScalar(tok.Value))
		ds.listKey, ds.inList = "", false
	case token.ITEM:
		if !ds.inList {
			ds.errorf(tok, "list item %q outside of a list", tok.Value)
			return
		}
		ds.appendItem(ParseScalar(tok.Value))
	case token.ITEM_PAIR:
		if !ds.inList {
			ds.errorf(tok, "list item %q outside of a list", tok.Literal)
		}
		ds.item = NewDocument()
		ds.item.Set(tok.Key, ParseScalar(tok.Value))
		ds.itemIndent = tok.Indent
	case token.ILLEGAL:
		ds.listKey, ds.inList = "", false
		ds.errorf(tok, "expected \"key: value\", \"key:\" or a list item, got %q", tok.Literal)
	}
}

// continueItem adds a continuation line to the open inline object.
func (ds *decodeState) continueItem(tok token.Token) {
	switch tok.Type {
	case token.PAIR:
		ds.item.Set(tok.Key, ParseScalar(tok.Value))
	case token.HEADER:
		ds.item.Set(tok.Key, ParseScalar(""))
	case token.ITEM, token.ITEM_PAIR:
		ds.errorf(tok, "nested lists are not supported")
	default:
		ds.errorf(tok, "expected \"key: value\" in list item, got %q", tok.Literal)
	}
}

// closeItem appends the open inline object to the current list. Objects
// opened outside of a list are dropped; they were reported when opened.
func (ds *decodeState) closeItem() {
	if ds.inList {
		ds.appendItem(MappingOf(ds.item))
	}
	ds.item = nil
}

func (ds *decodeState) appendItem(v Value) {
	cur, _ := ds.doc.Get(ds.listKey)
	items, _ := cur.AsList()
	ds.doc.Set(ds.listKey, Value{kind: ListKind, list: append(items, v)})
}

func (ds *decodeState) finish() {
	if ds.item != nil {
		ds.closeItem()
	}
}

func (ds *decodeState) errorf(tok token.Token, format string, args ...any) {
	if !ds.strict {
		return
	}
	ds.errs = append(ds.errs, ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column(),
	})
}
