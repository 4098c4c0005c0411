package frontmatter

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo implements json.MarshalerTo, writing d as a JSON object
// whose members keep document order.
func (d *Document) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for k, v := range d.All() {
		if err := enc.WriteToken(jsontext.String(k)); err != nil {
			return err
		}
		if err := v.MarshalJSONTo(enc); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom. The input must be a
// JSON object; member order becomes document order.
func (d *Document) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	if k := dec.PeekKind(); k != '{' {
		return fmt.Errorf("frontmatter: cannot unmarshal JSON %v into a document", k)
	}
	if _, err := dec.ReadToken(); err != nil { // '{'
		return err
	}
	out := NewDocument()
	for dec.PeekKind() != '}' {
		key, err := dec.ReadToken()
		if err != nil {
			return err
		}
		// The token is only valid until the next decoder call.
		name := key.String()
		var v Value
		if err := v.UnmarshalJSONFrom(dec); err != nil {
			return fmt.Errorf("frontmatter: value for key %q: %w", name, err)
		}
		out.Set(name, v)
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return err
	}
	*d = *out
	return nil
}

// MarshalJSONTo implements json.MarshalerTo.
func (v Value) MarshalJSONTo(enc *jsontext.Encoder) error {
	switch v.kind {
	case BoolKind:
		return enc.WriteToken(jsontext.Bool(v.b))
	case NumberKind:
		return enc.WriteToken(jsontext.Float(v.n))
	case StringKind:
		return enc.WriteToken(jsontext.String(v.s))
	case ListKind:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, item := range v.list {
			if err := item.MarshalJSONTo(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case MappingKind:
		return v.m.MarshalJSONTo(enc)
	default:
		return enc.WriteToken(jsontext.Null)
	}
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom. Objects become
// mappings and arrays become lists, at any depth; the encoder renders
// shapes the grammar cannot express in flow form.
func (v *Value) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	switch dec.PeekKind() {
	case '{':
		var m Document
		if err := m.UnmarshalJSONFrom(dec); err != nil {
			return err
		}
		*v = MappingOf(&m)
		return nil
	case '[':
		if _, err := dec.ReadToken(); err != nil { // '['
			return err
		}
		var items []Value
		for dec.PeekKind() != ']' {
			var item Value
			if err := item.UnmarshalJSONFrom(dec); err != nil {
				return err
			}
			items = append(items, item)
		}
		if _, err := dec.ReadToken(); err != nil { // ']'
			return err
		}
		*v = List(items...)
		return nil
	}

	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		*v = Null()
	case 't', 'f':
		*v = Bool(tok.Bool())
	case '"':
		*v = String(tok.String())
	case '0':
		*v = Number(tok.Float())
	default:
		return fmt.Errorf("frontmatter: unexpected JSON token %v", tok.Kind())
	}
	return nil
}
