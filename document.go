package frontmatter

import (
	"iter"
	"slices"
)

// Document is an ordered mapping from string keys to values. Keys are unique
// and iterate in insertion order; re-setting an existing key keeps its
// position.
//
// The zero Document is empty and ready to use. Read methods accept a nil
// *Document and treat it as empty.
type Document struct {
	keys   []string
	values map[string]Value
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]Value)}
}

// Len returns the number of keys in d.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys of d in order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present, whatever its value.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set stores v under key.
func (d *Document) Set(key string, v Value) {
	if d.values == nil {
		d.values = make(map[string]Value)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Delete removes key from d. It is a no-op when key is absent.
func (d *Document) Delete(key string) {
	if !d.Has(key) {
		return
	}
	delete(d.values, key)
	if i := slices.Index(d.keys, key); i >= 0 {
		d.keys = slices.Delete(d.keys, i, i+1)
	}
}

// All returns an iterator over the entries of d in order.
func (d *Document) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of d. Lists and mappings are copied as well, so
// the result shares no mutable state with d.
func (d *Document) Clone() *Document {
	out := &Document{
		keys:   make([]string, 0, d.Len()),
		values: make(map[string]Value, d.Len()),
	}
	for k, v := range d.All() {
		out.keys = append(out.keys, k)
		out.values[k] = v.clone()
	}
	return out
}

// Equal reports whether d and o hold the same keys, in the same order, with
// structurally equal values.
func (d *Document) Equal(o *Document) bool {
	if d.Len() != o.Len() {
		return false
	}
	if d.Len() == 0 {
		return true
	}
	for i, k := range d.keys {
		if o.keys[i] != k {
			return false
		}
		if !d.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}

// String returns the source text encoding of d.
func (d *Document) String() string { return Encode(d) }
