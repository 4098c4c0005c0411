package frontmatter

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ListKind
	MappingKind
)

var kindNames = [...]string{
	NullKind:    "null",
	BoolKind:    "bool",
	NumberKind:  "number",
	StringKind:  "string",
	ListKind:    "list",
	MappingKind: "mapping",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is a front matter value: a scalar (null, boolean, number or string),
// a list of values, or a mapping of keys to values.
//
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	list []Value
	m    *Document
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Number returns a numeric value. The source text does not distinguish
// integers from floating point numbers.
func Number(n float64) Value { return Value{kind: NumberKind, n: n} }

// String returns a string value.
func String(s string) Value { return Value{kind: StringKind, s: s} }

// List returns a list holding a copy of items. The result is never a nil list.
func List(items ...Value) Value {
	l := make([]Value, len(items))
	copy(l, items)
	return Value{kind: ListKind, list: l}
}

// MappingOf returns a mapping value backed by m. A nil m is an empty mapping.
func MappingOf(m *Document) Value {
	if m == nil {
		m = NewDocument()
	}
	return Value{kind: MappingKind, m: m}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == NullKind }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == BoolKind }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == NumberKind }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == StringKind }

// AsList returns the items of a list. The slice is shared with v.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != ListKind {
		return nil, false
	}
	return v.list, true
}

// AsMapping returns the document backing a mapping. It is shared with v.
func (v Value) AsMapping() (*Document, bool) {
	if v.kind != MappingKind {
		return nil, false
	}
	return v.m, true
}

// Text returns the literal textual form of v as written by the encoder:
// true/false, null, the shortest decimal form of a number, or the string
// itself without quoting. Collections use a flow form such as "[a, b]"
// or "{k: v}", which the grammar reads back as a plain string.
func (v Value) Text() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case NumberKind:
		return formatNumber(v.n)
	case StringKind:
		return v.s
	case ListKind:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(item.Text())
		}
		sb.WriteByte(']')
		return sb.String()
	case MappingKind:
		var sb strings.Builder
		sb.WriteByte('{')
		i := 0
		for k, item := range v.m.All() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(item.Text())
			i++
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		return "null"
	}
}

// String implements fmt.Stringer.
func (v Value) String() string { return v.Text() }

// Equal reports whether v and o hold structurally equal data.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case BoolKind:
		return v.b == o.b
	case NumberKind:
		return v.n == o.n
	case StringKind:
		return v.s == o.s
	case ListKind:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case MappingKind:
		return v.m.Equal(o.m)
	default:
		return true
	}
}

// clone returns a deep copy of v.
func (v Value) clone() Value {
	switch v.kind {
	case ListKind:
		l := make([]Value, len(v.list))
		for i, item := range v.list {
			l[i] = item.clone()
		}
		return Value{kind: ListKind, list: l}
	case MappingKind:
		return Value{kind: MappingKind, m: v.m.Clone()}
	default:
		return v
	}
}

// truthy mirrors the loose truthiness hosts apply to optional fields:
// null, false, 0 and the empty string count as missing.
func (v Value) truthy() bool {
	switch v.kind {
	case NullKind:
		return false
	case BoolKind:
		return v.b
	case NumberKind:
		return v.n != 0
	case StringKind:
		return v.s != ""
	default:
		return true
	}
}

func formatNumber(n float64) string {
	abs := math.Abs(n)
	if n == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
