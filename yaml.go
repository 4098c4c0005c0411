package frontmatter

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. The mapping keeps document order
// and strings that would read back as another type are quoted, so a
// Document can be handed to a full YAML pipeline without loss.
func (d *Document) MarshalYAML() (any, error) {
	return d.yamlNode(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a mapping
// whose values fit the front matter model: scalars, mappings of scalars,
// and lists of scalars or of mappings of scalars.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	node = resolveYAML(node)
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = resolveYAML(node.Content[0])
	}
	m, err := documentFromYAML(node, yamlTop)
	if err != nil {
		return err
	}
	*d = *m
	return nil
}

// FromYAML parses general YAML into a Document, for notes whose front
// matter was written by other tools.
func FromYAML(data []byte) (*Document, error) {
	doc := NewDocument()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ToYAML renders doc with a full YAML encoder.
func ToYAML(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (d *Document) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range d.All() {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			v.yamlNode(),
		)
	}
	return n
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case BoolKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v.Text()}
	case NumberKind:
		tag := "!!float"
		if v.n == math.Trunc(v.n) && math.Abs(v.n) < 1<<53 {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.Text()}
	case StringKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	case ListKind:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.list {
			n.Content = append(n.Content, item.yamlNode())
		}
		return n
	case MappingKind:
		return v.m.yamlNode()
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// Nesting levels accepted from YAML.
const (
	yamlTop    = iota // a document value
	yamlInList        // an item of a top-level list
	yamlInMap         // a value of a mapping nested in the document
)

func documentFromYAML(node *yaml.Node, level int) (*Document, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("frontmatter: line %d: expected a mapping, got %s", node.Line, yamlKindName(node.Kind))
	}
	doc := NewDocument()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolveYAML(node.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("frontmatter: line %d: mapping keys must be scalars", keyNode.Line)
		}
		v, err := valueFromYAML(resolveYAML(node.Content[i+1]), level)
		if err != nil {
			return nil, err
		}
		doc.Set(keyNode.Value, v)
	}
	return doc, nil
}

func valueFromYAML(node *yaml.Node, level int) (Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	case yaml.SequenceNode:
		if level != yamlTop {
			return Value{}, fmt.Errorf("frontmatter: line %d: nested lists are not supported", node.Line)
		}
		items := make([]Value, 0, len(node.Content))
		for _, c := range node.Content {
			item, err := valueFromYAML(resolveYAML(c), yamlInList)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.MappingNode:
		if level == yamlInMap {
			return Value{}, fmt.Errorf("frontmatter: line %d: nested mappings are not supported", node.Line)
		}
		m, err := documentFromYAML(node, yamlInMap)
		if err != nil {
			return Value{}, err
		}
		return MappingOf(m), nil
	default:
		return Value{}, fmt.Errorf("frontmatter: line %d: unsupported YAML %s", node.Line, yamlKindName(node.Kind))
	}
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("frontmatter: line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("frontmatter: line %d: %w", node.Line, err)
		}
		return Number(f), nil
	default:
		return String(node.Value), nil
	}
}

func resolveYAML(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty node"
	}
}
