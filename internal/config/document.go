package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document keys.
const (
	keyID        = "id"
	keyTitle     = "title"
	keyPublished = "published"
	keyCubes     = "cubes"
)

// Document is a parsed configuration document. Its zero value is not usable;
// create one with Parse or LoadFile.
type Document struct {
	root *yaml.Node
}

// LoadFile loads and parses a configuration document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse parses JSON or YAML data into a Document. Valid JSON is read with
// JSON semantics: every JSON escape is accepted and a repeated key keeps its
// last value.
func Parse(data []byte) (*Document, error) {
	root, err := parseNode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidDocument)
	}

	return &Document{root: root}, nil
}

func parseNode(data []byte) (*yaml.Node, error) {
	if json.Valid(data) {
		return parseJSON(data)
	}

	var node yaml.Node

	err := yaml.Unmarshal(data, &node)
	if err != nil {
		return nil, err
	}

	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return node.Content[0], nil
	}

	return &node, nil
}

// ID returns the document's own dataset id, or "" if it has none.
func (d *Document) ID() string {
	n := d.get(keyID)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return ""
	}

	return n.Value
}

// Has reports whether the top-level key is present.
func (d *Document) Has(key string) bool {
	return d.get(key) != nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.root.Content)/2)
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		keys = append(keys, d.root.Content[i].Value)
	}

	return keys
}

// Decode decodes the document into v.
func (d *Document) Decode(v any) error {
	return d.root.Decode(v)
}

// Marshal serializes the document to YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d.root)
}

// Equal reports whether both documents serialize identically.
func (d *Document) Equal(other *Document) bool {
	a, errA := d.Marshal()
	b, errB := other.Marshal()

	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{root: cloneNode(d.root)}
}

// OverrideForCube returns the configuration for cubeID as a new document. The
// input document is never modified.
//
// If the document's own id is cubeID, the result is the document without its
// "cubes" block. Otherwise, if "cubes" holds a block keyed by cubeID, each key
// of that block replaces the same top-level key (or is added) and "cubes" is
// dropped. Any other case reports false.
func OverrideForCube(doc *Document, cubeID string) (*Document, bool) {
	out := doc.Clone()

	if id := out.ID(); id != "" && id == cubeID {
		out.delete(keyCubes)
		return out, true
	}

	cubes := out.get(keyCubes)
	if cubes == nil || cubes.Kind != yaml.MappingNode {
		return nil, false
	}

	override := lookup(cubes, cubeID)
	if override == nil {
		return nil, false
	}

	out.delete(keyCubes)

	switch {
	case override.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(override.Content); i += 2 {
			out.set(override.Content[i], override.Content[i+1])
		}
	case override.Tag == "!!null":
		// An empty override block selects the base configuration.
	default:
		return nil, false
	}

	return out, true
}

func (d *Document) get(key string) *yaml.Node {
	return lookup(d.root, key)
}

func (d *Document) set(key, value *yaml.Node) {
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		if d.root.Content[i].Value == key.Value {
			d.root.Content[i+1] = value
			return
		}
	}

	d.root.Content = append(d.root.Content, key, value)
}

func (d *Document) delete(key string) {
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		if d.root.Content[i].Value == key {
			d.root.Content = append(d.root.Content[:i:i], d.root.Content[i+2:]...)
			return
		}
	}
}

// lookup returns the value node of key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}

func cloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}

	out := *n
	if n.Content != nil {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = cloneNode(c)
		}
	}

	return &out
}
