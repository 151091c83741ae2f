// Package document models a character sheet as a generic YAML node tree
// addressable by dotted path. It wraps gopkg.in/yaml.v3 nodes so the rest of
// the engine never deals with the yaml API directly.
package document

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	sheeterr "github.com/KirkDiggler/sheet-engine/internal/errors"
)

// Document is a parsed sheet. The zero value is an empty document.
type Document struct {
	root *yaml.Node
}

// Parse builds a Document from YAML text. A parse failure is returned as a
// CodeParse error; an empty input yields a document with a nil root.
func Parse(text string) (*Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return nil, sheeterr.WrapWithCode(err, sheeterr.CodeParse, "malformed sheet document")
	}
	return &Document{root: body(&node)}, nil
}

// Validate reports whether text is an acceptable sheet document. Empty or
// whitespace-only input is acceptable; anything else just has to parse.
func Validate(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	var node yaml.Node
	return yaml.Unmarshal([]byte(text), &node) == nil
}

// body unwraps the document node produced by yaml.Unmarshal.
func body(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		return n.Content[0]
	}
	if n.Kind == 0 {
		return nil
	}
	return n
}

// Root returns the top-level node, nil for an empty document.
func (d *Document) Root() *yaml.Node {
	return d.root
}

// Lookup walks a dotted path of mapping keys from the root and returns the
// node it lands on, or nil as soon as a segment is missing.
func (d *Document) Lookup(path string) *yaml.Node {
	if d == nil || d.root == nil {
		return nil
	}
	node := d.root
	for _, key := range strings.Split(path, ".") {
		node = Key(node, key)
		if node == nil {
			return nil
		}
	}
	return node
}

// Entry is one key/value pair of a mapping node.
type Entry struct {
	Key   *yaml.Node
	Value *yaml.Node
}

// Entries returns the pairs of a mapping node in document order. Non-mapping
// nodes yield nil.
func Entries(mapping *yaml.Node) []Entry {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	entries := make([]Entry, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		entries = append(entries, Entry{Key: mapping.Content[i], Value: mapping.Content[i+1]})
	}
	return entries
}

// Key returns the value node for a mapping key, or nil.
func Key(mapping *yaml.Node, key string) *yaml.Node {
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

// SetKey appends a key/value pair to a mapping node. The caller is expected
// to have checked the key is not already present.
func SetKey(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, StringNode(key), value)
}

// IntValue returns the integer value of a scalar node.
func IntValue(n *yaml.Node) (int, bool) {
	if n == nil || n.Kind != yaml.ScalarNode {
		return 0, false
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

// StringValue returns the string value of a scalar node.
func StringValue(n *yaml.Node) (string, bool) {
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

// SetInt overwrites a node with an integer scalar, reporting whether the
// stored value actually changed. Comments attached to the node survive.
func SetInt(n *yaml.Node, v int) bool {
	text := strconv.Itoa(v)
	if n.Kind == yaml.ScalarNode && n.Tag == "!!int" && n.Value == text {
		return false
	}
	changed := n.Kind != yaml.ScalarNode || n.Value != text
	n.Kind = yaml.ScalarNode
	n.Tag = "!!int"
	n.Value = text
	n.Style = 0
	n.Content = nil
	return changed
}

// SetString overwrites a node with a string scalar, reporting whether the
// stored value actually changed.
func SetString(n *yaml.Node, s string) bool {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && n.Value == s {
		return false
	}
	changed := n.Kind != yaml.ScalarNode || n.Value != s
	n.Kind = yaml.ScalarNode
	n.Tag = "!!str"
	n.Value = s
	n.Style = 0
	n.Content = nil
	return changed
}

// IntNode builds a fresh integer scalar node.
func IntNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

// StringNode builds a fresh string scalar node.
func StringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
