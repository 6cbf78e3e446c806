package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type nodeKind int

const (
	kindNull nodeKind = iota
	kindString
	kindScalar // number, bool or any other non-string scalar
	kindMapping
	kindSequence
)

// node is an order-preserving document tree shared by the JSON and YAML
// readers. Mapping keys keep their input order, which decides the catalog
// order of extra sub-levels.
type node struct {
	kind   nodeKind
	value  string
	keys   []string
	values []*node
	items  []*node
}

// get returns the value of the first key in names that is present.
func (n *node) get(names ...string) *node {
	if n == nil || n.kind != kindMapping {
		return nil
	}
	for _, name := range names {
		for i, k := range n.keys {
			if k == name {
				return n.values[i]
			}
		}
	}
	return nil
}

// list returns the items of a sequence node; anything else yields nil.
func (n *node) list() []*node {
	if n == nil || n.kind != kindSequence {
		return nil
	}
	return n.items
}

func parseTree(data []byte) (*node, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &node{kind: kindNull}, nil
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return parseJSONTree(trimmed)
	}
	return parseYAMLTree(trimmed)
}

func parseJSONTree(data []byte) (*node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := readJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON catalog: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing JSON catalog: unexpected data after top-level value")
	}
	return root, nil
}

func readJSONValue(dec *json.Decoder) (*node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			n := &node{kind: kindMapping}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				child, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.keys = append(n.keys, key)
				n.values = append(n.values, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			n := &node{kind: kindSequence}
			for dec.More() {
				child, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.items = append(n.items, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v)
	case string:
		return &node{kind: kindString, value: v}, nil
	case nil:
		return &node{kind: kindNull}, nil
	default:
		return &node{kind: kindScalar, value: fmt.Sprint(v)}, nil
	}
}

func parseYAMLTree(data []byte) (*node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML catalog: %w", err)
	}
	c := yamlConverter{seen: make(map[*yaml.Node]*node)}
	return c.convert(&doc, 0), nil
}

// maxAliasDepth bounds alias expansion so self-referencing anchors cannot
// recurse forever.
const maxAliasDepth = 32

// yamlConverter turns a yaml.Node graph into a node tree. Every YAML node is
// converted once: aliases to the same anchor share one read-only subtree, so
// nested anchor fan-out costs the size of the document, not of its expansion.
type yamlConverter struct {
	seen map[*yaml.Node]*node
}

func (c yamlConverter) convert(y *yaml.Node, depth int) *node {
	if y == nil || depth > maxAliasDepth {
		return &node{kind: kindNull}
	}
	if n, ok := c.seen[y]; ok {
		return n
	}
	// An anchor reached again while still being built is a cycle; it reads
	// as null.
	c.seen[y] = &node{kind: kindNull}
	n := c.build(y, depth)
	c.seen[y] = n
	return n
}

func (c yamlConverter) build(y *yaml.Node, depth int) *node {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &node{kind: kindNull}
		}
		return c.convert(y.Content[0], depth)
	case yaml.MappingNode:
		n := &node{kind: kindMapping}
		for i := 0; i+1 < len(y.Content); i += 2 {
			n.keys = append(n.keys, y.Content[i].Value)
			n.values = append(n.values, c.convert(y.Content[i+1], depth))
		}
		return n
	case yaml.SequenceNode:
		n := &node{kind: kindSequence}
		for _, item := range y.Content {
			n.items = append(n.items, c.convert(item, depth))
		}
		return n
	case yaml.AliasNode:
		return c.convert(y.Alias, depth+1)
	case yaml.ScalarNode:
		switch y.ShortTag() {
		case "!!str":
			return &node{kind: kindString, value: y.Value}
		case "!!null":
			return &node{kind: kindNull}
		default:
			return &node{kind: kindScalar, value: y.Value}
		}
	}
	return &node{kind: kindNull}
}
