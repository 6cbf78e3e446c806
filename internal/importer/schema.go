package importer

import (
	"fmt"
	"os"
	"strings"
)

// Field is a scalar read from untrusted input. Present records whether the
// key existed at all; IsString whether it held a string scalar.
type Field struct {
	Raw      string
	Present  bool
	IsString bool
}

// Text returns the trimmed value when the field held a string and "" for
// every other shape.
func (f Field) Text() string {
	if !f.IsString {
		return ""
	}
	return strings.TrimSpace(f.Raw)
}

// coerced reports a present field whose value had to be dropped.
func (f Field) coerced() bool {
	return f.Present && !f.IsString
}

// RawEntry is an objective, skill or indicator as found in the source.
// Indicators is only populated for skills.
type RawEntry struct {
	Code        Field
	Description Field
	Indicators  []RawEntry
}

// RawSubLevel is one sub-level block under its key as written.
type RawSubLevel struct {
	Key        string
	Objectives []RawEntry
	Skills     []RawEntry
}

// RawCatalog is the tagged intermediate form of a curriculum document. It
// accepts both the Spanish field names of the ministry data files and their
// English equivalents.
//
//	meta:        { area, fuente }
//	subniveles:  { <name>: { objetivos: [...], destrezas: [{ ..., indicadores: [...] }] } }
type RawCatalog struct {
	Area      Field
	Source    Field
	SubLevels []RawSubLevel
}

// Parse decodes a JSON or YAML curriculum document. Only bytes that are not
// a document at all produce an error; wrong shapes inside a well-formed
// document are recorded as absent or non-string fields.
func Parse(data []byte) (*RawCatalog, error) {
	root, err := parseTree(data)
	if err != nil {
		return nil, err
	}
	return rawCatalogFrom(root), nil
}

// Load reads and parses a curriculum file.
func Load(path string) (*RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

func rawCatalogFrom(root *node) *RawCatalog {
	raw := &RawCatalog{}
	meta := root.get("meta")
	raw.Area = fieldFrom(meta.get("area"))
	if !raw.Area.IsString {
		raw.Area = fieldFrom(root.get("area"))
	}
	raw.Source = fieldFrom(meta.get("fuente", "source"))
	if !raw.Source.IsString {
		raw.Source = fieldFrom(root.get("fuente", "source"))
	}

	subs := root.get("subniveles", "sub_levels")
	if subs == nil {
		return raw
	}
	switch subs.kind {
	case kindMapping:
		for i, key := range subs.keys {
			raw.SubLevels = append(raw.SubLevels, rawSubLevelFrom(key, subs.values[i]))
		}
	case kindSequence:
		// Lists of {name|nombre, ...} blocks, as produced by our own export.
		for _, item := range subs.items {
			name := fieldFrom(item.get("nombre", "name"))
			raw.SubLevels = append(raw.SubLevels, rawSubLevelFrom(name.Raw, item))
		}
	}
	return raw
}

func rawSubLevelFrom(key string, n *node) RawSubLevel {
	return RawSubLevel{
		Key:        key,
		Objectives: rawEntriesFrom(n.get("objetivos", "objectives"), false),
		Skills:     rawEntriesFrom(n.get("destrezas", "skills"), true),
	}
}

func rawEntriesFrom(n *node, withIndicators bool) []RawEntry {
	items := n.list()
	if len(items) == 0 {
		return nil
	}
	out := make([]RawEntry, 0, len(items))
	for _, item := range items {
		e := RawEntry{
			Code:        fieldFrom(item.get("codigo", "code")),
			Description: fieldFrom(item.get("descripcion", "description")),
		}
		if withIndicators {
			e.Indicators = rawEntriesFrom(item.get("indicadores", "indicators"), false)
		}
		out = append(out, e)
	}
	return out
}

func fieldFrom(n *node) Field {
	if n == nil {
		return Field{}
	}
	if n.kind == kindString {
		return Field{Raw: n.value, Present: true, IsString: true}
	}
	return Field{Raw: n.value, Present: true}
}
