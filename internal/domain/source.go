package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceFormat is the serialization of a stored curriculum document.
type SourceFormat string

const (
	FormatJSON SourceFormat = "json"
	FormatYAML SourceFormat = "yaml"
)

// FormatFromPath guesses the format from a file extension; anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// CatalogSource is an imported raw curriculum document. Raw is kept exactly
// as imported; normalization happens every time it is activated.
type CatalogSource struct {
	ID         string
	Name       string
	Format     SourceFormat
	Raw        []byte
	Active     bool
	ImportedAt time.Time
}
