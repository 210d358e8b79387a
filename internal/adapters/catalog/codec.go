package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hookhub/hookhub/internal/domain"
)

// Format is a catalog file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// document is the on-disk shape shared by every format: {"hooks": [...]}
type document struct {
	Hooks []domain.Hook `json:"hooks" toml:"hooks"`
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedCatalogFormat, path)
}

// ParseFormat accepts "json" or "toml"
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatTOML:
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedCatalogFormat, s)
}

// Decode reads a catalog document. Every hook must carry an id.
func Decode(r io.Reader, format Format) ([]domain.Hook, error) {
	var doc document

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON catalog: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCatalogFormat, format)
	}

	for i, hook := range doc.Hooks {
		if strings.TrimSpace(hook.ID) == "" {
			return nil, fmt.Errorf("hook at index %d (%q) has no id", i, hook.Name)
		}
	}

	if doc.Hooks == nil {
		return []domain.Hook{}, nil
	}
	return doc.Hooks, nil
}

// Encode writes hooks as a catalog document
func Encode(w io.Writer, format Format, hooks []domain.Hook) error {
	if hooks == nil {
		hooks = []domain.Hook{}
	}
	doc := document{Hooks: hooks}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON catalog: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode TOML catalog: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedCatalogFormat, format)
	}

	return nil
}
