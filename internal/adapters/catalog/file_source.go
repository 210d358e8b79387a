package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ports"
)

// EmbeddedName is the source name of the bundled catalog
const EmbeddedName = "embedded"

//go:embed hooks.json
var embeddedCatalog []byte

var (
	_ ports.HookSource = (*FileSource)(nil)
	_ ports.HookSource = (*EmbeddedSource)(nil)
)

// FileSource reads a JSON or TOML catalog file
type FileSource struct {
	format Format
	path   string
}

// NewFileSource creates a source for path, choosing the format by extension
func NewFileSource(path string) (*FileSource, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{format: format, path: path}, nil
}

// Name returns the file path
func (s *FileSource) Name() string {
	return s.path
}

// Load reads and decodes the whole file
func (s *FileSource) Load(ctx context.Context) ([]domain.Hook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", s.path, err)
	}

	hooks, err := Decode(bytes.NewReader(data), s.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	logging.Logger.Debug("Catalog file loaded", "path", s.path, "format", s.format, "hooks", len(hooks))
	return hooks, nil
}

// EmbeddedSource serves the catalog compiled into the binary
type EmbeddedSource struct{}

// NewEmbeddedSource returns the bundled default catalog
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Name returns "embedded"
func (s *EmbeddedSource) Name() string {
	return EmbeddedName
}

// Load decodes the bundled catalog
func (s *EmbeddedSource) Load(ctx context.Context) ([]domain.Hook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(embeddedCatalog), FormatJSON)
}
