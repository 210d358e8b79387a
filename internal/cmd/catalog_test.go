package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookhub/hookhub/internal/adapters/catalog"
	"github.com/hookhub/hookhub/internal/domain"
)

// flakyFile accepts writes and fails on close, like a full disk
type flakyFile struct {
	bytes.Buffer
}

func (f *flakyFile) Close() error { return errors.New("no space left on device") }

func stubCreateFile(t *testing.T, create func(string) (io.WriteCloser, error)) {
	t.Helper()
	orig := createFile
	createFile = create
	t.Cleanup(func() { createFile = orig })
}

func TestWriteCatalogFile(t *testing.T) {
	hooks := []domain.Hook{{ID: "x1", Name: "fmt", Category: domain.CategoryPostToolUse}}

	t.Run("writes a readable catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.toml")
		require.NoError(t, writeCatalogFile(path, catalog.FormatTOML, hooks))

		src, err := catalog.NewFileSource(path)
		require.NoError(t, err)
		loaded, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "x1", loaded[0].ID)
		assert.Equal(t, domain.CategoryPostToolUse, loaded[0].Category)
	})

	t.Run("close error is returned", func(t *testing.T) {
		f := &flakyFile{}
		stubCreateFile(t, func(string) (io.WriteCloser, error) { return f, nil })

		err := writeCatalogFile("out.json", catalog.FormatJSON, hooks)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write out.json")
		assert.Contains(t, err.Error(), "no space left on device")
		assert.NotZero(t, f.Len())
	})

	t.Run("create error is returned", func(t *testing.T) {
		dir := t.TempDir()
		err := writeCatalogFile(dir, catalog.FormatJSON, hooks)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create")

		_, statErr := os.Stat(filepath.Join(dir, "out.json"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
