package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWhenDebugDisabled(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Empty(t, path)
	require.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvDebugFile, "")

	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")
	path, err := Initialize(false, logFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("catalog loaded", "hooks", 3)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"catalog loaded"`)
	assert.Contains(t, string(data), `"hooks":3`)
}

func TestInitialize_DebugFileFromEnv(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvDebugFile, logFile)

	path, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logFile, path)
}

func TestRotateLogs(t *testing.T) {
	tests := []struct {
		name        string
		existing    int
		maxLogFiles int
		wantLeft    int
	}{
		{name: "under the limit", existing: 2, maxLogFiles: 5, wantLeft: 2},
		{name: "at the limit", existing: 3, maxLogFiles: 3, wantLeft: 2},
		{name: "over the limit", existing: 6, maxLogFiles: 3, wantLeft: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			base := time.Now().Add(-time.Hour)
			for i := 0; i < tt.existing; i++ {
				p := filepath.Join(dir, fmt.Sprintf("%d.log", i))
				require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
				mod := base.Add(time.Duration(i) * time.Minute)
				require.NoError(t, os.Chtimes(p, mod, mod))
			}
			require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

			require.NoError(t, rotateLogs(dir, tt.maxLogFiles))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			logs := 0
			for _, e := range entries {
				if filepath.Ext(e.Name()) == ".log" {
					logs++
				}
			}
			assert.Equal(t, tt.wantLeft, logs)
			assert.FileExists(t, filepath.Join(dir, "keep.txt"))
		})
	}
}

func TestRotateLogs_RemovesOldestFirst(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"old.log", "mid.log", "new.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}

	require.NoError(t, rotateLogs(dir, 2))

	assert.NoFileExists(t, filepath.Join(dir, "old.log"))
	assert.NoFileExists(t, filepath.Join(dir, "mid.log"))
	assert.FileExists(t, filepath.Join(dir, "new.log"))
}
