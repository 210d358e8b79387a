package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"github.com/hookhub/hookhub/internal/adapters/clipboard"
	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/services"
	"github.com/hookhub/hookhub/internal/theme"
)

func newSigner(t *testing.T) gossh.Signer {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := gossh.NewSignerFromKey(priv)
	require.NoError(t, err)
	return signer
}

func writeAuthorizedKeys(t *testing.T, keys ...gossh.PublicKey) string {
	t.Helper()
	content := "# team keys\n\nnot-a-key\n"
	for _, k := range keys {
		content += string(gossh.MarshalAuthorizedKey(k))
	}
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newSigner(t).PublicKey()
	other := newSigner(t).PublicKey()
	path := writeAuthorizedKeys(t, allowed)

	tests := []struct {
		name     string
		key      gossh.PublicKey
		path     string
		expected bool
	}{
		{name: "listed key", key: allowed, path: path, expected: true},
		{name: "unknown key", key: other, path: path, expected: false},
		{name: "missing file", key: allowed, path: filepath.Join(t.TempDir(), "nope"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isKeyAuthorized(tt.key, tt.path))
		})
	}
}

func TestGetKeyFingerprint(t *testing.T) {
	fp := getKeyFingerprint(newSigner(t).PublicKey())
	assert.Regexp(t, `^MD5:([0-9a-f]{2}:){15}[0-9a-f]{2}$`, fp)
}

// startServer serves on a random local port until the test ends
func startServer(t *testing.T, cfg Config) string {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())

	cfg.Catalog = services.NewCatalogService(nil)
	cfg.Host = "127.0.0.1"
	cfg.Port = "0"
	cfg.Theme = theme.ModeDark

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(config.GetSSHDir(), "id_ed25519"))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Error("server did not stop")
		}
	})

	return ln.Addr().String()
}

func dial(addr string, auth ...gossh.AuthMethod) (*gossh.Client, error) {
	return gossh.Dial("tcp", addr, &gossh.ClientConfig{
		User:            "tester",
		Auth:            auth,
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
}

func TestServer_AnonymousAccess(t *testing.T) {
	addr := startServer(t, Config{})

	client, err := dial(addr)
	require.NoError(t, err)
	require.NoError(t, client.Close())
}

func TestServer_PublicKeyAuth(t *testing.T) {
	allowed := newSigner(t)
	addr := startServer(t, Config{AuthorizedKeys: writeAuthorizedKeys(t, allowed.PublicKey())})

	t.Run("authorized key", func(t *testing.T) {
		client, err := dial(addr, gossh.PublicKeys(allowed))
		require.NoError(t, err)
		require.NoError(t, client.Close())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := dial(addr, gossh.PublicKeys(newSigner(t)))
		assert.Error(t, err)
	})

	t.Run("no key", func(t *testing.T) {
		_, err := dial(addr)
		assert.Error(t, err)
	})
}

// byteWriter writes one byte at a time, yielding between bytes
type byteWriter struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (w *byteWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		w.mu.Lock()
		w.buf.WriteByte(b)
		w.mu.Unlock()
		runtime.Gosched()
	}
	return len(p), nil
}

func TestSessionOutput_ClipboardDoesNotSplitFrames(t *testing.T) {
	dst := &byteWriter{}
	out := &sessionOutput{w: dst}
	cb := clipboard.NewOSC52(out, "tmux-256color")
	frame := strings.Repeat("#", 64)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 50 {
			_, _ = out.Write([]byte(frame))
		}
	}()
	go func() {
		defer wg.Done()
		for range 50 {
			assert.NoError(t, cb.WriteAll("https://github.com/a/b"))
		}
	}()
	wg.Wait()

	seq := "\x1bPtmux;\x1b\x1b]52;c;aHR0cHM6Ly9naXRodWIuY29tL2EvYg==\a\x1b\\"
	rest := strings.ReplaceAll(dst.buf.String(), seq, "")
	assert.Equal(t, strings.Repeat(frame, 50), rest)
}
