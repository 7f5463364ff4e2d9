package assetpack

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestInstall(t *testing.T) {
	pack := buildZip(t, map[string]string{
		"dirt-block.glb":          "glb",
		"skybox/skybox.png":       "png",
		"../outside.txt":          "nope",
		"fonts/Inter-Regular.ttf": "ttf",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.UserAgent())
		_, _ = w.Write(pack)
	}))
	defer srv.Close()

	base := t.TempDir()
	dest := filepath.Join(base, "assets")
	got, err := Client{}.Install(context.Background(), srv.URL+"/pack.zip", dest)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"dirt-block.glb", "skybox/skybox.png", "fonts/Inter-Regular.ttf"}, got)

	data, err := os.ReadFile(filepath.Join(dest, "skybox", "skybox.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	assert.NoFileExists(t, filepath.Join(base, "outside.txt"))
}

func TestInstallHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Client{}.Install(context.Background(), srv.URL, t.TempDir())
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestInstallCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Client{}.Install(ctx, srv.URL, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnzipNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))
	_, err := Unzip(path, t.TempDir())
	assert.Error(t, err)
}
