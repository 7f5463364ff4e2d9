package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFonts(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}
	return dir
}

func TestScanDir(t *testing.T) {
	dir := writeFonts(t, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "readme.txt", "Mono.otf")
	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindPrefersRegular(t *testing.T) {
	dir := writeFonts(t, "Google_Sans/GoogleSans-Bold.ttf", "Google_Sans/GoogleSans-Regular.ttf")
	got, err := Find(dir, "google sans")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Regular.ttf"), got)
}

func TestFindAny(t *testing.T) {
	dir := writeFonts(t, "b.otf", "a.ttf")
	got, err := Find(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.ttf"), got)
}

func TestFindNone(t *testing.T) {
	_, err := Find(writeFonts(t, "a.ttf"), "inter")
	assert.ErrorIs(t, err, ErrNoFont)
}
