package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"A=1", "A", "1", true},
		{"  B = two words ", "B", "two words", true},
		{`C="quoted"`, "C", "quoted", true},
		{"D='single'", "D", "single", true},
		{`E="mismatch'`, "E", `"mismatch'`, true},
		{"export F=x", "F", "x", true},
		{"G=", "G", "", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"=nokey", "", "", false},
		{"novalue", "", "", false},
	}
	for _, c := range cases {
		key, value, ok := parseLine(c.line)
		assert.Equal(t, c.ok, ok, c.line)
		assert.Equal(t, c.key, key, c.line)
		assert.Equal(t, c.value, value, c.line)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SANDBOX_TEST_NEW=fresh\nSANDBOX_TEST_SET=file\n"), 0644))
	t.Setenv("SANDBOX_TEST_SET", "process")
	t.Setenv("SANDBOX_TEST_NEW", "")
	require.NoError(t, os.Unsetenv("SANDBOX_TEST_NEW"))

	require.NoError(t, Load(path))
	assert.Equal(t, "fresh", os.Getenv("SANDBOX_TEST_NEW"))
	assert.Equal(t, "process", os.Getenv("SANDBOX_TEST_SET"), "existing variables win")
}

func TestLoadMissing(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "nope")))
}
