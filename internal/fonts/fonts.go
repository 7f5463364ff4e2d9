// Package fonts locates a TrueType/OpenType font for the HUD and console.
package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// ErrNoFont is returned when no font file is found.
var ErrNoFont = errors.New("fonts: no font found")

// Dir returns the font directory under an assets directory.
func Dir(assetsDir string) string {
	return filepath.Join(assetsDir, "fonts")
}

// ScanDir returns paths of font files under dir relative to dir, with forward slashes, sorted.
// A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

// Find returns the full path of the font in dir whose relative path contains search, ignoring
// case, spaces, dashes and underscores. An empty search matches any font. Among several matches
// a "Regular" face wins, then the first in sorted order.
func Find(dir, search string) (string, error) {
	list, err := ScanDir(dir)
	if err != nil {
		return "", err
	}
	norm := normalize(search)
	var match []string
	for _, rel := range list {
		if strings.Contains(normalize(rel), norm) {
			match = append(match, rel)
		}
	}
	if len(match) == 0 {
		return "", ErrNoFont
	}
	pick := match[0]
	for _, rel := range match {
		if strings.Contains(strings.ToLower(rel), "regular") {
			pick = rel
			break
		}
	}
	return filepath.Join(dir, filepath.FromSlash(pick)), nil
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}
