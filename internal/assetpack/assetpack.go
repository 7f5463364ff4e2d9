// Package assetpack installs a zipped asset pack (block models, textures, fonts, skybox) into the
// assets directory.
package assetpack

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	userAgent = "voxel-sandbox/1"
	// maxPackSize bounds the download; block packs are a few MiB.
	maxPackSize = 256 << 20
)

var ErrTooLarge = errors.New("assetpack: pack exceeds size limit")

// Client downloads packs. The zero value uses a 60 second timeout.
type Client struct {
	HTTP *http.Client
}

func (c Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 60 * time.Second}
}

// Install downloads the zip at url and extracts it into destDir. It returns the extracted file
// paths relative to destDir, with forward slashes.
func (c Client) Install(ctx context.Context, url, destDir string) ([]string, error) {
	tmp, err := os.CreateTemp("", "assetpack-*.zip")
	if err != nil {
		return nil, fmt.Errorf("assetpack: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := c.fetch(ctx, url, tmp); err != nil {
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("assetpack: %w", err)
	}
	return Unzip(tmp.Name(), destDir)
}

func (c Client) fetch(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("assetpack: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("assetpack: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("assetpack: GET %s: HTTP %d", url, resp.StatusCode)
	}
	n, err := io.Copy(w, io.LimitReader(resp.Body, maxPackSize+1))
	if err != nil {
		return fmt.Errorf("assetpack: %w", err)
	}
	if n > maxPackSize {
		return ErrTooLarge
	}
	return nil
}

// Unzip extracts zipPath into destDir, creating it if needed. Entries that would land outside
// destDir are skipped.
func Unzip(zipPath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	defer r.Close()

	root, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}

	var out []string
	for _, f := range r.File {
		dest := filepath.Join(root, filepath.FromSlash(f.Name))
		if dest != root && !strings.HasPrefix(dest, root+string(os.PathSeparator)) {
			continue
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return nil, fmt.Errorf("unzip: %w", err)
			}
			continue
		}
		if err := extract(f, dest); err != nil {
			return nil, fmt.Errorf("unzip: %s: %w", f.Name, err)
		}
		rel, _ := filepath.Rel(root, dest)
		out = append(out, filepath.ToSlash(rel))
	}
	return out, nil
}

func extract(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
