package blocks

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// CatalogPath is the optional override file for block appearances, relative to the assets dir.
const CatalogPath = "blocks.yaml"

// Appearance describes how a block type is drawn. Model is tried first; when it cannot be
// loaded the renderer falls back to a cube using Texture (if set) or the Color tint.
type Appearance struct {
	Model   string `yaml:"model"`
	Texture string `yaml:"texture,omitempty"`
	Color   string `yaml:"color"`
}

// Catalog maps every block type to its appearance.
type Catalog struct {
	entries map[Type]Appearance
}

var defaultAppearances = map[Type]Appearance{
	Dirt:    {Model: "dirt-block.glb", Color: "#7a5230"},
	Sand:    {Model: "sand-block.glb", Color: "#dccb8a"},
	Stone:   {Model: "stone-block.glb", Color: "#8a8a8a"},
	Desk:    {Model: "block_desk.glb", Color: "#a0703c"},
	Emerald: {Model: "block_izumrud.glb", Color: "#2ecc71"},
	Diamond: {Model: "block_almaz.glb", Color: "#7fdbff"},
	Gold:    {Model: "block_gold.glb", Color: "#f1c40f"},
}

// DefaultCatalog returns the built-in appearances.
func DefaultCatalog() *Catalog {
	c := &Catalog{entries: make(map[Type]Appearance, len(All))}
	for t, a := range defaultAppearances {
		c.entries[t] = a
	}
	return c
}

type catalogFile struct {
	Blocks map[string]Appearance `yaml:"blocks"`
}

// LoadCatalog reads dir/blocks.yaml over the defaults. Fields left empty in the file keep
// their default. A missing file returns the defaults without error.
func LoadCatalog(dir string) (*Catalog, error) {
	c := DefaultCatalog()
	data, err := os.ReadFile(filepath.Join(dir, CatalogPath))
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return c, fmt.Errorf("catalog: %w", err)
	}
	for name, a := range f.Blocks {
		t, err := ParseType(name)
		if err != nil {
			return c, fmt.Errorf("catalog: %w", err)
		}
		if a.Color != "" {
			if _, err := colorful.Hex(a.Color); err != nil {
				return c, fmt.Errorf("catalog: %s color: %w", t, err)
			}
		}
		cur := c.entries[t]
		if a.Model != "" {
			cur.Model = a.Model
		}
		if a.Texture != "" {
			cur.Texture = a.Texture
		}
		if a.Color != "" {
			cur.Color = a.Color
		}
		c.entries[t] = cur
	}
	return c, nil
}

// Appearance returns the appearance for t.
func (c *Catalog) Appearance(t Type) Appearance {
	return c.entries[t]
}

// Tint returns the fallback colour for t. Unparseable colours come back as opaque grey.
func (c *Catalog) Tint(t Type) color.RGBA {
	col, err := colorful.Hex(c.entries[t].Color)
	if err != nil {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// MissingModels returns the types whose model file is not present under dir, in hotbar order.
func (c *Catalog) MissingModels(dir string) []Type {
	var out []Type
	for _, t := range All {
		m := c.entries[t].Model
		if m == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, m)); err != nil {
			out = append(out, t)
		}
	}
	return out
}
