// Package hud draws the 2D overlay: the crosshair and the block hotbar.
package hud

import (
	"os"
	"path/filepath"
	"strconv"

	"voxel-sandbox/internal/blocks"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	CrosshairFile = "crosshairs.png"

	crosshairScale = 0.5
	crosshairArm   = 10
	crosshairThick = 2

	slotSize    = 48
	slotGap     = 6
	slotBottom  = 16
	slotInset   = 6
	labelSize   = 14
	keyFontSize = 12
)

var (
	slotBg       = rl.NewColor(20, 20, 20, 160)
	slotBorder   = rl.NewColor(200, 200, 200, 180)
	slotSelected = rl.NewColor(255, 255, 255, 255)
)

// HUD holds overlay resources. Load must run after the window exists.
type HUD struct {
	catalog   *blocks.Catalog
	assetsDir string
	font      rl.Font

	crosshair    rl.Texture2D
	hasCrosshair bool
	tints        map[blocks.Type]rl.Color
}

func New(catalog *blocks.Catalog, assetsDir string) *HUD {
	return &HUD{catalog: catalog, assetsDir: assetsDir, tints: make(map[blocks.Type]rl.Color)}
}

// Load reads the crosshair image if present and caches hotbar colours.
func (h *HUD) Load() {
	for _, t := range blocks.All {
		c := h.catalog.Tint(t)
		h.tints[t] = rl.NewColor(c.R, c.G, c.B, c.A)
	}
	path := filepath.Join(h.assetsDir, CrosshairFile)
	if _, err := os.Stat(path); err != nil {
		return
	}
	if tex := rl.LoadTexture(path); rl.IsTextureValid(tex) {
		h.crosshair, h.hasCrosshair = tex, true
	}
}

func (h *HUD) Unload() {
	if h.hasCrosshair {
		rl.UnloadTexture(h.crosshair)
		h.hasCrosshair = false
	}
}

// SetFont sets the label font. A zero texture ID keeps raylib's default font.
func (h *HUD) SetFont(font rl.Font) {
	h.font = font
}

// Draw renders the crosshair at screen center and the hotbar along the bottom edge.
func (h *HUD) Draw(selected blocks.Type) {
	w, ht := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	h.drawCrosshair(w/2, ht/2)
	h.drawHotbar(w, ht, selected)
}

func (h *HUD) drawCrosshair(cx, cy float32) {
	if h.hasCrosshair {
		tw := float32(h.crosshair.Width) * crosshairScale
		th := float32(h.crosshair.Height) * crosshairScale
		rl.DrawTextureEx(h.crosshair, rl.NewVector2(cx-tw/2, cy-th/2), 0, crosshairScale, rl.White)
		return
	}
	rl.DrawLineEx(rl.NewVector2(cx-crosshairArm, cy), rl.NewVector2(cx+crosshairArm, cy), crosshairThick, rl.White)
	rl.DrawLineEx(rl.NewVector2(cx, cy-crosshairArm), rl.NewVector2(cx, cy+crosshairArm), crosshairThick, rl.White)
}

// drawHotbar draws one slot per block type, numbered by its hotkey.
func (h *HUD) drawHotbar(w, ht float32, selected blocks.Type) {
	n := float32(len(blocks.All))
	total := n*slotSize + (n-1)*slotGap
	x := (w - total) / 2
	y := ht - slotSize - slotBottom - labelSize

	for i, t := range blocks.All {
		r := rl.NewRectangle(x+float32(i)*(slotSize+slotGap), y, slotSize, slotSize)
		rl.DrawRectangleRec(r, slotBg)
		inner := rl.NewRectangle(r.X+slotInset, r.Y+slotInset, r.Width-2*slotInset, r.Height-2*slotInset)
		rl.DrawRectangleRec(inner, h.tints[t])
		h.text(strconv.Itoa(i+1), r.X+3, r.Y+2, keyFontSize, rl.White)

		if t == selected {
			rl.DrawRectangleLinesEx(r, 3, slotSelected)
			h.text(t.String(), r.X, r.Y+slotSize+2, labelSize, slotSelected)
		} else {
			rl.DrawRectangleLinesEx(r, 1, slotBorder)
		}
	}
}

func (h *HUD) text(s string, x, y, size float32, c rl.Color) {
	if h.font.Texture.ID != 0 {
		rl.DrawTextEx(h.font, s, rl.NewVector2(x, y), size, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), int32(size), c)
}
