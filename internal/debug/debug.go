package debug

import (
	"fmt"

	"voxel-sandbox/internal/sysstats"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Text is rebuilt every updateInterval frames.
	updateInterval = 30
)

// Debug draws the top-right overlay. All lines are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowBlocks   bool

	// Blocks reports the live block count when ShowBlocks is set.
	Blocks func() int

	font    rl.Font
	sampler *sysstats.Sampler
	frame   uint32
	lines   []string
}

func New() *Debug {
	return &Debug{sampler: sysstats.NewSampler()}
}

func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
	d.frame = 0
}

// SetShowMemAlloc toggles the memory and CPU lines.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
	d.frame = 0
}

func (d *Debug) SetShowBlocks(show bool) {
	d.ShowBlocks = show
	d.frame = 0
}

// SetFont sets the overlay font. A zero texture ID keeps raylib's default font.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders the enabled lines right-aligned in green. Call last in the 2D pass.
func (d *Debug) Draw() {
	if d.frame%updateInterval == 0 {
		d.rebuild()
	}
	d.frame++

	screenW := float32(rl.GetScreenWidth())
	y := float32(padding)
	for _, text := range d.lines {
		if d.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
			rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), fontSize, 1, rl.Green)
		} else {
			w := float32(rl.MeasureText(text, fontSize))
			rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, rl.Green)
		}
		y += lineHeight
	}
}

func (d *Debug) rebuild() {
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if d.ShowMemAlloc {
		st := d.sampler.Sample()
		d.lines = append(d.lines, st.MemLine(), st.CPULine())
	}
	if d.ShowBlocks && d.Blocks != nil {
		d.lines = append(d.lines, sysstats.BlocksLine(d.Blocks()))
	}
}
