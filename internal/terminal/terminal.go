// Package terminal is the in-game console: a bottom input bar with the recent log above it.
package terminal

import (
	"unicode/utf8"

	"voxel-sandbox/internal/commands"
	"voxel-sandbox/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	// Windowed mode lifts the bar so window decorations do not clip it.
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	maxLinesOnScreen  = 14
	lineHeight        = fontSize + 4
	maxLineChars      = 200
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	borderColor = rl.NewColor(80, 80, 80, 255)
	historyBg   = rl.NewColor(24, 24, 24, 220)
)

// Terminal opens with ` (or / with the prefix typed), closes with ` or ESC. Submitted lines that
// start with "/" run through the command registry; anything else is echoed to the log.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font
}

func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the console font. A zero texture ID keeps raylib's default font.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles toggling and, while open, typing. Call once per frame before game input.
func (t *Terminal) Update() {
	if !t.open {
		switch {
		case rl.IsKeyPressed(rl.KeyGrave):
			t.open = true
		case rl.IsKeyPressed(rl.KeySlash):
			t.open = true
			t.inputBuf = commands.Prefix
		}
		// Drain the key that opened the console so it is not typed.
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if rl.IsKeyPressed(rl.KeyGrave) || rl.IsKeyPressed(rl.KeyEscape) {
		t.open = false
		t.inputBuf = ""
		return
	}

	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		t.Submit(t.inputBuf)
		t.inputBuf = ""
	}
}

// Submit logs line and runs it if it is a command.
func (t *Terminal) Submit(line string) {
	t.log.Log(line)
	args, ok := commands.Parse(line)
	if !ok {
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Warnf("%v", err)
	}
}

// Draw draws the input bar and recent log lines when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	historyY := barY - maxLinesOnScreen*lineHeight
	if historyY < 0 {
		historyY = 0
	}
	if barY > historyY {
		rl.DrawRectangle(0, historyY, screenW, barY-historyY, historyBg)
	}
	lines := t.log.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	for i, line := range lines {
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		t.text(line, padding, historyY+int32(i)*lineHeight+padding, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, borderColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int32, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(s, x, y, fontSize, c)
}
