package game

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"voxel-sandbox/internal/blocks"
	"voxel-sandbox/internal/commands"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrUsage = errors.New("usage")

// Toggle is an on/off setting exposed to the console.
type Toggle struct {
	Get func() bool
	Set func(bool)
}

// Console wires session state to console commands. Nil toggles and a nil Save leave the
// matching command unregistered.
type Console struct {
	Session *Session
	Print   func(string)
	Grid    *Toggle
	FPS     *Toggle
	Mem     *Toggle
	Save    func() error
}

// Register adds the sandbox commands to reg.
func (c Console) Register(reg *commands.Registry) {
	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Help() {
			c.Print(line)
		}
		return nil
	})

	sel := flag.NewFlagSet("select", flag.ContinueOnError)
	reg.Register("select", "<type>  choose the block type to place", sel, func() error {
		if sel.NArg() != 1 {
			return fmt.Errorf("%w: /select <type>", ErrUsage)
		}
		t, err := blocks.ParseType(sel.Arg(0))
		if err != nil {
			return err
		}
		c.Session.Select(t)
		c.Print("selected " + t.String())
		return nil
	})

	reg.RegisterArgs("tp", "x y z  teleport the camera", func(args []string) error {
		if len(args) != 3 {
			return fmt.Errorf("%w: /tp x y z", ErrUsage)
		}
		var pos mgl32.Vec3
		for i := range pos {
			v, err := strconv.ParseFloat(args[i], 32)
			if err != nil {
				return fmt.Errorf("tp: %w", err)
			}
			pos[i] = float32(v)
		}
		c.Session.player.Teleport(pos)
		c.Print(fmt.Sprintf("teleported to %.1f %.1f %.1f", pos[0], pos[1], pos[2]))
		return nil
	})

	reg.Register("blocks", "print the block count", nil, func() error {
		c.Print(fmt.Sprintf("%d blocks", c.Session.editor.Len()))
		return nil
	})

	c.registerToggle(reg, "grid", "reference grid", c.Grid)
	c.registerToggle(reg, "fps", "FPS counter", c.FPS)
	c.registerToggle(reg, "memalloc", "memory and CPU overlay", c.Mem)

	if c.Save != nil {
		reg.Register("save", "write the current settings to the config file", nil, func() error {
			if err := c.Save(); err != nil {
				return err
			}
			c.Print("settings saved")
			return nil
		})
	}
}

// registerToggle adds "/name --show|--hide"; with neither flag the setting flips.
func (c Console) registerToggle(reg *commands.Registry, name, what string, tg *Toggle) {
	if tg == nil {
		return
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	show := fs.Bool("show", false, "show the "+what)
	hide := fs.Bool("hide", false, "hide the "+what)
	reg.Register(name, "[--show|--hide]  toggle the "+what, fs, func() error {
		defer func() { *show, *hide = false, false }()
		var on bool
		switch {
		case *show && *hide:
			return fmt.Errorf("%w: /%s --show|--hide", ErrUsage, name)
		case *show:
			on = true
		case *hide:
			on = false
		default:
			on = !tg.Get()
		}
		tg.Set(on)
		return nil
	})
}
