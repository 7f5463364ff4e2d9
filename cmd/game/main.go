package main

import (
	"context"
	"os"
	"time"

	"voxel-sandbox/internal/assetpack"
	"voxel-sandbox/internal/blocks"
	"voxel-sandbox/internal/commands"
	"voxel-sandbox/internal/debug"
	"voxel-sandbox/internal/editor"
	"voxel-sandbox/internal/engineconfig"
	"voxel-sandbox/internal/env"
	"voxel-sandbox/internal/fonts"
	"voxel-sandbox/internal/game"
	"voxel-sandbox/internal/graphics"
	"voxel-sandbox/internal/hud"
	"voxel-sandbox/internal/logger"
	"voxel-sandbox/internal/mapgen"
	"voxel-sandbox/internal/metrics"
	"voxel-sandbox/internal/physics"
	"voxel-sandbox/internal/player"
	"voxel-sandbox/internal/primitives"
	"voxel-sandbox/internal/scene"
	"voxel-sandbox/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontSize       = 32
	installTimeout = 2 * time.Minute
)

func main() {
	envErr := env.Load(env.DefaultPath)
	cfg, cfgErr := engineconfig.Load(engineconfig.ConfigPath)
	if cfgErr == nil {
		cfgErr = cfg.ApplyEnv(os.Getenv)
	}
	log := logger.New(cfg.LogPath)
	log.SetDebug(cfg.Debug.Verbose)
	if envErr != nil {
		log.Warnf("%v", envErr)
	}
	if cfgErr != nil {
		log.Warnf("%v; using defaults", cfgErr)
	}

	catalog, err := blocks.LoadCatalog(cfg.AssetsDir)
	if err != nil {
		log.Warnf("%v; using default block appearances", err)
	}
	if missing := catalog.MissingModels(cfg.AssetsDir); len(missing) > 0 && cfg.AssetsURL != "" {
		log.Infof("%d block models missing", len(missing))
		if installAssets(cfg.AssetsURL, cfg.AssetsDir, log) {
			if catalog, err = blocks.LoadCatalog(cfg.AssetsDir); err != nil {
				log.Warnf("%v; using default block appearances", err)
			}
		}
	}

	world := physics.NewWorld()
	visuals := primitives.NewRegistry(catalog, cfg.AssetsDir, cfg.Terrain.Pitch)
	ed := editor.New(editor.Config{
		RemoveRange:    cfg.Edit.RemoveRange,
		PlaceRange:     cfg.Edit.PlaceRange,
		Pitch:          cfg.Terrain.Pitch,
		PreventOverlap: cfg.Edit.PreventOverlap,
	}, visuals, world)
	n := mapgen.GenerateSlab(ed, mapgen.SlabOptions{
		Width:  cfg.Terrain.Width,
		Depth:  cfg.Terrain.Depth,
		Layers: cfg.Terrain.Layers,
		Pitch:  cfg.Terrain.Pitch,
		Origin: mgl32.Vec3(cfg.Terrain.Origin),
		Type:   cfg.Terrain.Block,
	})
	log.Infof("spawned %d %s blocks", n, cfg.Terrain.Block)

	pl := player.New(mgl32.Vec3(cfg.Player.Start))
	pl.MoveSpeed = cfg.Player.MoveSpeed
	pl.LookFactor = cfg.Player.LookFactor

	rec := metrics.NewRecorder()
	session := game.NewSession(game.Options{
		Editor:       ed,
		Player:       pl,
		Picker:       world,
		Window:       graphics.Cursor{},
		Recorder:     rec,
		Logger:       log,
		PickDistance: cfg.Edit.PickDistance,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.MetricsAddr != "" {
		go func() {
			log.Infof("metrics on %s/metrics", cfg.MetricsAddr)
			if err := rec.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Errorf("metrics: %v", err)
			}
		}()
	}

	scn := scene.New(cfg.Player.FOV, cfg.AssetsDir)
	scn.SetGridVisible(cfg.Debug.GridVisible)
	dbg := debug.New()
	dbg.SetShowFPS(cfg.Debug.ShowFPS)
	dbg.SetShowMemAlloc(cfg.Debug.ShowMemAlloc)
	dbg.SetShowBlocks(cfg.Debug.ShowMemAlloc)
	dbg.Blocks = ed.Len
	overlay := hud.New(catalog, cfg.AssetsDir)

	reg := commands.NewRegistry()
	term := terminal.New(log, reg)
	game.Console{
		Session: session,
		Print:   log.Log,
		Grid:    &game.Toggle{Get: func() bool { return scn.GridVisible }, Set: scn.SetGridVisible},
		FPS:     &game.Toggle{Get: func() bool { return dbg.ShowFPS }, Set: dbg.SetShowFPS},
		Mem: &game.Toggle{Get: func() bool { return dbg.ShowMemAlloc }, Set: func(v bool) {
			dbg.SetShowMemAlloc(v)
			dbg.SetShowBlocks(v)
		}},
		Save: func() error {
			cfg.Debug.GridVisible = scn.GridVisible
			cfg.Debug.ShowFPS = dbg.ShowFPS
			cfg.Debug.ShowMemAlloc = dbg.ShowMemAlloc
			return engineconfig.Save(engineconfig.ConfigPath, cfg)
		},
	}.Register(reg)

	bindings := graphics.DefaultBindings()
	setup := func() {
		if err := visuals.LoadAssets(); err != nil {
			log.Warnf("assets: %v; drawing fallback cubes", err)
		}
		overlay.Load()
		if path, err := fonts.Find(fonts.Dir(cfg.AssetsDir), ""); err == nil {
			font := rl.LoadFontEx(path, fontSize, nil)
			term.SetFont(font)
			dbg.SetFont(font)
			overlay.SetFont(font)
		}
	}
	update := func(dt float32) {
		term.Update()
		in := graphics.PollInput(bindings)
		if term.IsOpen() {
			session.ReleaseCursor()
			in = in.Idle()
		}
		session.Update(in, dt)
		scn.Follow(pl)
	}
	draw := func() {
		scn.Draw(func() {
			visuals.DrawAll()
			if b, err := session.Target(); err == nil {
				visuals.DrawOutline(b.Position)
			}
		})
		overlay.Draw(ed.State().Selected)
		term.Draw()
		dbg.Draw()
	}

	teardown := func() {
		visuals.Unload()
		overlay.Unload()
		scn.Unload()
	}

	graphics.Run(graphics.WindowOptions{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
	}, graphics.Frame{Setup: setup, Update: update, Draw: draw, Teardown: teardown})
	log.Infof("closed with %d blocks", ed.Len())
}

// installAssets fetches the asset pack before the window opens. Failure leaves the fallback cubes.
func installAssets(url, dir string, log *logger.Logger) bool {
	ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
	defer cancel()
	log.Infof("fetching assets from %s", url)
	files, err := assetpack.Client{}.Install(ctx, url, dir)
	if err != nil {
		log.Warnf("%v", err)
		return false
	}
	log.Infof("installed %d asset files into %s", len(files), dir)
	return true
}
