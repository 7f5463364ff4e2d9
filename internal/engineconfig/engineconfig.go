package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"voxel-sandbox/internal/blocks"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the path to the config file, relative to the process working directory.
const ConfigPath = "config/sandbox.yaml"

// Config holds everything tunable about the sandbox. Persisted across runs; the world itself is not.
type Config struct {
	Window  Window  `yaml:"window"`
	Player  Player  `yaml:"player"`
	Edit    Edit    `yaml:"edit"`
	Terrain Terrain `yaml:"terrain"`
	Debug   Debug   `yaml:"debug"`

	AssetsDir   string `yaml:"assets_dir"`
	LogPath     string `yaml:"log_path"`
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
	// AssetsURL is a zip of block models and textures fetched when models are missing.
	AssetsURL string `yaml:"assets_url,omitempty"`
}

type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int    `yaml:"target_fps"`
}

type Player struct {
	Start      [3]float32 `yaml:"start"`
	MoveSpeed  float32    `yaml:"move_speed"`
	LookFactor float32    `yaml:"look_factor"`
	FOV        float32    `yaml:"fov"`
}

type Edit struct {
	RemoveRange    float32 `yaml:"remove_range"`
	PlaceRange     float32 `yaml:"place_range"`
	PickDistance   float32 `yaml:"pick_distance"`
	PreventOverlap bool    `yaml:"prevent_overlap"`
}

// Terrain describes the starting slab. Pitch is also the block size used by the editor.
type Terrain struct {
	Width  int         `yaml:"width"`
	Depth  int         `yaml:"depth"`
	Layers int         `yaml:"layers"`
	Pitch  float32     `yaml:"pitch"`
	Origin [3]float32  `yaml:"origin"`
	Block  blocks.Type `yaml:"block"`
}

type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	GridVisible  bool `yaml:"grid_visible"`
	Verbose      bool `yaml:"verbose"`
}

// Default returns the stock configuration: a 1280×720 window, the 30×30×5 dirt slab and the
// 12/14 unit edit ranges.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "voxel sandbox",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Player: Player{
			Start:      [3]float32{0, 0, 3},
			MoveSpeed:  10,
			LookFactor: 10,
			FOV:        80,
		},
		Edit: Edit{
			RemoveRange:  12,
			PlaceRange:   14,
			PickDistance: 64,
		},
		Terrain: Terrain{
			Width:  30,
			Depth:  30,
			Layers: 5,
			Pitch:  2,
			Origin: [3]float32{-40, -40, 0},
			Block:  blocks.Dirt,
		},
		AssetsDir: "assets",
		LogPath:   "logs/sandbox.txt",
	}
}

// Load reads the config at path over Default(). A missing file returns Default() and no error.
// An unreadable or invalid file returns Default() together with the error so the caller can
// log it and carry on.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the editor and terrain cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Edit.RemoveRange <= 0:
		return fmt.Errorf("config: edit.remove_range must be positive, got %v", c.Edit.RemoveRange)
	case c.Edit.PlaceRange <= 0:
		return fmt.Errorf("config: edit.place_range must be positive, got %v", c.Edit.PlaceRange)
	case c.Edit.PickDistance < 0:
		return fmt.Errorf("config: edit.pick_distance must not be negative, got %v", c.Edit.PickDistance)
	case c.Terrain.Pitch <= 0:
		return fmt.Errorf("config: terrain.pitch must be positive, got %v", c.Terrain.Pitch)
	case c.Terrain.Width < 0 || c.Terrain.Depth < 0 || c.Terrain.Layers < 0:
		return fmt.Errorf("config: terrain dimensions must not be negative")
	case !c.Terrain.Block.Valid():
		return fmt.Errorf("config: terrain.block %v is not a block type", c.Terrain.Block)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size must be positive")
	case c.Player.FOV <= 0 || c.Player.FOV >= 180:
		return fmt.Errorf("config: player.fov must be in (0, 180), got %v", c.Player.FOV)
	}
	return nil
}

// Environment overrides applied by ApplyEnv.
const (
	EnvAssetsDir   = "SANDBOX_ASSETS_DIR"
	EnvAssetsURL   = "SANDBOX_ASSETS_URL"
	EnvLogPath     = "SANDBOX_LOG_PATH"
	EnvMetricsAddr = "SANDBOX_METRICS_ADDR"
	EnvVerbose     = "SANDBOX_VERBOSE"
)

// ApplyEnv overrides file settings from the environment. getenv is os.Getenv in production;
// empty values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvAssetsDir); v != "" {
		c.AssetsDir = v
	}
	if v := getenv(EnvAssetsURL); v != "" {
		c.AssetsURL = v
	}
	if v := getenv(EnvLogPath); v != "" {
		c.LogPath = v
	}
	if v := getenv(EnvMetricsAddr); v != "" {
		c.MetricsAddr = v
	}
	if v := getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvVerbose, err)
		}
		c.Debug.Verbose = b
	}
	return nil
}
