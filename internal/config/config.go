package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/scenedemos.yaml"

// PathEnv names the environment variable that overrides DefaultPath.
const PathEnv = "SCENEDEMOS_CONFIG"

// Window holds the window settings shared by every demo.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
	MSAA   bool   `yaml:"msaa"`
}

// Textures configures remote texture loading.
type Textures struct {
	CacheDir string `yaml:"cache_dir"`
	// MaxSize is the longest edge, in pixels, an image is downscaled to before upload.
	MaxSize int `yaml:"max_size"`
	// URLs maps texture names used by the demos to download locations.
	URLs map[string]string `yaml:"urls"`
}

// Config is the persisted demo configuration. Command-line flags override it.
type Config struct {
	Window    Window `yaml:"window"`
	LogPath   string `yaml:"log_path"`
	ShowStats bool   `yaml:"show_stats"`
	// ShowGrid draws the XZ reference grid under every demo.
	ShowGrid bool `yaml:"show_grid"`
	// PanelStylesheet is a CSS file replacing the parameter panel's built-in theme.
	PanelStylesheet string `yaml:"panel_stylesheet"`

	Textures Textures `yaml:"textures"`
}

// Texture names referenced by the textured demo.
const (
	TextureMaple = "maple"
	TextureStone = "stone"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "scenedemos",
			FPS:    60,
			MSAA:   true,
		},
		LogPath:   "logs/scenedemos.txt",
		ShowStats: true,
		Textures: Textures{
			CacheDir: "assets/textures/cache",
			MaxSize:  2048,
			URLs: map[string]string{
				TextureMaple: "https://images.squarespace-cdn.com/content/v1/5be5c337a9e02874136908f2/1580809645632-FJ0TMYHIB9Z9LPLCKRGC/Maple.jpg?format=2500w",
				TextureStone: "https://p5.itc.cn/images01/20220323/7ba16d4343e8420ba0828b510fe9b1fc.jpeg",
			},
		},
	}
}

// Path returns the config file to use: $SCENEDEMOS_CONFIG when set, else DefaultPath.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML config at path on top of Default, so a partial file only overrides what
// it names. A missing file yields Default and no error; a malformed one yields Default and the
// parse error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML, creating the directory if needed.
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
