// SPDX-License-Identifier: GPL-2.0-or-later

// Package config merges the yaml configuration file and the process flags.
package config

import (
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"q3world/commandline"
	"q3world/cvar"
	"q3world/cvars"
	"q3world/filesystem"
)

// DefaultPath is read when no configuration path is given and it exists.
const DefaultPath = "q3world.yaml"

type Config struct {
	BaseDir string        `yaml:"basedir"`
	Game    string        `yaml:"game"`
	Map     string        `yaml:"map"`
	Video   VideoConfig   `yaml:"video"`
	Logging LoggingConfig `yaml:"logging"`
	// Metrics is the listen address of the prometheus endpoint, empty
	// disables it.
	Metrics string            `yaml:"metrics"`
	Cvars   map[string]string `yaml:"cvars"`
	// Binds maps sdl key names to command lines run on key press.
	Binds map[string]string `yaml:"binds"`
}

type VideoConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Fsaa       int  `yaml:"fsaa"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

func Default() *Config {
	return &Config{
		BaseDir: ".",
		Game:    filesystem.DefaultGame,
		Video: VideoConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Cvars: map[string]string{},
		Binds: map[string]string{
			"V":   "toggle r_novis",
			"F":   "toggle r_drawworld",
			"F12": "screenshot",
		},
	}
}

// Load reads the configuration with priority defaults < file < flags. An
// empty path uses DefaultPath if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "loading config from %s", path)
		}
	}
	applyFlags(cfg)
	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyFlags(cfg *Config) {
	if v := commandline.BaseDirectory(); v != "" {
		cfg.BaseDir = v
	}
	if v := commandline.Game(); v != "" {
		cfg.Game = v
	}
	if v := commandline.Map(); v != "" {
		cfg.Map = v
	}
	if v := commandline.Width(); v > 0 {
		cfg.Video.Width = v
	}
	if v := commandline.Height(); v > 0 {
		cfg.Video.Height = v
	}
	if v := commandline.Fsaa(); v >= 0 {
		cfg.Video.Fsaa = v
	}
	if commandline.Fullscreen() {
		cfg.Video.Fullscreen = true
	}
	if commandline.Debug() {
		cfg.Logging.Level = "debug"
	}
	if v := commandline.LogFile(); v != "" {
		cfg.Logging.LogFile = v
	}
	if v := commandline.Metrics(); v != "" {
		cfg.Metrics = v
	}
}

// ApplyCvars assigns the video settings backed by cvars and then the
// configured cvar values. Unknown names are reported together.
func (c *Config) ApplyCvars() error {
	cvars.VideoFsaa.SetByString(strconv.Itoa(c.Video.Fsaa))
	cvars.VideoFullscreen.SetByString(btoa(c.Video.Fullscreen))
	cvars.VideoVSync.SetByString(btoa(c.Video.VSync))

	names := make([]string, 0, len(c.Cvars))
	for k := range c.Cvars {
		names = append(names, k)
	}
	sort.Strings(names)
	var unknown []string
	for _, n := range names {
		if err := cvar.Set(n, c.Cvars[n]); err != nil {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		return errors.Errorf("unknown cvars %v", unknown)
	}
	return nil
}

func btoa(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
