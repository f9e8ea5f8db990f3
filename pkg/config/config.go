// Package config reads the optional configuration file of tvk.
//
// The configuration file is YAML. All keys are optional:
//
//	db: ~/.local/state/tvk/db.bolt
//	log: /tmp/tvk.log
//	texture-dir: ~/textures
//	poll-interval: 200ms
//	preview:
//	  width: 800
//	  height: 600
//	  title: tvk
//	  scale: 1
//
// Command-line flags take precedence over values from the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"src.tvk.sh/pkg/env"
	"src.tvk.sh/pkg/fsutil"
	"src.tvk.sh/pkg/logutil"
	"src.tvk.sh/pkg/prog"
)

var logger = logutil.GetLogger("[config] ")

// EnvVar is the environment variable that names the configuration file when
// -config is not given.
const EnvVar = env.TVK_CONFIG

// Config is the content of a configuration file.
type Config struct {
	DB           string        `yaml:"db"`
	Log          string        `yaml:"log"`
	TextureDir   string        `yaml:"texture-dir"`
	PollInterval time.Duration `yaml:"poll-interval"`
	Preview      Preview       `yaml:"preview"`
}

// Preview configures the preview window.
type Preview struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	Scale  float64 `yaml:"scale"`
}

// Default returns the configuration used when there is no configuration file.
func Default() Config {
	return Config{
		PollInterval: 200 * time.Millisecond,
		Preview:      Preview{Width: 800, Height: 600, Title: "tvk", Scale: 1},
	}
}

// Parse parses the content of a configuration file. Keys that are absent keep
// their default values. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	var errs []error
	if cfg.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll-interval must be positive, but is %v", cfg.PollInterval))
	}
	if cfg.Preview.Width <= 0 || cfg.Preview.Height <= 0 {
		errs = append(errs, fmt.Errorf("preview size must be positive, but is %dx%d",
			cfg.Preview.Width, cfg.Preview.Height))
	}
	if cfg.Preview.Scale <= 0 {
		errs = append(errs, fmt.Errorf("preview scale must be positive, but is %v", cfg.Preview.Scale))
	}
	return errors.Join(errs...)
}

// Path returns the path of the configuration file: the value of -config if
// given, otherwise the value of $TVK_CONFIG. An empty string means there is no
// configuration file.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Load reads the configuration file at path. An empty path gives the default
// configuration. Paths starting with ~/ are expanded.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.DB = fsutil.ExpandTilde(cfg.DB)
	cfg.Log = fsutil.ExpandTilde(cfg.Log)
	cfg.TextureDir = fsutil.ExpandTilde(cfg.TextureDir)
	logger.Printf("loaded %s: %+v", path, cfg)
	return cfg, nil
}

// ForPaths loads the configuration file named by the paths from the command
// line, and lets the paths from the command line override the values from the
// file.
func ForPaths(p *prog.Paths) (Config, error) {
	cfg, err := Load(Path(p.Config))
	if err != nil {
		return Config{}, err
	}
	if p.DB != "" {
		cfg.DB = p.DB
	}
	if p.Log != "" {
		cfg.Log = p.Log
	}
	if p.TextureDir != "" {
		cfg.TextureDir = p.TextureDir
	}
	return cfg, nil
}
