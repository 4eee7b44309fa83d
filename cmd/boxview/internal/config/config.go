// Package config loads the optional boxview.yaml next to the working
// directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up by Resolve.
const FileName = "boxview.yaml"

// Config represents the optional boxview.yaml configuration.
type Config struct {
	Title string      `yaml:"title,omitempty"`
	Theme string      `yaml:"theme,omitempty"`
	Image ImageConfig `yaml:"image"`
}

// ImageConfig holds defaults for the png command.
type ImageConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
	Scale  int `yaml:"scale,omitempty"`
}

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	Root   string
	Title  string
	Theme  string
	Width  int
	Height int
	Scale  int
}

// LoadOptional reads boxview.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads boxview.yaml (if present) and fills in defaults. A relative
// theme path is resolved against dir.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle(dir)
	}

	theme := strings.TrimSpace(cfg.Theme)
	if theme != "" && !filepath.IsAbs(theme) {
		theme = filepath.Join(dir, theme)
	}

	width, height, scale := cfg.Image.Width, cfg.Image.Height, cfg.Image.Scale
	if width <= 0 {
		width = 480
	}
	if height <= 0 {
		height = 320
	}
	if scale <= 0 {
		scale = 1
	}
	if err := CheckScale(scale); err != nil {
		return nil, err
	}

	return &Resolved{
		Root:   dir,
		Title:  title,
		Theme:  theme,
		Width:  width,
		Height: height,
		Scale:  scale,
	}, nil
}

// defaultTitle names the demo after the enclosing Go module when dir holds
// a go.mod, and after dir otherwise.
func defaultTitle(dir string) string {
	base := filepath.Base(dir)
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if path := modfile.ModulePath(data); path != "" {
			prefix, _, ok := module.SplitPathVersion(path)
			if ok {
				parts := strings.Split(prefix, "/")
				base = parts[len(parts)-1]
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "boxlayout"
	}
	return base
}

// MaxScale is the largest upscale factor accepted for PNG output.
const MaxScale = 8

// CheckScale rejects upscale factors outside 1..MaxScale.
func CheckScale(scale int) error {
	if scale < 1 || scale > MaxScale {
		return fmt.Errorf("image scale %d out of range (1-%d)", scale, MaxScale)
	}
	return nil
}
