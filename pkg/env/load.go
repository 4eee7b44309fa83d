package env

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the theme file major version this package reads.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for theme files with a different major version.
var ErrUnsupportedVersion = errors.New("unsupported theme version")

// themeFile is the on-disk theme format:
//
//	version: v1.0.0
//	values:
//	  text_color: "#202020"
//	  button:
//	    color: "#3366cc"
//
// Nested maps are flattened into dotted names ("button.color").
type themeFile struct {
	Version string         `yaml:"version"`
	Values  map[string]any `yaml:"values"`
}

// LoadYAML parses a theme document into an Env.
func LoadYAML(data []byte) (*Env, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if tf.Version == "" {
		return nil, fmt.Errorf("theme is missing a version")
	}
	if !semver.IsValid(tf.Version) {
		return nil, fmt.Errorf("theme version %q is not valid semver", tf.Version)
	}
	if major := semver.Major(tf.Version); major != SupportedMajor {
		return nil, fmt.Errorf("%w: %s (want %s.x.y)", ErrUnsupportedVersion, tf.Version, SupportedMajor)
	}

	e := &Env{values: map[string]any{}, version: semver.Canonical(tf.Version)}
	flatten("", tf.Values, e.values)
	return e, nil
}

// LoadFile reads and parses a theme file.
func LoadFile(path string) (*Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	e, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(name, nested, out)
			continue
		}
		out[name] = v
	}
}
