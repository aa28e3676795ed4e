// Package theme loads stripes configuration from theme.toml and the
// environment.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/stripes/tw"
)

// DefaultFile is the theme file name looked up when none is given.
const DefaultFile = "theme.toml"

// StripesConfig is the [stripes] block of theme.toml. Unset fields keep
// the generator defaults.
type StripesConfig struct {
	Size            *string `toml:"size"`
	Angle           *string `toml:"angle"`
	Opacity         *int    `toml:"opacity"`
	BgOpacity       *int    `toml:"bg_opacity"`
	Prefix          *string `toml:"prefix"`
	IncludeDefaults *bool   `toml:"include_defaults"`
}

// fileConfig is the part of theme.toml decoded without ordering.
// [theme.colors] is read separately by parseColors.
type fileConfig struct {
	Stripes StripesConfig `toml:"stripes"`
}

// Theme is a loaded theme file.
type Theme struct {
	Path    string        // empty when no file was found
	Colors  tw.ColorTable // user colours in file order
	Stripes StripesConfig
}

// Load reads the theme file at path. A missing file is not an error: the
// returned theme then holds no user colours and default options.
func Load(path string) (*Theme, error) {
	t := &Theme{}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	t, err = Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// Parse decodes theme.toml content.
func Parse(data []byte) (*Theme, error) {
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	colors, err := parseColors(data)
	if err != nil {
		return nil, err
	}

	return &Theme{Colors: colors, Stripes: cfg.Stripes}, nil
}

// Options returns the generator options from the [stripes] block.
func (t *Theme) Options() tw.Options {
	return tw.Options{
		Size:      t.Stripes.Size,
		Angle:     t.Stripes.Angle,
		Opacity:   t.Stripes.Opacity,
		BgOpacity: t.Stripes.BgOpacity,
		Prefix:    t.Stripes.Prefix,
	}
}

// Table returns the colour table to generate from: the default palette
// with user colours applied on top, or the user colours alone when
// include_defaults is false.
func (t *Theme) Table() tw.ColorTable {
	if t.Stripes.IncludeDefaults != nil && !*t.Stripes.IncludeDefaults {
		return t.Colors
	}
	return tw.DefaultPalette().Merge(t.Colors)
}

// Find looks for a theme file in common locations under dir.
func Find(dir string) string {
	locations := []string{
		DefaultFile,
		filepath.Join("config", DefaultFile),
		filepath.Join(".stripes", DefaultFile),
	}
	for _, loc := range locations {
		path := filepath.Join(dir, loc)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, DefaultFile)
}

// Starter is the theme.toml written by `stripes init`.
const Starter = `# stripes theme configuration

[stripes]
size = "7.07px"
angle = "135deg"
opacity = 50
bg_opacity = 10
# prefix = "bg-stripes"
# include_defaults = true

# Colours are generated in the order written. Within a scale each
# shade fills with the previous shade, so keep shades in ascending order.
[theme.colors]
brand = "#0ea5e9"

[theme.colors.ink]
DEFAULT = "#1f2937"
100 = "#f3f4f6"
500 = "#6b7280"
900 = "#111827"
`
