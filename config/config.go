// Package config loads liquid glass presets from YAML.
//
// Presets describe a surface in CSS pixels together with the host policies
// the engine leaves to its caller: minimum-size clamping and pixel density.
// Request converts a preset into the device-pixel glass.Request the engine
// expects.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/preview"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidSurface is returned when a preset has no usable surface size.
var ErrInvalidSurface = errors.New("config: surface width and height must be positive")

// Config holds a complete liquid glass preset.
type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	Shape   ShapeConfig   `yaml:"shape"`
	Swirl   SwirlConfig   `yaml:"swirl"`
	Region  []string      `yaml:"region"`
	Preview PreviewConfig `yaml:"preview"`
}

// SurfaceConfig holds the surface size and host policies.
type SurfaceConfig struct {
	Width        int     `yaml:"width"`         // CSS pixels
	Height       int     `yaml:"height"`        // CSS pixels
	PixelDensity float64 `yaml:"pixel_density"` // Device pixels per CSS pixel
	MinSize      int     `yaml:"min_size"`      // Smaller sides are enlarged to this (0 = off)
}

// ShapeConfig mirrors glass.Shape.
type ShapeConfig struct {
	BorderRadius  float64 `yaml:"border_radius"`
	EdgeThickness float64 `yaml:"edge_thickness"`
}

// SwirlConfig mirrors glass.Swirl.
type SwirlConfig struct {
	Intensity float64 `yaml:"intensity"`
	Scale     float64 `yaml:"scale"`
	Radius    float64 `yaml:"radius"`
	Offset    float64 `yaml:"offset"`
}

// PreviewConfig holds the backdrop filter settings used by preview.Render.
type PreviewConfig struct {
	Blur       float64    `yaml:"blur"`
	Brightness float64    `yaml:"brightness"`
	Saturation float64    `yaml:"saturation"`
	Tint       TintConfig `yaml:"tint"`
}

// TintConfig is a straight-alpha RGBA color.
type TintConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Default returns the embedded default preset.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads a preset from path on top of the embedded defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading preset: %w", err)
		}
		// Unmarshal into the defaults; only keys present in the file change.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing preset: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports whether the preset can be turned into a request.
func (c *Config) Validate() error {
	if c.Surface.Width <= 0 && c.Surface.MinSize <= 0 ||
		c.Surface.Height <= 0 && c.Surface.MinSize <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSurface, c.Surface.Width, c.Surface.Height)
	}
	if _, err := c.region(); err != nil {
		return err
	}
	return nil
}

// DeviceSize returns the surface size in device pixels after the minimum
// size policy and pixel density are applied.
func (c *Config) DeviceSize() glass.Size {
	d := c.density()
	w := max(c.Surface.Width, c.Surface.MinSize)
	h := max(c.Surface.Height, c.Surface.MinSize)
	return glass.Size{
		Width:  int(math.Round(float64(w) * d)),
		Height: int(math.Round(float64(h) * d)),
	}
}

// Request converts the preset into an engine request. The border radius is
// converted to device pixels.
func (c *Config) Request() (glass.Request, error) {
	if err := c.Validate(); err != nil {
		return glass.Request{}, err
	}
	region, err := c.region()
	if err != nil {
		return glass.Request{}, err
	}

	return glass.Request{
		Size:         c.DeviceSize(),
		PixelDensity: c.density(),
		Shape: glass.Shape{
			BorderRadius:  c.Shape.BorderRadius * c.density(),
			EdgeThickness: c.Shape.EdgeThickness,
		},
		Swirl: glass.Swirl{
			Intensity: c.Swirl.Intensity,
			Scale:     c.Swirl.Scale,
			Radius:    c.Swirl.Radius,
			Offset:    c.Swirl.Offset,
		},
		Region: region,
	}, nil
}

// PreviewOptions returns the compositing options for preview.Render.
func (c *Config) PreviewOptions() preview.Options {
	t := c.Preview.Tint
	return preview.Options{
		Blur:         c.Preview.Blur,
		Brightness:   c.Preview.Brightness,
		Saturation:   c.Preview.Saturation,
		Tint:         color.NRGBA{R: t.R, G: t.G, B: t.B, A: t.A},
		BorderRadius: c.Shape.BorderRadius,
		PixelDensity: c.density(),
	}
}

// SetRegion replaces the region from a glass.Region.
func (c *Config) SetRegion(r glass.Region) {
	if r.IsAll() {
		c.Region = []string{"all"}
		return
	}
	c.Region = make([]string, 0, 4)
	for _, corner := range r.Corners() {
		c.Region = append(c.Region, corner.String())
	}
}

// WriteYAML saves the preset to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshaling preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing preset: %w", err)
	}
	return nil
}

func (c *Config) density() float64 {
	if c.Surface.PixelDensity <= 0 {
		return 1
	}
	return c.Surface.PixelDensity
}

func (c *Config) region() (glass.Region, error) {
	r, err := glass.ParseRegion(strings.Join(c.Region, ","))
	if err != nil {
		return glass.Region{}, fmt.Errorf("config: region: %w", err)
	}
	return r, nil
}
