// Package scene loads YAML scene descriptions for the shade CLI.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/shade/pkg/rendering"
)

// Config mirrors the scene YAML document.
type Config struct {
	Canvas CanvasConfig  `yaml:"canvas"`
	Shadow ShadowConfig  `yaml:"shadow"`
	Shapes []ShapeConfig `yaml:"shapes"`
}

// CanvasConfig describes the output surface.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background,omitempty"`
}

// ShadowConfig describes the shared shadow settings.
type ShadowConfig struct {
	Color string `yaml:"color,omitempty"`
}

// ShapeConfig describes one rounded rectangle in the scene.
type ShapeConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Radius    float64 `yaml:"radius"`
	Elevation float64 `yaml:"elevation"`
	Fill      string  `yaml:"fill,omitempty"`
}

// Scene is a resolved, validated scene ready for rendering.
type Scene struct {
	Width       int
	Height      int
	Background  rendering.Color
	ShadowColor rendering.Color
	Shapes      []Shape
}

// Shape is one resolved rounded rectangle.
type Shape struct {
	Rect      rendering.Rect
	Radius    float64
	Elevation float64
	Fill      rendering.Color
}

// Load reads and resolves a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return Resolve(&cfg)
}

// Resolve validates the config and fills in defaults: a white
// background, a black shadow, and a light gray shape fill.
func Resolve(cfg *Config) (*Scene, error) {
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d: both dimensions must be positive", cfg.Canvas.Width, cfg.Canvas.Height)
	}

	background := rendering.ColorWhite
	if cfg.Canvas.Background != "" {
		c, err := rendering.ParseColor(cfg.Canvas.Background)
		if err != nil {
			return nil, fmt.Errorf("canvas background: %w", err)
		}
		background = c
	}

	shadowColor := rendering.ColorBlack
	if cfg.Shadow.Color != "" {
		c, err := rendering.ParseColor(cfg.Shadow.Color)
		if err != nil {
			return nil, fmt.Errorf("shadow color: %w", err)
		}
		shadowColor = c
	}

	scene := &Scene{
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		Background:  background,
		ShadowColor: shadowColor,
	}

	for i, s := range cfg.Shapes {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("shape %d: size %gx%g must be positive", i, s.Width, s.Height)
		}
		if s.Radius <= 0 {
			return nil, fmt.Errorf("shape %d: corner radius %g must be positive", i, s.Radius)
		}
		if s.Radius > s.Width/2 || s.Radius > s.Height/2 {
			return nil, fmt.Errorf("shape %d: corner radius %g exceeds half the shape size", i, s.Radius)
		}
		if s.Elevation < 0 {
			return nil, fmt.Errorf("shape %d: elevation %g must be non-negative", i, s.Elevation)
		}

		fill := rendering.Color(0xFFEEEEEE)
		if s.Fill != "" {
			c, err := rendering.ParseColor(s.Fill)
			if err != nil {
				return nil, fmt.Errorf("shape %d fill: %w", i, err)
			}
			fill = c
		}

		scene.Shapes = append(scene.Shapes, Shape{
			Rect:      rendering.RectFromLTWH(s.X, s.Y, s.Width, s.Height),
			Radius:    s.Radius,
			Elevation: s.Elevation,
			Fill:      fill,
		})
	}

	return scene, nil
}
