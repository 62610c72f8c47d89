package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/eyzaun/safebooks-icon/internal/models"
)

// Config holds all configuration for the icon generator
type Config struct {
	Canvas   CanvasConfig   `json:"canvas" yaml:"canvas"`
	Rings    RingsConfig    `json:"rings" yaml:"rings"`
	Arrow    ArrowConfig    `json:"arrow" yaml:"arrow"`
	Accent   AccentConfig   `json:"accent" yaml:"accent"`
	Gradient GradientConfig `json:"gradient" yaml:"gradient"`
}

// CanvasConfig holds the document canvas
type CanvasConfig struct {
	Size       int    `json:"size" yaml:"size" validate:"gt=0"`
	Background string `json:"background" yaml:"background" validate:"required,hexcolor"`
}

// RingConfig describes one stroked, unfilled circle centered on the canvas
type RingConfig struct {
	Radius      int    `json:"radius" yaml:"radius" validate:"gt=0"`
	StrokeWidth int    `json:"stroke_width" yaml:"stroke_width" validate:"gt=0"`
	Stroke      string `json:"stroke" yaml:"stroke" validate:"required,hexcolor"`
}

// RingsConfig holds the two concentric outlines
type RingsConfig struct {
	Outer RingConfig `json:"outer" yaml:"outer"`
	Inner RingConfig `json:"inner" yaml:"inner"`
}

// ArrowConfig holds the gradient-filled arrow: a shaft and a two-triangle head
type ArrowConfig struct {
	From        models.Point       `json:"from" yaml:"from"`
	To          models.Point       `json:"to" yaml:"to"`
	StrokeWidth int                `json:"stroke_width" yaml:"stroke_width" validate:"gt=0"`
	Head        [2][3]models.Point `json:"head" yaml:"head"`
}

// AccentConfig holds the curved accent stroke (quadratic Bezier)
type AccentConfig struct {
	Start       models.Point `json:"start" yaml:"start"`
	Control     models.Point `json:"control" yaml:"control"`
	End         models.Point `json:"end" yaml:"end"`
	StrokeWidth int          `json:"stroke_width" yaml:"stroke_width" validate:"gt=0"`
	Stroke      string       `json:"stroke" yaml:"stroke" validate:"required,hexcolor"`
}

// GradientConfig holds the arrow's linear gradient
type GradientConfig struct {
	ID    string       `json:"id" yaml:"id" validate:"required,alphanum"`
	Stops []StopConfig `json:"stops" yaml:"stops" validate:"min=2,dive"`
}

// StopConfig is one gradient stop; Offset is a percentage
type StopConfig struct {
	Offset  uint8   `json:"offset" yaml:"offset" validate:"lte=100"`
	Color   string  `json:"color" yaml:"color" validate:"required,hexcolor"`
	Opacity float64 `json:"opacity" yaml:"opacity" validate:"gte=0,lte=1"`
}

var validate = validator.New()

// Load returns the built-in icon configuration after validation.
// Nothing is read from the environment: the artwork is fixed.
func Load() (*Config, error) {
	config := Default()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Default returns the SafeBooks logo as authored
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Size:       1024,
			Background: "#ffffff",
		},
		Rings: RingsConfig{
			Outer: RingConfig{Radius: 480, StrokeWidth: 80, Stroke: "#000000"},
			Inner: RingConfig{Radius: 250, StrokeWidth: 50, Stroke: "#000000"},
		},
		Arrow: ArrowConfig{
			From:        models.Point{X: -200, Y: 200},
			To:          models.Point{X: 200, Y: -200},
			StrokeWidth: 60,
			Head: [2][3]models.Point{
				{{X: 200, Y: -200}, {X: 280, Y: -120}, {X: 120, Y: -280}},
				{{X: 280, Y: -120}, {X: 360, Y: -40}, {X: 200, Y: -200}},
			},
		},
		Accent: AccentConfig{
			Start:       models.Point{X: -150, Y: 150},
			Control:     models.Point{X: 0, Y: -50},
			End:         models.Point{X: 150, Y: -150},
			StrokeWidth: 50,
			Stroke:      "#000000",
		},
		Gradient: GradientConfig{
			ID: "arrowGradient",
			Stops: []StopConfig{
				{Offset: 0, Color: "#1E90FF", Opacity: 1},
				{Offset: 100, Color: "#00BFFF", Opacity: 1},
			},
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid %s: failed %q check", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}

	half := c.Canvas.Size / 2

	// Validate ring geometry
	if c.Rings.Outer.Radius > half {
		return fmt.Errorf("outer ring radius %d exceeds half canvas %d", c.Rings.Outer.Radius, half)
	}

	if c.Rings.Inner.Radius >= c.Rings.Outer.Radius {
		return fmt.Errorf("inner ring radius %d must be smaller than outer ring radius %d",
			c.Rings.Inner.Radius, c.Rings.Outer.Radius)
	}

	// Validate that every drawn point lies on the canvas
	points := []models.Point{c.Arrow.From, c.Arrow.To, c.Accent.Start, c.Accent.Control, c.Accent.End}
	for _, tri := range c.Arrow.Head {
		points = append(points, tri[:]...)
	}
	for _, p := range points {
		if !p.Within(half) {
			return fmt.Errorf("point %s lies outside the canvas", p)
		}
	}

	// Validate gradient stop order
	for i := 1; i < len(c.Gradient.Stops); i++ {
		if c.Gradient.Stops[i].Offset < c.Gradient.Stops[i-1].Offset {
			return fmt.Errorf("gradient stop %d offset %d%% is before previous stop", i, c.Gradient.Stops[i].Offset)
		}
	}

	return nil
}

// Center returns the canvas center used to translate the logo group
func (c *Config) Center() models.Point {
	return models.Point{X: c.Canvas.Size / 2, Y: c.Canvas.Size / 2}
}

// GradientURL returns the paint reference for the arrow gradient
func (c *Config) GradientURL() string {
	return fmt.Sprintf("url(#%s)", c.Gradient.ID)
}
