package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyzaun/safebooks-icon/internal/models"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1024, cfg.Canvas.Size)
	assert.Equal(t, "#ffffff", cfg.Canvas.Background)
	assert.Equal(t, 480, cfg.Rings.Outer.Radius)
	assert.Equal(t, 80, cfg.Rings.Outer.StrokeWidth)
	assert.Equal(t, 250, cfg.Rings.Inner.Radius)
	assert.Equal(t, 50, cfg.Rings.Inner.StrokeWidth)
	assert.Equal(t, 60, cfg.Arrow.StrokeWidth)
	assert.Equal(t, "#1E90FF", cfg.Gradient.Stops[0].Color)
	assert.Equal(t, "#00BFFF", cfg.Gradient.Stops[1].Color)
}

func TestLoad_IgnoresEnvironment(t *testing.T) {
	t.Setenv("CANVAS_SIZE", "64")
	t.Setenv("SERVER_PORT", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Gradient.Stops[0].Color = "#123456"

	b := Default()
	assert.Equal(t, "#1E90FF", b.Gradient.Stops[0].Color)
}

func TestConfig_Center(t *testing.T) {
	assert.Equal(t, models.Point{X: 512, Y: 512}, Default().Center())
}

func TestConfig_GradientURL(t *testing.T) {
	assert.Equal(t, "url(#arrowGradient)", Default().GradientURL())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero canvas",
			mutate:  func(c *Config) { c.Canvas.Size = 0 },
			wantErr: "Config.Canvas.Size",
		},
		{
			name:    "bad background color",
			mutate:  func(c *Config) { c.Canvas.Background = "white" },
			wantErr: "Config.Canvas.Background",
		},
		{
			name:    "negative stroke width",
			mutate:  func(c *Config) { c.Rings.Inner.StrokeWidth = -1 },
			wantErr: "Config.Rings.Inner.StrokeWidth",
		},
		{
			name:    "empty gradient id",
			mutate:  func(c *Config) { c.Gradient.ID = "" },
			wantErr: "Config.Gradient.ID",
		},
		{
			name:    "single gradient stop",
			mutate:  func(c *Config) { c.Gradient.Stops = c.Gradient.Stops[:1] },
			wantErr: "Config.Gradient.Stops",
		},
		{
			name:    "stop offset above 100",
			mutate:  func(c *Config) { c.Gradient.Stops[1].Offset = 150 },
			wantErr: "Offset",
		},
		{
			name:    "stop opacity above 1",
			mutate:  func(c *Config) { c.Gradient.Stops[0].Opacity = 2 },
			wantErr: "Opacity",
		},
		{
			name:    "outer ring larger than canvas",
			mutate:  func(c *Config) { c.Rings.Outer.Radius = 600 },
			wantErr: "exceeds half canvas",
		},
		{
			name:    "inner ring not inside outer",
			mutate:  func(c *Config) { c.Rings.Inner.Radius = 480 },
			wantErr: "must be smaller",
		},
		{
			name:    "arrow point off canvas",
			mutate:  func(c *Config) { c.Arrow.Head[1][1] = models.Point{X: 900, Y: 0} },
			wantErr: "900,0",
		},
		{
			name: "gradient stops out of order",
			mutate: func(c *Config) {
				c.Gradient.Stops[0].Offset = 80
				c.Gradient.Stops[1].Offset = 20
			},
			wantErr: "before previous stop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
