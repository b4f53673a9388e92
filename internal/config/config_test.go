package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 14, cfg.Exponent())
	assert.InDelta(t, 700.0, cfg.HalfWidth(), 0)
	assert.Equal(t, []float64{4, 8, 16, 32, 64, 128}, cfg.Periods)
	assert.Len(t, cfg.Harmonics(), 21)
	assert.Equal(t, 0, cfg.Harmonics()[0])
	assert.Equal(t, 20, cfg.Harmonics()[20])
}

func TestDefault_PeriodsNotShared(t *testing.T) {
	cfg := Default()
	cfg.Periods[0] = 99
	assert.InDelta(t, 4.0, DefaultPeriods[0], 0)
}

func TestBaseGrid(t *testing.T) {
	cfg := Default()
	grid := cfg.BaseGrid()

	require.Len(t, grid, DefaultBaseSamples)
	assert.InDelta(t, DefaultBaseMin, grid[0], 0)
	assert.InDelta(t, DefaultBaseMax, grid[len(grid)-1], 0)
	for i := 1; i < len(grid); i++ {
		assert.Greater(t, grid[i], grid[i-1])
	}
}

func TestBaseGrid_ExactEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		samples  int
	}{
		{"Default", DefaultBaseMin, DefaultBaseMax, DefaultBaseSamples},
		{"Asymmetric", -0.3, 1.7, 333},
		{"Two samples", -1, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.BaseMin, cfg.BaseMax, cfg.BaseSamples = tt.min, tt.max, tt.samples
			require.NoError(t, cfg.Validate())

			grid := cfg.BaseGrid()
			require.Len(t, grid, tt.samples)
			assert.Equal(t, tt.min, grid[0])
			assert.Equal(t, tt.max, grid[len(grid)-1])
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero degree", func(c *Config) { c.Degree = 0 }},
		{"zero window factor", func(c *Config) { c.WindowFactor = 0 }},
		{"no periods", func(c *Config) { c.Periods = nil }},
		{"negative period", func(c *Config) { c.Periods = []float64{4, -8} }},
		{"NaN period", func(c *Config) { c.Periods = []float64{math.NaN()} }},
		{"infinite period", func(c *Config) { c.Periods = []float64{math.Inf(1)} }},
		{"inverted harmonics", func(c *Config) { c.KMin, c.KMax = 5, 4 }},
		{"single base sample", func(c *Config) { c.BaseSamples = 1 }},
		{"inverted base range", func(c *Config) { c.BaseMin, c.BaseMax = 2, -2 }},
		{"unknown method", func(c *Config) { c.Method = "simpson" }},
		{"low precision", func(c *Config) { c.Method = MethodExact; c.Precision = 32 }},
		{"order too small", func(c *Config) { c.QuadratureOrder = 1 }},
		{"no panels", func(c *Config) { c.PanelsPerHalfPeriod = 0 }},
		{"unknown format", func(c *Config) { c.Format = "bmp" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_ExactIgnoresQuadratureFields(t *testing.T) {
	cfg := Default()
	cfg.Method = MethodExact
	cfg.QuadratureOrder = 0
	assert.NoError(t, cfg.Validate())
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("Exact")
	require.NoError(t, err)
	assert.Equal(t, MethodExact, m)

	m, err = ParseMethod("quadrature")
	require.NoError(t, err)
	assert.Equal(t, MethodQuadrature, m)

	_, err = ParseMethod("romberg")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"png", "SVG", "pdf"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("gif")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
