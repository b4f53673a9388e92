// Package config holds the parameters of the power-function transform experiment.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid experiment configuration")

// Method selects how the transform integral is evaluated.
type Method string

const (
	// MethodQuadrature uses composite Gauss-Legendre quadrature in float64.
	MethodQuadrature Method = "quadrature"

	// MethodExact uses the integration-by-parts closed form in arbitrary precision.
	MethodExact Method = "exact"
)

// Format is the file format figures are written in.
type Format string

// Supported figure formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// Config holds experiment configuration.
type Config struct {
	// Degree is n in the integrand t^(2n).
	Degree int

	// WindowFactor scales the truncation window: W = WindowFactor·Degree.
	WindowFactor int

	// Periods are the candidate periods T, one sweep each.
	Periods []float64

	// KMin and KMax bound the harmonic indices (inclusive).
	KMin int
	KMax int

	// BaseMin, BaseMax and BaseSamples describe the sample grid for the
	// base-function figure.
	BaseMin     float64
	BaseMax     float64
	BaseSamples int

	// Method selects the evaluator.
	Method Method

	// Precision is the mantissa size in bits used by MethodExact.
	Precision uint

	// QuadratureOrder is the number of Gauss-Legendre nodes per panel and
	// PanelsPerHalfPeriod the panel density used by MethodQuadrature.
	QuadratureOrder     int
	PanelsPerHalfPeriod int

	// OutputDir and Format control where figures are written.
	OutputDir string
	Format    Format
}

// Default returns the configuration of the reference experiment:
// n = 7, W = 700, T ∈ {4, 8, …, 128}, k ∈ 0..20.
func Default() Config {
	return Config{
		Degree:              DefaultDegree,
		WindowFactor:        DefaultWindowFactor,
		Periods:             append([]float64(nil), DefaultPeriods...),
		KMin:                DefaultKMin,
		KMax:                DefaultKMax,
		BaseMin:             DefaultBaseMin,
		BaseMax:             DefaultBaseMax,
		BaseSamples:         DefaultBaseSamples,
		Method:              MethodQuadrature,
		Precision:           DefaultPrecision,
		QuadratureOrder:     DefaultQuadratureOrder,
		PanelsPerHalfPeriod: DefaultPanelsPerHalfPeriod,
		OutputDir:           DefaultOutputDir,
		Format:              DefaultFormat,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Degree < 1 {
		return fmt.Errorf("%w: degree must be >= 1, got %d", ErrInvalidConfig, c.Degree)
	}
	if c.WindowFactor < 1 {
		return fmt.Errorf("%w: window factor must be >= 1, got %d", ErrInvalidConfig, c.WindowFactor)
	}
	if len(c.Periods) == 0 {
		return fmt.Errorf("%w: no periods", ErrInvalidConfig)
	}
	for _, p := range c.Periods {
		if !(p > 0) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: period must be positive and finite, got %v", ErrInvalidConfig, p)
		}
	}
	if c.KMax < c.KMin {
		return fmt.Errorf("%w: harmonic range %d..%d is empty", ErrInvalidConfig, c.KMin, c.KMax)
	}
	if c.BaseSamples < minBaseSamples || !(c.BaseMax > c.BaseMin) {
		return fmt.Errorf("%w: base range [%v, %v] with %d samples", ErrInvalidConfig,
			c.BaseMin, c.BaseMax, c.BaseSamples)
	}

	switch c.Method {
	case MethodQuadrature:
		if c.QuadratureOrder < minQuadratureOrder || c.PanelsPerHalfPeriod < 1 {
			return fmt.Errorf("%w: quadrature order %d, %d panels per half period", ErrInvalidConfig,
				c.QuadratureOrder, c.PanelsPerHalfPeriod)
		}
	case MethodExact:
		if c.Precision < minPrecision {
			return fmt.Errorf("%w: precision must be >= %d bits, got %d", ErrInvalidConfig,
				minPrecision, c.Precision)
		}
	default:
		return fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, c.Method)
	}

	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}

// Exponent returns 2n.
func (c *Config) Exponent() int {
	return 2 * c.Degree
}

// HalfWidth returns W = WindowFactor·n.
func (c *Config) HalfWidth() float64 {
	return float64(c.WindowFactor * c.Degree)
}

// Harmonics returns the harmonic indices KMin..KMax.
func (c *Config) Harmonics() []int {
	ks := make([]int, 0, c.KMax-c.KMin+1)
	for k := c.KMin; k <= c.KMax; k++ {
		ks = append(ks, k)
	}
	return ks
}

// BaseGrid returns BaseSamples evenly spaced points on [BaseMin, BaseMax].
// Both endpoints are exact.
func (c *Config) BaseGrid() []float64 {
	grid := floats.Span(make([]float64, c.BaseSamples), c.BaseMin, c.BaseMax)
	grid[len(grid)-1] = c.BaseMax
	return grid
}

// ParseMethod parses a method name, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(s)); m {
	case MethodQuadrature, MethodExact:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, s)
	}
}

// ParseFormat parses a figure format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unsupported figure format %q", ErrInvalidConfig, s)
	}
}
