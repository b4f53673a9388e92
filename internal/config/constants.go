package config

// Experiment defaults
const (
	DefaultDegree       = 7   // n in t^(2n)
	DefaultWindowFactor = 100 // W = WindowFactor·n
	DefaultKMin         = 0
	DefaultKMax         = 20
)

// DefaultPeriods lists the candidate periods T.
var DefaultPeriods = []float64{4, 8, 16, 32, 64, 128}

// Base-function plot defaults
const (
	DefaultBaseMin     = -2.0
	DefaultBaseMax     = 2.0
	DefaultBaseSamples = 500
	minBaseSamples     = 2
)

// Evaluation defaults
const (
	DefaultPrecision           = 256 // Mantissa bits for the exact method
	DefaultQuadratureOrder     = 16  // Gauss-Legendre nodes per panel
	DefaultPanelsPerHalfPeriod = 1
	minPrecision               = 53
	minQuadratureOrder         = 2
)

// Output defaults
const (
	DefaultOutputDir = "figures"
	DefaultFormat    = FormatPNG
)
