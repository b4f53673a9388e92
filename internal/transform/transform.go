// Package transform evaluates the finite-window Fourier-type integral of an
// even power function:
//
//	F(w) = ∫_{-W}^{W} t^(2n)·e^{-i·w·π·t} dt
//
// split into its real part ∫ t^(2n)·cos(-wπt) dt and imaginary part
// ∫ t^(2n)·sin(-wπt) dt.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-power-spectrum/internal/config"
)

var (
	// ErrInvalidFrequency is returned for NaN or infinite angular frequencies.
	ErrInvalidFrequency = errors.New("invalid angular frequency")

	// ErrNonFinite is returned when an evaluation produces NaN or Inf.
	ErrNonFinite = errors.New("transform result is not finite")
)

// Result is the (real, imaginary) pair of F at one angular frequency.
type Result struct {
	Real float64
	Imag float64
}

// Amplitude returns |F(w)| = sqrt(Re² + Im²).
func (r Result) Amplitude() float64 {
	return Amplitude(r.Real, r.Imag)
}

// Amplitude returns the Euclidean norm of a real/imaginary pair.
func Amplitude(re, im float64) float64 {
	return math.Hypot(re, im)
}

// AngularFrequency returns w_k = 2π·k/T.
func AngularFrequency(k int, period float64) float64 {
	return 2 * math.Pi * float64(k) / period
}

// Evaluator computes F at a given angular frequency.
type Evaluator interface {
	// Evaluate returns the real and imaginary parts of F(w).
	Evaluate(w float64) (Result, error)

	// Name identifies the evaluation method.
	Name() string
}

// Power returns f(t) = t^exp for a non-negative integer exponent.
// The result is always real, matching the restriction of t^(2n) to its real value.
func Power(exp int) func(float64) float64 {
	return func(t float64) float64 {
		result := 1.0
		base := t
		for e := exp; e > 0; e >>= 1 {
			if e&1 == 1 {
				result *= base
			}
			base *= base
		}
		return result
	}
}

// New creates the evaluator selected by cfg.Method.
func New(cfg *config.Config) (Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Method {
	case config.MethodExact:
		return NewExact(cfg.Exponent(), cfg.HalfWidth(), cfg.Precision), nil
	case config.MethodQuadrature:
		return NewQuadrature(cfg.Exponent(), cfg.HalfWidth(), cfg.QuadratureOrder, cfg.PanelsPerHalfPeriod)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", config.ErrInvalidConfig, cfg.Method)
	}
}

func checkFrequency(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, w)
	}
	return nil
}

func checkResult(w float64, r Result) (Result, error) {
	if math.IsNaN(r.Real) || math.IsInf(r.Real, 0) || math.IsNaN(r.Imag) || math.IsInf(r.Imag, 0) {
		return Result{}, fmt.Errorf("%w: F(%v) = (%v, %v)", ErrNonFinite, w, r.Real, r.Imag)
	}
	return r, nil
}
