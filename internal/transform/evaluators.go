package transform

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tphakala/go-power-spectrum/internal/mathutil"
	"github.com/tphakala/go-power-spectrum/internal/quadrature"
)

// Evaluator names
const (
	quadratureName = "quadrature"
	exactName      = "exact"
)

// Quadrature evaluates F by composite Gauss-Legendre quadrature in float64.
// Real and imaginary parts are computed in one pass over the window.
//
// A Quadrature is not safe for concurrent use.
type Quadrature struct {
	integrand  func(float64) float64
	halfWidth  float64
	integrator *quadrature.Integrator
}

// NewQuadrature creates a quadrature evaluator for t^exp on [-halfWidth, halfWidth].
func NewQuadrature(exp int, halfWidth float64, order, panelsPerHalfPeriod int) (*Quadrature, error) {
	integrator, err := quadrature.New(order, panelsPerHalfPeriod)
	if err != nil {
		return nil, err
	}
	return &Quadrature{
		integrand:  Power(exp),
		halfWidth:  halfWidth,
		integrator: integrator,
	}, nil
}

// Name implements Evaluator.
func (q *Quadrature) Name() string { return quadratureName }

// Evaluate implements Evaluator.
func (q *Quadrature) Evaluate(w float64) (Result, error) {
	if err := checkFrequency(w); err != nil {
		return Result{}, err
	}
	// cos(-wπt) and sin(-wπt): integrate with rate -wπ directly.
	c, s, err := q.integrator.Oscillatory(q.integrand, -w*math.Pi, -q.halfWidth, q.halfWidth)
	if err != nil {
		return Result{}, fmt.Errorf("F(%v): %w", w, err)
	}
	return checkResult(w, Result{Real: c, Imag: s})
}

// Exact evaluates F from its closed form in arbitrary precision and rounds
// the result to float64.
type Exact struct {
	exp       int
	prec      uint
	halfWidth *big.Float
	pi        *big.Float
}

// NewExact creates a closed-form evaluator for t^exp on [-halfWidth, halfWidth]
// using prec mantissa bits.
func NewExact(exp int, halfWidth float64, prec uint) *Exact {
	return &Exact{
		exp:       exp,
		prec:      prec,
		halfWidth: mathutil.NewFloat(halfWidth, prec),
		pi:        mathutil.Pi(prec),
	}
}

// Name implements Evaluator.
func (e *Exact) Name() string { return exactName }

// Evaluate implements Evaluator.
func (e *Exact) Evaluate(w float64) (Result, error) {
	if err := checkFrequency(w); err != nil {
		return Result{}, err
	}
	c, s := e.Moments(w)

	// sin(-at) = -sin(at)
	re, _ := c.Float64()
	im, _ := s.Neg(s).Float64()
	return checkResult(w, Result{Real: re, Imag: im})
}

// Moments returns C = ∫ t^exp·cos(wπt) dt and S = ∫ t^exp·sin(wπt) dt at
// full precision.
func (e *Exact) Moments(w float64) (c, s *big.Float) {
	a := mathutil.NewFloat(w, e.prec)
	a.Mul(a, e.pi)
	return mathutil.PowerTrigMoments(e.exp, a, e.halfWidth, e.prec)
}
