// Package quadrature implements composite Gauss-Legendre integration of
// smooth functions multiplied by a trigonometric factor.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/integrate/quad"
)

var (
	// ErrInvalidRule is returned when the rule order or panel density is unusable.
	ErrInvalidRule = errors.New("invalid quadrature rule")

	// ErrTooManyPanels is returned when resolving the oscillation would need
	// more than MaxPanels panels.
	ErrTooManyPanels = errors.New("oscillation too fast to resolve")
)

// Integrator evaluates
//
//	C = ∫_lo^hi f(t)·cos(rate·t) dt
//	S = ∫_lo^hi f(t)·sin(rate·t) dt
//
// by splitting [lo, hi] into equal panels, each no wider than a fraction of
// half a period of the trigonometric factor, and applying an n-point
// Gauss-Legendre rule on every panel.
//
// The rule nodes are computed once on [-1, 1] by gonum and mapped affinely
// onto each panel. Panel sums are SIMD dot products of the rule weights
// with the sampled integrand.
//
// An Integrator holds scratch buffers and is not safe for concurrent use.
type Integrator struct {
	order               int
	panelsPerHalfPeriod int
	minPanels           int

	// Reference rule on [-1, 1]
	nodes   []float64
	weights []float64

	// Working buffers (reused across panels)
	cosVals []float64
	sinVals []float64
}

// New creates an Integrator with the given rule order and panel density.
func New(order, panelsPerHalfPeriod int) (*Integrator, error) {
	if order < minOrder {
		return nil, fmt.Errorf("%w: order %d < %d", ErrInvalidRule, order, minOrder)
	}
	if panelsPerHalfPeriod < 1 {
		return nil, fmt.Errorf("%w: %d panels per half period", ErrInvalidRule, panelsPerHalfPeriod)
	}

	nodes := make([]float64, order)
	weights := make([]float64, order)
	quad.Legendre{}.FixedLocations(nodes, weights, referenceMin, referenceMax)

	return &Integrator{
		order:               order,
		panelsPerHalfPeriod: panelsPerHalfPeriod,
		minPanels:           DefaultMinPanels,
		nodes:               nodes,
		weights:             weights,
		cosVals:             make([]float64, order),
		sinVals:             make([]float64, order),
	}, nil
}

// Order returns the number of nodes per panel.
func (q *Integrator) Order() int {
	return q.order
}

// PanelCount returns the number of panels used on [lo, hi] for the given rate.
// It fails with ErrTooManyPanels when the count is not finite or exceeds
// MaxPanels.
func (q *Integrator) PanelCount(rate, lo, hi float64) (int, error) {
	needed := math.Ceil(math.Abs(rate) / math.Pi * (hi - lo) * float64(q.panelsPerHalfPeriod))
	if math.IsNaN(needed) || needed > MaxPanels {
		return 0, fmt.Errorf("%w: rate %v on [%v, %v] needs %v panels (max %d)",
			ErrTooManyPanels, rate, lo, hi, needed, MaxPanels)
	}
	return max(int(needed), q.minPanels), nil
}

// Integrate returns ∫_lo^hi f(t) dt over the minimum panel count.
func (q *Integrator) Integrate(f func(float64) float64, lo, hi float64) float64 {
	width := (hi - lo) / float64(q.minPanels)
	var sum float64
	for p := range q.minPanels {
		a := lo + float64(p)*width
		sum += quad.Fixed(f, a, a+width, q.order, quad.Legendre{}, 0)
	}
	return sum
}

// Oscillatory returns the cosine and sine weighted integrals of f on [lo, hi].
func (q *Integrator) Oscillatory(f func(float64) float64, rate, lo, hi float64) (c, s float64, err error) {
	if rate == 0 {
		return q.Integrate(f, lo, hi), 0, nil
	}

	panels, err := q.PanelCount(rate, lo, hi)
	if err != nil {
		return 0, 0, err
	}
	halfWidth := (hi - lo) / float64(panels) / halfDivisor

	for p := range panels {
		center := lo + (halfDivisor*float64(p)+1)*halfWidth
		for j, x := range q.nodes {
			t := center + halfWidth*x
			v := f(t)
			sn, cs := math.Sincos(rate * t)
			q.cosVals[j] = v * cs
			q.sinVals[j] = v * sn
		}
		c += halfWidth * f64.DotProductUnsafe(q.weights, q.cosVals)
		s += halfWidth * f64.DotProductUnsafe(q.weights, q.sinVals)
	}
	return c, s, nil
}
