package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-power-spectrum/internal/testutil"
)

func newDefault(t *testing.T) *Integrator {
	t.Helper()
	q, err := New(DefaultOrder, DefaultPanelsPerHalfPeriod)
	require.NoError(t, err)
	return q
}

// TestNew_InvalidRule tests that degenerate rules are rejected.
func TestNew_InvalidRule(t *testing.T) {
	_, err := New(1, DefaultPanelsPerHalfPeriod)
	require.ErrorIs(t, err, ErrInvalidRule)

	_, err = New(DefaultOrder, 0)
	require.ErrorIs(t, err, ErrInvalidRule)
}

// TestNew_ReferenceWeights tests that the reference weights sum to the interval length.
func TestNew_ReferenceWeights(t *testing.T) {
	q := newDefault(t)
	assert.Equal(t, DefaultOrder, q.Order())

	var sum float64
	for _, w := range q.weights {
		sum += w
	}
	assert.InDelta(t, referenceMax-referenceMin, sum, 1e-14)

	for _, x := range q.nodes {
		testutil.AssertInRange(t, x, referenceMin, referenceMax)
	}
}

// TestPanelCount tests panel sizing against the half-period bound.
func TestPanelCount(t *testing.T) {
	q := newDefault(t)

	tests := []struct {
		name   string
		rate   float64
		lo, hi float64
		want   int
	}{
		{"No oscillation", 0, -700, 700, DefaultMinPanels},
		{"Few half periods", math.Pi, -1, 1, DefaultMinPanels},
		{"Ten half periods", math.Pi, -5, 5, 10},
		{"Negative rate", -math.Pi, -5, 5, 10},
		{"Fractional rounds up", math.Pi, -5.05, 5.05, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.PanelCount(tt.rate, tt.lo, tt.hi)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestPanelCount_Unresolvable tests that rates beyond MaxPanels are rejected.
func TestPanelCount_Unresolvable(t *testing.T) {
	q := newDefault(t)
	one := func(float64) float64 { return 1 }

	tests := []struct {
		name   string
		rate   float64
		lo, hi float64
	}{
		{"Tiny period", 2 * math.Pi * math.Pi / 1e-300, -700, 700},
		{"Infinite rate", math.Inf(1), -700, 700},
		{"Negative infinite rate", math.Inf(-1), -700, 700},
		{"NaN rate", math.NaN(), -700, 700},
		{"One above limit", math.Pi, 0, MaxPanels + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := q.PanelCount(tt.rate, tt.lo, tt.hi)
			require.ErrorIs(t, err, ErrTooManyPanels)

			_, _, err = q.Oscillatory(one, tt.rate, tt.lo, tt.hi)
			require.ErrorIs(t, err, ErrTooManyPanels)
		})
	}

	got, err := q.PanelCount(math.Pi, 0, MaxPanels)
	require.NoError(t, err)
	assert.Equal(t, MaxPanels, got)
}

// TestIntegrate_Polynomial tests exactness on a degree-14 polynomial.
func TestIntegrate_Polynomial(t *testing.T) {
	q := newDefault(t)
	f := func(x float64) float64 { return math.Pow(x, 14) }

	got := q.Integrate(f, -1, 1)
	testutil.AssertRelativeError(t, 2.0/15.0, got, 1e-14)
}

// TestOscillatory_Constant tests ∫cos(at) and ∫sin(at) on a symmetric window.
func TestOscillatory_Constant(t *testing.T) {
	q := newDefault(t)
	one := func(float64) float64 { return 1 }

	c, s, err := q.Oscillatory(one, 2, -3, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(6), c, 1e-13)
	assert.InDelta(t, 0, s, 1e-13)
}

// TestOscillatory_Linear tests ∫t·sin(at) against its closed form.
func TestOscillatory_Linear(t *testing.T) {
	q := newDefault(t)
	const (
		a = 1.5
		w = 4.0
	)
	linear := func(x float64) float64 { return x }

	c, s, err := q.Oscillatory(linear, a, -w, w)
	require.NoError(t, err)
	want := 2 * (math.Sin(a*w)/(a*a) - w*math.Cos(a*w)/a)
	assert.InDelta(t, 0, c, 1e-13)
	assert.InDelta(t, want, s, 1e-12)
}

// TestOscillatory_ZeroRate tests that rate 0 reduces to plain integration.
func TestOscillatory_ZeroRate(t *testing.T) {
	q := newDefault(t)
	f := func(x float64) float64 { return x * x }

	c, s, err := q.Oscillatory(f, 0, -2, 2)
	require.NoError(t, err)
	testutil.AssertRelativeError(t, 16.0/3.0, c, 1e-14)
	assert.Zero(t, s)
}

// TestOscillatory_HighFrequency tests a rapidly oscillating factor over a wide window.
func TestOscillatory_HighFrequency(t *testing.T) {
	q := newDefault(t)
	const (
		a = 98.7
		w = 700.0
	)
	one := func(float64) float64 { return 1 }

	c, _, err := q.Oscillatory(one, a, -w, w)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sin(a*w)/a, c, 1e-10)
}

// BenchmarkOscillatory benchmarks the worst default-grid frequency.
func BenchmarkOscillatory(b *testing.B) {
	q, err := New(DefaultOrder, DefaultPanelsPerHalfPeriod)
	if err != nil {
		b.Fatal(err)
	}
	f := func(x float64) float64 {
		x2 := x * x
		x4 := x2 * x2
		x8 := x4 * x4
		return x8 * x4 * x2
	}
	for b.Loop() {
		_, _, _ = q.Oscillatory(f, 98.696, -700, 700)
	}
}
