package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-power-spectrum/internal/config"
	"github.com/tphakala/go-power-spectrum/internal/quadrature"
	"github.com/tphakala/go-power-spectrum/internal/testutil"
)

// zeroFrequencyValue is ∫_{-700}^{700} t^14 dt = 2·700^15/15.
var zeroFrequencyValue = 2 * math.Pow(700, 15) / 15

func newEvaluators(t *testing.T) []Evaluator {
	t.Helper()
	cfg := config.Default()

	quad, err := New(&cfg)
	require.NoError(t, err)

	cfg.Method = config.MethodExact
	exact, err := New(&cfg)
	require.NoError(t, err)

	return []Evaluator{quad, exact}
}

func TestPower(t *testing.T) {
	tests := []struct {
		exp  int
		t    float64
		want float64
	}{
		{0, 3.7, 1},
		{1, -2.5, -2.5},
		{2, -3, 9},
		{14, 2, 16384},
		{14, -1.5, math.Pow(1.5, 14)},
	}
	for _, tt := range tests {
		testutil.AssertRelativeError(t, tt.want, Power(tt.exp)(tt.t), 1e-15)
	}
}

func TestAngularFrequency(t *testing.T) {
	assert.Zero(t, AngularFrequency(0, 4))
	assert.InDelta(t, math.Pi/2, AngularFrequency(1, 4), 1e-15)
	assert.InDelta(t, 2*math.Pi*20/128, AngularFrequency(20, 128), 1e-15)
}

func TestAmplitude(t *testing.T) {
	assert.InDelta(t, 5.0, Amplitude(3, -4), 1e-15)
	assert.InDelta(t, 5.0, Result{Real: -3, Imag: 4}.Amplitude(), 1e-15)
	assert.Zero(t, Amplitude(0, 0))
}

// TestEvaluate_ZeroFrequency tests F(0) = 2·W^15/15 with zero imaginary part.
func TestEvaluate_ZeroFrequency(t *testing.T) {
	for _, eval := range newEvaluators(t) {
		t.Run(eval.Name(), func(t *testing.T) {
			r, err := eval.Evaluate(0)
			require.NoError(t, err)

			assert.Positive(t, r.Real)
			testutil.AssertRelativeError(t, zeroFrequencyValue, r.Real, 1e-12)
			assert.InDelta(t, 0, r.Imag, 0)
		})
	}
}

// TestEvaluate_AmplitudeBounds tests |F| >= |Re| and |F| >= |Im|.
func TestEvaluate_AmplitudeBounds(t *testing.T) {
	for _, eval := range newEvaluators(t) {
		t.Run(eval.Name(), func(t *testing.T) {
			for _, w := range []float64{0, 0.1, math.Pi / 2, 1.7, 5, 31.4} {
				r, err := eval.Evaluate(w)
				require.NoError(t, err)
				amp := r.Amplitude()
				assert.GreaterOrEqual(t, amp, math.Abs(r.Real), "w=%v", w)
				assert.GreaterOrEqual(t, amp, math.Abs(r.Imag), "w=%v", w)
			}
		})
	}
}

// TestEvaluate_SignSymmetry tests |F(w)| = |F(-w)| for the even integrand.
func TestEvaluate_SignSymmetry(t *testing.T) {
	for _, eval := range newEvaluators(t) {
		t.Run(eval.Name(), func(t *testing.T) {
			for _, w := range []float64{0.05, 1.3, 7.85} {
				pos, err := eval.Evaluate(w)
				require.NoError(t, err)
				neg, err := eval.Evaluate(-w)
				require.NoError(t, err)

				testutil.AssertScaledError(t, pos.Amplitude(), neg.Amplitude(),
					zeroFrequencyValue, testutil.SymmetryTolerance, "w=%v", w)
				testutil.AssertScaledError(t, pos.Real, neg.Real,
					zeroFrequencyValue, testutil.SymmetryTolerance, "w=%v", w)
			}
		})
	}
}

// TestQuadrature_MatchesExact tests the quadrature against the closed form
// over the full default grid.
func TestQuadrature_MatchesExact(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-grid comparison in short mode")
	}
	cfg := config.Default()

	quad, err := NewQuadrature(cfg.Exponent(), cfg.HalfWidth(), cfg.QuadratureOrder, cfg.PanelsPerHalfPeriod)
	require.NoError(t, err)
	exact := NewExact(cfg.Exponent(), cfg.HalfWidth(), cfg.Precision)

	for _, period := range cfg.Periods {
		for _, k := range cfg.Harmonics() {
			w := AngularFrequency(k, period)

			want, err := exact.Evaluate(w)
			require.NoError(t, err)
			got, err := quad.Evaluate(w)
			require.NoError(t, err)

			testutil.AssertScaledError(t, want.Real, got.Real, zeroFrequencyValue,
				testutil.ClosedFormTolerance, "Re, T=%v k=%d", period, k)
			testutil.AssertScaledError(t, want.Imag, got.Imag, zeroFrequencyValue,
				testutil.ClosedFormTolerance, "Im, T=%v k=%d", period, k)
		}
	}
}

// TestExact_ImaginaryPartVanishes tests Im(F) = 0 for an even exponent.
func TestExact_ImaginaryPartVanishes(t *testing.T) {
	exact := NewExact(14, 700, 256)
	for _, w := range []float64{0.3, 2.2, 31.4} {
		r, err := exact.Evaluate(w)
		require.NoError(t, err)
		assert.Zero(t, r.Imag)
	}
}

func TestEvaluate_InvalidFrequency(t *testing.T) {
	for _, eval := range newEvaluators(t) {
		for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := eval.Evaluate(w)
			require.ErrorIs(t, err, ErrInvalidFrequency)
		}
	}
}

func TestQuadrature_UnresolvableFrequency(t *testing.T) {
	cfg := config.Default()
	cfg.Periods = []float64{1e-300}
	require.NoError(t, cfg.Validate())

	eval, err := New(&cfg)
	require.NoError(t, err)

	_, err = eval.Evaluate(AngularFrequency(1, cfg.Periods[0]))
	require.ErrorIs(t, err, quadrature.ErrTooManyPanels)

	_, err = Sweep(eval, cfg.Periods, cfg.Harmonics(), nil)
	require.ErrorIs(t, err, quadrature.ErrTooManyPanels)
}

func TestExact_Overflow(t *testing.T) {
	exact := NewExact(300, 1e10, 256)
	_, err := exact.Evaluate(0)
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Degree = 0
	_, err := New(&cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNew_SelectsMethod(t *testing.T) {
	evals := newEvaluators(t)
	assert.IsType(t, &Quadrature{}, evals[0])
	assert.IsType(t, &Exact{}, evals[1])
	assert.Equal(t, "quadrature", evals[0].Name())
	assert.Equal(t, "exact", evals[1].Name())
}

// failingEvaluator fails at a chosen frequency.
type failingEvaluator struct {
	failAt float64
	calls  int
}

var errBoom = errors.New("boom")

func (f *failingEvaluator) Name() string { return "failing" }

func (f *failingEvaluator) Evaluate(w float64) (Result, error) {
	f.calls++
	if w == f.failAt {
		return Result{}, errBoom
	}
	return Result{Real: w, Imag: -w}, nil
}
