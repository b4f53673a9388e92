package transform

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Series holds F sampled at w_k = 2π·k/T for one period T.
type Series struct {
	Period      float64
	Harmonics   []int
	Frequencies []float64
	Results     []Result
}

// Real returns Re(F(w_k)) for every harmonic.
func (s *Series) Real() []float64 {
	out := make([]float64, len(s.Results))
	for i, r := range s.Results {
		out[i] = r.Real
	}
	return out
}

// Imag returns Im(F(w_k)) for every harmonic.
func (s *Series) Imag() []float64 {
	out := make([]float64, len(s.Results))
	for i, r := range s.Results {
		out[i] = r.Imag
	}
	return out
}

// Amplitudes returns |F(w_k)| for every harmonic.
func (s *Series) Amplitudes() []float64 {
	out := make([]float64, len(s.Results))
	for i, r := range s.Results {
		out[i] = r.Amplitude()
	}
	return out
}

// HarmonicsFloat returns the harmonic indices as float64, for plotting.
func (s *Series) HarmonicsFloat() []float64 {
	out := make([]float64, len(s.Harmonics))
	for i, k := range s.Harmonics {
		out[i] = float64(k)
	}
	return out
}

// Sweep evaluates F for every period and harmonic, in order, and returns one
// Series per period. The first evaluation error aborts the sweep.
func Sweep(eval Evaluator, periods []float64, harmonics []int, logger logrus.FieldLogger) ([]Series, error) {
	if logger == nil {
		logger = discardLogger()
	}

	series := make([]Series, 0, len(periods))
	for _, period := range periods {
		s := Series{
			Period:      period,
			Harmonics:   append([]int(nil), harmonics...),
			Frequencies: make([]float64, len(harmonics)),
			Results:     make([]Result, len(harmonics)),
		}

		for i, k := range harmonics {
			w := AngularFrequency(k, period)
			r, err := eval.Evaluate(w)
			if err != nil {
				return nil, fmt.Errorf("period %v, k=%d: %w", period, k, err)
			}
			s.Frequencies[i] = w
			s.Results[i] = r

			logger.WithFields(logrus.Fields{
				"method": eval.Name(),
				"period": period,
				"k":      k,
				"w":      w,
			}).Debugf("Re=%.6e Im=%.6e", r.Real, r.Imag)
		}
		series = append(series, s)
	}
	return series, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
