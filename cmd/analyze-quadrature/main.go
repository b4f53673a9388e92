// Command analyze-quadrature compares the Gauss-Legendre quadrature against
// the closed form on the reference grid and prints the error per period.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/tphakala/go-power-spectrum/internal/config"
	"github.com/tphakala/go-power-spectrum/internal/transform"
)

const (
	// Display limits
	maxHarmonicsToShow = 5 // Harmonics printed per period before the summary line
)

func main() {
	order := flag.Int("order", config.DefaultQuadratureOrder, "Gauss-Legendre nodes per panel")
	panels := flag.Int("panels", config.DefaultPanelsPerHalfPeriod, "Panels per half period")
	precision := flag.Uint("precision", config.DefaultPrecision, "Mantissa bits for the closed form")
	flag.Parse()

	cfg := config.Default()
	cfg.QuadratureOrder = *order
	cfg.PanelsPerHalfPeriod = *panels
	cfg.Precision = *precision

	quad, err := transform.NewQuadrature(cfg.Exponent(), cfg.HalfWidth(), cfg.QuadratureOrder, cfg.PanelsPerHalfPeriod)
	if err != nil {
		log.Fatal(err)
	}
	exact := transform.NewExact(cfg.Exponent(), cfg.HalfWidth(), cfg.Precision)

	zero, err := exact.Evaluate(0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Quadrature vs Closed Form ===")
	fmt.Printf("  n = %d, W = %g, order = %d, panels/half-period = %d, precision = %d bits\n",
		cfg.Degree, cfg.HalfWidth(), cfg.QuadratureOrder, cfg.PanelsPerHalfPeriod, cfg.Precision)
	fmt.Printf("  F(0) = %.15e (2·W^15/15 = %.15e)\n\n", zero.Real, 2*math.Pow(cfg.HalfWidth(), 15)/15)

	var worst float64
	for _, period := range cfg.Periods {
		fmt.Printf("T = %g\n", period)
		var periodWorst float64
		for _, k := range cfg.Harmonics() {
			w := transform.AngularFrequency(k, period)

			want, err := exact.Evaluate(w)
			if err != nil {
				log.Fatal(err)
			}
			got, err := quad.Evaluate(w)
			if err != nil {
				log.Fatal(err)
			}

			// Errors are scaled by F(0), the natural magnitude of the transform.
			errRe := math.Abs(got.Real-want.Real) / zero.Real
			errIm := math.Abs(got.Imag-want.Imag) / zero.Real
			periodWorst = max(periodWorst, errRe, errIm)

			if k < cfg.KMin+maxHarmonicsToShow {
				fmt.Printf("  k=%2d  w=%9.6f  Re=% .9e  err(Re)=%.2e  err(Im)=%.2e\n",
					k, w, want.Real, errRe, errIm)
			}
		}
		fmt.Printf("  ... worst scaled error for T = %g: %.2e\n", period, periodWorst)
		worst = max(worst, periodWorst)
	}

	fmt.Printf("\nWorst scaled error over the grid: %.2e\n", worst)
}
