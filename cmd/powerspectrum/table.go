package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tphakala/go-power-spectrum/internal/transform"
)

// writeTable prints one row per period and harmonic.
func writeTable(w io.Writer, series []transform.Series) error {
	tw := tabwriter.NewWriter(w, tableMinWidth, tableTabWidth, tablePadding, tablePadChar, 0)
	fmt.Fprintln(tw, "T\tk\tw_k\tRe(F)\tIm(F)\t|F|")
	for _, s := range series {
		for i, k := range s.Harmonics {
			r := s.Results[i]
			fmt.Fprintf(tw, "%g\t%d\t%.6f\t%.9e\t%.9e\t%.9e\n",
				s.Period, k, s.Frequencies[i], r.Real, r.Imag, r.Amplitude())
		}
	}
	return tw.Flush()
}
