// Package plotting renders the diagnostic figures of the power-function
// transform experiment with gonum/plot.
package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tphakala/go-power-spectrum/internal/transform"
)

// ErrNoData is returned when a figure has nothing to draw.
var ErrNoData = errors.New("no data to plot")

// Figure is a renderable diagnostic figure.
type Figure interface {
	// Save writes the figure to path. The format is taken from the file
	// extension (png, svg, pdf, ...).
	Save(path string) error
}

// Quantity selects which part of F a figure shows.
type Quantity int

const (
	// RealPart plots Re(F(w_k)).
	RealPart Quantity = iota

	// AmplitudeSpectrum plots |F(w_k)|.
	AmplitudeSpectrum
)

func (q Quantity) values(s *transform.Series) []float64 {
	if q == AmplitudeSpectrum {
		return s.Amplitudes()
	}
	return s.Real()
}

func (q Quantity) label() string {
	if q == AmplitudeSpectrum {
		return amplitudeLabel
	}
	return realLabel
}

func (q Quantity) color() color.Color {
	if q == AmplitudeSpectrum {
		return amplitudeColor
	}
	return realColor
}

func (q Quantity) overlayTitle() string {
	if q == AmplitudeSpectrum {
		return "Amplitude |F(w_k)| for different T values"
	}
	return "Real part of F(w_k) for different T values"
}

// Grid is a figure made of several plots laid out in rows and columns.
type Grid struct {
	Plots  [][]*plot.Plot
	Width  vg.Length
	Height vg.Length
}

// Save implements Figure.
func (g *Grid) Save(path string) error {
	if len(g.Plots) == 0 || len(g.Plots[0]) == 0 {
		return ErrNoData
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	c, err := draw.NewFormattedCanvas(g.Width, g.Height, format)
	if err != nil {
		return fmt.Errorf("failed to create %q canvas: %w", format, err)
	}

	tiles := draw.Tiles{
		Rows:      len(g.Plots),
		Cols:      len(g.Plots[0]),
		PadX:      gridPad,
		PadY:      gridPad,
		PadTop:    gridPad,
		PadBottom: gridPad,
		PadLeft:   gridPad,
		PadRight:  gridPad,
	}
	canvases := plot.Align(g.Plots, tiles, draw.New(c))
	for i, row := range g.Plots {
		for j, p := range row {
			p.Draw(canvases[i][j])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create figure file: %w", err)
	}
	if _, err := c.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write figure: %w", err)
	}
	return f.Close()
}

// Single is a figure holding one plot.
type Single struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length
}

// Save implements Figure.
func (s *Single) Save(path string) error {
	if err := s.Plot.Save(s.Width, s.Height, path); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}
	return nil
}

// StemGrid lays out one stem plot per period, two per row.
func StemGrid(series []transform.Series, q Quantity) (*Grid, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	rows := (len(series) + gridCols - 1) / gridCols
	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, gridCols)
	}

	for i := range series {
		p, err := stemPlot(&series[i], q)
		if err != nil {
			return nil, err
		}
		plots[i/gridCols][i%gridCols] = p
	}

	// Pad an incomplete last row with blank plots.
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] == nil {
				blank := plot.New()
				blank.HideAxes()
				plots[r][c] = blank
			}
		}
	}

	return &Grid{Plots: plots, Width: gridWidth, Height: gridHeight}, nil
}

func stemPlot(s *transform.Series, q Quantity) (*plot.Plot, error) {
	stems, err := NewStems(xys(s.HarmonicsFloat(), q.values(s)))
	if err != nil {
		return nil, err
	}
	stems.SetColor(q.color())

	p := plot.New()
	p.X.Label.Text = harmonicLabel
	p.Y.Label.Text = q.label()
	p.Add(plotter.NewGrid(), stems)
	p.Legend.Top = true
	p.Legend.Add(fmt.Sprintf("%s, T = %g", q.label(), s.Period), stems)
	return p, nil
}

// Overlay draws one line per period on shared axes.
func Overlay(series []transform.Series, q Quantity) (*Single, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = q.overlayTitle()
	p.X.Label.Text = harmonicLabel
	p.Y.Label.Text = q.label()
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i := range series {
		s := &series[i]
		line, points, err := plotter.NewLinePoints(xys(s.HarmonicsFloat(), q.values(s)))
		if err != nil {
			return nil, err
		}
		c := plotutil.Color(i)
		line.Color = c
		points.Color = c
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(markerRadius)

		p.Add(line, points)
		p.Legend.Add(fmt.Sprintf("T = %g", s.Period), line, points)
	}

	return &Single{Plot: p, Width: overlayWidth, Height: overlayHeight}, nil
}

// BaseFunction plots t^(2n) on the sample grid ts with dashed coordinate axes.
func BaseFunction(degree int, ts []float64) (*Single, error) {
	if len(ts) == 0 {
		return nil, ErrNoData
	}

	f := transform.Power(2 * degree)
	ys := make([]float64, len(ts))
	for i, t := range ts {
		ys[i] = f(t)
	}

	curve, err := plotter.NewLine(xys(ts, ys))
	if err != nil {
		return nil, err
	}
	curve.Color = baseColor

	yMin, yMax := min(floats.Min(ys), 0), max(floats.Max(ys), 0)
	xMin, xMax := min(floats.Min(ts), 0), max(floats.Max(ts), 0)
	hAxis, err := axisLine(xMin, 0, xMax, 0)
	if err != nil {
		return nil, err
	}
	vAxis, err := axisLine(0, yMin, 0, yMax)
	if err != nil {
		return nil, err
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = baseGridColor
	grid.Horizontal.Color = baseGridColor

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Plot of t^(2n) for n = %d", degree)
	p.X.Label.Text = baseXLabel
	p.Y.Label.Text = baseYLabel
	p.Add(grid, hAxis, vAxis, curve)
	p.Legend.Top = true
	p.Legend.Add(fmt.Sprintf("t^(2n), n=%d", degree), curve)

	return &Single{Plot: p, Width: baseWidth, Height: baseHeight}, nil
}

func axisLine(x0, y0, x1, y1 float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, err
	}
	l.Color = axisColor
	l.Width = vg.Points(axisLineWidth)
	l.Dashes = []vg.Length{vg.Points(dashOn), vg.Points(dashOff)}
	return l, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
