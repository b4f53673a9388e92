package plotting

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Stems implements the Plotter interface, drawing a vertical line from
// y = 0 to each point and a glyph at the point itself.
type Stems struct {
	plotter.XYs

	// LineStyle is the style of the stem lines.
	draw.LineStyle

	// GlyphStyle is the style of the markers at the stem tips.
	GlyphStyle draw.GlyphStyle
}

var (
	_ plot.Plotter     = (*Stems)(nil)
	_ plot.DataRanger  = (*Stems)(nil)
	_ plot.GlyphBoxer  = (*Stems)(nil)
	_ plot.Thumbnailer = (*Stems)(nil)
)

// NewStems returns a Stems plotter for the given points.
func NewStems(xys plotter.XYer) (*Stems, error) {
	data, err := plotter.CopyXYs(xys)
	if err != nil {
		return nil, err
	}
	glyph := plotter.DefaultGlyphStyle
	glyph.Shape = draw.CircleGlyph{}
	glyph.Radius = vg.Points(markerRadius)

	line := plotter.DefaultLineStyle
	line.Width = vg.Points(stemWidth)

	return &Stems{
		XYs:        data,
		LineStyle:  line,
		GlyphStyle: glyph,
	}, nil
}

// SetColor sets both the stem and marker colour.
func (s *Stems) SetColor(c color.Color) {
	s.LineStyle.Color = c
	s.GlyphStyle.Color = c
}

// Plot implements the plot.Plotter interface.
func (s *Stems) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	base := trY(0)
	for _, p := range s.XYs {
		x, y := trX(p.X), trY(p.Y)
		c.StrokeLine2(s.LineStyle, x, base, x, y)
		pt := vg.Point{X: x, Y: y}
		if c.Contains(pt) {
			c.DrawGlyph(s.GlyphStyle, pt)
		}
	}
}

// DataRange implements the plot.DataRanger interface. The y range always
// includes the stem base at zero.
func (s *Stems) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = plotter.XYRange(s)
	return xmin, xmax, math.Min(ymin, 0), math.Max(ymax, 0)
}

// GlyphBoxes implements the plot.GlyphBoxer interface.
func (s *Stems) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	boxes := make([]plot.GlyphBox, len(s.XYs))
	for i, p := range s.XYs {
		boxes[i].X = plt.X.Norm(p.X)
		boxes[i].Y = plt.Y.Norm(p.Y)
		boxes[i].Rectangle = s.GlyphStyle.Rectangle()
	}
	return boxes
}

// Thumbnail implements the plot.Thumbnailer interface.
func (s *Stems) Thumbnail(c *draw.Canvas) {
	x := (c.Min.X + c.Max.X) / halfDivisor
	y := (c.Min.Y + c.Max.Y) / halfDivisor
	c.StrokeLine2(s.LineStyle, x, c.Min.Y, x, c.Max.Y)
	c.DrawGlyph(s.GlyphStyle, vg.Point{X: x, Y: y})
}
