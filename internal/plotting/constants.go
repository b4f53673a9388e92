package plotting

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Figure sizes
const (
	gridWidth     = 14 * vg.Inch
	gridHeight    = 10 * vg.Inch
	overlayWidth  = 10 * vg.Inch
	overlayHeight = 6 * vg.Inch
	baseWidth     = 8 * vg.Inch
	baseHeight    = 6 * vg.Inch
)

// Grid layout
const (
	gridCols = 2
	gridPad  = 4 * vg.Millimeter
)

// Marker and line styling
const (
	markerRadius  = 3
	stemWidth     = 1
	axisLineWidth = 0.8
	dashOn        = 5
	dashOff       = 3
	halfDivisor   = 2
)

// Axis and legend labels
const (
	harmonicLabel  = "k"
	realLabel      = "Re(F(w_k))"
	amplitudeLabel = "|F(w_k)|"
	baseXLabel     = "t"
	baseYLabel     = "t^(2n)"
)

var (
	realColor      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	amplitudeColor = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	baseColor      = color.RGBA{B: 255, A: 255}
	axisColor      = color.Black
	baseGridColor  = color.Gray{Y: 220}
)
