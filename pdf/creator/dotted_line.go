/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"math"

	"github.com/unidoc/unifont/pdf/contentstream"
	"github.com/unidoc/unifont/pdf/internal/transform"
)

// DottedLine is a line of short dashes between point 1 (X1,Y1) and point 2 (X2,Y2) in top-left
// page coordinates. Each dash is `dotLength` long and starts `spacing` after the previous one.
type DottedLine struct {
	x1        float64
	y1        float64
	x2        float64
	y2        float64
	lineColor Color
	lineWidth float64
	dotLength float64
	spacing   float64
}

// NewDottedLine creates a new DottedLine with default parameters between (x1,y1) to (x2,y2).
func NewDottedLine(x1, y1, x2, y2 float64) *DottedLine {
	return &DottedLine{
		x1:        x1,
		y1:        y1,
		x2:        x2,
		y2:        y2,
		lineColor: ColorBlack,
		lineWidth: 1.0,
		dotLength: 1.0,
		spacing:   2.0,
	}
}

// GetCoords returns the (x1, y1), (x2, y2) points defining the line.
func (l *DottedLine) GetCoords() (float64, float64, float64, float64) {
	return l.x1, l.y1, l.x2, l.y2
}

// SetLineWidth sets the line width.
func (l *DottedLine) SetLineWidth(lw float64) {
	l.lineWidth = lw
}

// SetColor sets the line color.
func (l *DottedLine) SetColor(col Color) {
	l.lineColor = col
}

// SetDots sets the dash length and the distance between dash starts. Dashes longer than the
// spacing are shortened to it.
func (l *DottedLine) SetDots(dotLength, spacing float64) {
	if spacing <= 0 {
		return
	}
	l.dotLength = math.Min(dotLength, spacing)
	l.spacing = spacing
}

// Length calculates and returns the line length.
func (l *DottedLine) Length() float64 {
	return math.Hypot(l.x2-l.x1, l.y2-l.y1)
}

// Draw appends the dashes to `cc`. `pageToPdf` maps top-left page coordinates to PDF
// coordinates.
func (l *DottedLine) Draw(cc *contentstream.ContentCreator, pageToPdf transform.Matrix) {
	distance := l.Length()
	if distance == 0 {
		return
	}
	dx := (l.x2 - l.x1) / distance
	dy := (l.y2 - l.y1) / distance

	cc.Add_q().
		Add_RG(l.lineColor.ToRGB()).
		Add_w(l.lineWidth)
	for i := 0.0; i < distance; i += l.spacing {
		end := math.Min(i+l.dotLength, distance)
		x1, y1 := pageToPdf.Transform(l.x1+i*dx, l.y1+i*dy)
		x2, y2 := pageToPdf.Transform(l.x1+end*dx, l.y1+end*dy)
		cc.Add_m(x1, y1).Add_l(x2, y2)
	}
	cc.Add_S().Add_Q()
}
