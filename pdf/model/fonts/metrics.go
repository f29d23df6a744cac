/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import "fmt"

// FontMetrics are the vertical font metrics in font units and scaled to a 1000 unit em.
type FontMetrics struct {
	Ascender  float64
	Descender float64
	LineGap   float64

	// Scale converts font units to the 1000 unit em used by PDF.
	Scale float64

	AscenderScaled  float64
	DescenderScaled float64
	LineGapScaled   float64
}

func newFontMetrics(src GlyphSource) (FontMetrics, error) {
	upem := src.UnitsPerEm()
	if upem == 0 {
		return FontMetrics{}, fmt.Errorf("%w: unitsPerEm is 0", ErrFaceUnparseable)
	}
	scale := 1000.0 / float64(upem)
	fm := FontMetrics{
		Ascender:  float64(src.Ascender()),
		Descender: float64(src.Descender()),
		LineGap:   float64(src.LineGap()),
		Scale:     scale,
	}
	fm.AscenderScaled = fm.Ascender * scale
	fm.DescenderScaled = fm.Descender * scale
	fm.LineGapScaled = fm.LineGap * scale
	return fm, nil
}

// LineHeight returns the baseline to baseline distance for text of `size` points.
func (fm FontMetrics) LineHeight(size float64) float64 {
	return (fm.AscenderScaled + fm.LineGapScaled - fm.DescenderScaled) / 1000.0 * size
}

// LineGapSize returns the line gap for text of `size` points.
func (fm FontMetrics) LineGapSize(size float64) float64 {
	return fm.LineGapScaled / 1000.0 * size
}
