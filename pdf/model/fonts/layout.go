/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

// LayoutRun is a line of text laid out in a single font and size. Glyph widths include kerning
// and are in points (text space units for `FontSize`). Heights stay in font units.
type LayoutRun struct {
	FontName   string
	Text       string
	FontSize   float64
	Glyphs     []GlyphMetrics
	LineHeight float64
	LineGap    float64
}

// Segment is a piece of a layout run with its width in points.
type Segment struct {
	Text  string
	Width float64
}

// GlyphRun returns the unscaled metrics of the glyphs of `text` with the kerning against the
// preceding glyph recorded in KernRight. Widths do not include kerning. Char is the character of
// `text`, which differs from the glyph table entry when several characters share a glyph.
func (f *Font) GlyphRun(text string) ([]GlyphMetrics, error) {
	glyphs := make([]GlyphMetrics, 0, len(text))
	var prev GlyphID
	for i, r := range []rune(text) {
		gm, err := f.GlyphMetricsForChar(r)
		if err != nil {
			return nil, err
		}
		gm.Char = r
		if i > 0 {
			gm.KernRight = f.Kern(prev, gm.ID)
		}
		prev = gm.ID
		glyphs = append(glyphs, gm)
	}
	return glyphs, nil
}

// LayoutRun lays out `text` at `size` points. Each glyph width becomes
// (advance + kerning) * scale * size / 1000.
func (f *Font) LayoutRun(text string, size float64) (*LayoutRun, error) {
	glyphs, err := f.GlyphRun(text)
	if err != nil {
		return nil, err
	}
	for i := range glyphs {
		gm := &glyphs[i]
		gm.Width += gm.KernRight
		gm.Width *= f.metrics.Scale
		gm.Width *= size / 1000.0
	}
	return &LayoutRun{
		FontName:   f.name,
		Text:       text,
		FontSize:   size,
		Glyphs:     glyphs,
		LineHeight: f.LineHeight(size),
		LineGap:    f.LineGap(size),
	}, nil
}

// Width returns the advance of the whole run in points.
func (run *LayoutRun) Width() float64 {
	var w float64
	for _, gm := range run.Glyphs {
		w += gm.Width
	}
	return w
}

// Words splits the run at space glyphs. The spaces are not part of any segment and their width
// is not counted. Consecutive spaces do not produce empty segments.
func (run *LayoutRun) Words() []Segment {
	var words []Segment
	var cur []rune
	var width float64
	flush := func() {
		if len(cur) > 0 {
			words = append(words, Segment{Text: string(cur), Width: width})
		}
		cur = cur[:0]
		width = 0
	}
	for _, gm := range run.Glyphs {
		if gm.Char == ' ' {
			flush()
			continue
		}
		cur = append(cur, gm.Char)
		width += gm.Width
	}
	flush()
	return words
}
