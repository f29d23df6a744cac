/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"github.com/unidoc/unifont/pdf/internal/truetype"
)

// GlyphID identifies a glyph within a font. For embedded fonts it is also the CID.
type GlyphID uint16

// Bounds is a glyph bounding box in font units.
type Bounds struct {
	XMin, YMin, XMax, YMax int16
}

// CharMap is a character map subtable keyed by Unicode code points.
type CharMap interface {
	// Codes returns the mapped code points in ascending order.
	Codes() []rune
	Lookup(r rune) (GlyphID, bool)
}

// KernTable gives the horizontal adjustment in font units between two adjacent glyphs.
type KernTable interface {
	Kern(left, right GlyphID) (int16, bool)
}

// GlyphSource is the read-only view of a parsed font face that metrics and layout are built
// from. All quantities are in font units.
type GlyphSource interface {
	UnitsPerEm() uint16
	Ascender() int16
	Descender() int16
	LineGap() int16

	GlyphIndex(r rune) (GlyphID, bool)
	GlyphAdvance(gid GlyphID) (uint16, bool)
	GlyphBounds(gid GlyphID) (Bounds, bool)

	// UnicodeCharMaps returns the Unicode character maps in font order.
	UnicodeCharMaps() []CharMap
	// KernTable returns the first kerning subtable, or nil if there is none.
	KernTable() KernTable
}

// faceDescriber is implemented by glyph sources that know the font's naming and style
// information, used for defaults and the PDF font descriptor.
type faceDescriber interface {
	PostScriptName() string
	IsFixedPitch() bool
	IsItalic() bool
	WeightClass() uint16
}

// ttfSource adapts a parsed truetype font to GlyphSource.
type ttfSource struct {
	fnt *truetype.Font
}

func (s ttfSource) UnitsPerEm() uint16 { return s.fnt.UnitsPerEm() }
func (s ttfSource) Ascender() int16    { return s.fnt.Ascender() }
func (s ttfSource) Descender() int16   { return s.fnt.Descender() }
func (s ttfSource) LineGap() int16     { return s.fnt.LineGap() }

func (s ttfSource) GlyphIndex(r rune) (GlyphID, bool) {
	gid, ok := s.fnt.GlyphIndex(r)
	return GlyphID(gid), ok
}

func (s ttfSource) GlyphAdvance(gid GlyphID) (uint16, bool) {
	return s.fnt.AdvanceWidth(truetype.GlyphIndex(gid))
}

func (s ttfSource) GlyphBounds(gid GlyphID) (Bounds, bool) {
	b, ok := s.fnt.GlyphBounds(truetype.GlyphIndex(gid))
	if !ok {
		return Bounds{}, false
	}
	return Bounds{XMin: b.XMin, YMin: b.YMin, XMax: b.XMax, YMax: b.YMax}, true
}

func (s ttfSource) UnicodeCharMaps() []CharMap {
	var cmaps []CharMap
	for _, st := range s.fnt.UnicodeSubtables() {
		cmaps = append(cmaps, ttfCharMap{st})
	}
	return cmaps
}

func (s ttfSource) KernTable() KernTable {
	st := s.fnt.KernSubtable()
	if st == nil {
		return nil
	}
	return ttfKernTable{st}
}

func (s ttfSource) PostScriptName() string { return s.fnt.PostScriptName() }
func (s ttfSource) IsFixedPitch() bool     { return s.fnt.IsFixedPitch() }
func (s ttfSource) IsItalic() bool         { return s.fnt.IsItalic() }
func (s ttfSource) WeightClass() uint16    { return s.fnt.WeightClass() }

type ttfCharMap struct {
	st *truetype.CmapSubtable
}

func (c ttfCharMap) Codes() []rune { return c.st.Codes() }

func (c ttfCharMap) Lookup(r rune) (GlyphID, bool) {
	gid, ok := c.st.Lookup(r)
	return GlyphID(gid), ok
}

type ttfKernTable struct {
	st *truetype.KernSubtable
}

func (k ttfKernTable) Kern(left, right GlyphID) (int16, bool) {
	return k.st.Kern(truetype.GlyphIndex(left), truetype.GlyphIndex(right))
}
