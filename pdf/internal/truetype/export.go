/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"io"
)

// Font wraps font for outside access.
type Font struct {
	*font
}

// Bounds is a glyph bounding box in font units.
type Bounds struct {
	XMin, YMin, XMax, YMax int16
}

// Parse parses the truetype font from `rs` and returns a new Font.
func Parse(rs io.ReadSeeker) (*Font, error) {
	fnt, err := parseFont(newByteReader(rs))
	if err != nil {
		return nil, err
	}
	return &Font{font: fnt}, nil
}

// Validate parses the truetype font in `rs` and checks the table and whole file checksums.
func Validate(rs io.ReadSeeker) error {
	br := newByteReader(rs)
	fnt, err := parseFont(br)
	if err != nil {
		return err
	}
	return fnt.validate(br)
}

// UnitsPerEm returns the number of font units per em square.
func (f *Font) UnitsPerEm() uint16 {
	return f.head.unitsPerEm
}

// Ascender returns the typographic ascent from the hhea table in font units.
func (f *Font) Ascender() int16 {
	return int16(f.hhea.ascender)
}

// Descender returns the typographic descent from the hhea table in font units (usually negative).
func (f *Font) Descender() int16 {
	return int16(f.hhea.descender)
}

// LineGap returns the typographic line gap from the hhea table in font units.
func (f *Font) LineGap() int16 {
	return int16(f.hhea.lineGap)
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return int(f.maxp.numGlyphs)
}

// GlyphIndex returns the glyph mapped to `r` by the font's Unicode cmap subtables.
func (f *Font) GlyphIndex(r rune) (GlyphIndex, bool) {
	if f.cmap == nil {
		return 0, false
	}
	return f.cmap.lookup(r)
}

// AdvanceWidth returns the horizontal advance of `gid` in font units.
func (f *Font) AdvanceWidth(gid GlyphIndex) (uint16, bool) {
	return f.advanceWidth(gid)
}

// GlyphBounds returns the bounding box of `gid` in font units. The bool flag is false for glyphs
// without outlines.
func (f *Font) GlyphBounds(gid GlyphIndex) (Bounds, bool) {
	h, ok := f.glyphHeader(gid)
	if !ok {
		return Bounds{}, false
	}
	return Bounds{XMin: h.xMin, YMin: h.yMin, XMax: h.xMax, YMax: h.yMax}, true
}

// BoundingBox returns the font wide bounding box from the head table.
func (f *Font) BoundingBox() Bounds {
	return Bounds{XMin: f.head.xMin, YMin: f.head.yMin, XMax: f.head.xMax, YMax: f.head.yMax}
}

// HasCmap returns true if the font has a decodable cmap table.
func (f *Font) HasCmap() bool {
	return f.cmap != nil && len(f.cmap.subtables) > 0
}

// UnicodeSubtables returns the cmap subtables keyed by Unicode code points, in encoding record
// order.
func (f *Font) UnicodeSubtables() []*CmapSubtable {
	return f.cmap.unicodeSubtables()
}

// KernSubtable returns the first subtable of the kern table, or nil if the font has no usable
// kerning data.
func (f *Font) KernSubtable() *KernSubtable {
	if f.kern == nil {
		return nil
	}
	return f.kern.first
}

// PostScriptName returns the PostScript name from the name table (name ID 6), falling back to the
// full name (ID 4) and the family name (ID 1).
func (f *Font) PostScriptName() string {
	if f.name == nil {
		return ""
	}
	for _, id := range []int{nameIDPostScript, nameIDFullName, nameIDFamily} {
		if name := f.GetNameByID(id); name != "" {
			return name
		}
	}
	return ""
}

// IsFixedPitch returns true if the post table marks the font as monospaced.
func (f *Font) IsFixedPitch() bool {
	return f.post != nil && f.post.isFixedPitch != 0
}

// IsItalic returns true if the head table style bits or the post table italic angle mark the font
// as italic or oblique.
func (f *Font) IsItalic() bool {
	return f.head.isItalic() || f.ItalicAngle() != 0
}

// ItalicAngle returns the italic angle in degrees counter-clockwise from vertical.
func (f *Font) ItalicAngle() float64 {
	if f.post == nil {
		return 0
	}
	return f.post.italicAngle.Float64()
}

// WeightClass returns the OS/2 weight class (400 is regular, 700 bold). Fonts without an OS/2
// table are reported as regular.
func (f *Font) WeightClass() uint16 {
	if f.os2 == nil {
		return 400
	}
	return f.os2.usWeightClass
}
