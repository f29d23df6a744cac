/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"

	"github.com/unidoc/unifont/common"
)

// glyfTable represents the Glyph Data table (glyf).
// The table is a list of glyph data blocks located through the loca table. Only the raw blocks are
// kept; the glyph header (contour count and bounding box) is decoded on request.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
type glyfTable struct {
	data []byte
}

// glyfGlyphHeader represents the glyph header in the glyf table (one for each non-empty glyph).
type glyfGlyphHeader struct {
	numberOfContours int16
	xMin             int16
	yMin             int16
	xMax             int16
	yMax             int16
}

// glyfGlyphHeaderLen is the size of glyfGlyphHeader in bytes.
const glyfGlyphHeaderLen = 10

func (h *glyfGlyphHeader) read(r *byteReader) error {
	return r.read(&h.numberOfContours, &h.xMin, &h.yMin, &h.xMax, &h.yMax)
}

func (h *glyfGlyphHeader) write(w *byteWriter) error {
	return w.write(h.numberOfContours, h.xMin, h.yMin, h.xMax, h.yMax)
}

// isComposite returns true if the glyph is built from other glyphs.
func (h glyfGlyphHeader) isComposite() bool {
	return h.numberOfContours < 0
}

func (f *font) parseGlyf(r *byteReader) (*glyfTable, error) {
	if f.maxp == nil || f.loca == nil {
		common.Log.Debug("required field missing (glyf)")
		return nil, errRequiredField
	}

	tr, has, err := f.seekToTable(r, "glyf")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	glyf := &glyfTable{}
	err = r.readBytes(&glyf.data, int(tr.length))
	if err != nil {
		return nil, err
	}
	common.Log.Debug("glyf: %d bytes, %d glyphs, loca format %d", len(glyf.data), f.maxp.numGlyphs,
		f.head.indexToLocFormat)
	return glyf, nil
}

// glyphData returns the raw glyph data block of `gid`. Empty glyphs (e.g. space) have no data.
func (f *font) glyphData(gid GlyphIndex) ([]byte, error) {
	if f.glyf == nil {
		return nil, errRequiredField
	}
	offset, length, err := f.GetGlyphDataOffset(gid)
	if err != nil {
		return nil, err
	}
	if length < 0 || offset+length > int64(len(f.glyf.data)) {
		common.Log.Debug("Range check error (glyf) gid=%d offset=%d len=%d", gid, offset, length)
		return nil, errRangeCheck
	}
	return f.glyf.data[offset : offset+length], nil
}

// glyphHeader returns the header of glyph `gid`. The bool flag is false for glyphs without outline
// data, which have no bounding box.
func (f *font) glyphHeader(gid GlyphIndex) (glyfGlyphHeader, bool) {
	var h glyfGlyphHeader
	data, err := f.glyphData(gid)
	if err != nil || len(data) < glyfGlyphHeaderLen {
		return h, false
	}
	br := newByteReader(bytes.NewReader(data))
	if err := h.read(br); err != nil {
		common.Log.Debug("glyph %d: bad header: %v", gid, err)
		return h, false
	}
	common.Log.Trace("gid %d header: %+v composite=%t", gid, h, h.isComposite())
	return h, true
}
