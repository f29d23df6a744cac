/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"github.com/unidoc/unifont/common"
)

// cmapTable represents a Character to Glyph Index Mapping Table (cmap).
// This table defines the mapping of character codes to the glyph index values used
// in the font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type cmapTable struct {
	version         uint16
	numTables       uint16
	encodingRecords []encodingRecord // len == numTables

	// Decoded subtables in encoding record order. Records with unsupported formats are left out.
	subtables []*CmapSubtable
}

// maxCmapCodes bounds the number of codes a single subtable may map, the size of the Unicode
// code space.
const maxCmapCodes = 0x110000

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

// CmapSubtable is a decoded cmap subtable: the character codes it maps and their glyphs.
// Character codes that map to glyph 0 (.notdef) are treated as unmapped.
type CmapSubtable struct {
	platformID uint16
	encodingID uint16
	format     uint16

	codes []rune // ascending.
	gids  map[rune]GlyphIndex
}

// PlatformID returns the platform of the subtable's encoding record.
func (st *CmapSubtable) PlatformID() uint16 { return st.platformID }

// EncodingID returns the platform specific encoding of the subtable's encoding record.
func (st *CmapSubtable) EncodingID() uint16 { return st.encodingID }

// Format returns the subtable format number (0, 4, 6 or 12).
func (st *CmapSubtable) Format() uint16 { return st.format }

// IsUnicode returns true if the character codes of the subtable are Unicode code points:
// the Unicode platform (0) or the Windows platform (3) with the BMP (1) or full repertoire (10)
// encodings.
func (st *CmapSubtable) IsUnicode() bool {
	switch st.platformID {
	case 0:
		return true
	case 3:
		return st.encodingID == 1 || st.encodingID == 10
	}
	return false
}

// Codes returns the mapped character codes in ascending order.
func (st *CmapSubtable) Codes() []rune {
	return st.codes
}

// Lookup returns the glyph mapped to character code `r`.
func (st *CmapSubtable) Lookup(r rune) (GlyphIndex, bool) {
	gid, ok := st.gids[r]
	return gid, ok
}

// Len returns the number of mapped character codes.
func (st *CmapSubtable) Len() int {
	return len(st.codes)
}

func newCmapSubtable(rec encodingRecord, format uint16) *CmapSubtable {
	return &CmapSubtable{
		platformID: rec.platformID,
		encodingID: rec.encodingID,
		format:     format,
		gids:       map[rune]GlyphIndex{},
	}
}

// add maps `code` to `gid` unless `code` is already mapped or `gid` is .notdef.
func (st *CmapSubtable) add(code rune, gid GlyphIndex) {
	if gid == 0 {
		return
	}
	if _, has := st.gids[code]; has {
		return
	}
	st.gids[code] = gid
	st.codes = append(st.codes, code)
}

// shared returns a copy of `st` for another encoding record pointing at the same subtable data.
func (st *CmapSubtable) shared(rec encodingRecord) *CmapSubtable {
	dup := *st
	dup.platformID = rec.platformID
	dup.encodingID = rec.encodingID
	return &dup
}

func (f *font) parseCmap(r *byteReader) (*cmapTable, error) {
	if f.maxp == nil {
		common.Log.Debug("Required maxp table missing")
		return nil, errRequiredField
	}

	tr, has, err := f.seekToTable(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("cmap table absent")
		return nil, nil
	}

	t := &cmapTable{}
	err = r.read(&t.version, &t.numTables)
	if err != nil {
		return nil, err
	}
	if t.version != 0 {
		common.Log.Debug("cmap version %d", t.version)
		return nil, errUnsupported
	}

	for i := 0; i < int(t.numTables); i++ {
		var rec encodingRecord
		err = r.read(&rec.platformID, &rec.encodingID, &rec.offset)
		if err != nil {
			return nil, err
		}
		t.encodingRecords = append(t.encodingRecords, rec)
	}

	decoded := map[offset32]*CmapSubtable{}
	for _, rec := range t.encodingRecords {
		if st, ok := decoded[rec.offset]; ok {
			t.subtables = append(t.subtables, st.shared(rec))
			continue
		}
		if int64(rec.offset) >= int64(tr.length) {
			common.Log.Debug("cmap subtable offset outside table (%d/%d)", rec.offset, tr.length)
			continue
		}
		err = r.Seek(int64(tr.offset) + int64(rec.offset))
		if err != nil {
			return nil, err
		}

		st, err := f.parseCmapSubtable(r, rec)
		if err != nil {
			// A broken subtable does not make the others unusable.
			common.Log.Debug("cmap subtable %d/%d skipped: %v", rec.platformID, rec.encodingID, err)
			continue
		}
		slices.Sort(st.codes)
		common.Log.Debug("cmap subtable %d/%d format %d: %d codes", st.platformID, st.encodingID, st.format,
			len(st.codes))
		decoded[rec.offset] = st
		t.subtables = append(t.subtables, st)
	}

	return t, nil
}

func (f *font) parseCmapSubtable(r *byteReader, rec encodingRecord) (*CmapSubtable, error) {
	var format uint16
	if err := r.read(&format); err != nil {
		return nil, err
	}

	switch format {
	case 0:
		return f.parseCmapFormat0(r, rec)
	case 4:
		return f.parseCmapFormat4(r, rec)
	case 6:
		return f.parseCmapFormat6(r, rec)
	case 12:
		return f.parseCmapFormat12(r, rec)
	}
	common.Log.Debug("cmap subtable format %d not supported", format)
	return nil, errUnsupported
}

// Format 0: byte encoding table.
func (f *font) parseCmapFormat0(r *byteReader, rec encodingRecord) (*CmapSubtable, error) {
	var length, language uint16
	if err := r.read(&length, &language); err != nil {
		return nil, err
	}

	var glyphIDArray []uint8
	if err := r.readSlice(&glyphIDArray, 256); err != nil {
		return nil, err
	}

	st := newCmapSubtable(rec, 0)
	for code, gid := range glyphIDArray {
		st.add(rune(code), GlyphIndex(gid))
	}
	return st, nil
}

// Format 4: segment mapping to delta values.
func (f *font) parseCmapFormat4(r *byteReader, rec encodingRecord) (*CmapSubtable, error) {
	var length, language, segCountX2, searchRange, entrySelector, rangeShift uint16
	err := r.read(&length, &language, &segCountX2, &searchRange, &entrySelector, &rangeShift)
	if err != nil {
		return nil, err
	}
	if segCountX2%2 != 0 {
		common.Log.Debug("cmap format 4: odd segCountX2 (%d)", segCountX2)
		return nil, errRangeCheck
	}
	segCount := int(segCountX2 / 2)

	var endCode, startCode, idDelta, idRangeOffset []uint16
	if err = r.readSlice(&endCode, segCount); err != nil {
		return nil, err
	}
	if err = r.Skip(2); err != nil { // reservedPad.
		return nil, err
	}
	if err = r.readSlice(&startCode, segCount); err != nil {
		return nil, err
	}
	if err = r.readSlice(&idDelta, segCount); err != nil {
		return nil, err
	}
	if err = r.readSlice(&idRangeOffset, segCount); err != nil {
		return nil, err
	}

	numGlyphIDs := (int(length) - 16 - 8*segCount) / 2
	if numGlyphIDs < 0 {
		common.Log.Debug("cmap format 4: length too short (%d)", length)
		numGlyphIDs = 0
	}
	var glyphIDArray []uint16
	if err = r.readSlice(&glyphIDArray, numGlyphIDs); err != nil {
		return nil, err
	}

	st := newCmapSubtable(rec, 4)
	for i := 0; i < segCount; i++ {
		start, end := int(startCode[i]), int(endCode[i])
		if start > end {
			continue
		}
		for code := start; code <= end && code != 0xFFFF; code++ {
			var gid uint16
			if idRangeOffset[i] == 0 {
				gid = uint16(code) + idDelta[i]
			} else {
				// idRangeOffset is a byte offset from its own position into glyphIDArray, which
				// directly follows the idRangeOffset array.
				idx := i + int(idRangeOffset[i])/2 + (code - start) - segCount
				if idx < 0 || idx >= len(glyphIDArray) {
					common.Log.Trace("cmap format 4: glyph index outside array (%d)", idx)
					continue
				}
				gid = glyphIDArray[idx]
				if gid != 0 {
					gid += idDelta[i]
				}
			}
			st.add(rune(code), GlyphIndex(gid))
		}
	}
	return st, nil
}

// Format 6: trimmed table mapping.
func (f *font) parseCmapFormat6(r *byteReader, rec encodingRecord) (*CmapSubtable, error) {
	var length, language, firstCode, entryCount uint16
	if err := r.read(&length, &language, &firstCode, &entryCount); err != nil {
		return nil, err
	}

	var glyphIDArray []uint16
	if err := r.readSlice(&glyphIDArray, int(entryCount)); err != nil {
		return nil, err
	}

	st := newCmapSubtable(rec, 6)
	for i, gid := range glyphIDArray {
		st.add(rune(int(firstCode)+i), GlyphIndex(gid))
	}
	return st, nil
}

// Format 12: segmented coverage.
func (f *font) parseCmapFormat12(r *byteReader, rec encodingRecord) (*CmapSubtable, error) {
	var reserved uint16
	var length, language, numGroups uint32
	if err := r.read(&reserved, &length, &language, &numGroups); err != nil {
		return nil, err
	}
	if int64(numGroups)*12 > int64(length) {
		common.Log.Debug("cmap format 12: numGroups too large (%d)", numGroups)
		return nil, errRangeCheck
	}

	numGlyphs := uint32(f.maxp.numGlyphs)
	st := newCmapSubtable(rec, 12)
	total := 0
	for i := 0; i < int(numGroups); i++ {
		var startCharCode, endCharCode, startGlyphID uint32
		if err := r.read(&startCharCode, &endCharCode, &startGlyphID); err != nil {
			return nil, err
		}
		if startCharCode > endCharCode || endCharCode > utf8.MaxRune {
			common.Log.Debug("cmap format 12: invalid group %d (%d-%d)", i, startCharCode, endCharCode)
			continue
		}
		for code := startCharCode; code <= endCharCode; code++ {
			gid := startGlyphID + (code - startCharCode)
			if gid >= numGlyphs {
				break
			}
			if total++; total > maxCmapCodes {
				common.Log.Debug("cmap format 12: more than %d codes", maxCmapCodes)
				return nil, errRangeCheck
			}
			st.add(rune(code), GlyphIndex(gid))
		}
	}
	return st, nil
}

// unicodeSubtables returns the Unicode subtables, in encoding record order.
func (t *cmapTable) unicodeSubtables() []*CmapSubtable {
	if t == nil {
		return nil
	}
	var subtables []*CmapSubtable
	for _, st := range t.subtables {
		if st.IsUnicode() {
			subtables = append(subtables, st)
		}
	}
	return subtables
}

// lookup returns the glyph for `r` from the Unicode subtables, trying full repertoire (format 12)
// subtables first.
func (t *cmapTable) lookup(r rune) (GlyphIndex, bool) {
	subtables := t.unicodeSubtables()
	for _, st := range subtables {
		if st.format != 12 {
			continue
		}
		if gid, ok := st.Lookup(r); ok {
			return gid, true
		}
	}
	for _, st := range subtables {
		if gid, ok := st.Lookup(r); ok {
			return gid, true
		}
	}
	return 0, false
}
