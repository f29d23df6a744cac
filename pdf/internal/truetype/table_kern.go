/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/unidoc/unifont/common"
)

// kernTable represents the Kerning table (kern) in the OpenType (Windows) layout: a version 0
// header followed by subtables. Only the first subtable is decoded, and only in format 0 (ordered
// list of kerning pairs).
// https://docs.microsoft.com/en-us/typography/opentype/spec/kern
type kernTable struct {
	version   uint16
	numTables uint16

	first *KernSubtable
}

// KernSubtable is a format 0 kerning subtable: a map from glyph pairs to horizontal adjustments
// in font units.
type KernSubtable struct {
	coverage uint16
	pairs    map[uint32]int16
}

// kernCoverageHorizontal is set in the coverage field of subtables with horizontal kerning data.
const kernCoverageHorizontal = 0x0001

// Kern returns the adjustment for the glyph pair (`left`, `right`). The bool flag is false if the
// pair has no entry.
func (st *KernSubtable) Kern(left, right GlyphIndex) (int16, bool) {
	if st == nil {
		return 0, false
	}
	v, ok := st.pairs[kernKey(left, right)]
	return v, ok
}

// NumPairs returns the number of kerning pairs.
func (st *KernSubtable) NumPairs() int {
	if st == nil {
		return 0
	}
	return len(st.pairs)
}

func kernKey(left, right GlyphIndex) uint32 {
	return uint32(left)<<16 | uint32(right)
}

// parseKern parses the kern table. Fonts without a kern table, or with a first subtable that is not
// usable, return a nil table and no error.
func (f *font) parseKern(r *byteReader) (*kernTable, error) {
	tr, has, err := f.seekToTable(r, "kern")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("kern table absent")
		return nil, nil
	}

	t := &kernTable{}
	err = r.read(&t.version, &t.numTables)
	if err != nil {
		return nil, err
	}
	if t.version != 0 {
		// Apple kern tables have a 32 bit version 1.0.
		common.Log.Debug("kern table version %d not supported", t.version)
		return nil, errUnsupported
	}
	if t.numTables == 0 {
		return t, nil
	}

	var version, length, coverage uint16
	err = r.read(&version, &length, &coverage)
	if err != nil {
		return nil, err
	}
	if format := coverage >> 8; format != 0 {
		common.Log.Debug("kern subtable format %d not supported", format)
		return t, nil
	}
	if coverage&kernCoverageHorizontal == 0 {
		common.Log.Debug("kern subtable is not horizontal (coverage 0x%04X)", coverage)
		return t, nil
	}

	var nPairs, searchRange, entrySelector, rangeShift uint16
	err = r.read(&nPairs, &searchRange, &entrySelector, &rangeShift)
	if err != nil {
		return nil, err
	}
	if 4+6+8+6*int64(nPairs) > int64(tr.length) {
		common.Log.Debug("kern pairs outside table (%d pairs, table length %d)", nPairs, tr.length)
		return nil, errRangeCheck
	}

	st := &KernSubtable{
		coverage: coverage,
		pairs:    make(map[uint32]int16, nPairs),
	}
	for i := 0; i < int(nPairs); i++ {
		var left, right uint16
		var value fword
		err = r.read(&left, &right, &value)
		if err != nil {
			return nil, err
		}
		key := kernKey(GlyphIndex(left), GlyphIndex(right))
		if _, dup := st.pairs[key]; dup {
			continue
		}
		st.pairs[key] = int16(value)
	}
	common.Log.Debug("kern: %d subtables, first has %d pairs", t.numTables, len(st.pairs))

	t.first = st
	return t, nil
}
