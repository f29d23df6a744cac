/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/unifont/common"

// sfnt versions of fonts with truetype outlines.
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionApple    = 0x74727565 // 'true'
)

// offsetTable is the font directory header at the start of the file.
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, err
	}
	if ot.sfntVersion != sfntVersionTrueType && ot.sfntVersion != sfntVersionApple {
		common.Log.Debug("Unsupported sfnt version 0x%08X", ot.sfntVersion)
		return nil, errUnsupported
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	return ot, nil
}

func (ot *offsetTable) write(w *byteWriter) error {
	return w.write(ot.sfntVersion, ot.numTables, ot.searchRange, ot.entrySelector, ot.rangeShift)
}
