/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/unidoc/unifont/common"
)

// font is a data model for truetype fonts with basic access methods.
//
// Required tables: head, maxp, hhea, hmtx. The loca/glyf pair is needed for glyph bounding boxes,
// cmap for character lookups. The remaining tables are optional and a malformed optional table is
// treated as absent.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	hmtx *hmtxTable
	loca *locaTable
	glyf *glyfTable
	cmap *cmapTable
	kern *kernTable
	name *nameTable
	os2  *os2Table
	post *postTable
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}
	if f.head == nil {
		return nil, errRequiredField
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}
	if f.maxp == nil {
		return nil, errRequiredField
	}

	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, err
	}
	if f.hhea == nil {
		return nil, errRequiredField
	}

	f.hmtx, err = f.parseHmtx(r)
	if err != nil {
		return nil, err
	}
	if f.hmtx == nil {
		return nil, errRequiredField
	}

	f.loca, err = f.parseLoca(r)
	if err != nil {
		return nil, err
	}

	if f.loca != nil {
		f.glyf, err = f.parseGlyf(r)
		if err != nil {
			return nil, err
		}
	}

	f.cmap, err = f.parseCmap(r)
	if err != nil {
		common.Log.Debug("ERROR: cmap table unusable: %v", err)
		f.cmap = nil
	}

	f.kern, err = f.parseKern(r)
	if err != nil {
		common.Log.Debug("kern table unusable, kerning disabled: %v", err)
		f.kern = nil
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		common.Log.Debug("name table unusable: %v", err)
		f.name = nil
	}

	f.os2, err = f.parseOS2Table(r)
	if err != nil {
		common.Log.Debug("OS/2 table unusable: %v", err)
		f.os2 = nil
	}

	f.post, err = f.parsePost(r)
	if err != nil {
		common.Log.Debug("post table unusable: %v", err)
		f.post = nil
	}

	return f, nil
}
