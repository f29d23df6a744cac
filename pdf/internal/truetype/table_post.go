/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/unidoc/unifont/common"
)

// postTable holds the header of the PostScript (post) table: italic angle, underline metrics and
// the fixed pitch flag. Glyph names of versions 2.0 and 2.5 are not decoded.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
type postTable struct {
	version            fixed
	italicAngle        fixed // in degrees.
	underlinePosition  fword
	underlineThickness fword
	isFixedPitch       uint32
}

// postHeaderLength is the size of the post header, the memory usage fields included.
const postHeaderLength = 32

func (f *font) parsePost(r *byteReader) (*postTable, error) {
	tr, has, err := f.seekToTable(r, "post")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("post table absent")
		return nil, nil
	}
	if tr.length < postHeaderLength {
		common.Log.Debug("post table too short (%d)", tr.length)
		return nil, errRangeCheck
	}

	t := &postTable{}
	err = r.read(&t.version, &t.italicAngle, &t.underlinePosition, &t.underlineThickness, &t.isFixedPitch)
	if err != nil {
		return nil, err
	}
	common.Log.Trace("post: version 0x%08X, italic angle %v, fixed pitch %d", uint32(t.version),
		t.italicAngle.Float64(), t.isFixedPitch)
	return t, nil
}
