/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/unidoc/unifont/pdf/core"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

// EncodeRun returns the TJ operands showing `run` in an Identity-H encoded font: hex strings of
// 2 byte glyph ids, split where a kerning adjustment is needed. `scale` converts font units to
// thousandths of an em (FontMetrics.Scale).
func EncodeRun(run *fonts.LayoutRun, scale float64) []core.PdfObject {
	var vals []core.PdfObject
	var codes []byte
	flush := func() {
		if len(codes) > 0 {
			vals = append(vals, core.MakeHexString(string(codes)))
			codes = nil
		}
	}
	for _, gm := range run.Glyphs {
		if gm.KernRight != 0 {
			flush()
			vals = append(vals, core.MakeFloat(-gm.KernRight*scale))
		}
		codes = append(codes, byte(gm.ID>>8), byte(gm.ID))
	}
	flush()
	return vals
}

// Add_TJRun appends a TJ operation showing `run`. See EncodeRun.
func (cc *ContentCreator) Add_TJRun(run *fonts.LayoutRun, scale float64) *ContentCreator {
	return cc.Add_TJ(EncodeRun(run, scale)...)
}
