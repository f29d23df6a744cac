/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"golang.org/x/exp/slices"

	"github.com/unidoc/unifont/pdf/core"
)

// defaultWidth is the DW entry of the descendant font.
const defaultWidth = 1000

// widthRun is a `c [w1 w2 ...]` entry of a CIDFont W array: the widths of the consecutive CIDs
// starting at `low`.
type widthRun struct {
	low    GlyphID
	widths []float64
}

// compressWidths groups `widths` into maximal runs of consecutive glyph ids.
func compressWidths(widths map[GlyphID]float64) []widthRun {
	gids := make([]GlyphID, 0, len(widths))
	for gid := range widths {
		gids = append(gids, gid)
	}
	slices.Sort(gids)

	var runs []widthRun
	for i, gid := range gids {
		if i > 0 && gid == gids[i-1]+1 {
			last := &runs[len(runs)-1]
			last.widths = append(last.widths, widths[gid])
			continue
		}
		runs = append(runs, widthRun{low: gid, widths: []float64{widths[gid]}})
	}
	return runs
}

// makeWArray returns the W array of `runs`.
func makeWArray(runs []widthRun) *core.PdfObjectArray {
	w := core.MakeArray()
	for _, run := range runs {
		w.Append(core.MakeInteger(int64(run.low)), core.MakeArrayFromFloats(run.widths))
	}
	return w
}

// scaledWidths returns the advance widths of all glyphs with metrics in 1000 unit em space.
func (f *Font) scaledWidths() map[GlyphID]float64 {
	widths := make(map[GlyphID]float64, len(f.glyphs.metrics))
	for gid, gm := range f.glyphs.metrics {
		widths[gid] = gm.Width * f.metrics.Scale
	}
	return widths
}
